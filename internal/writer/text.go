package writer

import (
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/meeting-scribe/internal/apperr"
)

func (w *implWriter) WriteText(path, text string) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return apperr.Wrap(apperr.KindIO, "writer.text", "write "+path, err)
	}
	return nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return apperr.Wrap(apperr.KindIO, "writer.mkdir", "create "+dir, err)
	}
	return nil
}
