package summarizer

import (
	"os"

	"github.com/nguyentantai21042004/meeting-scribe/internal/apperr"
)

// BuildPrompt joins the instruction and the document as "instruction: content"
func BuildPrompt(instruction, content string) string {
	return instruction + ": " + content
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", apperr.Wrap(apperr.KindIO, "summarizer.read", "read "+path, err)
	}
	return string(data), nil
}
