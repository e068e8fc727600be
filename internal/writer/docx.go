package writer

import (
	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/meeting-scribe/internal/apperr"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

func (w *implWriter) WriteDocx(path, text string) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	doc, err := godocx.NewDocument()
	if err != nil {
		return apperr.Wrap(apperr.KindIO, "writer.docx", "create document", err)
	}

	p := doc.AddParagraph("")
	p.AddText(text).Font(fontName).Size(fontSize).Color("000000")

	if err := doc.SaveTo(path); err != nil {
		return apperr.Wrap(apperr.KindIO, "writer.docx", "save "+path, err)
	}
	return nil
}

func (w *implWriter) WriteMarkdownDocx(path, title, markdown string) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	doc, err := godocx.NewDocument()
	if err != nil {
		return apperr.Wrap(apperr.KindIO, "writer.docx", "create document", err)
	}

	if title != "" {
		styled(doc.AddParagraph("").AddText(title), headingPt(1)).Bold(true)
	}
	for _, b := range parseBlocks(markdown) {
		renderBlock(doc, b)
	}

	if err := doc.SaveTo(path); err != nil {
		return apperr.Wrap(apperr.KindIO, "writer.docx", "save "+path, err)
	}
	return nil
}

func renderBlock(doc *docx.RootDoc, b block) {
	p := doc.AddParagraph("")
	switch b.kind {
	case blockHeading:
		styled(p.AddText(stripInline(b.text)), headingPt(b.level)).Bold(true)
	case blockBullet:
		addSpans(p, "• "+b.text)
	default:
		addSpans(p, b.text)
	}
}

func addSpans(p *docx.Paragraph, text string) {
	for _, sp := range splitBold(text) {
		styled(p.AddText(stripInline(sp.text)), fontSize).Bold(sp.bold)
	}
}

func styled(r *docx.Run, size uint64) *docx.Run {
	return r.Font(fontName).Size(size).Color("000000")
}

// headingPt maps # to 16pt, ## to 15pt, ### to 14pt; deeper levels use body size
func headingPt(level int) uint64 {
	if level >= 4 {
		return fontSize
	}
	return fontSize + uint64(4-level)
}
