package writer

// Writer persists transcripts and summaries
type Writer interface {
	// WriteText writes text as UTF-8, replacing any existing file.
	WriteText(path, text string) error
	// WriteDocx writes text as a single paragraph of a .docx document.
	WriteDocx(path, text string) error
	// WriteMarkdownDocx renders markdown (headings, bullets, bold) into a .docx document.
	WriteMarkdownDocx(path, title, markdown string) error
}
