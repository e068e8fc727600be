package writer

import (
	"regexp"
	"strings"
)

type blockKind int

const (
	blockParagraph blockKind = iota
	blockHeading
	blockBullet
	blockNumbered
)

// block is one rendered line of a markdown summary
type block struct {
	kind  blockKind
	level int
	text  string
}

type span struct {
	text string
	bold bool
}

var (
	headingLine  = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	bulletLine   = regexp.MustCompile(`^[-*+]\s+(.+)$`)
	numberedLine = regexp.MustCompile(`^\d+[.)]\s+\S`)
	boldSpan     = regexp.MustCompile(`\*\*(.+?)\*\*|__(.+?)__`)
	inlineMarks  = strings.NewReplacer("**", "", "__", "", "`", "")
)

// parseBlocks classifies the non-empty lines of an LLM summary. Horizontal
// rules are dropped; numbered items keep their numbers.
func parseBlocks(markdown string) []block {
	var blocks []block
	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || isRule(line) {
			continue
		}

		if m := headingLine.FindStringSubmatch(line); m != nil {
			blocks = append(blocks, block{kind: blockHeading, level: len(m[1]), text: m[2]})
			continue
		}
		if m := bulletLine.FindStringSubmatch(line); m != nil {
			blocks = append(blocks, block{kind: blockBullet, text: m[1]})
			continue
		}
		if numberedLine.MatchString(line) {
			blocks = append(blocks, block{kind: blockNumbered, text: line})
			continue
		}
		blocks = append(blocks, block{kind: blockParagraph, text: line})
	}
	return blocks
}

func isRule(line string) bool {
	return len(line) >= 3 && strings.Trim(line, "-*_ ") == ""
}

// splitBold cuts text into plain and **bold** / __bold__ spans
func splitBold(text string) []span {
	var spans []span
	last := 0
	for _, loc := range boldSpan.FindAllStringSubmatchIndex(text, -1) {
		if loc[0] > last {
			spans = append(spans, span{text: text[last:loc[0]]})
		}
		inner := text[loc[4]:loc[5]]
		if loc[2] >= 0 {
			inner = text[loc[2]:loc[3]]
		}
		spans = append(spans, span{text: inner, bold: true})
		last = loc[1]
	}
	if last < len(text) {
		spans = append(spans, span{text: text[last:]})
	}
	return spans
}

func stripInline(s string) string {
	return inlineMarks.Replace(s)
}
