package edit

import (
	"regexp"
	"strings"
)

var (
	scriptOpenExpr = regexp.MustCompile(`<script[^>]*>`)
	attributeExpr  = regexp.MustCompile(`([\w-]+)\s*=\s*["']([^"']*)["']`)
)

const scriptClose = "</script>"

// Block represents the leading declarations block of a component file
type Block struct {
	Open       int               // Offset of the opening tag
	Start      int               // Offset right after the opening tag
	End        int               // Offset of the closing tag, or end of text when missing
	Attributes map[string]string // Opening tag attributes
}

// Lang returns the script language attribute, empty for plain JavaScript
func (b *Block) Lang() string {
	return b.Attributes["lang"]
}

// Content returns the block body
func (b *Block) Content(text string) string {
	return text[b.Start:b.End]
}

// FindDeclarations locates the first <script> block in text
func FindDeclarations(text string) (*Block, bool) {
	loc := scriptOpenExpr.FindStringIndex(text)
	if loc == nil {
		return nil, false
	}
	block := &Block{
		Open:       loc[0],
		Start:      loc[1],
		End:        len(text),
		Attributes: map[string]string{},
	}
	for _, match := range attributeExpr.FindAllStringSubmatch(text[loc[0]:loc[1]], -1) {
		block.Attributes[match[1]] = match[2]
	}
	if idx := strings.Index(text[loc[1]:], scriptClose); idx != -1 {
		block.End = loc[1] + idx
	}
	return block, true
}
