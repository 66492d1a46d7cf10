package edit

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrNoDeclarations is returned when a file has no <script> block to import into
var ErrNoDeclarations = errors.New("no <script> tag found")

var (
	importStartExpr = regexp.MustCompile(`^import(\s|\{|\*|'|")`)
	importEndExpr   = regexp.MustCompile(`['"][^'"]*['"]\s*;?\s*(//.*)?$`)
)

// ImportInserter adds a named import of a shared symbol to the declarations block
type ImportInserter struct {
	Module string // Module specifier, e.g. $lib/utils/formatters
	Symbol string // Imported name
	Indent string // Indentation used when the block has no imports yet

	marker *regexp.Regexp
}

// NewImportInserter creates an inserter for symbol imported from module
func NewImportInserter(module, symbol, indent string) *ImportInserter {
	return &ImportInserter{
		Module: module,
		Symbol: symbol,
		Indent: indent,
		marker: regexp.MustCompile(`import\s*(?:type\s+)?\{[^}]*\b` + regexp.QuoteMeta(symbol) + `\b[^}]*\}\s*from\s*(?:'` +
			regexp.QuoteMeta(module) + `'|"` + regexp.QuoteMeta(module) + `")`),
	}
}

// Line returns the import statement being inserted
func (i *ImportInserter) Line() string {
	return fmt.Sprintf("import { %s } from '%s';", i.Symbol, i.Module)
}

// HasImport returns true if text already imports the symbol from the module, in either quote style
func (i *ImportInserter) HasImport(text string) bool {
	return i.marker.MatchString(text)
}

// Insert splices the import line after the last import of the declarations block,
// or right after the opening tag when the block has none.
func (i *ImportInserter) Insert(text string) (string, bool, error) {
	block, ok := FindDeclarations(text)
	if !ok {
		return text, false, ErrNoDeclarations
	}
	if i.HasImport(text) {
		return text, false, nil
	}
	offset, indent, found := lastImport(text, block)
	if !found {
		offset, indent = block.Start, i.Indent
	}
	newline := "\n"
	if strings.Contains(text, "\r\n") {
		newline = "\r\n"
	}
	return text[:offset] + newline + indent + i.Line() + text[offset:], true, nil
}

// lastImport returns the end offset and indentation of the last import statement in block.
// A multi-line import ends on the line carrying its module specifier.
func lastImport(text string, block *Block) (end int, indent string, found bool) {
	offset := block.Start
	inImport := false
	var current string
	for _, line := range strings.SplitAfter(block.Content(text), "\n") {
		lineStart := offset
		offset += len(line)
		body := strings.TrimRight(line, "\r\n")
		trimmed := strings.TrimSpace(body)
		if !inImport && importStartExpr.MatchString(trimmed) {
			inImport = true
			current = body[:len(body)-len(strings.TrimLeft(body, " \t"))]
		}
		if inImport && importEndExpr.MatchString(trimmed) {
			inImport = false
			end, indent, found = lineStart+len(body), current, true
		}
	}
	return end, indent, found
}
