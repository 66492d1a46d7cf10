package edit

import (
	"regexp"
	"strings"
)

// DefinitionPattern describes one historical textual shape of an inline function definition
type DefinitionPattern struct {
	Name string
	Expr *regexp.Regexp
}

// DefaultDefinitionPatterns returns the known shapes of the inline de-CH currency helper, in priority order
func DefaultDefinitionPatterns(name string) []*DefinitionPattern {
	fn := regexp.QuoteMeta(name)
	body := `\s*\{\s*return new Intl\.NumberFormat\('de-CH',\s*\{\s*style:\s*'currency',\s*currency:\s*%s,?\s*\}\)\.format\(amount\);?\s*\}`
	return []*DefinitionPattern{
		{
			Name: "fixed-currency",
			Expr: regexp.MustCompile(`\n[ \t]*function ` + fn + `\(amount(?::\s*number)?\)` +
				strings.Replace(body, "%s", `'CHF'`, 1)),
		},
		{
			Name: "default-currency",
			Expr: regexp.MustCompile(`\n[ \t]*function ` + fn + `\(amount(?::\s*number)?,\s*currency(?::\s*string)?\s*=\s*'CHF'\)` +
				strings.Replace(body, "%s", `currency`, 1)),
		},
	}
}

// DefinitionRemover deletes the first inline definition matching one of its patterns
type DefinitionRemover struct {
	Name     string
	Patterns []*DefinitionPattern
}

// NewDefinitionRemover creates a remover for name using the default patterns
func NewDefinitionRemover(name string) *DefinitionRemover {
	return &DefinitionRemover{Name: name, Patterns: DefaultDefinitionPatterns(name)}
}

// Remove tries patterns in order and deletes the first match of the first matching one.
// It returns the matched pattern, or nil when no pattern matched.
func (r *DefinitionRemover) Remove(text string) (string, *DefinitionPattern) {
	for _, pattern := range r.Patterns {
		loc := pattern.Expr.FindStringIndex(text)
		if loc == nil {
			continue
		}
		head, tail := text[:loc[0]], text[loc[1]:]
		if strings.HasSuffix(head, "\n") && strings.HasPrefix(tail, "\n\n") {
			tail = tail[1:] // collapse the blank line left behind
		}
		return head + tail, pattern
	}
	return text, nil
}
