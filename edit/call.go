package edit

import (
	"sort"
	"strings"
)

// CallSite represents a name(arguments) span found in the text
type CallSite struct {
	Start     int    // Offset of the function name
	Open      int    // Offset of the opening parenthesis
	Close     int    // Offset of the closing parenthesis
	Arguments string // Raw argument list
	Arity     int    // Number of top-level arguments
}

// End returns the offset right after the call
func (c *CallSite) End() int {
	return c.Close + 1
}

// Normalized returns true if the call already has a trailing argument
func (c *CallSite) Normalized() bool {
	return c.Arity > 1
}

// CallNormalizer appends canonical trailing arguments to single-argument calls of a function
type CallNormalizer struct {
	Name      string
	Arguments []string // Trailing argument literals, e.g. 'CHF', 'de-CH'
}

// NewCallNormalizer creates a normalizer for name
func NewCallNormalizer(name string, arguments ...string) *CallNormalizer {
	return &CallNormalizer{Name: name, Arguments: arguments}
}

// CallSites returns every call of the function in text, nested calls included
func (n *CallNormalizer) CallSites(text string) []*CallSite {
	var result []*CallSite
	needle := n.Name + "("
	for from := 0; ; {
		idx := strings.Index(text[from:], needle)
		if idx == -1 {
			break
		}
		start := from + idx
		from = start + len(n.Name)
		if !isCall(text, start) {
			continue
		}
		site := scanArguments(text, start+len(n.Name))
		if site == nil {
			continue
		}
		site.Start = start
		result = append(result, site)
	}
	return result
}

// Normalize rewrites every single-argument call to carry the trailing arguments.
// Calls with any trailing argument, or with no argument at all, are left untouched.
func (n *CallNormalizer) Normalize(text string) (string, int) {
	if len(n.Arguments) == 0 {
		return text, 0
	}
	var offsets []int
	for _, site := range n.CallSites(text) {
		if site.Arity != 1 {
			continue
		}
		offsets = append(offsets, site.Open+1+len(strings.TrimRight(site.Arguments, " \t\r\n")))
	}
	if len(offsets) == 0 {
		return text, 0
	}
	sort.Ints(offsets)
	suffix := ", " + strings.Join(n.Arguments, ", ")
	builder := strings.Builder{}
	last := 0
	for _, offset := range offsets {
		builder.WriteString(text[last:offset])
		builder.WriteString(suffix)
		last = offset
	}
	builder.WriteString(text[last:])
	return builder.String(), len(offsets)
}

// isCall checks that the name at start is a whole identifier and not a function declaration
func isCall(text string, start int) bool {
	if start > 0 && isIdentByte(text[start-1]) {
		return false
	}
	head := strings.TrimRight(text[:start], " \t")
	if strings.HasSuffix(head, "function") {
		prefix := head[:len(head)-len("function")]
		if prefix == "" || !isIdentByte(prefix[len(prefix)-1]) {
			return false
		}
	}
	return true
}

func isIdentByte(b byte) bool {
	return b == '_' || b == '$' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// scanArguments reads a parenthesised argument list starting at open,
// tracking bracket nesting and skipping string literals. It returns nil when unterminated.
func scanArguments(text string, open int) *CallSite {
	depth := 0
	commas := 0
	for i := open; i < len(text); i++ {
		switch c := text[i]; c {
		case '\'', '"', '`':
			end := skipString(text, i)
			if end == -1 {
				return nil
			}
			i = end
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
			if depth == 0 {
				if c != ')' {
					return nil
				}
				args := text[open+1 : i]
				arity := 0
				if strings.TrimSpace(args) != "" {
					arity = commas + 1
				}
				return &CallSite{Open: open, Close: i, Arguments: args, Arity: arity}
			}
		case ',':
			if depth == 1 {
				commas++
			}
		}
	}
	return nil
}

// skipString returns the offset of the closing quote of the literal starting at i
func skipString(text string, i int) int {
	quote := text[i]
	for j := i + 1; j < len(text); j++ {
		switch text[j] {
		case '\\':
			j++
		case quote:
			return j
		case '\n':
			if quote != '`' {
				return -1
			}
		}
	}
	return -1
}
