package edit_test

import (
	"strings"
	"testing"

	"github.com/alexbocken/fmtfix/edit"
	"github.com/stretchr/testify/assert"
)

const fixedHelper = `
  function formatCurrency(amount) {
    return new Intl.NumberFormat('de-CH', {
      style: 'currency',
      currency: 'CHF'
    }).format(amount);
  }`

const defaultHelper = `
  function formatCurrency(amount, currency = 'CHF') {
    return new Intl.NumberFormat('de-CH', {
      style: 'currency',
      currency: currency
    }).format(amount);
  }`

func TestDefinitionRemover_Remove(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		want        string
		wantPattern string
	}{
		{
			name:        "fixed currency",
			text:        "<script>\n  let a;\n" + fixedHelper + "\n\n  let b;\n</script>",
			want:        "<script>\n  let a;\n\n  let b;\n</script>",
			wantPattern: "fixed-currency",
		},
		{
			name:        "default currency argument",
			text:        "<script>\n  let a;" + defaultHelper + "\n</script>",
			want:        "<script>\n  let a;\n</script>",
			wantPattern: "default-currency",
		},
		{
			name:        "only the first instance is removed",
			text:        "<script>" + fixedHelper + fixedHelper + "\n</script>",
			want:        "<script>" + fixedHelper + "\n</script>",
			wantPattern: "fixed-currency",
		},
		{
			name: "no matching definition",
			text: "<script>\n  function formatCurrency(amount) { return amount.toFixed(2); }\n</script>",
			want: "<script>\n  function formatCurrency(amount) { return amount.toFixed(2); }\n</script>",
		},
	}

	remover := edit.NewDefinitionRemover("formatCurrency")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, pattern := remover.Remove(tt.text)
			assert.Equal(t, tt.want, actual)
			if tt.wantPattern == "" {
				assert.Nil(t, pattern)
				return
			}
			if assert.NotNil(t, pattern) {
				assert.Equal(t, tt.wantPattern, pattern.Name)
			}
			assert.Equal(t, strings.Count(tt.text, "function formatCurrency")-1, strings.Count(actual, "function formatCurrency"))
		})
	}
}

func TestDefinitionRemover_PatternOrder(t *testing.T) {
	remover := edit.NewDefinitionRemover("formatCurrency")
	text := "<script>" + defaultHelper + fixedHelper + "\n</script>"
	actual, pattern := remover.Remove(text)
	if assert.NotNil(t, pattern) {
		assert.Equal(t, "fixed-currency", pattern.Name)
	}
	assert.Equal(t, "<script>"+defaultHelper+"\n</script>", actual)
}
