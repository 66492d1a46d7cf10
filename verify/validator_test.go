package verify_test

import (
	"context"
	"testing"

	"github.com/alexbocken/fmtfix/edit"
	"github.com/alexbocken/fmtfix/verify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Check(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantLang  string
		wantError bool
	}{
		{
			name:     "javascript",
			text:     "<script>\n  import { onMount } from 'svelte';\n  let total = formatCurrency(1, 'CHF', 'de-CH');\n</script>\n<p>{total}</p>",
			wantLang: "javascript",
		},
		{
			name:     "typescript",
			text:     "<script lang=\"ts\">\n  let total: number = 0;\n</script>",
			wantLang: "typescript",
		},
		{
			name:      "broken string literal",
			text:      "<script>\n  let total = formatCurrency(1, 'CHF);\n</script>",
			wantLang:  "javascript",
			wantError: true,
		},
	}

	validator := verify.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := validator.Check(context.Background(), tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLang, report.Lang)
			assert.Equal(t, tt.wantError, report.HasError)
		})
	}
}

func TestValidator_Regressed(t *testing.T) {
	validator := verify.New()
	ctx := context.Background()
	before := "<script>\n  let a = formatCurrency(1);\n</script>"

	regressed, err := validator.Regressed(ctx, before, "<script>\n  let a = formatCurrency(1, 'CHF', 'de-CH');\n</script>")
	require.NoError(t, err)
	assert.False(t, regressed)

	regressed, err = validator.Regressed(ctx, before, "<script>\n  let a = formatCurrency(1, 'CHF);\n</script>")
	require.NoError(t, err)
	assert.True(t, regressed)

	_, err = validator.Check(ctx, "<p>no script</p>")
	assert.ErrorIs(t, err, edit.ErrNoDeclarations)
}
