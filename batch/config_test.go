package batch_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexbocken/fmtfix/batch"
	"github.com/alexbocken/fmtfix/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
)

func TestLoadConfig(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	URL := "mem://localhost/config/fmtfix.yaml"
	require.NoError(t, fs.Upload(ctx, URL, 0644, strings.NewReader(`
paths:
  - src/routes/cospend/+page.svelte
  - /abs/settle/+page.svelte
root: /home/alex/homepage
call:
  name: formatCurrency
  arguments: ["'EUR'", "'de-DE'"]
dryRun: true
`)))

	config, err := batch.LoadConfig(ctx, fs, URL)
	require.NoError(t, err)
	assert.Equal(t, []string{"'EUR'", "'de-DE'"}, config.Call.Arguments)
	assert.Equal(t, "$lib/utils/formatters", config.Import.Module, "unset values keep defaults")
	assert.True(t, config.DryRun)

	targets, err := config.Targets(ctx, source.NewDetector(fs))
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join("/home/alex/homepage", "src/routes/cospend/+page.svelte"),
		"/abs/settle/+page.svelte",
	}, targets)
}

func TestConfig_Validate(t *testing.T) {
	config := batch.DefaultConfig()
	assert.NoError(t, config.Validate())
	assert.Len(t, config.Paths, 5)

	config.Paths = nil
	assert.Error(t, config.Validate())

	config = batch.DefaultConfig()
	config.Call.Name = ""
	assert.Error(t, config.Validate())
}
