package source_test

import (
	"context"
	"strings"
	"testing"

	"github.com/alexbocken/fmtfix/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
)

func TestLoader_LoadFlush(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	URL := "mem://localhost/loader/page.svelte"
	require.NoError(t, fs.Upload(ctx, URL, 0644, strings.NewReader("<script>\n</script>\n")))

	loader := source.NewLoader(fs)
	file, err := loader.Load(ctx, URL)
	require.NoError(t, err)
	assert.Equal(t, "<script>\n</script>\n", file.Text)
	assert.False(t, file.Dirty())

	written, err := loader.Flush(ctx, file)
	require.NoError(t, err)
	assert.False(t, written, "unchanged buffer should not be written")

	file.Set("<script>\n  let a;\n</script>\n")
	assert.True(t, file.Dirty())
	written, err = loader.Flush(ctx, file)
	require.NoError(t, err)
	assert.True(t, written)

	data, err := fs.DownloadWithURL(ctx, URL)
	require.NoError(t, err)
	assert.Equal(t, "<script>\n  let a;\n</script>\n", string(data))

	written, err = loader.Flush(ctx, file)
	require.NoError(t, err)
	assert.False(t, written, "flushed buffer should not be written twice")
}

func TestLoader_Load_Errors(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	loader := source.NewLoader(fs)

	_, err := loader.Load(ctx, "mem://localhost/loader/missing.svelte")
	assert.Error(t, err)

	URL := "mem://localhost/loader/binary.svelte"
	require.NoError(t, fs.Upload(ctx, URL, 0644, strings.NewReader("\xff\xfe\x00")))
	_, err = loader.Load(ctx, URL)
	assert.ErrorIs(t, err, source.ErrEncoding)
}

func TestFile_Changed(t *testing.T) {
	file := source.NewFile("page.svelte", "a", 0)
	file.Set("a")
	assert.False(t, file.Dirty())
	file.Set("b")
	assert.True(t, file.Changed())
	file.Set("a")
	assert.True(t, file.Dirty())
	assert.False(t, file.Changed(), "reverted buffer matches loaded content")
}

func TestHash(t *testing.T) {
	a, err := source.Hash([]byte("formatCurrency(total)"))
	require.NoError(t, err)
	b, err := source.Hash([]byte("formatCurrency(total, 'CHF', 'de-CH')"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
	again, _ := source.Hash([]byte("formatCurrency(total)"))
	assert.Equal(t, a, again)
}
