package source

import (
	"context"
	"errors"
	"fmt"
	"github.com/viant/afs"
	"strings"
	"unicode/utf8"
)

// ErrEncoding is returned when file content is not valid UTF-8 text
var ErrEncoding = errors.New("invalid UTF-8 content")

// Loader reads and writes source files through the afs storage abstraction
type Loader struct {
	fs afs.Service
}

// NewLoader creates a loader, fs defaults to afs.New()
func NewLoader(fs afs.Service) *Loader {
	if fs == nil {
		fs = afs.New()
	}
	return &Loader{fs: fs}
}

// Load reads the whole file at URL into a File buffer
func (l *Loader) Load(ctx context.Context, URL string) (*File, error) {
	object, err := l.fs.Object(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to locate %s: %w", URL, err)
	}
	if object.IsDir() {
		return nil, fmt.Errorf("failed to load %s: is a directory", URL)
	}
	data, err := l.fs.Download(ctx, object)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", URL, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("failed to decode %s: %w", URL, ErrEncoding)
	}
	return NewFile(URL, string(data), object.Mode().Perm()), nil
}

// Flush writes the buffer back only when its content changed since load.
// It reports whether a write took place.
func (l *Loader) Flush(ctx context.Context, file *File) (bool, error) {
	if !file.Changed() {
		return false, nil
	}
	if err := l.fs.Upload(ctx, file.URL, file.Mode, strings.NewReader(file.Text)); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", file.URL, err)
	}
	file.commit()
	return true, nil
}
