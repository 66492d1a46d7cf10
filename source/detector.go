package source

import (
	"context"
	"fmt"
	"github.com/viant/afs"
	"path/filepath"
)

// Detector identifies the project root a target path belongs to
type Detector struct {
	fs      afs.Service
	markers []string
}

// NewDetector creates a project root detector for Svelte projects
func NewDetector(fs afs.Service) *Detector {
	if fs == nil {
		fs = afs.New()
	}
	return &Detector{
		fs: fs,
		markers: []string{
			"svelte.config.js", // SvelteKit projects
			"package.json",     // JavaScript/Node projects
			".git",             // Generic VCS marker
		},
	}
}

// FindRoot searches up from location for the closest project marker
func (d *Detector) FindRoot(ctx context.Context, location string) (string, error) {
	dir, err := filepath.Abs(location)
	if err != nil {
		return "", err
	}
	for {
		for _, marker := range d.markers {
			if ok, _ := d.fs.Exists(ctx, filepath.Join(dir, marker)); ok {
				return dir, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("no project root found for %s", location)
}
