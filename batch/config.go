package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexbocken/fmtfix/source"
	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Config represents rewrite settings
type Config struct {
	Paths  []string `yaml:"paths"`            // Ordered target files, relative ones resolve against Root
	Root   string   `yaml:"root,omitempty"`   // Project root, detected when empty
	Import Import   `yaml:"import"`           // Shared formatter import
	Call   Call     `yaml:"call"`             // Call normalization
	Verify bool     `yaml:"verify,omitempty"` // Reject rewrites that break script syntax
	DryRun bool     `yaml:"dryRun,omitempty"` // Report without writing
}

// Import describes the shared symbol import
type Import struct {
	Module string `yaml:"module"`
	Symbol string `yaml:"symbol"`
	Indent string `yaml:"indent"`
}

// Call describes the function whose call sites get normalized
type Call struct {
	Name      string   `yaml:"name"`
	Arguments []string `yaml:"arguments"`
}

// DefaultConfig returns the cospend formatter migration settings
func DefaultConfig() *Config {
	return &Config{
		Paths: []string{
			"src/routes/cospend/+page.svelte",
			"src/routes/cospend/payments/+page.svelte",
			"src/routes/cospend/payments/view/[id]/+page.svelte",
			"src/routes/cospend/recurring/+page.svelte",
			"src/routes/cospend/settle/+page.svelte",
		},
		Import: Import{
			Module: "$lib/utils/formatters",
			Symbol: "formatCurrency",
			Indent: "  ",
		},
		Call: Call{
			Name:      "formatCurrency",
			Arguments: []string{"'CHF'", "'de-CH'"},
		},
	}
}

// LoadConfig reads YAML config from URL on top of DefaultConfig
func LoadConfig(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	if fs == nil {
		fs = afs.New()
	}
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", URL, err)
	}
	config := DefaultConfig()
	if err = yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", URL, err)
	}
	return config, config.Validate()
}

// Validate checks required settings
func (c *Config) Validate() error {
	if len(c.Paths) == 0 {
		return fmt.Errorf("no target paths configured")
	}
	if c.Import.Module == "" || c.Import.Symbol == "" {
		return fmt.Errorf("import module and symbol are required")
	}
	if c.Call.Name == "" {
		return fmt.Errorf("call name is required")
	}
	return nil
}

// Targets returns the ordered target locations with relative paths resolved against the project root
func (c *Config) Targets(ctx context.Context, detector *source.Detector) ([]string, error) {
	root := c.Root
	var result = make([]string, 0, len(c.Paths))
	for _, location := range c.Paths {
		if filepath.IsAbs(location) || strings.Contains(location, "://") {
			result = append(result, location)
			continue
		}
		if root == "" {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			root = cwd
			if detected, err := detector.FindRoot(ctx, cwd); err == nil {
				root = detected
			}
		}
		result = append(result, filepath.Join(root, location))
	}
	return result, nil
}
