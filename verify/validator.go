package verify

import (
	"context"
	"fmt"

	"github.com/alexbocken/fmtfix/edit"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// Report describes the syntax state of a declarations block
type Report struct {
	Lang     string // Grammar used: javascript or typescript
	HasError bool   // True if the parse tree contains error nodes
}

// Validator parses the script section of a component to catch rewrites that break its syntax
type Validator struct{}

// New creates a validator
func New() *Validator {
	return &Validator{}
}

// Check parses the declarations block of text
func (v *Validator) Check(ctx context.Context, text string) (*Report, error) {
	block, ok := edit.FindDeclarations(text)
	if !ok {
		return nil, edit.ErrNoDeclarations
	}
	report := &Report{Lang: "javascript"}
	language := javascript.GetLanguage()
	switch block.Lang() {
	case "ts", "typescript":
		report.Lang = "typescript"
		language = typescript.GetLanguage()
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(language)

	tree, err := parser.ParseCtx(ctx, nil, []byte(block.Content(text)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	defer tree.Close()
	report.HasError = tree.RootNode().HasError()
	return report, nil
}

// Regressed returns true if before parsed cleanly and after does not
func (v *Validator) Regressed(ctx context.Context, before, after string) (bool, error) {
	prev, err := v.Check(ctx, before)
	if err != nil {
		return false, err
	}
	if prev.HasError {
		return false, nil
	}
	next, err := v.Check(ctx, after)
	if err != nil {
		return false, err
	}
	return next.HasError, nil
}
