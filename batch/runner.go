package batch

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexbocken/fmtfix/edit"
	"github.com/alexbocken/fmtfix/source"
	"github.com/alexbocken/fmtfix/verify"
	"go.uber.org/zap"
)

// Result represents the outcome for a single file
type Result struct {
	Path         string
	State        State
	ImportAdded  bool
	Definition   string // Name of the removed definition pattern
	CallsUpdated int
	Err          error
}

// Summary aggregates per-file results of a run
type Summary struct {
	Results []*Result
	Total   int
	Written int
	Skipped int
	Failed  int
}

func (s *Summary) add(result *Result) {
	s.Results = append(s.Results, result)
	switch result.State {
	case Written:
		s.Written++
	case Skipped:
		s.Skipped++
	case Failed:
		s.Failed++
	}
}

// Runner applies rewrite stages file by file
type Runner struct {
	config     *Config
	loader     *source.Loader
	importer   *edit.ImportInserter
	remover    *edit.DefinitionRemover
	normalizer *edit.CallNormalizer
	validator  *verify.Validator
	reporter   *Reporter
	logger     *zap.Logger
}

type Option func(*Runner)

// WithLoader sets the file loader
func WithLoader(loader *source.Loader) Option {
	return func(r *Runner) {
		r.loader = loader
	}
}

// WithReporter sets the console reporter
func WithReporter(reporter *Reporter) Option {
	return func(r *Runner) {
		r.reporter = reporter
	}
}

// WithLogger sets the structured logger
func WithLogger(logger *zap.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithRemover overrides the definition patterns
func WithRemover(remover *edit.DefinitionRemover) Option {
	return func(r *Runner) {
		r.remover = remover
	}
}

// New creates a runner for config
func New(config *Config, options ...Option) *Runner {
	if config == nil {
		config = DefaultConfig()
	}
	ret := &Runner{
		config:     config,
		importer:   edit.NewImportInserter(config.Import.Module, config.Import.Symbol, config.Import.Indent),
		remover:    edit.NewDefinitionRemover(config.Call.Name),
		normalizer: edit.NewCallNormalizer(config.Call.Name, config.Call.Arguments...),
	}
	if config.Verify {
		ret.validator = verify.New()
	}
	for _, option := range options {
		option(ret)
	}
	if ret.loader == nil {
		ret.loader = source.NewLoader(nil)
	}
	if ret.reporter == nil {
		ret.reporter = NewReporter(nil)
	}
	if ret.logger == nil {
		ret.logger = zap.NewNop()
	}
	return ret
}

// Run processes paths in order, a failing file never stops the batch
func (r *Runner) Run(ctx context.Context, paths []string, stages Stage) *Summary {
	summary := &Summary{Total: len(paths)}
	r.reporter.Banner(stages.Title(r.config))
	for _, location := range paths {
		result := r.Process(ctx, location, stages)
		summary.add(result)
		r.reporter.Done()
	}
	r.reporter.Summary(summary)
	r.logger.Info("rewrite finished",
		zap.Int("total", summary.Total),
		zap.Int("written", summary.Written),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed))
	return summary
}

// Process loads one file, applies stages and writes it back if changed
func (r *Runner) Process(ctx context.Context, location string, stages Stage) (result *Result) {
	result = &Result{Path: location, State: Pending}
	r.reporter.Processing(location)
	defer func() {
		if p := recover(); p != nil {
			r.fail(result, fmt.Errorf("unexpected failure: %v", p))
		}
	}()

	file, err := r.loader.Load(ctx, location)
	if err != nil {
		return r.fail(result, err)
	}
	result.State = Loaded
	original := file.Text
	logger := r.logger.With(zap.String("path", location))

	if _, ok := edit.FindDeclarations(file.Text); !ok {
		result.State = Skipped
		result.Err = edit.ErrNoDeclarations
		r.reporter.Warn("No <script> tag found")
		logger.Debug("declarations block missing")
		return result
	}

	if stages.Has(StageDeclarations) {
		text, added, err := r.importer.Insert(file.Text)
		if err != nil && !errors.Is(err, edit.ErrNoDeclarations) {
			return r.fail(result, err)
		}
		if added {
			file.Set(text)
			result.ImportAdded = true
			r.reporter.Step("Added import")
			logger.Debug("import added", zap.String("module", r.importer.Module))
		}
		if text, pattern := r.remover.Remove(file.Text); pattern != nil {
			file.Set(text)
			result.Definition = pattern.Name
			r.reporter.Step("Removed %s function", r.remover.Name)
			logger.Debug("definition removed", zap.String("pattern", pattern.Name))
		} else {
			logger.Debug("no matching definition")
		}
	}

	if stages.Has(StageCalls) {
		text, count := r.normalizer.Normalize(file.Text)
		if count > 0 {
			file.Set(text)
			result.CallsUpdated = count
			r.reporter.Step("Updated %d %s calls", count, r.normalizer.Name)
			logger.Debug("calls normalized", zap.Int("count", count))
		}
	}

	if !file.Changed() {
		result.State = Skipped
		r.reporter.Warn("No changes needed")
		return result
	}

	if r.validator != nil {
		regressed, err := r.validator.Regressed(ctx, original, file.Text)
		if err != nil {
			return r.fail(result, err)
		}
		if regressed {
			return r.fail(result, fmt.Errorf("rewrite of %s produced invalid script syntax", location))
		}
	}

	if !r.config.DryRun {
		if _, err = r.loader.Flush(ctx, file); err != nil {
			return r.fail(result, err)
		}
	}
	result.State = Written
	r.reporter.Updated()
	return result
}

func (r *Runner) fail(result *Result, err error) *Result {
	result.State = Failed
	result.Err = err
	r.reporter.Error(err)
	r.logger.Warn("rewrite failed", zap.String("path", result.Path), zap.Error(err))
	return result
}
