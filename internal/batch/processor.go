// Package batch runs the extractor over many documents, isolating failures
// so one bad file never aborts the rest.
package batch

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/muhammadolammi/resumefields/internal/extract"
	"github.com/muhammadolammi/resumefields/internal/logger"
)

const DefaultConcurrency = 4

// Result is either an extraction record or an error entry for one document.
type Result struct {
	*extract.Record
	File          string `json:"file"`
	IsErrorResult bool   `json:"is_error_result"`
	Error         string `json:"error,omitempty"`
}

type Processor struct {
	extractor   *extract.Extractor
	concurrency int
	logger      *zap.Logger
}

type Option func(*Processor)

func WithConcurrency(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(p *Processor) {
		p.logger = logger.OrNop(l)
	}
}

func NewProcessor(extractor *extract.Extractor, opts ...Option) *Processor {
	if extractor == nil {
		extractor = extract.New(nil)
	}
	p := &Processor{
		extractor:   extractor,
		concurrency: DefaultConcurrency,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run extracts every source and returns the results in source order.
// Documents not started before ctx is done are reported with the context
// error.
func (p *Processor) Run(ctx context.Context, sources []Source) []Result {
	results := make([]Result, len(sources))

	var g errgroup.Group
	g.SetLimit(p.concurrency)

	for i, src := range sources {
		if err := ctx.Err(); err != nil {
			results[i] = p.failed(src.Name(), loadError(src.Name(), err))
			continue
		}
		g.Go(func() error {
			results[i] = p.process(ctx, src)
			return nil
		})
	}
	_ = g.Wait()

	succeeded, failed := Summary(results)
	p.logger.Info("batch processed",
		zap.Int("documents", len(results)),
		zap.Int("succeeded", succeeded),
		zap.Int("failed", failed),
	)
	return results
}

func (p *Processor) process(ctx context.Context, src Source) Result {
	name := src.Name()

	if err := ctx.Err(); err != nil {
		return p.failed(name, loadError(name, err))
	}

	text, err := src.Load(ctx)
	if err != nil {
		return p.failed(name, loadError(name, err))
	}

	rec := p.extractor.Extract(extract.Document{Name: name, Text: text})
	p.logger.Debug("document extracted",
		zap.String("file", name),
		zap.String("name", rec.Name),
		zap.Int("skills", len(rec.Skills)),
		zap.String("preview", logger.Truncate(rec.RawText, 80)),
	)
	return Result{Record: &rec, File: name}
}

func (p *Processor) failed(name string, err error) Result {
	p.logger.Warn("document failed", zap.String("file", name), zap.Error(err))
	return Result{File: name, IsErrorResult: true, Error: err.Error()}
}

// Summary counts the successful and failed results.
func Summary(results []Result) (succeeded, failed int) {
	for _, r := range results {
		if r.IsErrorResult {
			failed++
		} else {
			succeeded++
		}
	}
	return succeeded, failed
}
