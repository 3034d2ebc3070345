// Package engine runs property checks over random trees and batch jobs over
// files of expressions, spreading the work over a pool of goroutines.
package engine

import (
	"context"
	"math/big"
	"math/rand"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
	"github.com/wildfunctions/symbolics/pkg/errwrap"
	"github.com/wildfunctions/symbolics/pkg/expr"
	"github.com/wildfunctions/symbolics/pkg/numeric"
	"github.com/wildfunctions/symbolics/pkg/pool"
	"github.com/wildfunctions/symbolics/pkg/property"
)

// Engine runs property checks and batches.
type Engine struct {
	cfg     Config
	facade  numeric.Facade
	pool    pool.Pool
	seed    int64
	fs      afero.Fs
	reg     prometheus.Registerer
	metrics *metrics
}

// Option configures an Engine.
type Option func(*Engine)

// WithRegistry sets where the engine registers its counters. The default is
// the global prometheus registry.
func WithRegistry(reg prometheus.Registerer) Option {
	return func(e *Engine) { e.reg = reg }
}

// WithFs sets the filesystem batch input is read from. The default is the
// real one.
func WithFs(fs afero.Fs) Option {
	return func(e *Engine) { e.fs = fs }
}

// New creates a new engine from the given config.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	facade, err := numeric.Lookup(cfg.Numeric)
	if err != nil {
		return nil, err
	}
	p, err := pool.Get(cfg.Pool)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	e := &Engine{
		cfg:    cfg,
		facade: facade,
		pool:   p,
		seed:   seed,
		fs:     afero.NewOsFs(),
		reg:    prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.metrics, err = newMetrics(e.reg); err != nil {
		return nil, errwrap.Wrapf(err, "can't register metrics")
	}
	return e, nil
}

// Seed returns the seed trees are generated from. It differs from the
// configured one when that was zero.
func (e *Engine) Seed() int64 { return e.seed }

func (e *Engine) logf(format string, v ...interface{}) {
	if e.cfg.Logf != nil {
		e.cfg.Logf(format, v...)
	}
}

// Run generates the configured number of random trees and runs every
// configured check against each of them. Failing trees are shrunk before they
// are reported. A property failure is part of the report, not an error; the
// error is only set when ctx ends the run early.
func (e *Engine) Run(ctx context.Context) (Report, error) {
	switch e.facade {
	case numeric.FloatFacade:
		return run[float64](ctx, e, numeric.Float64{})
	default:
		return run[*big.Rat](ctx, e, numeric.Rational{})
	}
}

// outcome is the result of one check against one tree.
type outcome struct {
	err       error
	shrunk    string
	shrunkErr string
}

func run[T any](ctx context.Context, e *Engine, num numeric.Arithmetic[T]) (Report, error) {
	s := expr.New[T](num)
	checks := property.Checks[T]()
	names := e.cfg.Checks
	if len(names) == 0 {
		names = property.Names()
	}

	e.logf("checking %d trees from pool %s with %s numbers, checks %v, workers %d, seed %d",
		e.cfg.Trees, e.cfg.Pool, e.facade, names, e.cfg.Workers, e.seed)

	// trees come from one rng up front so the run does not depend on
	// scheduling
	rng := rand.New(rand.NewSource(e.seed))
	trees := make([]expr.Node[T], e.cfg.Trees)
	for i := range trees {
		trees[i] = pool.RandomTree[T](e.pool, num, rng, e.cfg.MaxDepth)
	}

	results := make([][]outcome, len(trees))
	err := e.fanOut(ctx, len(trees), func(idx int) {
		out := make([]outcome, len(names))
		for j, name := range names {
			check := checks[name]
			out[j].err = check(s, trees[idx])
			if !property.Fails(out[j].err) {
				continue
			}
			out[j].shrunk, out[j].shrunkErr = shrink(e, s, name, trees[idx], check)
		}
		results[idx] = out
	})

	report := Report{
		Numeric: string(e.facade),
		Pool:    e.cfg.Pool,
		Seed:    e.seed,
	}
	stats := make([]CheckStats, len(names))
	for j, name := range names {
		stats[j].Check = name
	}
	for idx, out := range results {
		if out == nil { // cancelled before it ran
			continue
		}
		report.Trees++
		for j, o := range out {
			result := "pass"
			switch {
			case property.Fails(o.err):
				result = "fail"
				stats[j].Failed++
				report.Failures = append(report.Failures, Failure{
					Check:       names[j],
					Tree:        trees[idx].String(),
					Prefix:      expr.Prefix(trees[idx]),
					Shrunk:      o.shrunk,
					ShrunkError: o.shrunkErr,
					Error:       errwrap.String(o.err),
				})
			case o.err != nil:
				result = "skip"
				stats[j].Skipped++
			default:
				stats[j].Passed++
			}
			e.metrics.checksTotal.WithLabelValues(names[j], result).Inc()
		}
		if e.cfg.Verbose && (idx+1)%100 == 0 {
			e.logf("checked %d/%d trees", idx+1, len(trees))
		}
	}
	report.Stats = stats

	e.logf("done: %d trees, %d failures", report.Trees, len(report.Failures))
	if err != nil {
		return report, errwrap.Wrapf(err, "run stopped after %d trees", report.Trees)
	}
	return report, nil
}

// shrink reduces a failing tree and returns the smaller tree with the error it
// fails with. When shrinking itself breaks, that is logged and nothing is
// returned, so the failure is still reported against the original tree.
func shrink[T any](e *Engine, s *expr.Symbolics[T], name string, tree expr.Node[T], check property.Check[T]) (string, string) {
	small, err := property.Shrink(s, tree, check)
	if small == nil {
		e.logf("can't shrink %s failing %s: %v", tree, name, err)
		return "", ""
	}
	return small.String(), errwrap.String(err)
}
