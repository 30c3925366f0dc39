// Package runtime drives the model/view/update loop. A Process owns one
// component instance mounted on one surface document: every frame it drains
// the mailboxes of the live tree, folds the resulting messages into the
// model, renders a candidate view, and syncs the candidate against the live
// tree.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/lumenui/lumen/pkg/history"
	"github.com/lumenui/lumen/pkg/surface"
	"github.com/lumenui/lumen/pkg/vdom"
)

// Component describes an application: an initial model, a pure fold of
// messages into the model, and a pure view of the model.
type Component[M any] struct {
	Init   M
	Update func(M, vdom.Msg) M
	View   func(M) *vdom.VNode
}

// Runner is the surface the web host drives a process through.
type Runner interface {
	Run(ctx context.Context) error
}

// settings carries the cross-cutting knobs shared by every Process
// instantiation, independent of the model type.
type settings struct {
	logger    *slog.Logger
	metrics   *Metrics
	tracer    trace.Tracer
	log       *history.Log
	scheduler Scheduler
}

// Option configures a Process.
type Option func(*settings)

// WithLogger sets the process logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) { s.logger = logger }
}

// WithMetrics sets the Prometheus metrics sink. Without it the process
// records nothing.
func WithMetrics(m *Metrics) Option {
	return func(s *settings) { s.metrics = m }
}

// WithTracer sets the OpenTelemetry tracer for per-frame spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *settings) { s.tracer = tracer }
}

// WithHistory records every applied mutation into log.
func WithHistory(log *history.Log) Option {
	return func(s *settings) { s.log = log }
}

// WithScheduler sets the frame scheduler. Defaults to a 16ms interval.
func WithScheduler(sch Scheduler) Option {
	return func(s *settings) { s.scheduler = sch }
}

// Process is a mounted component instance. Frames must run from a single
// goroutine; the run loop provides that, and tests may call Frame directly
// instead.
type Process[M any] struct {
	doc  surface.Document
	comp Component[M]

	model M
	tree  *vdom.VNode

	settings

	frames uint64

	closeOnce sync.Once
	closeErr  error
}

// New renders the component's initial view and mounts it: style rules are
// inserted, the markup is mounted, and platform listeners are attached to
// every handler-bearing node.
func New[M any](doc surface.Document, comp Component[M], opts ...Option) (*Process[M], error) {
	if comp.Update == nil || comp.View == nil {
		return nil, fmt.Errorf("runtime: component needs Update and View")
	}

	p := &Process[M]{
		doc:   doc,
		comp:  comp,
		model: comp.Init,
		settings: settings{
			logger: slog.Default(),
			tracer: otel.Tracer("lumen/runtime"),
		},
	}
	for _, opt := range opts {
		opt(&p.settings)
	}
	if p.scheduler == nil {
		p.scheduler = NewIntervalScheduler(16 * time.Millisecond)
	}

	p.tree = comp.View(p.model)
	if p.tree == nil {
		return nil, fmt.Errorf("runtime: view returned nil")
	}

	rules := p.tree.StyleRules()
	for _, rule := range rules {
		if err := doc.InsertRule(rule); err != nil {
			return nil, fmt.Errorf("runtime: insert rule: %w", err)
		}
	}
	markup := p.tree.Markup()
	if err := doc.Mount(markup); err != nil {
		return nil, fmt.Errorf("runtime: mount: %w", err)
	}
	if err := p.tree.AttachEventListeners(doc); err != nil {
		return nil, fmt.Errorf("runtime: attach listeners: %w", err)
	}

	if p.log != nil {
		muts := make([]vdom.Mutation, 0, len(rules)+1)
		for _, rule := range rules {
			muts = append(muts, vdom.Mutation{Op: vdom.OpInsertRule, Value: rule})
		}
		muts = append(muts, vdom.Mutation{Op: vdom.OpMount, Value: markup})
		p.log.Record(muts)
	}

	p.logger.Info("process mounted", "root", p.tree.ID, "rules", len(rules))
	return p, nil
}

// Model returns the current model. Only meaningful between frames.
func (p *Process[M]) Model() M { return p.model }

// Tree returns the live tree. Only meaningful between frames.
func (p *Process[M]) Tree() *vdom.VNode { return p.tree }

// Frame runs one dispatch/render cycle.
func (p *Process[M]) Frame(ctx context.Context) error {
	start := time.Now()
	ctx, span := p.tracer.Start(ctx, "runtime.frame")
	defer span.End()

	dispatched := p.dispatch(ctx)
	err := p.render(ctx)

	p.frames++
	p.metrics.recordFrame(time.Since(start).Seconds())
	span.SetAttributes(
		attribute.Int64("frame", int64(p.frames)),
		attribute.Int("messages", dispatched),
	)
	return err
}

// dispatch drains the tree's mailboxes post-order and folds every message
// into the model. Returns the number of messages folded.
func (p *Process[M]) dispatch(ctx context.Context) int {
	_, span := p.tracer.Start(ctx, "runtime.dispatch")
	defer span.End()

	msgs, report := p.tree.TickReport()
	for _, msg := range msgs {
		p.model = p.comp.Update(p.model, msg)
	}

	p.metrics.recordDispatch(len(msgs), report.Misses)
	if report.Misses > 0 {
		p.logger.Debug("dispatch misses", "misses", report.Misses)
	}
	return len(msgs)
}

// render views the model and syncs the candidate tree against the live one.
func (p *Process[M]) render(ctx context.Context) error {
	_, span := p.tracer.Start(ctx, "runtime.render")
	defer span.End()

	next := p.comp.View(p.model)
	if next == nil {
		return fmt.Errorf("runtime: view returned nil")
	}

	res, err := vdom.Sync(p.doc, p.tree, next, p.doc.Root())
	if err != nil {
		return fmt.Errorf("runtime: sync: %w", err)
	}

	if p.log != nil {
		p.log.Record(res.Mutations)
	}
	skips := res.SkippedChildren + res.SkippedShape
	p.metrics.recordSync(len(res.Mutations), skips)
	if skips > 0 {
		p.logger.Debug("sync skipped subtrees",
			"children_mismatch", res.SkippedChildren,
			"shape_mismatch", res.SkippedShape)
	}
	return nil
}

// Run executes frames on the scheduler until ctx is cancelled, then tears
// the mount down. Implements Runner.
func (p *Process[M]) Run(ctx context.Context) error {
	defer p.scheduler.Stop()

	for {
		select {
		case <-ctx.Done():
			return p.Close()

		case <-p.scheduler.Ticks():
			if err := p.Frame(ctx); err != nil {
				p.logger.Error("frame failed", "error", err)
				p.Close()
				return err
			}
		}
	}
}

// Close detaches platform listeners and removes the tree's style rules.
// Safe to call more than once.
func (p *Process[M]) Close() error {
	p.closeOnce.Do(func() {
		if err := p.tree.DetachEventListeners(p.doc); err != nil {
			// The surface may already be gone; teardown continues.
			p.logger.Debug("detach listeners", "error", err)
		}
		for _, id := range p.tree.CollectIDs() {
			if err := p.doc.DeleteRules(id); err != nil {
				p.closeErr = err
				return
			}
		}
		p.logger.Info("process closed", "frames", p.frames)
	})
	return p.closeErr
}
