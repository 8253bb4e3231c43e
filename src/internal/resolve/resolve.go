package resolve

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/clideps/clideps/src/internal/catalog"
	"github.com/clideps/clideps/src/internal/checker"
	"github.com/clideps/clideps/src/internal/runner"
	"github.com/clideps/clideps/src/internal/ui"
	"golang.org/x/sync/errgroup"
)

// Resolver checks packages against PATH and the checker registry.
type Resolver struct {
	catalog      *catalog.Catalog
	registry     *checker.Registry
	runner       runner.Runner
	parallelism  int
	probeTimeout time.Duration
	progress     func(done, total int)
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithRunner sets the runner used for PATH lookups.
func WithRunner(r runner.Runner) Option {
	return func(res *Resolver) { res.runner = r }
}

// WithParallelism sets how many packages are probed at once. Values below 1
// mean one at a time.
func WithParallelism(n int) Option {
	return func(res *Resolver) { res.parallelism = max(n, 1) }
}

// WithProbeTimeout bounds each checker run. Values of zero or less mean
// runner.DefaultTimeout.
func WithProbeTimeout(d time.Duration) Option {
	return func(res *Resolver) {
		if d <= 0 {
			d = runner.DefaultTimeout
		}
		res.probeTimeout = d
	}
}

// WithProgress registers a callback invoked after each package is probed.
// Calls are serialized and done increases by one each time.
func WithProgress(fn func(done, total int)) Option {
	return func(res *Resolver) { res.progress = fn }
}

// New creates a Resolver. A nil registry behaves like an empty one.
func New(cat *catalog.Catalog, reg *checker.Registry, opts ...Option) *Resolver {
	r := &Resolver{
		catalog:      cat,
		registry:     reg,
		runner:       &runner.SystemRunner{},
		parallelism:  1,
		probeTimeout: runner.DefaultTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.registry == nil {
		r.registry = checker.NewRegistry()
	}
	return r
}

// Check is a convenience wrapper around New(cat, reg).Check(ctx, req).
func Check(ctx context.Context, cat *catalog.Catalog, reg *checker.Registry, req Request) (*Result, error) {
	return New(cat, reg).Check(ctx, req)
}

type outcome struct {
	found    bool
	evidence string
}

// Check probes each requested package and sorts it into found or missing.
// Every name is validated before anything is probed. Results keep request
// order: mandatory, then recommended, then optional.
func (r *Resolver) Check(ctx context.Context, req Request) (*Result, error) {
	deps, err := r.Dependencies(req)
	if err != nil {
		return nil, err
	}

	outcomes := make([]outcome, len(deps))
	var (
		mu   sync.Mutex
		done int
	)
	var g errgroup.Group
	g.SetLimit(r.parallelism)
	for i, dep := range deps {
		g.Go(func() error {
			outcomes[i] = r.probe(ctx, dep)
			if r.progress != nil {
				mu.Lock()
				done++
				r.progress(done, len(deps))
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	result := &Result{
		FoundInfo:   make(map[string]string),
		MissingInfo: make(map[string]string),
	}
	for i, dep := range deps {
		o := outcomes[i]
		if o.found {
			result.Found = append(result.Found, dep.Package)
			result.FoundInfo[dep.Package.Name] = o.evidence
			continue
		}
		result.MissingInfo[dep.Package.Name] = o.evidence
		switch dep.Severity {
		case Mandatory:
			result.MissingRequired = append(result.MissingRequired, dep.Package)
		case Recommended:
			result.MissingRecommended = append(result.MissingRecommended, dep.Package)
		default:
			result.MissingOptional = append(result.MissingOptional, dep.Package)
		}
	}
	return result, nil
}

// Dependencies validates a request against the catalog and returns the
// dependencies it names, in order.
func (r *Resolver) Dependencies(req Request) ([]Dependency, error) {
	if req.IsEmpty() {
		req = Request{Optional: r.catalog.Names()}
	}

	var deps []Dependency
	seen := make(map[string]Severity)
	groups := []struct {
		severity Severity
		names    []string
	}{
		{Mandatory, req.Mandatory},
		{Recommended, req.Recommended},
		{Optional, req.Optional},
	}
	for _, group := range groups {
		for _, name := range group.names {
			if first, dup := seen[name]; dup {
				return nil, &ErrDuplicateRequest{Name: name, First: first, Second: group.severity}
			}
			seen[name] = group.severity
			pkg, err := r.catalog.Package(name)
			if err != nil {
				return nil, err
			}
			deps = append(deps, Dependency{Package: pkg, Severity: group.severity})
		}
	}
	return deps, nil
}

// probe looks for a package's commands in PATH, falling back to its
// registered checker.
func (r *Resolver) probe(ctx context.Context, dep Dependency) outcome {
	name := dep.Package.Name
	commands := dep.Package.Info.CommandNames

	for _, cmd := range commands {
		if p, err := r.runner.LookPath(cmd); err == nil {
			ui.Debug("Found %s for %s at %s", cmd, name, p)
			return outcome{found: true, evidence: fmt.Sprintf("Found `%s` at `%s`", cmd, p)}
		}
	}

	if r.registry.Has(name) {
		cctx, cancel := context.WithTimeout(ctx, r.probeTimeout)
		defer cancel()
		ok, err := r.registry.Run(cctx, name)
		if ok {
			return outcome{found: true, evidence: fmt.Sprintf("Checker for `%s` passed", name)}
		}
		if err != nil {
			return outcome{evidence: fmt.Sprintf("Checker for `%s` failed: %v", name, err)}
		}
		return outcome{evidence: fmt.Sprintf("Checker for `%s` failed", name)}
	}

	if len(commands) > 0 {
		return outcome{evidence: "Did not find in PATH: " + strings.Join(commands, ", ")}
	}
	return outcome{evidence: fmt.Sprintf("No command names and no checker registered for `%s`", name)}
}
