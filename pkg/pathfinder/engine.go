package pathfinder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lumennet/pathfinder/pkg/constraints"
	"github.com/lumennet/pathfinder/pkg/logging"
	"github.com/lumennet/pathfinder/pkg/metrics"
	"github.com/lumennet/pathfinder/pkg/parallel"
	"github.com/lumennet/pathfinder/pkg/rank"
	"github.com/lumennet/pathfinder/pkg/search"
	"github.com/lumennet/pathfinder/pkg/topology"
	"github.com/lumennet/pathfinder/pkg/validation"
)

// Config tunes the engine. The zero value is not valid; start from
// DefaultConfig.
type Config struct {
	// SafetyCap bounds the result set when a request leaves spf_max_paths
	// unset, and caps any explicit request above it.
	SafetyCap int

	// Workers is how many subgraph searches one computation may run in
	// parallel.
	Workers int

	// LogLevel is the minimum level for the engine's own logger when none
	// is injected.
	LogLevel string
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		SafetyCap: 100,
		Workers:   4,
		LogLevel:  "info",
	}
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	return validation.NewConfigValidator("Config").
		MinInt("SafetyCap", c.SafetyCap, 1).
		RangeInt("Workers", c.Workers, 1, 256).
		Err()
}

// Engine is the path-computation core. It holds no per-request state;
// every computation is a pure function of (snapshot, request), so one
// Engine serves any number of concurrent callers without locking.
type Engine struct {
	cfg Config
	log logging.Logger
	reg *metrics.Registry
}

// New creates an Engine. A nil logger gets a default JSON logger at the
// configured level; a nil registry gets the process-wide one.
func New(cfg Config, log logging.Logger, reg *metrics.Registry) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		l := logging.NewDefaultLogger()
		l.SetLevel(logging.ParseLevel(cfg.LogLevel))
		log = l
	}
	if reg == nil {
		reg = metrics.DefaultRegistry()
	}
	return &Engine{cfg: cfg, log: log.With(logging.String("component", "pathfinder")), reg: reg}, nil
}

// ComputePaths runs one constrained path computation over the snapshot.
//
// Malformed requests fail fast with ErrInvalidRequest; missing endpoints
// with ErrUnknownNode. An empty result is a legitimate outcome, not an
// error. When ctx expires mid-computation the complete per-subgraph
// results gathered so far are merged and the response is flagged Partial.
func (e *Engine) ComputePaths(ctx context.Context, g *topology.Graph, req *Request) (*Response, error) {
	started := time.Now()
	log := e.log.With(logging.String("computation_id", uuid.NewString()))

	minHits, maxPaths, err := req.validate(e.cfg.SafetyCap)
	if err != nil {
		e.reg.RecordComputation("invalid_request", time.Since(started), 0, 0, false)
		log.Warn("rejected request", logging.Err(err))
		return nil, err
	}

	for field, node := range map[string]string{"source": req.Source, "destination": req.Destination} {
		if _, ok := g.Node(node); !ok {
			e.reg.RecordComputation("unknown_node", time.Since(started), 0, 0, false)
			log.Warn("unknown node", logging.String("node", node))
			return nil, fmt.Errorf("%w: %s %q not in snapshot", ErrUnknownNode, field, node)
		}
	}

	if maxPaths == 0 {
		e.reg.RecordComputation("no_path", time.Since(started), 0, 0, false)
		return &Response{Paths: []PathResult{}}, nil
	}

	subgraphs := constraints.BuildSubgraphs(g, constraints.Filter{
		Mandatory:      req.MandatoryMetrics,
		Flexible:       req.FlexibleMetrics,
		MinHits:        minHits,
		DesiredLinks:   req.DesiredLinks,
		UndesiredLinks: req.UndesiredLinks,
	})

	opts := search.Options{
		Source:      req.Source,
		Destination: req.Destination,
		Weight:      req.SPFAttribute,
		MaxPaths:    maxPaths,
		MaxCost:     req.SPFMaxPathCost,
	}

	// The subgraphs are independent; search them in parallel and merge
	// deterministically afterwards. Completion order never affects the
	// response ordering.
	sets := make([][]*search.Path, len(subgraphs))
	errs := make([]error, len(subgraphs))
	parallel.ForEach(e.cfg.Workers, len(subgraphs), func(i int) {
		sets[i], errs[i] = search.KShortest(ctx, subgraphs[i], opts)
	})

	partial := false
	for _, err := range errs {
		if err != nil {
			// Deadline or cancellation: keep what completed, flag it.
			partial = true
			break
		}
	}

	merged := rank.Merge(sets, req.FlexibleMetrics, maxPaths)

	requested := req.requestedAttrs()
	resp := &Response{
		Paths:   make([]PathResult, len(merged)),
		Partial: partial,
		Found:   merged,
	}
	for i, p := range merged {
		resp.Paths[i] = toPathResult(p, req.SPFAttribute, requested)
	}

	status := "ok"
	if len(merged) == 0 {
		status = "no_path"
	}
	e.reg.RecordComputation(status, time.Since(started), len(merged), len(subgraphs), partial)
	log.Debug("computation finished",
		logging.String("source", req.Source),
		logging.String("destination", req.Destination),
		logging.Int("subgraphs", len(subgraphs)),
		logging.Int("paths", len(merged)),
		logging.Bool("partial", partial),
		logging.Duration("took", time.Since(started)),
	)
	return resp, nil
}

// RankProtection orders failover candidates by descending disjointness
// from the primary path; the circuit-protection module consumes the
// ranked list.
func (e *Engine) RankProtection(primary *search.Path, pool []*search.Path) []*search.Path {
	e.reg.RecordDisjointSelection()
	return rank.RankDisjoint(primary, pool)
}

// BestProtection returns the single best failover candidate, or nil when
// the pool is empty.
func (e *Engine) BestProtection(primary *search.Path, pool []*search.Path) *search.Path {
	e.reg.RecordDisjointSelection()
	return rank.BestDisjoint(primary, pool)
}
