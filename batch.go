package robotsmatch

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/vnykmshr/goflow/pkg/ratelimit/bucket"
)

// BatchQuery is one (document, agents, url) tuple submitted to a
// BatchChecker alongside others.
type BatchQuery struct {
	Document string
	Agents   []string
	URL      string
}

// BatchResult is the outcome of one BatchQuery.
type BatchResult struct {
	Allowed     bool
	MatchedLine int
	// Err is set when the rate limiter's Wait fails for this query (for
	// example because ctx was canceled); the query is then not evaluated.
	// The core matcher itself never fails.
	Err error
}

// BatchChecker runs many robots.txt queries concurrently, one fresh
// RobotsMatcher per query — never shared across goroutines, since a single
// RobotsMatcher is not safe for concurrent use. Throughput can optionally
// be capped with a token-bucket rate limiter.
type BatchChecker struct {
	concurrency int
	limiter     bucket.Limiter
	logger      *slog.Logger
	metrics     *BatchMetrics
}

// BatchCheckerOption configures a BatchChecker.
type BatchCheckerOption func(*BatchChecker)

// WithConcurrency caps the number of queries evaluated at once. The default
// is runtime.GOMAXPROCS(0).
func WithConcurrency(n int) BatchCheckerOption {
	return func(c *BatchChecker) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithRateLimiter throttles how often new queries may start.
func WithRateLimiter(limiter bucket.Limiter) BatchCheckerOption {
	return func(c *BatchChecker) {
		c.limiter = limiter
	}
}

// WithLogger attaches a structured logger used for per-query diagnostics.
// The zero value (nil) disables logging.
func WithLogger(logger *slog.Logger) BatchCheckerOption {
	return func(c *BatchChecker) {
		c.logger = logger
	}
}

// WithMetrics attaches a BatchMetrics collector that is updated as queries
// complete.
func WithMetrics(m *BatchMetrics) BatchCheckerOption {
	return func(c *BatchChecker) {
		c.metrics = m
	}
}

// NewBatchChecker returns a BatchChecker configured by opts.
func NewBatchChecker(opts ...BatchCheckerOption) *BatchChecker {
	c := &BatchChecker{concurrency: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(c)
	}
	if c.concurrency <= 0 {
		c.concurrency = 1
	}
	return c
}

// Check evaluates every query in queries and returns results in the same
// order. Each query gets its own RobotsMatcher; queries never share
// matcher state. If ctx is canceled, in-flight queries still complete but
// no new ones are started once the rate limiter observes cancellation.
func (c *BatchChecker) Check(ctx context.Context, queries []BatchQuery) []BatchResult {
	results := make([]BatchResult, len(queries))

	sem := make(chan struct{}, c.concurrency)
	var wg sync.WaitGroup

	for i, q := range queries {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				results[i] = BatchResult{Err: err}
				continue
			}
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(i int, q BatchQuery) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = c.checkOne(q)
		}(i, q)
	}

	wg.Wait()

	if c.metrics != nil {
		for _, r := range results {
			c.metrics.observe(r)
		}
	}
	return results
}

func (c *BatchChecker) checkOne(q BatchQuery) BatchResult {
	matcher := NewRobotsMatcher()
	allowed := matcher.AllowedByRobots(q.Document, q.Agents, q.URL)
	line := matcher.matchingLine()

	if c.logger != nil {
		c.logger.Debug("robots query evaluated",
			"url", q.URL,
			"agents", q.Agents,
			"allowed", allowed,
			"matched_line", line,
		)
	}
	return BatchResult{Allowed: allowed, MatchedLine: line}
}
