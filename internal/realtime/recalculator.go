// Package realtime recomputes career matches as questionnaire responses
// change, exposing a top-N preview once enough answers are in.
package realtime

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonathan/career-explorer/internal/catalog"
	"github.com/jonathan/career-explorer/internal/matching"
	"github.com/jonathan/career-explorer/internal/profile"
	"github.com/jonathan/career-explorer/internal/questionnaire"
	"github.com/jonathan/career-explorer/internal/types"
	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

const (
	// SignalThreshold is the number of answered questions needed before
	// matches are computed
	SignalThreshold = 5
	// DefaultTopN is the preview size
	DefaultTopN = 3
)

// Preview is the recalculator's view of the current responses
type Preview struct {
	// Ready is false below the signal threshold; callers show "no matches yet"
	Ready    bool                `json:"ready"`
	Answered int                 `json:"answered"`
	Matches  []types.CareerMatch `json:"matches"`
	// Stale is set when a throttled update returns the previous preview
	Stale bool `json:"stale,omitempty"`
	// Failed is set when the recomputation panicked
	Failed bool `json:"failed,omitempty"`
}

// Stats counts what the recalculator has done
type Stats struct {
	Computations uint64 `json:"computations"`
	Reused       uint64 `json:"reused"`
	Throttled    uint64 `json:"throttled"`
	BelowSignal  uint64 `json:"below_signal"`
	Failures     uint64 `json:"failures"`
}

type matchFunc func(types.UserProfile, []types.Career) []types.CareerMatch

// Recalculator rebuilds the profile and reruns the engine on every change
// to the responses. It is safe for concurrent use.
type Recalculator struct {
	careers   []types.Career
	match     matchFunc
	builder   *profile.Builder
	questions *questionnaire.Set
	topN      int
	threshold int
	limiter   *rate.Limiter
	logger    *zap.Logger

	group singleflight.Group

	mu      sync.Mutex
	last    Preview
	lastKey string
	hasLast bool

	computations atomic.Uint64
	reused       atomic.Uint64
	throttled    atomic.Uint64
	belowSignal  atomic.Uint64
	failures     atomic.Uint64
}

// Option configures a Recalculator
type Option func(*Recalculator)

// WithTopN sets the preview size
func WithTopN(n int) Option {
	return func(r *Recalculator) {
		if n > 0 {
			r.topN = n
		}
	}
}

// WithThreshold sets the number of answers required before matching
func WithThreshold(n int) Option {
	return func(r *Recalculator) {
		if n > 0 {
			r.threshold = n
		}
	}
}

// WithLogger sets the logger for recomputation failures
func WithLogger(logger *zap.Logger) Option {
	return func(r *Recalculator) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithThrottle limits how often a recomputation may run. Updates over the
// limit return the previous preview marked stale.
func WithThrottle(limiter *rate.Limiter) Option {
	return func(r *Recalculator) {
		r.limiter = limiter
	}
}

// WithQuestions sets the question set used to build profiles
func WithQuestions(set *questionnaire.Set) Option {
	return func(r *Recalculator) {
		if set != nil {
			r.questions = set
		}
	}
}

// New creates a recalculator over a catalog snapshot. A nil engine uses the
// default engine and a nil catalog has no careers.
func New(engine *matching.Engine, c *catalog.Catalog, opts ...Option) *Recalculator {
	if engine == nil {
		engine = matching.Default()
	}
	careers := []types.Career{}
	if c != nil {
		careers = c.Careers()
	}
	r := &Recalculator{
		careers:   careers,
		topN:      DefaultTopN,
		threshold: SignalThreshold,
		logger:    zap.NewNop(),
		questions: questionnaire.Default(),
	}
	r.match = func(p types.UserProfile, careers []types.Career) []types.CareerMatch {
		return engine.Match(p, careers).Matches
	}
	for _, opt := range opts {
		opt(r)
	}
	r.builder = profile.NewBuilder(r.questions, r.logger)
	return r
}

// ShouldRecalculate reports whether responses carry enough signal to match.
// Only valid answers to known questions count.
func (r *Recalculator) ShouldRecalculate(responses types.Responses) bool {
	return r.questions.AnsweredCount(responses) >= r.threshold
}

// Update returns the preview for responses. Below the signal threshold no
// profile is built and the preview is not ready. Identical responses reuse
// the previous preview, and concurrent callers with identical responses
// share one computation.
func (r *Recalculator) Update(responses types.Responses) Preview {
	answered := r.questions.AnsweredCount(responses)
	if answered < r.threshold {
		r.belowSignal.Add(1)
		return Preview{Answered: answered, Matches: []types.CareerMatch{}}
	}

	key, err := fingerprint(responses)
	if err != nil {
		r.logger.Warn("failed to fingerprint responses", zap.Error(err))
	}

	r.mu.Lock()
	if key != "" && r.hasLast && r.lastKey == key {
		p := r.last
		r.mu.Unlock()
		r.reused.Add(1)
		return p.clone()
	}
	if r.limiter != nil && !r.limiter.Allow() {
		p := Preview{Ready: true, Answered: answered, Matches: []types.CareerMatch{}}
		if r.hasLast {
			p = r.last.clone()
		}
		r.mu.Unlock()
		r.throttled.Add(1)
		p.Stale = true
		return p
	}
	r.mu.Unlock()

	snapshot := responses.Clone()
	compute := func() (any, error) {
		return r.compute(snapshot, answered), nil
	}

	var v any
	if key == "" {
		v, _ = compute()
	} else {
		v, _, _ = r.group.Do(key, compute)
	}
	p := v.(Preview)

	if !p.Failed && key != "" {
		r.mu.Lock()
		r.last = p
		r.lastKey = key
		r.hasLast = true
		r.mu.Unlock()
	}
	return p.clone()
}

// compute builds the profile and runs the engine, converting a panic into a
// failed, empty preview
func (r *Recalculator) compute(responses types.Responses, answered int) (p Preview) {
	defer func() {
		if rec := recover(); rec != nil {
			r.failures.Add(1)
			r.logger.Error("match recalculation failed",
				zap.Int("answered", answered),
				zap.String("panic", fmt.Sprint(rec)))
			p = Preview{Ready: true, Answered: answered, Matches: []types.CareerMatch{}, Failed: true}
		}
	}()

	prof, _ := r.builder.Build(responses)
	matches := r.match(prof, r.careers)
	r.computations.Add(1)

	return Preview{
		Ready:    true,
		Answered: answered,
		Matches:  matching.TopN(matches, r.topN),
	}
}

// Watch recomputes for each value received on updates. Values arriving
// within debounce of one another collapse into one recomputation of the
// latest. The returned channel closes when ctx is done or updates closes.
func (r *Recalculator) Watch(ctx context.Context, updates <-chan types.Responses, debounce time.Duration) <-chan Preview {
	out := make(chan Preview, 1)

	go func() {
		defer close(out)

		var (
			pending    types.Responses
			hasPending bool
			timer      *time.Timer
			timerC     <-chan time.Time
		)
		defer func() {
			if timer != nil {
				timer.Stop()
			}
		}()

		emit := func(responses types.Responses) bool {
			select {
			case out <- r.Update(responses):
				return true
			case <-ctx.Done():
				return false
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case responses, ok := <-updates:
				if !ok {
					if hasPending {
						emit(pending)
					}
					return
				}
				if debounce <= 0 {
					if !emit(responses) {
						return
					}
					continue
				}
				pending, hasPending = responses, true
				if timer == nil {
					timer = time.NewTimer(debounce)
				} else {
					timer.Reset(debounce)
				}
				timerC = timer.C
			case <-timerC:
				timerC = nil
				if hasPending {
					hasPending = false
					if !emit(pending) {
						return
					}
				}
			}
		}
	}()

	return out
}

// Stats returns a snapshot of the counters
func (r *Recalculator) Stats() Stats {
	return Stats{
		Computations: r.computations.Load(),
		Reused:       r.reused.Load(),
		Throttled:    r.throttled.Load(),
		BelowSignal:  r.belowSignal.Load(),
		Failures:     r.failures.Load(),
	}
}

func (p Preview) clone() Preview {
	matches := make([]types.CareerMatch, len(p.Matches))
	copy(matches, p.Matches)
	p.Matches = matches
	return p
}

// fingerprint hashes the canonical JSON of responses. encoding/json sorts
// map keys, so equal maps hash equally.
func fingerprint(responses types.Responses) (string, error) {
	data, err := json.Marshal(responses)
	if err != nil {
		return "", fmt.Errorf("failed to marshal responses: %w", err)
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
