package realtime

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonathan/career-explorer/internal/catalog"
	q "github.com/jonathan/career-explorer/internal/questionnaire"
	"github.com/jonathan/career-explorer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/time/rate"
)

func fourAnswers() types.Responses {
	return types.Responses{
		q.QInterestAreas:   types.ChoicesAnswer("data", "technology"),
		q.QSkillsTechnical: types.ChoicesAnswer("Python", "SQL"),
		q.QExperienceLevel: types.TextAnswer("entry"),
		q.QExperienceYears: types.NumberAnswer(1),
	}
}

func fiveAnswers() types.Responses {
	r := fourAnswers()
	r[q.QProblemSolving] = types.TextAnswer("analytical")
	return r
}

// countingMatch wraps the default engine and counts invocations
func countingMatch(r *Recalculator) *atomic.Int64 {
	var n atomic.Int64
	inner := r.match
	r.match = func(p types.UserProfile, careers []types.Career) []types.CareerMatch {
		n.Add(1)
		return inner(p, careers)
	}
	return &n
}

func TestShouldRecalculate_Threshold(t *testing.T) {
	r := New(nil, catalog.Default())

	assert.False(t, r.ShouldRecalculate(fourAnswers()))
	assert.True(t, r.ShouldRecalculate(fiveAnswers()))

	// Unanswered entries do not count toward the threshold
	padded := fourAnswers()
	padded[q.QEducationField] = types.TextAnswer("")
	padded[q.QTravel] = types.Answer{}
	assert.False(t, r.ShouldRecalculate(padded))
}

func TestUpdate_JunkAnswersDoNotPassThreshold(t *testing.T) {
	r := New(nil, catalog.Default())
	calls := countingMatch(r)

	unknown := types.Responses{
		"unknown-1": types.TextAnswer("a"),
		"unknown-2": types.NumberAnswer(2),
		"unknown-3": types.FlagAnswer(true),
		"unknown-4": types.ChoicesAnswer("b", "c"),
		"unknown-5": types.TextAnswer("d"),
	}
	invalid := types.Responses{
		q.QExperienceLevel: types.TextAnswer("wizard"),
		q.QExperienceYears: types.NumberAnswer(-1),
		q.QWorkStyle:       types.NumberAnswer(1),
		q.QPace:            types.TextAnswer("glacial"),
		q.QTravel:          types.NumberAnswer(3),
	}

	for name, responses := range map[string]types.Responses{"unknown ids": unknown, "invalid answers": invalid} {
		t.Run(name, func(t *testing.T) {
			assert.False(t, r.ShouldRecalculate(responses))
			p := r.Update(responses)
			assert.False(t, p.Ready)
			assert.Zero(t, p.Answered)
			assert.Empty(t, p.Matches)
		})
	}

	// Junk alongside four valid answers still falls short
	mixed := fourAnswers()
	for id, a := range invalid {
		mixed[id] = a
	}
	mixed["unknown-1"] = types.TextAnswer("a")
	p := r.Update(mixed)
	assert.False(t, p.Ready)
	assert.Equal(t, 2, p.Answered)

	assert.Zero(t, calls.Load())
}

func TestNew_NilCatalogHasNoCareers(t *testing.T) {
	var r *Recalculator
	require.NotPanics(t, func() { r = New(nil, nil) })

	p := r.Update(fiveAnswers())
	assert.True(t, p.Ready)
	assert.NotNil(t, p.Matches)
	assert.Empty(t, p.Matches)
}

func TestUpdate_BelowThresholdDoesNotCompute(t *testing.T) {
	r := New(nil, catalog.Default())
	calls := countingMatch(r)

	p := r.Update(fourAnswers())
	assert.False(t, p.Ready)
	assert.Equal(t, 4, p.Answered)
	assert.NotNil(t, p.Matches)
	assert.Empty(t, p.Matches)
	assert.Zero(t, calls.Load())

	p = r.Update(fiveAnswers())
	assert.True(t, p.Ready)
	assert.Len(t, p.Matches, DefaultTopN)
	assert.Equal(t, int64(1), calls.Load())
	assert.Equal(t, "data-analyst", p.Matches[0].Career.ID)
}

func TestUpdate_IdenticalResponsesReusePreview(t *testing.T) {
	r := New(nil, catalog.Default(), WithTopN(5))
	calls := countingMatch(r)

	first := r.Update(fiveAnswers())
	second := r.Update(fiveAnswers())

	assert.Equal(t, first, second)
	assert.Len(t, second.Matches, 5)
	assert.Equal(t, int64(1), calls.Load())

	changed := fiveAnswers()
	changed[q.QPace] = types.TextAnswer("fast")
	r.Update(changed)
	assert.Equal(t, int64(2), calls.Load())

	stats := r.Stats()
	assert.Equal(t, uint64(2), stats.Computations)
	assert.Equal(t, uint64(1), stats.Reused)
}

func TestUpdate_ReturnedPreviewIsIndependent(t *testing.T) {
	r := New(nil, catalog.Default())
	p := r.Update(fiveAnswers())
	p.Matches[0] = types.CareerMatch{}

	again := r.Update(fiveAnswers())
	assert.NotEmpty(t, again.Matches[0].Career.ID)
}

func TestUpdate_PanicDegradesToEmptyResult(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	r := New(nil, catalog.Default(), WithLogger(zap.New(core)))
	r.match = func(types.UserProfile, []types.Career) []types.CareerMatch {
		panic("boom")
	}

	var p Preview
	require.NotPanics(t, func() { p = r.Update(fiveAnswers()) })
	assert.True(t, p.Ready)
	assert.True(t, p.Failed)
	assert.NotNil(t, p.Matches)
	assert.Empty(t, p.Matches)
	assert.Equal(t, uint64(1), r.Stats().Failures)
	assert.Equal(t, 1, logs.FilterMessage("match recalculation failed").Len())

	// Failures are not cached; a later attempt recomputes
	r.Update(fiveAnswers())
	assert.Equal(t, uint64(2), r.Stats().Failures)
}

func TestUpdate_ThrottledReturnsStalePreview(t *testing.T) {
	limiter := rate.NewLimiter(rate.Every(time.Hour), 1)
	r := New(nil, catalog.Default(), WithThrottle(limiter))

	fresh := r.Update(fiveAnswers())
	require.False(t, fresh.Stale)

	changed := fiveAnswers()
	changed[q.QPace] = types.TextAnswer("fast")
	stale := r.Update(changed)

	assert.True(t, stale.Stale)
	assert.Equal(t, fresh.Matches, stale.Matches)
	assert.Equal(t, uint64(1), r.Stats().Throttled)
	assert.Equal(t, uint64(1), r.Stats().Computations)
}

func TestUpdate_ConcurrentCallersAreSafe(t *testing.T) {
	r := New(nil, catalog.Default())

	var wg sync.WaitGroup
	previews := make([]Preview, 16)
	for i := range previews {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			previews[i] = r.Update(fiveAnswers())
		}(i)
	}
	wg.Wait()

	for _, p := range previews[1:] {
		assert.Equal(t, previews[0].Matches, p.Matches)
	}
	stats := r.Stats()
	assert.GreaterOrEqual(t, stats.Computations, uint64(1))
	assert.LessOrEqual(t, stats.Computations+stats.Reused, uint64(len(previews)))
	assert.Zero(t, stats.Failures)
}

func TestWatch_DebouncesBursts(t *testing.T) {
	r := New(nil, catalog.Default())
	calls := countingMatch(r)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates := make(chan types.Responses)
	previews := r.Watch(ctx, updates, 50*time.Millisecond)

	base := fiveAnswers()
	for _, pace := range []string{"steady", "fast", "varied"} {
		next := base.Clone()
		next[q.QPace] = types.TextAnswer(pace)
		updates <- next
	}

	select {
	case p := <-previews:
		assert.True(t, p.Ready)
	case <-time.After(2 * time.Second):
		t.Fatal("no preview after debounce")
	}
	assert.Equal(t, int64(1), calls.Load())

	close(updates)
	_, open := <-previews
	assert.False(t, open)
}

func TestWatch_StopsOnContextCancel(t *testing.T) {
	r := New(nil, catalog.Default())
	ctx, cancel := context.WithCancel(context.Background())

	updates := make(chan types.Responses)
	previews := r.Watch(ctx, updates, 0)

	updates <- fourAnswers()
	p := <-previews
	assert.False(t, p.Ready)

	cancel()
	select {
	case _, open := <-previews:
		assert.False(t, open)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestFingerprint_StableAcrossMapOrder(t *testing.T) {
	a := fiveAnswers()
	b := types.Responses{}
	for k, v := range a {
		b[k] = v
	}
	fa, err := fingerprint(a)
	require.NoError(t, err)
	fb, err := fingerprint(b)
	require.NoError(t, err)
	assert.Equal(t, fa, fb)
	assert.Len(t, fa, 64)
}
