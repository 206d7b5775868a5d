package webeid_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WebeWizard/flashcard-server/pkg/webeid"
)

func TestIDBitLayout(t *testing.T) {
	t.Parallel()

	minted := time.UnixMilli(webeid.DefaultEpoch + 1)
	gen := webeid.New(5, webeid.WithClock(func() time.Time { return minted }))

	first, err := gen.Next()
	require.NoError(t, err)
	assert.Equal(t, int64(1<<16|5<<8), first.Int64())
	assert.Equal(t, uint8(5), first.Node())
	assert.Equal(t, uint8(0), first.Seq())
	assert.Equal(t, minted, first.Time())

	second, err := gen.Next()
	require.NoError(t, err)
	assert.Equal(t, first.Int64()+1, second.Int64())
	assert.Equal(t, uint8(1), second.Seq())
}

func TestNextStrictlyIncreasing(t *testing.T) {
	t.Parallel()

	gen := webeid.New(0)

	var prev webeid.ID
	for i := 0; i < 1000; i++ {
		id, err := gen.Next()
		require.NoError(t, err)
		require.Greater(t, id.Int64(), prev.Int64())
		prev = id
	}
}

func TestSequenceExhaustionWaitsForNextMillisecond(t *testing.T) {
	t.Parallel()

	t1 := time.UnixMilli(webeid.DefaultEpoch + 1)
	t2 := time.UnixMilli(webeid.DefaultEpoch + 2)

	// The clock reads t1 for the first 256 mints and the exhausted 257th
	// attempt, then ticks over to t2 while the generator waits.
	calls := 0
	clock := func() time.Time {
		calls++
		if calls <= 257 {
			return t1
		}
		return t2
	}

	gen := webeid.New(9, webeid.WithClock(clock))

	var last webeid.ID
	for i := 0; i < 256; i++ {
		id, err := gen.Next()
		require.NoError(t, err)
		last = id
	}
	assert.Equal(t, uint8(255), last.Seq())

	rolled, err := gen.Next()
	require.NoError(t, err)
	assert.Greater(t, rolled.Int64(), last.Int64())
	assert.Equal(t, uint8(0), rolled.Seq())
	assert.Equal(t, t2, rolled.Time())
}

func TestClockBackwards(t *testing.T) {
	t.Parallel()

	times := []time.Time{
		time.UnixMilli(webeid.DefaultEpoch + 100),
		time.UnixMilli(webeid.DefaultEpoch + 50),
	}
	calls := 0
	clock := func() time.Time {
		calls++
		return times[calls-1]
	}

	gen := webeid.New(0, webeid.WithClock(clock))

	_, err := gen.Next()
	require.NoError(t, err)

	_, err = gen.Next()
	require.ErrorIs(t, err, webeid.ErrClockBackwards)
}

func TestConcurrentUniqueness(t *testing.T) {
	t.Parallel()

	const (
		goroutines = 8
		perWorker  = 500
	)

	gen := webeid.New(3)

	var (
		mu  sync.Mutex
		ids = make(map[webeid.ID]struct{}, goroutines*perWorker)
		wg  sync.WaitGroup
	)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]webeid.ID, 0, perWorker)
			for j := 0; j < perWorker; j++ {
				id, err := gen.Next()
				assert.NoError(t, err)
				local = append(local, id)
			}
			mu.Lock()
			defer mu.Unlock()
			for _, id := range local {
				ids[id] = struct{}{}
			}
		}()
	}
	wg.Wait()

	assert.Len(t, ids, goroutines*perWorker)
}

func TestParseID(t *testing.T) {
	t.Parallel()

	gen := webeid.New(7)
	id, err := gen.Next()
	require.NoError(t, err)

	parsed, err := webeid.ParseID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = webeid.ParseID("not-a-number")
	assert.Error(t, err)
}

func TestCustomEpoch(t *testing.T) {
	t.Parallel()

	epoch := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	minted := epoch.Add(42 * time.Millisecond)

	gen := webeid.New(1,
		webeid.WithEpoch(epoch),
		webeid.WithClock(func() time.Time { return minted }),
	)

	id, err := gen.Next()
	require.NoError(t, err)
	assert.Equal(t, int64(42<<16|1<<8), id.Int64())
}
