package autosave

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recorder struct {
	mu    sync.Mutex
	saved []string
}

func (r *recorder) save(_ context.Context, payload json.RawMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved = append(r.saved, string(payload))
	return nil
}

func (r *recorder) list() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.saved...)
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestTouchDebounces(t *testing.T) {
	rec := &recorder{}
	s := New(rec.save, 30*time.Millisecond, discard)

	for _, p := range []string{`{"step":1}`, `{"step":2}`, `{"step":3}`} {
		s.Touch(json.RawMessage(p))
		time.Sleep(5 * time.Millisecond)
	}
	require.Eventually(t, func() bool { return len(rec.list()) == 1 }, time.Second, 5*time.Millisecond)
	// no second save once the quiet period has passed
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, []string{`{"step":3}`}, rec.list())
	require.NoError(t, s.Close())
}

func TestNewSaveSupersedesInFlight(t *testing.T) {
	started := make(chan string, 2)
	var mu sync.Mutex
	var finished []string
	save := func(ctx context.Context, payload json.RawMessage) error {
		started <- string(payload)
		if string(payload) == `{"v":1}` {
			<-ctx.Done()
			return ctx.Err()
		}
		mu.Lock()
		finished = append(finished, string(payload))
		mu.Unlock()
		return nil
	}
	s := New(save, 10*time.Millisecond, discard)

	s.Touch(json.RawMessage(`{"v":1}`))
	assert.Equal(t, `{"v":1}`, <-started)

	s.Touch(json.RawMessage(`{"v":2}`))
	assert.Equal(t, `{"v":2}`, <-started)

	require.NoError(t, s.Close())
	assert.Equal(t, []string{`{"v":2}`}, finished)
}

func TestFlush(t *testing.T) {
	rec := &recorder{}
	s := New(rec.save, time.Hour, discard)

	require.NoError(t, s.Flush(context.Background()))
	assert.Empty(t, rec.list())

	s.Touch(json.RawMessage(`{"a":1}`))
	require.NoError(t, s.Flush(context.Background()))
	assert.Equal(t, []string{`{"a":1}`}, rec.list())

	require.NoError(t, s.Close())
}

func TestFlushReturnsSaveError(t *testing.T) {
	boom := errors.New("boom")
	s := New(func(context.Context, json.RawMessage) error { return boom }, time.Hour, discard)

	s.Touch(json.RawMessage(`{}`))
	assert.ErrorIs(t, s.Flush(context.Background()), boom)
	assert.ErrorIs(t, s.Close(), boom)
}

func TestCloseWaitsAndStops(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	var done bool
	save := func(context.Context, json.RawMessage) error {
		close(started)
		<-release
		done = true
		return nil
	}
	s := New(save, 5*time.Millisecond, discard)
	s.Touch(json.RawMessage(`{}`))
	<-started

	closed := make(chan struct{})
	go func() {
		_ = s.Close()
		close(closed)
	}()
	select {
	case <-closed:
		t.Fatal("Close returned before the save finished")
	case <-time.After(20 * time.Millisecond):
	}
	close(release)
	<-closed
	assert.True(t, done)

	// touches after Close are ignored
	s.Touch(json.RawMessage(`{"late":true}`))
	require.NoError(t, s.Flush(context.Background()))
}
