package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"faqdesk/backend/internal/model"
	"faqdesk/backend/internal/service"
)

// blockingTranslator signals when a job starts and blocks until released.
type blockingTranslator struct {
	started chan int64
	release chan struct{}

	mu    sync.Mutex
	calls []int64
}

func newBlockingTranslator() *blockingTranslator {
	return &blockingTranslator{
		started: make(chan int64, 16),
		release: make(chan struct{}),
	}
}

func (t *blockingTranslator) TranslateFAQ(ctx context.Context, faq model.FAQ) error {
	t.started <- faq.ID
	<-t.release

	t.mu.Lock()
	t.calls = append(t.calls, faq.ID)
	t.mu.Unlock()
	return nil
}

func (t *blockingTranslator) translated() []int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]int64(nil), t.calls...)
}

func TestTranslateDispatcher_RunsJobs(t *testing.T) {
	tr := newBlockingTranslator()
	close(tr.release)

	d := service.NewTranslateDispatcher(tr, 2, 16, time.Minute)
	d.Start()

	d.Enqueue(model.FAQ{ID: 1})
	d.Enqueue(model.FAQ{ID: 2})
	d.Stop()

	require.ElementsMatch(t, []int64{1, 2}, tr.translated())
}

func TestTranslateDispatcher_DropsWhenQueueFull(t *testing.T) {
	tr := newBlockingTranslator()

	d := service.NewTranslateDispatcher(tr, 1, 1, time.Minute)
	d.Start()

	// First job is picked up by the single worker and blocks.
	d.Enqueue(model.FAQ{ID: 1})
	<-tr.started

	// Second fills the queue; third has nowhere to go and is dropped.
	d.Enqueue(model.FAQ{ID: 2})
	d.Enqueue(model.FAQ{ID: 3})

	close(tr.release)
	d.Stop()

	require.ElementsMatch(t, []int64{1, 2}, tr.translated())
}

func TestTranslateDispatcher_EnqueueAfterStop(t *testing.T) {
	tr := newBlockingTranslator()
	close(tr.release)

	d := service.NewTranslateDispatcher(tr, 1, 4, time.Minute)
	d.Start()
	d.Stop()

	// Must not panic or run.
	d.Enqueue(model.FAQ{ID: 1})
	require.Empty(t, tr.translated())
}

// failingTranslator always fails; failures must stay inside the
// dispatcher and only be logged.
type failingTranslator struct {
	mu    sync.Mutex
	calls int
}

func (t *failingTranslator) TranslateFAQ(ctx context.Context, faq model.FAQ) error {
	t.mu.Lock()
	t.calls++
	t.mu.Unlock()
	return errors.New("provider down")
}

func TestTranslateDispatcher_JobFailureIsContained(t *testing.T) {
	tr := &failingTranslator{}

	d := service.NewTranslateDispatcher(tr, 1, 4, time.Minute)
	d.Start()
	d.Enqueue(model.FAQ{ID: 1})
	d.Stop()

	tr.mu.Lock()
	defer tr.mu.Unlock()
	require.Equal(t, 1, tr.calls)
}

func TestTranslateDispatcher_StopTwice(t *testing.T) {
	tr := newBlockingTranslator()
	close(tr.release)

	d := service.NewTranslateDispatcher(tr, 1, 4, time.Minute)
	d.Start()
	d.Stop()
	d.Stop()
}
