package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"faqdesk/backend/internal/logger"
	"faqdesk/backend/internal/model"
)

// TranslateDispatcher runs translation jobs on a fixed worker pool. Jobs
// outlive the request that enqueued them and report nothing back to it;
// failures are only logged. Two jobs for the same item are not serialized;
// the last save to complete wins.
type TranslateDispatcher struct {
	translator Translator
	jobs       chan model.FAQ
	timeout    time.Duration
	workers    int

	wg      sync.WaitGroup
	mu      sync.Mutex
	stopped bool
}

func NewTranslateDispatcher(translator Translator, workers, queueSize int, timeout time.Duration) *TranslateDispatcher {
	if workers <= 0 {
		workers = 2
	}
	if queueSize <= 0 {
		queueSize = 64
	}
	return &TranslateDispatcher{
		translator: translator,
		jobs:       make(chan model.FAQ, queueSize),
		timeout:    timeout,
		workers:    workers,
	}
}

func (d *TranslateDispatcher) Start() {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
	logger.Info("translate dispatcher started", "module", "dispatcher", "action", "start", "resource", "translation", "result", "ok", "workers", d.workers)
}

// Stop drains queued jobs and waits for in-flight ones to finish.
func (d *TranslateDispatcher) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	close(d.jobs)
	d.mu.Unlock()

	d.wg.Wait()
	logger.Info("translate dispatcher stopped", "module", "dispatcher", "action", "stop", "resource", "translation", "result", "ok")
}

// Enqueue submits a job without blocking. When the queue is full the job
// is dropped with a warning: translation is best-effort and the read path
// already tolerates missing translations.
func (d *TranslateDispatcher) Enqueue(faq model.FAQ) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		logger.Warn("translation job rejected after shutdown", "module", "dispatcher", "action", "enqueue", "resource", "translation", "result", "dropped", "faq_id", faq.ID)
		return
	}

	select {
	case d.jobs <- faq:
	default:
		logger.Warn("translation queue full, dropping job", "module", "dispatcher", "action", "enqueue", "resource", "translation", "result", "dropped", "faq_id", faq.ID)
	}
}

func (d *TranslateDispatcher) worker() {
	defer d.wg.Done()
	for faq := range d.jobs {
		d.run(faq)
	}
}

func (d *TranslateDispatcher) run(faq model.FAQ) {
	jobID := uuid.NewString()

	ctx := context.Background()
	var cancel context.CancelFunc = func() {}
	if d.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
	}
	defer cancel()

	start := time.Now()
	if err := d.translator.TranslateFAQ(ctx, faq); err != nil {
		logger.Error("translation job failed", "module", "dispatcher", "action", "translate", "resource", "translation", "result", "failed", "job_id", jobID, "faq_id", faq.ID, "error", err)
		return
	}
	logger.Info("translation job completed", "module", "dispatcher", "action", "translate", "resource", "translation", "result", "ok", "job_id", jobID, "faq_id", faq.ID, "duration_ms", time.Since(start).Milliseconds())
}

var _ TranslationQueue = (*TranslateDispatcher)(nil)
