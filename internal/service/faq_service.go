package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"faqdesk/backend/internal/cache"
	"faqdesk/backend/internal/logger"
	"faqdesk/backend/internal/model"
	"faqdesk/backend/internal/repository"
)

// DefaultLanguage is the source language of stored records.
const DefaultLanguage = "en"

// LocalizedFAQ is one FAQ resolved for a requested language: the question
// from the record's embedded translations, the answer from the volatile
// cache, each falling back to source text when the translation is absent.
type LocalizedFAQ struct {
	ID       int64
	Question string
	Answer   string
}

// TranslationQueue accepts fire-and-forget translation jobs. Enqueue must
// not block and must not fail the caller.
type TranslationQueue interface {
	Enqueue(faq model.FAQ)
}

// FAQService implements the request-facing create/read/update/delete
// operations and the cache-aside contract around them. Write operations
// succeed or fail on durable persistence alone; cache and translation
// health never surface to the caller.
type FAQService interface {
	Create(ctx context.Context, question, answer string) (model.FAQ, error)
	// List resolves all items for the requested language. It never blocks
	// on a live translation: a missing cached answer falls back to the
	// stored source answer verbatim.
	List(ctx context.Context, lang string) ([]LocalizedFAQ, error)
	// Update applies the provided fields; nil leaves a field unchanged.
	Update(ctx context.Context, id int64, question, answer *string) (model.FAQ, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type faqService struct {
	faqs      repository.FAQRepository
	answers   *cache.AnswerCache
	queue     TranslationQueue
	sanitizer *bluemonday.Policy
}

func NewFAQService(faqs repository.FAQRepository, answers *cache.AnswerCache, queue TranslationQueue) FAQService {
	// Answers come from a WYSIWYG editor as HTML; strip anything a UGC
	// policy would not allow before it is persisted.
	return &faqService{
		faqs:      faqs,
		answers:   answers,
		queue:     queue,
		sanitizer: bluemonday.UGCPolicy(),
	}
}

func (s *faqService) Create(ctx context.Context, question, answer string) (model.FAQ, error) {
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(s.sanitizer.Sanitize(answer))
	if question == "" || answer == "" {
		return model.FAQ{}, ErrInvalid
	}

	faq, err := s.faqs.Insert(ctx, question, answer)
	if err != nil {
		return model.FAQ{}, fmt.Errorf("create faq: %w", err)
	}

	s.queue.Enqueue(faq)
	logger.Info("faq created", "module", "service", "action", "create", "resource", "faq", "result", "ok", "faq_id", faq.ID)
	return faq, nil
}

func (s *faqService) List(ctx context.Context, lang string) ([]LocalizedFAQ, error) {
	if lang == "" {
		lang = DefaultLanguage
	}

	faqs, err := s.faqs.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list faqs: %w", err)
	}

	out := make([]LocalizedFAQ, 0, len(faqs))
	for i := range faqs {
		faq := &faqs[i]

		answer := faq.Answer
		if cached, ok := s.answers.GetAnswer(ctx, faq.ID, lang); ok {
			answer = cached
		}

		out = append(out, LocalizedFAQ{
			ID:       faq.ID,
			Question: faq.TranslatedQuestion(lang),
			Answer:   answer,
		})
	}
	return out, nil
}

func (s *faqService) Update(ctx context.Context, id int64, question, answer *string) (model.FAQ, error) {
	faq, err := s.faqs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.FAQ{}, ErrNotFound
		}
		return model.FAQ{}, fmt.Errorf("get faq: %w", err)
	}

	if question != nil {
		trimmed := strings.TrimSpace(*question)
		if trimmed == "" {
			return model.FAQ{}, ErrInvalid
		}
		faq.Question = trimmed
	}
	if answer != nil {
		sanitized := strings.TrimSpace(s.sanitizer.Sanitize(*answer))
		if sanitized == "" {
			return model.FAQ{}, ErrInvalid
		}
		faq.Answer = sanitized
	}

	// Ordering matters: persist, then invalidate, then dispatch. A reader
	// must never see a cached answer that predates the edit.
	updated, err := s.faqs.Save(ctx, faq)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.FAQ{}, ErrNotFound
		}
		return model.FAQ{}, fmt.Errorf("save faq: %w", err)
	}

	s.answers.Invalidate(ctx, id)
	s.queue.Enqueue(updated)

	logger.Info("faq updated", "module", "service", "action", "update", "resource", "faq", "result", "ok", "faq_id", id)
	return updated, nil
}

func (s *faqService) Delete(ctx context.Context, id int64) (int64, error) {
	if err := s.faqs.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("delete faq: %w", err)
	}

	s.answers.Invalidate(ctx, id)

	logger.Info("faq deleted", "module", "service", "action", "delete", "resource", "faq", "result", "ok", "faq_id", id)
	return id, nil
}
