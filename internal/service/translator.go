package service

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"faqdesk/backend/internal/cache"
	"faqdesk/backend/internal/logger"
	"faqdesk/backend/internal/model"
	"faqdesk/backend/internal/repository"
	"faqdesk/backend/internal/translate"
)

// translateConcurrency limits in-flight provider calls per job.
const translateConcurrency = 3

// Translator produces translations of one FAQ into every target language
// and records the results: question translations durably on the record,
// answer translations in the volatile cache.
type Translator interface {
	TranslateFAQ(ctx context.Context, faq model.FAQ) error
}

type translator struct {
	faqs      repository.FAQRepository
	answers   *cache.AnswerCache
	provider  translate.Provider
	limiter   *translate.RateLimiter
	languages []string
}

func NewTranslator(
	faqs repository.FAQRepository,
	answers *cache.AnswerCache,
	provider translate.Provider,
	limiter *translate.RateLimiter,
	languages []string,
) Translator {
	return &translator{
		faqs:      faqs,
		answers:   answers,
		provider:  provider,
		limiter:   limiter,
		languages: languages,
	}
}

// TranslateFAQ runs one full translation pass. Answer translations are
// cached per language as soon as they arrive; the record's question
// translations are saved once, after every language succeeded. On the
// first failure the remaining languages are cancelled and nothing is
// persisted. A cache entry written for an earlier language stays; that
// is harmless because cache entries are disposable and the read path
// tolerates entries ahead of the record.
func (t *translator) TranslateFAQ(ctx context.Context, faq model.FAQ) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(translateConcurrency)

	var mu sync.Mutex
	questions := make(map[string]string, len(t.languages))

	for _, lang := range t.languages {
		g.Go(func() error {
			if err := t.limiter.Wait(ctx); err != nil {
				return &TranslationError{FAQID: faq.ID, Lang: lang, Cause: fmt.Errorf("rate limit: %w", err)}
			}
			question, err := t.provider.Translate(ctx, faq.Question, lang, translate.FormatText)
			if err != nil {
				return &TranslationError{FAQID: faq.ID, Lang: lang, Cause: err}
			}

			if err := t.limiter.Wait(ctx); err != nil {
				return &TranslationError{FAQID: faq.ID, Lang: lang, Cause: fmt.Errorf("rate limit: %w", err)}
			}
			answer, err := t.provider.Translate(ctx, faq.Answer, lang, translate.FormatHTML)
			if err != nil {
				return &TranslationError{FAQID: faq.ID, Lang: lang, Cause: err}
			}

			t.answers.SetAnswer(ctx, faq.ID, lang, answer)

			mu.Lock()
			questions[lang] = question
			mu.Unlock()

			logger.Debug("faq language translated", "module", "translator", "action", "translate", "resource", "faq", "result", "ok", "faq_id", faq.ID, "language", lang)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if faq.Translations == nil {
		faq.Translations = make(map[string]string, len(questions))
	}
	for lang, question := range questions {
		faq.Translations[lang] = question
	}

	if _, err := t.faqs.Save(ctx, faq); err != nil {
		return &TranslationError{FAQID: faq.ID, Cause: fmt.Errorf("save translations: %w", err)}
	}

	logger.Info("faq translated", "module", "translator", "action", "translate", "resource", "faq", "result", "ok", "faq_id", faq.ID, "languages", len(t.languages))
	return nil
}
