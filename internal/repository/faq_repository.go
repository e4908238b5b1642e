package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"faqdesk/backend/internal/model"
	"faqdesk/backend/internal/snowflake"
)

//go:generate mockgen -source=faq_repository.go -destination=mock/faq_repository_mock.go -package=mock

// FAQRepository persists FAQ records. It is the source of truth: cached
// answer translations always reconstruct from what is stored here.
type FAQRepository interface {
	Insert(ctx context.Context, question, answer string) (model.FAQ, error)
	FindAll(ctx context.Context) ([]model.FAQ, error)
	// FindByID returns sql.ErrNoRows when no record matches.
	FindByID(ctx context.Context, id int64) (model.FAQ, error)
	// Save updates the record's fields and replaces its stored question
	// translations with the contents of faq.Translations.
	Save(ctx context.Context, faq model.FAQ) (model.FAQ, error)
	// DeleteByID returns sql.ErrNoRows when no record matches.
	DeleteByID(ctx context.Context, id int64) error
}

type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type faqRepository struct {
	db *sql.DB
}

func NewFAQRepository(db *sql.DB) FAQRepository {
	return &faqRepository{db: db}
}

func (r *faqRepository) Insert(ctx context.Context, question, answer string) (model.FAQ, error) {
	id := snowflake.NextID()
	now := time.Now().UTC()

	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO faqs (id, question, answer, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		id, question, answer, formatTime(now), formatTime(now),
	)
	if err != nil {
		return model.FAQ{}, fmt.Errorf("insert faq: %w", err)
	}

	return model.FAQ{
		ID:        id,
		Question:  question,
		Answer:    answer,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (r *faqRepository) FindAll(ctx context.Context) ([]model.FAQ, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, question, answer, created_at, updated_at FROM faqs ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list faqs: %w", err)
	}
	defer rows.Close()

	var faqs []model.FAQ
	for rows.Next() {
		faq, err := scanFAQ(rows)
		if err != nil {
			return nil, err
		}
		faqs = append(faqs, faq)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list faqs: %w", err)
	}

	if err := r.attachTranslations(ctx, faqs); err != nil {
		return nil, err
	}
	return faqs, nil
}

func (r *faqRepository) FindByID(ctx context.Context, id int64) (model.FAQ, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT id, question, answer, created_at, updated_at FROM faqs WHERE id = ?`,
		id,
	)
	faq, err := scanFAQ(row)
	if err != nil {
		return model.FAQ{}, err
	}

	rows, err := r.db.QueryContext(ctx, `SELECT language, question FROM faq_translations WHERE faq_id = ?`, id)
	if err != nil {
		return model.FAQ{}, fmt.Errorf("list faq translations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var lang, question string
		if err := rows.Scan(&lang, &question); err != nil {
			return model.FAQ{}, fmt.Errorf("scan faq translation: %w", err)
		}
		if faq.Translations == nil {
			faq.Translations = make(map[string]string)
		}
		faq.Translations[lang] = question
	}
	if err := rows.Err(); err != nil {
		return model.FAQ{}, err
	}
	return faq, nil
}

func (r *faqRepository) Save(ctx context.Context, faq model.FAQ) (model.FAQ, error) {
	now := time.Now().UTC()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return model.FAQ{}, fmt.Errorf("save faq: begin: %w", err)
	}
	defer tx.Rollback()

	if err := saveFAQ(ctx, tx, faq, now); err != nil {
		return model.FAQ{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.FAQ{}, fmt.Errorf("save faq: commit: %w", err)
	}

	faq.UpdatedAt = now
	return faq, nil
}

// saveFAQ runs the record update and the translation replace on one
// transaction, so a failed save leaves the stored record and its
// translation rows exactly as they were.
func saveFAQ(ctx context.Context, tx dbtx, faq model.FAQ, now time.Time) error {
	res, err := tx.ExecContext(
		ctx,
		`UPDATE faqs SET question = ?, answer = ?, updated_at = ? WHERE id = ?`,
		faq.Question, faq.Answer, formatTime(now), faq.ID,
	)
	if err != nil {
		return fmt.Errorf("save faq: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("save faq: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	// Replace the stored question translations wholesale. The map is small
	// (one row per target language) so delete-and-insert keeps the rows in
	// step with the record without merge bookkeeping.
	if _, err := tx.ExecContext(ctx, `DELETE FROM faq_translations WHERE faq_id = ?`, faq.ID); err != nil {
		return fmt.Errorf("clear faq translations: %w", err)
	}
	for lang, question := range faq.Translations {
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO faq_translations (id, faq_id, language, question, created_at)
			 VALUES (?, ?, ?, ?, ?)`,
			snowflake.NextID(), faq.ID, lang, question, formatTime(now),
		)
		if err != nil {
			return fmt.Errorf("save faq translation %s: %w", lang, err)
		}
	}
	return nil
}

func (r *faqRepository) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM faqs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete faq: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete faq: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *faqRepository) attachTranslations(ctx context.Context, faqs []model.FAQ) error {
	if len(faqs) == 0 {
		return nil
	}

	byID := make(map[int64]*model.FAQ, len(faqs))
	for i := range faqs {
		byID[faqs[i].ID] = &faqs[i]
	}

	rows, err := r.db.QueryContext(ctx, `SELECT faq_id, language, question FROM faq_translations`)
	if err != nil {
		return fmt.Errorf("list faq translations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var faqID int64
		var lang, question string
		if err := rows.Scan(&faqID, &lang, &question); err != nil {
			return fmt.Errorf("scan faq translation: %w", err)
		}
		faq, ok := byID[faqID]
		if !ok {
			continue
		}
		if faq.Translations == nil {
			faq.Translations = make(map[string]string)
		}
		faq.Translations[lang] = question
	}
	return rows.Err()
}

func scanFAQ(scanner interface{ Scan(dest ...any) error }) (model.FAQ, error) {
	var faq model.FAQ
	var createdAt, updatedAt string

	if err := scanner.Scan(&faq.ID, &faq.Question, &faq.Answer, &createdAt, &updatedAt); err != nil {
		return model.FAQ{}, err
	}

	faq.CreatedAt, _ = parseTime(createdAt)
	faq.UpdatedAt, _ = parseTime(updatedAt)
	return faq, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
