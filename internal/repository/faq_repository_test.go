package repository_test

import (
	"context"
	"database/sql"
	"testing"

	"faqdesk/backend/internal/repository"
	"faqdesk/backend/internal/repository/testutil"

	"github.com/stretchr/testify/require"
)

func TestFAQRepository_InsertAndFind(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewFAQRepository(db)
	ctx := context.Background()

	faq, err := repo.Insert(ctx, "What is X?", "<p>X is...</p>")
	require.NoError(t, err)
	require.NotZero(t, faq.ID)
	require.Equal(t, "What is X?", faq.Question)
	require.Equal(t, "<p>X is...</p>", faq.Answer)
	require.Empty(t, faq.Translations)

	fetched, err := repo.FindByID(ctx, faq.ID)
	require.NoError(t, err)
	require.Equal(t, faq.ID, fetched.ID)
	require.Equal(t, faq.Question, fetched.Question)
	require.Equal(t, faq.Answer, fetched.Answer)
	require.Empty(t, fetched.Translations)
}

func TestFAQRepository_FindByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewFAQRepository(db)

	_, err := repo.FindByID(context.Background(), 12345)
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestFAQRepository_FindAll(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewFAQRepository(db)
	ctx := context.Background()

	first, err := repo.Insert(ctx, "Q1", "A1")
	require.NoError(t, err)
	_, err = repo.Insert(ctx, "Q2", "A2")
	require.NoError(t, err)

	first.Translations = map[string]string{"es": "P1"}
	_, err = repo.Save(ctx, first)
	require.NoError(t, err)

	faqs, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, faqs, 2)

	byID := make(map[int64]map[string]string)
	for _, faq := range faqs {
		byID[faq.ID] = faq.Translations
	}
	require.Equal(t, map[string]string{"es": "P1"}, byID[first.ID])
}

func TestFAQRepository_Save_UpdatesFieldsAndReplacesTranslations(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewFAQRepository(db)
	ctx := context.Background()

	faq, err := repo.Insert(ctx, "Old question", "Old answer")
	require.NoError(t, err)

	faq.Translations = map[string]string{"es": "Pregunta", "fr": "Question"}
	saved, err := repo.Save(ctx, faq)
	require.NoError(t, err)
	require.Len(t, saved.Translations, 2)

	// A later save replaces the stored translation rows wholesale.
	faq.Question = "New question"
	faq.Answer = "New answer"
	faq.Translations = map[string]string{"hi": "Naya sawaal"}
	_, err = repo.Save(ctx, faq)
	require.NoError(t, err)

	fetched, err := repo.FindByID(ctx, faq.ID)
	require.NoError(t, err)
	require.Equal(t, "New question", fetched.Question)
	require.Equal(t, "New answer", fetched.Answer)
	require.Equal(t, map[string]string{"hi": "Naya sawaal"}, fetched.Translations)
}

func TestFAQRepository_Save_RollsBackOnFailure(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewFAQRepository(db)
	ctx := context.Background()

	faq, err := repo.Insert(ctx, "Old question", "Old answer")
	require.NoError(t, err)
	faq.Translations = map[string]string{
		"hi": "Hindi", "bn": "Bengali", "es": "Spanish", "fr": "French",
	}
	faq, err = repo.Save(ctx, faq)
	require.NoError(t, err)

	// The empty language key violates the schema check partway through
	// the translation inserts; the whole save must roll back.
	bad := faq
	bad.Question = "New question"
	bad.Translations = map[string]string{"es": "Spanish v2", "": "broken"}
	_, err = repo.Save(ctx, bad)
	require.Error(t, err)

	fetched, err := repo.FindByID(ctx, faq.ID)
	require.NoError(t, err)
	require.Equal(t, "Old question", fetched.Question)
	require.Equal(t, map[string]string{
		"hi": "Hindi", "bn": "Bengali", "es": "Spanish", "fr": "French",
	}, fetched.Translations)
}

func TestFAQRepository_Save_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewFAQRepository(db)

	faq, err := repo.Insert(context.Background(), "Q", "A")
	require.NoError(t, err)

	faq.ID = faq.ID + 1
	_, err = repo.Save(context.Background(), faq)
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestFAQRepository_DeleteByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewFAQRepository(db)
	ctx := context.Background()

	faq, err := repo.Insert(ctx, "Q", "A")
	require.NoError(t, err)
	faq.Translations = map[string]string{"es": "P"}
	_, err = repo.Save(ctx, faq)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteByID(ctx, faq.ID))

	_, err = repo.FindByID(ctx, faq.ID)
	require.ErrorIs(t, err, sql.ErrNoRows)

	// Translation rows cascade with the record.
	var count int
	err = db.QueryRow(`SELECT COUNT(*) FROM faq_translations WHERE faq_id = ?`, faq.ID).Scan(&count)
	require.NoError(t, err)
	require.Zero(t, count)

	require.ErrorIs(t, repo.DeleteByID(ctx, faq.ID), sql.ErrNoRows)
}
