package db

import (
	"database/sql"
	"fmt"
)

// Base schema - uses Snowflake IDs (no AUTOINCREMENT)
const baseSchema = `
CREATE TABLE IF NOT EXISTS faqs (
  id INTEGER PRIMARY KEY,
  question TEXT NOT NULL,
  answer TEXT NOT NULL,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS faq_translations (
  id INTEGER PRIMARY KEY,
  faq_id INTEGER NOT NULL,
  language TEXT NOT NULL CHECK (language <> ''),
  question TEXT NOT NULL,
  created_at TEXT NOT NULL,
  UNIQUE (faq_id, language),
  FOREIGN KEY (faq_id) REFERENCES faqs(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_faq_translations_faq_id ON faq_translations(faq_id);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
