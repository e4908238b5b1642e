package model

import "time"

// FAQ is the durable record for a single FAQ entry. Question and Answer
// hold the source-language (English) text; Answer is rich text from a
// WYSIWYG editor. Translations maps a language code to the translated
// question text and may be nil or partial at any time, since translation
// runs asynchronously after every write.
type FAQ struct {
	ID           int64
	Question     string
	Answer       string
	Translations map[string]string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TranslatedQuestion returns the question in the requested language,
// falling back to the source question when no translation is stored.
func (f *FAQ) TranslatedQuestion(lang string) string {
	if q, ok := f.Translations[lang]; ok && q != "" {
		return q
	}
	return f.Question
}
