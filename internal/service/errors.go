package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")
	ErrInvalid  = errors.New("invalid")
)

// TranslationError is the job-level failure of a background translation
// pass. It is logged by the dispatcher and never reaches the request
// that triggered the job.
type TranslationError struct {
	FAQID int64
	Lang  string
	Cause error
}

func (e *TranslationError) Error() string {
	if e.Lang != "" {
		return fmt.Sprintf("translate faq %d into %s: %v", e.FAQID, e.Lang, e.Cause)
	}
	return fmt.Sprintf("translate faq %d: %v", e.FAQID, e.Cause)
}

func (e *TranslationError) Unwrap() error {
	return e.Cause
}
