package paradigm

import "errors"

// Generation never fails with these errors: generators return empty or
// partial results instead. They are returned by LexicalEntry.Validate and the
// override parsers so callers can report why an entry produced nothing.
var (
	// ErrMissingData is returned when an entry lacks the genitive or
	// principal parts needed to generate, and no override covers the gap.
	ErrMissingData = errors.New("missing morphological data")

	// ErrUnknownParadigm is returned for a declension or conjugation code
	// that names no known paradigm.
	ErrUnknownParadigm = errors.New("unrecognized paradigm code")

	// ErrMalformedOverride is returned for an override entry whose key does
	// not follow the form-key grammar or whose value is empty.
	ErrMalformedOverride = errors.New("malformed override entry")
)
