package recetario

import "errors"

var (
	// ErrMissingReferenceData is returned when the recipes or equivalences files are absent.
	ErrMissingReferenceData = errors.New("missing reference data")
	// ErrNotFound is returned when an ingredient is absent from the equivalences table.
	ErrNotFound = errors.New("ingredient not found in equivalences")
	// ErrNotSubstitutable is returned when a substitute is not a candidate for an ingredient.
	ErrNotSubstitutable = errors.New("ingredient cannot be substituted")
	// ErrUnknownDish is returned when a dish is absent from the cookbook.
	ErrUnknownDish = errors.New("unknown dish")
	// ErrEmptyHistory is returned by HistoryStore.Load when nothing was ever saved.
	ErrEmptyHistory = errors.New("history is empty")
	// ErrMalformedHistory is returned when a history table cannot be parsed.
	ErrMalformedHistory = errors.New("malformed history")
)
