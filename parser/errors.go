package parser

import "github.com/pkg/errors"

var (
	// ErrTooManyErrors is returned by the tokenizer once the number of
	// recoverable errors reaches Config.MaxErrors.
	ErrTooManyErrors = errors.New("too many errors")

	// ErrUnsupportedEntity aborts normalization when an entity reference has no
	// known code point.
	ErrUnsupportedEntity = errors.New("unsupported entity name")

	// ErrEndTagEmptyElement is returned when an end-tag is turned into an empty element.
	ErrEndTagEmptyElement = errors.New("end-tag cannot be an empty element")

	// ErrNotEndTag is returned when a dummy element is built from a start-tag.
	ErrNotEndTag = errors.New("dummy element requires an end-tag")
)
