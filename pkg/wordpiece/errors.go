package wordpiece

import "errors"

var (
	// ErrInvalidVocab reports a vocabulary that violates the bijection
	// invariant or is missing the unknown token.
	ErrInvalidVocab = errors.New("invalid vocabulary")

	// ErrInvalidParams reports unusable training parameters or an empty corpus.
	ErrInvalidParams = errors.New("invalid parameters")

	// ErrUnknownTokenID reports a decode id with no vocabulary entry.
	ErrUnknownTokenID = errors.New("unknown token id")

	// ErrVocabMismatch reports an encode-time inconsistency between the
	// tokenizer and its vocabulary. It indicates a defect, not bad input.
	ErrVocabMismatch = errors.New("vocabulary mismatch")
)
