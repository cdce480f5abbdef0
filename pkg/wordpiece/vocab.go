package wordpiece

import "fmt"

// Vocab is an immutable bijection between subword tokens and integer ids.
// Ids are non-negative but need not be contiguous; the decoder keeps empty
// slots for unassigned ids. A Vocab is safe for concurrent reads.
type Vocab struct {
	encoder map[string]int
	decoder []string
}

// NewVocab builds a Vocab from a token→id mapping. The mapping must be
// non-empty, free of duplicate or negative ids, and contain unkToken.
func NewVocab(tokens map[string]int, unkToken string) (*Vocab, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: empty mapping", ErrInvalidVocab)
	}
	maxID := -1
	for tok, id := range tokens {
		if tok == "" {
			return nil, fmt.Errorf("%w: empty token with id %d", ErrInvalidVocab, id)
		}
		if id < 0 {
			return nil, fmt.Errorf("%w: token %q has negative id %d", ErrInvalidVocab, tok, id)
		}
		if id > maxID {
			maxID = id
		}
	}
	decoder := make([]string, maxID+1)
	encoder := make(map[string]int, len(tokens))
	for tok, id := range tokens {
		if prev := decoder[id]; prev != "" {
			a, b := prev, tok
			if b < a {
				a, b = b, a
			}
			return nil, fmt.Errorf("%w: tokens %q and %q share id %d", ErrInvalidVocab, a, b, id)
		}
		decoder[id] = tok
		encoder[tok] = id
	}
	if _, ok := encoder[unkToken]; !ok {
		return nil, fmt.Errorf("%w: missing unknown token %q", ErrInvalidVocab, unkToken)
	}
	return &Vocab{encoder: encoder, decoder: decoder}, nil
}

// ID returns the id for a token.
func (v *Vocab) ID(token string) (int, bool) {
	id, ok := v.encoder[token]
	return id, ok
}

// Token returns the token for an id.
func (v *Vocab) Token(id int) (string, bool) {
	if id < 0 || id >= len(v.decoder) || v.decoder[id] == "" {
		return "", false
	}
	return v.decoder[id], true
}

// Contains reports whether token is in the vocabulary.
func (v *Vocab) Contains(token string) bool {
	_, ok := v.encoder[token]
	return ok
}

// Size returns the number of entries.
func (v *Vocab) Size() int { return len(v.encoder) }

// Mapping returns a copy of the token→id mapping.
func (v *Vocab) Mapping() map[string]int {
	out := make(map[string]int, len(v.encoder))
	for tok, id := range v.encoder {
		out[tok] = id
	}
	return out
}
