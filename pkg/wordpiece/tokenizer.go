package wordpiece

import (
	"fmt"
	"strings"
)

const (
	// DefaultUnkToken is the fallback emission for unmatchable words.
	DefaultUnkToken = "[UNK]"
	// DefaultContinuationPrefix marks tokens valid only as non-first pieces.
	DefaultContinuationPrefix = "##"
	// DefaultMaxWordRunes bounds per-word segmentation work. Longer words
	// map straight to the unknown token.
	DefaultMaxWordRunes = 200
)

// Options configures a Tokenizer. The zero value gives the standard
// behavior: lowercasing on, "[UNK]" unknown token, "##" continuation
// marker, 200-rune word limit.
type Options struct {
	// CaseSensitive disables lowercasing before segmentation.
	CaseSensitive bool
	// UnkToken overrides the unknown token. Defaults to DefaultUnkToken.
	UnkToken string
	// ContinuationPrefix overrides the continuation marker.
	ContinuationPrefix string
	// MaxWordRunes overrides the per-word rune limit. Negative disables it.
	MaxWordRunes int
}

func (o Options) withDefaults() Options {
	if o.UnkToken == "" {
		o.UnkToken = DefaultUnkToken
	}
	if o.ContinuationPrefix == "" {
		o.ContinuationPrefix = DefaultContinuationPrefix
	}
	if o.MaxWordRunes == 0 {
		o.MaxWordRunes = DefaultMaxWordRunes
	}
	return o
}

// Tokenizer segments whitespace-separated words into subword tokens over a
// fixed vocabulary. It is immutable after construction and safe for
// unbounded concurrent use.
type Tokenizer struct {
	vocab *Vocab
	seg   *segmenter
	opts  Options
}

// New builds a Tokenizer over a token→id mapping. The mapping must satisfy
// the Vocab invariants, including presence of the unknown token.
func New(tokens map[string]int, opts Options) (*Tokenizer, error) {
	opts = opts.withDefaults()
	vocab, err := NewVocab(tokens, opts.UnkToken)
	if err != nil {
		return nil, err
	}
	return &Tokenizer{
		vocab: vocab,
		seg:   newSegmenter(vocab, opts.ContinuationPrefix, opts.UnkToken, opts.MaxWordRunes),
		opts:  opts,
	}, nil
}

// Vocab returns the tokenizer's vocabulary.
func (t *Tokenizer) Vocab() *Vocab { return t.vocab }

// Tokenize splits text on whitespace runs, segments each word, and returns
// the concatenated token strings. It never fails: a word with no full
// segmentation contributes a single unknown token.
func (t *Tokenizer) Tokenize(text string) []string {
	var out []string
	for _, word := range strings.Fields(text) {
		if !t.opts.CaseSensitive {
			word = strings.ToLower(word)
		}
		for _, p := range t.seg.segment([]rune(word)) {
			out = append(out, p.text)
		}
	}
	return out
}

// Encode converts text to vocabulary ids. Tokenize only emits vocabulary
// tokens, so a lookup miss here means the tokenizer and vocabulary have
// diverged and is reported as ErrVocabMismatch.
func (t *Tokenizer) Encode(text string) ([]int, error) {
	tokens := t.Tokenize(text)
	ids := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		id, ok := t.vocab.ID(tok)
		if !ok {
			return nil, fmt.Errorf("%w: token %q has no id", ErrVocabMismatch, tok)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Decode reconstructs text from ids. Continuation tokens are appended with
// the marker stripped and no separating space; other tokens are preceded by
// a single space. The reconstruction is lossy with respect to original
// casing and whitespace.
func (t *Tokenizer) Decode(ids []int) (string, error) {
	var b strings.Builder
	for i, id := range ids {
		tok, ok := t.vocab.Token(id)
		if !ok {
			return "", fmt.Errorf("%w: %d", ErrUnknownTokenID, id)
		}
		rest, cont := strings.CutPrefix(tok, t.opts.ContinuationPrefix)
		switch {
		case i == 0:
			b.WriteString(rest)
		case cont:
			b.WriteString(rest)
		default:
			b.WriteByte(' ')
			b.WriteString(tok)
		}
	}
	return b.String(), nil
}
