package wordpiece

import "strings"

// piece is one emitted subword with its vocabulary id.
type piece struct {
	text string
	id   int
}

// segmenter decomposes a single word into vocabulary tokens using greedy
// longest-match-first. Two tries are kept: one for word-initial tokens and
// one for continuation tokens (stored with the marker stripped, so every
// match position works on the bare word runes).
type segmenter struct {
	initial      *trie
	continuation *trie
	decoder      func(id int) (string, bool)
	unkPiece     piece
	maxWordRunes int
}

func newSegmenter(v *Vocab, prefix, unkToken string, maxWordRunes int) *segmenter {
	s := &segmenter{
		initial:      newTrie(),
		continuation: newTrie(),
		decoder:      v.Token,
		maxWordRunes: maxWordRunes,
	}
	unkID, _ := v.ID(unkToken)
	s.unkPiece = piece{text: unkToken, id: unkID}
	for tok, id := range v.encoder {
		if rest, ok := strings.CutPrefix(tok, prefix); ok && rest != "" {
			s.continuation.insert(rest, id)
			continue
		}
		s.initial.insert(tok, id)
	}
	return s
}

// segment returns the word's token sequence. A word with no full greedy
// segmentation maps to exactly one unknown emission: previously matched
// pieces are discarded rather than kept alongside the fallback.
func (s *segmenter) segment(word []rune) []piece {
	if len(word) == 0 {
		return nil
	}
	if s.maxWordRunes > 0 && len(word) > s.maxWordRunes {
		return []piece{s.unkPiece}
	}

	var out []piece
	start := 0
	for start < len(word) {
		matcher := s.continuation
		if start == 0 {
			matcher = s.initial
		}
		end, id, ok := matcher.longestMatch(word, start)
		if !ok {
			return []piece{s.unkPiece}
		}
		text, ok := s.decoder(id)
		if !ok {
			return []piece{s.unkPiece}
		}
		out = append(out, piece{text: text, id: id})
		start = end
	}
	return out
}
