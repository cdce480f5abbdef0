// Package vocabio reads and writes the token→id vocabulary exchange format.
// Two encodings are supported: a JSON object mapping tokens to ids, and the
// BERT-style vocab.txt with one token per line where the line number is the id.
package vocabio

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-json"
)

// Load reads a vocabulary file, picking the format from the extension:
// .json for the JSON mapping, anything else for vocab.txt lines.
func Load(path string) (map[string]int, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return LoadJSON(path)
	}
	return LoadText(path)
}

// LoadJSON reads a {"token": id, ...} mapping.
func LoadJSON(path string) (map[string]int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var vocab map[string]int
	if err := json.Unmarshal(raw, &vocab); err != nil {
		return nil, fmt.Errorf("parse vocab json: %w", err)
	}
	return vocab, nil
}

// LoadText reads a vocab.txt file. Blank lines are skipped; ids follow the
// order of the remaining lines.
func LoadText(path string) (map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	vocab := make(map[string]int)
	scanner := bufio.NewScanner(f)
	id := 0
	for scanner.Scan() {
		token := strings.TrimSpace(scanner.Text())
		if token == "" {
			continue
		}
		if _, ok := vocab[token]; ok {
			return nil, fmt.Errorf("duplicate token %q in %s", token, path)
		}
		vocab[token] = id
		id++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return vocab, nil
}

// SaveJSON writes the mapping as indented JSON with keys ordered by id, so
// repeated saves of the same vocabulary produce identical files.
func SaveJSON(path string, vocab map[string]int) error {
	tokens := make([]string, 0, len(vocab))
	for tok := range vocab {
		tokens = append(tokens, tok)
	}
	sort.Slice(tokens, func(i, j int) bool {
		if vocab[tokens[i]] != vocab[tokens[j]] {
			return vocab[tokens[i]] < vocab[tokens[j]]
		}
		return tokens[i] < tokens[j]
	})

	var b strings.Builder
	b.WriteString("{\n")
	for i, tok := range tokens {
		key, err := json.Marshal(tok)
		if err != nil {
			return fmt.Errorf("encode token %q: %w", tok, err)
		}
		fmt.Fprintf(&b, "  %s: %d", key, vocab[tok])
		if i < len(tokens)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString("}\n")
	return os.WriteFile(path, []byte(b.String()), 0o644)
}
