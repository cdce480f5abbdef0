package wordpiece

// trie is a rune-keyed prefix trie over vocabulary tokens. It replaces
// repeated substring hashing during segmentation: one walk from a start
// position finds the longest matching token.
type trie struct {
	root trieNode
}

type trieNode struct {
	children map[rune]*trieNode
	id       int
	terminal bool
}

func newTrie() *trie {
	return &trie{}
}

func (t *trie) insert(token string, id int) {
	node := &t.root
	for _, r := range token {
		if node.children == nil {
			node.children = make(map[rune]*trieNode)
		}
		next, ok := node.children[r]
		if !ok {
			next = &trieNode{}
			node.children[r] = next
		}
		node = next
	}
	node.terminal = true
	node.id = id
}

// longestMatch walks word[start:] and returns the end index and id of the
// longest token found. ok is false when no token matches at start.
func (t *trie) longestMatch(word []rune, start int) (end, id int, ok bool) {
	node := &t.root
	for pos := start; pos < len(word); pos++ {
		next, found := node.children[word[pos]]
		if !found {
			break
		}
		node = next
		if node.terminal {
			end, id, ok = pos+1, node.id, true
		}
	}
	return end, id, ok
}
