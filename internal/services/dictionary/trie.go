package dictionary

const alphabetSize = 26

// node is one trie vertex. Child ids index Trie.nodes; 0 means no child, since
// the root (id 0) is never anyone's child.
type node struct {
	children [alphabetSize]int32
	terminal bool
}

// Trie is a prefix tree over the letters A-Z, stored as an arena of nodes
type Trie struct {
	nodes []node
	words int
}

// NewTrie creates a trie holding only the root
func NewTrie() *Trie {
	return &Trie{nodes: make([]node, 1)}
}

func letterIndex(r rune) (int, bool) {
	if r < 'A' || r > 'Z' {
		return 0, false
	}
	return int(r - 'A'), true
}

// Insert adds an uppercase word, returning false if the word is empty,
// contains a letter outside A-Z, or is already present.
func (t *Trie) Insert(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if _, ok := letterIndex(r); !ok {
			return false
		}
	}

	var cur int32
	for _, r := range word {
		i, _ := letterIndex(r)
		next := t.nodes[cur].children[i]
		if next == 0 {
			t.nodes = append(t.nodes, node{})
			next = int32(len(t.nodes) - 1)
			t.nodes[cur].children[i] = next
		}
		cur = next
	}

	if t.nodes[cur].terminal {
		return false
	}
	t.nodes[cur].terminal = true
	t.words++
	return true
}

// walk descends along s and returns the node reached
func (t *Trie) walk(s string) (int32, bool) {
	var cur int32
	for _, r := range s {
		i, ok := letterIndex(r)
		if !ok {
			return 0, false
		}
		cur = t.nodes[cur].children[i]
		if cur == 0 {
			return 0, false
		}
	}
	return cur, true
}

// Contains reports whether word was inserted. Matching is exact and case-sensitive.
func (t *Trie) Contains(word string) bool {
	id, ok := t.walk(word)
	return ok && t.nodes[id].terminal
}

// HasPrefix reports whether any inserted word starts with prefix
func (t *Trie) HasPrefix(prefix string) bool {
	_, ok := t.walk(prefix)
	return ok
}

// Len returns the number of words in the trie
func (t *Trie) Len() int {
	return t.words
}

// NodeCount returns the size of the node arena, including the root
func (t *Trie) NodeCount() int {
	return len(t.nodes)
}
