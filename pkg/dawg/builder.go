package dawg

import (
	"slices"
	"strings"

	errs "github.com/tilesmith/boggen/pkg/errors"
)

// maxNodes is bounded by the 22-bit child pointer in the packed record.
const maxNodes = 1 << (32 - childShift)

// trieNode is the mutable build-time representation of one letter position.
type trieNode struct {
	children map[byte]*trieNode
	isWord   bool
	index    uint32 // assigned index of this node's record
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[byte]*trieNode)}
}

// Compile builds a packed dictionary graph from a word list.
//
// Words are upper-cased; anything outside A-Z, the empty string, or a word
// longer than MaxWordLen is rejected. The output is trie-shaped rather than
// suffix-minimized: larger than an offline-built artifact, but byte-for-byte
// a valid graph for Load, Match and the solver.
func Compile(words []string) (*Dawg, error) {
	root := newTrieNode()
	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if len(w) > MaxWordLen {
			return nil, errs.New(errs.ErrCodeInvalidWord, "word %q longer than %d letters", w, MaxWordLen)
		}
		n := root
		for k := 0; k < len(w); k++ {
			c := w[k]
			if c < 'A' || c > 'Z' {
				return nil, errs.New(errs.ErrCodeInvalidWord, "word %q contains %q, want A-Z", w, c)
			}
			child, ok := n.children[c]
			if !ok {
				child = newTrieNode()
				n.children[c] = child
			}
			n = child
		}
		n.isWord = true
	}
	if len(root.children) == 0 {
		return nil, errs.New(errs.ErrCodeInvalidWord, "no usable words")
	}

	// Lay out sibling runs as consecutive records, breadth-first, so every
	// child pointer references the first record of its run. Index 0 stays
	// reserved for the sentinel.
	next := uint32(1)
	queue := []*trieNode{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, c := range sortedLetters(n) {
			child := n.children[c]
			child.index = next
			next++
			if next > maxNodes {
				return nil, errs.New(errs.ErrCodeInvalidWord, "dictionary too large: %d records exceeds the %d-record format cap", next, maxNodes)
			}
		}
		for _, c := range sortedLetters(n) {
			if child := n.children[c]; len(child.children) > 0 {
				queue = append(queue, child)
			}
		}
	}

	nodes := make([]Node, next)
	var emit func(n *trieNode)
	emit = func(n *trieNode) {
		letters := sortedLetters(n)
		for pos, c := range letters {
			child := n.children[c]
			rec := uint32(c)
			if child.isWord {
				rec |= eowMask
			}
			if pos == len(letters)-1 {
				rec |= eolMask
			}
			if len(child.children) > 0 {
				// First child of this node is the first record of its run.
				first := child.children[sortedLetters(child)[0]]
				rec |= first.index << childShift
			}
			nodes[child.index] = Node(rec)
			emit(child)
		}
	}
	emit(root)

	return &Dawg{nodes: nodes}, nil
}

func sortedLetters(n *trieNode) []byte {
	letters := make([]byte, 0, len(n.children))
	for c := range n.children {
		letters = append(letters, c)
	}
	slices.Sort(letters)
	return letters
}
