// Package dawg provides the compressed dictionary graph consulted by the
// board solver.
//
// The dictionary is a DAWG (directed acyclic word graph) packed into an array
// of 32-bit records. Each record holds one letter of some word; words sharing
// a prefix share the nodes of that prefix. The packed layout is:
//
//	bits 0-7   letter (upper-case ASCII)
//	bit  8     end-of-sibling-list flag
//	bit  9     end-of-word flag
//	bits 10-31 index of the first child node
//
// Alternatives for a letter at a given position form a sibling run of
// consecutive records, terminated by the end-of-sibling-list flag. Index 0 is
// the reserved "no node" sentinel, and index 1 is the root of the graph: the
// first record of the top-level sibling run.
//
// The graph is immutable after load and safe to share between any number of
// concurrent solvers.
package dawg

import (
	"encoding/binary"
	"io"

	errs "github.com/tilesmith/boggen/pkg/errors"
)

const (
	childShift = 10
	eowMask    = 0x00000200
	eolMask    = 0x00000100
	letterMask = 0x000000FF
)

// Root is the node index where every fresh letter lookup starts.
const Root uint32 = 1

// MaxWordLen is the longest word the dictionary format carries.
const MaxWordLen = 16

// Node is one packed dictionary record.
type Node uint32

// Letter returns the upper-case letter stored in the node.
func (n Node) Letter() byte { return byte(n & letterMask) }

// IsWord reports whether the path ending at this node is a complete word.
func (n Node) IsWord() bool { return n&eowMask != 0 }

// IsLastSibling reports whether this node terminates its sibling run.
func (n Node) IsLastSibling() bool { return n&eolMask != 0 }

// ChildIndex returns the index of the node's first child, or 0 if the word
// cannot be extended past this node.
func (n Node) ChildIndex() uint32 { return uint32(n) >> childShift }

// Dawg is an immutable packed dictionary graph.
type Dawg struct {
	nodes []Node
}

// New wraps an already-decoded node array. nodes[0] must be the sentinel.
func New(nodes []Node) *Dawg {
	return &Dawg{nodes: nodes}
}

// Len returns the number of records, including the sentinel.
func (d *Dawg) Len() int { return len(d.nodes) }

// Match walks the sibling run starting at index i looking for letter.
// It returns the matching node index, or 0 if no sibling carries the letter.
// Passing i == 0 is allowed and reports no match.
func (d *Dawg) Match(i uint32, letter byte) uint32 {
	for i != 0 && d.nodes[i].Letter() != letter {
		i = d.next(i)
	}
	return i
}

// next returns the following sibling of i, or 0 at the end of the run.
func (d *Dawg) next(i uint32) uint32 {
	if d.nodes[i].IsLastSibling() {
		return 0
	}
	return i + 1
}

// Child returns the index where matching the next letter of the word starts,
// or 0 if node i has no continuations.
func (d *Dawg) Child(i uint32) uint32 { return d.nodes[i].ChildIndex() }

// IsWord reports whether the path ending at node i spells a complete word.
func (d *Dawg) IsWord(i uint32) bool { return d.nodes[i].IsWord() }

// Contains reports whether word (upper-case) is in the dictionary.
func (d *Dawg) Contains(word string) bool {
	if word == "" {
		return false
	}
	i := Root
	for k := 0; k < len(word); k++ {
		i = d.Match(i, word[k])
		if i == 0 {
			return false
		}
		if k == len(word)-1 {
			return d.nodes[i].IsWord()
		}
		i = d.Child(i)
		if i == 0 {
			return false
		}
	}
	return false
}

// WordCount walks the whole graph and counts complete words. It is intended
// for diagnostics, not hot paths.
func (d *Dawg) WordCount() int {
	if len(d.nodes) < 2 {
		return 0
	}
	return d.countFrom(Root)
}

func (d *Dawg) countFrom(i uint32) int {
	total := 0
	for i != 0 {
		if d.nodes[i].IsWord() {
			total++
		}
		if c := d.Child(i); c != 0 {
			total += d.countFrom(c)
		}
		i = d.next(i)
	}
	return total
}

// Load reads the binary dictionary artifact: a little-endian uint32 record
// count followed by that many packed records. Record 0 is the sentinel.
func Load(r io.Reader) (*Dawg, error) {
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, errs.Wrap(errs.ErrCodeDictCorrupt, err, "reading record count")
	}
	if count < 2 {
		return nil, errs.New(errs.ErrCodeDictCorrupt, "dictionary has %d records, need at least sentinel and root", count)
	}
	nodes := make([]Node, count)
	if err := binary.Read(r, binary.LittleEndian, nodes); err != nil {
		return nil, errs.Wrap(errs.ErrCodeDictCorrupt, err, "reading %d records", count)
	}
	if nodes[0] != 0 {
		return nil, errs.New(errs.ErrCodeDictCorrupt, "record 0 is not the sentinel")
	}
	for i, n := range nodes {
		if c := n.ChildIndex(); c >= count {
			return nil, errs.New(errs.ErrCodeDictCorrupt, "record %d points past the graph (child %d of %d)", i, c, count)
		}
	}
	return &Dawg{nodes: nodes}, nil
}

// WriteTo emits the binary artifact consumed by Load.
func (d *Dawg) WriteTo(w io.Writer) (int64, error) {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(d.nodes))); err != nil {
		return 0, err
	}
	if err := binary.Write(w, binary.LittleEndian, d.nodes); err != nil {
		return 4, err
	}
	return int64(4 + 4*len(d.nodes)), nil
}
