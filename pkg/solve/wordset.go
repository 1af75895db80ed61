package solve

// wordSetCap is prime and several times the largest word count ever seen on
// a legal 6x6 board, keeping expected probe length O(1).
const wordSetCap = 15877

// WordSet is an open-addressed hash set of the words found in the current
// trial. It is built to be reused across thousands of trials: Reset clears
// only the slots the last trial actually touched, so its cost tracks words
// found, not table capacity.
type WordSet struct {
	slots   [wordSetCap]string
	touched []int
}

// NewWordSet returns an empty set.
func NewWordSet() *WordSet {
	return &WordSet{touched: make([]int, 0, 256)}
}

// hash is djb2: seed 5381, multiplier 33.
func hash(word []byte) uint32 {
	h := uint32(5381)
	for _, c := range word {
		h = h<<5 + h + uint32(c)
	}
	return h % wordSetCap
}

// Insert adds word to the set, copying it into a free slot. It returns true
// if the word was newly added and false, without mutation, on a duplicate.
func (s *WordSet) Insert(word []byte) bool {
	idx := hash(word)
	for s.slots[idx] != "" {
		if s.slots[idx] == string(word) {
			return false
		}
		idx = (idx + 1) % wordSetCap
	}
	s.slots[idx] = string(word)
	s.touched = append(s.touched, int(idx))
	return true
}

// Len returns the number of stored words.
func (s *WordSet) Len() int { return len(s.touched) }

// Reset empties the set by clearing only the touched slots.
func (s *WordSet) Reset() {
	for _, idx := range s.touched {
		s.slots[idx] = ""
	}
	s.touched = s.touched[:0]
}

// Words drains the stored words in insertion order. The order is stable for
// a fixed grid and dictionary but otherwise carries no meaning.
func (s *WordSet) Words() []string {
	words := make([]string, len(s.touched))
	for k, idx := range s.touched {
		words[k] = s.slots[idx]
	}
	return words
}
