package lattice

import (
	"fmt"
	"slices"

	"github.com/gordian-engine/lattice/lhash"
)

// Tree is a binary Merkle tree over an ordered sequence of values.
//
// Level 0 holds the leaf values in their original order;
// every higher level holds lowercase hex digest strings,
// each level half the width of the one below it (rounded up),
// ending in the single-node root level.
//
// A Tree is fully derived by [NewTree] and immutable afterwards.
type Tree struct {
	hasher lhash.Hasher

	// levels[0] is the leaf values; higher levels hold string digests.
	levels [][]any
}

// NewTree derives the full tree for the given leaves.
// The leaves slice is copied,
// so later mutation of the caller's slice does not affect the tree.
//
// The hasher digests the canonical serialization of each node pair;
// see [lhash.CanonicalPair].
// At an odd-width level the unpaired trailing node is paired with itself.
// The leaf level always derives at least one level above it,
// so a single-leaf tree has depth 2
// and its root is the digest of the leaf paired with itself.
//
// NewTree returns [ErrNilHasher] or [ErrNoLeaves] for a missing hasher
// or an empty leaf sequence,
// and surfaces the serialization error for any value
// that has no canonical form.
func NewTree(h lhash.Hasher, leaves []any) (*Tree, error) {
	if h == nil {
		return nil, ErrNilHasher
	}
	if len(leaves) == 0 {
		return nil, ErrNoLeaves
	}

	levels := [][]any{slices.Clone(leaves)}

	cur := levels[0]
	for {
		next := make([]any, 0, (len(cur)+1)/2)
		for i := 0; i < len(cur); i += 2 {
			left := cur[i]

			// Self-pair the unpaired trailing node of an odd-width level.
			right := left
			if i+1 < len(cur) {
				right = cur[i+1]
			}

			in, err := lhash.CanonicalPair(left, right)
			if err != nil {
				return nil, fmt.Errorf(
					"serialize pair at level %d, index %d: %w",
					len(levels)-1, i, err,
				)
			}

			next = append(next, h.Sum(in))
		}

		levels = append(levels, next)
		if len(next) == 1 {
			break
		}
		cur = next
	}

	return &Tree{hasher: h, levels: levels}, nil
}

// Root returns the single node of the final level.
func (t *Tree) Root() string {
	root := t.levels[len(t.levels)-1]
	return root[0].(string)
}

// Depth returns the number of levels,
// counting the leaf level through the root level inclusive.
func (t *Tree) Depth() int {
	return len(t.levels)
}

// Leaves returns the leaf values in their original order.
// The returned slice is a view into the tree; the caller must not modify it.
func (t *Tree) Leaves() []any {
	return t.levels[0]
}

// Levels returns every level, leaf level first, root level last.
// The returned slices are views into the tree; the caller must not modify them.
func (t *Tree) Levels() [][]any {
	return t.levels
}

// ProofPair is one step of an inclusion proof:
// the left and right nodes whose pair digest is the parent node
// on the path from a leaf to the root.
// At level 0 the values are leaf values; above that they are digest strings.
type ProofPair struct {
	Left, Right any
}

// Proof returns the sibling pairs needed to recompute the root
// for the leaf at the given index, leaf level first.
//
// Levels where the walked node is the unpaired last node of an odd width
// contribute no pair: that node was self-paired during derivation,
// so its parent is recomputable from the node alone
// and a (node, node) pair would carry no information.
// Every returned pair, serialized and digested the same way as derivation,
// equals the parent node one level up.
//
// Proof returns an [IndexOutOfRangeError]
// if index is not a valid leaf position.
func (t *Tree) Proof(index int) ([]ProofPair, error) {
	nLeaves := len(t.levels[0])
	if index < 0 || index >= nLeaves {
		return nil, IndexOutOfRangeError{Index: index, NumLeaves: nLeaves}
	}

	proof := make([]ProofPair, 0, len(t.levels)-1)

	idx := index
	for _, level := range t.levels[:len(t.levels)-1] {
		width := len(level)

		if idx == width-1 && width%2 == 1 {
			// Self-paired during derivation; no distinct sibling to report.
			idx /= 2
			continue
		}

		if idx%2 == 1 {
			proof = append(proof, ProofPair{Left: level[idx-1], Right: level[idx]})
		} else {
			proof = append(proof, ProofPair{Left: level[idx], Right: level[idx+1]})
		}

		idx /= 2
	}

	return proof, nil
}
