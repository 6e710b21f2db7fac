package lattice

import (
	"errors"
	"fmt"
)

// ErrNilHasher is returned from [NewTree] when no hasher is supplied.
var ErrNilHasher = errors.New("cannot build a tree without a hasher")

// ErrNoLeaves is returned from [NewTree] for an empty input sequence.
// An empty tree would have no root, so it is rejected at construction.
var ErrNoLeaves = errors.New("cannot build a tree with no leaves")

// IndexOutOfRangeError is returned from [*Tree.Proof]
// if the given leaf index is outside the leaf sequence.
type IndexOutOfRangeError struct {
	Index, NumLeaves int
}

func (e IndexOutOfRangeError) Error() string {
	return fmt.Sprintf(
		"leaf index %d out of range [0, %d)",
		e.Index, e.NumLeaves,
	)
}
