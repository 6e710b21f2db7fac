// Package lattice builds a binary Merkle hash tree
// over an ordered sequence of arbitrary values,
// and derives per-leaf inclusion proof paths.
//
// A [Tree] is constructed once with [NewTree] and is immutable afterwards,
// so it is safe to share across concurrent readers without coordination.
// Hashing is delegated to an [lhash.Hasher],
// either a named algorithm resolved with [lhash.Named]
// or a caller-supplied [lhash.Func].
//
// Successive levels are derived by digesting the canonical serialization
// of non-overlapping node pairs.
// An unpaired trailing node at an odd-width level is paired with itself;
// it is never promoted unhashed and never dropped.
// In particular, a single-leaf tree's root is the digest of the leaf
// paired with itself, not the leaf value verbatim.
//
// [*Tree.Proof] returns the sibling pairs needed to recompute the root
// from one leaf without the rest of the dataset.
// The library does not verify proofs and defines no wire format for them;
// both are left to the consuming application.
package lattice
