package lhash

import (
	"crypto"
	"encoding/hex"
	"strings"

	// Registered so that Named can resolve the corresponding
	// algorithm identifiers through the crypto.Hash registry.
	_ "crypto/md5"
	_ "crypto/sha1"
	_ "crypto/sha256"
	_ "crypto/sha512"

	_ "golang.org/x/crypto/blake2b"
	_ "golang.org/x/crypto/sha3"
)

// Hasher is the user-defined interface for digesting serialized node pairs.
// The [github.com/gordian-engine/lattice.Tree] passes the canonical
// serialization of each pair to Sum.
//
// Sum must be deterministic and must return a lowercase hexadecimal string
// of a fixed length. Hasher must be safe to call concurrently.
type Hasher interface {
	Sum(in []byte) string
}

// Func adapts a plain function to the [Hasher] interface,
// for callers supplying their own digest instead of a named algorithm.
type Func func(in []byte) string

func (f Func) Sum(in []byte) string { return f(in) }

// namedAlgorithms maps normalized algorithm identifiers
// to entries in the host crypto registry.
var namedAlgorithms = map[string]crypto.Hash{
	"md5":        crypto.MD5,
	"sha1":       crypto.SHA1,
	"sha224":     crypto.SHA224,
	"sha256":     crypto.SHA256,
	"sha384":     crypto.SHA384,
	"sha512":     crypto.SHA512,
	"sha3256":    crypto.SHA3_256,
	"sha3512":    crypto.SHA3_512,
	"blake2b256": crypto.BLAKE2b_256,
}

// Named returns a [Hasher] backed by the named algorithm,
// resolved through the host crypto registry.
// Identifiers are case-insensitive and ignore separators,
// so "SHA-256", "sha_256", and "sha256" all resolve to the same algorithm.
//
// An unrecognized or unregistered name returns an [UnknownAlgorithmError].
func Named(algo string) (Hasher, error) {
	h, ok := namedAlgorithms[normalizeAlgo(algo)]
	if !ok || !h.Available() {
		return nil, UnknownAlgorithmError{Name: algo}
	}

	return namedHasher{h: h}, nil
}

func normalizeAlgo(algo string) string {
	algo = strings.ToLower(algo)
	algo = strings.ReplaceAll(algo, "-", "")
	return strings.ReplaceAll(algo, "_", "")
}

type namedHasher struct {
	h crypto.Hash
}

func (n namedHasher) Sum(in []byte) string {
	h := n.h.New()
	_, _ = h.Write(in)
	return hex.EncodeToString(h.Sum(nil))
}

// UnknownAlgorithmError is returned from [Named] and [Digest]
// when the given identifier does not resolve to a registered algorithm.
type UnknownAlgorithmError struct {
	Name string
}

func (e UnknownAlgorithmError) Error() string {
	return "unknown digest algorithm " + e.Name
}
