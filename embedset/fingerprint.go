package embedset

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"
)

// Fingerprint computes a deterministic, fixed-width hex digest over the
// provider's absolute range and the bytewise contents of every embedding in
// index order. A sub-range provider and its parent produce different
// fingerprints even over identical underlying bytes, because the range
// bounds are hashed first — this is intentional: a tree built over [0,100)
// must never be mistaken for one built over [50,150) even if they happened
// to share content.
//
// No hashing library (blake2/sha3/xxhash/...) appears anywhere in the
// retrieved example corpus, so this uses the standard library's
// crypto/sha256 — collision-resistant in practice, which is all a
// persistence integrity check requires.
func (p *Provider) Fingerprint() string {
	h := sha256.New()

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(p.start))
	h.Write(buf[:])
	binary.BigEndian.PutUint64(buf[:], uint64(p.end))
	h.Write(buf[:])

	for i := p.start; i < p.end; i++ {
		row, err := p.dense.At(i)
		if err != nil {
			panic(err) // invariant: every index in [start,end) is dereferenceable
		}
		for _, v := range row {
			binary.BigEndian.PutUint64(buf[:], math.Float64bits(v))
			h.Write(buf[:])
		}
	}

	return hex.EncodeToString(h.Sum(nil))
}
