package paircache

// Key is an unordered pair of corpus indices, normalized so the smaller index
// is always Lower — equality and hashing are therefore symmetric in the two
// original indices, matching the original engine's Key::new(a, b)
// (a.min(b), a.max(b)) construction.
type Key struct {
	Lower, Upper int
}

// NewKey builds a normalized Key from two corpus indices in any order.
func NewKey(a, b int) Key {
	if a <= b {
		return Key{Lower: a, Upper: b}
	}
	return Key{Lower: b, Upper: a}
}
