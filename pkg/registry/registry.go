// Package registry holds the static algorithm tables the negotiation engine
// selects from: bulk ciphers, MACs, compression methods, key exchanges,
// protocol versions and the credential/public-key mappings between them.
//
// Every registry is an immutable object built once at construction. The
// package-level defaults cover the standard algorithm set; constructors
// accept extra entries so optional algorithm families (for example the SRP
// key exchanges) can be enabled explicitly by configuration rather than by
// runtime mutation.
//
// Lookups are linear scans. The tables hold at most a few dozen entries and
// are effectively constant, so anything cleverer buys nothing. Lookup misses
// are normal control flow: Find reports them with a bool, and the derived
// accessors return a documented zero sentinel instead of an error, since
// many callers probe speculatively with wire values received from a peer.
package registry

// findByID is the one generic lookup all registries share: a linear scan
// for the entry whose key matches want.
func findByID[E any, ID comparable](entries []E, key func(E) ID, want ID) (E, bool) {
	for _, e := range entries {
		if key(e) == want {
			return e, true
		}
	}
	var zero E
	return zero, false
}
