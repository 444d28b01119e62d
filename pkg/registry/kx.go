package registry

import "github.com/sara-star-quant/tlsalg/internal/constants"

// KXEntry describes a key exchange algorithm.
type KXEntry struct {
	Name string
	ID   constants.KX
}

var builtinKX = []KXEntry{
	{"Anon DH", constants.KXAnonDH},
	{"RSA", constants.KXRSA},
	{"RSA EXPORT", constants.KXRSAExport},
	{"DHE RSA", constants.KXDHERSA},
	{"DHE DSS", constants.KXDHEDSS},
}

// SRPKeyExchanges returns the SRP key exchange entries. They are not part
// of the default registry; configurations that enable password
// authentication pass them to NewKXRegistry.
func SRPKeyExchanges() []KXEntry {
	return []KXEntry{
		{"SRP", constants.KXSRP},
		{"SRP RSA", constants.KXSRPRSA},
		{"SRP DSS", constants.KXSRPDSS},
	}
}

// KXRegistry is an immutable table of key exchange algorithms.
type KXRegistry struct {
	entries []KXEntry
}

// NewKXRegistry builds a registry of the built-in key exchanges plus any
// extra entries supplied by configuration.
func NewKXRegistry(extra ...KXEntry) *KXRegistry {
	entries := make([]KXEntry, 0, len(builtinKX)+len(extra))
	entries = append(entries, builtinKX...)
	entries = append(entries, extra...)
	return &KXRegistry{entries: entries}
}

// KeyExchanges is the default key exchange registry.
var KeyExchanges = NewKXRegistry()

// Find returns the entry for id.
func (r *KXRegistry) Find(id constants.KX) (KXEntry, bool) {
	return findByID(r.entries, func(e KXEntry) constants.KX { return e.ID }, id)
}

// IsOK reports whether id exists in the registry.
func (r *KXRegistry) IsOK(id constants.KX) bool {
	_, ok := r.Find(id)
	return ok
}

// Name returns the display name of id, or "" if unknown.
func (r *KXRegistry) Name(id constants.KX) string {
	e, _ := r.Find(id)
	return e.Name
}

// ByName returns the id with the given display name, or KXUnknown.
func (r *KXRegistry) ByName(name string) constants.KX {
	e, _ := findByID(r.entries, func(e KXEntry) string { return e.Name }, name)
	return e.ID
}

// Entries returns a copy of the table in registration order.
func (r *KXRegistry) Entries() []KXEntry {
	out := make([]KXEntry, len(r.entries))
	copy(out, r.entries)
	return out
}
