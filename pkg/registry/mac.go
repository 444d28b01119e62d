package registry

import "github.com/sara-star-quant/tlsalg/internal/constants"

// MACEntry describes a MAC/digest algorithm.
type MACEntry struct {
	Name       string
	ID         constants.MAC
	DigestSize int // bytes
}

var builtinMACs = []MACEntry{
	{"SHA", constants.MACSHA, 20},
	{"MD5", constants.MACMD5, 16},
	{"NULL", constants.MACNULL, 0},
}

// MACRegistry is an immutable table of MAC algorithms.
type MACRegistry struct {
	entries []MACEntry
}

// NewMACRegistry builds a registry of the built-in MACs plus any extra
// entries supplied by configuration.
func NewMACRegistry(extra ...MACEntry) *MACRegistry {
	entries := make([]MACEntry, 0, len(builtinMACs)+len(extra))
	entries = append(entries, builtinMACs...)
	entries = append(entries, extra...)
	return &MACRegistry{entries: entries}
}

// MACs is the default MAC registry.
var MACs = NewMACRegistry()

// Find returns the entry for id.
func (r *MACRegistry) Find(id constants.MAC) (MACEntry, bool) {
	return findByID(r.entries, func(e MACEntry) constants.MAC { return e.ID }, id)
}

// IsOK reports whether id exists in the registry.
func (r *MACRegistry) IsOK(id constants.MAC) bool {
	_, ok := r.Find(id)
	return ok
}

// Name returns the display name of id, or "" if unknown.
func (r *MACRegistry) Name(id constants.MAC) string {
	e, _ := r.Find(id)
	return e.Name
}

// DigestSize returns the digest size of id in bytes, or 0 if unknown.
// Note that 0 is also the legitimate size of the NULL MAC; use IsOK to
// distinguish the two.
func (r *MACRegistry) DigestSize(id constants.MAC) int {
	e, _ := r.Find(id)
	return e.DigestSize
}

// ByName returns the id with the given display name, or MACUnknown.
func (r *MACRegistry) ByName(name string) constants.MAC {
	e, _ := findByID(r.entries, func(e MACEntry) string { return e.Name }, name)
	return e.ID
}

// Entries returns a copy of the table in registration order.
func (r *MACRegistry) Entries() []MACEntry {
	out := make([]MACEntry, len(r.entries))
	copy(out, r.entries)
	return out
}
