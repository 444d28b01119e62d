package registry

import "github.com/sara-star-quant/tlsalg/internal/constants"

// VersionEntry describes a protocol version. Major and Minor are the wire
// values defined by the protocol; the internal id ordering matches the
// protocol ordering so the version tables are the single source of truth
// for version comparison.
type VersionEntry struct {
	Name      string
	ID        constants.Version
	Major     int
	Minor     int
	Supported bool
}

var builtinVersions = []VersionEntry{
	{"SSL 3.0", constants.VersionSSL3, 3, 0, true},
	{"TLS 1.0", constants.VersionTLS10, 3, 1, true},
}

// VersionRegistry is an immutable table of protocol versions.
type VersionRegistry struct {
	entries []VersionEntry
}

// NewVersionRegistry builds a registry of the built-in versions plus any
// extra entries supplied by configuration.
func NewVersionRegistry(extra ...VersionEntry) *VersionRegistry {
	entries := make([]VersionEntry, 0, len(builtinVersions)+len(extra))
	entries = append(entries, builtinVersions...)
	entries = append(entries, extra...)
	return &VersionRegistry{entries: entries}
}

// Versions is the default version registry.
var Versions = NewVersionRegistry()

// Find returns the entry for id.
func (r *VersionRegistry) Find(id constants.Version) (VersionEntry, bool) {
	return findByID(r.entries, func(e VersionEntry) constants.Version { return e.ID }, id)
}

// IsOK reports whether id exists in the registry.
func (r *VersionRegistry) IsOK(id constants.Version) bool {
	_, ok := r.Find(id)
	return ok
}

// Name returns the display name of id, or "" if unknown.
func (r *VersionRegistry) Name(id constants.Version) string {
	e, _ := r.Find(id)
	return e.Name
}

// Major returns the wire major number of id, or -1 if unknown.
func (r *VersionRegistry) Major(id constants.Version) int {
	e, ok := r.Find(id)
	if !ok {
		return -1
	}
	return e.Major
}

// Minor returns the wire minor number of id, or -1 if unknown.
func (r *VersionRegistry) Minor(id constants.Version) int {
	e, ok := r.Find(id)
	if !ok {
		return -1
	}
	return e.Minor
}

// FromWire returns the id for the wire (major, minor) pair, or
// VersionUnknown.
func (r *VersionRegistry) FromWire(major, minor int) constants.Version {
	for _, e := range r.entries {
		if e.Major == major && e.Minor == minor {
			return e.ID
		}
	}
	return constants.VersionUnknown
}

// IsSupported reports whether id is a version this build can negotiate at
// all. Whether a particular session accepts it additionally depends on the
// session's version priorities.
func (r *VersionRegistry) IsSupported(id constants.Version) bool {
	e, ok := r.Find(id)
	return ok && e.Supported
}

// ByName returns the id with the given display name, or VersionUnknown.
func (r *VersionRegistry) ByName(name string) constants.Version {
	e, _ := findByID(r.entries, func(e VersionEntry) string { return e.Name }, name)
	return e.ID
}

// Entries returns a copy of the table in registration order.
func (r *VersionRegistry) Entries() []VersionEntry {
	out := make([]VersionEntry, len(r.entries))
	copy(out, r.entries)
	return out
}
