package registry

import (
	"strings"

	"github.com/sara-star-quant/tlsalg/internal/constants"
)

// CompressionEntry describes a compression method. WindowBits, MemLevel and
// CompressionLevel parameterize deflate and are only meaningful for
// non-null methods.
type CompressionEntry struct {
	Name             string
	ID               constants.Compression
	Num              int // single-byte wire number
	WindowBits       int
	MemLevel         int
	CompressionLevel int
}

// compressionPrefix is the registry-internal name prefix. The wire protocol
// uses the bare method name, so Name strips it.
const compressionPrefix = "COMP_"

// The deflate entry is unconditional here: Go always links compress/flate,
// so there is no build-time library probe as in C implementations.
var builtinCompression = []CompressionEntry{
	{"COMP_NULL", constants.CompressionNULL, 0x00, 0, 0, 0},
	{"COMP_ZLIB", constants.CompressionZLIB, 0x01, 15, 8, 3},
}

// CompressionRegistry is an immutable table of compression methods.
type CompressionRegistry struct {
	entries []CompressionEntry
}

// NewCompressionRegistry builds a registry of the built-in methods plus any
// extra entries supplied by configuration. Private/experimental methods use
// wire numbers at or above constants.MinPrivateCompression.
func NewCompressionRegistry(extra ...CompressionEntry) *CompressionRegistry {
	entries := make([]CompressionEntry, 0, len(builtinCompression)+len(extra))
	entries = append(entries, builtinCompression...)
	entries = append(entries, extra...)
	return &CompressionRegistry{entries: entries}
}

// Compressions is the default compression registry.
var Compressions = NewCompressionRegistry()

// Find returns the entry for id.
func (r *CompressionRegistry) Find(id constants.Compression) (CompressionEntry, bool) {
	return findByID(r.entries, func(e CompressionEntry) constants.Compression { return e.ID }, id)
}

// IsOK reports whether id exists in the registry.
func (r *CompressionRegistry) IsOK(id constants.Compression) bool {
	_, ok := r.Find(id)
	return ok
}

// Name returns the protocol-facing name of id (registry prefix stripped),
// or "" if unknown.
func (r *CompressionRegistry) Name(id constants.Compression) string {
	e, ok := r.Find(id)
	if !ok {
		return ""
	}
	return strings.TrimPrefix(e.Name, compressionPrefix)
}

// Num returns the wire number of id, or -1 if unknown.
func (r *CompressionRegistry) Num(id constants.Compression) int {
	e, ok := r.Find(id)
	if !ok {
		return -1
	}
	return e.Num
}

// ByNum returns the id with the given wire number, or CompressionUnknown.
func (r *CompressionRegistry) ByNum(num int) constants.Compression {
	e, _ := findByID(r.entries, func(e CompressionEntry) int { return e.Num }, num)
	return e.ID
}

// WindowBits returns the deflate window bits of id, or -1 if unknown.
func (r *CompressionRegistry) WindowBits(id constants.Compression) int {
	e, ok := r.Find(id)
	if !ok {
		return -1
	}
	return e.WindowBits
}

// MemLevel returns the deflate memory level of id, or -1 if unknown.
func (r *CompressionRegistry) MemLevel(id constants.Compression) int {
	e, ok := r.Find(id)
	if !ok {
		return -1
	}
	return e.MemLevel
}

// CompressionLevel returns the deflate compression level of id, or -1 if
// unknown.
func (r *CompressionRegistry) CompressionLevel(id constants.Compression) int {
	e, ok := r.Find(id)
	if !ok {
		return -1
	}
	return e.CompressionLevel
}

// ByName returns the id with the given protocol-facing name, or
// CompressionUnknown.
func (r *CompressionRegistry) ByName(name string) constants.Compression {
	e, _ := findByID(r.entries, func(e CompressionEntry) string {
		return strings.TrimPrefix(e.Name, compressionPrefix)
	}, name)
	return e.ID
}

// Entries returns a copy of the table in registration order.
func (r *CompressionRegistry) Entries() []CompressionEntry {
	out := make([]CompressionEntry, len(r.entries))
	copy(out, r.entries)
	return out
}
