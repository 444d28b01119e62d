package registry

import "github.com/sara-star-quant/tlsalg/internal/constants"

// CipherEntry describes a bulk cipher algorithm.
type CipherEntry struct {
	Name      string
	ID        constants.Cipher
	BlockSize int // bytes; 1 for stream ciphers
	KeySize   int // bytes
	Kind      constants.CipherKind
	IVSize    int // bytes; 0 for stream ciphers
	Export    bool
}

// All ciphers are CBC block ciphers or stream ciphers. Do not add entries in
// other modes; see "The order of encryption and authentication for
// protecting communications" (Krawczyk, CRYPTO 2001).
var builtinCiphers = []CipherEntry{
	{"3DES 168 CBC", constants.Cipher3DESCBC, 8, 24, constants.CipherKindBlock, 8, false},
	{"AES 128 CBC", constants.CipherAES128CBC, 16, 16, constants.CipherKindBlock, 16, false},
	{"AES 256 CBC", constants.CipherAES256CBC, 16, 32, constants.CipherKindBlock, 16, false},
	{"TWOFISH 128 CBC", constants.CipherTwofish128CBC, 16, 16, constants.CipherKindBlock, 16, false},
	{"ARCFOUR 128", constants.CipherARCFOUR128, 1, 16, constants.CipherKindStream, 0, false},
	{"ARCFOUR 40", constants.CipherARCFOUR40, 1, 5, constants.CipherKindStream, 0, true},
	{"RC2 40", constants.CipherRC240CBC, 8, 5, constants.CipherKindBlock, 8, true},
	{"DES CBC", constants.CipherDESCBC, 8, 8, constants.CipherKindBlock, 8, false},
	{"NULL", constants.CipherNULL, 1, 0, constants.CipherKindStream, 0, false},
}

// CipherRegistry is an immutable table of bulk cipher algorithms.
type CipherRegistry struct {
	entries []CipherEntry
}

// NewCipherRegistry builds a registry of the built-in ciphers plus any
// extra entries supplied by configuration.
func NewCipherRegistry(extra ...CipherEntry) *CipherRegistry {
	entries := make([]CipherEntry, 0, len(builtinCiphers)+len(extra))
	entries = append(entries, builtinCiphers...)
	entries = append(entries, extra...)
	return &CipherRegistry{entries: entries}
}

// Ciphers is the default cipher registry.
var Ciphers = NewCipherRegistry()

// Find returns the entry for id.
func (r *CipherRegistry) Find(id constants.Cipher) (CipherEntry, bool) {
	return findByID(r.entries, func(e CipherEntry) constants.Cipher { return e.ID }, id)
}

// IsOK reports whether id exists in the registry.
func (r *CipherRegistry) IsOK(id constants.Cipher) bool {
	_, ok := r.Find(id)
	return ok
}

// Name returns the display name of id, or "" if unknown.
func (r *CipherRegistry) Name(id constants.Cipher) string {
	e, _ := r.Find(id)
	return e.Name
}

// KeySize returns the key size of id in bytes, or 0 if unknown.
func (r *CipherRegistry) KeySize(id constants.Cipher) int {
	e, _ := r.Find(id)
	return e.KeySize
}

// BlockSize returns the block size of id in bytes, or 0 if unknown.
func (r *CipherRegistry) BlockSize(id constants.Cipher) int {
	e, _ := r.Find(id)
	return e.BlockSize
}

// IVSize returns the IV size of id in bytes, or 0 if unknown.
func (r *CipherRegistry) IVSize(id constants.Cipher) int {
	e, _ := r.Find(id)
	return e.IVSize
}

// IsBlock reports whether id is a block cipher. Unknown ids report false.
func (r *CipherRegistry) IsBlock(id constants.Cipher) bool {
	e, ok := r.Find(id)
	return ok && e.Kind == constants.CipherKindBlock
}

// IsExport reports whether id is an export-weakened cipher.
func (r *CipherRegistry) IsExport(id constants.Cipher) bool {
	e, _ := r.Find(id)
	return e.Export
}

// ByName returns the id with the given display name, or CipherUnknown.
func (r *CipherRegistry) ByName(name string) constants.Cipher {
	e, _ := findByID(r.entries, func(e CipherEntry) string { return e.Name }, name)
	return e.ID
}

// Entries returns a copy of the table in registration order.
func (r *CipherRegistry) Entries() []CipherEntry {
	out := make([]CipherEntry, len(r.entries))
	copy(out, r.entries)
	return out
}
