// Package suite defines the cipher suite table and the negotiation
// operations over it: filtering the table down to a session's candidate
// list, priority-sorting the candidates, and encoding the results for the
// handshake layer.
//
// A cipher suite bundles a key exchange, a bulk cipher and a MAC under a
// single 2-byte wire code. The table is the cross product of negotiable
// combinations; its iteration order is the wire-transmission order before
// sorting. Codes with first byte 0xFF are private/experimental extensions
// and are suppressed unless a session opts in.
package suite

import (
	"fmt"

	"github.com/sara-star-quant/tlsalg/internal/constants"
)

// Suite is a cipher suite's 2-byte wire code, in transmission order.
type Suite [2]byte

// FromCode returns the Suite for a 16-bit code (high byte first on the wire).
func FromCode(code uint16) Suite {
	return Suite{byte(code >> 8), byte(code)}
}

// Code returns the 16-bit form of the wire code.
func (s Suite) Code() uint16 {
	return uint16(s[0])<<8 | uint16(s[1])
}

// IsPrivate reports whether the suite lies in the private/experimental
// code range.
func (s Suite) IsPrivate() bool {
	return s[0] == constants.PrivateSuiteMarker
}

// String returns the wire code in the conventional {0xAA, 0xBB} notation.
func (s Suite) String() string {
	return fmt.Sprintf("{0x%02X, 0x%02X}", s[0], s[1])
}

// Entry describes one negotiable cipher suite. MinVersion is the lowest
// protocol version under which the suite may be offered.
type Entry struct {
	Name       string
	ID         Suite
	Cipher     constants.Cipher
	KX         constants.KX
	MAC        constants.MAC
	MinVersion constants.Version
}

// The negotiable cipher suites. Wire codes are unique and the order is the
// pre-sort offer order. Sources for the standard codes: RFC 2246, RFC 3268,
// draft-ietf-tls-srp-02, draft-ietf-tls-56-bit-ciphersuites-01; the 0xFF
// codes are private extensions.
var table = []Entry{
	// Anonymous DH
	{"ANON_DH_ARCFOUR_MD5", Suite{0x00, 0x18}, constants.CipherARCFOUR128, constants.KXAnonDH, constants.MACMD5, constants.VersionSSL3},
	{"ANON_DH_3DES_EDE_CBC_SHA", Suite{0x00, 0x1B}, constants.Cipher3DESCBC, constants.KXAnonDH, constants.MACSHA, constants.VersionSSL3},
	{"ANON_DH_AES_128_CBC_SHA", Suite{0x00, 0x34}, constants.CipherAES128CBC, constants.KXAnonDH, constants.MACSHA, constants.VersionSSL3},
	{"ANON_DH_AES_256_CBC_SHA", Suite{0x00, 0x3A}, constants.CipherAES256CBC, constants.KXAnonDH, constants.MACSHA, constants.VersionSSL3},
	{"ANON_DH_TWOFISH_128_CBC_SHA", Suite{0xFF, 0x50}, constants.CipherTwofish128CBC, constants.KXAnonDH, constants.MACSHA, constants.VersionTLS10},

	// SRP (not in SSL 3.0)
	{"SRP_SHA_3DES_EDE_CBC_SHA", Suite{0x00, 0x50}, constants.Cipher3DESCBC, constants.KXSRP, constants.MACSHA, constants.VersionTLS10},
	{"SRP_SHA_AES_128_CBC_SHA", Suite{0x00, 0x53}, constants.CipherAES128CBC, constants.KXSRP, constants.MACSHA, constants.VersionTLS10},
	{"SRP_SHA_AES_256_CBC_SHA", Suite{0x00, 0x56}, constants.CipherAES256CBC, constants.KXSRP, constants.MACSHA, constants.VersionTLS10},
	{"SRP_SHA_DSS_3DES_EDE_CBC_SHA", Suite{0x00, 0x52}, constants.Cipher3DESCBC, constants.KXSRPDSS, constants.MACSHA, constants.VersionTLS10},
	{"SRP_SHA_RSA_3DES_EDE_CBC_SHA", Suite{0x00, 0x51}, constants.Cipher3DESCBC, constants.KXSRPRSA, constants.MACSHA, constants.VersionTLS10},
	{"SRP_SHA_DSS_AES_128_CBC_SHA", Suite{0x00, 0x55}, constants.CipherAES128CBC, constants.KXSRPDSS, constants.MACSHA, constants.VersionTLS10},
	{"SRP_SHA_RSA_AES_128_CBC_SHA", Suite{0x00, 0x54}, constants.CipherAES128CBC, constants.KXSRPRSA, constants.MACSHA, constants.VersionTLS10},
	{"SRP_SHA_DSS_AES_256_CBC_SHA", Suite{0x00, 0x58}, constants.CipherAES256CBC, constants.KXSRPDSS, constants.MACSHA, constants.VersionTLS10},
	{"SRP_SHA_RSA_AES_256_CBC_SHA", Suite{0x00, 0x57}, constants.CipherAES256CBC, constants.KXSRPRSA, constants.MACSHA, constants.VersionTLS10},

	// Ephemeral DH with DSS
	{"DHE_DSS_ARCFOUR_SHA", Suite{0x00, 0x66}, constants.CipherARCFOUR128, constants.KXDHEDSS, constants.MACSHA, constants.VersionTLS10},
	{"DHE_DSS_TWOFISH_128_CBC_SHA", Suite{0xFF, 0x54}, constants.CipherTwofish128CBC, constants.KXDHEDSS, constants.MACSHA, constants.VersionTLS10},
	{"DHE_DSS_3DES_EDE_CBC_SHA", Suite{0x00, 0x13}, constants.Cipher3DESCBC, constants.KXDHEDSS, constants.MACSHA, constants.VersionSSL3},
	{"DHE_DSS_AES_128_CBC_SHA", Suite{0x00, 0x32}, constants.CipherAES128CBC, constants.KXDHEDSS, constants.MACSHA, constants.VersionSSL3},
	{"DHE_DSS_AES_256_CBC_SHA", Suite{0x00, 0x38}, constants.CipherAES256CBC, constants.KXDHEDSS, constants.MACSHA, constants.VersionSSL3},

	// Ephemeral DH with RSA
	{"DHE_RSA_TWOFISH_128_CBC_SHA", Suite{0xFF, 0x55}, constants.CipherTwofish128CBC, constants.KXDHERSA, constants.MACSHA, constants.VersionTLS10},
	{"DHE_RSA_3DES_EDE_CBC_SHA", Suite{0x00, 0x16}, constants.Cipher3DESCBC, constants.KXDHERSA, constants.MACSHA, constants.VersionSSL3},
	{"DHE_RSA_AES_128_CBC_SHA", Suite{0x00, 0x33}, constants.CipherAES128CBC, constants.KXDHERSA, constants.MACSHA, constants.VersionSSL3},
	{"DHE_RSA_AES_256_CBC_SHA", Suite{0x00, 0x39}, constants.CipherAES256CBC, constants.KXDHERSA, constants.MACSHA, constants.VersionSSL3},

	// RSA key transport. The NULL suite exists for test purposes.
	{"RSA_NULL_MD5", Suite{0x00, 0x01}, constants.CipherNULL, constants.KXRSA, constants.MACMD5, constants.VersionSSL3},
	{"RSA_EXPORT_ARCFOUR_40_MD5", Suite{0x00, 0x03}, constants.CipherARCFOUR40, constants.KXRSAExport, constants.MACMD5, constants.VersionSSL3},
	{"RSA_ARCFOUR_SHA", Suite{0x00, 0x05}, constants.CipherARCFOUR128, constants.KXRSA, constants.MACSHA, constants.VersionSSL3},
	{"RSA_ARCFOUR_MD5", Suite{0x00, 0x04}, constants.CipherARCFOUR128, constants.KXRSA, constants.MACMD5, constants.VersionSSL3},
	{"RSA_3DES_EDE_CBC_SHA", Suite{0x00, 0x0A}, constants.Cipher3DESCBC, constants.KXRSA, constants.MACSHA, constants.VersionSSL3},
	{"RSA_AES_128_CBC_SHA", Suite{0x00, 0x2F}, constants.CipherAES128CBC, constants.KXRSA, constants.MACSHA, constants.VersionSSL3},
	{"RSA_AES_256_CBC_SHA", Suite{0x00, 0x35}, constants.CipherAES256CBC, constants.KXRSA, constants.MACSHA, constants.VersionSSL3},
	{"RSA_TWOFISH_128_CBC_SHA", Suite{0xFF, 0x51}, constants.CipherTwofish128CBC, constants.KXRSA, constants.MACSHA, constants.VersionTLS10},
}

// Find returns the table entry for the wire code s.
func Find(s Suite) (Entry, bool) {
	for _, e := range table {
		if e.ID == s {
			return e, true
		}
	}
	return Entry{}, false
}

// IsOK reports whether s is a known cipher suite.
func IsOK(s Suite) bool {
	_, ok := Find(s)
	return ok
}

// Name returns the name of s, or "" if unknown.
func Name(s Suite) string {
	e, _ := Find(s)
	return e.Name
}

// Cipher returns the bulk cipher of s, or CipherUnknown.
func Cipher(s Suite) constants.Cipher {
	e, _ := Find(s)
	return e.Cipher
}

// KX returns the key exchange of s, or KXUnknown.
func KX(s Suite) constants.KX {
	e, _ := Find(s)
	return e.KX
}

// MAC returns the MAC of s, or MACUnknown.
func MAC(s Suite) constants.MAC {
	e, _ := Find(s)
	return e.MAC
}

// MinVersion returns the lowest protocol version under which s may be
// offered, or VersionUnknown.
func MinVersion(s Suite) constants.Version {
	e, _ := Find(s)
	return e.MinVersion
}

// NameByComponents returns the name of the suite built from the given
// components, or "". The full wire name is the returned name prepended
// with TLS or SSL depending on the protocol in use.
func NameByComponents(kx constants.KX, cipher constants.Cipher, mac constants.MAC) string {
	for _, e := range table {
		if e.KX == kx && e.Cipher == cipher && e.MAC == mac {
			return e.Name
		}
	}
	return ""
}

// Count returns the number of suites in the table.
func Count() int {
	return len(table)
}

// All returns a copy of the table in offer order.
func All() []Entry {
	out := make([]Entry, len(table))
	copy(out, table)
	return out
}
