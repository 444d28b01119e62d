// Package constants defines the algorithm and protocol identifiers used by
// the negotiation engine.
//
// Identifiers are internal handles, not wire values. The wire representation
// of a cipher suite is its 2-byte code (see pkg/suite); the wire
// representation of a compression method is its single-byte number (see
// pkg/registry). Identifier 0 is reserved as the "unknown" sentinel for
// every class.
package constants

// Cipher identifies a bulk cipher algorithm.
type Cipher int

const (
	CipherUnknown Cipher = iota
	CipherNULL
	CipherARCFOUR128
	Cipher3DESCBC
	CipherAES128CBC
	CipherAES256CBC
	CipherTwofish128CBC
	CipherARCFOUR40
	CipherRC240CBC
	CipherDESCBC
)

// CipherKind tags a cipher as operating in block or stream mode.
type CipherKind int

const (
	CipherKindBlock CipherKind = iota
	CipherKindStream
)

// MAC identifies a MAC/digest algorithm.
type MAC int

const (
	MACUnknown MAC = iota
	MACNULL
	MACMD5
	MACSHA
)

// Compression identifies a compression method.
type Compression int

const (
	CompressionUnknown Compression = iota
	CompressionNULL
	CompressionZLIB
)

// KX identifies a key exchange algorithm.
type KX int

const (
	KXUnknown KX = iota
	KXRSA
	KXDHEDSS
	KXDHERSA
	KXAnonDH
	KXSRP
	KXRSAExport
	KXSRPRSA
	KXSRPDSS
)

// Version identifies a protocol version. The numeric ordering of the
// identifiers matches the protocol ordering, so version comparison is
// plain integer comparison.
type Version int

const (
	// VersionUnknown is the sentinel for "no version". Callers receiving it
	// from a version-range query must not treat it as a numeric default.
	VersionUnknown Version = 0

	VersionSSL3  Version = 1
	VersionTLS10 Version = 2
)

// Credential identifies the kind of credential a peer must hold for a key
// exchange.
type Credential int

const (
	CredentialUnknown Credential = iota
	CredentialCertificate
	CredentialAnon
	CredentialSRP
)

// PK identifies a public key algorithm carried in a certificate.
type PK int

const (
	PKUnknown PK = iota
	PKRSA
	PKDSA
)

// EncipherType states which certificate key-usage capability a key exchange
// requires.
type EncipherType int

const (
	// EncipherIgnore means key-usage bits do not apply to the key exchange.
	EncipherIgnore EncipherType = iota
	// EncipherEncrypt requires a key-usage permitting encryption.
	EncipherEncrypt
	// EncipherSign requires a key-usage permitting signing.
	EncipherSign
)

// CertificateType identifies a certificate format.
type CertificateType int

const (
	CertificateUnknown CertificateType = iota
	CertificateX509
	CertificateOpenPGP
)

// Wire-format markers.
const (
	// PrivateSuiteMarker is the first byte of the 2-byte code of
	// private/experimental cipher suites.
	PrivateSuiteMarker = 0xFF

	// MinPrivateCompression is the lowest compression wire number reserved
	// for private/experimental methods.
	MinPrivateCompression = 0xEF
)

// String returns a short class-qualified form for debugging. Registry name
// lookups return the protocol-facing names.
func (c Cipher) String() string {
	switch c {
	case CipherNULL:
		return "cipher(NULL)"
	case CipherARCFOUR128:
		return "cipher(ARCFOUR-128)"
	case Cipher3DESCBC:
		return "cipher(3DES-CBC)"
	case CipherAES128CBC:
		return "cipher(AES-128-CBC)"
	case CipherAES256CBC:
		return "cipher(AES-256-CBC)"
	case CipherTwofish128CBC:
		return "cipher(TWOFISH-128-CBC)"
	case CipherARCFOUR40:
		return "cipher(ARCFOUR-40)"
	case CipherRC240CBC:
		return "cipher(RC2-40-CBC)"
	case CipherDESCBC:
		return "cipher(DES-CBC)"
	default:
		return "cipher(unknown)"
	}
}

func (m MAC) String() string {
	switch m {
	case MACNULL:
		return "mac(NULL)"
	case MACMD5:
		return "mac(MD5)"
	case MACSHA:
		return "mac(SHA)"
	default:
		return "mac(unknown)"
	}
}

func (v Version) String() string {
	switch v {
	case VersionSSL3:
		return "SSL 3.0"
	case VersionTLS10:
		return "TLS 1.0"
	default:
		return "version(unknown)"
	}
}
