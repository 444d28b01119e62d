package registry

import "github.com/sara-star-quant/tlsalg/internal/constants"

// CredentialMapping states which credential kind each side of a connection
// must hold for a key exchange. Anonymous key exchanges map to the
// anonymous credential on both sides; asymmetric entries (SRP RSA, SRP DSS)
// need a password credential on the client and a certificate on the server.
type CredentialMapping struct {
	KX     constants.KX
	Client constants.Credential
	Server constants.Credential
}

// PKMapping states which public key algorithm a certificate must carry for
// a key exchange to be viable, and whether the certificate's key-usage bits
// must permit encryption or signing.
type PKMapping struct {
	KX       constants.KX
	PK       constants.PK
	Encipher constants.EncipherType
}

var builtinCredentialMappings = []CredentialMapping{
	{constants.KXAnonDH, constants.CredentialAnon, constants.CredentialAnon},
	{constants.KXRSA, constants.CredentialCertificate, constants.CredentialCertificate},
	{constants.KXRSAExport, constants.CredentialCertificate, constants.CredentialCertificate},
	{constants.KXDHEDSS, constants.CredentialCertificate, constants.CredentialCertificate},
	{constants.KXDHERSA, constants.CredentialCertificate, constants.CredentialCertificate},
	{constants.KXSRP, constants.CredentialSRP, constants.CredentialSRP},
	{constants.KXSRPRSA, constants.CredentialSRP, constants.CredentialCertificate},
	{constants.KXSRPDSS, constants.CredentialSRP, constants.CredentialCertificate},
}

// A certificate holding, say, an RSA key can serve any key exchange mapped
// to PKRSA here.
var builtinPKMappings = []PKMapping{
	{constants.KXRSA, constants.PKRSA, constants.EncipherEncrypt},
	{constants.KXRSAExport, constants.PKRSA, constants.EncipherSign},
	{constants.KXDHERSA, constants.PKRSA, constants.EncipherSign},
	{constants.KXSRPRSA, constants.PKRSA, constants.EncipherSign},
	{constants.KXDHEDSS, constants.PKDSA, constants.EncipherSign},
	{constants.KXSRPDSS, constants.PKDSA, constants.EncipherSign},
}

// CredentialRegistry holds the credential and public-key mappings for the
// key exchange algorithms.
type CredentialRegistry struct {
	credentials []CredentialMapping
	pks         []PKMapping
}

// NewCredentialRegistry builds a registry of the built-in mappings plus any
// extra entries supplied by configuration.
func NewCredentialRegistry(extraCred []CredentialMapping, extraPK []PKMapping) *CredentialRegistry {
	creds := make([]CredentialMapping, 0, len(builtinCredentialMappings)+len(extraCred))
	creds = append(creds, builtinCredentialMappings...)
	creds = append(creds, extraCred...)
	pks := make([]PKMapping, 0, len(builtinPKMappings)+len(extraPK))
	pks = append(pks, builtinPKMappings...)
	pks = append(pks, extraPK...)
	return &CredentialRegistry{credentials: creds, pks: pks}
}

// Credentials is the default credential registry.
var Credentials = NewCredentialRegistry(nil, nil)

// KXForCredential returns the first key exchange usable with the given
// credential kind on the given side, or KXUnknown.
//
// Unlike its ancestor this lookup really does consult the client column for
// clients; the historical implementation consulted the server column on
// both branches. With the built-in table the first match is the same either
// way, so the change is not observable there, but extended tables may
// diverge. See DESIGN.md.
func (r *CredentialRegistry) KXForCredential(cred constants.Credential, server bool) constants.KX {
	for _, m := range r.credentials {
		if server && m.Server == cred {
			return m.KX
		}
		if !server && m.Client == cred {
			return m.KX
		}
	}
	return constants.KXUnknown
}

// CredentialForKX returns the credential kind the given side must hold for
// the key exchange, or CredentialUnknown.
func (r *CredentialRegistry) CredentialForKX(kx constants.KX, server bool) constants.Credential {
	m, ok := findByID(r.credentials, func(m CredentialMapping) constants.KX { return m.KX }, kx)
	if !ok {
		return constants.CredentialUnknown
	}
	if server {
		return m.Server
	}
	return m.Client
}

// PKForKX returns the public key algorithm compatible with the key
// exchange, or PKUnknown.
func (r *CredentialRegistry) PKForKX(kx constants.KX) constants.PK {
	m, ok := findByID(r.pks, func(m PKMapping) constants.KX { return m.KX }, kx)
	if !ok {
		return constants.PKUnknown
	}
	return m.PK
}

// EncipherForKX returns the key-usage requirement of the key exchange.
// Key exchanges with no public-key mapping report EncipherIgnore.
func (r *CredentialRegistry) EncipherForKX(kx constants.KX) constants.EncipherType {
	m, ok := findByID(r.pks, func(m PKMapping) constants.KX { return m.KX }, kx)
	if !ok {
		return constants.EncipherIgnore
	}
	return m.Encipher
}

// CertificateTypeName returns the name of a certificate type, or "".
func CertificateTypeName(t constants.CertificateType) string {
	switch t {
	case constants.CertificateX509:
		return "X.509"
	case constants.CertificateOpenPGP:
		return "OPENPGP"
	default:
		return ""
	}
}
