// Package session holds the per-session negotiation state the selection
// engine reads: the caller-ordered priority lists for each algorithm class,
// the active protocol version and the private-algorithm policy.
//
// A session is owned by a single negotiation. Priority lists are set by
// configuration before filtering starts and are read-only while a filter or
// sort runs; the package does no locking of its own. Rank 0 is the highest
// priority, and absence from a list means the algorithm is unacceptable for
// this session.
package session

import "github.com/sara-star-quant/tlsalg/internal/constants"

// Priorities carries the per-class preference lists. Order encodes
// preference; an id missing from its list is rejected outright.
type Priorities struct {
	Cipher      []constants.Cipher
	MAC         []constants.MAC
	KX          []constants.KX
	Compression []constants.Compression
	Version     []constants.Version
}

// Default returns the priority lists a conservative client would use.
func Default() Priorities {
	return Priorities{
		Cipher: []constants.Cipher{
			constants.CipherAES256CBC,
			constants.CipherAES128CBC,
			constants.Cipher3DESCBC,
			constants.CipherARCFOUR128,
		},
		MAC: []constants.MAC{constants.MACSHA, constants.MACMD5},
		KX: []constants.KX{
			constants.KXDHERSA,
			constants.KXRSA,
			constants.KXDHEDSS,
		},
		Compression: []constants.Compression{constants.CompressionNULL},
		Version:     []constants.Version{constants.VersionTLS10, constants.VersionSSL3},
	}
}

// Session is the negotiation-facing view of a connection's configuration.
type Session struct {
	priorities    Priorities
	version       constants.Version
	enablePrivate bool
}

// New creates a session with the given priorities. The active version
// starts at the highest version in the priority list (the value a client
// advertises first); it is overridden by SetVersion once the handshake
// settles on one.
func New(p Priorities) *Session {
	s := &Session{}
	s.SetPriorities(p)
	return s
}

// SetPriorities replaces all priority lists. If no version has been
// negotiated yet, the active version is reset to the highest prioritized
// one.
func (s *Session) SetPriorities(p Priorities) {
	s.priorities = p
	if s.version == constants.VersionUnknown {
		s.version = s.HighestVersion()
	}
}

// Priorities returns the current priority lists.
func (s *Session) Priorities() Priorities {
	return s.priorities
}

// SetVersion fixes the active protocol version.
func (s *Session) SetVersion(v constants.Version) {
	s.version = v
}

// Version returns the active protocol version, or VersionUnknown if none
// is set and no version priorities exist.
func (s *Session) Version() constants.Version {
	return s.version
}

// EnablePrivate controls whether private/experimental cipher suites and
// compression methods may be offered.
func (s *Session) EnablePrivate(enable bool) {
	s.enablePrivate = enable
}

// PrivateEnabled reports whether private/experimental algorithms may be
// offered.
func (s *Session) PrivateEnabled() bool {
	return s.enablePrivate
}

// NotAcceptable is the rank reported for algorithms absent from their
// priority list.
const NotAcceptable = -1

func rank[ID comparable](list []ID, id ID) int {
	for i, v := range list {
		if v == id {
			return i
		}
	}
	return NotAcceptable
}

// CipherPriority returns the rank of id in the cipher priority list, or
// NotAcceptable.
func (s *Session) CipherPriority(id constants.Cipher) int {
	return rank(s.priorities.Cipher, id)
}

// MACPriority returns the rank of id in the MAC priority list, or
// NotAcceptable.
func (s *Session) MACPriority(id constants.MAC) int {
	return rank(s.priorities.MAC, id)
}

// KXPriority returns the rank of id in the key exchange priority list, or
// NotAcceptable.
func (s *Session) KXPriority(id constants.KX) int {
	return rank(s.priorities.KX, id)
}

// CompressionPriority returns the rank of id in the compression priority
// list, or NotAcceptable.
func (s *Session) CompressionPriority(id constants.Compression) int {
	return rank(s.priorities.Compression, id)
}

// VersionPriority returns the rank of id in the version priority list, or
// NotAcceptable.
func (s *Session) VersionPriority(id constants.Version) int {
	return rank(s.priorities.Version, id)
}

// LowestVersion returns the numerically lowest version in the priority
// list, or VersionUnknown when the list is empty. Callers must check for
// the sentinel rather than compare against it.
func (s *Session) LowestVersion() constants.Version {
	min := constants.VersionUnknown
	for _, v := range s.priorities.Version {
		if min == constants.VersionUnknown || v < min {
			min = v
		}
	}
	return min
}

// HighestVersion returns the numerically highest version in the priority
// list, or VersionUnknown when the list is empty.
func (s *Session) HighestVersion() constants.Version {
	max := constants.VersionUnknown
	for _, v := range s.priorities.Version {
		if v > max {
			max = v
		}
	}
	return max
}
