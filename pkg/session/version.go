package session

import (
	"github.com/sara-star-quant/tlsalg/internal/constants"
	"github.com/sara-star-quant/tlsalg/pkg/registry"
)

// VersionSupported reports whether the session may negotiate v: the version
// must exist in the registry, be marked supported by this build, and be
// present in the session's version priority list.
func (s *Session) VersionSupported(reg *registry.VersionRegistry, v constants.Version) bool {
	if !reg.IsSupported(v) {
		return false
	}
	return s.VersionPriority(v) != NotAcceptable
}
