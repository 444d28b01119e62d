package session

import (
	"testing"

	"github.com/sara-star-quant/tlsalg/internal/constants"
	"github.com/sara-star-quant/tlsalg/pkg/registry"
)

func TestPriorityRanks(t *testing.T) {
	sess := New(Priorities{
		Cipher: []constants.Cipher{constants.CipherAES256CBC, constants.Cipher3DESCBC},
		MAC:    []constants.MAC{constants.MACSHA},
		KX:     []constants.KX{constants.KXDHERSA, constants.KXRSA},
	})

	if got := sess.CipherPriority(constants.CipherAES256CBC); got != 0 {
		t.Errorf("CipherPriority(AES256) = %d, want 0", got)
	}
	if got := sess.CipherPriority(constants.Cipher3DESCBC); got != 1 {
		t.Errorf("CipherPriority(3DES) = %d, want 1", got)
	}
	if got := sess.CipherPriority(constants.CipherARCFOUR128); got != NotAcceptable {
		t.Errorf("CipherPriority(absent) = %d, want NotAcceptable", got)
	}
	if got := sess.MACPriority(constants.MACMD5); got != NotAcceptable {
		t.Errorf("MACPriority(absent) = %d, want NotAcceptable", got)
	}
	if got := sess.KXPriority(constants.KXRSA); got != 1 {
		t.Errorf("KXPriority(RSA) = %d, want 1", got)
	}
}

func TestVersionRange(t *testing.T) {
	tests := []struct {
		name            string
		versions        []constants.Version
		lowest, highest constants.Version
	}{
		{
			"both versions",
			[]constants.Version{constants.VersionTLS10, constants.VersionSSL3},
			constants.VersionSSL3, constants.VersionTLS10,
		},
		{
			"single version",
			[]constants.Version{constants.VersionSSL3},
			constants.VersionSSL3, constants.VersionSSL3,
		},
		{
			"empty list",
			nil,
			constants.VersionUnknown, constants.VersionUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := New(Priorities{Version: tt.versions})
			if got := sess.LowestVersion(); got != tt.lowest {
				t.Errorf("LowestVersion = %v, want %v", got, tt.lowest)
			}
			if got := sess.HighestVersion(); got != tt.highest {
				t.Errorf("HighestVersion = %v, want %v", got, tt.highest)
			}
		})
	}
}

func TestNewStartsAtHighestVersion(t *testing.T) {
	sess := New(Default())
	if got := sess.Version(); got != constants.VersionTLS10 {
		t.Errorf("Version = %v, want TLS 1.0", got)
	}

	sess.SetVersion(constants.VersionSSL3)
	if got := sess.Version(); got != constants.VersionSSL3 {
		t.Errorf("Version after SetVersion = %v", got)
	}

	// Replacing priorities must not clobber a negotiated version.
	sess.SetPriorities(Default())
	if got := sess.Version(); got != constants.VersionSSL3 {
		t.Errorf("Version after SetPriorities = %v, want SSL 3.0", got)
	}
}

func TestEmptyVersionListStaysUnknown(t *testing.T) {
	sess := New(Priorities{})
	if got := sess.Version(); got != constants.VersionUnknown {
		t.Errorf("Version = %v, want unknown", got)
	}
}

func TestVersionSupported(t *testing.T) {
	sess := New(Priorities{Version: []constants.Version{constants.VersionTLS10}})

	if !sess.VersionSupported(registry.Versions, constants.VersionTLS10) {
		t.Error("TLS 1.0 not supported despite being prioritized")
	}
	// In the registry but not in the session's priorities.
	if sess.VersionSupported(registry.Versions, constants.VersionSSL3) {
		t.Error("SSL 3.0 supported despite missing from priorities")
	}
	if sess.VersionSupported(registry.Versions, constants.VersionUnknown) {
		t.Error("unknown version reported supported")
	}
}

func TestPrivateDefaultsOff(t *testing.T) {
	sess := New(Default())
	if sess.PrivateEnabled() {
		t.Error("private algorithms enabled by default")
	}
	sess.EnablePrivate(true)
	if !sess.PrivateEnabled() {
		t.Error("EnablePrivate(true) had no effect")
	}
}
