package registry

import (
	"testing"

	"github.com/sara-star-quant/tlsalg/internal/constants"
)

func TestCipherProperties(t *testing.T) {
	tests := []struct {
		name      string
		id        constants.Cipher
		keySize   int
		blockSize int
		ivSize    int
		block     bool
		export    bool
	}{
		{"AES 256 CBC", constants.CipherAES256CBC, 32, 16, 16, true, false},
		{"AES 128 CBC", constants.CipherAES128CBC, 16, 16, 16, true, false},
		{"3DES 168 CBC", constants.Cipher3DESCBC, 24, 8, 8, true, false},
		{"TWOFISH 128 CBC", constants.CipherTwofish128CBC, 16, 16, 16, true, false},
		{"ARCFOUR 128", constants.CipherARCFOUR128, 16, 1, 0, false, false},
		{"ARCFOUR 40", constants.CipherARCFOUR40, 5, 1, 0, false, true},
		{"RC2 40", constants.CipherRC240CBC, 5, 8, 8, true, true},
		{"DES CBC", constants.CipherDESCBC, 8, 8, 8, true, false},
		{"NULL", constants.CipherNULL, 0, 1, 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !Ciphers.IsOK(tt.id) {
				t.Fatalf("IsOK(%v) = false", tt.id)
			}
			if got := Ciphers.Name(tt.id); got != tt.name {
				t.Errorf("Name = %q, want %q", got, tt.name)
			}
			if got := Ciphers.KeySize(tt.id); got != tt.keySize {
				t.Errorf("KeySize = %d, want %d", got, tt.keySize)
			}
			if got := Ciphers.BlockSize(tt.id); got != tt.blockSize {
				t.Errorf("BlockSize = %d, want %d", got, tt.blockSize)
			}
			if got := Ciphers.IVSize(tt.id); got != tt.ivSize {
				t.Errorf("IVSize = %d, want %d", got, tt.ivSize)
			}
			if got := Ciphers.IsBlock(tt.id); got != tt.block {
				t.Errorf("IsBlock = %v, want %v", got, tt.block)
			}
			if got := Ciphers.IsExport(tt.id); got != tt.export {
				t.Errorf("IsExport = %v, want %v", got, tt.export)
			}
		})
	}
}

func TestCipherUnknown(t *testing.T) {
	unknown := constants.Cipher(999)

	if Ciphers.IsOK(unknown) {
		t.Error("IsOK(999) = true")
	}
	if got := Ciphers.Name(unknown); got != "" {
		t.Errorf("Name(999) = %q, want empty", got)
	}
	if got := Ciphers.KeySize(unknown); got != 0 {
		t.Errorf("KeySize(999) = %d, want 0", got)
	}
	if Ciphers.IsBlock(unknown) {
		t.Error("IsBlock(999) = true")
	}
}

func TestCipherByName(t *testing.T) {
	if got := Ciphers.ByName("AES 256 CBC"); got != constants.CipherAES256CBC {
		t.Errorf("ByName = %v, want CipherAES256CBC", got)
	}
	if got := Ciphers.ByName("NO SUCH CIPHER"); got != constants.CipherUnknown {
		t.Errorf("ByName(bogus) = %v, want CipherUnknown", got)
	}
}

func TestCipherRegistryExtension(t *testing.T) {
	extra := CipherEntry{
		Name: "CAMELLIA 128 CBC", ID: constants.Cipher(100),
		BlockSize: 16, KeySize: 16, Kind: constants.CipherKindBlock, IVSize: 16,
	}
	reg := NewCipherRegistry(extra)

	if !reg.IsOK(extra.ID) {
		t.Error("extended registry misses extra entry")
	}
	// The default registry must not see configuration-added entries.
	if Ciphers.IsOK(extra.ID) {
		t.Error("default registry sees extension")
	}
}

func TestMACDigestSizes(t *testing.T) {
	tests := []struct {
		name string
		id   constants.MAC
		size int
	}{
		{"SHA", constants.MACSHA, 20},
		{"MD5", constants.MACMD5, 16},
		{"NULL", constants.MACNULL, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MACs.DigestSize(tt.id); got != tt.size {
				t.Errorf("DigestSize = %d, want %d", got, tt.size)
			}
			if got := MACs.Name(tt.id); got != tt.name {
				t.Errorf("Name = %q, want %q", got, tt.name)
			}
		})
	}

	// DigestSize(unknown) and DigestSize(NULL) both report 0; IsOK tells
	// them apart.
	if got := MACs.DigestSize(constants.MAC(999)); got != 0 {
		t.Errorf("DigestSize(unknown) = %d, want 0", got)
	}
	if MACs.IsOK(constants.MAC(999)) {
		t.Error("IsOK(unknown MAC) = true")
	}
	if !MACs.IsOK(constants.MACNULL) {
		t.Error("IsOK(MACNULL) = false")
	}
}

func TestCompressionNames(t *testing.T) {
	// Protocol-facing names have the registry prefix stripped.
	if got := Compressions.Name(constants.CompressionNULL); got != "NULL" {
		t.Errorf("Name(NULL) = %q, want NULL", got)
	}
	if got := Compressions.Name(constants.CompressionZLIB); got != "ZLIB" {
		t.Errorf("Name(ZLIB) = %q, want ZLIB", got)
	}
	if got := Compressions.Name(constants.Compression(999)); got != "" {
		t.Errorf("Name(unknown) = %q, want empty", got)
	}

	if got := Compressions.ByName("ZLIB"); got != constants.CompressionZLIB {
		t.Errorf("ByName(ZLIB) = %v", got)
	}
	if got := Compressions.ByName("COMP_ZLIB"); got != constants.CompressionUnknown {
		t.Errorf("ByName(COMP_ZLIB) = %v, want unknown (prefix is internal)", got)
	}
}

func TestCompressionNumbers(t *testing.T) {
	if got := Compressions.Num(constants.CompressionNULL); got != 0x00 {
		t.Errorf("Num(NULL) = %#x", got)
	}
	if got := Compressions.Num(constants.CompressionZLIB); got != 0x01 {
		t.Errorf("Num(ZLIB) = %#x", got)
	}
	if got := Compressions.Num(constants.Compression(999)); got != -1 {
		t.Errorf("Num(unknown) = %d, want -1", got)
	}

	if got := Compressions.ByNum(0x01); got != constants.CompressionZLIB {
		t.Errorf("ByNum(0x01) = %v", got)
	}
	if got := Compressions.ByNum(0x7F); got != constants.CompressionUnknown {
		t.Errorf("ByNum(0x7F) = %v, want unknown", got)
	}
}

func TestCompressionDeflateParameters(t *testing.T) {
	if got := Compressions.WindowBits(constants.CompressionZLIB); got != 15 {
		t.Errorf("WindowBits = %d, want 15", got)
	}
	if got := Compressions.MemLevel(constants.CompressionZLIB); got != 8 {
		t.Errorf("MemLevel = %d, want 8", got)
	}
	if got := Compressions.CompressionLevel(constants.CompressionZLIB); got != 3 {
		t.Errorf("CompressionLevel = %d, want 3", got)
	}
	if got := Compressions.WindowBits(constants.Compression(999)); got != -1 {
		t.Errorf("WindowBits(unknown) = %d, want -1", got)
	}
}

func TestVersionWireMapping(t *testing.T) {
	tests := []struct {
		name         string
		id           constants.Version
		major, minor int
	}{
		{"SSL 3.0", constants.VersionSSL3, 3, 0},
		{"TLS 1.0", constants.VersionTLS10, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Versions.Major(tt.id); got != tt.major {
				t.Errorf("Major = %d, want %d", got, tt.major)
			}
			if got := Versions.Minor(tt.id); got != tt.minor {
				t.Errorf("Minor = %d, want %d", got, tt.minor)
			}
			if got := Versions.FromWire(tt.major, tt.minor); got != tt.id {
				t.Errorf("FromWire(%d, %d) = %v, want %v", tt.major, tt.minor, got, tt.id)
			}
			if got := Versions.Name(tt.id); got != tt.name {
				t.Errorf("Name = %q, want %q", got, tt.name)
			}
			if !Versions.IsSupported(tt.id) {
				t.Error("IsSupported = false")
			}
		})
	}
}

func TestVersionUnknowns(t *testing.T) {
	if got := Versions.FromWire(3, 9); got != constants.VersionUnknown {
		t.Errorf("FromWire(3, 9) = %v, want unknown", got)
	}
	if got := Versions.Major(constants.VersionUnknown); got != -1 {
		t.Errorf("Major(unknown) = %d, want -1", got)
	}
	if got := Versions.Minor(constants.VersionUnknown); got != -1 {
		t.Errorf("Minor(unknown) = %d, want -1", got)
	}
	if Versions.IsSupported(constants.VersionUnknown) {
		t.Error("IsSupported(unknown) = true")
	}
}

func TestKXRegistry(t *testing.T) {
	if !KeyExchanges.IsOK(constants.KXDHERSA) {
		t.Error("IsOK(DHE RSA) = false")
	}
	if got := KeyExchanges.Name(constants.KXDHERSA); got != "DHE RSA" {
		t.Errorf("Name = %q", got)
	}
	if got := KeyExchanges.ByName("RSA EXPORT"); got != constants.KXRSAExport {
		t.Errorf("ByName(RSA EXPORT) = %v", got)
	}

	// SRP key exchanges are opt-in through the constructor.
	if KeyExchanges.IsOK(constants.KXSRP) {
		t.Error("default registry includes SRP")
	}
	srp := NewKXRegistry(SRPKeyExchanges()...)
	if !srp.IsOK(constants.KXSRP) || !srp.IsOK(constants.KXSRPRSA) || !srp.IsOK(constants.KXSRPDSS) {
		t.Error("SRP-enabled registry misses SRP entries")
	}
}
