package suite

import (
	"bytes"
	"testing"

	qerrors "github.com/sara-star-quant/tlsalg/internal/errors"
)

func TestSuiteVectorRoundTrip(t *testing.T) {
	in := []Suite{{0x00, 0x39}, {0x00, 0x35}, {0xFF, 0x55}}

	wire, err := EncodeSuites(in)
	if err != nil {
		t.Fatalf("EncodeSuites: %v", err)
	}
	want := []byte{0x00, 0x06, 0x00, 0x39, 0x00, 0x35, 0xFF, 0x55}
	if !bytes.Equal(wire, want) {
		t.Fatalf("wire = %x, want %x", wire, want)
	}

	out, err := ParseSuites(wire)
	if err != nil {
		t.Fatalf("ParseSuites: %v", err)
	}
	assertSuites(t, out, in)
}

func TestEncodeSuitesEmpty(t *testing.T) {
	wire, err := EncodeSuites(nil)
	if err != nil {
		t.Fatalf("EncodeSuites: %v", err)
	}
	if !bytes.Equal(wire, []byte{0x00, 0x00}) {
		t.Errorf("wire = %x", wire)
	}
}

func TestParseSuitesPreservesUnknownCodes(t *testing.T) {
	out, err := ParseSuites([]byte{0x00, 0x02, 0xAB, 0xCD})
	if err != nil {
		t.Fatalf("ParseSuites: %v", err)
	}
	if len(out) != 1 || out[0] != (Suite{0xAB, 0xCD}) {
		t.Errorf("out = %v", out)
	}
	if IsOK(out[0]) {
		t.Error("bogus code in the table")
	}
}

func TestParseSuitesMalformed(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"truncated prefix", []byte{0x00}},
		{"body shorter than prefix", []byte{0x00, 0x04, 0x00, 0x35}},
		{"odd body length", []byte{0x00, 0x03, 0x00, 0x35, 0xFF}},
		{"trailing garbage", []byte{0x00, 0x02, 0x00, 0x35, 0xAA}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseSuites(tt.data); !qerrors.Is(err, qerrors.ErrInvalidWireFormat) {
				t.Errorf("err = %v, want ErrInvalidWireFormat", err)
			}
		})
	}
}

func TestCompressionVectorRoundTrip(t *testing.T) {
	in := []uint8{0x01, 0x00}

	wire, err := EncodeCompressionMethods(in)
	if err != nil {
		t.Fatalf("EncodeCompressionMethods: %v", err)
	}
	if !bytes.Equal(wire, []byte{0x02, 0x01, 0x00}) {
		t.Fatalf("wire = %x", wire)
	}

	out, err := ParseCompressionMethods(wire)
	if err != nil {
		t.Fatalf("ParseCompressionMethods: %v", err)
	}
	if !bytes.Equal(out, in) {
		t.Errorf("out = %v, want %v", out, in)
	}
}

func TestParseCompressionMethodsMalformed(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"body shorter than prefix", []byte{0x03, 0x00}},
		{"trailing garbage", []byte{0x01, 0x00, 0xAA}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseCompressionMethods(tt.data); !qerrors.Is(err, qerrors.ErrInvalidWireFormat) {
				t.Errorf("err = %v, want ErrInvalidWireFormat", err)
			}
		})
	}
}

func FuzzParseSuites(f *testing.F) {
	f.Add([]byte{0x00, 0x02, 0x00, 0x35})
	f.Add([]byte{0x00, 0x00})
	f.Add([]byte{0xFF, 0xFF})

	f.Fuzz(func(t *testing.T, data []byte) {
		suites, err := ParseSuites(data)
		if err != nil {
			return
		}
		// Whatever parses must re-encode to the same bytes.
		wire, err := EncodeSuites(suites)
		if err != nil {
			t.Fatalf("EncodeSuites after parse: %v", err)
		}
		if !bytes.Equal(wire, data) {
			t.Errorf("round trip: %x -> %x", data, wire)
		}
	})
}
