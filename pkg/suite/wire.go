package suite

import (
	"golang.org/x/crypto/cryptobyte"

	qerrors "github.com/sara-star-quant/tlsalg/internal/errors"
)

// Wire encoding of the negotiated lists, in the hello-message vector
// format: cipher suites as a 2-byte length-prefixed vector of 2-byte
// codes, compression methods as a 1-byte length-prefixed vector of
// single-byte numbers.

// EncodeSuites encodes suites as a length-prefixed wire vector.
func EncodeSuites(suites []Suite) ([]byte, error) {
	var b cryptobyte.Builder
	b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
		for _, s := range suites {
			b.AddBytes(s[:])
		}
	})
	out, err := b.Bytes()
	if err != nil {
		return nil, qerrors.NewNegotiationError("encode cipher suites", qerrors.ErrListTooLong)
	}
	return out, nil
}

// ParseSuites decodes a length-prefixed wire vector of cipher suite codes.
// Unknown codes are preserved; rejecting them is the caller's policy
// (IsOK probes the table).
func ParseSuites(data []byte) ([]Suite, error) {
	s := cryptobyte.String(data)
	var body cryptobyte.String
	if !s.ReadUint16LengthPrefixed(&body) || !s.Empty() {
		return nil, qerrors.ErrInvalidWireFormat
	}
	if len(body)%2 != 0 {
		return nil, qerrors.ErrInvalidWireFormat
	}

	out := make([]Suite, 0, len(body)/2)
	for !body.Empty() {
		var code []byte
		if !body.ReadBytes(&code, 2) {
			return nil, qerrors.ErrInvalidWireFormat
		}
		out = append(out, Suite{code[0], code[1]})
	}
	return out, nil
}

// EncodeCompressionMethods encodes methods as a length-prefixed wire
// vector.
func EncodeCompressionMethods(methods []uint8) ([]byte, error) {
	var b cryptobyte.Builder
	b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes(methods)
	})
	out, err := b.Bytes()
	if err != nil {
		return nil, qerrors.NewNegotiationError("encode compression methods", qerrors.ErrListTooLong)
	}
	return out, nil
}

// ParseCompressionMethods decodes a length-prefixed wire vector of
// compression method numbers.
func ParseCompressionMethods(data []byte) ([]uint8, error) {
	s := cryptobyte.String(data)
	var body cryptobyte.String
	if !s.ReadUint8LengthPrefixed(&body) || !s.Empty() {
		return nil, qerrors.ErrInvalidWireFormat
	}
	out := make([]uint8, len(body))
	copy(out, body)
	return out, nil
}
