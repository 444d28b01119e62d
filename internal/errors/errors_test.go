package errors

import (
	"errors"
	"testing"
)

func TestNegotiationErrorWrapping(t *testing.T) {
	err := NewNegotiationError("candidate suites", ErrNoCipherSuites)

	if !Is(err, ErrNoCipherSuites) {
		t.Error("Is(err, ErrNoCipherSuites) = false")
	}

	var negErr *NegotiationError
	if !As(err, &negErr) {
		t.Fatal("As(err, *NegotiationError) = false")
	}
	if negErr.Op != "candidate suites" {
		t.Errorf("Op = %q", negErr.Op)
	}
	if !errors.Is(negErr.Unwrap(), ErrNoCipherSuites) {
		t.Error("Unwrap lost the sentinel")
	}
}

func TestNegotiationErrorMessage(t *testing.T) {
	err := NewNegotiationError("encode cipher suites", ErrListTooLong)
	want := "encode cipher suites: wire: list exceeds length prefix"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestSentinelsDistinct(t *testing.T) {
	sentinels := []error{
		ErrNoCipherSuites,
		ErrNoCompressionMethods,
		ErrUnknownAlgorithm,
		ErrUnknownVersion,
		ErrInvalidWireFormat,
		ErrListTooLong,
		ErrTransportClosed,
		ErrNotConnected,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %d matches sentinel %d", i, j)
			}
		}
	}
}
