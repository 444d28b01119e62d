// Package tlsalg provides the algorithm registries and cipher suite
// selection engine for an SSL 3.0 / TLS 1.0 handshake.
//
// The library knows the protocol's ciphers, MAC digests, key exchanges,
// compression methods, protocol versions and cipher suites, and turns a
// caller's ordered preference lists into the filtered, priority-sorted
// algorithm lists a hello message carries.
//
// # Quick Start
//
//	import (
//		"github.com/sara-star-quant/tlsalg/pkg/session"
//		"github.com/sara-star-quant/tlsalg/pkg/suite"
//	)
//
//	sess := session.New(session.Default())
//	suites, err := suite.CandidateSuites(sess)
//	if err != nil {
//		// nothing acceptable to offer
//	}
//	suite.SortByPriority(sess, suites)
//	wire, _ := suite.EncodeSuites(suites)
//
// Individual algorithm properties come from the registries:
//
//	import "github.com/sara-star-quant/tlsalg/pkg/registry"
//
//	registry.Ciphers.KeySize(constants.CipherAES256CBC) // 32
//	registry.MACs.DigestSize(constants.MACSHA)          // 20
//	registry.Versions.FromWire(3, 1)                    // TLS 1.0
//
// # Package Structure
//
//   - pkg/registry: Immutable algorithm registries (ciphers, MACs, key
//     exchanges, compression, versions, credential mappings)
//   - pkg/session: Per-session priority lists and negotiation state
//   - pkg/suite: Cipher suite table, filtering, sorting and wire encoding
//   - pkg/transport: Deferred-connect TCP transport with vectored writes
//   - pkg/metrics: Structured logging, counters and tracing
//   - internal/constants: Algorithm identifiers and protocol constants
//   - internal/errors: Custom error types for detailed error handling
//
// # Selection Semantics
//
// Unknown algorithm identifiers are reported through zero values and
// boolean lookups rather than errors; callers probe registries freely.
// Suite selection is deterministic: filtering walks the suite table in
// its published order and the priority sort is stable, so equal-priority
// suites keep table order on every platform.
//
// For the wire formats, see RFC 2246 (TLS 1.0) section 7.4.1.2.
package tlsalg
