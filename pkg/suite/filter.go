package suite

import (
	"github.com/sara-star-quant/tlsalg/internal/constants"
	qerrors "github.com/sara-star-quant/tlsalg/internal/errors"
	"github.com/sara-star-quant/tlsalg/pkg/metrics"
	"github.com/sara-star-quant/tlsalg/pkg/registry"
	"github.com/sara-star-quant/tlsalg/pkg/session"
)

// CandidateSuites walks the suite table in offer order and returns the wire
// codes acceptable to the session. A suite survives when it is not a
// private suite (or the session permits them), its minimum version does not
// exceed the session's active version, and its key exchange, MAC and cipher
// all appear in the session's priority lists.
//
// An empty result is a hard failure (ErrNoCipherSuites): a session with
// nothing to offer cannot proceed, so emptiness is never returned as a
// zero-length list.
func CandidateSuites(sess *session.Session) ([]Suite, error) {
	collector := metrics.Global()
	collector.NegotiationStarted()

	version := sess.Version()
	out := make([]Suite, 0, len(table))

	for _, e := range table {
		if e.ID.IsPrivate() && !sess.PrivateEnabled() {
			collector.RecordPrivateSuppressed()
			continue
		}
		if e.MinVersion > version {
			continue
		}
		if sess.KXPriority(e.KX) == session.NotAcceptable {
			continue
		}
		if sess.MACPriority(e.MAC) == session.NotAcceptable {
			continue
		}
		if sess.CipherPriority(e.Cipher) == session.NotAcceptable {
			continue
		}
		out = append(out, e.ID)
	}

	if len(out) == 0 {
		collector.NegotiationFailed()
		return nil, qerrors.ErrNoCipherSuites
	}
	collector.RecordSuitesOffered(len(out))

	metrics.Debug("candidate suites", metrics.Fields{
		"count":   len(out),
		"version": version.String(),
	})
	return out, nil
}

// CandidateCompressionMethods returns the wire numbers of the compression
// methods acceptable to the session, in priority order. Methods unknown to
// the registry are dropped, as are private-range numbers when the session
// does not permit them. An empty result is ErrNoCompressionMethods.
func CandidateCompressionMethods(sess *session.Session, reg *registry.CompressionRegistry) ([]uint8, error) {
	collector := metrics.Global()
	prio := sess.Priorities().Compression
	out := make([]uint8, 0, len(prio))

	for _, id := range prio {
		num := reg.Num(id)
		if num < 0 {
			continue
		}
		if !sess.PrivateEnabled() && num >= constants.MinPrivateCompression {
			collector.RecordPrivateSuppressed()
			continue
		}
		out = append(out, uint8(num))
	}

	if len(out) == 0 {
		collector.NegotiationFailed()
		return nil, qerrors.ErrNoCompressionMethods
	}
	collector.RecordCompressionOffered(len(out))
	return out, nil
}
