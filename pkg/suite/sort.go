package suite

import (
	"sort"

	"github.com/sara-star-quant/tlsalg/pkg/metrics"
	"github.com/sara-star-quant/tlsalg/pkg/session"
)

// Weight returns the composite priority score of s under the session's
// lists: (kxRank+1)*64 + (cipherRank+1)*8 + macRank, where a missing
// component ranks as -1. Lower scores sort first. The filter has already
// removed suites with missing components, so the -1 path only matters for
// callers scoring arbitrary codes.
func Weight(sess *session.Session, s Suite) int {
	e, _ := Find(s)
	w := (sess.KXPriority(e.KX) + 1) * 64
	w += (sess.CipherPriority(e.Cipher) + 1) * 8
	w += sess.MACPriority(e.MAC)
	return w
}

// SortByPriority orders suites in place, ascending by composite score.
// The sort is stable, so suites with equal scores keep the filter's table
// order and results are deterministic across platforms. Sorting an already
// sorted slice is a no-op.
func SortByPriority(sess *session.Session, suites []Suite) {
	if len(suites) <= 1 {
		return
	}

	logSuites("unsorted", suites)

	sort.SliceStable(suites, func(i, j int) bool {
		return Weight(sess, suites[i]) < Weight(sess, suites[j])
	})

	logSuites("sorted", suites)
}

func logSuites(label string, suites []Suite) {
	logger := metrics.GetLogger()
	names := make([]string, len(suites))
	for i, s := range suites {
		names[i] = Name(s)
	}
	logger.Debug(label+" cipher suites", metrics.Fields{"suites": names})
}
