package ids

import "github.com/segmentio/ksuid"

// New returns a new ksuid string. ksuids sort by creation time, which the
// session ledger relies on as a tie-break.
func New() string {
	return ksuid.New().String()
}
