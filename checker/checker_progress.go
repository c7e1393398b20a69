package checker

import (
	"fmt"
	"os"
	"time"

	"github.com/boypt/simple-trackercheck/engine"
)

const progressInterval = 200 * time.Millisecond

// printProgress redraws a single status line as probes complete. The
// event stream is advisory and may skip updates; only the final count
// matters for display.
func (c *Checker) printProgress(events <-chan engine.Progress, done chan struct{}) {
	defer close(done)

	var last time.Time
	var final engine.Progress
	for p := range events {
		final = p
		if time.Since(last) < progressInterval && p.Completed != p.Total {
			continue
		}
		last = time.Now()
		fmt.Fprintf(os.Stderr, "\r[probe] %d/%d tested, %d valid", p.Completed, p.Total, p.Valid)
	}

	if final.Total > 0 {
		fmt.Fprintf(os.Stderr, "\r[probe] %d/%d tested, %d valid\n", final.Completed, final.Total, final.Valid)
	}
}
