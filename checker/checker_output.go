package checker

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/boypt/simple-trackercheck/engine"
	"github.com/dustin/go-humanize"
)

// writeTrackers writes the ranked list blank-line separated, fastest
// first. Only called when at least one tracker survived filtering.
func writeTrackers(path string, ranked engine.RankedResult) error {
	uris := make([]string, len(ranked))
	for i, r := range ranked {
		uris[i] = r.URI
	}
	return os.WriteFile(path, []byte(strings.Join(uris, "\n\n")+"\n"), 0644)
}

func (c *Checker) printSummary(dist engine.Distribution, total, kept int, elapsed time.Duration, cfg *engine.Config) {
	log.Printf("[summary] tested %s trackers in %v, %s valid",
		humanize.Comma(int64(total)), elapsed.Round(time.Second), humanize.Comma(int64(dist.Count)))
	if dist.Count == 0 {
		return
	}

	log.Printf("[summary] response time min/median/mean/max: %.0f/%.0f/%.0f/%.0f ms",
		dist.MinMs, dist.MedianMs, dist.MeanMs, dist.MaxMs)
	for i, n := range dist.Buckets {
		log.Printf("[summary] %s %4d %s", engine.BucketLabel(i), n, strings.Repeat("#", barLen(n, dist.Count)))
	}

	if cfg.MaxResponseTime > 0 {
		log.Printf("[summary] %s trackers within the %v ceiling",
			humanize.Comma(int64(kept)), cfg.MaxResponseTime)
	}
}

// barLen scales a bucket count to at most 40 columns.
func barLen(n, total int) int {
	if total == 0 {
		return 0
	}
	return n * 40 / total
}
