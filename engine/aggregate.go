package engine

import (
	"sort"
	"time"
)

// RankedEntry pairs a valid tracker URI with its response time.
type RankedEntry struct {
	URI            string
	ResponseTimeMs float64
}

// RankedResult is strictly sorted ascending by response time, ties
// broken by URI for determinism.
type RankedResult []RankedEntry

// Distribution summarises response times over every valid outcome,
// before any MaxResponseTime filtering is applied.
type Distribution struct {
	Count    int
	MinMs    float64
	MaxMs    float64
	MedianMs float64
	MeanMs   float64
	Buckets  [6]int
}

// upper bounds in ms for the first five buckets; the sixth is open
var bucketBoundsMs = [5]float64{100, 250, 500, 1000, 2000}

// BucketLabel names one histogram bucket for display.
func BucketLabel(i int) string {
	switch i {
	case 0:
		return "    <100ms"
	case 1:
		return " 100-250ms"
	case 2:
		return " 250-500ms"
	case 3:
		return "500-1000ms"
	case 4:
		return "   1-2s"
	default:
		return "   >2s"
	}
}

// Aggregate reduces a finished batch to the final ranked list plus the
// unfiltered distribution summary. maxResponseTime of zero disables the
// ceiling; an outcome exactly on the ceiling is kept.
func Aggregate(batch Batch, maxResponseTime time.Duration) (RankedResult, Distribution) {
	var validTimes []float64
	ranked := RankedResult{}
	maxMs := float64(maxResponseTime) / float64(time.Millisecond)

	for uri, out := range batch {
		if !out.Valid {
			continue
		}
		ms := out.ResponseTimeMs()
		validTimes = append(validTimes, ms)
		if maxResponseTime > 0 && ms > maxMs {
			continue
		}
		ranked = append(ranked, RankedEntry{URI: uri, ResponseTimeMs: ms})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].ResponseTimeMs != ranked[j].ResponseTimeMs {
			return ranked[i].ResponseTimeMs < ranked[j].ResponseTimeMs
		}
		return ranked[i].URI < ranked[j].URI
	})

	return ranked, distribution(validTimes)
}

func distribution(times []float64) Distribution {
	var d Distribution
	d.Count = len(times)
	if d.Count == 0 {
		return d
	}

	sort.Float64s(times)
	d.MinMs = times[0]
	d.MaxMs = times[len(times)-1]

	if n := len(times); n%2 == 1 {
		d.MedianMs = times[n/2]
	} else {
		d.MedianMs = (times[n/2-1] + times[n/2]) / 2
	}

	var sum float64
	for _, ms := range times {
		sum += ms
		d.Buckets[bucketIndex(ms)]++
	}
	d.MeanMs = sum / float64(len(times))

	return d
}

func bucketIndex(ms float64) int {
	for i, bound := range bucketBoundsMs {
		if ms < bound {
			return i
		}
	}
	return len(bucketBoundsMs)
}
