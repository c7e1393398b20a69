package engine

import (
	"fmt"
	"testing"
	"time"
)

func TestRunAllOneOutcomePerEndpoint(t *testing.T) {
	e := testEngine(t, Config{MaxWorkers: 50})
	e.probeUDP = func(ep Endpoint) Outcome {
		// fail every other endpoint, outcomes must still be complete
		if len(ep.Host)%2 == 0 {
			return failedOutcome(ep, ErrTimeout)
		}
		return validOutcome(ep, 10*time.Millisecond)
	}

	uris := make([]string, 1000)
	for i := range uris {
		uris[i] = fmt.Sprintf("udp://t%d.example:6969/announce", i)
	}
	go drainProgress(e)

	batch := e.RunAll(uris)
	if len(batch) != len(uris) {
		t.Fatalf("RunAll() returned %d outcomes, want %d", len(batch), len(uris))
	}
	for _, uri := range uris {
		out, ok := batch[uri]
		if !ok {
			t.Fatalf("missing outcome for %s", uri)
		}
		if out.Endpoint.URI != uri {
			t.Fatalf("outcome for %s carries endpoint %s", uri, out.Endpoint.URI)
		}
	}
}

func TestRunAllIsolatesFaultyProbe(t *testing.T) {
	const faulty = "udp://t13.example:6969/announce"

	e := testEngine(t, Config{MaxWorkers: 50})
	e.probeUDP = func(ep Endpoint) Outcome {
		if ep.URI == faulty {
			panic("boom")
		}
		return validOutcome(ep, 10*time.Millisecond)
	}

	uris := make([]string, 1000)
	for i := range uris {
		uris[i] = fmt.Sprintf("udp://t%d.example:6969/announce", i)
	}
	go drainProgress(e)

	batch := e.RunAll(uris)
	if len(batch) != len(uris) {
		t.Fatalf("RunAll() returned %d outcomes, want %d", len(batch), len(uris))
	}
	if out := batch[faulty]; out.Valid || out.Kind != ErrInternal {
		t.Errorf("faulty probe outcome valid=%v kind=%q, want internal-error", out.Valid, out.Kind)
	}
	for _, uri := range uris {
		if uri == faulty {
			continue
		}
		if out := batch[uri]; !out.Valid {
			t.Fatalf("sibling probe %s affected by fault: kind=%q", uri, out.Kind)
		}
	}
}

func TestRunAllProgressStream(t *testing.T) {
	e := testEngine(t, Config{MaxWorkers: 5})
	e.probeUDP = func(ep Endpoint) Outcome {
		return validOutcome(ep, time.Millisecond)
	}

	uris := make([]string, 20)
	for i := range uris {
		uris[i] = fmt.Sprintf("udp://t%d.example:6969/announce", i)
	}

	var events []Progress
	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for p := range e.Progress() {
			events = append(events, p)
		}
	}()

	e.RunAll(uris)
	<-collected

	if len(events) == 0 {
		t.Fatal("no progress events observed")
	}
	prev := 0
	for _, p := range events {
		if p.Total != len(uris) {
			t.Errorf("event total = %d, want %d", p.Total, len(uris))
		}
		if p.Completed < prev || p.Completed > p.Total || p.Valid > p.Completed {
			t.Errorf("inconsistent progress event: %+v", p)
		}
		prev = p.Completed
	}
}

// end to end shape: a correct udp handshake beats a bad http endpoint
func TestRunAllAggregateExample(t *testing.T) {
	e := testEngine(t, Config{MaxWorkers: 2})
	e.probeUDP = func(ep Endpoint) Outcome {
		return validOutcome(ep, 40*time.Millisecond)
	}
	e.probeHTTP = func(ep Endpoint) Outcome {
		return failedOutcome(ep, ErrInvalidResponse)
	}
	go drainProgress(e)

	batch := e.RunAll([]string{
		"udp://tracker.example:6969/announce",
		"http://bad.example/announce",
	})
	ranked, _ := Aggregate(batch, 0)

	if len(ranked) != 1 || ranked[0].URI != "udp://tracker.example:6969/announce" || ranked[0].ResponseTimeMs != 40.0 {
		t.Errorf("ranked = %+v, want single udp entry at 40ms", ranked)
	}
}

func drainProgress(e *Engine) {
	for range e.Progress() {
	}
}
