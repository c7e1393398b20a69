package engine

import (
	"testing"
	"time"
)

func TestDispatchRouting(t *testing.T) {
	e := testEngine(t, Config{
		SkipTrackers: []string{"udp://hang.example:6969/announce"},
	})
	var httpCalls, udpCalls int
	e.probeHTTP = func(ep Endpoint) Outcome {
		httpCalls++
		return validOutcome(ep, time.Millisecond)
	}
	e.probeUDP = func(ep Endpoint) Outcome {
		udpCalls++
		return validOutcome(ep, time.Millisecond)
	}

	tests := []struct {
		name     string
		uri      string
		want     bool
		wantKind ErrorKind
	}{
		{"udp routed", "udp://tracker.example:6969/announce", true, ErrNone},
		{"http routed", "http://tracker.example/announce", true, ErrNone},
		{"https routed", "https://tracker.example/announce", true, ErrNone},
		{"wss unsupported", "wss://tracker.example/announce", false, ErrUnsupportedScheme},
		{"denylisted", "udp://hang.example:6969/announce", false, ErrSkipped},
		{"unparseable", "udp://", false, ErrUnparseable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := e.Dispatch(ParseEndpoint(tt.uri))
			if out.Valid != tt.want || out.Kind != tt.wantKind {
				t.Errorf("Dispatch() valid=%v kind=%q, want valid=%v kind=%q",
					out.Valid, out.Kind, tt.want, tt.wantKind)
			}
		})
	}

	if httpCalls != 2 {
		t.Errorf("http prober called %d times, want 2", httpCalls)
	}
	if udpCalls != 1 {
		t.Errorf("udp prober called %d times, want 1 (denylist must short-circuit)", udpCalls)
	}
}
