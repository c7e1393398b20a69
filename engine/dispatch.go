package engine

// Dispatch routes an endpoint to the matching prober. Denylisted URIs
// are short-circuited before scheme routing; some known trackers hang
// the udp prober until the full timeout and must never reach it.
func (e *Engine) Dispatch(ep Endpoint) Outcome {
	if ep.Unparseable {
		return failedOutcome(ep, ErrUnparseable)
	}
	if _, ok := e.skip[ep.URI]; ok {
		return failedOutcome(ep, ErrSkipped)
	}

	switch ep.Scheme {
	case "udp":
		return e.probeUDP(ep)
	case "http", "https":
		return e.probeHTTP(ep)
	default:
		// ws/wss and anything else
		return failedOutcome(ep, ErrUnsupportedScheme)
	}
}
