package engine

import (
	"fmt"
	"net/http"

	eglog "github.com/anacrolix/log"
	"golang.org/x/time/rate"
)

const progressBuffer = 64

//the Engine probes tracker endpoints over HTTP(S) and UDP
type Engine struct {
	config     Config
	skip       map[string]struct{}
	limiter    *rate.Limiter
	bodyLimit  int64
	httpClient *http.Client
	dlog       eglog.Logger
	progress   chan Progress

	// prober entry points, swappable in tests
	probeHTTP func(Endpoint) Outcome
	probeUDP  func(Endpoint) Outcome
}

func New() *Engine {
	e := &Engine{
		skip:     map[string]struct{}{},
		limiter:  rate.NewLimiter(rate.Inf, 0),
		dlog:     eglog.Discard,
		progress: make(chan Progress, progressBuffer),
	}
	e.probeHTTP = e.httpProbe
	e.probeUDP = e.udpProbe
	return e
}

func (e *Engine) Config() Config {
	return e.config
}

// Configure receives config and prepares the probers.
func (e *Engine) Configure(c *Config) error {
	if c.MaxWorkers <= 0 {
		return fmt.Errorf("Invalid max workers (%d)", c.MaxWorkers)
	}
	if c.HTTPTimeout <= 0 {
		c.HTTPTimeout = defaultHTTPTimeout
	}
	if c.UDPTimeout <= 0 {
		c.UDPTimeout = defaultUDPTimeout
	}

	e.config = *c
	e.skip = make(map[string]struct{}, len(c.SkipTrackers))
	for _, uri := range c.SkipTrackers {
		e.skip[uri] = struct{}{}
	}
	e.limiter = c.RateLimiter()
	e.bodyLimit = c.BodyLimit()
	e.httpClient = &http.Client{Timeout: c.HTTPTimeout}
	if c.ProbeDebug {
		e.dlog = eglog.Default
	} else {
		e.dlog = eglog.Discard
	}
	return nil
}

// Progress exposes the advisory per-probe progress stream. The channel
// is closed when RunAll returns; events are dropped when the consumer
// falls behind.
func (e *Engine) Progress() <-chan Progress {
	return e.progress
}

// Progress is one advisory progress event, emitted after each probe.
type Progress struct {
	Completed int
	Total     int
	Valid     int
}
