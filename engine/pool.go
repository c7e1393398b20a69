package engine

import (
	"context"
	"sync"
)

// Batch maps each probed URI to its single outcome.
type Batch map[string]Outcome

// RunAll probes every endpoint under a fixed pool of MaxWorkers and
// returns once each submitted URI has produced exactly one outcome.
// Probes are isolated: a panic inside one prober becomes an
// internal-error outcome and never reaches its siblings. The progress
// channel is closed before RunAll returns, so an Engine drives one run.
func (e *Engine) RunAll(uris []string) Batch {
	total := len(uris)
	batch := make(Batch, total)
	jobs := make(chan string)

	var (
		mut       sync.Mutex
		wg        sync.WaitGroup
		completed int
		valid     int
	)

	for i := 0; i < e.config.MaxWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for uri := range jobs {
				// rate gate sits outside the probers; Inf is a no-op
				e.limiter.Wait(context.Background())

				out := e.safeDispatch(uri)

				mut.Lock()
				batch[uri] = out
				completed++
				if out.Valid {
					valid++
				}
				// emitted under the lock so the stream is ordered by
				// completion; the send itself never blocks
				e.emitProgress(Progress{Completed: completed, Total: total, Valid: valid})
				mut.Unlock()
			}
		}()
	}

	for _, uri := range uris {
		jobs <- uri
	}
	close(jobs)
	wg.Wait()
	close(e.progress)

	return batch
}

// safeDispatch converts an unexpected prober fault into an outcome.
func (e *Engine) safeDispatch(uri string) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			log.Println("[pool] probe fault recovered:", uri, r)
			out = failedOutcome(Endpoint{URI: uri}, ErrInternal)
		}
	}()
	return e.Dispatch(ParseEndpoint(uri))
}

// emitProgress is advisory only; events are dropped rather than
// blocking a worker on a slow consumer.
func (e *Engine) emitProgress(p Progress) {
	select {
	case e.progress <- p:
	default:
	}
}
