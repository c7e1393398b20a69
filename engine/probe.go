package engine

import "time"

// ErrorKind classifies why a probe did not produce a valid response.
type ErrorKind string

const (
	ErrNone              ErrorKind = ""
	ErrUnparseable       ErrorKind = "unparseable"
	ErrSkipped           ErrorKind = "skipped"
	ErrUnsupportedScheme ErrorKind = "unsupported-scheme"
	ErrConnection        ErrorKind = "connection-error"
	ErrTimeout           ErrorKind = "timeout"
	ErrRequest           ErrorKind = "request-error"
	ErrInvalidResponse   ErrorKind = "invalid-response"
	ErrSocket            ErrorKind = "socket-error"
	ErrProtocolMismatch  ErrorKind = "protocol-mismatch"
	ErrInternal          ErrorKind = "internal-error"
)

// Outcome is the result of probing one endpoint. ResponseTime is only
// meaningful when Valid is true; Kind is only set when it is not.
type Outcome struct {
	Endpoint     Endpoint
	Valid        bool
	ResponseTime time.Duration
	Kind         ErrorKind
}

// ResponseTimeMs returns the measured response time in milliseconds.
func (o Outcome) ResponseTimeMs() float64 {
	return float64(o.ResponseTime) / float64(time.Millisecond)
}

func validOutcome(ep Endpoint, elapsed time.Duration) Outcome {
	return Outcome{Endpoint: ep, Valid: true, ResponseTime: elapsed}
}

func failedOutcome(ep Endpoint, kind ErrorKind) Outcome {
	return Outcome{Endpoint: ep, Kind: kind}
}
