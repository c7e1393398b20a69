package engine

import (
	"encoding/binary"
	"math/rand"
	"net"
	"time"
)

const (
	defaultUDPTimeout = 10 * time.Second

	// BEP 15 connect request constants
	connectMagic  uint64 = 0x41727101980
	actionConnect uint32 = 0

	connectPacketLen = 16
)

func init() {
	rand.Seed(time.Now().UnixNano())
}

// udpProbe performs the BEP 15 connect handshake: one 16-byte request,
// one reply, no retries. A tracker that cannot answer correctly on the
// first try within the timeout is not counted valid for this run.
func (e *Engine) udpProbe(ep Endpoint) Outcome {
	raddr, err := net.ResolveUDPAddr("udp", ep.Addr())
	if err != nil {
		return failedOutcome(ep, ErrSocket)
	}

	conn, err := net.DialUDP("udp", nil, raddr)
	if err != nil {
		return failedOutcome(ep, ErrSocket)
	}
	defer conn.Close()

	txID := rand.Uint32()
	var req [connectPacketLen]byte
	binary.BigEndian.PutUint64(req[0:8], connectMagic)
	binary.BigEndian.PutUint32(req[8:12], actionConnect)
	binary.BigEndian.PutUint32(req[12:16], txID)

	if err := conn.SetDeadline(time.Now().Add(e.config.UDPTimeout)); err != nil {
		return failedOutcome(ep, ErrSocket)
	}

	start := time.Now()
	if _, err := conn.Write(req[:]); err != nil {
		return failedOutcome(ep, ErrSocket)
	}

	var buf [64]byte
	n, err := conn.Read(buf[:])
	if err != nil {
		if ne, ok := err.(net.Error); ok && ne.Timeout() {
			return failedOutcome(ep, ErrTimeout)
		}
		return failedOutcome(ep, ErrSocket)
	}
	elapsed := time.Since(start)

	if n != connectPacketLen {
		e.dlog.Printf("udp probe %s: short reply, %d bytes", ep.URI, n)
		return failedOutcome(ep, ErrInvalidResponse)
	}

	action := binary.BigEndian.Uint32(buf[0:4])
	replyTxID := binary.BigEndian.Uint32(buf[4:8])
	connID := binary.BigEndian.Uint64(buf[8:16])

	// a mismatch is a spoofed or confused reply, not a retryable condition
	if action != actionConnect || replyTxID != txID {
		e.dlog.Printf("udp probe %s: action %d, txid %x (sent %x)", ep.URI, action, replyTxID, txID)
		return failedOutcome(ep, ErrProtocolMismatch)
	}

	e.dlog.Printf("udp probe %s: connection id %x in %v", ep.URI, connID, elapsed)
	return validOutcome(ep, elapsed)
}
