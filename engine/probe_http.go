package engine

import (
	"errors"
	"io"
	"math/rand"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/anacrolix/torrent/bencode"
	"github.com/anacrolix/torrent/metainfo"
)

const (
	defaultHTTPTimeout = 5 * time.Second

	// not a real torrent, just a stable 20-byte payload for announce probes
	infoHashSeed = "simple-trackercheck probe infohash seed"

	peerIDPrefix  = "-TC0100-"
	httpUserAgent = "uTorrent/3.5.5"
)

var probeInfoHash = metainfo.HashBytes([]byte(infoHashSeed))

// trackerReply is the announce response subset decoded for debug logs.
// Validity never depends on a successful decode.
type trackerReply struct {
	FailureReason string `bencode:"failure reason"`
	Interval      int    `bencode:"interval"`
}

// httpProbe sends a BEP 3 announce request and checks that the reply
// body looks like a bencoded dictionary.
func (e *Engine) httpProbe(ep Endpoint) Outcome {
	req, err := http.NewRequest("GET", announceURL(ep.URI), nil)
	if err != nil {
		return failedOutcome(ep, ErrRequest)
	}
	req.Header.Set("User-Agent", httpUserAgent)

	start := time.Now()
	resp, err := e.httpClient.Do(req)
	if err != nil {
		return failedOutcome(ep, classifyHTTPError(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, e.bodyLimit))
	if err != nil {
		return failedOutcome(ep, classifyHTTPError(err))
	}
	elapsed := time.Since(start)

	if !isBencodedDict(body) {
		e.dlog.Printf("http probe %s: status %d, %d bytes, not bencoded", ep.URI, resp.StatusCode, len(body))
		return failedOutcome(ep, ErrInvalidResponse)
	}

	var reply trackerReply
	if err := bencode.Unmarshal(body, &reply); err == nil && reply.FailureReason != "" {
		// a bencoded failure still proves the endpoint speaks the protocol
		e.dlog.Printf("http probe %s: tracker failure reason: %s", ep.URI, reply.FailureReason)
	}

	return validOutcome(ep, elapsed)
}

// announceURL appends the BEP 3 announce parameters to a tracker URI.
func announceURL(uri string) string {
	v := url.Values{}
	v.Set("info_hash", string(probeInfoHash[:]))
	v.Set("peer_id", string(probePeerID()))
	v.Set("port", "6881")
	v.Set("uploaded", "0")
	v.Set("downloaded", "0")
	v.Set("left", "0")
	v.Set("compact", "1")
	v.Set("event", "started")

	sep := "?"
	if strings.Contains(uri, "?") {
		sep = "&"
	}
	return uri + sep + v.Encode()
}

// probePeerID builds a 20-byte peer id: client tag plus random digits.
func probePeerID() []byte {
	id := make([]byte, 20)
	copy(id, peerIDPrefix)
	for i := len(peerIDPrefix); i < len(id); i++ {
		id[i] = byte('0' + rand.Intn(10))
	}
	return id
}

// isBencodedDict is a deliberately loose syntactic check: anything that
// opens a bencoded dictionary and closes it counts, including trackers
// answering with a "failure reason" dictionary.
func isBencodedDict(body []byte) bool {
	return len(body) > 2 && body[0] == 'd' && body[len(body)-1] == 'e'
}

func classifyHTTPError(err error) ErrorKind {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return ErrTimeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return ErrConnection
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return ErrConnection
	}

	return ErrRequest
}
