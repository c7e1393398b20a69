package engine

import (
	"net"
	"net/url"
	"strconv"
	"strings"
)

const defaultUDPPort = 6969

// Endpoint is a parsed tracker URI. Unparseable is a terminal state:
// a hostless or malformed URI never reaches a prober.
type Endpoint struct {
	URI    string
	Scheme string
	Host   string
	Port   int

	Unparseable bool
}

// ParseEndpoint splits a tracker URI into scheme/host/port. It never
// returns an error; malformed input yields Unparseable.
func ParseEndpoint(uri string) Endpoint {
	ep := Endpoint{URI: uri}

	if uri == "" || !strings.Contains(uri, "://") {
		ep.Unparseable = true
		return ep
	}

	u, err := url.Parse(uri)
	if err != nil || u.Scheme == "" || u.Hostname() == "" {
		ep.Unparseable = true
		return ep
	}

	ep.Scheme = u.Scheme
	ep.Host = u.Hostname()

	if p := u.Port(); p != "" {
		// url.Parse only accepts digits here, Atoi can't fail
		ep.Port, _ = strconv.Atoi(p)
	} else if u.Scheme == "udp" {
		ep.Port = defaultUDPPort
	}

	return ep
}

// Addr returns the host:port dial target, re-bracketing IPv6 literals.
func (ep Endpoint) Addr() string {
	return net.JoinHostPort(ep.Host, strconv.Itoa(ep.Port))
}
