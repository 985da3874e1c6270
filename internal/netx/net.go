// Package netx has small networking helpers.
package netx

import (
	"net"
	"strings"
)

// HostOnly strips the port from addr. Values without a port (as set by
// proxies through X-Real-IP) come back trimmed but otherwise unchanged,
// and IPv6 brackets are removed.
func HostOnly(addr string) string {
	addr = strings.TrimSpace(addr)
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return strings.TrimSuffix(strings.TrimPrefix(addr, "["), "]")
}
