package utils

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultPingTimeout bounds a single health check dial of the local server.
const DefaultPingTimeout = 1500 * time.Millisecond

// PingService checks that something accepts TCP connections at target.
// target is a URL ("http://db:5432"), a host:port pair, or a bare port, which means the local host.
func PingService(target string, timeout time.Duration) error {
	address, err := dialAddress(target)
	if err != nil {
		return err
	}

	conn, err := net.DialTimeout("tcp", address, timeout)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", address, err)
	}
	return conn.Close()
}

// dialAddress resolves target to host:port.
func dialAddress(target string) (string, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return "", fmt.Errorf("empty ping target")
	}

	if _, err := strconv.ParseUint(target, 10, 16); err == nil {
		return net.JoinHostPort("127.0.0.1", target), nil
	}

	if !strings.Contains(target, "://") {
		host, port, err := net.SplitHostPort(target)
		if err != nil {
			return "", fmt.Errorf("invalid address %q: %w", target, err)
		}
		if host == "" {
			host = "127.0.0.1"
		}
		return net.JoinHostPort(host, port), nil
	}

	parsedURL, err := url.Parse(target)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}
	if parsedURL.Hostname() == "" {
		return "", fmt.Errorf("invalid URL %q: missing host", target)
	}

	port := parsedURL.Port()
	if port == "" {
		port = "80"
		if parsedURL.Scheme == "https" {
			port = "443"
		}
	}
	return net.JoinHostPort(parsedURL.Hostname(), port), nil
}
