package services

import (
	"fmt"
	"net"
	"strconv"
)

// FindAvailableAddr returns addr if it can be bound, otherwise the first
// bindable address on the same host among the next attempts ports.
func FindAvailableAddr(addr string, attempts int) (string, error) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return "", fmt.Errorf("parsing address %q: %w", addr, err)
	}
	start, err := strconv.Atoi(portStr)
	if err != nil {
		return "", fmt.Errorf("parsing port %q: %w", portStr, err)
	}

	for port := start; port <= start+attempts && port <= 65535; port++ {
		candidate := net.JoinHostPort(host, strconv.Itoa(port))
		listener, err := net.Listen("tcp", candidate)
		if err == nil {
			listener.Close()
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no available port in range %d-%d", start, start+attempts)
}
