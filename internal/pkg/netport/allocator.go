// Package netport finds a free TCP port and binds the HTTP listener, moving to the next
// port when the preferred one is already taken.
package netport

import (
	"errors"
	"log/slog"
	"net"
	"strconv"
	"syscall"

	"storefront-api/internal/pkg/errs"
)

const DefaultMaxAttempts = 10

var ErrPortExhausted = errors.New("no free port found")

// ListenFunc matches net.Listen; tests swap it to simulate occupied ports.
type ListenFunc func(network, address string) (net.Listener, error)

type Allocator struct {
	host   string
	listen ListenFunc
	logger *slog.Logger
}

func NewAllocator(host string, logger *slog.Logger) *Allocator {
	return &Allocator{host: host, listen: net.Listen, logger: logger}
}

func NewAllocatorWithListener(host string, listen ListenFunc, logger *slog.Logger) *Allocator {
	return &Allocator{host: host, listen: listen, logger: logger}
}

// FindAvailablePort probes startPort, startPort+1, ... and returns the first port it can bind.
// The probe listener is closed before returning. Only address-in-use failures move on to the
// next port; any other bind error is returned as is.
func (a *Allocator) FindAvailablePort(startPort, maxAttempts int) (int, error) {
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}

	port := startPort
	for attempts := 0; attempts < maxAttempts; attempts++ {
		ln, err := a.listen("tcp", a.address(port))
		if err == nil {
			if cerr := ln.Close(); cerr != nil {
				a.logger.Warn("failed to release probe listener", "port", port, "error", cerr.Error())
			}
			return port, nil
		}
		if !IsAddrInUse(err) {
			return 0, errs.Wrapf(err, "probe port %d", port)
		}
		a.logger.Debug("port in use", "port", port, "attempt", attempts+1)
		port++
	}

	return 0, errs.Mark(errs.Newf("no free port after %d attempts starting at %d", maxAttempts, startPort), ErrPortExhausted)
}

func (a *Allocator) address(port int) string {
	return net.JoinHostPort(a.host, strconv.Itoa(port))
}

func IsAddrInUse(err error) bool {
	return errors.Is(err, syscall.EADDRINUSE)
}
