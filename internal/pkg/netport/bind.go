package netport

import (
	"net"

	"storefront-api/internal/pkg/errs"
)

// Binding is a listener that is already accepting on Port.
type Binding struct {
	Listener net.Listener
	Port     int
	// Reassigned is true when Port differs from the requested port.
	Reassigned bool
}

// Bind listens on the preferred port. On a bind conflict it asks the allocator for the next
// free port and tries again there. The loop is bounded by maxAttempts reassignments so a port
// that keeps being stolen between probe and bind cannot spin forever.
func (a *Allocator) Bind(preferred, maxAttempts int) (*Binding, error) {
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}

	port := preferred
	for reassignments := 0; ; reassignments++ {
		ln, err := a.listen("tcp", a.address(port))
		if err == nil {
			return &Binding{Listener: ln, Port: port, Reassigned: port != preferred}, nil
		}
		if !IsAddrInUse(err) {
			return nil, errs.Wrapf(err, "listen on port %d", port)
		}
		if reassignments >= maxAttempts {
			return nil, errs.Mark(errs.Newf("port %d still in use after %d reassignments", port, reassignments), ErrPortExhausted)
		}

		a.logger.Warn("port in use, searching for a free port", "port", port)
		next, ferr := a.FindAvailablePort(port+1, maxAttempts)
		if ferr != nil {
			return nil, ferr
		}
		a.logger.Info("free port found", "port", next)
		port = next
	}
}
