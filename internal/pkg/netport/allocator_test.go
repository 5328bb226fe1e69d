//go:build unit

package netport_test

import (
	"net"
	"os"
	"strconv"
	"syscall"
	"testing"

	"storefront-api/internal/pkg/errs"
	"storefront-api/internal/pkg/netport"
	"storefront-api/tests/common/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeListener struct {
	addr   string
	closed bool
}

func (l *fakeListener) Accept() (net.Conn, error) { return nil, net.ErrClosed }
func (l *fakeListener) Close() error              { l.closed = true; return nil }
func (l *fakeListener) Addr() net.Addr            { return &net.TCPAddr{} }

// fakeNet answers listen calls from a table of per-port errors and records every attempt.
type fakeNet struct {
	errs      map[int]error
	attempted []int
	opened    []*fakeListener
}

func (f *fakeNet) listen(_, address string) (net.Listener, error) {
	_, p, err := net.SplitHostPort(address)
	if err != nil {
		return nil, err
	}
	port, _ := strconv.Atoi(p)
	f.attempted = append(f.attempted, port)
	if e, ok := f.errs[port]; ok {
		return nil, e
	}
	ln := &fakeListener{addr: address}
	f.opened = append(f.opened, ln)
	return ln, nil
}

func inUse() error {
	return &net.OpError{Op: "listen", Net: "tcp", Err: os.NewSyscallError("bind", syscall.EADDRINUSE)}
}

func denied() error {
	return &net.OpError{Op: "listen", Net: "tcp", Err: os.NewSyscallError("bind", syscall.EACCES)}
}

func TestFindAvailablePort(t *testing.T) {
	t.Run("free start port is returned and released", func(t *testing.T) {
		fn := &fakeNet{}
		a := netport.NewAllocatorWithListener("127.0.0.1", fn.listen, testutil.DiscardLogger())

		port, err := a.FindAvailablePort(3002, 10)

		require.NoError(t, err)
		assert.Equal(t, 3002, port)
		require.Len(t, fn.opened, 1)
		assert.True(t, fn.opened[0].closed)
	})

	t.Run("skips ports that are in use", func(t *testing.T) {
		fn := &fakeNet{errs: map[int]error{3002: inUse(), 3003: inUse()}}
		a := netport.NewAllocatorWithListener("127.0.0.1", fn.listen, testutil.DiscardLogger())

		port, err := a.FindAvailablePort(3002, 10)

		require.NoError(t, err)
		assert.Equal(t, 3004, port)
		assert.Equal(t, []int{3002, 3003, 3004}, fn.attempted)
	})

	t.Run("exhaustion names the attempt count", func(t *testing.T) {
		busy := map[int]error{}
		for p := 4000; p < 4003; p++ {
			busy[p] = inUse()
		}
		fn := &fakeNet{errs: busy}
		a := netport.NewAllocatorWithListener("127.0.0.1", fn.listen, testutil.DiscardLogger())

		_, err := a.FindAvailablePort(4000, 3)

		require.Error(t, err)
		assert.True(t, errs.Is(err, netport.ErrPortExhausted))
		assert.Contains(t, err.Error(), "3 attempts")
		assert.Len(t, fn.attempted, 3)
	})

	t.Run("other bind errors stop the search", func(t *testing.T) {
		fn := &fakeNet{errs: map[int]error{80: denied()}}
		a := netport.NewAllocatorWithListener("127.0.0.1", fn.listen, testutil.DiscardLogger())

		_, err := a.FindAvailablePort(80, 10)

		require.Error(t, err)
		assert.False(t, errs.Is(err, netport.ErrPortExhausted))
		assert.ErrorIs(t, err, syscall.EACCES)
		assert.Equal(t, []int{80}, fn.attempted)
	})

	t.Run("real socket: occupied port is skipped", func(t *testing.T) {
		held, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		defer held.Close()
		occupied := held.Addr().(*net.TCPAddr).Port

		a := netport.NewAllocator("127.0.0.1", testutil.DiscardLogger())
		port, err := a.FindAvailablePort(occupied, 10)

		require.NoError(t, err)
		assert.Greater(t, port, occupied)

		// the probe was released, so the port can be bound again
		ln, err := net.Listen("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(port)))
		require.NoError(t, err)
		_ = ln.Close()
	})
}

func TestIsAddrInUse(t *testing.T) {
	assert.True(t, netport.IsAddrInUse(inUse()))
	assert.False(t, netport.IsAddrInUse(denied()))
	assert.False(t, netport.IsAddrInUse(nil))
}
