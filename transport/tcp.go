package transport

import (
	"errors"
	"net"
	"sync"
	"sync/atomic"

	"github.com/florence-web/florence/config"
	"github.com/florence-web/florence/http/status"
)

var _ Transport = new(TCP)

// TCP accepts connections one at a time: the next connection isn't accepted until the
// callback for the current one returns. So callbacks never run concurrently.
type TCP struct {
	mu   sync.Mutex
	l    net.Listener
	stop *atomic.Bool
}

func NewTCP() *TCP {
	return &TCP{
		stop: new(atomic.Bool),
	}
}

func (t *TCP) Bind(addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	t.mu.Lock()
	t.l = l
	t.mu.Unlock()

	return nil
}

// Addr returns the address the transport is bound to, or nil if it isn't bound yet.
func (t *TCP) Addr() net.Addr {
	l := t.listener()
	if l == nil {
		return nil
	}

	return l.Addr()
}

// Listen runs the accept loop. The connection is closed after the callback returns.
// After Stop was called, status.ErrShutdown is returned.
func (t *TCP) Listen(_ config.NET, cb func(conn net.Conn)) error {
	if t.stop.Load() {
		t.Close()
		return status.ErrShutdown
	}

	l := t.listener()
	for {
		conn, err := l.Accept()
		if err != nil {
			if t.stop.Load() {
				return status.ErrShutdown
			}

			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				continue
			}

			return err
		}

		cb(conn)
		_ = conn.Close()
	}
}

// Stop interrupts the accept loop. A connection which is currently being served is
// processed till the end.
func (t *TCP) Stop() {
	t.stop.Store(true)
	t.Close()
}

func (t *TCP) Close() {
	if l := t.listener(); l != nil {
		_ = l.Close()
	}
}

func (t *TCP) listener() net.Listener {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.l
}
