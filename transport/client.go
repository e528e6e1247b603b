package transport

import (
	"bufio"
	"net"
	"time"
)

// Client is a byte-stream as the connection handler sees it: a single synchronous read
// into a fixed buffer, and write-all-then-flush.
type Client interface {
	Read() ([]byte, error)
	Write([]byte) error
	Flush() error
	Remote() net.Addr
	Close() error
}

type client struct {
	conn    net.Conn
	buff    []byte
	writer  *bufio.Writer
	timeout time.Duration
}

// NewClient wraps the connection. The read buffer is used as is, so its length
// limits the size of a request. Zero timeout disables the read deadline.
func NewClient(conn net.Conn, timeout time.Duration, buff []byte, writeBuffSize int) Client {
	return &client{
		conn:    conn,
		buff:    buff,
		writer:  bufio.NewWriterSize(conn, writeBuffSize),
		timeout: timeout,
	}
}

// Read reads data into the internal buffer and returns a piece of it back. Timeouts are also
// handled automatically.
func (c *client) Read() ([]byte, error) {
	if c.timeout > 0 {
		if err := c.conn.SetReadDeadline(time.Now().Add(c.timeout)); err != nil {
			return nil, err
		}
	}

	n, err := c.conn.Read(c.buff)
	return c.buff[:n], err
}

// Write buffers the data. It reaches the connection no later than on Flush.
func (c *client) Write(b []byte) error {
	_, err := c.writer.Write(b)
	return err
}

func (c *client) Flush() error {
	return c.writer.Flush()
}

// Remote returns the remote address of the connection.
func (c *client) Remote() net.Addr {
	return c.conn.RemoteAddr()
}

// Close closes the connection.
func (c *client) Close() error {
	return c.conn.Close()
}
