package dummy

import (
	"io"
	"net"

	"github.com/florence-web/florence/transport"
)

var _ transport.Client = new(Client)

// Client returns the data it was initialised with on the first read and io.EOF on every
// further one. It also tracks all the written data, so it suits most of the tests.
type Client struct {
	data    []byte
	readErr error
	read    bool
	closed  bool
	flushes int
	pending []byte
	written []byte
	remote  net.Addr
}

func NewMockClient(data []byte) *Client {
	return &Client{data: data}
}

// WithReadError makes the first read fail with err after returning the data, if any.
func (c *Client) WithReadError(err error) *Client {
	c.readErr = err
	return c
}

// WithRemote sets the address returned by Remote.
func (c *Client) WithRemote(addr net.Addr) *Client {
	c.remote = addr
	return c
}

func (c *Client) Read() ([]byte, error) {
	if c.closed || c.read {
		return nil, io.EOF
	}

	c.read = true
	return c.data, c.readErr
}

// Write buffers the data until Flush, mimicking the real client.
func (c *Client) Write(p []byte) error {
	if c.closed {
		return net.ErrClosed
	}

	c.pending = append(c.pending, p...)
	return nil
}

func (c *Client) Flush() error {
	if c.closed {
		return net.ErrClosed
	}

	c.written = append(c.written, c.pending...)
	c.pending = c.pending[:0]
	c.flushes++
	return nil
}

func (c *Client) Remote() net.Addr {
	return c.remote
}

func (c *Client) Close() error {
	c.closed = true
	return nil
}

// Written returns everything that was flushed.
func (c *Client) Written() string {
	return string(c.written)
}

// Flushes returns how many times Flush was called.
func (c *Client) Flushes() int {
	return c.flushes
}

func (c *Client) Closed() bool {
	return c.closed
}

// FailingClient fails every write. Used to check that a broken connection doesn't
// break anything else.
type FailingClient struct {
	*Client
	err error
}

func NewFailingClient(data []byte, err error) *FailingClient {
	return &FailingClient{
		Client: NewMockClient(data),
		err:    err,
	}
}

func (f *FailingClient) Write([]byte) error {
	return f.err
}

func (f *FailingClient) Flush() error {
	return f.err
}
