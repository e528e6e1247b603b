package transport

import (
	"net"

	"github.com/florence-web/florence/config"
)

type Transport interface {
	Bind(addr string) error
	Addr() net.Addr
	Listen(cfg config.NET, cb func(conn net.Conn)) error
	Stop()
	Close()
}
