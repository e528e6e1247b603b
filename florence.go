package florence

import (
	"errors"
	"fmt"
	"net"
	"os"

	"github.com/florence-web/florence/config"
	"github.com/florence-web/florence/http/status"
	"github.com/florence-web/florence/internal/server/http"
	"github.com/florence-web/florence/router"
	"github.com/florence-web/florence/router/inbuilt"
	"github.com/florence-web/florence/transport"
	"github.com/rs/zerolog"
)

// App binds a router to an address and serves connections one at a time.
type App struct {
	addr      string
	cfg       *config.Config
	logger    *zerolog.Logger
	hooks     hooks
	transport *transport.TCP
}

// New returns a new App instance. The address is in the form net.Listen accepts,
// e.g. ":8080" or "127.0.0.1:0".
func New(addr string) *App {
	return &App{
		addr:      addr,
		cfg:       config.Default(),
		transport: transport.NewTCP(),
	}
}

// Tune replaces the default config.
func (a *App) Tune(cfg *config.Config) *App {
	a.cfg = cfg
	return a
}

// Logger replaces the default logger, which writes human-readable lines to stderr
// with the level from the config.
func (a *App) Logger(logger zerolog.Logger) *App {
	a.logger = &logger
	return a
}

// NotifyOnStart calls the callback right after the socket is bound, so the server is
// able to accept connections by the moment it's called.
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback after the server stopped accepting connections.
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Addr returns the address the app is bound to, or nil if it isn't serving yet.
func (a *App) Addr() net.Addr {
	return a.transport.Addr()
}

// Serve starts the web-application and blocks until it's stopped. If nil is passed instead
// of a router, empty inbuilt will be used. After Stop, nil is returned.
func (a *App) Serve(r router.Router) error {
	if r == nil {
		r = inbuilt.New()
	}

	logger, err := a.getLogger()
	if err != nil {
		return err
	}

	if err = r.OnStart(); err != nil {
		return err
	}

	if err = a.transport.Bind(a.addr); err != nil {
		return fmt.Errorf("florence: bind %s: %w", a.addr, err)
	}

	logger.Info().Stringer("addr", a.Addr()).Msg("listening")
	callIfNotNil(a.hooks.OnStart)

	server := http.NewServer(r, logger)
	buff := make([]byte, a.cfg.NET.ReadBufferSize)
	err = a.transport.Listen(a.cfg.NET, func(conn net.Conn) {
		// connections are served sequentially, so a single read buffer suffices
		client := transport.NewClient(
			conn, a.cfg.NET.ReadTimeout.Std(), buff, a.cfg.NET.WriteBufferSize,
		)
		server.Serve(client)
	})

	callIfNotNil(a.hooks.OnStop)
	if errors.Is(err, status.ErrShutdown) {
		logger.Info().Msg("stopped")
		return nil
	}

	return err
}

// Stop stops accepting new connections. The connection being served at the moment is
// processed till the end.
//
// NOTE: the call isn't blocking. So by that, after the method returned, the server
// may still be working
func (a *App) Stop() {
	a.transport.Stop()
}

func (a *App) getLogger() (zerolog.Logger, error) {
	if a.logger != nil {
		return *a.logger, nil
	}

	level, err := zerolog.ParseLevel(a.cfg.Log.Level)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("florence: bad log level: %w", err)
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger(), nil
}

type hooks struct {
	OnStart, OnStop func()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
