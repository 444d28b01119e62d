// Package transport provides the deferred-connect byte transport the
// negotiation engine sends its hello vectors over.
//
// A Conn is created unconnected. The TCP connection is established on the
// first write (or by an explicit ConnectIfNeeded), so the first payload
// rides immediately behind the connect. Vectored writes hand multiple
// buffers to the kernel in a single call.
package transport

import (
	"context"
	"net"
	"sync"
	"time"

	qerrors "github.com/sara-star-quant/tlsalg/internal/errors"
	"github.com/sara-star-quant/tlsalg/pkg/metrics"
)

// Config holds configuration for the transport layer.
type Config struct {
	// ConnectTimeout bounds the deferred connect. 0 means no timeout.
	ConnectTimeout time.Duration

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		ConnectTimeout: 10 * time.Second,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
	}
}

// Validate checks the configuration for invalid values.
func (c Config) Validate() error {
	if c.ConnectTimeout < 0 || c.ReadTimeout < 0 || c.WriteTimeout < 0 {
		return qerrors.NewNegotiationError("transport config", qerrors.ErrInvalidWireFormat)
	}
	return nil
}

// Conn is a TCP connection whose connect is deferred until the first
// write. Safe for one reader and one writer; writes are serialized.
type Conn struct {
	network string
	address string
	config  Config
	dialer  *net.Dialer

	mu   sync.Mutex
	conn net.Conn

	closedMu sync.RWMutex
	closed   bool
}

// New creates an unconnected transport for the given address. No network
// traffic happens until the first write or ConnectIfNeeded.
func New(network, address string, config Config) (*Conn, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Conn{
		network: network,
		address: address,
		config:  config,
		dialer:  &net.Dialer{Timeout: config.ConnectTimeout},
	}, nil
}

// ConnectIfNeeded establishes the connection if it is not yet up. It is a
// no-op on a connected transport.
func (c *Conn) ConnectIfNeeded(ctx context.Context) error {
	if err := c.checkClosed(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connectLocked(ctx)
}

func (c *Conn) connectLocked(ctx context.Context) error {
	if c.conn != nil {
		return nil
	}

	ctx, end := metrics.StartSpan(ctx, metrics.SpanTransportConnect,
		metrics.WithSpanKind(metrics.SpanKindClient),
		metrics.WithAttributes(map[string]interface{}{"address": c.address}))

	conn, err := c.dialer.DialContext(ctx, c.network, c.address)
	end(err)
	if err != nil {
		return qerrors.NewNegotiationError("connect", err)
	}

	metrics.Debug("transport connected", metrics.Fields{"address": c.address})
	c.conn = conn
	return nil
}

// Write sends data, connecting first if needed.
func (c *Conn) Write(data []byte) (int, error) {
	if err := c.checkClosed(); err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.connectLocked(context.Background()); err != nil {
		return 0, err
	}
	if c.config.WriteTimeout > 0 {
		_ = c.conn.SetWriteDeadline(time.Now().Add(c.config.WriteTimeout))
	}
	return c.conn.Write(data)
}

// WriteVectored sends multiple buffers in one call, connecting first if
// needed. On TCP the buffers reach the kernel as a single writev.
func (c *Conn) WriteVectored(buffers net.Buffers) (int64, error) {
	if err := c.checkClosed(); err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.connectLocked(context.Background()); err != nil {
		return 0, err
	}
	if c.config.WriteTimeout > 0 {
		_ = c.conn.SetWriteDeadline(time.Now().Add(c.config.WriteTimeout))
	}
	return buffers.WriteTo(c.conn)
}

// Read reads from the connection. Reading before the first write fails
// with ErrNotConnected; the deferred connect is driven by writes only.
func (c *Conn) Read(p []byte) (int, error) {
	if err := c.checkClosed(); err != nil {
		return 0, err
	}

	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()

	if conn == nil {
		return 0, qerrors.ErrNotConnected
	}
	if c.config.ReadTimeout > 0 {
		_ = conn.SetReadDeadline(time.Now().Add(c.config.ReadTimeout))
	}
	return conn.Read(p)
}

// Connected reports whether the underlying connection is established.
func (c *Conn) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

// LocalAddr returns the local network address, or nil before connect.
func (c *Conn) LocalAddr() net.Addr {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil
	}
	return c.conn.LocalAddr()
}

// RemoteAddr returns the remote network address, or nil before connect.
func (c *Conn) RemoteAddr() net.Addr {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil
	}
	return c.conn.RemoteAddr()
}

func (c *Conn) checkClosed() error {
	c.closedMu.RLock()
	defer c.closedMu.RUnlock()
	if c.closed {
		return qerrors.ErrTransportClosed
	}
	return nil
}

// Close closes the transport. Closing an unconnected transport succeeds.
func (c *Conn) Close() error {
	c.closedMu.Lock()
	if c.closed {
		c.closedMu.Unlock()
		return nil
	}
	c.closed = true
	c.closedMu.Unlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}
