// SPDX-License-Identifier: GPL-3.0-or-later

package rawprint

import (
	"context"
	"io"
	"log/slog"
	"net"
	"strconv"
	"time"

	"github.com/bassosimone/safeconn"
	"golang.org/x/text/encoding"
)

// MaxReceiveSize is the largest chunk [*Printer.Receive] reads at once.
const MaxReceiveSize = 64 << 10

// Printer is a connection to a printer's raw TCP port.
//
// A Printer is either [Disconnected] or [Connected]. It owns its socket
// while connected. Any transport failure during [*Printer.Send] or
// [*Printer.Receive] discards the socket and moves back to [Disconnected];
// the caller must call [*Printer.Connect] again. No operation reconnects
// or retries implicitly.
//
// A Printer is not safe for concurrent use: at most one operation may be
// in flight at any time.
//
// All exported fields are safe to modify after construction but before
// first use.
type Printer struct {
	// Dialer is the [Dialer] to use.
	//
	// Set by [NewPrinter] from [Config.Dialer].
	Dialer Dialer

	// Encoding is the codeset for text blocks.
	//
	// Set by [NewPrinter] from [Config.Encoding].
	Encoding encoding.Encoding

	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewPrinter] from [Config.ErrClassifier].
	ErrClassifier ErrClassifier

	// JobName is the label used by [*Printer.PrintJob].
	//
	// Set by [NewPrinter] from [Config.JobName].
	JobName string

	// Logger is the [SLogger] to use.
	//
	// Set by [NewPrinter] to the user-provided logger.
	Logger SLogger

	// StatusReplySize is the read buffer size used by [*Printer.QueryStatus].
	//
	// Set by [NewPrinter] from [Config.StatusReplySize].
	StatusReplySize int

	// TimeNow is the function to get the current time.
	//
	// Set by [NewPrinter] from [Config.TimeNow].
	TimeNow func() time.Time

	host  string
	port  int
	conn  net.Conn // non-nil iff state == Connected
	state State
}

// NewPrinter returns a new [Disconnected] [*Printer] for host and port.
//
// The cfg argument contains the common configuration.
//
// The logger argument is the [SLogger] to use for structured logging.
func NewPrinter(cfg *Config, host string, port int, logger SLogger) *Printer {
	return &Printer{
		Dialer:          cfg.Dialer,
		Encoding:        cfg.Encoding,
		ErrClassifier:   cfg.ErrClassifier,
		JobName:         cfg.JobName,
		Logger:          logger,
		StatusReplySize: cfg.StatusReplySize,
		TimeNow:         cfg.TimeNow,
		host:            host,
		port:            port,
		state:           Disconnected,
	}
}

// Address returns the host:port the printer is reached at.
func (p *Printer) Address() string {
	return net.JoinHostPort(p.host, strconv.Itoa(p.port))
}

// State returns the current connection state.
func (p *Printer) State() State {
	return p.state
}

// Send writes data to the printer.
//
// Send fails with [*NotConnectedError] while [Disconnected], without touching
// any socket. A transport failure (including the ctx deadline expiring)
// closes the socket, moves to [Disconnected], and fails with [*SendError].
//
// A nil error only means the bytes were written: the protocol has
// no acknowledgement.
func (p *Printer) Send(ctx context.Context, data []byte) error {
	if p.state != Connected {
		return &NotConnectedError{Op: "send"}
	}
	conn := p.conn

	t0 := p.TimeNow()
	p.logIOStart("sendStart", conn, len(data), t0)

	stop := watchContext(ctx, conn)
	count, err := conn.Write(data)
	stop()
	if err == nil && count < len(data) {
		err = io.ErrShortWrite
	}

	p.logIODone("sendDone", conn, count, t0, err)

	if err != nil {
		p.abort()
		return &SendError{Err: err}
	}
	return nil
}

// Receive reads a single chunk of at most maxBytes from the printer and
// decodes it using [DecodeStatus]. When maxBytes is not positive the
// [Printer.StatusReplySize] is used instead. Sizes above [MaxReceiveSize]
// are clamped to it.
//
// The protocol has no framing: the result is whatever arrived in one read.
//
// Receive fails with [*NotConnectedError] while [Disconnected]. A transport
// failure, including the peer closing the connection, closes the socket,
// moves to [Disconnected], and fails with [*ReceiveError]. Bytes returned
// together with an error are discarded.
func (p *Printer) Receive(ctx context.Context, maxBytes int) (string, error) {
	if p.state != Connected {
		return "", &NotConnectedError{Op: "receive"}
	}
	conn := p.conn
	if maxBytes <= 0 {
		maxBytes = p.StatusReplySize
	}
	if maxBytes <= 0 {
		maxBytes = DefaultStatusReplySize
	}
	maxBytes = min(maxBytes, MaxReceiveSize)
	buf := make([]byte, maxBytes)

	t0 := p.TimeNow()
	p.logIOStart("receiveStart", conn, len(buf), t0)

	stop := watchContext(ctx, conn)
	count, err := conn.Read(buf)
	stop()

	p.logIODone("receiveDone", conn, count, t0, err)

	if err != nil {
		p.abort()
		return "", &ReceiveError{Err: err}
	}
	return DecodeStatus(buf[:count]), nil
}

// Close releases the socket, if any, and moves to [Disconnected].
//
// Close is idempotent: closing a [Disconnected] printer is a no-op that
// returns nil. Otherwise it returns the error from closing the socket,
// but the printer is [Disconnected] regardless.
func (p *Printer) Close() error {
	if p.state != Connected {
		return nil
	}
	return p.closeConn()
}

// abort discards the socket after a transport failure.
func (p *Printer) abort() {
	_ = p.closeConn()
}

func (p *Printer) closeConn() error {
	conn := p.conn
	p.conn, p.state = nil, Disconnected

	t0 := p.TimeNow()
	p.Logger.Info(
		"closeStart",
		slog.String("localAddr", safeconn.LocalAddr(conn)),
		slog.String("protocol", safeconn.Network(conn)),
		slog.String("remoteAddr", safeconn.RemoteAddr(conn)),
		slog.Time("t", t0),
	)

	err := conn.Close()

	p.Logger.Info(
		"closeDone",
		slog.Any("err", err),
		slog.String("errClass", p.ErrClassifier.Classify(err)),
		slog.String("localAddr", safeconn.LocalAddr(conn)),
		slog.String("protocol", safeconn.Network(conn)),
		slog.String("remoteAddr", safeconn.RemoteAddr(conn)),
		slog.Time("t0", t0),
		slog.Time("t", p.TimeNow()),
	)
	return err
}

func (p *Printer) logIOStart(msg string, conn net.Conn, size int, t0 time.Time) {
	p.Logger.Debug(
		msg,
		slog.Int("ioBufferSize", size),
		slog.String("localAddr", safeconn.LocalAddr(conn)),
		slog.String("protocol", safeconn.Network(conn)),
		slog.String("remoteAddr", safeconn.RemoteAddr(conn)),
		slog.Time("t", t0),
	)
}

func (p *Printer) logIODone(msg string, conn net.Conn, count int, t0 time.Time, err error) {
	p.Logger.Debug(
		msg,
		slog.Int("ioBytesCount", count),
		slog.Any("err", err),
		slog.String("errClass", p.ErrClassifier.Classify(err)),
		slog.String("localAddr", safeconn.LocalAddr(conn)),
		slog.String("protocol", safeconn.Network(conn)),
		slog.String("remoteAddr", safeconn.RemoteAddr(conn)),
		slog.Time("t0", t0),
		slog.Time("t", p.TimeNow()),
	)
}
