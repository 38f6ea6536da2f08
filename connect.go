//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/bassosimone/nop/blob/main/connect.go
//

package rawprint

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"time"

	"github.com/bassosimone/safeconn"
)

// Dialer abstracts the [*net.Dialer] behavior.
//
// By making [*Printer] depend on an abstract implementation we
// allow for unit testing and for using alternative dialers.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// Connect opens the TCP connection to the printer and moves to [Connected].
//
// Calling Connect while already [Connected] returns nil and keeps the
// existing socket. On failure the printer stays [Disconnected] and the
// error is a [*ConnectionError].
//
// The ctx bounds the dial. Use [context.WithTimeout] to limit how long
// we wait for an unreachable printer.
func (p *Printer) Connect(ctx context.Context) error {
	if p.state == Connected {
		return nil
	}

	address := p.Address()
	t0 := p.TimeNow()
	deadline, _ := ctx.Deadline()
	p.logConnectStart(address, t0, deadline)
	conn, err := p.Dialer.DialContext(ctx, "tcp", address)
	if err == nil && conn == nil {
		err = errNilConn
	}
	p.logConnectDone(address, t0, deadline, conn, err)

	if err != nil {
		return &ConnectionError{Address: address, Err: err}
	}
	p.conn, p.state = conn, Connected
	return nil
}

// errNilConn is wrapped by [*ConnectionError] when a [Dialer] returns
// neither a connection nor an error.
var errNilConn = errors.New("dialer returned no connection")

func (p *Printer) logConnectStart(address string, t0 time.Time, deadline time.Time) {
	p.Logger.Info(
		"connectStart",
		slog.Time("deadline", deadline),
		slog.String("protocol", "tcp"),
		slog.String("remoteAddr", address),
		slog.Time("t", t0),
	)
}

func (p *Printer) logConnectDone(
	address string, t0 time.Time, deadline time.Time, conn net.Conn, err error) {
	p.Logger.Info(
		"connectDone",
		slog.Time("deadline", deadline),
		slog.Any("err", err),
		slog.String("errClass", p.ErrClassifier.Classify(err)),
		slog.String("localAddr", safeconn.LocalAddr(conn)),
		slog.String("protocol", "tcp"),
		slog.String("remoteAddr", address),
		slog.Time("t0", t0),
		slog.Time("t", p.TimeNow()),
	)
}
