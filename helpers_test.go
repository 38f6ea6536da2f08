// SPDX-License-Identifier: GPL-3.0-or-later

package rawprint

import (
	"context"
	"log/slog"
	"net"
	"time"

	"github.com/bassosimone/netstub"
	"github.com/bassosimone/slogstub"
)

// newCapturingLogger returns a logger that captures all log records into the
// returned slice. The caller can inspect the slice after exercising the code
// under test to verify which events were emitted.
func newCapturingLogger() (*slog.Logger, *[]slog.Record) {
	var records []slog.Record
	handler := &slogstub.FuncHandler{
		EnabledFunc: func(ctx context.Context, level slog.Level) bool {
			return true
		},
		HandleFunc: func(ctx context.Context, record slog.Record) error {
			records = append(records, record)
			return nil
		},
	}
	return slog.New(handler), &records
}

// newMinimalConn returns a [*netstub.FuncConn] with only the address
// and deadline funcs set. This is the minimum needed for code that
// logs addresses and binds the context to the socket.
func newMinimalConn() *netstub.FuncConn {
	return &netstub.FuncConn{
		LocalAddrFunc:  func() net.Addr { return &net.TCPAddr{} },
		RemoteAddrFunc: func() net.Addr { return &net.TCPAddr{} },
		SetDeadlineFunc: func(time.Time) error {
			return nil
		},
	}
}

// printerStub is a fake printer transport recording what was
// written and replying with a primed chunk.
type printerStub struct {
	conn    *netstub.FuncConn
	dials   int
	closes  int
	reply   []byte
	writes  [][]byte
	readErr error

	// writeErrAt makes the Nth write (1-based) fail when positive.
	writeErrAt int
	writeErr   error
}

func newPrinterStub() *printerStub {
	stub := &printerStub{}
	conn := newMinimalConn()
	conn.WriteFunc = func(b []byte) (int, error) {
		if stub.writeErrAt > 0 && len(stub.writes)+1 == stub.writeErrAt {
			stub.writeErrAt = 0
			return 0, stub.writeErr
		}
		stub.writes = append(stub.writes, append([]byte{}, b...))
		return len(b), nil
	}
	conn.ReadFunc = func(b []byte) (int, error) {
		if stub.readErr != nil {
			return 0, stub.readErr
		}
		return copy(b, stub.reply), nil
	}
	conn.CloseFunc = func() error {
		stub.closes++
		return nil
	}
	stub.conn = conn
	return stub
}

// dialer returns a dialer handing out the stub connection.
func (s *printerStub) dialer() *netstub.FuncDialer {
	return &netstub.FuncDialer{
		DialContextFunc: func(ctx context.Context, network, address string) (net.Conn, error) {
			s.dials++
			return s.conn, nil
		},
	}
}

// written returns the concatenation of all writes.
func (s *printerStub) written() []byte {
	var out []byte
	for _, w := range s.writes {
		out = append(out, w...)
	}
	return out
}

// newStubPrinter returns a [Disconnected] printer wired to stub.
func newStubPrinter(stub *printerStub, logger SLogger) *Printer {
	cfg := NewConfig()
	cfg.Dialer = stub.dialer()
	return NewPrinter(cfg, "192.168.1.103", 9100, logger)
}
