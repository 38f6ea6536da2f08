// SPDX-License-Identifier: GPL-3.0-or-later

package rawprint

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
)

// ConnectionError indicates that the TCP connection to the printer
// could not be opened. The [*Printer] remains [Disconnected].
type ConnectionError struct {
	// Address is the host:port we attempted to dial.
	Address string

	// Err is the underlying dial error.
	Err error
}

// Error implements error.
func (e *ConnectionError) Error() string {
	return fmt.Sprintf("rawprint: cannot connect to %s: %s", e.Address, e.Err.Error())
}

// Unwrap returns the underlying dial error.
func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the dial failed because of a timeout.
func (e *ConnectionError) Timeout() bool {
	return isTimeout(e.Err)
}

// NotConnectedError indicates that an operation requiring a connection
// was attempted while the [*Printer] was [Disconnected].
//
// No socket operation is performed when this error is returned.
type NotConnectedError struct {
	// Op is the operation that was attempted (e.g., "send").
	Op string
}

// Error implements error.
func (e *NotConnectedError) Error() string {
	return fmt.Sprintf("rawprint: %s: printer not connected", e.Op)
}

// SendError indicates that writing to the printer failed. The
// [*Printer] has been forced to [Disconnected] and must be reconnected.
type SendError struct {
	// Err is the underlying transport error.
	Err error
}

// Error implements error.
func (e *SendError) Error() string {
	return "rawprint: send failed: " + e.Err.Error()
}

// Unwrap returns the underlying transport error.
func (e *SendError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the write failed because of a timeout.
func (e *SendError) Timeout() bool {
	return isTimeout(e.Err)
}

// ReceiveError indicates that reading from the printer failed. The
// [*Printer] has been forced to [Disconnected] and must be reconnected.
type ReceiveError struct {
	// Err is the underlying transport error.
	Err error
}

// Error implements error.
func (e *ReceiveError) Error() string {
	return "rawprint: receive failed: " + e.Err.Error()
}

// Unwrap returns the underlying transport error.
func (e *ReceiveError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the read failed because of a timeout.
func (e *ReceiveError) Timeout() bool {
	return isTimeout(e.Err)
}

// FontRangeError indicates a font size outside [MinFontSize, MaxFontSize].
//
// This is a caller error: no bytes are produced and no I/O is attempted.
type FontRangeError struct {
	Size int
}

// Error implements error.
func (e *FontRangeError) Error() string {
	return fmt.Sprintf("rawprint: font size %d outside [%d, %d]", e.Size, MinFontSize, MaxFontSize)
}

// EncodingError indicates that text could not be encoded even
// when substituting unsupported characters.
type EncodingError struct {
	Err error
}

// Error implements error.
func (e *EncodingError) Error() string {
	return "rawprint: cannot encode text: " + e.Err.Error()
}

// Unwrap returns the underlying encoder error.
func (e *EncodingError) Unwrap() error {
	return e.Err
}

// errNoEncoding is wrapped by [*EncodingError] when no codeset is configured.
var errNoEncoding = errors.New("no text encoding configured")

func isTimeout(err error) bool {
	if errors.Is(err, os.ErrDeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
