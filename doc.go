// SPDX-License-Identifier: GPL-3.0-or-later

// Package rawprint drives a network printer through its raw TCP port.
//
// # Protocol
//
// Raw (Jetdirect-style) printing delivers the printer's native control
// language directly over a TCP connection. There is no framing, no length
// prefix, and no acknowledgement for written commands. This package speaks
// a small subset of PJL job directives and PCL escape sequences:
//
//   - [InitializeJob]: job reset, PJL job name, switch to text mode
//   - [SetFont]: height, width (half the height), and bold on/off
//   - [EncodeText]: text in the configured codeset, optionally followed by CRLF
//   - [FeedPaper]: blank lines
//   - [EndJob]: job reset
//   - [StatusQuery]: PJL status request, whose reply is decoded with [DecodeStatus]
//
// These encoders are pure functions performing no I/O.
//
// # Connection Lifecycle
//
// A [*Printer] owns at most one socket and is either [Disconnected] or
// [Connected]. [*Printer.Connect] and [*Printer.Close] are idempotent.
// [*Printer.Send] and [*Printer.Receive] fail fast with [*NotConnectedError]
// while disconnected. Any transport failure discards the socket and moves the
// printer back to [Disconnected], so the caller must reconnect explicitly.
// Nothing is retried.
//
// The caller that connects is responsible for closing:
//
//	printer := rawprint.NewPrinter(rawprint.NewConfig(), "192.168.1.103", 9100, logger)
//	if err := printer.Connect(ctx); err != nil {
//		return err
//	}
//	defer printer.Close()
//	return printer.PrintJob(ctx, "Hello", 12, false)
//
// # Errors
//
// Failures are typed so that callers can tell caller mistakes
// ([*FontRangeError], [*EncodingError], [*NotConnectedError]) from environment
// failures ([*ConnectionError], [*SendError], [*ReceiveError]) using
// [errors.As]. Environment failures report timeouts through a Timeout method.
//
// # Timeouts
//
// This package is context-transparent. Use [context.WithTimeout] to bound
// each operation: the deadline bounds the dial in [*Printer.Connect] and
// becomes the socket deadline in [*Printer.Send] and [*Printer.Receive].
// Cancelling the context interrupts an in-flight read or write.
//
// # Observability
//
// All operations support structured logging via [SLogger] (compatible with
// [log/slog]). By default, logging is disabled. Lifecycle events (connect,
// close, print job, status query) use [slog.LevelInfo]; per-I/O events use
// [slog.LevelDebug]. Logging never replaces returning an error.
package rawprint
