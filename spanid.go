// SPDX-License-Identifier: GPL-3.0-or-later

package rawprint

import (
	"github.com/bassosimone/runtimex"
	"github.com/google/uuid"
)

// NewSpanID returns a UUIDv7 identifying a span.
//
// [*Printer.PrintJob] and [*Printer.QueryStatus] tag their log events with
// a fresh span ID so that all events belonging to one job can be correlated.
//
// This function panics if the system random number generator fails.
func NewSpanID() string {
	return runtimex.PanicOnError1(uuid.NewV7()).String()
}
