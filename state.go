// SPDX-License-Identifier: GPL-3.0-or-later

package rawprint

// State is the connection state of a [*Printer].
type State int

const (
	// Disconnected means there is no socket. This is the initial state.
	Disconnected State = iota

	// Connected means the [*Printer] owns an open socket.
	Connected
)

// String implements [fmt.Stringer].
func (s State) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connected:
		return "connected"
	default:
		return "unknown"
	}
}
