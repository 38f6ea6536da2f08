// SPDX-License-Identifier: GPL-3.0-or-later

package rawprint

import (
	"context"
	"net"
	"time"
)

// watchContext binds the lifetime of a single I/O operation on conn to ctx.
//
// The context deadline, if any, becomes the socket deadline. When ctx is
// done, a deadline in the past is set so that a blocked Read or Write fails
// with [os.ErrDeadlineExceeded]. Unlike closing the connection, this leaves
// the decision of what to do with the socket to the caller.
//
// The returned function unregisters the watcher and clears the deadline.
// It must be called once the I/O operation has returned.
func watchContext(ctx context.Context, conn net.Conn) (stop func()) {
	if ctx.Done() == nil {
		return func() {}
	}
	deadline, _ := ctx.Deadline()
	_ = conn.SetDeadline(deadline)
	unregister := context.AfterFunc(ctx, func() {
		_ = conn.SetDeadline(time.Unix(1, 0))
	})
	return func() {
		unregister()
		_ = conn.SetDeadline(time.Time{})
	}
}
