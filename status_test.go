// SPDX-License-Identifier: GPL-3.0-or-later

package rawprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeStatus(t *testing.T) {
	tests := []struct {
		// name describes what this test case verifies.
		name string

		// reply is the raw reply.
		reply []byte

		// want is the decoded text.
		want string
	}{
		{
			name:  "empty",
			reply: nil,
			want:  "",
		},

		{
			name:  "ascii is preserved",
			reply: []byte("@PJL INFO STATUS\r\nCODE=10001\r\nDISPLAY=\"Ready\"\r\n"),
			want:  "@PJL INFO STATUS\r\nCODE=10001\r\nDISPLAY=\"Ready\"\r\n",
		},

		{
			name:  "non-ascii bytes are substituted",
			reply: []byte{'O', 'K', 0x80, 0xff, '\f'},
			want:  "OK��\f",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeStatus(tt.reply))
		})
	}
}
