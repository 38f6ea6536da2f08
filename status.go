// SPDX-License-Identifier: GPL-3.0-or-later

package rawprint

import (
	"strings"
	"unicode/utf8"
)

// DecodeStatus decodes a status reply chunk as ASCII.
//
// Bytes outside the ASCII range are replaced with [utf8.RuneError]
// instead of causing a failure, so the result always has one rune
// per input byte.
func DecodeStatus(reply []byte) string {
	var sb strings.Builder
	sb.Grow(len(reply))
	for _, b := range reply {
		if b < utf8.RuneSelf {
			sb.WriteByte(b)
			continue
		}
		sb.WriteRune(utf8.RuneError)
	}
	return sb.String()
}
