// SPDX-License-Identifier: GPL-3.0-or-later

package rawprint

import (
	"bytes"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

const (
	// MinFontSize is the smallest font size accepted by [SetFont].
	MinFontSize = 10

	// MaxFontSize is the largest font size accepted by [SetFont].
	MaxFontSize = 72
)

// SubstitutionMarker replaces characters [EncodeText] cannot encode.
const SubstitutionMarker = '?'

// DefaultJobName is the job label used when none is configured.
const DefaultJobName = "rawprint"

const (
	esc = "\x1b"

	crlf = "\r\n"

	// jobReset is the universal exit language sequence.
	jobReset = esc + "%-12345X"

	textMode = esc + "(E"

	boldOn  = esc + "&d1B"
	boldOff = esc + "&d0B"

	statusRequest = jobReset + "@PJL INFO STATUS" + crlf
)

var jobNameSanitizer = strings.NewReplacer(`"`, "", "\r", "", "\n", "")

// InitializeJob returns the bytes that must open every job: the job reset
// sequence, a PJL job directive carrying jobName, and the escape switching
// the printer into line-oriented text mode.
//
// Double quotes and line breaks are removed from jobName. An empty
// jobName is replaced with [DefaultJobName].
func InitializeJob(jobName string) []byte {
	jobName = jobNameSanitizer.Replace(jobName)
	if jobName == "" {
		jobName = DefaultJobName
	}
	var buf bytes.Buffer
	buf.WriteString(jobReset)
	buf.WriteString(`@PJL JOB NAME="`)
	buf.WriteString(jobName)
	buf.WriteString(`"`)
	buf.WriteString(crlf)
	buf.WriteString(textMode)
	return buf.Bytes()
}

// SetFont returns the height, width, and weight escapes for the given size.
//
// The width is half the height (integer division). Sizes outside
// [MinFontSize, MaxFontSize] fail with [*FontRangeError] and a nil slice.
func SetFont(size int, bold bool) ([]byte, error) {
	if size < MinFontSize || size > MaxFontSize {
		return nil, &FontRangeError{Size: size}
	}
	var buf bytes.Buffer
	buf.WriteString(esc + "(s" + strconv.Itoa(size) + "H")
	buf.WriteString(esc + "(s" + strconv.Itoa(size/2) + "W")
	if bold {
		buf.WriteString(boldOn)
	} else {
		buf.WriteString(boldOff)
	}
	return buf.Bytes(), nil
}

// EncodeText encodes text using enc and optionally appends CRLF.
//
// Characters that enc cannot represent, and invalid UTF-8, are replaced
// with [SubstitutionMarker] rather than causing a failure. A nil enc or any
// other encoder failure yields [*EncodingError].
func EncodeText(enc encoding.Encoding, text string, newline bool) ([]byte, error) {
	if enc == nil {
		return nil, &EncodingError{Err: errNoEncoding}
	}
	checker := enc.NewEncoder()
	substitute := runes.Map(func(r rune) rune {
		if r == utf8.RuneError {
			return SubstitutionMarker
		}
		if _, err := checker.String(string(r)); err != nil {
			return SubstitutionMarker
		}
		return r
	})
	data, _, err := transform.Bytes(transform.Chain(substitute, enc.NewEncoder()), []byte(text))
	if err != nil {
		return nil, &EncodingError{Err: err}
	}
	if newline {
		data = append(data, crlf...)
	}
	return data, nil
}

// FeedPaper returns lines repetitions of CRLF. Zero or negative
// values return an empty sequence.
func FeedPaper(lines int) []byte {
	if lines <= 0 {
		return []byte{}
	}
	return bytes.Repeat([]byte(crlf), lines)
}

// EndJob returns the job reset sequence that must close every job.
func EndJob() []byte {
	return []byte(jobReset)
}

// StatusQuery returns the PJL status request. The reply must be
// read back from the same connection.
func StatusQuery() []byte {
	return []byte(statusRequest)
}
