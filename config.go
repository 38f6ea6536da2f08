// SPDX-License-Identifier: GPL-3.0-or-later

package rawprint

import (
	"net"
	"time"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
)

// DefaultStatusReplySize is the default maximum number of bytes read
// back from the printer in response to a status query.
const DefaultStatusReplySize = 1024

// Config holds common configuration for rawprint operations.
//
// Pass this to [NewPrinter] to pre-wire dependencies.
// All fields have sensible defaults set by [NewConfig].
type Config struct {
	// Dialer is used by [*Printer] to open the TCP connection.
	//
	// Set by [NewConfig] to [*net.Dialer].
	Dialer Dialer

	// Encoding is the fixed codeset used to encode text blocks.
	//
	// Set by [NewConfig] to [simplifiedchinese.GBK].
	Encoding encoding.Encoding

	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewConfig] to [DefaultErrClassifier].
	ErrClassifier ErrClassifier

	// JobName is the label sent with the PJL job directive.
	//
	// Set by [NewConfig] to [DefaultJobName].
	JobName string

	// StatusReplySize is the maximum size of a status reply chunk.
	//
	// Set by [NewConfig] to [DefaultStatusReplySize].
	StatusReplySize int

	// TimeNow returns the current time.
	//
	// Set by [NewConfig] to [time.Now].
	TimeNow func() time.Time
}

// NewConfig creates a [*Config] with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Dialer:          &net.Dialer{},
		Encoding:        simplifiedchinese.GBK,
		ErrClassifier:   DefaultErrClassifier,
		JobName:         DefaultJobName,
		StatusReplySize: DefaultStatusReplySize,
		TimeNow:         time.Now,
	}
}
