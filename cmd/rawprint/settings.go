// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bassosimone/rawprint"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// settings is the validated CLI configuration.
type settings struct {
	Host     string
	Port     int
	Encoding encoding.Encoding
	FontSize int
	Bold     bool
	Timeout  time.Duration
	JobName  string
	LogLevel slog.Level
	Args     []string
}

// newFlagSet returns the flags understood by the CLI.
func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("rawprint", pflag.ContinueOnError)
	fs.String("host", "", "printer host name or IP address")
	fs.Int("port", 9100, "printer raw port")
	fs.String("charset", "GBK", "IANA name of the text codeset")
	fs.Int("font-size", 12, "font size between 10 and 72")
	fs.Bool("bold", false, "print in bold")
	fs.Duration("timeout", 30*time.Second, "timeout for the whole operation")
	fs.String("job-name", rawprint.DefaultJobName, "PJL job name")
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
	return fs
}

// loadSettings parses args and merges them with RAWPRINT_* environment
// variables. Flags take precedence over the environment.
func loadSettings(args []string) (*settings, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix("RAWPRINT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	s := &settings{
		Host:     strings.TrimSpace(v.GetString("host")),
		Port:     v.GetInt("port"),
		FontSize: v.GetInt("font-size"),
		Bold:     v.GetBool("bold"),
		Timeout:  v.GetDuration("timeout"),
		JobName:  v.GetString("job-name"),
		Args:     fs.Args(),
	}

	if s.Host == "" {
		return nil, errors.New("printer host must not be empty")
	}
	if s.Port < 1 || s.Port > 65535 {
		return nil, fmt.Errorf("printer port %d outside [1, 65535]", s.Port)
	}
	if s.Timeout <= 0 {
		return nil, fmt.Errorf("timeout %s must be positive", s.Timeout)
	}

	enc, err := lookupCharset(v.GetString("charset"))
	if err != nil {
		return nil, err
	}
	s.Encoding = enc

	if err := s.LogLevel.UnmarshalText([]byte(v.GetString("log-level"))); err != nil {
		return nil, err
	}
	return s, nil
}

// lookupCharset resolves an IANA charset name to an encoding.
func lookupCharset(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown charset %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", name)
	}
	return enc, nil
}
