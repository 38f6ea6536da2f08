// SPDX-License-Identifier: GPL-3.0-or-later

package rawprint

import (
	"context"
	"log/slog"
	"time"
)

// JobFeedLines is the number of blank lines [*Printer.PrintJob] feeds
// after the text and before ending the job.
const JobFeedLines = 2

// PrintJob prints text as a single job: initialize, set font, text
// followed by CRLF, [JobFeedLines] line feeds, and end of job.
//
// All blocks are encoded before any I/O, so a [*FontRangeError] or
// [*EncodingError] never leaves a partial job on the printer. While
// [Disconnected], PrintJob fails with [*NotConnectedError]. A failing
// block stops the job with [*SendError] and the printer is [Disconnected].
//
// The caller owns the connection and should [*Printer.Close] it on every
// exit path, including failures.
func (p *Printer) PrintJob(ctx context.Context, text string, fontSize int, bold bool) (err error) {
	spanID := NewSpanID()
	t0 := p.TimeNow()
	p.logSpanStart("printJobStart", spanID, t0)
	defer func() {
		p.logSpanDone("printJobDone", spanID, t0, err)
	}()

	blocks, err := p.encodeJob(text, fontSize, bold)
	if err != nil {
		return err
	}
	if p.state != Connected {
		return &NotConnectedError{Op: "printJob"}
	}
	for _, block := range blocks {
		if err := p.Send(ctx, block); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) encodeJob(text string, fontSize int, bold bool) ([][]byte, error) {
	font, err := SetFont(fontSize, bold)
	if err != nil {
		return nil, err
	}
	body, err := EncodeText(p.Encoding, text, true)
	if err != nil {
		return nil, err
	}
	blocks := [][]byte{
		InitializeJob(p.JobName),
		font,
		body,
		FeedPaper(JobFeedLines),
		EndJob(),
	}
	return blocks, nil
}

// QueryStatus sends a PJL status request and returns the decoded reply.
//
// While [Disconnected], QueryStatus fails with [*NotConnectedError] and
// does not touch any socket. Otherwise, errors are those of
// [*Printer.Send] and [*Printer.Receive].
func (p *Printer) QueryStatus(ctx context.Context) (status string, err error) {
	spanID := NewSpanID()
	t0 := p.TimeNow()
	p.logSpanStart("statusQueryStart", spanID, t0)
	defer func() {
		p.logSpanDone("statusQueryDone", spanID, t0, err)
	}()

	if p.state != Connected {
		return "", &NotConnectedError{Op: "queryStatus"}
	}
	if err := p.Send(ctx, StatusQuery()); err != nil {
		return "", err
	}
	return p.Receive(ctx, p.StatusReplySize)
}

func (p *Printer) logSpanStart(msg, spanID string, t0 time.Time) {
	p.Logger.Info(
		msg,
		slog.String("remoteAddr", p.Address()),
		slog.String("spanID", spanID),
		slog.Time("t", t0),
	)
}

func (p *Printer) logSpanDone(msg, spanID string, t0 time.Time, err error) {
	p.Logger.Info(
		msg,
		slog.Any("err", err),
		slog.String("errClass", p.ErrClassifier.Classify(err)),
		slog.String("remoteAddr", p.Address()),
		slog.String("spanID", spanID),
		slog.Time("t0", t0),
		slog.Time("t", p.TimeNow()),
	)
}
