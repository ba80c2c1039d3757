package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/clipio-sh/clipio/pkg/clipboard"
	"github.com/clipio-sh/clipio/pkg/codepage"
	"github.com/clipio-sh/clipio/pkg/crlf"
)

type direction int

const (
	dirIn direction = iota + 1
	dirOut
	dirClear
)

// app holds one invocation's collaborators so the transfer logic can be
// exercised with fake streams and clipboards in tests.
type app struct {
	log      *slog.Logger
	clip     clipboard.Clipboard
	cp       codepage.Codepage
	expand   bool
	collapse bool
	stdin    io.Reader
	stdout   io.Writer
}

func (a *app) run(d direction) error {
	switch d {
	case dirIn:
		return a.setClipboard()
	case dirOut:
		return a.printClipboard()
	case dirClear:
		return a.clearClipboard()
	}
	return fmt.Errorf("unknown direction %d", d)
}

// setClipboard drains stdin into the clipboard.
func (a *app) setClipboard() error {
	buf := crlf.ReadAll(a.stdin, a.expand)

	text, err := a.cp.Decode(buf)
	if err != nil {
		return fmt.Errorf("unable to decode stdin as %s: %w", a.cp, err)
	}

	if err := a.clip.Set(string(text)); err != nil {
		// clipboard trouble degrades to a silent no-op
		a.log.Debug("clipboard not set", "err", err)
		return nil
	}
	a.log.Info("clipboard set", "bytes", len(text))
	return nil
}

// printClipboard writes the clipboard contents to stdout.
func (a *app) printClipboard() error {
	text, err := a.clip.Get()
	if err != nil {
		a.log.Debug("nothing to print", "err", err)
		return nil
	}

	buf, err := a.cp.Encode([]byte(text))
	if err != nil {
		return fmt.Errorf("unable to encode clipboard as %s: %w", a.cp, err)
	}

	if !crlf.WriteAll(a.stdout, buf, a.collapse) {
		a.log.Debug("stdout write failed")
	}
	return nil
}

func (a *app) clearClipboard() error {
	if err := a.clip.Clear(); err != nil {
		a.log.Debug("clipboard not cleared", "err", err)
		return nil
	}
	a.log.Info("clipboard cleared")
	return nil
}
