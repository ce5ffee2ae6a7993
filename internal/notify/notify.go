// Package notify delivers reconciler notifications to the terminal and the
// desktop
package notify

import (
	"io"
	"log/slog"

	"github.com/gen2brain/beeep"
	"github.com/pterm/pterm"

	"github.com/chrono-hq/chrono/internal/apperr"
)

const appName = "Chrono"

// Terminal prints notifications with pterm prefixes.
type Terminal struct {
	info    *pterm.PrefixPrinter
	success *pterm.PrefixPrinter
	err     *pterm.PrefixPrinter
}

// NewTerminal returns a Terminal notifier writing to w.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{
		info:    pterm.Info.WithWriter(w),
		success: pterm.Success.WithWriter(w),
		err:     pterm.Error.WithWriter(w),
	}
}

func (t *Terminal) Info(msg string) {
	t.info.Println(msg)
}

func (t *Terminal) Success(msg string) {
	t.success.Println(msg)
}

func (t *Terminal) Error(err error) {
	t.err.Println(Describe(err))
}

// Describe renders err as its name and message.
func Describe(err error) string {
	return apperr.NameOf(err) + ": " + err.Error()
}

// Desktop raises system notifications through beeep.
type Desktop struct {
	notify func(title, message string) error
	alert  func(title, message string) error
}

// NewDesktop returns a Desktop notifier.
func NewDesktop() *Desktop {
	return &Desktop{
		notify: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
		alert: func(title, message string) error {
			return beeep.Alert(title, message, "")
		},
	}
}

func (d *Desktop) Info(msg string) {
	d.send(d.notify, appName, msg)
}

func (d *Desktop) Success(msg string) {
	d.send(d.notify, appName, msg)
}

func (d *Desktop) Error(err error) {
	d.send(d.alert, appName+" "+apperr.NameOf(err), err.Error())
}

func (d *Desktop) send(fn func(string, string) error, title, msg string) {
	if err := fn(title, msg); err != nil {
		slog.Warn("desktop notification failed", slog.Any("error", err))
	}
}

// Notifier is the set of methods shared by every notifier in this package.
type Notifier interface {
	Info(msg string)
	Success(msg string)
	Error(err error)
}

// Multi fans notifications out to several notifiers.
type Multi []Notifier

func (m Multi) Info(msg string) {
	for _, n := range m {
		n.Info(msg)
	}
}

func (m Multi) Success(msg string) {
	for _, n := range m {
		n.Success(msg)
	}
}

func (m Multi) Error(err error) {
	for _, n := range m {
		n.Error(err)
	}
}
