package notify

import (
	"bytes"
	"errors"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"

	"github.com/chrono-hq/chrono/internal/apperr"
)

func TestDescribe(t *testing.T) {
	err := &apperr.Error{Name: "Unauthorized", Message: "only allowed for admins"}

	assert.Equal(t, "Unauthorized: only allowed for admins", Describe(err))
	assert.Equal(t, "Error: boom", Describe(errors.New("boom")))
}

func TestTerminal(t *testing.T) {
	pterm.DisableColor()
	t.Cleanup(pterm.EnableColor)

	var buf bytes.Buffer

	n := NewTerminal(&buf)
	n.Info("resuming unfinished session")
	n.Success("session started")
	n.Error(&apperr.Error{Name: "NetworkError", Message: "connection refused"})

	out := buf.String()
	assert.Contains(t, out, "resuming unfinished session")
	assert.Contains(t, out, "session started")
	assert.Contains(t, out, "NetworkError: connection refused")
}

type call struct {
	title string
	msg   string
}

func TestDesktop(t *testing.T) {
	var notified, alerted []call

	d := &Desktop{
		notify: func(title, msg string) error {
			notified = append(notified, call{title, msg})
			return nil
		},
		alert: func(title, msg string) error {
			alerted = append(alerted, call{title, msg})
			return errors.New("no display")
		},
	}

	d.Success("session stopped")
	d.Error(&apperr.Error{Name: "ServerError", Message: "database is locked"})

	assert.Equal(t, []call{{"Chrono", "session stopped"}}, notified)
	assert.Equal(t, []call{{"Chrono ServerError", "database is locked"}}, alerted)
}

type counter struct {
	infos, successes, errs int
}

func (c *counter) Info(string)    { c.infos++ }
func (c *counter) Success(string) { c.successes++ }
func (c *counter) Error(error)    { c.errs++ }

func TestMulti(t *testing.T) {
	a, b := &counter{}, &counter{}

	m := Multi{a, b}
	m.Info("x")
	m.Success("y")
	m.Error(errors.New("z"))

	assert.Equal(t, counter{1, 1, 1}, *a)
	assert.Equal(t, counter{1, 1, 1}, *b)
}
