package timer

import "github.com/chrono-hq/chrono/internal/apperr"

var errNoTerminal = &apperr.Error{
	Name:    "TerminalError",
	Message: "the interactive timer needs a terminal; use the start and stop commands instead",
}
