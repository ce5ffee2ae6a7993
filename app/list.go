package app

import (
	"github.com/chrono-hq/chrono/internal/models"
	"github.com/chrono-hq/chrono/internal/session"
	"github.com/chrono-hq/chrono/report"
)

// printSessions prints sessions as a table, or as JSON with --json.
func printSessions(e *env, sessions []models.Session) error {
	tbl := session.NewTable(sessions, e.cfg.Location())
	tbl.Hour24 = e.cfg.Settings.TwentyFourHour

	if e.cfg.CLI.JSON {
		return tbl.WriteJSON(e.out)
	}

	return report.Sessions(e.out, tbl)
}
