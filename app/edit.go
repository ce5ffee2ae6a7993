package app

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v2"

	"github.com/chrono-hq/chrono/internal/session"
	"github.com/chrono-hq/chrono/internal/timeutil"
)

// promptEdit lets the user correct the fields of form interactively.
var promptEdit = func(form *session.EditForm) error {
	loc := form.Location()

	validate := func(optional bool) func(string) error {
		return func(s string) error {
			if s == "" && optional {
				return nil
			}

			_, err := timeutil.ParseLocalInput(s, loc)

			return err
		}
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title(fmt.Sprintf("Edit session %d", form.ID)).
				Description("Times are in " + loc.String() + " (YYYY-MM-DDTHH:MM)"),
			huh.NewInput().
				Title("Start").
				Value(&form.Start).
				Validate(validate(false)),
			huh.NewInput().
				Title("End").
				Description("Leave empty to keep the session running").
				Value(&form.End).
				Validate(validate(true)),
		),
	).Run()
}

// editAction corrects the bounds of a session. The session must have
// started within --from and --to. Without --start or --end the fields are
// edited in an interactive form.
func editAction(ctx *cli.Context, e *env) error {
	if ctx.NArg() != 1 {
		return errEditArgs
	}

	id, err := strconv.ParseInt(ctx.Args().First(), 10, 64)
	if err != nil {
		return errInvalidID.Fmt(ctx.Args().First())
	}

	sessions, err := e.backend.InRange(ctx.Context, e.cfg.CLI.From, e.cfg.CLI.To)
	if err != nil {
		return err
	}

	tbl := session.NewTable(sessions, e.cfg.Location())
	tbl.Editable = e.cfg.User.Admin

	form, err := tbl.EditForm(id)
	if err != nil {
		return err
	}

	if ctx.IsSet(startFlag.Name) || ctx.IsSet(endFlag.Name) {
		if ctx.IsSet(startFlag.Name) {
			form.Start = ctx.String(startFlag.Name)
		}

		if ctx.IsSet(endFlag.Name) {
			form.End = ctx.String(endFlag.Name)
		}
	} else if err = promptEdit(form); err != nil {
		return err
	}

	r, _ := newReconciler(e)

	return r.Edit(ctx.Context, form)
}
