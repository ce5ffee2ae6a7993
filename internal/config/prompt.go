package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
 ██████╗██╗  ██╗██████╗  ██████╗ ███╗   ██╗ ██████╗
██╔════╝██║  ██║██╔══██╗██╔═══██╗████╗  ██║██╔═══██╗
██║     ███████║██████╔╝██║   ██║██╔██╗ ██║██║   ██║
██║     ██╔══██║██╔══██╗██║   ██║██║╚██╗██║██║   ██║
╚██████╗██║  ██║██║  ██║╚██████╔╝██║ ╚████║╚██████╔╝
 ╚═════╝╚═╝  ╚═╝╚═╝  ╚═╝ ╚═════╝ ╚═╝  ╚═══╝ ╚═════╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	URL     string
	Session string
	UserID  string
	Offline bool
}

// WithPromptConfig returns an Option that asks for the server settings the
// first time chrono runs, before the config file exists.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return errPrompt.Wrap(err)
		}

		return applyPromptOptions(c, opts)
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	opts := PromptOptions{
		URL: "http://localhost:8080/api",
	}

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure Chrono for the first time.
Press ENTER to accept the defaults.
Edit the config file with 'chrono edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Track sessions offline on this machine?").
				Value(&opts.Offline),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Chrono API URL").
				Value(&opts.URL).
				Validate(func(s string) error {
					return validateURL(strings.TrimSpace(s))
				}),
			huh.NewInput().
				Title("Session cookie").
				Description("Copy the value of the 'session' cookie after signing in").
				EchoMode(huh.EchoModePassword).
				Value(&opts.Session),
			huh.NewInput().
				Title("User id").
				Value(&opts.UserID).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}

					_, err := strconv.ParseInt(s, 10, 64)

					return err
				}),
		).WithHideFunc(func() bool {
			return opts.Offline
		}),
	)

	if err := form.Run(); err != nil {
		return opts, err
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) error {
	c.Settings.Offline = opts.Offline

	if opts.Offline {
		return nil
	}

	c.Server.URL = strings.TrimSpace(opts.URL)
	c.Server.Session = strings.TrimSpace(opts.Session)

	if opts.UserID != "" {
		id, err := strconv.ParseInt(opts.UserID, 10, 64)
		if err != nil {
			return err
		}

		c.User.ID = id
	}

	return nil
}
