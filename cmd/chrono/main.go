package main

import (
	"os"

	"github.com/chrono-hq/chrono/app"
	"github.com/chrono-hq/chrono/report"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		report.Quit(err)
	}
}
