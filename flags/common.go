// Package flags provides the shared CLI flag set and app scaffolding for
// scale's command-line tools, adapted from the teacher's node-flags package
// down to the handful of ambient concerns (logging, output formatting) a
// codec CLI still needs.
package flags

import (
	"gopkg.in/urfave/cli.v1"
)

// CommonFlags returns the base set of CLI flags shared across scale-tooling
// commands.
func CommonFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "log.level",
			Usage: "Logging level (panic|fatal|error|warn|info|debug|trace)",
			Value: "info",
		},
		cli.BoolFlag{
			Name:  "log.color",
			Usage: "Enable colored log output",
		},
		cli.StringFlag{
			Name:  "sentry.dsn",
			Usage: "Sentry DSN for error reporting (disabled if empty)",
		},
	}
}
