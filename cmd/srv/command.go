package main

import "github.com/urfave/cli/v2"

// NewApp creates an app with sane defaults.
func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "Timecraft"
	app.Usage = ""
	app.Commands = []*cli.Command{
		{
			Action:      s.startApi,
			Name:        "api",
			Usage:       "Start service api",
			Flags:       []cli.Flag{},
			Category:    "Api",
			Description: `Used for start service api, the main service included all apis.`,
		},
		{
			Action: s.startMigrate,
			Name:   "migrate",
			Usage:  "Migrate the database schema",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "version",
					Usage: "The schema version to migrate to",
					Value: "auto",
				},
			},
			Category:    "Database",
			Description: `Used to bring the database schema to a given version.`,
		},
	}

	s.app = app
}
