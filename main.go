package main

import (
	"fmt"
	"os"

	configcmd "github.com/dtnitsch/fpga-survey-extractor/internal/config"
	dbcmd "github.com/dtnitsch/fpga-survey-extractor/internal/db"
	"github.com/dtnitsch/fpga-survey-extractor/internal/extract"
	"github.com/dtnitsch/fpga-survey-extractor/internal/screen"
	"github.com/dtnitsch/fpga-survey-extractor/internal/summary"
	"github.com/dtnitsch/fpga-survey-extractor/internal/zotero"
	"github.com/dtnitsch/fpga-survey-extractor/pkg/help"
	"github.com/dtnitsch/fpga-survey-extractor/pkg/importer"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	_ = godotenv.Load()

	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:                   "fse",
		Usage:                  "extract per-model records from FPGA survey annotation tags",
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "increase verbosity (-v info, -vv debug, -vvv debug and dump records)",
				Count:   new(int),
			},
			&cli.IntFlag{
				Name:    "verbosity",
				Usage:   "verbosity level 0-3",
				EnvVars: []string{"FSE_VERBOSITY"},
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "config file (default $XDG_CONFIG_HOME/fse/config.yaml)",
				EnvVars: []string{"FSE_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "db",
				Usage:   "run history database (default $XDG_DATA_HOME/fse/fse.db)",
				EnvVars: []string{"FSE_DB"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "log format on stderr: json or text",
				EnvVars: []string{"FSE_LOG_FORMAT"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "extract",
				Usage:  "turn an articles file into model records",
				Action: extract.ExtractAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "articles file (.yaml or .json)",
						Required: true,
						EnvVars:  []string{"FSE_INPUT"},
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "output file: .db snapshot, or .yaml/.json/.csv export (default timestamped snapshot)",
					},
					&cli.StringFlag{
						Name:    "policy",
						Usage:   "on a failing article: abort or skip",
						EnvVars: []string{"FSE_POLICY"},
					},
					&cli.BoolFlag{
						Name:  "no-screen",
						Usage: "keep articles tagged Excluded",
					},
				},
			},
			{
				Name:   "screen",
				Usage:  "report articles excluded by the screening tags",
				Action: screen.ScreenAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "articles file (.yaml or .json)",
						Required: true,
						EnvVars:  []string{"FSE_INPUT"},
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "save the articles kept for review",
					},
				},
			},
			{
				Name:   "import",
				Usage:  "convert a Zotero HTML report into an articles file",
				Action: zotero.ImportAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "report",
						Usage:    "Zotero \"Generate Report from Items\" HTML file",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "output",
						Aliases:  []string{"o"},
						Usage:    "articles file to write (.yaml or .json)",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:  "item-type",
						Usage: "Zotero item types to keep",
						Value: cli.NewStringSlice(importer.DefaultItemTypes...),
					},
				},
			},
			{
				Name:   "runs",
				Usage:  "list past extraction runs",
				Action: dbcmd.RunsAction,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "maximum number of runs to list",
						Value: 20,
					},
				},
			},
			{
				Name:      "run",
				Usage:     "show a run and its skipped articles",
				ArgsUsage: "[run-id]",
				Action:    dbcmd.RunAction,
			},
			{
				Name:      "records",
				Usage:     "dump the records of a run",
				ArgsUsage: "[run-id]",
				Action:    dbcmd.RecordsAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "export to a .yaml, .json or .csv file instead of stdout",
					},
				},
			},
			{
				Name:      "summary",
				Usage:     "count a run's records by model core, FPGA family, implementation and year",
				ArgsUsage: "[run-id]",
				Action:    summary.SummaryAction,
			},
			{
				Name:  "config",
				Usage: "manage the configuration file",
				Subcommands: []*cli.Command{
					{
						Name:   "init",
						Usage:  "write the default configuration to --config (or the default path)",
						Action: configcmd.InitAction,
						Flags: []cli.Flag{
							&cli.BoolFlag{
								Name:  "force",
								Usage: "overwrite an existing config file",
							},
						},
					},
					{
						Name:   "path",
						Usage:  "print the config file and history database paths",
						Action: configcmd.PathAction,
					},
				},
			},
			{
				Name:  "coldstart",
				Usage: "print a quick-start guide",
				Action: func(c *cli.Context) error {
					fmt.Print(help.ColdstartYAML)
					return nil
				},
			},
		},
	}
}
