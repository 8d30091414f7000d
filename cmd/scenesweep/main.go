package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/tobyv/scenesweep/internal/commands"
)

var (
	rootFlag    string
	projectFlag string
	debugMode   bool
	dryRun      bool
	assumeYes   bool
)

func main() {
	app := &cli.App{
		Name:  "scenesweep",
		Usage: "Prune orphaned resources and normalize transforms in scene projects",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "root",
				Aliases:     []string{"r"},
				Usage:       "Project root directory (default: project file's directory)",
				Destination: &rootFlag,
			},
			&cli.StringFlag{
				Name:        "project",
				Aliases:     []string{"p"},
				Usage:       "Project file path (default: from config, or project.scene)",
				Destination: &projectFlag,
			},
			&cli.BoolFlag{
				Name:        "debug",
				Usage:       "Enable debug output",
				Destination: &debugMode,
			},
			&cli.BoolFlag{
				Name:        "dry-run",
				Aliases:     []string{"n"},
				Usage:       "Report changes without writing the project file",
				Destination: &dryRun,
			},
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "Skip confirmation prompts",
				Destination: &assumeYes,
			},
		},
		Before: func(c *cli.Context) error {
			commands.SetDebugMode(debugMode)
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:    "scan",
				Aliases: []string{"s"},
				Usage:   "List resources whose backing file is missing",
				Action: func(c *cli.Context) error {
					env, err := commands.Setup(rootFlag, projectFlag)
					if err != nil {
						return err
					}
					return commands.HandleScan(env, c.Args().Slice())
				},
			},
			{
				Name:  "purge",
				Usage: "Delete all orphaned resources from the project",
				Action: func(c *cli.Context) error {
					env, err := commands.Setup(rootFlag, projectFlag)
					if err != nil {
						return err
					}
					return commands.HandlePurge(env, dryRun, assumeYes)
				},
			},
			{
				Name:    "tidy",
				Aliases: []string{"t"},
				Usage:   "Simplify object transforms and component lists",
				Action: func(c *cli.Context) error {
					env, err := commands.Setup(rootFlag, projectFlag)
					if err != nil {
						return err
					}
					return commands.HandleTidy(env, dryRun)
				},
			},
			{
				Name:  "clean",
				Usage: "Purge orphans and tidy the scene in one pass",
				Action: func(c *cli.Context) error {
					env, err := commands.Setup(rootFlag, projectFlag)
					if err != nil {
						return err
					}
					return commands.HandleClean(env, dryRun, assumeYes)
				},
			},
			{
				Name:  "undo",
				Usage: "Restore the project file from the newest backup",
				Action: func(c *cli.Context) error {
					env, err := commands.Setup(rootFlag, projectFlag)
					if err != nil {
						return err
					}
					return commands.HandleUndo(env)
				},
			},
			{
				Name:    "status",
				Aliases: []string{"st"},
				Usage:   "Show project, orphan, and backup overview",
				Action: func(c *cli.Context) error {
					env, err := commands.Setup(rootFlag, projectFlag)
					if err != nil {
						return err
					}
					return commands.HandleStatus(env)
				},
			},
		},
		Action: func(c *cli.Context) error {
			// Default action: scan, same as the refresh button in an editor
			if c.NArg() == 0 {
				env, err := commands.Setup(rootFlag, projectFlag)
				if err != nil {
					return err
				}
				return commands.HandleScan(env, nil)
			}
			return cli.ShowAppHelp(c)
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
