package main

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/gogpu/neopop"
	"github.com/spf13/cobra"
)

// cli holds state shared by all commands.
type cli struct {
	logger  *log.Logger
	verbose bool
}

func newCLI(w io.Writer) *cli {
	return &cli{
		logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           log.InfoLevel,
		}),
	}
}

func (c *cli) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "neopopdemo",
		Short:        "Render neopop buttons",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if c.verbose {
				c.logger.SetLevel(log.DebugLevel)
			}
			neopop.SetLogger(slog.New(c.logger))
		},
	}
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.animateCommand())
	root.AddCommand(c.describeCommand())
	return root
}
