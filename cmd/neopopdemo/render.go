package main

import (
	"fmt"
	"time"

	"github.com/gogpu/neopop/internal/showcase"
	"github.com/spf13/cobra"
)

func (c *cli) renderCommand() *cobra.Command {
	var config, out string
	var scale float64

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a showcase grid to PNG",
		Long:  "Render every button of a showcase file (TOML or YAML) to a single PNG. Without --config a grid of all directions is drawn.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			cfg := showcase.Default()
			if config != "" {
				var err error
				if cfg, err = showcase.Load(config); err != nil {
					return err
				}
			}
			if scale > 0 {
				cfg.Scale = scale
			}

			grid, err := showcase.Build(cfg)
			if err != nil {
				return err
			}
			defer grid.Close()

			dc, err := grid.Draw()
			if err != nil {
				return fmt.Errorf("draw showcase: %w", err)
			}
			if err := dc.SavePNG(out); err != nil {
				return fmt.Errorf("save %s: %w", out, err)
			}
			c.logger.Info("Rendered showcase",
				"buttons", len(cfg.Buttons), "out", out,
				"elapsed", time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
	cmd.Flags().StringVarP(&config, "config", "c", "", "showcase file (.toml, .yaml)")
	cmd.Flags().StringVarP(&out, "out", "o", "showcase.png", "output PNG file")
	cmd.Flags().Float64Var(&scale, "scale", 0, "pixels per point (overrides the file)")
	return cmd
}
