package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/neopop"
	"github.com/gogpu/neopop/motion"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// pressable is a button that can be pressed and drawn.
type pressable interface {
	TouchDown()
	TouchUp(inside bool)
	OnTap(fn func())
	Draw(dc *gg.Context) error
	Close()
}

type animateOpts struct {
	direction neopop.EdgeDirection
	frames    int
	out       string
	color     string
	title     string
	floating  bool
	scale     float64
}

func (c *cli) animateCommand() *cobra.Command {
	opts := animateOpts{direction: neopop.BottomRight(), frames: 12, color: "FFE0A0", title: "Pay now", scale: 2}
	var direction string

	cmd := &cobra.Command{
		Use:   "animate",
		Short: "Render a press and release as PNG frames",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if direction != "" {
				d, err := neopop.ParseEdgeDirection(direction)
				if err != nil {
					return err
				}
				opts.direction = d
			}
			if opts.frames < 2 {
				return fmt.Errorf("--frames must be at least 2, got %d", opts.frames)
			}
			return c.animate(opts)
		},
	}
	cmd.Flags().StringVarP(&direction, "direction", "d", "", "edge direction (bottomRight, bottom:0.5, ...)")
	cmd.Flags().IntVarP(&opts.frames, "frames", "n", opts.frames, "number of frames")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "frames", "output directory")
	cmd.Flags().StringVar(&opts.color, "color", opts.color, "face color (hex)")
	cmd.Flags().StringVar(&opts.title, "title", opts.title, "button title")
	cmd.Flags().BoolVar(&opts.floating, "floating", false, "animate a floating button")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "pixels per point")
	return cmd
}

const (
	animWidth  = 200.0
	animHeight = 56.0
	animMargin = 24.0
)

func (c *cli) animate(opts animateOpts) error {
	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		return err
	}

	tl := motion.NewTimeline(time.Unix(0, 0))
	cfg := neopop.DefaultConfig()
	bopts := []neopop.Option{neopop.WithAnimator(tl), neopop.WithScheduler(tl), neopop.WithConfig(cfg)}
	frame := neopop.R(animMargin, animMargin, animWidth, animHeight)
	content := neopop.NewContentModel(opts.title)

	var b pressable
	var down, up time.Duration
	if opts.floating {
		fb := neopop.NewFloatingButton(bopts...)
		fb.SetFrame(frame)
		m := neopop.NewFloatingModel()
		m.Background = neopop.HexARGB(opts.color)
		fb.Configure(m)
		if err := fb.ConfigureContent(content); err != nil {
			return err
		}
		b, down, up = fb, cfg.FloatingTouchDown, cfg.FloatingTouchUp
	} else {
		pb := neopop.NewButton(bopts...)
		pb.SetFrame(frame)
		pb.Configure(neopop.NewButtonModel(opts.direction, neopop.HexARGB(opts.color)))
		if err := pb.ConfigureContent(content); err != nil {
			return err
		}
		b, down, up = pb, cfg.PressDuration, cfg.PressDuration
	}
	defer b.Close()
	b.OnTap(func() { c.logger.Debug("Tap delivered", "at", tl.Now().Sub(time.Unix(0, 0))) })

	total := down + up
	step := total / time.Duration(opts.frames-1)
	release := opts.frames / 2

	bar := progressbar.Default(int64(opts.frames), "rendering")
	b.TouchDown()
	for i := range opts.frames {
		if i == release {
			b.TouchUp(true)
		}
		path := filepath.Join(opts.out, fmt.Sprintf("frame-%03d.png", i))
		if err := renderFrame(b, path, opts.scale); err != nil {
			return err
		}
		tl.Advance(step)
		_ = bar.Add(1)
	}
	// Let the release finish so the tap is delivered.
	tl.Advance(total)
	c.logger.Info("Rendered frames", "frames", opts.frames, "out", opts.out, "direction", opts.direction)
	return nil
}

func renderFrame(b pressable, path string, scale float64) error {
	w := int((animWidth + 2*animMargin) * scale)
	h := int((animHeight + 2*animMargin) * scale)
	dc := gg.NewContext(w, h)
	dc.ClearWithColor(gg.White)
	dc.Scale(scale, scale)
	if err := b.Draw(dc); err != nil {
		return fmt.Errorf("draw %s: %w", path, err)
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
