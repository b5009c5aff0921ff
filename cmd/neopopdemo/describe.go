package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/gogpu/neopop"
	"github.com/spf13/cobra"
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	styleHeader = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
	styleDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func (c *cli) describeCommand() *cobra.Command {
	var direction string
	var edge float64

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print the insets and tails of a direction for every position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := neopop.ParseEdgeDirection(direction)
			if err != nil {
				return err
			}
			m := neopop.NewButtonModel(d, neopop.DisabledBackground)
			if edge > 0 {
				m.EdgeLength = edge
			}
			describe(cmd.OutOrStdout(), m)
			return nil
		},
	}
	cmd.Flags().StringVarP(&direction, "direction", "d", "bottomRight", "edge direction")
	cmd.Flags().Float64Var(&edge, "edge", 0, "edge length (default 3)")
	return cmd
}

func describe(w io.Writer, m neopop.ButtonModel) {
	d := m.Direction
	dm := d.DrawManager()

	fmt.Fprintln(w, styleTitle.Render(d.Name()))
	fmt.Fprintf(w, "%s %s\n", styleDim.Render("selected:"), d.Selected().Name())
	fmt.Fprintf(w, "%s %s\n", styleDim.Render("pressed normal view insets:"), formatInsets(dm.NormalStateInsets(m)))
	if corner, ok := dm.TailAnchor(); ok {
		fmt.Fprintf(w, "%s %s\n", styleDim.Render("tail anchor:"), corner)
	}

	rows := make([][]string, 0, len(neopop.Positions))
	for _, p := range neopop.Positions {
		m.Position = p
		rows = append(rows, []string{
			p.String(),
			dm.CornerTail(p).String(),
			formatInsets(dm.FaceInsets(m)),
			formatInsets(dm.ContentTransitionInsets(false, m)),
			formatInsets(dm.ContentTransitionInsets(true, m)),
		})
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleDim).
		Headers("Position", "Tail", "Face insets", "Content (normal)", "Content (pressed)").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	fmt.Fprintln(w, t.Render())
}

// formatInsets prints insets in top, left, bottom, right order.
func formatInsets(in neopop.Insets) string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', 4, 64) }
	return f(in.Top) + " " + f(in.Left) + " " + f(in.Bottom) + " " + f(in.Right)
}
