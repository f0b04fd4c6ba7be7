package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	charmlog "github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	. "textyle"
	"textyle/teaui"

	tea "github.com/charmbracelet/bubbletea"
)

func cellFromConfig(s string, fallback rune) Grapheme {
	for _, r := range s {
		return Grapheme{Cluster: string(r)}
	}
	return Grapheme{Cluster: string(fallback)}
}

// demoSize returns the terminal size, or a fixed size when stdout is
// not a terminal (piped output, tests).
func demoSize() Size {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			return Size{Width: w, Height: h - 1}
		}
	}
	return Size{Width: 40, Height: 12}
}

func newSceneCmd(cfg *config, logger *charmlog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "scene",
		Short: "render a static scene to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			size := demoSize()
			logger.Debug("rendering scene", "width", size.Width, "height", size.Height)

			border := cellFromConfig(cfg.Border, '#')
			bg := cellFromConfig(cfg.Background, '.')

			tree := VStack(HCenter, 0,
				Text[struct{}]("textyle"),
				Text[struct{}]("a layout engine"),
			).
				Padding(1).
				Border(1, border, EdgesAll).
				Center().
				Background(bg)

			surface := NewSurface[Grapheme](size)
			if err := Render(tree, surface, &struct{}{}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), surface.String())
			return nil
		},
	}
}

func newClockCmd(cfg *config, logger *charmlog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "clock",
		Short: "animated clock, q or Esc to quit",
		RunE: func(cmd *cobra.Command, args []string) error {
			border := cellFromConfig(cfg.Border, '#')

			layout := func(f *Frame[time.Time]) *Layout[Frame[time.Time], Grapheme] {
				return VStack(HCenter, 1,
					Textf[Frame[time.Time]]("%s", f.State.Format("15:04:05")),
					Textf[Frame[time.Time]]("frame %d", f.Count),
				).
					Padding(1).
					Border(1, border, EdgesAll).
					Center()
			}

			anim := NewAnimator(layout).
				FPS(cfg.FPS).
				Logger(logger).
				Update(func(f *Frame[time.Time]) {
					f.State = time.Now()
					for _, ev := range f.Events {
						if ev.Rune == 'q' {
							f.Quit()
						}
					}
				})
			return anim.Run(time.Now())
		},
	}
}

func newGridCmd(cfg *config, logger *charmlog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "grid",
		Short: "render a color gradient through the pixel cell type",
		RunE: func(cmd *cobra.Command, args []string) error {
			const cols, rows = 16, 8

			hues := NewMatrix[float64](cols, rows)
			for y := 0; y < rows; y++ {
				for x := 0; x < cols; x++ {
					hues.Set(x, y, float64(x*y)/float64((cols-1)*(rows-1)))
				}
			}

			tree := Grid(hues, 0, func(h *float64) *Layout[struct{}, Pixel] {
				c := colorful.Hsv(*h*300, 0.9, 0.9)
				return Content[struct{}]([][]Pixel{{{Color: c, Alpha: 1}}})
			})

			surface := NewSurface[Pixel](Size{Width: cols, Height: rows})
			if err := Render(tree, surface, &struct{}{}); err != nil {
				return err
			}

			// Two spaces per pixel so cells come out roughly square.
			out := cmd.OutOrStdout()
			for _, row := range surface.Rows() {
				for _, px := range row {
					if px.Transparent() {
						fmt.Fprint(out, "  ")
						continue
					}
					block := lipgloss.NewStyle().Background(lipgloss.Color(px.String()))
					fmt.Fprint(out, block.Render("  "))
				}
				fmt.Fprintln(out)
			}
			logger.Debug("gradient rendered", "cols", cols, "rows", rows)
			return nil
		},
	}
}

type teaState struct {
	count int
}

func newTeaCmd(logger *charmlog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "tea",
		Short: "run a counter inside a bubbletea program",
		RunE: func(cmd *cobra.Command, args []string) error {
			title := lipgloss.NewStyle().Bold(true).Render("textyle + bubbletea")

			layout := func(s *teaState) *Layout[teaState, Grapheme] {
				return VStack(HCenter, 1,
					Text[teaState](title),
					Textf[teaState]("count: %d", s.count),
					Text[teaState]("up/down to change, q to quit"),
				).
					Padding(1).
					Border(1, Grapheme{Cluster: "*"}, EdgesAll).
					Center()
			}

			update := func(s teaState, msg tea.Msg) (teaState, tea.Cmd) {
				if key, ok := msg.(tea.KeyMsg); ok {
					switch key.String() {
					case "up", "k":
						s.count++
					case "down", "j":
						s.count--
					case "q":
						return s, tea.Quit
					}
				}
				return s, nil
			}

			final, err := teaui.Run(teaState{}, layout, update)
			if err != nil {
				return err
			}
			logger.Info("done", "count", final.count)
			return nil
		},
	}
}
