// Package teaui embeds a textyle layout tree inside a Bubble Tea
// program. The tree renders into an off-screen surface sized to the
// terminal, and View returns the surface as a string, so the host
// keeps Bubble Tea's update loop while textyle does the layout.
package teaui

import (
	tea "github.com/charmbracelet/bubbletea"

	"textyle"
)

// UpdateFunc folds a Bubble Tea message into the host state. Returning
// a non-nil command forwards it to the runtime; return tea.Quit to
// stop the program.
type UpdateFunc[State any] func(State, tea.Msg) (State, tea.Cmd)

// Model adapts a layout provider to tea.Model. Zero value is not
// usable; construct with New.
type Model[State any] struct {
	layout  textyle.LayoutFunc[State, textyle.Grapheme]
	update  UpdateFunc[State]
	state   State
	surface *textyle.Surface[textyle.Grapheme]
}

// New wraps a layout provider and initial state as a Bubble Tea model.
func New[State any](state State, layout textyle.LayoutFunc[State, textyle.Grapheme], update UpdateFunc[State]) Model[State] {
	return Model[State]{
		layout:  layout,
		update:  update,
		state:   state,
		surface: textyle.NewSurface[textyle.Grapheme](textyle.Size{}),
	}
}

// State returns the current host state.
func (m Model[State]) State() State { return m.state }

func (m Model[State]) Init() tea.Cmd {
	return nil
}

func (m Model[State]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.surface = textyle.NewSurface[textyle.Grapheme](textyle.Size{Width: msg.Width, Height: msg.Height})
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	}
	if m.update != nil {
		var cmd tea.Cmd
		m.state, cmd = m.update(m.state, msg)
		return m, cmd
	}
	return m, nil
}

func (m Model[State]) View() string {
	if m.surface.Width() == 0 || m.surface.Height() == 0 {
		return ""
	}
	m.surface.Reset()
	if err := textyle.Render(m.layout(&m.state), m.surface, &m.state); err != nil {
		return ""
	}
	return m.surface.String()
}

// Run is a convenience wrapper that runs the model in the alternate
// screen and returns the final state.
func Run[State any](state State, layout textyle.LayoutFunc[State, textyle.Grapheme], update UpdateFunc[State]) (State, error) {
	p := tea.NewProgram(New(state, layout, update), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return state, err
	}
	return final.(Model[State]).state, nil
}
