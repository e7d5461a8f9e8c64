package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-thrust/internal/core"
	"github.com/vovakirdan/tui-thrust/internal/games/thrust/levels"
	"github.com/vovakirdan/tui-thrust/internal/games/thrust/sim"
)

// LevelMenuKeyMap defines the key bindings for the level picker.
type LevelMenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k LevelMenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k LevelMenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Select}, {k.Back, k.Quit}}
}

// DefaultLevelMenuKeyMap returns default key bindings.
func DefaultLevelMenuKeyMap() LevelMenuKeyMap {
	return LevelMenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// LevelSelection holds the user's pick.
type LevelSelection struct {
	Level int // Zero-based index into the level list
}

// LevelSummary is one row of the picker.
type LevelSummary struct {
	ID      string
	Name    string
	Cols    int
	Rows    int
	Enemies int
	Issues  int
}

// Summarize parses each level for the picker and the levels command.
func Summarize(lvls []levels.Level) []LevelSummary {
	out := make([]LevelSummary, len(lvls))
	for i := range lvls {
		layout := sim.ParseGrid(lvls[i].Rows)
		out[i] = LevelSummary{
			ID:      lvls[i].ID,
			Name:    lvls[i].Name,
			Cols:    layout.Cols,
			Rows:    layout.Rows,
			Enemies: layout.Count(sim.TokenChaser) + layout.Count(sim.TokenTurret),
			Issues:  len(layout.Issues),
		}
	}
	return out
}

// LevelMenuModel is the level picker.
type LevelMenuModel struct {
	levels    []LevelSummary
	table     table.Model
	help      help.Model
	keys      LevelMenuKeyMap
	theme     Theme
	width     int
	height    int
	selection *LevelSelection
	quitting  bool
	back      bool
}

// NewLevelMenuModel creates a picker over the given levels.
func NewLevelMenuModel(summaries []LevelSummary, width, height int) LevelMenuModel {
	m := LevelMenuModel{
		levels: summaries,
		help:   help.New(),
		keys:   DefaultLevelMenuKeyMap(),
		theme:  DefaultTheme(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	return m
}

func (m *LevelMenuModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Name", Width: 20},
		{Title: "Size", Width: 7},
		{Title: "Enemies", Width: 8},
		{Title: "Issues", Width: 7},
	}

	rows := make([]table.Row, len(m.levels))
	for i, l := range m.levels {
		issues := "-"
		if l.Issues > 0 {
			issues = fmt.Sprint(l.Issues)
		}
		rows[i] = table.Row{
			fmt.Sprint(i + 1),
			l.Name,
			fmt.Sprintf("%dx%d", l.Cols, l.Rows),
			fmt.Sprint(l.Enemies),
			issues,
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = m.theme.TableHeader
	s.Selected = m.theme.TableSelected
	t.SetStyles(s)
	return t
}

// Init initializes the model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.table.MoveUp(1)
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.table.MoveDown(1)
			return m, nil
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Select):
			if len(m.levels) > 0 {
				m.selection = &LevelSelection{Level: m.table.Cursor()}
			}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(m.height-8, 3))
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the level selection.
func (m LevelMenuModel) View() string {
	if m.quitting || m.selection != nil || m.back {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("T H R U S T"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.MenuDescription.Render("Select a level:"), m.width))
	b.WriteString("\n\n")

	if len(m.levels) == 0 {
		b.WriteString(centerText(m.theme.Warning.Render("No levels found"), m.width))
		b.WriteString("\n")
	} else {
		for _, line := range strings.Split(m.table.View(), "\n") {
			b.WriteString(centerText(line, m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	return b.String()
}

// Selected returns the selection, or nil if the picker was left without one.
func (m LevelMenuModel) Selected() *LevelSelection {
	return m.selection
}

// RunLevelSelector shows the picker and returns the chosen level, or nil
// when the user backed out.
func RunLevelSelector(lvls []levels.Level, cfg core.RuntimeConfig) (*LevelSelection, error) {
	model := NewLevelMenuModel(Summarize(lvls), cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(LevelMenuModel)
	if !ok {
		return nil, nil
	}
	return m.Selected(), nil
}
