package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/loadout-sh/loadout/internal/task"
)

// menuItem is one row of the tool menu.
type menuItem struct {
	id        int
	name      string
	purpose   string
	installed bool
}

// MenuModel renders the task list and collects one free-text selection
// line (e.g. "1,3,7" or "all").
type MenuModel struct {
	items   []menuItem
	input   textinput.Model
	version string
	theme   Theme
	width   int

	done      bool
	cancelled bool
}

// NewMenu builds the menu from the registry, with installed badges
// computed by the caller.
func NewMenu(version string, tasks []task.Task, installed []bool, theme Theme) MenuModel {
	items := make([]menuItem, len(tasks))
	for i, t := range tasks {
		items[i] = menuItem{id: t.ID, name: t.Name, purpose: t.Purpose, installed: installed[i]}
	}

	ti := textinput.New()
	ti.Placeholder = "1,3,7  or  all  (0 quits)"
	ti.Focus()

	return MenuModel{
		items:   items,
		input:   ti,
		version: version,
		theme:   theme,
	}
}

// Value returns the submitted selection line.
func (m MenuModel) Value() string { return m.input.Value() }

// Cancelled reports whether the operator backed out without selecting.
func (m MenuModel) Cancelled() bool { return m.cancelled }

func (m MenuModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		case "enter":
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m MenuModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}

	var b strings.Builder

	title := m.theme.Title.Render("loadout  " + m.version)
	subtitle := m.theme.Subtitle.Render("security & dev tooling provisioner")
	b.WriteString(m.theme.Banner.Render(title + "\n" + subtitle))
	b.WriteString("\n\n")

	for _, item := range m.items {
		badge := m.theme.BadgeMiss.Render("·")
		if item.installed {
			badge = m.theme.BadgeOK.Render("*")
		}
		purpose := m.theme.Subtitle.Render(item.purpose)
		fmt.Fprintf(&b, " %2d) %s %-12s %s\n", item.id, badge, item.name, purpose)
	}
	fmt.Fprintf(&b, " %2d)   %-12s %s\n", task.AllID, "everything", m.theme.Subtitle.Render("install the full kit"))
	fmt.Fprintf(&b, "  0)   %-12s %s\n", "quit", m.theme.Subtitle.Render("exit without changes"))

	b.WriteString("\n  " + m.input.View() + "\n\n")

	help := m.theme.HelpKey.Render("enter") + " " + m.theme.HelpDesc.Render("run selection") + "  " +
		m.theme.HelpKey.Render("esc") + " " + m.theme.HelpDesc.Render("quit")
	b.WriteString(help)
	b.WriteString("\n")

	return tea.NewView(b.String())
}

// RunMenu displays the menu and blocks until the operator submits a
// selection or backs out. Returns the raw selection line.
func RunMenu(version string, tasks []task.Task, installed []bool) (input string, quit bool, err error) {
	model := NewMenu(version, tasks, installed, DefaultTheme())

	p := tea.NewProgram(model)
	result, err := p.Run()
	if err != nil {
		return "", false, fmt.Errorf("menu: %w", err)
	}

	final, ok := result.(MenuModel)
	if !ok {
		return "", true, nil
	}
	if final.Cancelled() {
		return "", true, nil
	}
	return final.Value(), false, nil
}
