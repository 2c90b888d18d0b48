package cli

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ngimenez/opoplan/internal/cli/formatter"
)

type pagerKeyMap struct {
	Quit key.Binding
}

func defaultPagerKeys() pagerKeyMap {
	return pagerKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// pagerModel scrolls long rendered output (a full plan) in an alt screen.
type pagerModel struct {
	title    string
	content  string
	keys     pagerKeyMap
	viewport viewport.Model
	ready    bool
}

func newPagerModel(title, content string) pagerModel {
	return pagerModel{
		title:   title,
		content: content,
		keys:    defaultPagerKeys(),
	}
}

func (m pagerModel) Init() tea.Cmd {
	return nil
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		headerHeight := lipgloss.Height(m.headerView())
		footerHeight := lipgloss.Height(m.footerView())
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m pagerModel) View() string {
	if !m.ready {
		return "loading…"
	}
	return m.headerView() + "\n" + m.viewport.View() + "\n" + m.footerView()
}

func (m pagerModel) headerView() string {
	return formatter.StyleHeader.Render(m.title)
}

func (m pagerModel) footerView() string {
	return formatter.Dim("↑/↓ scroll · q quit")
}

// runPager displays rendered content in a scrollable alt-screen pager.
func runPager(title, content string) error {
	p := tea.NewProgram(newPagerModel(title, content), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
