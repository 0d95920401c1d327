package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"coinpicker/internal/ui/input/types"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys types.KeyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys types.KeyMap) *HelpRenderer {
	return &HelpRenderer{keys: keys}
}

// renderHelpContent renders the full key reference
func (r *HelpRenderer) renderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(14)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("coinpicker Help"))
	help.WriteString("\n")

	sections := []string{"Dropdown", "Navigation", "Favorites"}
	for i, bindings := range r.keys.FullHelp() {
		help.WriteString(sectionStyle.Render(sections[i]))
		help.WriteString("\n")
		for _, b := range bindings {
			help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render(b.Help().Key), descStyle.Render(b.Help().Desc)))
		}
	}

	help.WriteString(sectionStyle.Render("Mouse"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render("click"), descStyle.Render("SEARCH toggles the panel, a row toggles its favorite")))
	help.WriteString(fmt.Sprintf("  %s%s", keyStyle.Render("click outside"), descStyle.Render("Close the panel")))

	return help.String()
}

// helpPager shows text in the ov pager. It satisfies tea.ExecCommand so
// bubbletea releases the terminal while the pager runs.
type helpPager struct {
	content string
}

func (p *helpPager) SetStdin(io.Reader)  {}
func (p *helpPager) SetStdout(io.Writer) {}
func (p *helpPager) SetStderr(io.Writer) {}

// Run shows the content using the ov pager
func (p *helpPager) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(p.content))
	if err != nil {
		return fmt.Errorf("failed to create pager: %w", err)
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// showHelpCmd runs the help pager and reports back when it exits
func showHelpCmd(content string) tea.Cmd {
	return tea.Exec(&helpPager{content: content}, func(err error) tea.Msg {
		return helpPagerMsg{err: err}
	})
}

// shortHelp renders the one-line help for the current open state
func (m *Model) shortHelp() string {
	var bindings []key.Binding
	if m.state.Open {
		bindings = m.keys.OpenHelp()
	} else {
		bindings = m.keys.ClosedHelp()
	}
	return m.help.ShortHelpView(bindings)
}
