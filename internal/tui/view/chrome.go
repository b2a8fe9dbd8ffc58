package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	tuitheme "foldergram/internal/tui/theme"
)

func Toolbar(inLinks, hasBox bool) string {
	if hasBox {
		return "tab/arrows move | space toggle | enter confirm | esc close"
	}
	if inLinks {
		return "j/k move | enter edit | m menu | c copy | o open | s share | Q qr | n name | d delete | v chats | a new link | r reload | esc back"
	}
	return "j/k move | enter open | r refresh | A contact | G group | T theme | ? help | q quit"
}

func Footer(screen, scope string, shown int, th tuitheme.Theme) string {
	parts := []string{
		th.MetaLabel.Render("screen") + " " + th.MetaValue.Render(screen),
		th.MetaLabel.Render("in") + " " + th.MetaValue.Render(scope),
		th.MetaValue.Render(fmt.Sprintf("%d shown", shown)),
	}
	return strings.Join(parts, " • ")
}

func Message(loading, hasWarning bool, status, warning string, th tuitheme.Theme) string {
	state := "idle"
	if loading {
		state = "loading"
	}
	if hasWarning {
		state = "warning"
	}
	main := "Ready"
	if status != "" {
		main = status
	} else if hasWarning {
		main = warning
	}
	stateLabel := th.StateIdle.Render("state")
	switch state {
	case "warning":
		stateLabel = th.StateWarn.Render("state")
	case "loading":
		stateLabel = th.StateLoad.Render("state")
	}
	return fmt.Sprintf("%s: %s | %s", stateLabel, state, th.MetaValue.Render(main))
}

// ButtonRow renders box footer buttons with the first one focused.
func ButtonRow(th tuitheme.Theme, labels ...string) string {
	if len(labels) == 0 {
		return ""
	}
	parts := make([]string, 0, len(labels))
	parts = append(parts, th.ButtonFocus.Render("[ "+labels[0]+" ]"))
	for _, label := range labels[1:] {
		parts = append(parts, th.Button.Render("[ "+label+" ]"))
	}
	return strings.Join(parts, "  ")
}

var boxFrame = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)

func BoxFrame(title string, body []string, th tuitheme.Theme) string {
	lines := append([]string{th.Title.Render(title), ""}, body...)
	return boxFrame.Render(strings.Join(lines, "\n"))
}

// CenterBox places a rendered box in the middle of the screen area.
func CenterBox(width, height int, box string) string {
	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
