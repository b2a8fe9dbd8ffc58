package theme

import (
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Title      lipgloss.Style
	ModePill   lipgloss.Style
	Section    lipgloss.Style
	ChatCount  lipgloss.Style
	ActiveLine lipgloss.Style
	MetaLabel  lipgloss.Style
	MetaValue  lipgloss.Style
	StateIdle  lipgloss.Style
	StateWarn  lipgloss.Style
	StateLoad  lipgloss.Style

	LinkName        lipgloss.Style
	LinkNamePending lipgloss.Style
	LinkStatus      lipgloss.Style
	LinkIcon        lipgloss.Style
	LinkURL         lipgloss.Style
	ChatTitle       lipgloss.Style
	ChatDenied      lipgloss.Style
	CheckOn         lipgloss.Style
	CheckOff        lipgloss.Style
	Button          lipgloss.Style
	ButtonFocus     lipgloss.Style
}

// Dark is the default palette (Catppuccin Mocha).
func Dark() Theme {
	cpRosewater := lipgloss.Color("#f5e0dc")
	cpMauve := lipgloss.Color("#cba6f7")
	cpRed := lipgloss.Color("#f38ba8")
	cpPeach := lipgloss.Color("#fab387")
	cpYellow := lipgloss.Color("#f9e2af")
	cpGreen := lipgloss.Color("#a6e3a1")
	cpTeal := lipgloss.Color("#94e2d5")
	cpLavender := lipgloss.Color("#b4befe")
	cpText := lipgloss.Color("#cdd6f4")
	cpSubtext0 := lipgloss.Color("#a6adc8")
	cpSubtext1 := lipgloss.Color("#bac2de")
	cpOverlay1 := lipgloss.Color("#7f849c")
	cpSurface0 := lipgloss.Color("#313244")

	return Theme{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(cpMauve),
		ModePill:   lipgloss.NewStyle().Foreground(cpLavender).Background(cpSurface0).Padding(0, 1),
		Section:    lipgloss.NewStyle().Bold(true).Foreground(cpTeal),
		ChatCount:  lipgloss.NewStyle().Foreground(cpYellow).Bold(true),
		ActiveLine: lipgloss.NewStyle().Background(cpSurface0).Foreground(cpText),
		MetaLabel:  lipgloss.NewStyle().Foreground(cpOverlay1),
		MetaValue:  lipgloss.NewStyle().Foreground(cpSubtext1),
		StateIdle:  lipgloss.NewStyle().Foreground(cpGreen),
		StateWarn:  lipgloss.NewStyle().Foreground(cpRed),
		StateLoad:  lipgloss.NewStyle().Foreground(cpPeach),

		LinkName:        lipgloss.NewStyle().Bold(true).Foreground(cpText),
		LinkNamePending: lipgloss.NewStyle().Foreground(cpSubtext0),
		LinkStatus:      lipgloss.NewStyle().Foreground(cpSubtext0),
		LinkIcon:        lipgloss.NewStyle().Foreground(cpLavender),
		LinkURL:         lipgloss.NewStyle().Foreground(cpTeal).Underline(true),
		ChatTitle:       lipgloss.NewStyle().Foreground(cpText),
		ChatDenied:      lipgloss.NewStyle().Foreground(cpOverlay1).Italic(true),
		CheckOn:         lipgloss.NewStyle().Foreground(cpGreen).Bold(true),
		CheckOff:        lipgloss.NewStyle().Foreground(cpOverlay1),
		Button:          lipgloss.NewStyle().Foreground(cpSubtext1).Background(cpSurface0),
		ButtonFocus:     lipgloss.NewStyle().Foreground(cpSurface0).Background(cpRosewater).Bold(true),
	}
}

// Light is the alternate palette (Catppuccin Latte).
func Light() Theme {
	cpRosewater := lipgloss.Color("#dc8a78")
	cpMauve := lipgloss.Color("#8839ef")
	cpRed := lipgloss.Color("#d20f39")
	cpPeach := lipgloss.Color("#fe640b")
	cpYellow := lipgloss.Color("#df8e1d")
	cpGreen := lipgloss.Color("#40a02b")
	cpTeal := lipgloss.Color("#179299")
	cpLavender := lipgloss.Color("#7287fd")
	cpText := lipgloss.Color("#4c4f69")
	cpSubtext0 := lipgloss.Color("#6c6f85")
	cpSubtext1 := lipgloss.Color("#5c5f77")
	cpOverlay1 := lipgloss.Color("#8c8fa1")
	cpSurface0 := lipgloss.Color("#ccd0da")

	return Theme{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(cpMauve),
		ModePill:   lipgloss.NewStyle().Foreground(cpLavender).Background(cpSurface0).Padding(0, 1),
		Section:    lipgloss.NewStyle().Bold(true).Foreground(cpTeal),
		ChatCount:  lipgloss.NewStyle().Foreground(cpYellow).Bold(true),
		ActiveLine: lipgloss.NewStyle().Background(cpSurface0).Foreground(cpText),
		MetaLabel:  lipgloss.NewStyle().Foreground(cpOverlay1),
		MetaValue:  lipgloss.NewStyle().Foreground(cpSubtext1),
		StateIdle:  lipgloss.NewStyle().Foreground(cpGreen),
		StateWarn:  lipgloss.NewStyle().Foreground(cpRed),
		StateLoad:  lipgloss.NewStyle().Foreground(cpPeach),

		LinkName:        lipgloss.NewStyle().Bold(true).Foreground(cpText),
		LinkNamePending: lipgloss.NewStyle().Foreground(cpSubtext0),
		LinkStatus:      lipgloss.NewStyle().Foreground(cpSubtext0),
		LinkIcon:        lipgloss.NewStyle().Foreground(cpLavender),
		LinkURL:         lipgloss.NewStyle().Foreground(cpTeal).Underline(true),
		ChatTitle:       lipgloss.NewStyle().Foreground(cpText),
		ChatDenied:      lipgloss.NewStyle().Foreground(cpOverlay1).Italic(true),
		CheckOn:         lipgloss.NewStyle().Foreground(cpGreen).Bold(true),
		CheckOff:        lipgloss.NewStyle().Foreground(cpOverlay1),
		Button:          lipgloss.NewStyle().Foreground(cpSubtext1).Background(cpSurface0),
		ButtonFocus:     lipgloss.NewStyle().Foreground(cpSurface0).Background(cpRosewater).Bold(true),
	}
}

// ByName resolves a configured theme name; anything but "light" is dark.
func ByName(name string) Theme {
	if name == "light" {
		return Light()
	}
	return Dark()
}

// StyleLinkName styles a link row name; pending marks a placeholder link
// that has no url yet.
func (t Theme) StyleLinkName(pending bool, name string) string {
	if name == "" {
		return name
	}
	if pending {
		return t.LinkNamePending.Render(name)
	}
	return t.LinkName.Render(name)
}

func (t Theme) RenderActiveLine(active bool, line string) string {
	if !active {
		return line
	}
	return t.ActiveLine.Render(line)
}

// Notifier is the process-wide palette change source. Screens that cache
// rendered fragments subscribe to drop those caches on a palette swap,
// and call the returned func to unsubscribe on teardown.
type Notifier struct {
	current Theme
	nextID  int
	subs    map[int]func()
}

func NewNotifier(initial Theme) *Notifier {
	return &Notifier{current: initial, subs: make(map[int]func())}
}

func (n *Notifier) Current() Theme { return n.current }

// Apply swaps the palette and notifies every subscriber.
func (n *Notifier) Apply(th Theme) {
	n.current = th
	for _, fn := range n.subs {
		fn()
	}
}

// Subscribe registers fn for palette changes.
func (n *Notifier) Subscribe(fn func()) (unsubscribe func()) {
	n.nextID++
	id := n.nextID
	n.subs[id] = fn
	return func() { delete(n.subs, id) }
}
