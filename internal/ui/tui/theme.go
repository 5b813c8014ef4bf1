package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style

	Label    lipgloss.Style
	Focused  lipgloss.Style
	Blurred  lipgloss.Style
	Result   lipgloss.Style
	Pulse    lipgloss.Style
	ToastErr lipgloss.Style
	ToastInf lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),

		Label:   lipgloss.NewStyle().Width(12).Faint(true),
		Focused: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Blurred: lipgloss.NewStyle(),
		Result:  lipgloss.NewStyle().Bold(true),
		Pulse: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("86")),
		ToastErr: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("160")),
		ToastInf: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("114")),
	}
}

func (t Theme) toastStyle(s severity) lipgloss.Style {
	if s == severityInfo {
		return t.ToastInf
	}
	return t.ToastErr
}
