package studio

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor = lipgloss.Color("99")  // Purple
	successColor = lipgloss.Color("42")  // Green
	errorColor   = lipgloss.Color("196") // Red
	mutedColor   = lipgloss.Color("245") // Gray
	accentColor  = lipgloss.Color("212") // Pink

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingLeft(1).
			PaddingRight(1)

	tabStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			PaddingLeft(1).
			PaddingRight(1)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			Underline(true).
			PaddingLeft(1).
			PaddingRight(1)

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Foreground(accentColor).
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderLeft(true).
				BorderForeground(primaryColor)

	checkStyle = lipgloss.NewStyle().Foreground(successColor).Bold(true)

	shareStyle = lipgloss.NewStyle().Foreground(mutedColor).Italic(true)

	previewStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor)

	listStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Width(30)

	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(mutedColor).
			MarginTop(1)

	errorBannerStyle = lipgloss.NewStyle().
				Foreground(errorColor).
				Background(lipgloss.Color("52")).
				Bold(true).
				Padding(0, 1)

	successBannerStyle = lipgloss.NewStyle().
				Foreground(successColor).
				Background(lipgloss.Color("22")).
				Bold(true).
				Padding(0, 1)

	spinnerStyle = lipgloss.NewStyle().Foreground(accentColor)
)

// swatch renders a two-cell block filled with a color option.
func swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}
