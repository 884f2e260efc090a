package studio

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/alpaca/internal/avatar"
)

// View renders the current model state
func (m Model) View() string {
	var content strings.Builder

	content.WriteString(m.renderHeader())
	content.WriteString("\n")

	if banner := m.renderBanner(); banner != "" {
		content.WriteString(banner)
		content.WriteString("\n")
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		previewStyle.Render(m.preview),
		listStyle.Render(m.renderOptions()),
	)
	content.WriteString(body)
	content.WriteString("\n")

	content.WriteString(shareStyle.Render("code: " + m.selection.String()))
	content.WriteString("\n")

	content.WriteString(m.renderFooter())
	return content.String()
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("Alpaca Studio")

	tabs := make([]string, 0, len(avatar.Categories()))
	for i, c := range avatar.Categories() {
		label := fmt.Sprintf("%d %s", i+1, c)
		if c == m.tab {
			tabs = append(tabs, activeTabStyle.Render(label))
			continue
		}
		tabs = append(tabs, tabStyle.Render(label))
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func (m Model) renderBanner() string {
	switch m.banner {
	case bannerSuccess:
		return successBannerStyle.Render("✓ " + m.bannerText)
	case bannerError, bannerSize:
		return errorBannerStyle.Render("✗ " + m.bannerText)
	default:
		return ""
	}
}

func (m Model) renderOptions() string {
	current := m.selection.Get(m.tab)
	opts := avatar.OptionsFor(m.tab)

	items := make([]string, 0, len(opts))
	for i, opt := range opts {
		label := opt.Label
		if m.tab.IsColor() {
			label = fmt.Sprintf("%s %s", swatch(opt.ID), opt.Label)
		}

		mark := "  "
		if opt.ID == current {
			mark = checkStyle.Render("✓ ")
		}

		line := mark + label
		if i == m.cursor {
			items = append(items, selectedItemStyle.Render(line))
			continue
		}
		items = append(items, itemStyle.Render(line))
	}
	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

func (m Model) renderFooter() string {
	status := ""
	if m.exporting {
		status = fmt.Sprintf("%s Exporting %s...\n", m.spinner.View(), m.output)
	}
	return footerStyle.Render(status + m.help.View(m.keys))
}
