package styles

import "github.com/charmbracelet/lipgloss"

// ApplyTheme switches the palette. Unknown names keep the current
// palette. Style values capture colors at assignment, so the derived
// styles are rebuilt after every switch.
func ApplyTheme(name string) {
	switch name {
	case "light":
		TextPrimary = lipgloss.Color("#111827")
		TextSecondary = lipgloss.Color("#4B5563")
		TextMuted = lipgloss.Color("#6B7280")
		BgSecondary = lipgloss.Color("#E5E7EB")
		BgTertiary = lipgloss.Color("#D1D5DB")
		BorderNormal = lipgloss.Color("#9CA3AF")
		CurrentMarkdownTheme = "light"
	case "dark", "default":
		TextPrimary = lipgloss.Color("#F9FAFB")
		TextSecondary = lipgloss.Color("#9CA3AF")
		TextMuted = lipgloss.Color("#6B7280")
		BgSecondary = lipgloss.Color("#1F2937")
		BgTertiary = lipgloss.Color("#374151")
		BorderNormal = lipgloss.Color("#374151")
		CurrentMarkdownTheme = "dark"
	default:
		return
	}
	rebuildStyles()
}

// rebuildStyles reassigns the derived styles from the current palette.
func rebuildStyles() {
	PanelActive = PanelActive.BorderForeground(BorderActive)
	PanelInactive = PanelInactive.BorderForeground(BorderNormal)
	PanelHeader = PanelHeader.Foreground(TextPrimary)
	Title = Title.Foreground(TextPrimary)
	Body = Body.Foreground(TextPrimary)
	Muted = Muted.Foreground(TextMuted)
	KeyHint = KeyHint.Foreground(TextMuted).Background(BgTertiary)
	ListItem = ListItem.Foreground(TextPrimary)
	ListItemSelected = ListItemSelected.Foreground(TextPrimary).Background(BgTertiary)
	ListMeta = ListMeta.Foreground(TextMuted)
	ToggleHeader = ToggleHeader.Foreground(TextPrimary)
	ToggleMarker = ToggleMarker.Foreground(TextSecondary)
	ToggleContent = ToggleContent.Foreground(TextSecondary)
	ToggleContentActive = ToggleContentActive.Foreground(TextPrimary)
	Footer = Footer.Foreground(TextMuted).Background(BgSecondary)
	DialogButton = DialogButton.Foreground(TextPrimary).Background(BgTertiary)
}
