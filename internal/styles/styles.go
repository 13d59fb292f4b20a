package styles

import "github.com/charmbracelet/lipgloss"

// Color palette - default dark theme
var (
	Primary = lipgloss.Color("#7C3AED") // Purple
	Accent  = lipgloss.Color("#F59E0B") // Amber

	// Status colors
	Success = lipgloss.Color("#10B981") // Green
	Warning = lipgloss.Color("#F59E0B") // Amber
	Error   = lipgloss.Color("#EF4444") // Red

	// Text colors
	TextPrimary   = lipgloss.Color("#F9FAFB")
	TextSecondary = lipgloss.Color("#9CA3AF")
	TextMuted     = lipgloss.Color("#6B7280")

	// Background colors
	BgSecondary = lipgloss.Color("#1F2937")
	BgTertiary  = lipgloss.Color("#374151")

	// Border colors
	BorderNormal = lipgloss.Color("#374151")
	BorderActive = lipgloss.Color("#7C3AED")

	// Markdown render theme for the preview pane (updated by ApplyTheme)
	CurrentMarkdownTheme = "dark"
)

// Panel styles
var (
	PanelActive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderActive).
			Padding(0, 1)

	PanelInactive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderNormal).
			Padding(0, 1)

	PanelHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextPrimary).
			MarginBottom(1)
)

// Text styles
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	Body = lipgloss.NewStyle().
		Foreground(TextPrimary)

	Muted = lipgloss.NewStyle().
		Foreground(TextMuted)

	KeyHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(BgTertiary).
		Padding(0, 1)

	Logo = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)
)

// Note list styles
var (
	ListItem = lipgloss.NewStyle().
			Foreground(TextPrimary).
			Padding(0, 1)

	ListItemSelected = lipgloss.NewStyle().
				Foreground(TextPrimary).
				Background(BgTertiary).
				Bold(true).
				Padding(0, 1)

	ListMeta = lipgloss.NewStyle().
			Foreground(TextMuted)
)

// Editor styles
var (
	ToggleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextPrimary)

	ToggleHeaderActive = lipgloss.NewStyle().
				Bold(true).
				Foreground(Primary)

	ToggleMarker = lipgloss.NewStyle().
			Foreground(TextSecondary)

	ToggleContent = lipgloss.NewStyle().
			Foreground(TextSecondary).
			PaddingLeft(2)

	ToggleContentActive = lipgloss.NewStyle().
				Foreground(TextPrimary).
				PaddingLeft(2)

	NoteTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Accent)
)

// Footer and feedback styles
var (
	Footer = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(BgSecondary).
		Padding(0, 1)

	ToastSuccess = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(Success).
			Padding(0, 1)

	ToastError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(Error).
			Padding(0, 1)
)

// Dialog styles
var (
	DialogBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	DialogButton = lipgloss.NewStyle().
			Foreground(TextPrimary).
			Background(BgTertiary).
			Padding(0, 2)

	DialogButtonActive = lipgloss.NewStyle().
				Foreground(TextPrimary).
				Background(Primary).
				Bold(true).
				Padding(0, 2)
)
