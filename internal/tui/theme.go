package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorSky      lipgloss.Color = "#89dceb"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext1 lipgloss.Color = "#bac2de"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

// Semantic aliases.
const (
	colorBrand   = colorMauve
	colorAccent  = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
	colorInfo    = colorTeal
	colorEditing = colorPeach
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)

	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	headerAppStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Background(colorSurface0).
			Bold(true).
			Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorOverlay1).
				Background(colorMantle).
				Padding(0, 1)

	tabSepStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0).
			Background(colorMantle)

	statusStyle    = lipgloss.NewStyle().Foreground(colorSubtext0)
	statusErrStyle = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	statusOKStyle  = lipgloss.NewStyle().Foreground(colorSuccess)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Padding(0, 2)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	selectedCardStyle = cardStyle.
				BorderForeground(colorAccent)

	statLabelStyle = lipgloss.NewStyle().Foreground(colorSubtext0)
	statValueStyle = lipgloss.NewStyle().Foreground(colorText).Bold(true)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)

	editModalStyle   = modalStyle.BorderForeground(colorEditing)
	dangerModalStyle = modalStyle.BorderForeground(colorError)

	labelStyle         = lipgloss.NewStyle().Foreground(colorSubtext1).Bold(true)
	requiredLabelStyle = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	mutedStyle         = lipgloss.NewStyle().Foreground(colorOverlay1)
	badgeStyle         = lipgloss.NewStyle().Foreground(colorBlue)
	activeStyle        = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	inactiveStyle      = lipgloss.NewStyle().Foreground(colorOverlay1).Bold(true)
	cursorStyle        = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	hintStyle          = lipgloss.NewStyle().Foreground(colorWarning)
	editingStyle       = lipgloss.NewStyle().Foreground(colorEditing).Bold(true)

	helpKeyStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorSubtext0)
	helpSepStyle  = lipgloss.NewStyle().Foreground(colorSurface2)
)

// orderStatusColor picks the badge color of an order status.
func orderStatusColor(status string) lipgloss.Color {
	switch status {
	case "Delivered":
		return colorSuccess
	case "In Transit":
		return colorSky
	case "Pending":
		return colorWarning
	default:
		return colorInfo
	}
}
