// Package tui provides styled console output using lipgloss for rich terminal UI.
package tui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Lazy initialization to avoid cold start penalty from lipgloss terminal detection
var (
	initOnce sync.Once

	// Colors
	colorPrimary   lipgloss.Color
	colorSecondary lipgloss.Color
	colorSuccess   lipgloss.Color
	colorWarning   lipgloss.Color
	colorError     lipgloss.Color
	colorMuted     lipgloss.Color

	// Text styles
	StyleTitle    lipgloss.Style
	StylePackage  lipgloss.Style
	StyleManager  lipgloss.Style
	StyleVersion  lipgloss.Style
	StyleCommand  lipgloss.Style
	StyleMuted    lipgloss.Style
	StyleFound    lipgloss.Style
	StyleMissing  lipgloss.Style
	StyleDegraded lipgloss.Style

	// Box styles
	StyleBox        lipgloss.Style
	StyleInfoBox    lipgloss.Style
	StyleWarningBox lipgloss.Style
	StyleErrorBox   lipgloss.Style

	// Table styles
	StyleTableHeader lipgloss.Style
	StyleTableCell   lipgloss.Style
	StyleTableBorder lipgloss.Style

	// Indicator strings
	CheckMark   string
	CrossMark   string
	WarningMark string
	Bullet      string
	Arrow       string
)

// colorProfile picks TrueColor for terminals and plain ASCII otherwise, so
// piped output and NO_COLOR stay free of escape codes.
func colorProfile() termenv.Profile {
	fd := os.Stdout.Fd()
	if termenv.EnvNoColor() || !(isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)) {
		return termenv.Ascii
	}
	return termenv.TrueColor
}

// initStyles initializes all lipgloss styles lazily
func initStyles() {
	initOnce.Do(func() {
		// Setting the profile explicitly skips lipgloss's own terminal queries.
		lipgloss.SetColorProfile(colorProfile())

		colorPrimary = lipgloss.Color("39")    // Cyan
		colorSecondary = lipgloss.Color("213") // Magenta/Pink
		colorSuccess = lipgloss.Color("42")    // Green
		colorWarning = lipgloss.Color("214")   // Orange/Yellow
		colorError = lipgloss.Color("196")     // Red
		colorMuted = lipgloss.Color("245")     // Gray

		StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

		StylePackage = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

		StyleManager = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSecondary)

		StyleVersion = lipgloss.NewStyle().
			Foreground(colorSecondary)

		StyleCommand = lipgloss.NewStyle().
			Foreground(colorSuccess)

		StyleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

		StyleFound = lipgloss.NewStyle().
			Foreground(colorSuccess)

		StyleMissing = lipgloss.NewStyle().
			Foreground(colorError)

		StyleDegraded = lipgloss.NewStyle().
			Foreground(colorWarning)

		StyleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

		StyleInfoBox = StyleBox.BorderForeground(colorPrimary)
		StyleWarningBox = StyleBox.BorderForeground(colorWarning)
		StyleErrorBox = StyleBox.BorderForeground(colorError)

		StyleTableHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			PaddingRight(2)

		StyleTableCell = lipgloss.NewStyle().
			PaddingRight(2)

		StyleTableBorder = StyleBox

		CheckMark = StyleFound.Render("✓")
		CrossMark = StyleMissing.Render("✗")
		WarningMark = StyleDegraded.Render("!")
		Bullet = StyleMuted.Render("•")
		Arrow = lipgloss.NewStyle().Foreground(colorPrimary).Render("→")
	})
}

// Init ensures styles are initialized. Call this before using any styles.
func Init() {
	initStyles()
}

// RenderTitle renders a styled title
func RenderTitle(text string) string {
	initStyles()
	return StyleTitle.Render(text)
}

// RenderPackage renders a package name
func RenderPackage(name string) string {
	initStyles()
	return StylePackage.Render(name)
}

// RenderManager renders a package manager name
func RenderManager(name string) string {
	initStyles()
	return StyleManager.Render(name)
}

// RenderVersion renders a version string with styling
func RenderVersion(version string) string {
	initStyles()
	return StyleVersion.Render(version)
}

// RenderCommand renders a shell command the user can copy
func RenderCommand(command string) string {
	initStyles()
	return StyleCommand.Render(command)
}

// RenderMuted renders text in a muted/dim style
func RenderMuted(text string) string {
	initStyles()
	return StyleMuted.Render(text)
}

// RenderInfoBox renders content in an info-styled box
func RenderInfoBox(content string) string {
	initStyles()
	return StyleInfoBox.Render(content)
}

// RenderWarningBox renders content in a warning-styled box
func RenderWarningBox(content string) string {
	initStyles()
	return StyleWarningBox.Render(content)
}

// GetCheckMark returns the styled checkmark indicator
func GetCheckMark() string {
	initStyles()
	return CheckMark
}

// GetCrossMark returns the styled cross indicator
func GetCrossMark() string {
	initStyles()
	return CrossMark
}

// GetWarningMark returns the styled warning indicator
func GetWarningMark() string {
	initStyles()
	return WarningMark
}
