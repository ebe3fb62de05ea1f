package ui

import "github.com/charmbracelet/lipgloss"

// Colors used in the application.
var (
	colorPrimary   = lipgloss.Color("62")  // Purple
	colorSecondary = lipgloss.Color("241") // Gray
	colorMuted     = lipgloss.Color("240") // Darker gray
	colorHighlight = lipgloss.Color("212") // Pink
	colorPremium   = lipgloss.Color("220") // Simpsons yellow
)

// Header style for the screen title.
var Header = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorPremium).
	Padding(0, 1)

// Card style for an unselected news card.
var Card = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorMuted).
	Padding(0, 1)

// SelectedCard style for the card under the cursor.
var SelectedCard = Card.
	BorderForeground(colorHighlight)

// CardTitle style for the title line of a card.
var CardTitle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255"))

// CardMeta style for the relative date and image reference.
var CardMeta = lipgloss.NewStyle().
	Foreground(colorSecondary)

// CardBody style for the short description.
var CardBody = lipgloss.NewStyle().
	Foreground(lipgloss.Color("252"))

// PremiumBadge marks premium news.
var PremiumBadge = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("0")).
	Background(colorPremium).
	Padding(0, 1)

// Modal style for the detail overlay.
var Modal = lipgloss.NewStyle().
	Border(lipgloss.DoubleBorder()).
	BorderForeground(colorPrimary).
	Padding(1, 2)

// ModalTitle style for the title inside the modal.
var ModalTitle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorHighlight).
	MarginBottom(1)

// StatusBar style for the bottom status bar.
var StatusBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// StatusBarKey style for key hints in status bar.
var StatusBarKey = lipgloss.NewStyle().
	Foreground(colorHighlight).
	Bold(true)

// StatusBarText style for descriptive text in status bar.
var StatusBarText = lipgloss.NewStyle().
	Foreground(colorSecondary)

// ErrorStyle for displaying errors.
var ErrorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("196")).
	Bold(true).
	Padding(0, 1)

// HelpStyle for empty-state text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(colorMuted).
	Padding(1, 2)

// SpinnerStyle colors the loading spinner.
var SpinnerStyle = lipgloss.NewStyle().
	Foreground(colorHighlight)
