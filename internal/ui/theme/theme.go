package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: civic blue background with white cards
var (
	Primary   = lipgloss.Color("#004C97") // Civic Blue
	Secondary = lipgloss.Color("#60A5FA") // Sky
	Accent    = lipgloss.Color("#FBBF24") // Gold
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#EF4444") // Red
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Ink       = lipgloss.Color("#0F172A") // Card text
	BgDark    = lipgloss.Color("#0B1F3A") // Deep Navy
	BgCard    = lipgloss.Color("#FFFFFF") // Card White
	BgPanel   = lipgloss.Color("#12325C") // Panel Blue
	Border    = lipgloss.Color("#334155") // Slate
	Button    = lipgloss.Color("#1E3A8A") // Button Blue
)

// Confetti colors cycle through these.
var ConfettiColors = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(Accent).Bold(true),
	lipgloss.NewStyle().Foreground(Success).Bold(true),
	lipgloss.NewStyle().Foreground(Error).Bold(true),
	lipgloss.NewStyle().Foreground(Secondary).Bold(true),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#F472B6")).Bold(true),
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgPanel).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgPanel).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Foreground(Ink).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ChoiceButton = lipgloss.NewStyle().
			Background(Button).
			Foreground(Text).
			Bold(true).
			Padding(0, 1)

	ChoiceFocused = lipgloss.NewStyle().
			Background(Accent).
			Foreground(Ink).
			Bold(true).
			Padding(0, 1)

	ChoiceCorrect = lipgloss.NewStyle().
			Background(Success).
			Foreground(Ink).
			Bold(true).
			Padding(0, 1)

	ChoiceWrong = lipgloss.NewStyle().
			Background(Error).
			Foreground(Text).
			Bold(true).
			Padding(0, 1)

	ChoiceInert = lipgloss.NewStyle().
			Foreground(TextDim).
			Padding(0, 1)

	Slot = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(Text).
		Padding(0, 1)

	SlotValid = Slot.
			BorderForeground(Success).
			Foreground(Success)

	SlotInvalid = Slot.
			BorderForeground(Error).
			Foreground(Error)
)

// Buttons
var (
	ButtonActive = lipgloss.NewStyle().
			Background(Accent).
			Foreground(Ink).
			Bold(true).
			Padding(0, 1)

	ButtonInactive = lipgloss.NewStyle().
			Background(Button).
			Foreground(Text).
			Padding(0, 1)
)
