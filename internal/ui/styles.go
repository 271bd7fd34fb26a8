package ui

import "charm.land/lipgloss/v2"

// Hex values kept as strings for the header gradient interpolation.
const (
	hexPrimary = "#7C3AED"
	hexBg      = "#1F2937"
	hexText    = "#F9FAFB"
	hexMuted   = "#9CA3AF"
)

// Color palette - Purple + Cyan/Teal theme
var (
	ColorPrimary     = lipgloss.Color(hexPrimary) // Purple
	ColorSecondary   = lipgloss.Color("#06B6D4")  // Cyan
	ColorMuted       = lipgloss.Color("#6B7280")  // Gray
	ColorBorder      = lipgloss.Color("#374151")  // Dark gray
	ColorBorderFocus = lipgloss.Color(hexPrimary) // Purple when focused
	ColorBg          = lipgloss.Color(hexBg)      // Dark background
	ColorText        = lipgloss.Color(hexText)    // Light text
	ColorTextMuted   = lipgloss.Color("#B0B8C4")  // Muted text
	ColorUser        = lipgloss.Color("#A78BFA")  // Light purple for visitor messages
	ColorBot         = lipgloss.Color("#22D3EE")  // Bright cyan for bot messages
	ColorWarning     = lipgloss.Color("#F59E0B")  // Amber for the urgent indicator
	ColorError       = lipgloss.Color("#EF4444")  // Red for errors
	ColorSuccess     = lipgloss.Color("#10B981")  // Green for success
)

// Header styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Background(ColorPrimary).
			Padding(0, 1)

	HeaderUrgentStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorWarning)
)

// Footer styles
var (
	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderFocus)
)

// Chat styles
var (
	ChatUserStyle = lipgloss.NewStyle().
			Foreground(ColorUser).
			Bold(true)

	ChatBotStyle = lipgloss.NewStyle().
			Foreground(ColorBot).
			Bold(true)

	ChatMessageStyle = lipgloss.NewStyle().
				Foreground(ColorText)

	ChatInputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorderFocus).
			Padding(0, 1)
)

// Quick reply bar styles
var (
	QuickReplyNumberStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSecondary)

	QuickReplyLabelStyle = lipgloss.NewStyle().
				Foreground(ColorText)

	QuickReplyUrgentStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorWarning)
)

// Launcher styles (the closed-widget bubble)
var (
	LauncherBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(1, 3)

	LauncherTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)

	LauncherHintStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted).
				Italic(true)

	UnreadBadgeStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorText).
				Background(ColorError).
				Padding(0, 1)
)

// Status styles
var (
	StatusTypingStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Italic(true)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)
)

// Markdown rendering styles
var (
	MarkdownH1Style = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A78BFA")).
			MarginTop(1)

	MarkdownH2Style = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#C4B5FD")).
			MarginTop(1)

	MarkdownH3Style = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBot)

	MarkdownBoldStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorText)

	MarkdownItalicStyle = lipgloss.NewStyle().
				Italic(true).
				Foreground(ColorText)

	MarkdownInlineCodeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#67E8F9")).
				Background(lipgloss.Color("#1E1E2E"))

	MarkdownListBulletStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary)

	MarkdownLinkStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#67E8F9")).
				Underline(true)
)
