package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// Header represents the top header bar
type Header struct {
	width        int
	businessName string
	unread       int
	urgent       bool
}

// NewHeader creates a new header
func NewHeader(businessName string) *Header {
	return &Header{businessName: businessName}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetUnread sets the unread count shown on the right
func (h *Header) SetUnread(n int) {
	h.unread = n
}

// SetUrgent toggles the urgent indicator
func (h *Header) SetUrgent(urgent bool) {
	h.urgent = urgent
}

// View renders the header
func (h *Header) View() string {
	titleText := " " + h.businessName

	var rightText string
	if h.urgent {
		rightText = "URGENT "
	}
	if h.unread > 0 {
		rightText += fmt.Sprintf("%d unread ", h.unread)
	}

	paddingLen := h.width - len(titleText) - len(rightText)
	if paddingLen < 0 {
		paddingLen = 0
	}

	fullContent := titleText + strings.Repeat(" ", paddingLen) + rightText

	return h.renderGradient(fullContent)
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the content with a gradient background fading from
// the primary color into the main background.
func (h *Header) renderGradient(content string) string {
	if len(content) == 0 {
		return ""
	}

	startR, startG, startB := parseHexColor(hexPrimary)
	endR, endG, endB := parseHexColor(hexBg)

	textColor := lipgloss.Color(hexText)

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	titleLen := len(h.businessName) + 1

	// The URGENT marker, if present, gets the warning color
	urgentStart := -1
	if h.urgent {
		urgentStart = strings.Index(content, "URGENT")
	}

	for i, r := range runes {
		// Interpolation factor (0.0 to 1.0)
		t := float64(i) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		bgColor := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))

		inUrgent := urgentStart >= 0 && i >= urgentStart && i < urgentStart+len("URGENT")

		style := lipgloss.NewStyle().
			Background(bgColor).
			Bold(i < titleLen || inUrgent)

		if inUrgent {
			style = style.Foreground(ColorWarning)
		} else {
			style = style.Foreground(textColor)
		}

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
