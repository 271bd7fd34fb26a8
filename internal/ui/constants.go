// Package ui renders the chat widget: the launcher bubble shown while the
// widget is hidden, and the conversation panel (header, message viewport,
// quick-reply bar, input, footer) shown while it is open.
package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// TextareaHeight is the number of lines for the chat input textarea
	TextareaHeight = 3

	// TextareaBorderHeight is the border size around the textarea
	TextareaBorderHeight = 2

	// InputPaddingWidth is the horizontal padding inside the input area
	InputPaddingWidth = 2

	// InputTotalHeight is the total height of the input area (textarea + borders)
	InputTotalHeight = TextareaHeight + TextareaBorderHeight

	// QuickReplyBarHeight is the height of the numbered quick-reply bar
	QuickReplyBarHeight = 1

	// DefaultWrapWidth is the fallback width for text wrapping when the
	// viewport width is unknown
	DefaultWrapWidth = 80
)
