package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/parleyhq/parley/internal/logger"
	"github.com/parleyhq/parley/internal/widget"
)

// Chat represents the open widget: the conversation viewport, the numbered
// quick-reply bar, and the message input.
type Chat struct {
	viewport viewport.Model
	input    textarea.Model
	width    int
	height   int

	businessName string
	messages     []widget.Message
	quickReplies []widget.QuickReplyOption
	typing       bool
	typingFrame  int
}

// NewChat creates a new chat panel
func NewChat(businessName string) *Chat {
	ti := textarea.New()
	ti.Placeholder = "Type your message..."
	ti.CharLimit = 0
	ti.SetHeight(TextareaHeight)
	ti.ShowLineNumbers = false
	ti.Prompt = ""
	ti.Focus()

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	c := &Chat{
		viewport:     vp,
		input:        ti,
		businessName: businessName,
	}
	c.updateContent()
	return c
}

// SetSize sets the chat panel dimensions
func (c *Chat) SetSize(width, height int) {
	c.width = width
	c.height = height

	// Viewport fills what the input area, quick-reply bar, and panel border leave
	viewportHeight := height - InputTotalHeight - QuickReplyBarHeight - BorderSize
	if viewportHeight < 1 {
		viewportHeight = 1
	}

	innerWidth := width - BorderSize
	if innerWidth < 1 {
		innerWidth = 1
	}

	c.viewport.SetWidth(innerWidth)
	c.viewport.SetHeight(viewportHeight)
	c.input.SetWidth(innerWidth - InputPaddingWidth)

	c.updateContent()
}

// SetMessages replaces the rendered conversation. Quick replies attached to
// the latest bot message become the active numbered options.
func (c *Chat) SetMessages(msgs []widget.Message) {
	c.messages = msgs
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Sender == widget.SenderBot {
			if len(msgs[i].QuickReplies) > 0 {
				c.quickReplies = msgs[i].QuickReplies
			}
			break
		}
	}
	c.updateContent()
}

// SetQuickReplies sets the numbered options shown below the conversation.
func (c *Chat) SetQuickReplies(opts []widget.QuickReplyOption) {
	c.quickReplies = opts
	c.updateContent()
}

// QuickReplies returns the currently displayed options in display order.
func (c *Chat) QuickReplies() []widget.QuickReplyOption {
	return c.quickReplies
}

// SetTyping toggles the animated typing indicator line.
func (c *Chat) SetTyping(typing bool) {
	if typing && !c.typing {
		c.typingFrame = 0
	}
	c.typing = typing
	c.updateContent()
}

// IsTyping returns whether the typing indicator is showing
func (c *Chat) IsTyping() bool {
	return c.typing
}

// HandleTypingTick advances the typing animation and schedules the next tick
// while the indicator is still showing.
func (c *Chat) HandleTypingTick() tea.Cmd {
	if !c.typing {
		return nil
	}
	c.typingFrame++
	if c.typingFrame >= len(typingFrames) {
		c.typingFrame = 0
	}
	c.updateContent()
	return TypingTick()
}

// Input returns the trimmed input text
func (c *Chat) Input() string {
	val := strings.TrimSpace(c.input.Value())
	logger.Log("Chat.Input: value=%q, len=%d", val, len(val))
	return val
}

// ClearInput clears the input field
func (c *Chat) ClearInput() {
	c.input.Reset()
}

// SetInput sets the input field value
func (c *Chat) SetInput(value string) {
	c.input.SetValue(value)
}

// Update forwards messages to the input and viewport. Scroll keys go to the
// viewport; all other keys go only to the input so spacebar and arrows never
// scroll while typing.
func (c *Chat) Update(msg tea.Msg) (*Chat, tea.Cmd) {
	if keyMsg, isKey := msg.(tea.KeyPressMsg); isKey {
		switch keyMsg.String() {
		case "pgup", "pgdown", "page up", "page down", "home", "end":
			var cmd tea.Cmd
			c.viewport, cmd = c.viewport.Update(msg)
			return c, cmd
		}

		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	cmds = append(cmds, cmd)

	c.viewport, cmd = c.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return c, tea.Batch(cmds...)
}

// updateContent rebuilds the viewport content from the message log
func (c *Chat) updateContent() {
	wrapWidth := c.viewport.Width()

	var b strings.Builder
	for i, msg := range c.messages {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(c.renderMessage(msg, wrapWidth))
		b.WriteString("\n")
	}

	if c.typing {
		if len(c.messages) > 0 {
			b.WriteString("\n")
		}
		b.WriteString(renderTypingIndicator(c.businessName, c.typingFrame))
		b.WriteString("\n")
	}

	c.viewport.SetContent(b.String())
	c.viewport.GotoBottom()
}

// renderMessage renders one log entry: a styled sender label followed by the
// wrapped, markdown-formatted body.
func (c *Chat) renderMessage(msg widget.Message, wrapWidth int) string {
	var label string
	switch msg.Sender {
	case widget.SenderUser:
		label = ChatUserStyle.Render("You")
	case widget.SenderBot:
		label = ChatBotStyle.Render(c.businessName)
	default:
		label = ChatMessageStyle.Render(msg.Sender.String())
	}

	body := renderMarkdown(wrapText(msg.Content, wrapWidth))
	return label + "\n" + body
}

// renderQuickReplyBar renders the numbered quick-reply options on one line
func (c *Chat) renderQuickReplyBar() string {
	if len(c.quickReplies) == 0 {
		return ""
	}

	var parts []string
	for i, opt := range c.quickReplies {
		num := QuickReplyNumberStyle.Render(fmt.Sprintf("%d", i+1))
		labelStyle := QuickReplyLabelStyle
		if opt.Action.Kind == widget.ActionEscalate {
			labelStyle = QuickReplyUrgentStyle
		}
		parts = append(parts, num+" "+labelStyle.Render(opt.Label))
	}

	sep := "  " + lipgloss.NewStyle().Foreground(ColorBorder).Render("|") + "  "
	return " " + strings.Join(parts, sep)
}

// View renders the chat panel
func (c *Chat) View() string {
	panelHeight := c.height - InputTotalHeight - QuickReplyBarHeight
	if panelHeight < BorderSize+1 {
		panelHeight = BorderSize + 1
	}

	panel := PanelFocusedStyle.
		Width(c.width - BorderSize).
		Height(panelHeight - BorderSize).
		Render(c.viewport.View())

	inputView := ChatInputStyle.
		Width(c.width - BorderSize - InputPaddingWidth).
		Render(c.input.View())

	sections := []string{panel}
	if bar := c.renderQuickReplyBar(); bar != "" {
		sections = append(sections, bar)
	}
	sections = append(sections, inputView)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
