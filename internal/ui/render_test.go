package ui

import (
	"strings"
	"testing"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		maxWidth int
	}{
		{
			name:     "wraps long lines",
			input:    strings.Repeat("word ", 30),
			width:    20,
			maxWidth: 20,
		},
		{
			name:     "zero width falls back to default",
			input:    "short line",
			width:    0,
			maxWidth: DefaultWrapWidth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := wrapText(tt.input, tt.width)
			for _, line := range strings.Split(out, "\n") {
				if len(line) > tt.maxWidth {
					t.Errorf("line %q exceeds width %d", line, tt.maxWidth)
				}
			}
		})
	}
}

func TestRenderMarkdownPreservesText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		expects []string
	}{
		{
			name:    "plain text passes through",
			input:   "We open at 8am.",
			expects: []string{"We open at 8am."},
		},
		{
			name:    "bold markers are stripped",
			input:   "This is **important** news",
			expects: []string{"important", "news"},
		},
		{
			name:    "headers keep their text",
			input:   "# Opening hours\nMonday to Friday",
			expects: []string{"Opening hours", "Monday to Friday"},
		},
		{
			name:    "list bullets are rendered",
			input:   "- first\n- second",
			expects: []string{"•", "first", "second"},
		},
		{
			name:    "link text and url survive",
			input:   "See [our site](https://example.com)",
			expects: []string{"our site", "https://example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := renderMarkdown(tt.input)
			for _, want := range tt.expects {
				if !strings.Contains(out, want) {
					t.Errorf("output %q missing %q", out, want)
				}
			}
		})
	}
}

func TestRenderMarkdownCodeBlock(t *testing.T) {
	input := "```go\nfmt.Println(\"hi\")\n```"
	out := renderMarkdown(input)

	if strings.Contains(out, "```") {
		t.Error("code fences should be stripped from output")
	}
	if !strings.Contains(out, "Println") {
		t.Errorf("code content missing from output %q", out)
	}
}

func TestRenderMarkdownUnterminatedCodeBlock(t *testing.T) {
	input := "```\nsome code"
	out := renderMarkdown(input)

	if !strings.Contains(out, "some code") {
		t.Errorf("unterminated block content missing from output %q", out)
	}
}

func TestHighlightCodeFallsBackOnUnknownLanguage(t *testing.T) {
	code := "SELECT made_up FROM nowhere"
	out := highlightCode(code, "not-a-language")
	if out == "" {
		t.Error("expected non-empty output")
	}
}

func TestRenderTypingIndicator(t *testing.T) {
	out := renderTypingIndicator("Aurora Cleaning", 0)
	if !strings.Contains(out, "Aurora Cleaning is typing...") {
		t.Errorf("typing indicator missing label: %q", out)
	}

	// Frame index wraps rather than panicking
	_ = renderTypingIndicator("Aurora Cleaning", len(typingFrames)*3+1)
}
