package ui

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/muesli/reflow/wordwrap"
)

// Compiled regex patterns for markdown parsing
var (
	boldPattern       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	inlineCodePattern = regexp.MustCompile("`([^`]+)`")
	linkPattern       = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

// wrapText wraps text to the given width, defaulting when the width is unknown
func wrapText(text string, width int) string {
	if width <= 0 {
		width = DefaultWrapWidth
	}
	return wordwrap.String(text, width)
}

// highlightCode applies syntax highlighting to code using chroma
func highlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}

	return buf.String()
}

// renderInlineMarkdown applies inline formatting (bold, code, links) to a line
func renderInlineMarkdown(line string) string {
	// Process inline code first, protecting code spans from other formatting
	type codeSpan struct {
		placeholder string
		rendered    string
	}
	var codeSpans []codeSpan
	codeIdx := 0

	line = inlineCodePattern.ReplaceAllStringFunc(line, func(match string) string {
		code := inlineCodePattern.FindStringSubmatch(match)[1]
		placeholder := fmt.Sprintf("\x00CODE%d\x00", codeIdx)
		codeSpans = append(codeSpans, codeSpan{
			placeholder: placeholder,
			rendered:    MarkdownInlineCodeStyle.Render(code),
		})
		codeIdx++
		return placeholder
	})

	// Process bold (**text**)
	line = boldPattern.ReplaceAllStringFunc(line, func(match string) string {
		text := boldPattern.FindStringSubmatch(match)[1]
		return MarkdownBoldStyle.Render(text)
	})

	// Process links [text](url)
	line = linkPattern.ReplaceAllStringFunc(line, func(match string) string {
		parts := linkPattern.FindStringSubmatch(match)
		return MarkdownLinkStyle.Render(parts[1]) + " (" + MarkdownLinkStyle.Render(parts[2]) + ")"
	})

	// Restore code spans
	for _, span := range codeSpans {
		line = strings.Replace(line, span.placeholder, span.rendered, 1)
	}

	return line
}

// renderMarkdown renders a message body line by line: fenced code blocks get
// syntax highlighting, headers and list bullets get styled, everything else
// gets inline formatting.
func renderMarkdown(content string) string {
	var result strings.Builder
	lines := strings.Split(content, "\n")

	inCodeBlock := false
	codeLanguage := ""
	var codeLines []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			if inCodeBlock {
				result.WriteString(highlightCode(strings.Join(codeLines, "\n"), codeLanguage))
				result.WriteString("\n")
				inCodeBlock = false
				codeLines = nil
			} else {
				inCodeBlock = true
				codeLanguage = strings.TrimPrefix(trimmed, "```")
			}
			continue
		}

		if inCodeBlock {
			codeLines = append(codeLines, line)
			continue
		}

		switch {
		case strings.HasPrefix(trimmed, "### "):
			result.WriteString(MarkdownH3Style.Render(strings.TrimPrefix(trimmed, "### ")))
		case strings.HasPrefix(trimmed, "## "):
			result.WriteString(MarkdownH2Style.Render(strings.TrimPrefix(trimmed, "## ")))
		case strings.HasPrefix(trimmed, "# "):
			result.WriteString(MarkdownH1Style.Render(strings.TrimPrefix(trimmed, "# ")))
		case strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* "):
			bullet := MarkdownListBulletStyle.Render("•")
			result.WriteString("  " + bullet + " " + renderInlineMarkdown(trimmed[2:]))
		default:
			result.WriteString(renderInlineMarkdown(line))
		}
		result.WriteString("\n")
	}

	// Unterminated code block: render what we collected
	if inCodeBlock && len(codeLines) > 0 {
		result.WriteString(highlightCode(strings.Join(codeLines, "\n"), codeLanguage))
		result.WriteString("\n")
	}

	return strings.TrimRight(result.String(), "\n")
}
