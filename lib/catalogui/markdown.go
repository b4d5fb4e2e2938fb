// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package catalogui

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/bureau-foundation/pokedex/lib/tui"
)

var (
	markdownOnce   sync.Once
	markdownParser goldmark.Markdown
)

func getMarkdownParser() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdownParser = goldmark.New(goldmark.WithExtensions(extension.GFM))
	})
	return markdownParser
}

// renderMarkdown renders input as styled terminal text wrapped to
// width. Soft line breaks reflow. Output always carries ANSI256
// colors, independent of the detected terminal.
func renderMarkdown(input string, theme tui.Theme, width int) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	source := []byte(input)
	document := getMarkdownParser().Parser().Parse(text.NewReader(source))

	styles := lipgloss.NewRenderer(os.Stderr, termenv.WithProfile(termenv.ANSI256))
	styles.SetColorProfile(termenv.ANSI256)

	writer := &markdownWriter{
		source: source,
		theme:  theme,
		width:  max(width, 20),
		styles: styles,
	}
	_ = ast.Walk(document, writer.walk)
	return strings.TrimRight(writer.output.String(), "\n")
}

// markdownWriter accumulates inline content per block and wraps it
// when the block closes.
type markdownWriter struct {
	source []byte
	theme  tui.Theme
	width  int
	styles *lipgloss.Renderer

	output strings.Builder
	inline strings.Builder

	bold   int
	italic int

	// lists holds the next number of each open ordered list, or -1
	// for bullet lists.
	lists   []int
	indents []string
	indent  string
	bullet  string
}

func (writer *markdownWriter) style() lipgloss.Style {
	return writer.styles.NewStyle()
}

// block writes wrapped content followed by a blank line, prefixing
// the first line with a pending bullet.
func (writer *markdownWriter) block(content string, blank bool) {
	if content == "" {
		return
	}
	width := max(writer.width-ansi.StringWidth(writer.indent), 10)
	lines := strings.Split(ansi.Wrap(content, width, " -"), "\n")
	for index, line := range lines {
		if index == 0 && writer.bullet != "" {
			writer.output.WriteString(writer.bullet)
			writer.bullet = ""
		} else {
			writer.output.WriteString(writer.indent)
		}
		writer.output.WriteString(line)
		writer.output.WriteByte('\n')
	}
	if blank {
		writer.output.WriteByte('\n')
	}
}

func (writer *markdownWriter) flush() string {
	content := strings.TrimRight(writer.inline.String(), " ")
	writer.inline.Reset()
	return content
}

func (writer *markdownWriter) walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node := node.(type) {
	case *ast.Heading:
		if entering {
			writer.inline.Reset()
			break
		}
		content := ansi.Strip(writer.flush())
		style := writer.style().Bold(true).Foreground(writer.theme.NormalText)
		if node.Level <= 2 {
			style = style.Foreground(writer.theme.HeaderAccent)
		}
		if node.Level == 1 {
			content = strings.ToUpper(content)
		}
		writer.block(style.Render(content), true)

	case *ast.Paragraph, *ast.TextBlock:
		if entering {
			writer.inline.Reset()
			break
		}
		writer.block(writer.flush(), !writer.inTightList())

	case *ast.List:
		if entering {
			next := -1
			if node.IsOrdered() {
				next = node.Start
			}
			writer.lists = append(writer.lists, next)
			break
		}
		writer.lists = writer.lists[:len(writer.lists)-1]
		if len(writer.lists) == 0 {
			writer.output.WriteByte('\n')
		}

	case *ast.ListItem:
		if !entering {
			writer.indents = writer.indents[:len(writer.indents)-1]
			writer.indent = strings.Join(writer.indents, "")
			break
		}
		marker := "• "
		if top := len(writer.lists) - 1; top >= 0 && writer.lists[top] >= 0 {
			marker = fmt.Sprintf("%d. ", writer.lists[top])
			writer.lists[top]++
		}
		writer.bullet = writer.indent + writer.style().Foreground(writer.theme.HeaderAccent).Render(marker)
		writer.indents = append(writer.indents, strings.Repeat(" ", ansi.StringWidth(marker)))
		writer.indent = strings.Join(writer.indents, "")

	case *ast.FencedCodeBlock:
		if entering {
			writer.code(node.Lines(), string(node.Language(writer.source)))
			return ast.WalkSkipChildren, nil
		}

	case *ast.CodeBlock:
		if entering {
			writer.code(node.Lines(), "")
			return ast.WalkSkipChildren, nil
		}

	case *ast.ThematicBreak:
		if entering {
			rule := writer.style().Foreground(writer.theme.BorderColor).Render(strings.Repeat("─", writer.width))
			writer.output.WriteString(rule + "\n\n")
		}

	case *ast.Text:
		if entering {
			writer.inline.WriteString(writer.styledText(string(node.Segment.Value(writer.source))))
			if node.SoftLineBreak() {
				writer.inline.WriteString(" ")
			}
			if node.HardLineBreak() {
				writer.inline.WriteString("\n")
			}
		}

	case *ast.String:
		if entering {
			writer.inline.WriteString(writer.styledText(string(node.Value)))
		}

	case *ast.Emphasis:
		counter := &writer.italic
		if node.Level >= 2 {
			counter = &writer.bold
		}
		if entering {
			*counter++
		} else {
			*counter--
		}

	case *ast.CodeSpan:
		if entering {
			var code strings.Builder
			for child := node.FirstChild(); child != nil; child = child.NextSibling() {
				if segment, ok := child.(*ast.Text); ok {
					code.Write(segment.Segment.Value(writer.source))
				}
			}
			writer.inline.WriteString(writer.style().Foreground(writer.theme.WarningText).Render(code.String()))
			return ast.WalkSkipChildren, nil
		}

	case *ast.Link:
		if !entering {
			destination := string(node.Destination)
			if destination != "" {
				writer.inline.WriteString(" " + writer.style().Foreground(writer.theme.LinkForeground).Render("<"+destination+">"))
			}
		}

	case *ast.AutoLink:
		if entering {
			url := string(node.URL(writer.source))
			writer.inline.WriteString(writer.style().Foreground(writer.theme.LinkForeground).Render(url))
			return ast.WalkSkipChildren, nil
		}
	}
	return ast.WalkContinue, nil
}

func (writer *markdownWriter) inTightList() bool {
	return len(writer.lists) > 0
}

func (writer *markdownWriter) styledText(content string) string {
	style := writer.style().Foreground(writer.theme.NormalText)
	if writer.bold > 0 {
		style = style.Bold(true)
	}
	if writer.italic > 0 {
		style = style.Italic(true)
	}
	return style.Render(content)
}

// code writes a code block, syntax highlighted through chroma when it
// names a language chroma knows.
func (writer *markdownWriter) code(lines *text.Segments, language string) {
	var code strings.Builder
	for index := 0; index < lines.Len(); index++ {
		segment := lines.At(index)
		code.Write(segment.Value(writer.source))
	}
	rendered := writer.style().Foreground(writer.theme.FaintText).Render(code.String())
	if language != "" {
		var highlighted strings.Builder
		if err := quick.Highlight(&highlighted, code.String(), language, "terminal256", "monokai"); err == nil {
			rendered = highlighted.String()
		}
	}
	for _, line := range strings.Split(strings.TrimRight(rendered, "\n"), "\n") {
		writer.output.WriteString(writer.indent + "  " + line + "\n")
	}
	writer.output.WriteByte('\n')
}
