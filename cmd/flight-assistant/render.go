package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/net/html"
	"golang.org/x/term"

	"github.com/pravin157/Flight-Schedule-Optimization/internal/dispatcher"
)

const defaultWidth = 80

var (
	labelStyle = map[dispatcher.ReplyType]lipgloss.Style{
		dispatcher.ReplyData:           lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		dispatcher.ReplyConversational: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		dispatcher.ReplyError:          lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// terminalWidth returns the width of stdout, or defaultWidth when it is not
// a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// renderReply writes reply as wrapped plain text under a coloured label.
func renderReply(w io.Writer, reply dispatcher.Reply, width int) {
	label := labelStyle[reply.Type].Render(fmt.Sprintf("Assistant (%s):", reply.Type))
	fmt.Fprintln(w, label)

	text := htmlToText(reply.Content)
	if width > 0 {
		text = wordwrap.String(text, width)
	}
	fmt.Fprintln(w, text)
}

// htmlToText flattens an HTML fragment into readable text. List items become
// bullets, block elements end lines and <pre> content is kept verbatim.
func htmlToText(fragment string) string {
	z := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	pre := 0

	atLineStart := func() bool {
		s := b.String()
		return s == "" || strings.HasSuffix(s, "\n") || strings.HasSuffix(s, "• ")
	}
	space := func() {
		if !atLineStart() && !strings.HasSuffix(b.String(), " ") {
			b.WriteByte(' ')
		}
	}
	newline := func() {
		if s := b.String(); s != "" && !strings.HasSuffix(s, "\n") {
			b.WriteByte('\n')
		}
	}

	for {
		switch z.Next() {
		case html.ErrorToken:
			return tidy(b.String())
		case html.TextToken:
			text := string(z.Text())
			if pre > 0 {
				b.WriteString(text)
				continue
			}
			if strings.TrimSpace(text) == "" {
				if text != "" {
					space()
				}
				continue
			}
			if unicode.IsSpace(rune(text[0])) {
				space()
			}
			b.WriteString(strings.Join(strings.Fields(text), " "))
			if unicode.IsSpace(rune(text[len(text)-1])) {
				b.WriteByte(' ')
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "li":
				newline()
				b.WriteString("  • ")
			case "br":
				b.WriteByte('\n')
			case "pre":
				newline()
				pre++
			case "p", "div", "h5", "ul", "ol":
				newline()
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "pre":
				if pre > 0 {
					pre--
				}
				newline()
			case "p", "div", "h5", "ul", "ol", "li":
				newline()
			}
		}
	}
}

// tidy trims trailing spaces and squeezes blank lines.
func tidy(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			if blank || len(out) == 0 {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, line)
	}
	return strings.TrimRight(strings.Join(out, "\n"), "\n")
}
