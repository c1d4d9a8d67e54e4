package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pravin157/Flight-Schedule-Optimization/internal/analysis"
	"github.com/pravin157/Flight-Schedule-Optimization/internal/dispatcher"
	"github.com/pravin157/Flight-Schedule-Optimization/internal/formatter"
)

func TestHTMLToTextLists(t *testing.T) {
	fragment := formatter.Format(analysis.DelayReasonSummary{
		Summary:    "Top 5 most common delay reasons",
		TopReasons: []analysis.ReasonCount{{Reason: "Weather", Count: 1200}, {Reason: "ATC", Count: 3}},
	})

	assert.Equal(t,
		"Here are the top 2 most common reasons for delays:\n  • Weather: 1,200 occurrences\n  • ATC: 3 occurrences",
		htmlToText(fragment))
}

func TestHTMLToTextParagraph(t *testing.T) {
	fragment := formatter.Format(analysis.RunwayResult{RunwayCount: 2, RunwayNames: []string{"07", "25"}, BusiestRunway: "07"})

	assert.Equal(t,
		"The analysis shows there are 2 runways (07, 25). The most frequently used runway is 07.",
		htmlToText(fragment))
}

func TestHTMLToTextKeepsPreformattedJSON(t *testing.T) {
	fragment := formatter.Format(analysis.ErrorResult{Error: `Data file not found: "x.xlsx"`})

	assert.Equal(t, "{\n  \"error\": \"Data file not found: \\\"x.xlsx\\\"\"\n}", htmlToText(fragment))
}

func TestHTMLToTextPlainString(t *testing.T) {
	assert.Equal(t, "Hello! How can I help?", htmlToText("Hello! How can I help?"))
}

func TestRenderReplyWraps(t *testing.T) {
	var buf bytes.Buffer
	renderReply(&buf, dispatcher.Reply{
		Type:    dispatcher.ReplyConversational,
		Content: "one two three four five six",
	}, 10)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Contains(t, lines[0], "Assistant (conversational):")
	for _, line := range lines[1:] {
		assert.LessOrEqual(t, len(line), 10)
	}
}

type echoDispatcher struct{ prompts []string }

func (e *echoDispatcher) Dispatch(_ context.Context, prompt string) dispatcher.Reply {
	e.prompts = append(e.prompts, prompt)
	return dispatcher.Reply{Type: dispatcher.ReplyConversational, Content: "echo: " + prompt}
}

func TestREPLStopsAtExit(t *testing.T) {
	d := &echoDispatcher{}
	in := strings.NewReader("busiest hours?\n\n  runways  \nexit\nignored\n")
	var out bytes.Buffer

	err := runREPL(context.Background(), d, in, &out, false)

	assert.NoError(t, err)
	assert.Equal(t, []string{"busiest hours?", "runways"}, d.prompts)
	assert.Contains(t, out.String(), "echo: runways")
	assert.NotContains(t, out.String(), "ignored")
}

func TestREPLStopsAtEOF(t *testing.T) {
	d := &echoDispatcher{}
	err := runREPL(context.Background(), d, strings.NewReader("hello"), &bytes.Buffer{}, false)

	assert.NoError(t, err)
	assert.Equal(t, []string{"hello"}, d.prompts)
}
