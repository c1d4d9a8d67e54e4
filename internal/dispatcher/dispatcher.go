// Package dispatcher turns a free-text prompt into an analysis answer.
package dispatcher

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/pravin157/Flight-Schedule-Optimization/internal/analysis"
	"github.com/pravin157/Flight-Schedule-Optimization/internal/formatter"
)

// DefaultFallback is sent when the model cannot be reached or says nothing.
const DefaultFallback = "Sorry, I had trouble understanding that."

// maxSuggestionDistance bounds how far an unknown function name may be from a
// registered one before no suggestion is offered.
const maxSuggestionDistance = 4

// ReplyType tags what kind of content a reply carries.
type ReplyType string

const (
	ReplyData           ReplyType = "data"
	ReplyConversational ReplyType = "conversational"
	ReplyError          ReplyType = "error"
)

// Reply is the outcome of one prompt. Status is the HTTP status to use.
type Reply struct {
	Type     ReplyType `json:"type"`
	Content  string    `json:"content"`
	Status   int       `json:"-"`
	Function string    `json:"-"`
}

// Generator produces text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Runner executes a registered analysis function.
type Runner interface {
	Run(fn analysis.Function, params json.RawMessage) (analysis.Result, error)
}

type Dispatcher struct {
	generator Generator
	registry  analysis.Registry
	runner    Runner
}

func New(generator Generator, registry analysis.Registry, runner Runner) *Dispatcher {
	return &Dispatcher{
		generator: generator,
		registry:  registry,
		runner:    runner,
	}
}

// Dispatch sends prompt to the model, extracts the command from its output
// and runs it.
func (d *Dispatcher) Dispatch(ctx context.Context, prompt string) Reply {
	log.Printf("[Dispatcher] Received prompt: %q", prompt)

	text, err := d.generator.Generate(ctx, prompt)
	if err != nil {
		log.Printf("[Dispatcher] Generation failed: %v", err)
		return conversational(DefaultFallback)
	}
	log.Printf("[Dispatcher] Model output: %s", text)

	cmd, err := ExtractCommand(text)
	if err != nil {
		if strings.TrimSpace(text) == "" {
			return conversational(DefaultFallback)
		}
		return conversational(text)
	}

	return d.Execute(cmd.Function, cmd.Params)
}

// Execute runs the function registered under name with params and formats the
// result.
func (d *Dispatcher) Execute(name string, params json.RawMessage) Reply {
	fn, ok := d.registry.Lookup(name)
	if !ok {
		log.Printf("[Dispatcher] Unknown function %q", name)
		content := fmt.Sprintf("The model tried to call an unknown function: '%s'", name)
		if s := d.suggest(name); s != "" {
			content += fmt.Sprintf(" Did you mean '%s'?", s)
		}
		return Reply{Type: ReplyError, Content: content, Status: http.StatusOK, Function: name}
	}

	result, err := d.run(fn, params)
	if err != nil {
		log.Printf("[Dispatcher] %s failed: %v", fn, err)
		return Reply{
			Type:     ReplyError,
			Content:  fmt.Sprintf("An error occurred while executing the command: %v", err),
			Status:   http.StatusInternalServerError,
			Function: fn.String(),
		}
	}

	return Reply{
		Type:     ReplyData,
		Content:  formatter.Format(result),
		Status:   http.StatusOK,
		Function: fn.String(),
	}
}

func (d *Dispatcher) run(fn analysis.Function, params json.RawMessage) (result analysis.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", fn, r)
		}
	}()
	return d.runner.Run(fn, params)
}

// suggest returns the registered name closest to name, or "" when none is
// close enough.
func (d *Dispatcher) suggest(name string) string {
	if name == "" {
		return ""
	}
	best, bestDist := "", maxSuggestionDistance+1
	for _, candidate := range d.registry.Names() {
		if dist := levenshtein.ComputeDistance(name, candidate); dist < bestDist {
			best, bestDist = candidate, dist
		}
	}
	return best
}

func conversational(content string) Reply {
	return Reply{Type: ReplyConversational, Content: content, Status: http.StatusOK}
}
