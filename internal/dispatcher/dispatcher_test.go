package dispatcher

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pravin157/Flight-Schedule-Optimization/internal/analysis"
	"github.com/pravin157/Flight-Schedule-Optimization/internal/datapaths"
	"github.com/pravin157/Flight-Schedule-Optimization/internal/dataset/datasettest"
)

type fakeGenerator struct {
	text   string
	err    error
	prompt string
}

func (g *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.prompt = prompt
	return g.text, g.err
}

type runnerFunc func(fn analysis.Function, params json.RawMessage) (analysis.Result, error)

func (f runnerFunc) Run(fn analysis.Function, params json.RawMessage) (analysis.Result, error) {
	return f(fn, params)
}

var d = datasettest.Delay

func newDispatcher(t *testing.T, gen Generator, withData bool) *Dispatcher {
	t.Helper()
	var flights []datasettest.Flight
	if withData {
		flights = []datasettest.Flight{
			{ID: "AI101", Hour: 14, Delay: d(22), Runway: "07", Reason: "Weather"},
			{ID: "AI102", Hour: 14, Delay: d(25), Runway: "25", Reason: "ATC"},
			{ID: "AI103", Hour: 9, Delay: d(5), Runway: "07", Reason: "Fog"},
		}
	}
	root := datasettest.DataDir(t, flights, nil)
	paths, err := datapaths.New(datapaths.Options{Root: root})
	require.NoError(t, err)
	return New(gen, analysis.NewRegistry(), analysis.NewAnalyzer(paths))
}

func TestDispatchPredictDelay(t *testing.T) {
	gen := &fakeGenerator{text: `{"function": "predict_delay", "params": {"hour": 14}}`}
	reply := newDispatcher(t, gen, true).Dispatch(context.Background(), "What delay should I expect at 2pm?")

	assert.Equal(t, "What delay should I expect at 2pm?", gen.prompt)
	assert.Equal(t, ReplyData, reply.Type)
	assert.Equal(t, http.StatusOK, reply.Status)
	assert.Equal(t, "predict_delay", reply.Function)
	assert.Contains(t, reply.Content, "2 PM")
	assert.Contains(t, reply.Content, "24 minutes")
}

func TestDispatchSkipsParamsEchoedBeforeCommand(t *testing.T) {
	gen := &fakeGenerator{text: `Using params {"hour": 14} I will call: {"function": "predict_delay", "params": {"hour": 14}}`}
	reply := newDispatcher(t, gen, true).Dispatch(context.Background(), "Delay at 2pm?")

	assert.Equal(t, ReplyData, reply.Type)
	assert.Equal(t, http.StatusOK, reply.Status)
	assert.Equal(t, "predict_delay", reply.Function)
	assert.Contains(t, reply.Content, "2 PM")
}

func TestDispatchWithoutJSONIsConversational(t *testing.T) {
	gen := &fakeGenerator{text: "Hello! Ask me about flight delays."}
	reply := newDispatcher(t, gen, true).Dispatch(context.Background(), "hi")

	assert.Equal(t, Reply{Type: ReplyConversational, Content: "Hello! Ask me about flight delays.", Status: http.StatusOK}, reply)
}

func TestDispatchBlankOutputUsesDefault(t *testing.T) {
	reply := newDispatcher(t, &fakeGenerator{text: "   "}, true).Dispatch(context.Background(), "hi")
	assert.Equal(t, ReplyConversational, reply.Type)
	assert.Equal(t, DefaultFallback, reply.Content)
}

func TestDispatchGeneratorFailureUsesDefault(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("connection refused")}
	reply := newDispatcher(t, gen, true).Dispatch(context.Background(), "hi")

	assert.Equal(t, ReplyConversational, reply.Type)
	assert.Equal(t, DefaultFallback, reply.Content)
	assert.Equal(t, http.StatusOK, reply.Status)
}

func TestDispatchUnknownFunction(t *testing.T) {
	gen := &fakeGenerator{text: `{"function": "book_flight", "params": {}}`}
	reply := newDispatcher(t, gen, true).Dispatch(context.Background(), "book me a flight")

	assert.Equal(t, ReplyError, reply.Type)
	assert.Equal(t, http.StatusOK, reply.Status)
	assert.Equal(t, "The model tried to call an unknown function: 'book_flight'", reply.Content)
}

func TestDispatchUnknownFunctionSuggestsClosestName(t *testing.T) {
	gen := &fakeGenerator{text: `{"function": "predict_delays", "params": {"hour": 9}}`}
	reply := newDispatcher(t, gen, true).Dispatch(context.Background(), "delay at 9?")

	assert.Equal(t, ReplyError, reply.Type)
	assert.Equal(t, "The model tried to call an unknown function: 'predict_delays' Did you mean 'predict_delay'?", reply.Content)
}

func TestDispatchMissingDatasetRendersFallback(t *testing.T) {
	gen := &fakeGenerator{text: `{"function": "get_airport_traffic_analysis", "params": {}}`}
	reply := newDispatcher(t, gen, false).Dispatch(context.Background(), "busiest hours?")

	assert.Equal(t, ReplyData, reply.Type)
	assert.Equal(t, http.StatusOK, reply.Status)
	assert.Contains(t, reply.Content, "<pre class='bg-gray-800")
	assert.Contains(t, reply.Content, "Data file not found")
}

func TestDispatchRunwayAlias(t *testing.T) {
	gen := &fakeGenerator{text: "Sure.\n```json\n{\"function\": \"get_airport_runway_analysis\", \"params\": {\"airport_code\": \"MAA\"}}\n```"}
	reply := newDispatcher(t, gen, true).Dispatch(context.Background(), "runways?")

	assert.Equal(t, ReplyData, reply.Type)
	assert.Equal(t, "get_runway_analysis", reply.Function)
	assert.Contains(t, reply.Content, "<strong>2 runways</strong>")
}

func TestDispatchInvalidParamsIsExecutionError(t *testing.T) {
	gen := &fakeGenerator{text: `{"function": "predict_delay", "params": {"minute": 3}}`}
	reply := newDispatcher(t, gen, true).Dispatch(context.Background(), "delay?")

	assert.Equal(t, ReplyError, reply.Type)
	assert.Equal(t, http.StatusInternalServerError, reply.Status)
	assert.Contains(t, reply.Content, "An error occurred while executing the command: ")
}

func TestExecuteRecoversFromPanic(t *testing.T) {
	runner := runnerFunc(func(analysis.Function, json.RawMessage) (analysis.Result, error) {
		panic("index out of range")
	})
	reply := New(&fakeGenerator{}, analysis.NewRegistry(), runner).Execute("predict_delay", nil)

	assert.Equal(t, ReplyError, reply.Type)
	assert.Equal(t, http.StatusInternalServerError, reply.Status)
	assert.Contains(t, reply.Content, "index out of range")
}

func TestExecutePassesParamsThrough(t *testing.T) {
	var gotFn analysis.Function
	var gotParams json.RawMessage
	runner := runnerFunc(func(fn analysis.Function, params json.RawMessage) (analysis.Result, error) {
		gotFn, gotParams = fn, params
		return analysis.ErrorResult{Error: "No runway data found."}, nil
	})
	reply := New(&fakeGenerator{}, analysis.NewRegistry(), runner).
		Execute("get_runway_analysis", json.RawMessage(`{"airport_code":"MAA"}`))

	assert.Equal(t, analysis.RunwayAnalysis, gotFn)
	assert.JSONEq(t, `{"airport_code":"MAA"}`, string(gotParams))
	assert.Contains(t, reply.Content, "No runway data found.")
}

func TestExtractCommand(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		function string
		params   string
		wantErr  bool
	}{
		{
			name:     "bare object",
			text:     `{"function": "predict_delay", "params": {"hour": 14}}`,
			function: "predict_delay",
			params:   `{"hour": 14}`,
		},
		{
			name:     "surrounded by prose",
			text:     `Let me check. {"function": "get_runway_analysis", "params": {}} Done!`,
			function: "get_runway_analysis",
			params:   `{}`,
		},
		{
			name:     "first of two objects",
			text:     `{"function": "predict_delay", "params": {"hour": 1}} {"function": "get_runway_analysis"}`,
			function: "predict_delay",
			params:   `{"hour": 1}`,
		},
		{
			name:     "params echoed before command",
			text:     `Using params {"hour": 14} I will call: {"function": "predict_delay", "params": {"hour": 14}}`,
			function: "predict_delay",
			params:   `{"hour": 14}`,
		},
		{
			name:     "nested object is not taken for the command",
			text:     `{"params": {"function": "inner"}, "function": "get_runway_analysis"}`,
			function: "get_runway_analysis",
		},
		{
			name: "object without function",
			text: `The answer is {"hour": 14}.`,
		},
		{
			name:     "stray brace before object",
			text:     `use {braces} like {"function": "find_high_impact_flights"}`,
			function: "find_high_impact_flights",
		},
		{
			name:     "non-string function name",
			text:     `{"function": 42}`,
			function: "42",
		},
		{
			name:    "no object",
			text:    "There were no delays today.",
			wantErr: true,
		},
		{
			name:    "unterminated object",
			text:    `{"function": "predict_delay"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ExtractCommand(tt.text)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNoCommand)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.function, cmd.Function)
			if tt.params == "" {
				assert.Nil(t, cmd.Params)
			} else {
				assert.JSONEq(t, tt.params, string(cmd.Params))
			}
		})
	}
}
