// Package formatter renders analysis results as HTML fragments for the chat UI.
package formatter

import (
	"bytes"
	"embed"
	"html/template"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	jsoniter "github.com/json-iterator/go"

	"github.com/pravin157/Flight-Schedule-Optimization/internal/analysis"
)

//go:embed templates/results.html
var content embed.FS

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var funcs = template.FuncMap{
	"hour":  analysis.FormatHour,
	"join":  strings.Join,
	"comma": func(n int) string { return humanize.Comma(int64(n)) },
	"roundptr": func(v *float64) string {
		if v == nil {
			return "n/a"
		}
		return strconv.Itoa(int(math.RoundToEven(*v)))
	},
	"minutes": func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) },
}

var tpl = template.Must(template.New("results").Funcs(funcs).ParseFS(content, "templates/results.html"))

// Format renders result. Error results, and anything without a dedicated
// template, are shown as indented JSON in a preformatted block.
func Format(result analysis.Result) string {
	var name string
	switch result.(type) {
	case analysis.TrafficResult:
		name = "traffic"
	case analysis.PredictionResult:
		name = "prediction"
	case analysis.RunwayResult:
		name = "runways"
	case analysis.DelayReasonResult:
		name = "delay_reason"
	case analysis.DelayReasonSummary:
		name = "delay_reason_summary"
	case analysis.HighImpactResult:
		name = "high_impact"
	default:
		return Fallback(result)
	}

	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, name, result); err != nil {
		log.Printf("[Formatter] Failed to render %s: %v", name, err)
		return Fallback(result)
	}
	return buf.String()
}

// Fallback pretty-prints v as JSON inside a <pre><code> block.
func Fallback(v interface{}) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		data = []byte(err.Error())
	}
	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, "fallback", string(data)); err != nil {
		return "<pre><code>" + template.HTMLEscapeString(string(data)) + "</code></pre>"
	}
	return buf.String()
}
