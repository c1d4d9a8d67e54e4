package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pravin157/Flight-Schedule-Optimization/internal/analysis"
	"github.com/pravin157/Flight-Schedule-Optimization/internal/dispatcher"
)

var (
	analyzeParams string
	analyzeHTML   bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze FUNCTION",
	Short: "Run an analysis function directly",
	Long: "analyze runs one registered analysis function without the language model.\n\nFunctions: " +
		strings.Join(analysis.NewRegistry().Names(), ", "),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var params json.RawMessage
		if analyzeParams != "" {
			if !json.Valid([]byte(analyzeParams)) {
				return fmt.Errorf("--params is not valid JSON: %s", analyzeParams)
			}
			params = json.RawMessage(analyzeParams)
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		reply := a.dispatcher.Execute(args[0], params)

		out := cmd.OutOrStdout()
		if analyzeHTML {
			fmt.Fprintln(out, reply.Content)
		} else {
			renderReply(out, reply, terminalWidth())
		}
		if reply.Type == dispatcher.ReplyError {
			return fmt.Errorf("analysis %s failed", args[0])
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeParams, "params", "", `Function parameters as a JSON object (e.g. '{"hour": 14}')`)
	analyzeCmd.Flags().BoolVar(&analyzeHTML, "html", false, "Print the HTML fragment instead of plain text")
}
