package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pravin157/Flight-Schedule-Optimization/internal/dispatcher"
)

var askCmd = &cobra.Command{
	Use:   "ask [prompt]",
	Short: "Ask a question from the terminal",
	Long:  "ask answers a single prompt given as arguments, or starts an interactive session that runs until 'exit' when no prompt is given.",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		out := cmd.OutOrStdout()
		if len(args) > 0 {
			renderReply(out, a.dispatcher.Dispatch(ctx, strings.Join(args, " ")), terminalWidth())
			return nil
		}
		interactive := term.IsTerminal(int(os.Stdin.Fd()))
		return runREPL(ctx, a.dispatcher, cmd.InOrStdin(), out, interactive)
	},
}

type promptDispatcher interface {
	Dispatch(ctx context.Context, prompt string) dispatcher.Reply
}

// runREPL reads prompts line by line until "exit" or end of input.
func runREPL(ctx context.Context, d promptDispatcher, in io.Reader, out io.Writer, interactive bool) error {
	if interactive {
		fmt.Fprintln(out, dimStyle.Render("Flight assistant ready. Type 'exit' to quit."))
	}

	width := terminalWidth()
	scanner := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(out, promptStyle.Render("You: "))
		}
		if !scanner.Scan() {
			break
		}
		prompt := strings.TrimSpace(scanner.Text())
		if prompt == "" {
			continue
		}
		if strings.EqualFold(prompt, "exit") || strings.EqualFold(prompt, "quit") {
			break
		}
		renderReply(out, d.Dispatch(ctx, prompt), width)
		fmt.Fprintln(out)
	}
	return scanner.Err()
}
