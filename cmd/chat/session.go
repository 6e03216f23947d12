package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"conversational-assistant/internal/assistant"
	"conversational-assistant/internal/generative"
)

const maxSessionTurns = 20

var (
	promptColor = color.New(color.FgCyan, color.Bold)
	replyColor  = color.New(color.FgGreen)
	metaColor   = color.New(color.FgHiBlack)
)

// session keeps the caller-side history for one terminal conversation.
type session struct {
	uc      assistant.UseCase
	out     io.Writer
	verbose bool
	history []string
}

func newSession(uc assistant.UseCase, out io.Writer, verbose bool) *session {
	return &session{uc: uc, out: out, verbose: verbose}
}

func (s *session) send(ctx context.Context, message string) string {
	output := s.uc.Respond(ctx, assistant.RespondInput{
		Message: message,
		Context: append([]string(nil), s.history...),
	})

	s.history = append(s.history, generative.UserMarker+message, generative.AssistantMarker+output.Response)
	if len(s.history) > maxSessionTurns {
		s.history = s.history[len(s.history)-maxSessionTurns:]
	}

	replyColor.Fprintln(s.out, output.Response)
	if s.verbose {
		metaColor.Fprintf(s.out, "[intent=%s confidence=%.3f branch=%s]\n",
			output.Intent, output.Confidence, output.Branch)
	}
	return output.Response
}

// repl reads one message per line until EOF, "exit" or "quit".
func (s *session) repl(ctx context.Context, in io.Reader) error {
	fmt.Fprintln(s.out, "Type a message, or \"exit\" to quit. \"/reset\" clears the history.")

	scanner := bufio.NewScanner(in)
	for {
		promptColor.Fprint(s.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		case "/reset":
			s.history = nil
			metaColor.Fprintln(s.out, "history cleared")
			continue
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.send(ctx, line)
	}
}
