// Package agent implements the AI advisor on top of the Gemini API.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent is the AI advisor that handles the chat session.
type Agent struct {
	w       io.Writer
	r       *bufio.Reader
	Experts []*Expert
}

// New creates a new Agent over an io.Writer for output (e.g. os.Stdout) and
// an io.Reader for user input (e.g. os.Stdin). The first expert answers the
// user; the rest are started alongside it.
func New(w io.Writer, r io.Reader, experts ...*Expert) *Agent {
	return &Agent{
		w:       w,
		r:       bufio.NewReader(r),
		Experts: experts,
	}
}

// Start creates all the expert chats.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	for _, e := range a.Experts {
		if err := e.Start(ctx, client); err != nil {
			return err
		}
	}
	return nil
}

const prompt = "advise> "

// Run starts the session. With initial prompts it answers them and returns;
// without, it runs an interactive REPL until the user types 'bye'.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if len(a.Experts) == 0 {
		return fmt.Errorf("agent has no experts")
	}
	if a.Experts[0].chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}
	coach := a.Experts[0]

	for _, p := range prompts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		answer, err := coach.Ask(ctx, &genai.Part{Text: p})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, answer)
	}
	if len(prompts) > 0 {
		return nil
	}

	fmt.Fprintln(a.w, "Welcome to the sparhok advisor. Type 'bye' to exit.")
	for {
		fmt.Fprint(a.w, prompt)
		line, err := a.r.ReadString('\n')
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "bye" {
			return nil
		}
		answer, err := coach.Ask(ctx, &genai.Part{Text: line})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, answer)
	}
}
