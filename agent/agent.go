// Package agent implements the interactive AI assistant that answers
// questions about the purchase collection.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used by the assistant.
const DefaultModel = "gemini-2.0-flash"

// Agent is the AI assistant that handles the chat session.
type Agent struct {
	w         io.Writer
	r         *bufio.Reader
	modelName string
	config    *genai.GenerateContentConfig
	chat      *genai.Chat
}

// New creates a new Agent primed with the collection rendered as markdown.
// It takes an io.Writer for the agent's output (e.g., os.Stdout) and an
// io.Reader for user input (e.g., os.Stdin).
func New(w io.Writer, r io.Reader, collection string) *Agent {
	instruction := fmt.Sprintf(`You are a frugal grocery shopping assistant.
You answer questions about the user's recorded food purchases: where things
were cheapest, how prices per kg or per L compare across stores, and how
spending adds up. Prices are standardized per base unit and comparable in
DKK. Here is the full purchase collection:

%s`, collection)

	return &Agent{
		w:         w,
		r:         bufio.NewReader(r),
		modelName: DefaultModel,
		config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
		},
	}
}

// Start creates the Gemini chat session.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, a.modelName, a.config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask sends one question and returns the text of the first candidate.
func (a *Agent) Ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the assistant")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

const prompt = "assist> "

// Run starts the interactive REPL session for the agent.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to kurv grocery assist. Type 'bye' to exit.")

	// REPL loop
	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		answer, err := a.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, answer)
	}
}
