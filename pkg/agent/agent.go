// Package agent drives a tool-calling conversation against an LLM provider.
// It is a sample consumer of the registry: it pulls definitions, forwards
// them to the provider, and dispatches the tool calls the model returns.
package agent

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jfeld/toolbelt/pkg/llm"
	"github.com/jfeld/toolbelt/pkg/registry"
	"github.com/jfeld/toolbelt/pkg/types"
)

// ConfirmFunc decides whether a confirmation-gated tool call may run.
type ConfirmFunc func(def registry.Definition, args []string) bool

// Agent holds a conversation and dispatches tool calls through a registry.
type Agent struct {
	provider llm.Provider
	registry *registry.Registry
	messages []types.Message
	output   io.Writer
	usage    types.TokenUsage

	// Confirm, when set, is consulted before running any tool whose
	// definition carries the RequiresConfirmation hint. A nil Confirm
	// runs every tool unprompted.
	Confirm ConfirmFunc
}

// New creates an Agent speaking through provider and dispatching into reg.
func New(provider llm.Provider, reg *registry.Registry, systemPrompt string) *Agent {
	messages := []types.Message{}
	if systemPrompt != "" {
		messages = append(messages, types.Message{Role: "system", Content: systemPrompt})
	}
	return &Agent{
		provider: provider,
		registry: reg,
		messages: messages,
		output:   os.Stdout,
	}
}

// SetOutput redirects user-facing output (default os.Stdout).
func (a *Agent) SetOutput(w io.Writer) {
	a.output = w
}

// Registry returns the registry the agent dispatches into.
func (a *Agent) Registry() *registry.Registry {
	return a.registry
}

// Model returns the provider's model name.
func (a *Agent) Model() string {
	return a.provider.Model()
}

// Usage returns the accumulated session token usage.
func (a *Agent) Usage() types.TokenUsage {
	return a.usage
}

// Clear drops the conversation, keeping any system prompt.
func (a *Agent) Clear() {
	if len(a.messages) > 0 && a.messages[0].Role == "system" {
		a.messages = a.messages[:1]
		return
	}
	a.messages = nil
}

// ProcessInput runs one user turn: it sends the conversation with the
// registry's definitions, executes any tool calls the model makes, and loops
// until the model answers with plain text or the iteration cap is hit.
func (a *Agent) ProcessInput(ctx context.Context, input string) error {
	if input == "" {
		return nil
	}

	a.messages = append(a.messages, types.Message{Role: "user", Content: input})

	for iterations := 0; iterations < types.MaxAgentIterations; iterations++ {
		response, err := a.provider.Chat(ctx, a.messages, a.registry.All())
		if err != nil {
			return fmt.Errorf("chat error: %w", err)
		}
		a.usage.Add(response.Usage)

		if len(response.ToolCalls) == 0 {
			a.messages = append(a.messages, types.Message{
				Role:    "assistant",
				Content: response.Content,
			})
			fmt.Fprintln(a.output, response.Content)
			return nil
		}

		a.messages = append(a.messages, types.Message{
			Role:      "assistant",
			Content:   response.Content,
			ToolCalls: response.ToolCalls,
		})

		for _, tc := range response.ToolCalls {
			if ctx.Err() != nil {
				a.messages = append(a.messages, types.Message{
					Role:       "tool",
					Content:    "Skipped due to user interrupt",
					ToolCallID: tc.ID,
				})
				continue
			}
			fmt.Fprintf(a.output, "%s[tool: %s]%s\n", types.ColorGray, tc.Name, types.ColorReset)
			a.messages = append(a.messages, types.Message{
				Role:       "tool",
				Content:    a.dispatch(ctx, tc),
				ToolCallID: tc.ID,
			})
		}
	}

	return fmt.Errorf("agent loop reached maximum iterations (%d) without completing", types.MaxAgentIterations)
}

// dispatch looks up and runs one tool call. Failures become result text for
// the model; they never abort the conversation.
func (a *Agent) dispatch(ctx context.Context, tc types.ToolCall) string {
	def, ok := a.registry.Get(tc.Name)
	if !ok {
		return fmt.Sprintf("Error: tool not found: %s", tc.Name)
	}

	args, err := llm.DecodeArgs(def, tc.Arguments)
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}

	if def.Hints.RequiresConfirmation && a.Confirm != nil && !a.Confirm(def, args) {
		return "Tool execution declined by user"
	}

	result, err := def.Func(ctx, args)
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}
	return result
}
