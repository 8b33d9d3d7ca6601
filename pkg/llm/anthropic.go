package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/jfeld/toolbelt/pkg/registry"
	"github.com/jfeld/toolbelt/pkg/types"
)

// anthropicMaxTokens is the response budget for Messages API requests.
const anthropicMaxTokens = 8192

// AnthropicProvider wraps the Anthropic client for chat completions with tools.
type AnthropicProvider struct {
	client anthropic.Client
	model  string
}

// NewAnthropicProvider creates a new AnthropicProvider.
func NewAnthropicProvider(apiKey, baseURL, model string) *AnthropicProvider {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(3),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &AnthropicProvider{
		client: anthropic.NewClient(opts...),
		model:  model,
	}
}

// Model returns the model name.
func (a *AnthropicProvider) Model() string {
	return a.model
}

// anthropicToolParams maps registry definitions onto the Messages API tool shape.
func anthropicToolParams(defs []registry.Definition) []anthropic.ToolUnionParam {
	tools := make([]anthropic.ToolUnionParam, 0, len(defs))
	for _, def := range defs {
		schema := def.Schema()
		required, _ := schema["required"].([]string)
		tools = append(tools, anthropic.ToolUnionParam{
			OfTool: &anthropic.ToolParam{
				Name:        def.Name,
				Description: anthropic.String(def.Description),
				InputSchema: anthropic.ToolInputSchemaParam{
					Properties: schema["properties"],
					Required:   required,
				},
			},
		})
	}
	return tools
}

func (a *AnthropicProvider) buildRequest(messages []types.Message, defs []registry.Definition) anthropic.MessageNewParams {
	var systemBlocks []anthropic.TextBlockParam
	var anthropicMessages []anthropic.MessageParam

	for _, msg := range messages {
		switch msg.Role {
		case "system":
			systemBlocks = append(systemBlocks, *anthropic.NewTextBlock(msg.Content).OfText)
		case "user":
			anthropicMessages = append(anthropicMessages, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
		case "assistant":
			var blocks []anthropic.ContentBlockParamUnion
			if msg.Content != "" {
				blocks = append(blocks, anthropic.NewTextBlock(msg.Content))
			}
			for _, tc := range msg.ToolCalls {
				var input map[string]interface{}
				if err := json.Unmarshal([]byte(tc.Arguments), &input); err != nil {
					input = map[string]interface{}{}
				}
				blocks = append(blocks, anthropic.NewToolUseBlock(tc.ID, input, tc.Name))
			}
			anthropicMessages = append(anthropicMessages, anthropic.NewAssistantMessage(blocks...))
		case "tool":
			anthropicMessages = append(anthropicMessages, anthropic.MessageParam{
				Role: anthropic.MessageParamRoleUser,
				Content: []anthropic.ContentBlockParamUnion{
					anthropic.NewToolResultBlock(msg.ToolCallID, msg.Content, false),
				},
			})
		}
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: int64(anthropicMaxTokens),
		Messages:  anthropicMessages,
	}
	if len(systemBlocks) > 0 {
		params.System = systemBlocks
	}
	if tools := anthropicToolParams(defs); len(tools) > 0 {
		params.Tools = tools
	}
	return params
}

// Chat sends a Messages API request with the given tool definitions.
func (a *AnthropicProvider) Chat(ctx context.Context, messages []types.Message, defs []registry.Definition) (*types.ChatResponse, error) {
	params := a.buildRequest(messages, defs)

	msg, err := a.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic chat failed: %w", err)
	}

	response := &types.ChatResponse{
		FinishReason: string(msg.StopReason),
		Usage: types.TokenUsage{
			PromptTokens:     msg.Usage.InputTokens,
			CompletionTokens: msg.Usage.OutputTokens,
			TotalTokens:      msg.Usage.InputTokens + msg.Usage.OutputTokens,
		},
	}

	for _, block := range msg.Content {
		switch block.Type {
		case "tool_use":
			args, _ := json.Marshal(block.Input)
			response.ToolCalls = append(response.ToolCalls, types.ToolCall{
				ID:        block.ID,
				Name:      block.Name,
				Arguments: string(args),
			})
		case "text":
			response.Content += block.Text
		}
	}

	return response, nil
}
