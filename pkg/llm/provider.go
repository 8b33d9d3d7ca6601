// Package llm adapts registry tool definitions to LLM client SDKs. Each
// provider maps definitions onto its API's native tool-registration shape and
// returns tool calls in a provider-neutral form; DecodeArgs converts a model's
// JSON arguments back into the positional form a tool implementation takes.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jfeld/toolbelt/pkg/registry"
	"github.com/jfeld/toolbelt/pkg/types"
)

// Provider is a chat backend that accepts tool definitions.
type Provider interface {
	Chat(ctx context.Context, messages []types.Message, defs []registry.Definition) (*types.ChatResponse, error)
	Model() string
}

// Compile-time interface compliance checks.
var (
	_ Provider = (*OpenAIProvider)(nil)
	_ Provider = (*AnthropicProvider)(nil)
)

// DecodeArgs converts a model's JSON-object arguments into the positional
// slice def.Func takes, following the declared parameter order. Every
// declared parameter must be present.
func DecodeArgs(def registry.Definition, argsJSON string) ([]string, error) {
	parsed := map[string]interface{}{}
	if argsJSON != "" {
		if err := json.Unmarshal([]byte(argsJSON), &parsed); err != nil {
			return nil, fmt.Errorf("invalid tool arguments: %w", err)
		}
	}

	args := make([]string, 0, len(def.Params))
	for _, p := range def.Params {
		v, ok := parsed[p.Name]
		if !ok {
			return nil, fmt.Errorf("missing required argument %q for tool %s", p.Name, def.Name)
		}
		s, err := stringifyArg(v)
		if err != nil {
			return nil, fmt.Errorf("argument %q for tool %s: %w", p.Name, def.Name, err)
		}
		args = append(args, s)
	}
	return args, nil
}

// stringifyArg renders a decoded JSON value as the string a positional
// implementation receives.
func stringifyArg(v interface{}) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10), nil
		}
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(val), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", v)
	}
}
