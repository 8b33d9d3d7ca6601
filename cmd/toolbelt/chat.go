package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jfeld/toolbelt/pkg/agent"
	"github.com/jfeld/toolbelt/pkg/config"
	"github.com/jfeld/toolbelt/pkg/llm"
	"github.com/jfeld/toolbelt/pkg/registry"
	"github.com/jfeld/toolbelt/pkg/types"
)

const chatSystemPrompt = `You are a helpful assistant with access to filesystem tools for reading files, listing directories, and creating files and directories.

When using the tools:
1. Read or list before creating
2. Report results back concisely`

func newChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Interactive chat with tool-calling",
		RunE:  runChat,
	}
	cmd.Flags().Bool("yes", false, "Skip confirmation prompts for mutating tools")
	return cmd
}

func newProvider(cfg *config.Config) llm.Provider {
	switch cfg.Provider {
	case "anthropic":
		return llm.NewAnthropicProvider(cfg.APIKey, cfg.BaseURL, cfg.Model)
	default:
		return llm.NewOpenAIProvider(cfg.APIKey, cfg.BaseURL, cfg.Model)
	}
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)

	app := agent.New(newProvider(cfg), builtinRegistry(), chatSystemPrompt)
	if yes, _ := cmd.Flags().GetBool("yes"); !yes {
		app.Confirm = func(def registry.Definition, toolArgs []string) bool {
			fmt.Printf("%s%s wants to run with %v. Allow? [y/N] %s", types.ColorYellow, def.Name, toolArgs, types.ColorReset)
			answer, err := reader.ReadString('\n')
			if err != nil {
				return false
			}
			answer = strings.ToLower(strings.TrimSpace(answer))
			return answer == "y" || answer == "yes"
		}
	}

	fmt.Printf("%stoolbelt%s - filesystem tools for LLM clients (provider: %s, model: %s)\n",
		types.ColorGreen, types.ColorReset, cfg.Provider, app.Model())
	fmt.Printf("Tools: %s\n", strings.Join(app.Registry().Names(), ", "))
	fmt.Printf("Commands: /q (quit), /c (clear), /usage, /tools\n\n")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var turnCancel context.CancelFunc
	var lastSigTime time.Time
	var mu sync.Mutex

	go func() {
		for sig := range sigChan {
			mu.Lock()
			if sig == syscall.SIGTERM {
				mu.Unlock()
				fmt.Println("\nGoodbye!")
				os.Exit(0)
			}
			now := time.Now()
			if now.Sub(lastSigTime) < time.Second {
				mu.Unlock()
				fmt.Println("\nGoodbye!")
				os.Exit(0)
			}
			lastSigTime = now
			if turnCancel != nil {
				turnCancel()
				turnCancel = nil
				fmt.Fprintf(os.Stderr, "\n%s[interrupted]%s\n", types.ColorYellow, types.ColorReset)
			}
			mu.Unlock()
		}
	}()

	for {
		fmt.Printf("%s> %s", types.ColorBlue, types.ColorReset)
		input, err := reader.ReadString('\n')
		if err != nil {
			break
		}
		input = strings.TrimSpace(input)

		if input == "" {
			continue
		}
		if handled, exit := handleChatCommand(app, input); exit {
			return nil
		} else if handled {
			continue
		}

		turnCtx, cancel := context.WithCancel(cmd.Context())
		mu.Lock()
		turnCancel = cancel
		mu.Unlock()

		err = app.ProcessInput(turnCtx, input)
		cancel()

		mu.Lock()
		turnCancel = nil
		mu.Unlock()

		if err != nil {
			if turnCtx.Err() == context.Canceled {
				continue
			}
			fmt.Printf("%sError: %v%s\n", types.ColorYellow, err, types.ColorReset)
		}
	}
	return nil
}

// handleChatCommand processes a slash command and reports whether it was
// handled and whether the REPL should exit.
func handleChatCommand(app *agent.Agent, input string) (handled bool, exit bool) {
	switch input {
	case "/q", "exit", "quit":
		u := app.Usage()
		if u.TotalTokens > 0 {
			fmt.Printf("%sSession usage: %d prompt + %d completion = %d total tokens%s\n",
				types.ColorGray, u.PromptTokens, u.CompletionTokens, u.TotalTokens, types.ColorReset)
		}
		fmt.Println("Goodbye!")
		return true, true
	case "/c", "clear":
		app.Clear()
		fmt.Println("Conversation cleared.")
		return true, false
	case "/usage":
		u := app.Usage()
		if u.TotalTokens == 0 {
			fmt.Println("No tokens used yet.")
		} else {
			fmt.Printf("Session usage:\n  Prompt tokens:     %d\n  Completion tokens: %d\n  Total tokens:      %d\n",
				u.PromptTokens, u.CompletionTokens, u.TotalTokens)
		}
		return true, false
	case "/tools":
		for _, def := range app.Registry().All() {
			fmt.Printf("  %s [%s] - %s\n", def.Name, def.Category, def.Description)
		}
		return true, false
	}
	return false, false
}
