// Copyright (C) 2025 Dyne.org foundation
// designed, written and maintained by Denis Roio <jaromil@dyne.org>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"

	"toolmanager/internal/tools"
)

var errEmptyInvocation = errors.New("empty invocation")

func runConsoleMode(logger zerolog.Logger) {
	logger.Debug().Msg("Running in console mode")

	cfg, dispatcher, err := newDispatcher(*configPath, logger, newToolApprover())
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create dispatcher")
	}

	// Initialize readline with command and tool name completion
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "❯ ",
		HistoryFile:     cfg.CommandHistoryFile,
		AutoComplete:    getCompleter(dispatcher.Registry()),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize readline")
	}
	defer rl.Close()

	fmt.Println("Toolmanager by Dyne.org")
	fmt.Printf("Working directory: %s\n", dispatcher.WorkDir())
	fmt.Println("Type /help for commands, Ctrl+D or /quit to exit")
	fmt.Println()

	ctx := context.Background()
loop:
	for {
		line, kind, err := nextConsoleInput(rl)
		switch kind {
		case inputSkip:
			continue
		case inputEnd:
			if err != nil {
				logger.Debug().Err(err).Msg("Readline interrupted")
			}
			break loop
		}

		logger.Info().Str("user_input", line).Msg("User input received")

		if kind == inputCommand {
			if handleCommand(line, dispatcher, os.Stdout, logger) {
				break loop
			}
			continue
		}
		handleInvocation(ctx, line, dispatcher, os.Stdout, logger)
	}

	logger.Info().Msg("Session ended")
}

// handleInvocation runs a "<tool> <json arguments>" line and prints the
// response.
func handleInvocation(ctx context.Context, line string, dispatcher *tools.Dispatcher, out io.Writer, logger zerolog.Logger) {
	name, args, err := parseInvocationLine(line)
	if err != nil {
		fmt.Fprintf(out, "✗ %v\n", err)
		return
	}

	resp, err := dispatcher.ExecuteJSON(ctx, "", name, args)
	if err != nil {
		logger.Debug().Err(err).Msg("Invocation rejected")
		fmt.Fprintf(out, "✗ %v\n", err)
		return
	}
	fmt.Fprintln(out, resp.String())
}

// parseInvocationLine splits a console line into the tool name and its
// JSON arguments. Missing arguments mean an empty object.
func parseInvocationLine(line string) (tools.ToolName, json.RawMessage, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", nil, errEmptyInvocation
	}
	name, rest := line, ""
	if idx := strings.IndexAny(line, " \t"); idx >= 0 {
		name, rest = line[:idx], strings.TrimSpace(line[idx+1:])
	}
	if rest == "" {
		rest = "{}"
	}
	if !json.Valid([]byte(rest)) {
		return "", nil, fmt.Errorf("arguments for %s are not valid JSON: %s", name, rest)
	}
	return tools.ToolName(name), json.RawMessage(rest), nil
}

// getCompleter builds a readline completer from slash commands and tool names
func getCompleter(registry *tools.Registry) *readline.PrefixCompleter {
	var items []readline.PrefixCompleterInterface
	for _, cmd := range getAvailableCommands() {
		if cmd.Name == "schema" {
			items = append(items, readline.PcItem("/schema", readline.PcItem("openai"), readline.PcItem("anthropic")))
			continue
		}
		items = append(items, readline.PcItem("/"+cmd.Name))
	}
	for _, name := range registry.GetToolNames() {
		items = append(items, readline.PcItem(string(name)))
	}
	return readline.NewPrefixCompleter(items...)
}
