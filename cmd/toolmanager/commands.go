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
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog"

	"toolmanager/internal/tools"
)

// Command represents a slash command
type Command struct {
	Name        string
	Description string
}

// getAvailableCommands returns the list of all slash commands
func getAvailableCommands() []Command {
	return []Command{
		{Name: "help", Description: "Show available commands"},
		{Name: "tools", Description: "List tools and their parameters"},
		{Name: "schema", Description: "Print tool definitions (openai or anthropic)"},
		{Name: "quit", Description: "Exit the application"},
		{Name: "exit", Description: "Exit the application"},
	}
}

// handleCommand processes slash commands, returns true if should quit
func handleCommand(input string, dispatcher *tools.Dispatcher, out io.Writer, logger zerolog.Logger) bool {
	fields := strings.Fields(strings.TrimPrefix(input, "/"))
	if len(fields) == 0 {
		fmt.Fprintln(out, "✗ Empty command (type /help for available commands)")
		return false
	}
	cmdName := strings.ToLower(fields[0])
	args := fields[1:]

	logger.Debug().Str("command", cmdName).Strs("args", args).Msg("Executing command")

	switch cmdName {
	case "help":
		showHelp(out)
		return false

	case "tools":
		showTools(out, dispatcher)
		return false

	case "schema":
		format := "openai"
		if len(args) > 0 {
			format = args[0]
		}
		if err := exportTools(out, dispatcher.Registry(), format); err != nil {
			fmt.Fprintf(out, "✗ %v\n", err)
		}
		return false

	case "quit", "exit":
		return true

	default:
		fmt.Fprintf(out, "✗ Unknown command: /%s (type /help for available commands)\n", cmdName)
		return false
	}
}

func showHelp(out io.Writer) {
	fmt.Fprintln(out, "\nAvailable Commands:")
	seen := make(map[string]bool)
	for _, cmd := range getAvailableCommands() {
		if seen[cmd.Name] {
			continue
		}
		seen[cmd.Name] = true
		fmt.Fprintf(out, "  /%-12s - %s\n", cmd.Name, cmd.Description)
	}
	fmt.Fprintln(out, "\nInvoking Tools:")
	fmt.Fprintln(out, `  <tool> <json arguments>, e.g. list_files {"path": ".", "recursive": "true"}`)
	fmt.Fprintln(out, "\nKeyboard Shortcuts:")
	fmt.Fprintln(out, "  Ctrl+↑/↓     - Navigate command history")
	fmt.Fprintln(out, "  Tab          - Auto-complete commands and tool names")
	fmt.Fprintln(out)
}

func showTools(out io.Writer, dispatcher *tools.Dispatcher) {
	fmt.Fprintln(out, "\nTools:")

	specs := dispatcher.Registry().Specs()
	if len(specs) == 0 {
		fmt.Fprintln(out, "No tools available")
		return
	}

	w := tabwriter.NewWriter(out, 0, 8, 2, '\t', 0)
	fmt.Fprintln(w, "Tool\tApproval\tParameters")
	fmt.Fprintln(w, "────\t────────\t──────────")

	for _, spec := range specs {
		approval := "no"
		if dispatcher.RequiresApproval(spec.Name) {
			approval = "ask"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", spec.Name, approval, formatParameters(spec))
	}
	w.Flush()
	fmt.Fprintln(out)
}

// formatParameters lists parameter names, optional ones in brackets.
func formatParameters(spec tools.ToolSpec) string {
	required := make(map[string]bool, len(spec.Required))
	for _, name := range spec.Required {
		required[name] = true
	}
	names := spec.ParameterNames()
	parts := make([]string, 0, len(names))
	for _, name := range names {
		if required[name] {
			parts = append(parts, name)
		} else {
			parts = append(parts, "["+name+"]")
		}
	}
	return strings.Join(parts, " ")
}
