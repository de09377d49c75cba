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
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"

	"toolmanager/internal/tools"
)

type approvalDecision int

const (
	approvalUnknown approvalDecision = iota
	approvalYes
	approvalNo
	approvalAlways
)

// toolPromptFunc asks the user about inv and returns the decision plus
// any feedback given with a refusal.
type toolPromptFunc func(inv tools.ToolInvocation) (approvalDecision, string, error)

func newToolApprover() tools.Approver {
	return newToolApproverWithPrompt(promptToolApproval)
}

func newToolApproverWithPrompt(prompt toolPromptFunc) tools.Approver {
	alwaysAllowed := make(map[tools.ToolName]bool)
	var mu sync.RWMutex
	return tools.ApproverFunc(func(ctx context.Context, inv tools.ToolInvocation) (tools.Approval, error) {
		if err := ctx.Err(); err != nil {
			return tools.Approval{}, err
		}
		mu.RLock()
		allowed := alwaysAllowed[inv.Name]
		mu.RUnlock()
		if allowed {
			return tools.Approval{Approved: true}, nil
		}

		decision, feedback, err := prompt(inv)
		if err != nil {
			return tools.Approval{}, err
		}
		switch decision {
		case approvalAlways:
			mu.Lock()
			alwaysAllowed[inv.Name] = true
			mu.Unlock()
			return tools.Approval{Approved: true}, nil
		case approvalYes:
			return tools.Approval{Approved: true}, nil
		default:
			return tools.Approval{Feedback: feedback}, nil
		}
	})
}

func promptToolApproval(inv tools.ToolInvocation) (approvalDecision, string, error) {
	input := os.Stdin
	output := io.Writer(os.Stdout)
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		if tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0); err == nil {
			input = tty
			output = tty
			defer tty.Close()
		} else {
			return approvalNo, "", fmt.Errorf("no TTY available for tool approval")
		}
	}
	return promptApproval(bufio.NewReader(input), output, inv)
}

func promptApproval(reader *bufio.Reader, output io.Writer, inv tools.ToolInvocation) (approvalDecision, string, error) {
	for {
		fmt.Fprintf(output, "Allow tool %s%s? (Yes/no/always): ", invocationName(inv), argsDisplay(inv.Arguments))
		line, err := reader.ReadString('\n')
		if err != nil {
			return approvalNo, "", err
		}
		decision := parseApprovalInput(line)
		switch decision {
		case approvalYes, approvalAlways:
			return decision, "", nil
		case approvalNo:
			fmt.Fprint(output, "Feedback for the assistant (optional): ")
			feedback, err := reader.ReadString('\n')
			if err != nil && err != io.EOF {
				return approvalNo, "", err
			}
			return approvalNo, strings.TrimSpace(feedback), nil
		default:
			fmt.Fprintln(output, "Please enter yes, no, or always.")
		}
	}
}

func parseApprovalInput(input string) approvalDecision {
	normalized := strings.TrimSpace(strings.ToLower(input))
	if normalized == "" {
		return approvalYes
	}
	switch {
	case isPrefixToken(normalized, "yes"):
		return approvalYes
	case isPrefixToken(normalized, "no"):
		return approvalNo
	case isPrefixToken(normalized, "always"):
		return approvalAlways
	default:
		return approvalUnknown
	}
}

func isPrefixToken(input, target string) bool {
	if input == "" || len(input) > len(target) {
		return false
	}
	return strings.HasPrefix(target, input)
}

func invocationName(inv tools.ToolInvocation) string {
	if inv.Name == "" {
		return "unknown_tool"
	}
	return string(inv.Name)
}

// argsDisplay renders arguments for the prompt. File content is left out.
func argsDisplay(args map[string]interface{}) string {
	if len(args) == 0 {
		return ""
	}
	shown := make(map[string]interface{}, len(args))
	for key, value := range args {
		if key == "content" {
			continue
		}
		shown[key] = value
	}
	if len(shown) == 0 {
		return ""
	}
	data, err := json.Marshal(shown)
	if err != nil {
		return ""
	}
	return fmt.Sprintf(" with args %s", string(data))
}
