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

package tools

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"time"
)

// commandWaitDelay bounds how long a canceled command may keep its output
// pipes open through orphaned children.
const commandWaitDelay = 2 * time.Second

func (d *Dispatcher) executeCommand(ctx context.Context, in ExecuteCommandInput) (string, error) {
	stdout, err := runShellCommand(ctx, d.opts.Shell, d.opts.WorkDir, in.Command)
	if err != nil {
		return "", NewToolExecutionError("executing command", err)
	}
	if d.opts.OutputFilters.enabled() {
		filtered, truncated := d.opts.OutputFilters.sanitize(stdout)
		if truncated {
			d.logger.Debug().Int("max_chars", d.opts.OutputFilters.MaxChars).Msg("Command output truncated")
		}
		stdout = filtered
	}
	return stdout, nil
}

// shellArgs returns the argv that runs command through shell, or the
// platform default shell when shell is empty.
func shellArgs(shell, command string) []string {
	switch {
	case shell != "":
		return []string{shell, "-c", command}
	case runtime.GOOS == "windows":
		return []string{"cmd", "/C", command}
	default:
		return []string{"/bin/sh", "-c", command}
	}
}

// runShellCommand waits for command to exit and returns its stdout, or
// its stderr when stdout is empty.
func runShellCommand(ctx context.Context, shell, dir, command string) (string, error) {
	argv := shellArgs(shell, command)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.WaitDelay = commandWaitDelay
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return "", fmt.Errorf("command timed out: %s", command)
	}
	if errors.Is(ctx.Err(), context.Canceled) {
		return "", fmt.Errorf("command canceled: %s", command)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return "", fmt.Errorf("Command failed: %s\n%s", command, stderr.String())
	}
	if err != nil {
		return "", err
	}

	if stdout.Len() > 0 {
		return stdout.String(), nil
	}
	return stderr.String(), nil
}
