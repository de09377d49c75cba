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
	"errors"
	"io"
	"strings"
	"unicode"

	"github.com/chzyer/readline"
)

// lineReader is the part of *readline.Instance the console loop needs.
type lineReader interface {
	Readline() (string, error)
}

type consoleInput int

const (
	inputSkip consoleInput = iota
	inputEnd
	inputCommand
	inputInvocation
)

// nextConsoleInput reads one line and classifies it. Ctrl+C and blank
// lines are skipped; Ctrl+D on an empty line or any other read error ends
// the session. The returned line is trimmed.
func nextConsoleInput(rl lineReader) (string, consoleInput, error) {
	line, err := rl.Readline()
	switch {
	case errors.Is(err, readline.ErrInterrupt):
		return "", inputSkip, nil
	case errors.Is(err, io.EOF):
		if strings.TrimSpace(line) == "" {
			return "", inputEnd, nil
		}
		return "", inputSkip, nil
	case err != nil:
		return "", inputEnd, err
	}

	line = trimConsoleLine(line)
	switch {
	case line == "":
		return "", inputSkip, nil
	case strings.HasPrefix(line, "/"):
		return line, inputCommand, nil
	default:
		return line, inputInvocation, nil
	}
}

// trimConsoleLine drops control characters left at the start of a line
// by interrupted key sequences, and surrounding whitespace.
func trimConsoleLine(line string) string {
	return strings.TrimSpace(strings.TrimLeftFunc(line, func(r rune) bool {
		return unicode.IsControl(r) || unicode.IsSpace(r)
	}))
}
