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
	"time"

	"github.com/rs/zerolog"

	"toolmanager/internal/tools"
)

const maxBatchLineBytes = 16 * 1024 * 1024

// batchRequest is one line of batch input.
type batchRequest struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// batchResult answers a request that reached a tool.
type batchResult struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	IsError bool   `json:"is_error"`
}

// batchError answers a request rejected before any tool ran.
type batchError struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

func runBatchMode(logger zerolog.Logger) {
	if err := runBatchFromConfig(logger); err != nil {
		logger.Error().Err(err).Msg("Batch mode failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runBatchFromConfig(logger zerolog.Logger) error {
	logger.Debug().Msg("Running in batch mode")

	// Batch input comes from a program, so no approver is installed.
	_, dispatcher, err := newDispatcher(*configPath, logger, nil)
	if err != nil {
		return err
	}
	return runBatch(context.Background(), logger, dispatcher, os.Stdin, os.Stdout)
}

// runBatch executes newline-delimited JSON invocations from in and writes
// one JSON result per line to out, in input order.
func runBatch(ctx context.Context, logger zerolog.Logger, dispatcher *tools.Dispatcher, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxBatchLineBytes)
	encoder := json.NewEncoder(out)
	encoder.SetEscapeHTML(false)

	processed := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var req batchRequest
		if err := json.Unmarshal([]byte(line), &req); err != nil {
			logger.Warn().Err(err).Msg("Malformed batch request")
			if err := encoder.Encode(batchError{Error: fmt.Sprintf("invalid request: %v", err)}); err != nil {
				return fmt.Errorf("failed to write result: %w", err)
			}
			continue
		}

		start := time.Now()
		resp, err := dispatcher.ExecuteJSON(ctx, req.ID, tools.ToolName(req.Name), req.Arguments)
		logger.Debug().Str("id", req.ID).Str("tool", req.Name).Dur("duration_ms", time.Since(start)).Msg("Batch request handled")

		var result interface{} = batchResult{ID: req.ID, Text: resp.String(), IsError: resp.IsError}
		if err != nil {
			result = batchError{ID: req.ID, Error: err.Error()}
		}
		if err := encoder.Encode(result); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
		processed++
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}

	logger.Info().Int("requests", processed).Msg("Batch complete")
	return nil
}
