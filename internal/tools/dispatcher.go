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
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"

	apperrors "toolmanager/internal/errors"
	"toolmanager/internal/paths"
)

// Options configures a Dispatcher. The zero value runs in the process
// working directory with default limits and no approval gate.
type Options struct {
	// WorkDir is the directory relative paths resolve against.
	WorkDir string
	// HomeDir is used to recognise the Desktop folder for readable paths.
	HomeDir string
	// Shell overrides the shell used by execute_command.
	Shell string
	// RespectGitignore skips entries matched by the root .gitignore
	// while traversing directories.
	RespectGitignore bool

	Limits        Limits
	Timeouts      TimeoutConfig
	OutputFilters OutputFilterConfig
	Policy        Policy
	Approver      Approver
	Logger        *zerolog.Logger
}

// Dispatcher validates invocations against the registry and runs the
// matching operation. It is safe for concurrent use.
type Dispatcher struct {
	registry *Registry
	opts     Options
	logger   zerolog.Logger
	schemas  *schemaCache
}

// NewDispatcher creates a dispatcher over registry.
func NewDispatcher(registry *Registry, opts Options) (*Dispatcher, error) {
	if registry == nil {
		return nil, fmt.Errorf("registry is required")
	}
	if opts.WorkDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to determine working directory: %w", err)
		}
		opts.WorkDir = wd
	}
	workDir, err := filepath.Abs(opts.WorkDir)
	if err != nil {
		return nil, fmt.Errorf("invalid working directory: %w", err)
	}
	opts.WorkDir = workDir
	if opts.HomeDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			opts.HomeDir = home
		}
	}
	opts.Limits = normalizeLimits(opts.Limits)

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return &Dispatcher{
		registry: registry,
		opts:     opts,
		logger:   logger,
		schemas:  newSchemaCache(),
	}, nil
}

// Registry returns the registry the dispatcher resolves names against.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// WorkDir returns the absolute working directory.
func (d *Dispatcher) WorkDir() string {
	return d.opts.WorkDir
}

// RequiresApproval reports whether name is gated behind the approver.
func (d *Dispatcher) RequiresApproval(name ToolName) bool {
	return d.opts.Approver != nil && d.opts.Policy.requiresApproval(name)
}

// Execute runs one invocation.
//
// Dispatch-level problems (unknown tool, missing or ill-typed arguments,
// no handler, approver failure) are returned as errors. Operation
// failures are returned as a Response carrying the error envelope.
func (d *Dispatcher) Execute(ctx context.Context, inv ToolInvocation) (Response, error) {
	inv.ensureID()
	if inv.Arguments == nil {
		inv.Arguments = map[string]interface{}{}
	}
	log := d.logger.With().
		Str("tool", string(inv.Name)).
		Str("invocation_id", inv.ID).
		Logger()

	input, err := d.prepare(inv)
	if err != nil {
		log.Warn().Err(err).Msg("Tool invocation rejected")
		return Response{}, err
	}

	if d.RequiresApproval(inv.Name) {
		approval, err := d.opts.Approver.Approve(ctx, inv)
		if err != nil {
			log.Error().Err(err).Msg("Tool approval failed")
			return Response{}, approvalError(inv.Name, err)
		}
		if !approval.Approved {
			log.Info().Bool("feedback", approval.Feedback != "").Msg("Tool denied by user")
			return deniedResponse(approval), nil
		}
	}

	ctx, cancel := d.opts.Timeouts.withTimeout(ctx, inv.Name)
	defer cancel()

	log.Debug().Msg("Executing tool")
	start := time.Now()
	text, err := input.run(ctx, d)
	duration := time.Since(start)
	if err != nil {
		log.Warn().Err(err).Dur("duration_ms", duration).Msg("Tool execution failed")
		return Response{Text: FormatToolError(err.Error()), IsError: true}, nil
	}

	log.Info().Dur("duration_ms", duration).Int("result_bytes", len(text)).Msg("Tool executed")
	return Response{Text: text}, nil
}

// prepare resolves the spec, checks arguments and decodes the typed input.
func (d *Dispatcher) prepare(inv ToolInvocation) (Input, error) {
	spec, ok := d.registry.Lookup(inv.Name)
	if !ok {
		return nil, unknownToolError(inv.Name)
	}
	if err := checkRequired(spec, inv.Arguments); err != nil {
		return nil, err
	}
	if err := d.schemas.validateArguments(spec, inv.Arguments); err != nil {
		return nil, invalidArgumentsError(spec.Name, err)
	}
	input, err := decodeInput(spec.Name, inv.Arguments)
	if err != nil {
		if apperrors.HasCode(err, apperrors.CodeUnimplemented) {
			return nil, err
		}
		return nil, invalidArgumentsError(spec.Name, err)
	}
	return input, nil
}

// ExecuteJSON runs a tool whose arguments arrive as a raw JSON object.
// An unknown name is reported before the arguments are parsed.
func (d *Dispatcher) ExecuteJSON(ctx context.Context, id string, name ToolName, rawArgs json.RawMessage) (Response, error) {
	if !d.registry.Has(name) {
		d.logger.Warn().Str("tool", string(name)).Str("invocation_id", id).Msg("Tool invocation rejected")
		return Response{}, unknownToolError(name)
	}
	args, err := parseToolArgs(string(rawArgs))
	if err != nil {
		return Response{}, invalidArgumentsError(name, err)
	}
	return d.Execute(ctx, ToolInvocation{ID: id, Name: name, Arguments: args})
}

// ExecuteOpenAIToolCall executes an OpenAI tool call payload.
func (d *Dispatcher) ExecuteOpenAIToolCall(ctx context.Context, call openai.ToolCall) (Response, error) {
	if call.Function.Name == "" {
		return Response{}, unknownToolError("")
	}
	return d.ExecuteJSON(ctx, call.ID, ToolName(call.Function.Name), json.RawMessage(call.Function.Arguments))
}

// OpenAIToolMessage wraps a response as the tool message answering call.
func OpenAIToolMessage(call openai.ToolCall, resp Response) openai.ChatCompletionMessage {
	return openai.ChatCompletionMessage{
		Role:       openai.ChatMessageRoleTool,
		Content:    resp.String(),
		Name:       call.Function.Name,
		ToolCallID: call.ID,
	}
}

// IsDispatchError reports whether err was raised before any operation ran.
func IsDispatchError(err error) bool {
	return errors.Is(err, ErrUnknownTool) ||
		errors.Is(err, ErrMissingParameter) ||
		errors.Is(err, ErrInvalidArguments) ||
		errors.Is(err, ErrUnimplementedTool) ||
		errors.Is(err, ErrApproval)
}

// resolve turns a tool path argument into an absolute path.
func (d *Dispatcher) resolve(path string) (string, error) {
	return paths.Resolve(d.opts.WorkDir, path)
}
