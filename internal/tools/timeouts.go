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
	"time"
)

// TimeoutConfig configures per-tool execution timeouts. A zero duration
// means the tool runs until it finishes.
type TimeoutConfig struct {
	Default time.Duration
	PerTool map[ToolName]time.Duration
}

// DefaultTimeoutConfig returns the default timeout configuration: no
// timeouts at all.
func DefaultTimeoutConfig() TimeoutConfig {
	return TimeoutConfig{}
}

// TimeoutForTool returns the timeout for a tool, if configured.
func (t TimeoutConfig) TimeoutForTool(name ToolName) time.Duration {
	if t.PerTool != nil {
		if timeout, ok := t.PerTool[name]; ok {
			return timeout
		}
	}
	return t.Default
}

func (t TimeoutConfig) withTimeout(ctx context.Context, name ToolName) (context.Context, context.CancelFunc) {
	if timeout := t.TimeoutForTool(name); timeout > 0 {
		return context.WithTimeout(ctx, timeout)
	}
	return ctx, func() {}
}
