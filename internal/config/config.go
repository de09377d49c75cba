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


package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	apperrors "toolmanager/internal/errors"
	"toolmanager/internal/tools"
)

// EnvPrefix is prepended to every environment override, e.g.
// TOOLMANAGER_COMMAND_TIMEOUT for command.timeout.
const EnvPrefix = "TOOLMANAGER"

// Config represents the application configuration
type Config struct {
	WorkDir            string          `mapstructure:"workdir"`
	HomeDir            string          `mapstructure:"home_dir"`
	ListFilesLimit     int             `mapstructure:"list_files_limit"`
	Command            CommandConfig   `mapstructure:"command"`
	Output             OutputConfig    `mapstructure:"output"`
	Traversal          TraversalConfig `mapstructure:"traversal"`
	Approval           ApprovalConfig  `mapstructure:"approval"`
	CommandHistoryFile string          `mapstructure:"command_history_file"`
}

// CommandConfig configures execute_command.
type CommandConfig struct {
	Shell   string        `mapstructure:"shell"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// OutputConfig configures sanitization of command output.
type OutputConfig struct {
	MaxChars     int  `mapstructure:"max_chars"`
	StripANSI    bool `mapstructure:"strip_ansi"`
	StripControl bool `mapstructure:"strip_control"`
}

// TraversalConfig configures directory walking.
type TraversalConfig struct {
	RespectGitignore bool `mapstructure:"respect_gitignore"`
}

// ApprovalConfig lists the tools that need user approval.
type ApprovalConfig struct {
	Require []string `mapstructure:"require"`
}

const defaultCommandHistoryFile = ".toolmanager_history"

func setDefaults(v *viper.Viper) {
	v.SetDefault("workdir", "")
	v.SetDefault("home_dir", "")
	v.SetDefault("list_files_limit", tools.DefaultLimits().ListFilesLimit)
	v.SetDefault("command.shell", "")
	v.SetDefault("command.timeout", "0s")
	v.SetDefault("output.max_chars", tools.DefaultOutputFilterConfig().MaxChars)
	v.SetDefault("output.strip_ansi", tools.DefaultOutputFilterConfig().StripANSI)
	v.SetDefault("output.strip_control", tools.DefaultOutputFilterConfig().StripControl)
	v.SetDefault("traversal.respect_gitignore", false)
	v.SetDefault("approval.require", toolNames(tools.DefaultApprovalList))
	v.SetDefault("command_history_file", defaultCommandHistoryFile)
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	return &Config{
		ListFilesLimit: tools.DefaultLimits().ListFilesLimit,
		Output: OutputConfig{
			MaxChars:     tools.DefaultOutputFilterConfig().MaxChars,
			StripANSI:    tools.DefaultOutputFilterConfig().StripANSI,
			StripControl: tools.DefaultOutputFilterConfig().StripControl,
		},
		Approval:           ApprovalConfig{Require: toolNames(tools.DefaultApprovalList)},
		CommandHistoryFile: defaultCommandHistoryFile,
	}
}

// LoadConfig reads configuration from an optional JSON file and
// TOOLMANAGER_* environment variables. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	// Replace dots with underscores in env var names e.g. command.timeout becomes TOOLMANAGER_COMMAND_TIMEOUT
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, apperrors.Wrap(apperrors.CodeConfig, "failed to read config file", err)
			}
			if err := validateConfigJSON(data); err != nil {
				return nil, apperrors.Wrap(apperrors.CodeConfig, fmt.Sprintf("invalid config file %s", path), err)
			}
			v.SetConfigType("json")
			if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
				return nil, apperrors.Wrap(apperrors.CodeConfig, "failed to parse config file", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeConfig, "unable to decode config", err)
	}
	return cfg, nil
}

// DispatcherOptions converts the configuration into dispatcher options.
// Logger and Approver are left for the caller to set.
func (c *Config) DispatcherOptions() tools.Options {
	opts := tools.Options{
		WorkDir:          c.WorkDir,
		HomeDir:          c.HomeDir,
		Shell:            c.Command.Shell,
		RespectGitignore: c.Traversal.RespectGitignore,
		Limits:           tools.Limits{ListFilesLimit: c.ListFilesLimit},
		Timeouts:         tools.DefaultTimeoutConfig(),
		OutputFilters: tools.OutputFilterConfig{
			MaxChars:     c.Output.MaxChars,
			StripANSI:    c.Output.StripANSI,
			StripControl: c.Output.StripControl,
		},
		Policy: tools.PolicyFromList(c.approvalList()),
	}
	if c.Command.Timeout > 0 {
		opts.Timeouts.PerTool = map[tools.ToolName]time.Duration{
			tools.ToolExecuteCommand: c.Command.Timeout,
		}
	}
	return opts
}

func (c *Config) approvalList() []tools.ToolName {
	names := make([]tools.ToolName, 0, len(c.Approval.Require))
	for _, name := range c.Approval.Require {
		names = append(names, tools.ToolName(name))
	}
	return names
}

// ValidationWarning represents a non-fatal configuration issue
type ValidationWarning struct {
	Field   string
	Message string
}

// Validate checks the configuration for common issues and returns warnings
func (c *Config) Validate(registry *tools.Registry) []ValidationWarning {
	var warnings []ValidationWarning

	if c.ListFilesLimit <= 0 {
		warnings = append(warnings, ValidationWarning{
			Field:   "list_files_limit",
			Message: fmt.Sprintf("list_files_limit %d should be positive, using default", c.ListFilesLimit),
		})
	}

	if c.Command.Timeout < 0 {
		warnings = append(warnings, ValidationWarning{
			Field:   "command.timeout",
			Message: fmt.Sprintf("command.timeout %s is negative, commands will not time out", c.Command.Timeout),
		})
	}

	if c.Output.MaxChars < 0 {
		warnings = append(warnings, ValidationWarning{
			Field:   "output.max_chars",
			Message: fmt.Sprintf("output.max_chars %d is negative, output will not be truncated", c.Output.MaxChars),
		})
	}

	if c.WorkDir != "" {
		if info, err := os.Stat(c.WorkDir); err != nil || !info.IsDir() {
			warnings = append(warnings, ValidationWarning{
				Field:   "workdir",
				Message: fmt.Sprintf("workdir %q is not an existing directory", c.WorkDir),
			})
		}
	}

	if c.Command.Shell != "" && filepath.IsAbs(c.Command.Shell) {
		if _, err := os.Stat(c.Command.Shell); err != nil {
			warnings = append(warnings, ValidationWarning{
				Field:   "command.shell",
				Message: fmt.Sprintf("shell %q does not exist", c.Command.Shell),
			})
		}
	}

	// Validate approval list against registered tools
	if registry != nil {
		for _, name := range c.Approval.Require {
			if !registry.Has(tools.ToolName(name)) {
				warnings = append(warnings, ValidationWarning{
					Field:   "approval.require",
					Message: fmt.Sprintf("tool %q in approval list is not registered", name),
				})
			}
		}
	}

	return warnings
}

func toolNames(names []tools.ToolName) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = string(name)
	}
	return out
}
