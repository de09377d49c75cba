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
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestInitLogger(t *testing.T) {
	_, closer, err := initLogger(false, "")
	if err != nil {
		t.Fatalf("initLogger failed: %v", err)
	}
	if closer != nil {
		t.Fatal("expected no closer without a log file")
	}

	_, _, err = initLogger(true, "")
	if err != nil {
		t.Fatalf("initLogger with debug failed: %v", err)
	}
	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Fatalf("expected debug level, got %s", zerolog.GlobalLevel())
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func TestInitLoggerWithFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "test.log")

	logger, closer, err := initLogger(false, logFile)
	if err != nil {
		t.Fatalf("initLogger failed: %v", err)
	}
	if closer == nil {
		t.Fatal("expected a closer for the log file")
	}
	defer func() {
		_ = closer.Close()
	}()

	logger.Info().Msg("Test message")

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if len(content) == 0 {
		t.Error("Log file is empty")
	}
}

func TestInitLoggerBadPath(t *testing.T) {
	_, _, err := initLogger(false, filepath.Join(t.TempDir(), "missing", "dir", "test.log"))
	if err == nil {
		t.Fatal("expected error for unwritable log path")
	}
}

func TestNewDispatcherFromConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{"workdir": "` + filepath.ToSlash(dir) + `", "approval": {"require": ["write_to_file"]}}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, dispatcher, err := newDispatcher(path, zerolog.Nop(), nil)
	if err != nil {
		t.Fatalf("newDispatcher failed: %v", err)
	}
	if cfg.CommandHistoryFile != ".toolmanager_history" {
		t.Fatalf("unexpected history file %q", cfg.CommandHistoryFile)
	}
	if dispatcher.WorkDir() != filepath.Clean(dir) {
		t.Fatalf("expected workdir %s, got %s", dir, dispatcher.WorkDir())
	}
}

func TestNewDispatcherRejectsBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"model": "gpt"}`), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, _, err := newDispatcher(path, zerolog.Nop(), nil); err == nil {
		t.Fatal("expected error for unknown config key")
	}
}

func TestFlagsDefined(t *testing.T) {
	if debugMode == nil || logFile == nil || configPath == nil || exportFlag == nil || version == nil {
		t.Fatal("expected all flags to be defined")
	}
	if *configPath != "config.json" {
		t.Fatalf("unexpected default config path %q", *configPath)
	}
	if Version == "" {
		t.Error("Version variable should not be empty")
	}
}
