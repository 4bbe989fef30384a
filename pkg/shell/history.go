// Package shell reads shell history and clipboard for the fix command.
package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// HistoryEntry is one command from shell history. Exit codes are only
// available for shells configured to record them.
type HistoryEntry struct {
	Command  string
	ExitCode *int
}

// CurrentShell returns the short name of the user's shell ("zsh",
// "bash", ...) from $SHELL.
func CurrentShell() string {
	shell := os.Getenv("SHELL")
	if shell == "" {
		return "unknown"
	}
	parts := strings.Split(shell, "/")
	return parts[len(parts)-1]
}

// History returns up to limit most-recent commands from the shell's
// history file. Supports zsh (plain and extended format), bash and fish.
func History(limit int) ([]HistoryEntry, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("could not determine home directory: %w", err)
	}

	for _, path := range historyFiles(home, CurrentShell()) {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		entries := parseHistory(string(data))
		if len(entries) > limit {
			entries = entries[len(entries)-limit:]
		}
		return entries, nil
	}

	return nil, fmt.Errorf("could not read shell history; ensure your shell saves history to a file")
}

func historyFiles(home, shell string) []string {
	switch shell {
	case "zsh":
		return []string{
			filepath.Join(home, ".zsh_history"),
			filepath.Join(home, ".zhistory"),
		}
	case "bash":
		return []string{filepath.Join(home, ".bash_history")}
	case "fish":
		return []string{filepath.Join(home, ".local/share/fish/fish_history")}
	default:
		return []string{
			filepath.Join(home, ".bash_history"),
			filepath.Join(home, ".zsh_history"),
		}
	}
}

// parseHistory handles plain lines, zsh extended format
// (": 1234567890:0;command") and fish format ("- cmd: command").
func parseHistory(content string) []HistoryEntry {
	var entries []HistoryEntry
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ":") {
			if _, cmd, ok := strings.Cut(line, ";"); ok {
				entries = append(entries, HistoryEntry{Command: cmd})
			}
			continue
		}

		if cmd, ok := strings.CutPrefix(line, "- cmd: "); ok {
			entries = append(entries, HistoryEntry{Command: cmd})
			continue
		}

		if strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, HistoryEntry{Command: line})
	}
	return entries
}

// LastFailedIndex guesses which history entry failed. Exit codes win
// when recorded; otherwise the most recent build/VCS-style command is
// assumed, falling back to the last entry.
func LastFailedIndex(history []HistoryEntry) int {
	if len(history) == 0 {
		return -1
	}
	for i := len(history) - 1; i >= 0; i-- {
		if code := history[i].ExitCode; code != nil && *code != 0 {
			return i
		}
	}

	last := history[len(history)-1]
	cmd := strings.ToLower(strings.TrimSpace(last.Command))
	for _, prefix := range []string{"go ", "cargo ", "npm ", "git ", "make", "docker "} {
		if strings.HasPrefix(cmd, prefix) {
			return len(history) - 1
		}
	}
	return len(history) - 1
}

// ZshExtendedHistoryEnabled reports whether the zsh history file uses
// the extended format (timestamps, which improves failure detection).
func ZshExtendedHistoryEnabled() bool {
	home, err := os.UserHomeDir()
	if err != nil {
		return false
	}
	data, err := os.ReadFile(filepath.Join(home, ".zsh_history"))
	if err != nil {
		return false
	}
	lines := strings.Split(string(data), "\n")
	if len(lines) > 50 {
		lines = lines[:50]
	}
	for _, line := range lines {
		if strings.HasPrefix(line, ":") && strings.Contains(line, ";") {
			return true
		}
	}
	return false
}

// StartupErrors returns recent lines from the startup error log written
// by the advanced zsh setup, newest first.
func StartupErrors() ([]string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(home, ".zsh_startup_errors.log"))
	if err != nil {
		return nil, fmt.Errorf("no startup error log found")
	}

	var recent []string
	lines := strings.Split(string(data), "\n")
	for i := len(lines) - 1; i >= 0 && len(recent) < 20; i-- {
		if strings.TrimSpace(lines[i]) != "" {
			recent = append(recent, lines[i])
		}
	}
	if len(recent) == 0 {
		return nil, fmt.Errorf("no startup error log found")
	}
	return recent, nil
}
