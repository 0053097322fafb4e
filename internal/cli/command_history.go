package cli

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

const maxHistoryLines = 500

// commandHistory is the command bar's recall list. With a path it is
// loaded from and appended to that file; without one it lives in memory.
type commandHistory struct {
	path  string
	lines []string
	idx   int // len(lines) when not recalling
}

func loadCommandHistory(path string) *commandHistory {
	h := &commandHistory{path: path}
	if path != "" {
		h.lines = readHistoryFile(path)
	}
	h.idx = len(h.lines)
	return h
}

// add records a line and resets recall to the newest entry.
func (h *commandHistory) add(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	h.lines = append(h.lines, line)
	if len(h.lines) > maxHistoryLines {
		h.lines = h.lines[len(h.lines)-maxHistoryLines:]
	}
	h.idx = len(h.lines)
	if h.path != "" {
		appendHistoryFile(h.path, line)
	}
}

// prev steps back one entry. ok is false at the oldest entry.
func (h *commandHistory) prev() (line string, ok bool) {
	if h.idx == 0 {
		return "", false
	}
	h.idx--
	return h.lines[h.idx], true
}

// next steps forward one entry, returning "" once past the newest.
func (h *commandHistory) next() string {
	if h.idx < len(h.lines)-1 {
		h.idx++
		return h.lines[h.idx]
	}
	h.idx = len(h.lines)
	return ""
}

func readHistoryFile(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) > maxHistoryLines {
		lines = lines[len(lines)-maxHistoryLines:]
	}
	return lines
}

// appendHistoryFile is best-effort: a history write never fails a command.
func appendHistoryFile(path, line string) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = f.WriteString(line + "\n")
}
