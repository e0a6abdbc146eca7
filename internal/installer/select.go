package installer

import (
	"errors"
	"strconv"
	"strings"

	"github.com/loadout-sh/loadout/internal/task"
)

// ErrEmptySelection is returned for blank input. The caller treats it as
// fatal: the run aborts with a nonzero exit and no task executes.
var ErrEmptySelection = errors.New("no selection entered")

// Selection is the parsed result of one menu input line.
type Selection struct {
	Quit    bool
	All     bool
	IDs     []int    // requested task IDs, input order, deduplicated
	Unknown []string // unrecognized tokens, reported as warnings
}

// ParseSelection parses a free-text menu selection. Tokens are separated
// by commas and/or whitespace and trimmed. "all", "everything" and "20"
// (case-insensitive) request the full fixed sequence; "0", "q" and
// "quit" request a clean exit.
func ParseSelection(input string) (Selection, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Selection{}, ErrEmptySelection
	}

	switch strings.ToLower(trimmed) {
	case "0", "q", "quit", "exit":
		return Selection{Quit: true}, nil
	}

	tokens := strings.FieldsFunc(trimmed, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	var sel Selection
	seen := make(map[int]bool)
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		switch strings.ToLower(tok) {
		case "all", "everything", strconv.Itoa(task.AllID):
			sel.All = true
			continue
		}
		id, err := strconv.Atoi(tok)
		if err != nil {
			sel.Unknown = append(sel.Unknown, tok)
			continue
		}
		if _, ok := task.ByID(id); !ok {
			sel.Unknown = append(sel.Unknown, tok)
			continue
		}
		if !seen[id] {
			seen[id] = true
			sel.IDs = append(sel.IDs, id)
		}
	}

	return sel, nil
}

// Tasks resolves the selection against the registry. The full fixed
// sequence wins over any individually listed IDs so nothing runs twice.
func (s Selection) Tasks() []task.Task {
	if s.All {
		return task.All()
	}
	out := make([]task.Task, 0, len(s.IDs))
	for _, id := range s.IDs {
		if t, ok := task.ByID(id); ok {
			out = append(out, t)
		}
	}
	return out
}
