package widgets

import (
	"context"
	"fmt"

	"github.com/tteejj/supertui/core/workspace"
	"github.com/tteejj/supertui/internal/store"
)

// Provider builds the built-in widgets by type tag. It carries the repos
// so persistent widgets stay decoupled from the database wiring.
type Provider struct {
	ctx   context.Context
	notes *store.NoteRepo
	todos *store.TodoRepo
}

func NewProvider(ctx context.Context, notes *store.NoteRepo, todos *store.TodoRepo) *Provider {
	return &Provider{ctx: ctx, notes: notes, todos: todos}
}

func (p *Provider) Create(typeTag string) (workspace.PaneContent, error) {
	switch typeTag {
	case "clock":
		return NewClock(), nil
	case "sysinfo":
		return NewSysInfo(), nil
	case "todo":
		return NewTodoList(p.ctx, p.todos), nil
	case "notes":
		return NewNotes(p.ctx, p.notes), nil
	case "files":
		return NewFileBrowser(""), nil
	}
	return nil, fmt.Errorf("unknown pane type %q", typeTag)
}

func (p *Provider) Tags() []string {
	return []string{"clock", "files", "notes", "sysinfo", "todo"}
}

// Describe returns the one-line blurb shown in the pane picker.
func Describe(typeTag string) string {
	switch typeTag {
	case "clock":
		return "Wall-clock time"
	case "sysinfo":
		return "Process runtime stats"
	case "todo":
		return "Persistent checklist"
	case "notes":
		return "Notepad with editor"
	case "files":
		return "Read-only file browser"
	}
	return ""
}

var _ workspace.ContentProvider = (*Provider)(nil)
