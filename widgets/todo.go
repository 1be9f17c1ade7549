package widgets

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/tteejj/supertui/core/focus"
	"github.com/tteejj/supertui/core/workspace"
	"github.com/tteejj/supertui/internal/store"
)

type todosLoadedMsg struct {
	id    string
	todos []store.Todo
	err   error
}

type todoSavedMsg struct {
	id  string
	err error
}

// TodoList is a persistent checklist backed by sqlite. The list loads
// asynchronously, so focusing a fresh todo pane goes through the deferred
// focus path.
type TodoList struct {
	id      string
	ctx     context.Context
	repo    *store.TodoRepo
	todos   []store.Todo
	cursor  int
	loaded  bool
	lastErr error
	adding  bool
	input   textinput.Model
	focused bool
	tgt     *target
}

func NewTodoList(ctx context.Context, repo *store.TodoRepo) *TodoList {
	inp := textinput.New()
	inp.Placeholder = "New todo"
	inp.Prompt = "+ "
	t := &TodoList{id: uuid.NewString(), ctx: ctx, repo: repo, input: inp}
	t.tgt = &target{
		id:      "todo:" + t.id,
		loaded:  func() bool { return t.loaded },
		onFocus: func() { t.focused = true },
		onBlur:  func() { t.focused = false },
	}
	return t
}

func (t *TodoList) Title() string {
	if !t.loaded {
		return "Todo"
	}
	return fmt.Sprintf("Todo (%d)", t.remaining())
}

func (t *TodoList) Loaded() bool { return t.loaded }

func (t *TodoList) CapturesInput() bool { return t.adding }

func (t *TodoList) FocusTargets() []focus.Target { return []focus.Target{t.tgt} }

func (t *TodoList) Init() tea.Cmd { return t.load() }

func (t *TodoList) load() tea.Cmd {
	return func() tea.Msg {
		todos, err := t.repo.List(t.ctx)
		return todosLoadedMsg{id: t.id, todos: todos, err: err}
	}
}

func (t *TodoList) Update(msg tea.Msg) (workspace.PaneContent, tea.Cmd) {
	switch msg := msg.(type) {
	case todosLoadedMsg:
		if msg.id != t.id {
			return t, nil
		}
		t.loaded = true
		t.lastErr = msg.err
		if msg.err == nil {
			t.todos = msg.todos
			t.clampCursor()
		}
		return t, nil
	case todoSavedMsg:
		if msg.id != t.id {
			return t, nil
		}
		t.lastErr = msg.err
		if msg.err == nil {
			return t, t.load()
		}
		return t, nil
	case tea.KeyMsg:
		return t.handleKey(msg)
	}
	return t, nil
}

func (t *TodoList) handleKey(msg tea.KeyMsg) (workspace.PaneContent, tea.Cmd) {
	if t.adding {
		switch msg.String() {
		case "esc":
			t.adding = false
			t.input.Reset()
			return t, nil
		case "enter":
			title := strings.TrimSpace(t.input.Value())
			t.adding = false
			t.input.Reset()
			if title == "" {
				return t, nil
			}
			return t, t.add(title)
		}
		var cmd tea.Cmd
		t.input, cmd = t.input.Update(msg)
		return t, cmd
	}
	switch msg.String() {
	case "j", "down":
		t.cursor++
		t.clampCursor()
	case "k", "up":
		if t.cursor > 0 {
			t.cursor--
		}
	case "x", " ":
		if t.cursor < len(t.todos) {
			item := t.todos[t.cursor]
			item.Done = !item.Done
			t.todos[t.cursor] = item
			return t, t.setDone(item.ID, item.Done)
		}
	case "a":
		t.adding = true
		t.input.Focus()
		return t, textinput.Blink
	case "d":
		if t.cursor < len(t.todos) {
			id := t.todos[t.cursor].ID
			t.todos = append(t.todos[:t.cursor], t.todos[t.cursor+1:]...)
			t.clampCursor()
			return t, t.remove(id)
		}
	}
	return t, nil
}

func (t *TodoList) add(title string) tea.Cmd {
	return func() tea.Msg {
		now := store.Now()
		err := t.repo.Insert(t.ctx, store.Todo{
			ID:        uuid.NewString(),
			Title:     title,
			CreatedAt: now,
			UpdatedAt: now,
		})
		return todoSavedMsg{id: t.id, err: err}
	}
}

func (t *TodoList) setDone(todoID string, done bool) tea.Cmd {
	return func() tea.Msg {
		return todoSavedMsg{id: t.id, err: t.repo.SetDone(t.ctx, todoID, done)}
	}
}

func (t *TodoList) remove(todoID string) tea.Cmd {
	return func() tea.Msg {
		return todoSavedMsg{id: t.id, err: t.repo.Delete(t.ctx, todoID)}
	}
}

func (t *TodoList) clampCursor() {
	if t.cursor >= len(t.todos) {
		t.cursor = len(t.todos) - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
}

func (t *TodoList) View(width, height int) string {
	if !t.loaded {
		return "Loading..."
	}
	doneStyle := lipgloss.NewStyle().Faint(true).Strikethrough(true)
	lines := make([]string, 0, len(t.todos)+2)
	if t.lastErr != nil {
		lines = append(lines, "error: "+t.lastErr.Error())
	}
	if t.adding {
		lines = append(lines, t.input.View())
	}
	if len(t.todos) == 0 && !t.adding {
		lines = append(lines, "No todos. Press a to add one.")
	}
	for i, item := range t.todos {
		prefix := "  [ ] "
		if item.Done {
			prefix = "  [x] "
		}
		if i == t.cursor && t.focused && !t.adding {
			prefix = ">" + prefix[1:]
		}
		label := item.Title
		if item.Done {
			label = doneStyle.Render(label)
		}
		lines = append(lines, prefix+label)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func (t *TodoList) remaining() int {
	n := 0
	for _, item := range t.todos {
		if !item.Done {
			n++
		}
	}
	return n
}
