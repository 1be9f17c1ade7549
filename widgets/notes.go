package widgets

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/tteejj/supertui/core/focus"
	"github.com/tteejj/supertui/core/workspace"
	"github.com/tteejj/supertui/internal/store"
)

type notesLoadedMsg struct {
	id    string
	notes []store.Note
	err   error
}

type noteSavedMsg struct {
	id  string
	err error
}

type notesMode int

const (
	notesBrowsing notesMode = iota
	notesTitling
	notesEditing
)

// Notes is a sqlite-backed notepad. Browsing lists notes; n starts a new
// note (title, then body), enter opens the selected note's body in the
// editor, d deletes.
type Notes struct {
	id      string
	ctx     context.Context
	repo    *store.NoteRepo
	notes   []store.Note
	cursor  int
	loaded  bool
	lastErr error
	mode    notesMode
	editing *store.Note
	title   textinput.Model
	body    textarea.Model
	focused bool
	listTgt *target
	editTgt *target
}

func NewNotes(ctx context.Context, repo *store.NoteRepo) *Notes {
	title := textinput.New()
	title.Placeholder = "Note title"
	title.Prompt = "# "
	body := textarea.New()
	body.Placeholder = "Write..."
	n := &Notes{id: uuid.NewString(), ctx: ctx, repo: repo, title: title, body: body}
	n.listTgt = &target{
		id:      "notes:" + n.id,
		loaded:  func() bool { return n.loaded },
		onFocus: func() { n.focused = true },
		onBlur:  func() { n.focused = false },
	}
	n.editTgt = &target{
		id:        "notes-editor:" + n.id,
		focusable: func() bool { return n.mode == notesEditing },
		loaded:    func() bool { return n.loaded },
		onFocus:   func() { n.focused = true },
		onBlur:    func() { n.focused = false },
	}
	return n
}

func (n *Notes) Title() string { return "Notes" }
func (n *Notes) Loaded() bool  { return n.loaded }

func (n *Notes) CapturesInput() bool { return n.mode != notesBrowsing }

func (n *Notes) FocusTargets() []focus.Target {
	return []focus.Target{n.listTgt, n.editTgt}
}

func (n *Notes) Init() tea.Cmd { return n.load() }

func (n *Notes) load() tea.Cmd {
	return func() tea.Msg {
		notes, err := n.repo.List(n.ctx)
		return notesLoadedMsg{id: n.id, notes: notes, err: err}
	}
}

func (n *Notes) Update(msg tea.Msg) (workspace.PaneContent, tea.Cmd) {
	switch msg := msg.(type) {
	case notesLoadedMsg:
		if msg.id != n.id {
			return n, nil
		}
		n.loaded = true
		n.lastErr = msg.err
		if msg.err == nil {
			n.notes = msg.notes
			n.clampCursor()
		}
		return n, nil
	case noteSavedMsg:
		if msg.id != n.id {
			return n, nil
		}
		n.lastErr = msg.err
		if msg.err == nil {
			return n, n.load()
		}
		return n, nil
	case tea.KeyMsg:
		return n.handleKey(msg)
	}
	return n, nil
}

func (n *Notes) handleKey(msg tea.KeyMsg) (workspace.PaneContent, tea.Cmd) {
	switch n.mode {
	case notesTitling:
		switch msg.String() {
		case "esc":
			n.mode = notesBrowsing
			n.title.Reset()
			return n, nil
		case "enter":
			t := strings.TrimSpace(n.title.Value())
			n.title.Reset()
			if t == "" {
				n.mode = notesBrowsing
				return n, nil
			}
			now := store.Now()
			n.editing = &store.Note{ID: uuid.NewString(), Title: t, CreatedAt: now, UpdatedAt: now}
			n.mode = notesEditing
			n.body.Reset()
			n.body.Focus()
			return n, textarea.Blink
		}
		var cmd tea.Cmd
		n.title, cmd = n.title.Update(msg)
		return n, cmd
	case notesEditing:
		switch msg.String() {
		case "esc":
			note := *n.editing
			note.Body = n.body.Value()
			note.UpdatedAt = store.Now()
			n.mode = notesBrowsing
			n.editing = nil
			n.body.Blur()
			return n, n.save(note)
		}
		var cmd tea.Cmd
		n.body, cmd = n.body.Update(msg)
		return n, cmd
	}
	switch msg.String() {
	case "j", "down":
		n.cursor++
		n.clampCursor()
	case "k", "up":
		if n.cursor > 0 {
			n.cursor--
		}
	case "n":
		n.mode = notesTitling
		n.title.Focus()
		return n, textinput.Blink
	case "enter":
		if n.cursor < len(n.notes) {
			note := n.notes[n.cursor]
			n.editing = &note
			n.mode = notesEditing
			n.body.SetValue(note.Body)
			n.body.Focus()
			return n, textarea.Blink
		}
	case "d":
		if n.cursor < len(n.notes) {
			id := n.notes[n.cursor].ID
			n.notes = append(n.notes[:n.cursor], n.notes[n.cursor+1:]...)
			n.clampCursor()
			return n, n.delete(id)
		}
	}
	return n, nil
}

func (n *Notes) save(note store.Note) tea.Cmd {
	return func() tea.Msg {
		return noteSavedMsg{id: n.id, err: n.repo.Upsert(n.ctx, note)}
	}
}

func (n *Notes) delete(noteID string) tea.Cmd {
	return func() tea.Msg {
		return noteSavedMsg{id: n.id, err: n.repo.Delete(n.ctx, noteID)}
	}
}

func (n *Notes) clampCursor() {
	if n.cursor >= len(n.notes) {
		n.cursor = len(n.notes) - 1
	}
	if n.cursor < 0 {
		n.cursor = 0
	}
}

func (n *Notes) View(width, height int) string {
	if !n.loaded {
		return "Loading..."
	}
	switch n.mode {
	case notesTitling:
		return n.title.View()
	case notesEditing:
		n.body.SetWidth(max(10, width))
		n.body.SetHeight(max(3, height-1))
		header := n.editing.Title + "  (esc saves)"
		return header + "\n" + n.body.View()
	}
	metaStyle := lipgloss.NewStyle().Faint(true)
	lines := make([]string, 0, len(n.notes)+1)
	if n.lastErr != nil {
		lines = append(lines, "error: "+n.lastErr.Error())
	}
	if len(n.notes) == 0 {
		lines = append(lines, "No notes. Press n to write one.")
	}
	for i, note := range n.notes {
		prefix := "  "
		if i == n.cursor && n.focused {
			prefix = "> "
		}
		line := prefix + note.Title + " " + metaStyle.Render(note.UpdatedAt.Format("02 Jan"))
		lines = append(lines, line)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
