package widgets

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestProviderCreatesEveryTag(t *testing.T) {
	p := NewProvider(context.Background(), nil, nil)
	for _, tag := range p.Tags() {
		content, err := p.Create(tag)
		if err != nil {
			t.Fatalf("Create(%q): %v", tag, err)
		}
		if content == nil {
			t.Fatalf("Create(%q) returned nil content", tag)
		}
		if Describe(tag) == "" {
			t.Fatalf("Describe(%q) empty", tag)
		}
	}
	if _, err := p.Create("nope"); err == nil {
		t.Fatalf("expected error for unknown tag")
	}
}

func TestClockTickUpdatesTime(t *testing.T) {
	c := NewClock()
	before := c.now
	next, cmd := c.Update(clockTickMsg{id: c.id, at: before.Add(1e9)})
	if cmd == nil {
		t.Fatalf("tick did not re-arm")
	}
	if next.(*Clock).now == before {
		t.Fatalf("time not updated")
	}

	// Another clock's tick is ignored.
	other := NewClock()
	_, cmd = other.Update(clockTickMsg{id: c.id, at: before})
	if cmd != nil {
		t.Fatalf("foreign tick re-armed")
	}
}

func TestSysInfoViewListsStats(t *testing.T) {
	s := NewSysInfo()
	out := s.View(40, 10)
	for _, want := range []string{"goroutines", "heap", "uptime"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
}

func TestSysInfoWideViewUsesColumns(t *testing.T) {
	s := NewSysInfo()
	wide := s.View(80, 10)
	for _, line := range strings.Split(wide, "\n") {
		if strings.Contains(line, "goroutines") && !strings.Contains(line, "uptime") {
			t.Fatalf("wide view should place stat groups side by side:\n%s", wide)
		}
	}
	narrow := s.View(30, 10)
	for _, line := range strings.Split(narrow, "\n") {
		if strings.Contains(line, "goroutines") && strings.Contains(line, "uptime") {
			t.Fatalf("narrow view should stack stat groups:\n%s", narrow)
		}
	}
}

func TestTodoAddModeCapturesInput(t *testing.T) {
	todo := NewTodoList(context.Background(), nil)
	todo.loaded = true
	if todo.CapturesInput() {
		t.Fatalf("captures input before entering add mode")
	}
	todo.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	if !todo.CapturesInput() {
		t.Fatalf("add mode does not capture input")
	}
	todo.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if todo.CapturesInput() {
		t.Fatalf("esc did not leave add mode")
	}
}

func TestFileBrowserNavigates(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "file.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	f := NewFileBrowser(root)
	f.Update(f.Init()())
	if !f.Loaded() {
		t.Fatalf("not loaded after initial read")
	}
	out := f.View(40, 10)
	if !strings.Contains(out, "sub/") || !strings.Contains(out, "file.txt") {
		t.Fatalf("listing missing entries:\n%s", out)
	}

	// Directories sort first; enter descends into sub.
	_, cmd := f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("enter on directory returned no read")
	}
	f.Update(cmd())
	if f.path != filepath.Join(root, "sub") {
		t.Fatalf("path = %q, want sub", f.path)
	}

	_, cmd = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})
	if cmd == nil {
		t.Fatalf("h at child returned no read")
	}
	f.Update(cmd())
	if f.path != root {
		t.Fatalf("path = %q, want root", f.path)
	}
}
