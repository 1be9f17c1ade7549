package widgets

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/tteejj/supertui/core/focus"
	"github.com/tteejj/supertui/core/workspace"
)

type fileEntry struct {
	name  string
	isDir bool
}

type dirLoadedMsg struct {
	id      string
	path    string
	entries []fileEntry
	err     error
}

// FileBrowser navigates the filesystem read-only: enter descends into
// directories, h or backspace goes up. Directory reads happen off the
// update loop.
type FileBrowser struct {
	id      string
	path    string
	entries []fileEntry
	cursor  int
	loaded  bool
	lastErr error
	focused bool
	tgt     *target
}

func NewFileBrowser(root string) *FileBrowser {
	if root == "" {
		root = os.Getenv("HOME")
	}
	if root == "" {
		root = "/"
	}
	f := &FileBrowser{id: uuid.NewString(), path: root}
	f.tgt = &target{
		id:      "files:" + f.id,
		loaded:  func() bool { return f.loaded },
		onFocus: func() { f.focused = true },
		onBlur:  func() { f.focused = false },
	}
	return f
}

func (f *FileBrowser) Title() string { return "Files" }
func (f *FileBrowser) Loaded() bool  { return f.loaded }

func (f *FileBrowser) FocusTargets() []focus.Target { return []focus.Target{f.tgt} }

func (f *FileBrowser) Init() tea.Cmd { return f.read(f.path) }

func (f *FileBrowser) read(path string) tea.Cmd {
	return func() tea.Msg {
		dirents, err := os.ReadDir(path)
		if err != nil {
			return dirLoadedMsg{id: f.id, path: path, err: err}
		}
		entries := make([]fileEntry, 0, len(dirents))
		for _, d := range dirents {
			if strings.HasPrefix(d.Name(), ".") {
				continue
			}
			entries = append(entries, fileEntry{name: d.Name(), isDir: d.IsDir()})
		}
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].isDir != entries[j].isDir {
				return entries[i].isDir
			}
			return entries[i].name < entries[j].name
		})
		return dirLoadedMsg{id: f.id, path: path, entries: entries}
	}
}

func (f *FileBrowser) Update(msg tea.Msg) (workspace.PaneContent, tea.Cmd) {
	switch msg := msg.(type) {
	case dirLoadedMsg:
		if msg.id != f.id {
			return f, nil
		}
		f.loaded = true
		f.lastErr = msg.err
		if msg.err == nil {
			f.path = msg.path
			f.entries = msg.entries
			f.cursor = 0
		}
		return f, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if f.cursor < len(f.entries)-1 {
				f.cursor++
			}
		case "k", "up":
			if f.cursor > 0 {
				f.cursor--
			}
		case "enter", "l":
			if f.cursor < len(f.entries) && f.entries[f.cursor].isDir {
				return f, f.read(filepath.Join(f.path, f.entries[f.cursor].name))
			}
		case "h", "backspace":
			parent := filepath.Dir(f.path)
			if parent != f.path {
				return f, f.read(parent)
			}
		}
	}
	return f, nil
}

func (f *FileBrowser) View(width, height int) string {
	if !f.loaded {
		return "Loading..."
	}
	dirStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89b4fa"))
	lines := make([]string, 0, len(f.entries)+2)
	lines = append(lines, f.path)
	if f.lastErr != nil {
		lines = append(lines, "error: "+f.lastErr.Error())
	}
	if len(f.entries) == 0 {
		lines = append(lines, "  (empty)")
	}
	for i, e := range f.entries {
		prefix := "  "
		if i == f.cursor && f.focused {
			prefix = "> "
		}
		name := e.name
		if e.isDir {
			name = dirStyle.Render(name + "/")
		}
		lines = append(lines, prefix+name)
	}
	if len(lines) > height {
		keep := height - 1
		if keep < 1 {
			keep = 1
		}
		start := 0
		if f.cursor+1 >= keep {
			start = f.cursor + 2 - keep
		}
		body := lines[1:]
		if start+keep-1 <= len(body) {
			body = body[start : start+keep-1]
		} else {
			body = body[start:]
		}
		lines = append([]string{lines[0]}, body...)
	}
	return strings.Join(lines, "\n")
}
