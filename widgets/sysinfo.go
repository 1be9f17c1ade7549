package widgets

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/tteejj/supertui/core/focus"
	cw "github.com/tteejj/supertui/core/widgets"
	"github.com/tteejj/supertui/core/workspace"
)

type sysinfoTickMsg struct {
	id string
}

// SysInfo shows process runtime statistics, refreshed every two seconds.
type SysInfo struct {
	id         string
	started    time.Time
	goroutines int
	heapAlloc  uint64
	heapSys    uint64
	numGC      uint32
	focused    bool
	tgt        *target
}

func NewSysInfo() *SysInfo {
	s := &SysInfo{id: uuid.NewString(), started: time.Now()}
	s.tgt = &target{
		id:      "sysinfo:" + s.id,
		onFocus: func() { s.focused = true },
		onBlur:  func() { s.focused = false },
	}
	s.sample()
	return s
}

func (s *SysInfo) sample() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	s.goroutines = runtime.NumGoroutine()
	s.heapAlloc = m.HeapAlloc
	s.heapSys = m.HeapSys
	s.numGC = m.NumGC
}

func (s *SysInfo) Title() string { return "System" }
func (s *SysInfo) Loaded() bool  { return true }

func (s *SysInfo) FocusTargets() []focus.Target { return []focus.Target{s.tgt} }

func (s *SysInfo) Init() tea.Cmd { return s.tick() }

func (s *SysInfo) tick() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return sysinfoTickMsg{id: s.id}
	})
}

func (s *SysInfo) Update(msg tea.Msg) (workspace.PaneContent, tea.Cmd) {
	if tick, ok := msg.(sysinfoTickMsg); ok && tick.id == s.id {
		s.sample()
		return s, s.tick()
	}
	return s, nil
}

func (s *SysInfo) View(width, height int) string {
	uptime := time.Since(s.started).Truncate(time.Second)
	proc := []string{
		fmt.Sprintf("go         %s", runtime.Version()),
		fmt.Sprintf("cpus       %d", runtime.NumCPU()),
		fmt.Sprintf("goroutines %d", s.goroutines),
	}
	mem := []string{
		fmt.Sprintf("heap       %s / %s", formatBytes(s.heapAlloc), formatBytes(s.heapSys)),
		fmt.Sprintf("gc cycles  %d", s.numGC),
		fmt.Sprintf("uptime     %s", uptime),
	}
	procCol := cw.RenderFunc(func(w, h int) string { return clipLines(proc, h) })
	memCol := cw.RenderFunc(func(w, h int) string { return clipLines(mem, h) })
	// Columns when the pane is wide enough for both, rows otherwise.
	if width >= 56 {
		return cw.HStack{Widgets: []cw.Widget{procCol, memCol}, Gap: 2}.Render(width, height)
	}
	return cw.VStack{Widgets: []cw.Widget{procCol, memCol}}.Render(width, height)
}

func clipLines(lines []string, height int) string {
	if height < len(lines) {
		lines = lines[:max(0, height)]
	}
	return strings.Join(lines, "\n")
}

func formatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
