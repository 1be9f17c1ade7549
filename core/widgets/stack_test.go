package widgets

import (
	"strings"
	"testing"
)

func fillFunc(ch string) Widget {
	return RenderFunc(func(width, height int) string {
		rows := make([]string, height)
		for i := range rows {
			rows[i] = strings.Repeat(ch, width)
		}
		return strings.Join(rows, "\n")
	})
}

func TestVStackSplitsHeight(t *testing.T) {
	v := VStack{Widgets: []Widget{fillFunc("a"), fillFunc("b")}, Spacing: 1}
	out := strings.Split(v.Render(4, 5), "\n")
	if len(out) != 5 {
		t.Fatalf("lines = %d, want 5", len(out))
	}
	if out[0] != "aaaa" || out[2] != "" || out[3] != "bbbb" {
		t.Fatalf("unexpected rows: %q", out)
	}
}

func TestVStackRatios(t *testing.T) {
	v := VStack{Widgets: []Widget{fillFunc("a"), fillFunc("b")}, Ratios: []float64{3, 1}}
	out := strings.Split(v.Render(2, 8), "\n")
	got := 0
	for _, line := range out {
		if line == "aa" {
			got++
		}
	}
	if got != 6 {
		t.Fatalf("first widget rows = %d, want 6", got)
	}
}

func TestHStackJoinsColumns(t *testing.T) {
	h := HStack{Widgets: []Widget{fillFunc("a"), fillFunc("b")}, Gap: 1}
	out := strings.Split(h.Render(7, 2), "\n")
	if len(out) != 2 {
		t.Fatalf("lines = %d, want 2", len(out))
	}
	for _, line := range out {
		if line != "aaa bbb" {
			t.Fatalf("row = %q, want %q", line, "aaa bbb")
		}
	}
}

func TestHStackPadsShortColumns(t *testing.T) {
	short := RenderFunc(func(width, height int) string { return strings.Repeat("x", width) })
	h := HStack{Widgets: []Widget{short, fillFunc("b")}}
	out := strings.Split(h.Render(6, 2), "\n")
	if out[1] != "   bbb" {
		t.Fatalf("second row = %q, want short column padded", out[1])
	}
}

func TestStacksEmpty(t *testing.T) {
	if (VStack{}).Render(4, 4) != "" {
		t.Fatalf("empty vstack should render nothing")
	}
	if (HStack{}).Render(4, 4) != "" {
		t.Fatalf("empty hstack should render nothing")
	}
}
