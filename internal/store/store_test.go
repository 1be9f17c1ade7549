package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func openTestDB(t *testing.T) *TestDB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := RunMigrationsWithDB(db, "migrations"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return &TestDB{
		Todos:      NewTodoRepo(db),
		Notes:      NewNoteRepo(db),
		Workspaces: NewWorkspaceRepo(db),
	}
}

type TestDB struct {
	Todos      *TodoRepo
	Notes      *NoteRepo
	Workspaces *WorkspaceRepo
}

func TestMigrateLeavesHandleOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()
	if err := RunMigrationsWithDB(db, "migrations"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM todos").Scan(&n); err != nil {
		t.Fatalf("query after migrate: %v", err)
	}
	if err := RunMigrationsWithDB(db, "migrations"); err != nil {
		t.Fatalf("re-migrate up to date: %v", err)
	}
}

func TestRunMigrationsByPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	if err := RunMigrations(path, "migrations"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	db, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM workspaces").Scan(&n); err != nil {
		t.Fatalf("schema missing after migrate: %v", err)
	}
}

func TestTodoLifecycle(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	now := Now()
	todo := Todo{ID: uuid.NewString(), Title: "write tests", CreatedAt: now, UpdatedAt: now}
	if err := db.Todos.Insert(ctx, todo); err != nil {
		t.Fatalf("insert: %v", err)
	}

	if err := db.Todos.SetDone(ctx, todo.ID, true); err != nil {
		t.Fatalf("set done: %v", err)
	}

	todos, err := db.Todos.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(todos) != 1 || !todos[0].Done {
		t.Fatalf("todos = %+v, want one done item", todos)
	}

	if err := db.Todos.Delete(ctx, todo.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	todos, _ = db.Todos.List(ctx)
	if len(todos) != 0 {
		t.Fatalf("todos = %+v, want empty", todos)
	}
}

func TestTodoListOrdersOpenFirst(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	now := Now()
	done := Todo{ID: uuid.NewString(), Title: "done", Done: true, CreatedAt: now, UpdatedAt: now}
	open := Todo{ID: uuid.NewString(), Title: "open", CreatedAt: now.Add(1), UpdatedAt: now}
	if err := db.Todos.Insert(ctx, done); err != nil {
		t.Fatal(err)
	}
	if err := db.Todos.Insert(ctx, open); err != nil {
		t.Fatal(err)
	}

	todos, err := db.Todos.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(todos) != 2 || todos[0].Title != "open" {
		t.Fatalf("todos = %+v, want open first", todos)
	}
}

func TestNoteUpsertAndLookup(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	now := Now()
	note := Note{ID: uuid.NewString(), Title: "plan", Body: "v1", CreatedAt: now, UpdatedAt: now}
	if err := db.Notes.Upsert(ctx, note); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	note.Body = "v2"
	if err := db.Notes.Upsert(ctx, note); err != nil {
		t.Fatalf("upsert update: %v", err)
	}

	got, err := db.Notes.ByID(ctx, note.ID)
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if got == nil || got.Body != "v2" {
		t.Fatalf("got = %+v, want body v2", got)
	}

	missing, err := db.Notes.ByID(ctx, "nope")
	if err != nil || missing != nil {
		t.Fatalf("missing lookup = %+v, %v, want nil, nil", missing, err)
	}
}

func TestWorkspaceRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	paneA := uuid.NewString()
	rec := WorkspaceRecord{
		ID:            uuid.NewString(),
		Name:          "Main",
		LayoutMode:    "auto",
		FocusedPaneID: &paneA,
		Position:      0,
		Panes: []PaneRecord{
			{ID: paneA, TypeTag: "clock", Position: 0},
			{ID: uuid.NewString(), TypeTag: "todo", Position: 1},
		},
	}
	if err := db.Workspaces.Save(ctx, rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Saving again with fewer panes replaces, not appends.
	rec.Panes = rec.Panes[:1]
	if err := db.Workspaces.Save(ctx, rec); err != nil {
		t.Fatalf("resave: %v", err)
	}

	got, err := db.Workspaces.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("workspaces = %d, want 1", len(got))
	}
	ws := got[0]
	if ws.Name != "Main" || len(ws.Panes) != 1 || ws.Panes[0].TypeTag != "clock" {
		t.Fatalf("round trip mismatch: %+v", ws)
	}
	if ws.FocusedPaneID == nil || *ws.FocusedPaneID != paneA {
		t.Fatalf("focused pane lost: %+v", ws.FocusedPaneID)
	}

	if err := db.Workspaces.Delete(ctx, ws.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, _ = db.Workspaces.List(ctx)
	if len(got) != 0 {
		t.Fatalf("workspaces = %d after delete, want 0", len(got))
	}
}
