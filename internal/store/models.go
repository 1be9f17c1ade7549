package store

import "time"

// Todo represents a todo row.
type Todo struct {
	ID        string
	Title     string
	Done      bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Note represents a note row.
type Note struct {
	ID        string
	Title     string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WorkspaceRecord represents a persisted workspace.
type WorkspaceRecord struct {
	ID            string
	Name          string
	LayoutMode    string
	FocusedPaneID *string
	Position      int
	Panes         []PaneRecord
}

// PaneRecord represents a persisted pane within a workspace. Position is
// the insertion order; geometry is recomputed from it on restore.
type PaneRecord struct {
	ID          string
	WorkspaceID string
	TypeTag     string
	Position    int
}
