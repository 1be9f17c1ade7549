package store

import (
	"context"
	"database/sql"
)

// WorkspaceRepo persists workspace layouts so pane arrangements survive
// restarts.
type WorkspaceRepo struct {
	db *sql.DB
}

func NewWorkspaceRepo(db *sql.DB) *WorkspaceRepo { return &WorkspaceRepo{db: db} }

// Save replaces the stored layout for one workspace, panes included.
func (r *WorkspaceRepo) Save(ctx context.Context, w WorkspaceRecord) error {
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
		INSERT INTO workspaces(id, name, layout_mode, focused_pane_id, position)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name=excluded.name,
			layout_mode=excluded.layout_mode,
			focused_pane_id=excluded.focused_pane_id,
			position=excluded.position;
		`, w.ID, w.Name, w.LayoutMode, w.FocusedPaneID, w.Position)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM panes WHERE workspace_id = ?`, w.ID); err != nil {
			return err
		}
		for _, p := range w.Panes {
			_, err := tx.ExecContext(ctx, `
			INSERT INTO panes(id, workspace_id, type_tag, position)
			VALUES (?, ?, ?, ?);
			`, p.ID, w.ID, p.TypeTag, p.Position)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// List returns all workspaces with their panes in insertion order.
func (r *WorkspaceRepo) List(ctx context.Context) ([]WorkspaceRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, name, layout_mode, focused_pane_id, position
	FROM workspaces ORDER BY position;
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []WorkspaceRecord
	for rows.Next() {
		var w WorkspaceRecord
		if err := rows.Scan(&w.ID, &w.Name, &w.LayoutMode, &w.FocusedPaneID, &w.Position); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		panes, err := r.panesFor(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Panes = panes
	}
	return out, nil
}

func (r *WorkspaceRepo) Delete(ctx context.Context, id string) error {
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM panes WHERE workspace_id = ?`, id); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM workspaces WHERE id = ?`, id)
		return err
	})
}

func (r *WorkspaceRepo) panesFor(ctx context.Context, workspaceID string) ([]PaneRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, workspace_id, type_tag, position
	FROM panes WHERE workspace_id = ? ORDER BY position;
	`, workspaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []PaneRecord
	for rows.Next() {
		var p PaneRecord
		if err := rows.Scan(&p.ID, &p.WorkspaceID, &p.TypeTag, &p.Position); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
