package store

import (
	"context"
	"database/sql"
)

// TodoRepo handles todos.
type TodoRepo struct {
	db *sql.DB
}

func NewTodoRepo(db *sql.DB) *TodoRepo { return &TodoRepo{db: db} }

func (r *TodoRepo) Insert(ctx context.Context, t Todo) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO todos(id, title, done, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?);
	`, t.ID, t.Title, boolToInt(t.Done), t.CreatedAt, t.UpdatedAt)
	return err
}

func (r *TodoRepo) SetDone(ctx context.Context, id string, done bool) error {
	_, err := r.db.ExecContext(ctx, `
	UPDATE todos SET done = ?, updated_at = ? WHERE id = ?;
	`, boolToInt(done), Now(), id)
	return err
}

func (r *TodoRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	return err
}

func (r *TodoRepo) List(ctx context.Context) ([]Todo, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, title, done, created_at, updated_at
	FROM todos ORDER BY done, created_at;
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Todo
	for rows.Next() {
		var t Todo
		var done int
		if err := rows.Scan(&t.ID, &t.Title, &done, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		t.Done = done != 0
		out = append(out, t)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
