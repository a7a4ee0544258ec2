package notes

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// Repository is the persistent table behind a Store.
type Repository interface {
	// Insert stores n and returns it with its assigned ID.
	Insert(ctx context.Context, n Note) (Note, error)
	// Update replaces title and body. Returns ErrNotFound if the ID is absent.
	Update(ctx context.Context, n Note) error
	// Delete removes a note. Returns ErrNotFound if the ID is absent.
	Delete(ctx context.Context, id int64) error
	// List returns every note in insertion order.
	List(ctx context.Context) ([]Note, error)
}

// SQLRepository keeps notes in the sqlite "notes" table.
type SQLRepository struct {
	db *sql.DB
}

func NewSQLRepository(db *sql.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) Insert(ctx context.Context, n Note) (Note, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO notes(title, body, created_at) VALUES(?,?,?)`,
		n.Title, n.Body, n.CreatedAt)
	if err != nil {
		return Note{}, fmt.Errorf("insert note: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Note{}, fmt.Errorf("insert note: %w", err)
	}
	n.ID = id
	return n, nil
}

func (r *SQLRepository) Update(ctx context.Context, n Note) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE notes SET title = ?, body = ? WHERE id = ?`,
		n.Title, n.Body, n.ID)
	if err != nil {
		return fmt.Errorf("update note %d: %w", n.ID, err)
	}
	return affected(res, n.ID)
}

func (r *SQLRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete note %d: %w", id, err)
	}
	return affected(res, id)
}

func (r *SQLRepository) List(ctx context.Context) ([]Note, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, body, created_at FROM notes ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	var out []Note
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Body, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func affected(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("note %d: %w", id, ErrNotFound)
	}
	return nil
}

// MemoryRepository is an in-process Repository. The zero value is ready
// to use.
type MemoryRepository struct {
	mu     sync.Mutex
	nextID int64
	notes  []Note
}

func NewMemoryRepository() *MemoryRepository { return &MemoryRepository{} }

func (m *MemoryRepository) Insert(_ context.Context, n Note) (Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	n.ID = m.nextID
	m.notes = append(m.notes, n)
	return n, nil
}

func (m *MemoryRepository) Update(_ context.Context, n Note) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.index(n.ID)
	if i < 0 {
		return fmt.Errorf("note %d: %w", n.ID, ErrNotFound)
	}
	m.notes[i].Title = n.Title
	m.notes[i].Body = n.Body
	return nil
}

func (m *MemoryRepository) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.index(id)
	if i < 0 {
		return fmt.Errorf("note %d: %w", id, ErrNotFound)
	}
	m.notes = append(m.notes[:i], m.notes[i+1:]...)
	return nil
}

func (m *MemoryRepository) List(_ context.Context) ([]Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Note, len(m.notes))
	copy(out, m.notes)
	return out, nil
}

func (m *MemoryRepository) index(id int64) int {
	for i, n := range m.notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}
