package repo

import (
	"context"

	dom "Tasker/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TodoRepo provides todo persistence scoped to an owner. Every method
// takes the caller's user ID and every statement carries an
// owner_id predicate, so a record belonging to someone else behaves
// exactly like a missing one (pgx.ErrNoRows). There is no unscoped
// variant to forget to filter.
type TodoRepo interface {
	Create(ctx context.Context, ownerID int64, t dom.Todo) (dom.Todo, error)
	GetByID(ctx context.Context, ownerID, id int64) (dom.Todo, error)
	List(ctx context.Context, ownerID int64) ([]dom.Todo, error)
	Update(ctx context.Context, ownerID, id int64, patch dom.Todo) (dom.Todo, error)
	Delete(ctx context.Context, ownerID, id int64) (bool, error)
}

// PGTodoRepo implements TodoRepo with Postgres.
type PGTodoRepo struct {
	db *pgxpool.Pool
}

func NewPGTodoRepo(db *pgxpool.Pool) *PGTodoRepo {
	return &PGTodoRepo{db: db}
}

func (r *PGTodoRepo) Create(ctx context.Context, ownerID int64, t dom.Todo) (dom.Todo, error) {
	query := `
		INSERT INTO todos (owner_id, title, description)
		VALUES ($1, $2, $3)
		RETURNING id, owner_id, title, description, created_at, updated_at`
	var out dom.Todo
	err := r.db.QueryRow(ctx, query, ownerID, t.Title, t.Description).Scan(
		&out.ID, &out.OwnerID, &out.Title, &out.Description, &out.CreatedAt, &out.UpdatedAt,
	)
	return out, err
}

func (r *PGTodoRepo) GetByID(ctx context.Context, ownerID, id int64) (dom.Todo, error) {
	query := `
		SELECT id, owner_id, title, description, created_at, updated_at
		FROM todos WHERE id = $1 AND owner_id = $2`
	var t dom.Todo
	err := r.db.QueryRow(ctx, query, id, ownerID).Scan(
		&t.ID, &t.OwnerID, &t.Title, &t.Description, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func (r *PGTodoRepo) List(ctx context.Context, ownerID int64) ([]dom.Todo, error) {
	query := `
		SELECT id, owner_id, title, description, created_at, updated_at
		FROM todos WHERE owner_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Todo
	for rows.Next() {
		var t dom.Todo
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.Title, &t.Description,
			&t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *PGTodoRepo) Update(ctx context.Context, ownerID, id int64, patch dom.Todo) (dom.Todo, error) {
	query := `
		UPDATE todos SET title = $3, description = $4, updated_at = NOW()
		WHERE id = $1 AND owner_id = $2
		RETURNING id, owner_id, title, description, created_at, updated_at`
	var t dom.Todo
	err := r.db.QueryRow(ctx, query, id, ownerID, patch.Title, patch.Description).Scan(
		&t.ID, &t.OwnerID, &t.Title, &t.Description, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// Delete removes the record and reports whether a row was affected.
func (r *PGTodoRepo) Delete(ctx context.Context, ownerID, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM todos WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
