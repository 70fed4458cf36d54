package pubrepo

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"librental/model"
)

type Repo interface {
	Create(ctx context.Context, p *model.Publication, authorIDs, categoryIDs []uuid.UUID) error
	ByID(ctx context.Context, id uuid.UUID) (*model.Publication, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	// Update replaces the title and, when the id slices are non-nil, the
	// author/category links.
	Update(ctx context.Context, id uuid.UUID, title *string, authorIDs, categoryIDs []uuid.UUID) error
	// Delete removes the publication's instances before the publication
	// itself, in one transaction.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, p *model.Publication, authorIDs, categoryIDs []uuid.UUID) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const ins = `
INSERT INTO publications (id, title)
VALUES ($1,$2)
RETURNING created_at, updated_at`
	if err = tx.QueryRowContext(ctx, ins, p.ID, p.Title).Scan(&p.CreatedAt, &p.UpdatedAt); err != nil {
		return err
	}
	if err = insertLinks(ctx, tx, p.ID, authorIDs, categoryIDs); err != nil {
		return err
	}
	return tx.Commit()
}

func insertLinks(ctx context.Context, tx *sql.Tx, pubID uuid.UUID, authorIDs, categoryIDs []uuid.UUID) error {
	const insAuthor = `INSERT INTO publication_authors (publication_id, author_id) VALUES ($1,$2)`
	for _, aid := range authorIDs {
		if _, err := tx.ExecContext(ctx, insAuthor, pubID, aid); err != nil {
			return err
		}
	}
	const insCategory = `INSERT INTO publication_categories (publication_id, category_id) VALUES ($1,$2)`
	for _, cid := range categoryIDs {
		if _, err := tx.ExecContext(ctx, insCategory, pubID, cid); err != nil {
			return err
		}
	}
	return nil
}

func (r *repo) ByID(ctx context.Context, id uuid.UUID) (*model.Publication, error) {
	const q = `
SELECT id, title, created_at, updated_at
FROM publications
WHERE id = $1`
	var p model.Publication
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&p.ID, &p.Title, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	const qa = `
SELECT a.name, a.surname
FROM publication_authors pa
JOIN authors a ON a.id = pa.author_id
WHERE pa.publication_id = $1
ORDER BY a.surname, a.name`
	rows, err := r.db.QueryContext(ctx, qa, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var ref model.AuthorRef
		if err := rows.Scan(&ref.Name, &ref.Surname); err != nil {
			return nil, err
		}
		p.Authors = append(p.Authors, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	const qc = `
SELECT c.name
FROM publication_categories pc
JOIN categories c ON c.id = pc.category_id
WHERE pc.publication_id = $1
ORDER BY c.name`
	crows, err := r.db.QueryContext(ctx, qc, id)
	if err != nil {
		return nil, err
	}
	defer crows.Close()
	for crows.Next() {
		var name string
		if err := crows.Scan(&name); err != nil {
			return nil, err
		}
		p.Categories = append(p.Categories, name)
	}
	return &p, crows.Err()
}

func (r *repo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM publications WHERE id = $1)`
	var ok bool
	err := r.db.QueryRowContext(ctx, q, id).Scan(&ok)
	return ok, err
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, title *string, authorIDs, categoryIDs []uuid.UUID) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if title != nil {
		const q = `UPDATE publications SET title = $2, updated_at = NOW() WHERE id = $1`
		if _, err = tx.ExecContext(ctx, q, id, *title); err != nil {
			return err
		}
	}
	if authorIDs != nil {
		if _, err = tx.ExecContext(ctx, `DELETE FROM publication_authors WHERE publication_id = $1`, id); err != nil {
			return err
		}
	}
	if categoryIDs != nil {
		if _, err = tx.ExecContext(ctx, `DELETE FROM publication_categories WHERE publication_id = $1`, id); err != nil {
			return err
		}
	}
	if err = insertLinks(ctx, tx, id, authorIDs, categoryIDs); err != nil {
		return err
	}
	const touch = `UPDATE publications SET updated_at = NOW() WHERE id = $1`
	if _, err = tx.ExecContext(ctx, touch, id); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) (ok bool, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// Instances go first: they are owned by the publication.
	if _, err = tx.ExecContext(ctx, `DELETE FROM instances WHERE publication_id = $1`, id); err != nil {
		return false, err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM publication_authors WHERE publication_id = $1`, id); err != nil {
		return false, err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM publication_categories WHERE publication_id = $1`, id); err != nil {
		return false, err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM publications WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	if err = tx.Commit(); err != nil {
		return false, err
	}
	return aff > 0, nil
}
