package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jaekwang-park/todo-labels/internal/model"
)

type SQLLabelRepository struct {
	db      *sqlx.DB
	dialect dialect
}

func NewSQLLabel(db *sqlx.DB) *SQLLabelRepository {
	return &SQLLabelRepository{db: db, dialect: dialectOf(db)}
}

func (r *SQLLabelRepository) Create(ctx context.Context, payload model.CreateLabel) (model.Label, error) {
	if err := checkLabelName(payload.Name); err != nil {
		return model.Label{}, err
	}

	var (
		label    model.Label
		conflict bool
	)
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var existing model.Label
		err := tx.GetContext(ctx, &existing, tx.Rebind(`SELECT id, name FROM labels WHERE name = ?`), payload.Name)
		switch {
		case err == nil:
			return &DuplicatedLabelError{ID: existing.ID}
		case !errors.Is(err, sql.ErrNoRows):
			return unexpected("failed to look up label by name", err)
		}

		id, err := insertID(ctx, tx, r.dialect, `INSERT INTO labels (name) VALUES (?)`, payload.Name)
		if err != nil {
			if isUniqueViolation(err) {
				conflict = true
			}
			return unexpected("failed to insert label", err)
		}
		label = model.Label{ID: id, Name: payload.Name}
		return nil
	})
	if conflict {
		// another writer inserted the same name after our lookup
		return model.Label{}, r.duplicateOf(ctx, payload.Name, err)
	}
	if err != nil {
		return model.Label{}, err
	}
	return label, nil
}

func (r *SQLLabelRepository) duplicateOf(ctx context.Context, name string, cause error) error {
	var existing model.Label
	if err := r.db.GetContext(ctx, &existing, r.db.Rebind(`SELECT id, name FROM labels WHERE name = ?`), name); err != nil {
		return cause
	}
	return &DuplicatedLabelError{ID: existing.ID}
}

func (r *SQLLabelRepository) All(ctx context.Context) ([]model.Label, error) {
	labels := []model.Label{}
	if err := r.db.SelectContext(ctx, &labels, `SELECT id, name FROM labels ORDER BY id`); err != nil {
		return nil, unexpected("failed to list labels", err)
	}
	return labels, nil
}

// Delete removes the label and every todo association pointing at it.
func (r *SQLLabelRepository) Delete(ctx context.Context, id int64) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM todo_labels WHERE label_id = ?`), id); err != nil {
			return unexpected(fmt.Sprintf("failed to detach label %d", id), err)
		}

		result, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM labels WHERE id = ?`), id)
		if err != nil {
			return unexpected(fmt.Sprintf("failed to delete label %d", id), err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return unexpected("failed to get rows affected", err)
		}
		if rows == 0 {
			return &NotFoundError{ID: id}
		}
		return nil
	})
}

var _ LabelRepository = (*SQLLabelRepository)(nil)
