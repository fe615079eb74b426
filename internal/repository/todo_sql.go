package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jaekwang-park/todo-labels/internal/model"
)

const selectTodoWithLabels = `
	SELECT t.id, t.text, t.completed, l.id AS label_id, l.name AS label_name
	FROM todos t
	LEFT OUTER JOIN todo_labels tl ON t.id = tl.todo_id
	LEFT OUTER JOIN labels l ON l.id = tl.label_id`

// SQLTodoRepository stores todos in todos/todo_labels and hydrates them with
// one outer-join query folded by model.FoldTodoRows.
type SQLTodoRepository struct {
	db      *sqlx.DB
	dialect dialect
}

func NewSQLTodo(db *sqlx.DB) *SQLTodoRepository {
	return &SQLTodoRepository{db: db, dialect: dialectOf(db)}
}

func (r *SQLTodoRepository) Create(ctx context.Context, payload model.CreateTodo) (model.TodoEntity, error) {
	if err := checkText(payload.Text); err != nil {
		return model.TodoEntity{}, err
	}

	var id int64
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var err error
		id, err = insertID(ctx, tx, r.dialect,
			`INSERT INTO todos (text, completed) VALUES (?, ?)`, payload.Text, false)
		if err != nil {
			return unexpected("failed to insert todo", err)
		}
		return insertTodoLabels(ctx, tx, id, payload.Labels)
	})
	if err != nil {
		return model.TodoEntity{}, err
	}

	return r.Find(ctx, id)
}

func (r *SQLTodoRepository) Find(ctx context.Context, id int64) (model.TodoEntity, error) {
	query := r.db.Rebind(selectTodoWithLabels + `
	WHERE t.id = ?
	ORDER BY t.id, l.id`)

	var rows []model.TodoWithLabelRow
	if err := r.db.SelectContext(ctx, &rows, query, id); err != nil {
		return model.TodoEntity{}, unexpected(fmt.Sprintf("failed to find todo %d", id), err)
	}

	todos := model.FoldTodoRows(rows)
	if len(todos) == 0 {
		return model.TodoEntity{}, &NotFoundError{ID: id}
	}
	return todos[0], nil
}

func (r *SQLTodoRepository) All(ctx context.Context) ([]model.TodoEntity, error) {
	query := selectTodoWithLabels + `
	ORDER BY t.id, l.id`

	var rows []model.TodoWithLabelRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, unexpected("failed to list todos", err)
	}
	return model.FoldTodoRows(rows), nil
}

func (r *SQLTodoRepository) Update(ctx context.Context, id int64, payload model.UpdateTodo) (model.TodoEntity, error) {
	if payload.Text != nil {
		if err := checkText(*payload.Text); err != nil {
			return model.TodoEntity{}, err
		}
	}

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var todo model.Todo
		query := tx.Rebind(`SELECT id, text, completed FROM todos WHERE id = ?` + r.dialect.lockClause)
		if err := tx.GetContext(ctx, &todo, query, id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return &NotFoundError{ID: id}
			}
			return unexpected(fmt.Sprintf("failed to load todo %d", id), err)
		}

		if payload.Text != nil {
			todo.Text = *payload.Text
		}
		if payload.Completed != nil {
			todo.Completed = *payload.Completed
		}

		if _, err := tx.ExecContext(ctx,
			tx.Rebind(`UPDATE todos SET text = ?, completed = ? WHERE id = ?`),
			todo.Text, todo.Completed, id,
		); err != nil {
			return unexpected(fmt.Sprintf("failed to update todo %d", id), err)
		}

		if payload.Labels == nil {
			return nil
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM todo_labels WHERE todo_id = ?`), id); err != nil {
			return unexpected(fmt.Sprintf("failed to detach labels from todo %d", id), err)
		}
		return insertTodoLabels(ctx, tx, id, *payload.Labels)
	})
	if err != nil {
		return model.TodoEntity{}, err
	}

	return r.Find(ctx, id)
}

func (r *SQLTodoRepository) Delete(ctx context.Context, id int64) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM todo_labels WHERE todo_id = ?`), id); err != nil {
			return unexpected(fmt.Sprintf("failed to detach labels from todo %d", id), err)
		}

		result, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM todos WHERE id = ?`), id)
		if err != nil {
			return unexpected(fmt.Sprintf("failed to delete todo %d", id), err)
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

func insertTodoLabels(ctx context.Context, tx *sqlx.Tx, todoID int64, labelIDs []int64) error {
	query := tx.Rebind(`INSERT INTO todo_labels (todo_id, label_id) VALUES (?, ?)`)
	for _, labelID := range uniqueLabelIDs(labelIDs) {
		if _, err := tx.ExecContext(ctx, query, todoID, labelID); err != nil {
			return unexpected(fmt.Sprintf("failed to attach label %d to todo %d", labelID, todoID), err)
		}
	}
	return nil
}

// ensure compile-time interface compliance
var _ TodoRepository = (*SQLTodoRepository)(nil)
