package model

// Todo is the flat, persisted form of a todo row.
type Todo struct {
	ID        int64  `json:"id" db:"id"`
	Text      string `json:"text" db:"text"`
	Completed bool   `json:"completed" db:"completed"`
}

// TodoEntity is a todo hydrated with the labels attached to it.
type TodoEntity struct {
	ID        int64   `json:"id"`
	Text      string  `json:"text"`
	Completed bool    `json:"completed"`
	Labels    []Label `json:"labels"`
}

// TodoWithLabelRow is one row of the todos/todo_labels/labels outer join.
// LabelID and LabelName are nil for a todo without labels.
type TodoWithLabelRow struct {
	ID        int64   `db:"id"`
	Text      string  `db:"text"`
	Completed bool    `db:"completed"`
	LabelID   *int64  `db:"label_id"`
	LabelName *string `db:"label_name"`
}

type CreateTodo struct {
	Text   string  `json:"text"`
	Labels []int64 `json:"labels"`
}

// UpdateTodo carries a partial update. Nil fields keep their current value;
// a non-nil Labels replaces the whole label set, even when empty.
type UpdateTodo struct {
	Text      *string  `json:"text,omitempty"`
	Completed *bool    `json:"completed,omitempty"`
	Labels    *[]int64 `json:"labels,omitempty"`
}
