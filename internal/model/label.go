package model

type Label struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type CreateLabel struct {
	Name string `json:"name"`
}
