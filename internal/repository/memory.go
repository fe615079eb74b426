package repository

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/jaekwang-park/todo-labels/internal/model"
)

// MemoryStore keeps todos, labels and their associations in process memory.
// One RWMutex guards all of it: reads share the lock, and every write reads
// and mutates under a single exclusive acquisition.
type MemoryStore struct {
	mu          sync.RWMutex
	todos       map[int64]model.Todo
	labels      map[int64]model.Label
	todoLabels  map[int64][]int64
	lastTodoID  int64
	lastLabelID int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		todos:      make(map[int64]model.Todo),
		labels:     make(map[int64]model.Label),
		todoLabels: make(map[int64][]int64),
	}
}

func (s *MemoryStore) Todos() *MemoryTodoRepository {
	return &MemoryTodoRepository{store: s}
}

func (s *MemoryStore) Labels() *MemoryLabelRepository {
	return &MemoryLabelRepository{store: s}
}

// rowsLocked emulates the outer join for one todo, labels ordered by id.
// Callers must hold s.mu.
func (s *MemoryStore) rowsLocked(todo model.Todo) []model.TodoWithLabelRow {
	labelIDs := slices.Clone(s.todoLabels[todo.ID])
	slices.Sort(labelIDs)

	rows := make([]model.TodoWithLabelRow, 0, len(labelIDs)+1)
	for _, labelID := range labelIDs {
		label, ok := s.labels[labelID]
		if !ok {
			continue
		}
		rows = append(rows, model.TodoWithLabelRow{
			ID:        todo.ID,
			Text:      todo.Text,
			Completed: todo.Completed,
			LabelID:   &label.ID,
			LabelName: &label.Name,
		})
	}
	if len(rows) == 0 {
		rows = append(rows, model.TodoWithLabelRow{ID: todo.ID, Text: todo.Text, Completed: todo.Completed})
	}
	return rows
}

func (s *MemoryStore) hydrateLocked(id int64) model.TodoEntity {
	return model.FoldTodoRows(s.rowsLocked(s.todos[id]))[0]
}

// checkLabelsLocked mirrors the foreign key on todo_labels.label_id.
func (s *MemoryStore) checkLabelsLocked(labelIDs []int64) error {
	for _, id := range labelIDs {
		if _, ok := s.labels[id]; !ok {
			return unexpected(fmt.Sprintf("label %d does not exist", id), nil)
		}
	}
	return nil
}

type MemoryTodoRepository struct {
	store *MemoryStore
}

func (r *MemoryTodoRepository) Create(ctx context.Context, payload model.CreateTodo) (model.TodoEntity, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := checkText(payload.Text); err != nil {
		return model.TodoEntity{}, err
	}
	labelIDs := uniqueLabelIDs(payload.Labels)
	if err := s.checkLabelsLocked(labelIDs); err != nil {
		return model.TodoEntity{}, err
	}

	s.lastTodoID++
	id := s.lastTodoID
	s.todos[id] = model.Todo{ID: id, Text: payload.Text}
	if len(labelIDs) > 0 {
		s.todoLabels[id] = labelIDs
	}

	return s.hydrateLocked(id), nil
}

func (r *MemoryTodoRepository) Find(ctx context.Context, id int64) (model.TodoEntity, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.todos[id]; !ok {
		return model.TodoEntity{}, &NotFoundError{ID: id}
	}
	return s.hydrateLocked(id), nil
}

func (r *MemoryTodoRepository) All(ctx context.Context) ([]model.TodoEntity, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rows []model.TodoWithLabelRow
	for _, todo := range s.todos {
		rows = append(rows, s.rowsLocked(todo)...)
	}
	return model.FoldTodoRows(rows), nil
}

func (r *MemoryTodoRepository) Update(ctx context.Context, id int64, payload model.UpdateTodo) (model.TodoEntity, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	todo, ok := s.todos[id]
	if !ok {
		return model.TodoEntity{}, &NotFoundError{ID: id}
	}
	if payload.Text != nil {
		if err := checkText(*payload.Text); err != nil {
			return model.TodoEntity{}, err
		}
	}

	var labelIDs []int64
	if payload.Labels != nil {
		labelIDs = uniqueLabelIDs(*payload.Labels)
		if err := s.checkLabelsLocked(labelIDs); err != nil {
			return model.TodoEntity{}, err
		}
	}

	if payload.Text != nil {
		todo.Text = *payload.Text
	}
	if payload.Completed != nil {
		todo.Completed = *payload.Completed
	}
	s.todos[id] = todo

	if payload.Labels != nil {
		delete(s.todoLabels, id)
		if len(labelIDs) > 0 {
			s.todoLabels[id] = labelIDs
		}
	}

	return s.hydrateLocked(id), nil
}

func (r *MemoryTodoRepository) Delete(ctx context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.todos[id]; !ok {
		return &NotFoundError{ID: id}
	}
	delete(s.todoLabels, id)
	delete(s.todos, id)
	return nil
}

type MemoryLabelRepository struct {
	store *MemoryStore
}

func (r *MemoryLabelRepository) Create(ctx context.Context, payload model.CreateLabel) (model.Label, error) {
	if err := checkLabelName(payload.Name); err != nil {
		return model.Label{}, err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, label := range s.labels {
		if label.Name == payload.Name {
			return model.Label{}, &DuplicatedLabelError{ID: label.ID}
		}
	}

	s.lastLabelID++
	label := model.Label{ID: s.lastLabelID, Name: payload.Name}
	s.labels[label.ID] = label
	return label, nil
}

func (r *MemoryLabelRepository) All(ctx context.Context) ([]model.Label, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	labels := make([]model.Label, 0, len(s.labels))
	for _, id := range slices.Sorted(maps.Keys(s.labels)) {
		labels = append(labels, s.labels[id])
	}
	return labels, nil
}

// Delete removes the label and detaches it from every todo.
func (r *MemoryLabelRepository) Delete(ctx context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.labels[id]; !ok {
		return &NotFoundError{ID: id}
	}
	delete(s.labels, id)

	for todoID, labelIDs := range s.todoLabels {
		kept := slices.DeleteFunc(labelIDs, func(labelID int64) bool { return labelID == id })
		if len(kept) == 0 {
			delete(s.todoLabels, todoID)
			continue
		}
		s.todoLabels[todoID] = kept
	}
	return nil
}

var (
	_ TodoRepository  = (*MemoryTodoRepository)(nil)
	_ LabelRepository = (*MemoryLabelRepository)(nil)
)
