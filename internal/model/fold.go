package model

import "slices"

// FoldTodoRows collapses outer-join rows into one TodoEntity per todo id.
// Entities come back in ascending id order whatever the input order is.
// Within a todo, labels keep the order of their rows. Rows with a null
// label_id or label_name contribute no label.
func FoldTodoRows(rows []TodoWithLabelRow) []TodoEntity {
	groups := make(map[int64][]TodoWithLabelRow)
	for _, row := range rows {
		groups[row.ID] = append(groups[row.ID], row)
	}

	ids := make([]int64, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	entities := make([]TodoEntity, 0, len(ids))
	for _, id := range ids {
		entities = append(entities, foldGroup(groups[id]))
	}
	return entities
}

func foldGroup(group []TodoWithLabelRow) TodoEntity {
	first := group[0]
	entity := TodoEntity{
		ID:        first.ID,
		Text:      first.Text,
		Completed: first.Completed,
		Labels:    make([]Label, 0, len(group)),
	}
	for _, row := range group {
		if row.LabelID == nil || row.LabelName == nil {
			continue
		}
		entity.Labels = append(entity.Labels, Label{ID: *row.LabelID, Name: *row.LabelName})
	}
	return entity
}

// FlattenTodo is the inverse of FoldTodoRows for a single entity: one row per
// label. An entity without labels yields a single row with null label fields,
// the same shape the outer join produces, so folding always round-trips.
func FlattenTodo(entity TodoEntity) []TodoWithLabelRow {
	if len(entity.Labels) == 0 {
		return []TodoWithLabelRow{{
			ID:        entity.ID,
			Text:      entity.Text,
			Completed: entity.Completed,
		}}
	}

	rows := make([]TodoWithLabelRow, 0, len(entity.Labels))
	for _, label := range entity.Labels {
		labelID, labelName := label.ID, label.Name
		rows = append(rows, TodoWithLabelRow{
			ID:        entity.ID,
			Text:      entity.Text,
			Completed: entity.Completed,
			LabelID:   &labelID,
			LabelName: &labelName,
		})
	}
	return rows
}
