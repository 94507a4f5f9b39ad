package api

import (
	"time"

	"task-manager/internal/model"
)

type categoryRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type taskView struct {
	ID          uint         `json:"id"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	Completed   bool         `json:"completed"`
	CategoryID  uint         `json:"categoryId"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	Category    *categoryRef `json:"category,omitempty"`
}

func newTaskView(t model.Task) taskView {
	v := taskView{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		CategoryID:  t.CategoryID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.Category != nil {
		v.Category = &categoryRef{ID: t.Category.ID, Name: t.Category.Name}
	}
	return v
}

func newTaskViews(tasks []model.Task) []taskView {
	views := make([]taskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, newTaskView(t))
	}
	return views
}

func newCategoryRefs(categories []model.Category) []categoryRef {
	refs := make([]categoryRef, 0, len(categories))
	for _, c := range categories {
		refs = append(refs, categoryRef{ID: c.ID, Name: c.Name})
	}
	return refs
}
