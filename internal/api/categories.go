package api

import "net/http"

// ListCategories handles GET /api/categories.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) error {
	categories, err := h.categories.List(r.Context())
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": newCategoryRefs(categories)})
	return nil
}
