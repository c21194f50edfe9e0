// Package handlers exposes the CRUD, bulk-import and report endpoints over
// the snapshot store. Insert and update are distinct routes: POST on the
// collection inserts, PUT on /{id} merges the body over the stored record.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/llucior2/control-de-contratos/internal/httpx"
)

// apiError carries the HTTP status a failed snapshot mutation maps to.
type apiError struct {
	status int
	msg    string
}

func (e *apiError) Error() string { return e.msg }

func notFound(msg string) error   { return &apiError{http.StatusNotFound, msg} }
func badRequest(msg string) error { return &apiError{http.StatusBadRequest, msg} }
func conflict(msg string) error   { return &apiError{http.StatusConflict, msg} }

func respondError(w http.ResponseWriter, err error) {
	var ae *apiError
	if errors.As(err, &ae) {
		httpx.Error(w, ae.status, ae.msg)
		return
	}
	httpx.Error(w, http.StatusInternalServerError, "Error interno del servidor.")
}

func pathID(r *http.Request) (uint, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// mergePatch applies the body's fields over an existing record, JS-spread
// style: only keys present in the patch change, and the stored id wins.
func mergePatch[T any](existing *T, patch map[string]any) error {
	base, err := json.Marshal(existing)
	if err != nil {
		return err
	}
	var m map[string]any
	if err := json.Unmarshal(base, &m); err != nil {
		return err
	}
	delete(patch, "id")
	for k, v := range patch {
		m[k] = v
	}
	merged, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(merged, existing)
}

func indexByID[T any](items []T, id uint, key func(T) uint) int {
	for i, it := range items {
		if key(it) == id {
			return i
		}
	}
	return -1
}

func removeByID[T any](items []T, id uint, key func(T) uint) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if key(it) != id {
			out = append(out, it)
		}
	}
	return out
}
