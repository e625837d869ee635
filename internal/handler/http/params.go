package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gestao-rh/gestao-backend-go/internal/handler/http/response"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return false
	}
	return true
}

// pathID reads a UUID URL parameter, answering 400 when it is malformed.
func pathID(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	id := chi.URLParam(r, name)
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Invalid "+name, map[string]string{name: "must be a valid UUID"})
		return "", false
	}
	return id, true
}

func queryString(r *http.Request, key string) *string {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil
	}
	return &v
}

// queryUUID returns nil for an absent parameter.
func queryUUID(r *http.Request, key string, errs *validator.ValidationErrors) *string {
	v := queryString(r, key)
	if v != nil && !validator.IsValidUUID(*v) {
		errs.Add(key, "must be a valid UUID")
		return nil
	}
	return v
}

func queryInt(r *http.Request, key string, errs *validator.ValidationErrors) *int {
	v := queryString(r, key)
	if v == nil {
		return nil
	}
	n, err := strconv.Atoi(*v)
	if err != nil {
		errs.Add(key, "must be an integer")
		return nil
	}
	return &n
}

func queryBool(r *http.Request, key string, errs *validator.ValidationErrors) *bool {
	v := queryString(r, key)
	if v == nil {
		return nil
	}
	b, err := strconv.ParseBool(*v)
	if err != nil {
		errs.Add(key, "must be true or false")
		return nil
	}
	return &b
}

func queryDate(r *http.Request, key string, errs *validator.ValidationErrors) *time.Time {
	v := queryString(r, key)
	if v == nil {
		return nil
	}
	d, ok := validator.IsValidDate(*v)
	if !ok {
		errs.Add(key, "must be in YYYY-MM-DD format")
		return nil
	}
	return &d
}
