package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bloglist-service/internal/platform/apperr"
)

type personRequest struct {
	Name   string `json:"name"`
	Number string `json:"number"`
}

// @Summary     Phonebook info
// @Tags        persons
// @Produce     html
// @Success     200  {string}  string  "entry count and request time"
// @Router      /info [get]
func (h *Handler) handleInfo(w http.ResponseWriter, r *http.Request) {
	n, err := h.personSvc.Count(r.Context())
	if err != nil {
		errorResponse(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "<p>Phonebook has info for %d people</p><p>%s</p>",
		n, h.now().Format("Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"))
}

// @Summary     List persons
// @Tags        persons
// @Produce     json
// @Success     200  {array}   person.Person
// @Failure     500  {object}  map[string]string  "server error"
// @Router      /api/persons [get]
func (h *Handler) handleListPersons(w http.ResponseWriter, r *http.Request) {
	persons, err := h.personSvc.List(r.Context())
	if err != nil {
		errorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, persons)
}

// @Summary     Get person
// @Tags        persons
// @Produce     json
// @Param       id   path      string  true  "Person ID"
// @Success     200  {object}  person.Person
// @Failure     400  {object}  map[string]string  "malformatted id"
// @Failure     404  {object}  map[string]string  "not found"
// @Router      /api/persons/{id} [get]
func (h *Handler) handleGetPerson(w http.ResponseWriter, r *http.Request) {
	p, err := h.personSvc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		errorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// @Summary     Add person
// @Tags        persons
// @Accept      json
// @Produce     json
// @Param       request  body      personRequest  true  "Name and number"
// @Success     200      {object}  person.Person
// @Failure     400      {object}  map[string]string  "validation error"
// @Failure     409      {object}  map[string]string  "name taken"
// @Router      /api/persons [post]
func (h *Handler) handleCreatePerson(w http.ResponseWriter, r *http.Request) {
	var req personRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, apperr.BadRequest("invalid_input", "invalid body", err))
		return
	}

	p, err := h.personSvc.Create(r.Context(), req.Name, req.Number)
	if err != nil {
		errorResponse(w, err)
		return
	}
	h.log.Info("person added", "name", p.Name, "number", p.Number)
	writeJSON(w, http.StatusOK, p)
}

// @Summary     Update person
// @Tags        persons
// @Accept      json
// @Produce     json
// @Param       id       path      string         true  "Person ID"
// @Param       request  body      personRequest  true  "Name and number"
// @Success     200      {object}  person.Person
// @Failure     400      {object}  map[string]string  "validation error or malformatted id"
// @Failure     404      {object}  map[string]string  "not found"
// @Router      /api/persons/{id} [put]
func (h *Handler) handleUpdatePerson(w http.ResponseWriter, r *http.Request) {
	var req personRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, apperr.BadRequest("invalid_input", "invalid body", err))
		return
	}

	p, err := h.personSvc.Update(r.Context(), chi.URLParam(r, "id"), req.Name, req.Number)
	if err != nil {
		errorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// @Summary     Delete person
// @Tags        persons
// @Param       id   path  string  true  "Person ID"
// @Success     204
// @Failure     400  {object}  map[string]string  "malformatted id"
// @Failure     404  {object}  map[string]string  "not found"
// @Router      /api/persons/{id} [delete]
func (h *Handler) handleDeletePerson(w http.ResponseWriter, r *http.Request) {
	if err := h.personSvc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		errorResponse(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
