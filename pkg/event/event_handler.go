package event

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/luach/luach/internal/rest"
	log "github.com/sirupsen/logrus"
)

type EventDTO struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// CreateEventRequest is the request schema for event creation. All fields are
// required; timestamp format beyond presence is not enforced.
type CreateEventRequest struct {
	Title string `json:"title"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type EventHandler struct {
	service EventService
}

func NewEventHandler(service EventService) *EventHandler {
	return &EventHandler{service}
}

func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	log.Debug("Fetching all events")

	events, err := h.service.List(r.Context())
	if err != nil {
		rest.WriteError(w, http.StatusInternalServerError, err.Error(), "")
		return
	}

	dtos := make([]EventDTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, eventToDTO(e))
	}

	rest.WriteJSON(w, http.StatusOK, dtos)
}

func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new event")

	var req CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if req.Title == "" || req.Start == "" || req.End == "" {
		rest.WriteError(w, http.StatusBadRequest, "Missing required field",
			"'title', 'start' and 'end' are required")
		return
	}

	created, err := h.service.Create(r.Context(), Event{
		Title: req.Title,
		Start: req.Start,
		End:   req.End,
	})
	if err != nil {
		if IsReadBack(err) {
			// The insert succeeded but the stored row could not be read.
			rest.WriteError(w, http.StatusInternalServerError, err.Error(), "")
			return
		}
		rest.WriteError(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	rest.WriteJSON(w, http.StatusCreated, eventToDTO(*created))
}

func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	idString := vars["id"]
	id, err := strconv.ParseInt(idString, 10, 64)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid event id", "'id' must be an integer")
		return
	}
	log.Debugf("Deleting event %d", id)

	if err := h.service.Delete(r.Context(), id); err != nil {
		rest.WriteError(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.MessageResponse{Message: "event deleted"})
}

func eventToDTO(e Event) EventDTO {
	return EventDTO{
		ID:    e.ID,
		Title: e.Title,
		Start: e.Start,
		End:   e.End,
	}
}
