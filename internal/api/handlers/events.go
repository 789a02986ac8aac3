package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/evently-hq/evently/internal/api/middleware"
	"github.com/evently-hq/evently/internal/models"
	"github.com/evently-hq/evently/internal/repositories"
	"github.com/evently-hq/evently/internal/utils"
	"github.com/google/uuid"
)

type EventHandler struct {
	events repositories.EventStore
}

func NewEventHandler(events repositories.EventStore) *EventHandler {
	return &EventHandler{events: events}
}

type eventInput struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// callerID resolves the authenticated user id placed in the context by
// the auth middleware.
func callerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr, ok := middleware.UserID(r)
	if !ok {
		utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
			Success: false,
			Message: "Unauthorized",
		})
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
			Success: false,
			Message: "Unauthorized",
		})
		return uuid.Nil, false
	}
	return id, true
}

// getOwnedEvent loads the event in the request path and enforces
// ownership. A malformed or unknown id is a 404 either way; a valid
// event owned by someone else is rejected without revealing anything
// about it. Returns nil after writing the response on any failure.
func (h *EventHandler) getOwnedEvent(w http.ResponseWriter, r *http.Request, userID uuid.UUID) *models.Event {
	eventID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.JSONResponse(w, http.StatusNotFound, utils.Payload{
			Success: false,
			Message: "Event not found",
		})
		return nil
	}

	event, err := h.events.FindByID(r.Context(), eventID)
	if errors.Is(err, repositories.ErrNotFound) {
		utils.JSONResponse(w, http.StatusNotFound, utils.Payload{
			Success: false,
			Message: "Event not found",
		})
		return nil
	}
	if err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Database error",
		})
		return nil
	}

	if event.UserID != userID {
		utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
			Success: false,
			Message: "Not authorized",
		})
		return nil
	}

	return event
}

// GET /api/v1/events
// ListEvents godoc
// @Summary List the caller's events
// @Description Returns all events owned by the authenticated user, sorted by date ascending.
// @Tags Events
// @Produce json
// @Success 200 {object} utils.Payload
// @Failure 401 {object} utils.Payload
// @Security BearerAuth
// @Router /api/v1/events [get]
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	events, err := h.events.FindByOwner(r.Context(), userID)
	if err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Database error",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Events retrieved successfully",
		Data:    events,
	})
}

// POST /api/v1/events
// CreateEvent godoc
// @Summary Create an event
// @Description Creates an event owned by the authenticated user. Ownership is fixed at creation.
// @Tags Events
// @Accept json
// @Produce json
// @Success 201 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Security BearerAuth
// @Router /api/v1/events [post]
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var input eventInput
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid input",
		})
		return
	}

	if input.Title == "" || input.Date == "" {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Title and date are required",
		})
		return
	}
	if msg, valid := validateEvent(input.Title, input.Location, input.Description); !valid {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: msg,
		})
		return
	}

	date, err := parseEventDate(input.Date)
	if err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Please provide a valid date",
		})
		return
	}

	event := models.Event{
		Title:       input.Title,
		Date:        date,
		Location:    input.Location,
		Description: input.Description,
		UserID:      userID,
	}

	if err := h.events.Create(r.Context(), &event); err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Database insert failed",
		})
		return
	}

	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "Event created successfully",
		Data:    event,
	})
}

// GET /api/v1/events/{id}
// GetEvent godoc
// @Summary Get a single event
// @Description Returns one event by id if the authenticated user owns it.
// @Tags Events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} utils.Payload
// @Failure 401 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Security BearerAuth
// @Router /api/v1/events/{id} [get]
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	event := h.getOwnedEvent(w, r, userID)
	if event == nil {
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Event retrieved successfully",
		Data:    event,
	})
}

// PUT /api/v1/events/{id}
// UpdateEvent godoc
// @Summary Update an event
// @Description Replaces the title, date, location and description of an owned event. The owner never changes.
// @Tags Events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Failure 401 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Security BearerAuth
// @Router /api/v1/events/{id} [put]
func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var input eventInput
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid input",
		})
		return
	}

	if input.Title == "" || input.Date == "" {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Title and date are required",
		})
		return
	}
	if msg, valid := validateEvent(input.Title, input.Location, input.Description); !valid {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: msg,
		})
		return
	}

	date, err := parseEventDate(input.Date)
	if err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Please provide a valid date",
		})
		return
	}

	event := h.getOwnedEvent(w, r, userID)
	if event == nil {
		return
	}

	event.Title = input.Title
	event.Date = date
	event.Location = input.Location
	event.Description = input.Description

	if err := h.events.Update(r.Context(), event); err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Database update failed",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Event updated successfully",
		Data:    event,
	})
}

// DELETE /api/v1/events/{id}
// DeleteEvent godoc
// @Summary Delete an event
// @Description Removes an owned event permanently.
// @Tags Events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} utils.Payload
// @Failure 401 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Security BearerAuth
// @Router /api/v1/events/{id} [delete]
func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	event := h.getOwnedEvent(w, r, userID)
	if event == nil {
		return
	}

	if err := h.events.Delete(r.Context(), event.ID); err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Database delete failed",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Event removed",
	})
}
