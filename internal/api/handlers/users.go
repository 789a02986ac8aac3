package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/evently-hq/evently/internal/repositories"
	"github.com/evently-hq/evently/internal/utils"
)

type UserHandler struct {
	users repositories.UserStore
}

func NewUserHandler(users repositories.UserStore) *UserHandler {
	return &UserHandler{users: users}
}

// GET /api/v1/users/profile
// GetProfile godoc
// @Summary Get the caller's profile
// @Tags Users
// @Produce json
// @Success 200 {object} utils.Payload
// @Failure 401 {object} utils.Payload
// @Security BearerAuth
// @Router /api/v1/users/profile [get]
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	user, err := h.users.FindByID(r.Context(), userID)
	if errors.Is(err, repositories.ErrNotFound) {
		utils.JSONResponse(w, http.StatusNotFound, utils.Payload{
			Success: false,
			Message: "User not found",
		})
		return
	}
	if err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Database error",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Profile retrieved successfully",
		Data:    user,
	})
}

// PUT /api/v1/users/profile
// UpdateProfile godoc
// @Summary Update the caller's name or email
// @Tags Users
// @Accept json
// @Produce json
// @Success 200 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Failure 401 {object} utils.Payload
// @Security BearerAuth
// @Router /api/v1/users/profile [put]
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var input struct {
		Name  *string `json:"name"`
		Email *string `json:"email"`
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid input",
		})
		return
	}

	patch := repositories.UserPatch{}
	if input.Name != nil {
		if !validName(*input.Name) {
			utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
				Success: false,
				Message: "Name must be between 2 and 50 characters",
			})
			return
		}
		patch.Name = input.Name
	}
	if input.Email != nil {
		if !validEmail(*input.Email) {
			utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
				Success: false,
				Message: "Please provide a valid email",
			})
			return
		}
		email := normalizeEmail(*input.Email)
		patch.Email = &email
	}

	user, err := h.users.Update(r.Context(), userID, patch)
	if errors.Is(err, repositories.ErrDuplicateEmail) {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "User already exists with this email",
		})
		return
	}
	if errors.Is(err, repositories.ErrNotFound) {
		utils.JSONResponse(w, http.StatusNotFound, utils.Payload{
			Success: false,
			Message: "User not found",
		})
		return
	}
	if err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Database error",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Profile updated successfully",
		Data:    user,
	})
}
