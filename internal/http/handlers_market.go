package httpapi

import (
	"net/http"

	"github.com/pawlig/pawlig/internal/auth"
	"github.com/pawlig/pawlig/internal/obs"
	"github.com/pawlig/pawlig/internal/service"
	"github.com/pawlig/pawlig/internal/upload"
)

func (a *App) ordersHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		sess, ok := Require(w, r, auth.Requirement{})
		if !ok {
			return
		}
		var in service.OrderInput
		if !decodeJSON(w, r, &in) {
			return
		}
		order, err := a.Svc.PlaceOrder(r.Context(), sess.UserID, in)
		if err != nil {
			WriteServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, order)
	case http.MethodGet:
		sess, ok := Require(w, r, auth.Requirement{})
		if !ok {
			return
		}
		userID := sess.UserID
		if v := r.URL.Query().Get("user"); v != "" && v != sess.UserID {
			// Only administrators may read someone else's history.
			if _, ok := Require(w, r, auth.Requirement{Roles: []auth.Role{auth.RoleAdmin}}); !ok {
				return
			}
			userID = v
		}
		orders, err := a.Svc.OrdersOf(r.Context(), userID)
		if err != nil {
			WriteServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, orders)
	default:
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
	}
}

func (a *App) favoritesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	sess, ok := Require(w, r, auth.Requirement{})
	if !ok {
		return
	}
	favs, err := a.Svc.FavoritesOf(r.Context(), sess.UserID)
	if err != nil {
		WriteServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, favs)
}

func (a *App) favoriteToggleHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	sess, ok := Require(w, r, auth.Requirement{})
	if !ok {
		return
	}
	var in struct {
		PetID string `json:"petId"`
	}
	if !decodeJSON(w, r, &in) {
		return
	}
	if in.PetID == "" {
		WriteJSONError(w, http.StatusBadRequest, "validation_error", "petId is required")
		return
	}
	isFav, err := a.Svc.ToggleFavorite(r.Context(), sess.UserID, in.PetID)
	if err != nil {
		WriteServiceError(w, r, err)
		return
	}
	msg := "removed from favorites"
	if isFav {
		msg = "added to favorites"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"message":    msg,
		"isFavorite": isFav,
	})
}

func (a *App) adoptionsHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		sess, ok := Require(w, r, auth.Requirement{})
		if !ok {
			return
		}
		var in struct {
			PetID   string `json:"petId"`
			Message string `json:"message"`
		}
		if !decodeJSON(w, r, &in) {
			return
		}
		if in.PetID == "" {
			WriteJSONError(w, http.StatusBadRequest, "validation_error", "petId is required")
			return
		}
		req, err := a.Svc.RequestAdoption(r.Context(), sess.UserID, in.PetID, in.Message)
		if err != nil {
			WriteServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, req)
	case http.MethodGet:
		sess, ok := Require(w, r, auth.Requirement{
			Roles:           []auth.Role{auth.RoleShelter},
			RequireVerified: true,
		})
		if !ok {
			return
		}
		reqs, err := a.Svc.AdoptionsForShelter(r.Context(), sess.ShelterID)
		if err != nil {
			WriteServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, reqs)
	default:
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
	}
}

func (a *App) adoptionHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	sess, ok := Require(w, r, auth.Requirement{
		Roles:           []auth.Role{auth.RoleShelter},
		RequireVerified: true,
	})
	if !ok {
		return
	}
	id := pathID(r, "/api/adoptions/")
	if id == "" {
		WriteJSONError(w, http.StatusNotFound, "not_found", "")
		return
	}
	var in struct {
		Status string `json:"status"`
	}
	if !decodeJSON(w, r, &in) {
		return
	}
	req, err := a.Svc.DecideAdoption(r.Context(), sess.ShelterID, id, in.Status)
	if err != nil {
		WriteServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (a *App) uploadSignHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	sess, ok := Require(w, r, auth.Requirement{})
	if !ok {
		return
	}
	var in struct {
		Folder string `json:"folder"`
	}
	if !decodeJSON(w, r, &in) {
		return
	}
	if in.Folder == "" {
		WriteJSONError(w, http.StatusBadRequest, "validation_error", "folder is required")
		return
	}
	if !upload.FolderAllowed(sess.Role, in.Folder) {
		WriteJSONError(w, http.StatusForbidden, "unauthorized", "folder_not_allowed")
		return
	}
	cred, err := a.Signer.Sign(r.Context(), in.Folder, a.Cfg.UploadCredTTL)
	if err != nil {
		WriteServiceError(w, r, err)
		return
	}
	obs.Logger.Info("upload_signed",
		"request_id", RequestIDFromContext(r.Context()),
		"user_id", sess.UserID,
		"folder", in.Folder,
	)
	writeJSON(w, http.StatusOK, cred)
}
