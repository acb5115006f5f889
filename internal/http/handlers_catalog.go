package httpapi

import (
	"net/http"

	"github.com/pawlig/pawlig/internal/auth"
	"github.com/pawlig/pawlig/internal/service"
)

func (a *App) petsHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		pets, err := a.Svc.Pets(r.Context())
		if err != nil {
			WriteServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, pets)
	case http.MethodPost:
		sess, ok := Require(w, r, auth.Requirement{
			Roles:           []auth.Role{auth.RoleShelter},
			RequireVerified: true,
		})
		if !ok {
			return
		}
		var in service.PetInput
		if !decodeJSON(w, r, &in) {
			return
		}
		pet, err := a.Svc.CreatePet(r.Context(), sess.ShelterID, in)
		if err != nil {
			WriteServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, pet)
	default:
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
	}
}

func (a *App) petHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	id := pathID(r, "/api/pets/")
	if id == "" {
		WriteJSONError(w, http.StatusNotFound, "not_found", "")
		return
	}
	pet, err := a.Svc.PetByID(r.Context(), id)
	if err != nil {
		WriteServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pet)
}

func (a *App) productsHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		products, err := a.Svc.Products(r.Context())
		if err != nil {
			WriteServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, products)
	case http.MethodPost:
		sess, ok := Require(w, r, auth.Requirement{
			Roles:           []auth.Role{auth.RoleVendor},
			RequireVerified: true,
		})
		if !ok {
			return
		}
		var in service.ProductInput
		if !decodeJSON(w, r, &in) {
			return
		}
		p, err := a.Svc.CreateProduct(r.Context(), sess.VendorID, in)
		if err != nil {
			WriteServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, p)
	default:
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
	}
}

func (a *App) productHandler(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "/api/products/")
	if id == "" {
		WriteJSONError(w, http.StatusNotFound, "not_found", "")
		return
	}
	switch r.Method {
	case http.MethodGet:
		p, err := a.Svc.ProductByID(r.Context(), id)
		if err != nil {
			WriteServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	case http.MethodPut:
		sess, ok := Require(w, r, auth.Requirement{
			Roles:           []auth.Role{auth.RoleVendor},
			RequireVerified: true,
		})
		if !ok {
			return
		}
		var in service.ProductInput
		if !decodeJSON(w, r, &in) {
			return
		}
		p, err := a.Svc.UpdateProduct(r.Context(), sess.VendorID, id, in)
		if err != nil {
			WriteServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	default:
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
	}
}

func (a *App) announcementsHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		as, err := a.Svc.Announcements(r.Context())
		if err != nil {
			WriteServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, as)
	case http.MethodPost:
		if _, ok := Require(w, r, auth.Requirement{Roles: []auth.Role{auth.RoleAdmin}}); !ok {
			return
		}
		var in struct {
			Title string `json:"title"`
			Body  string `json:"body"`
		}
		if !decodeJSON(w, r, &in) {
			return
		}
		created, err := a.Svc.CreateAnnouncement(r.Context(), in.Title, in.Body)
		if err != nil {
			WriteServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	default:
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
	}
}

func (a *App) announcementHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	if _, ok := Require(w, r, auth.Requirement{Roles: []auth.Role{auth.RoleAdmin}}); !ok {
		return
	}
	id := pathID(r, "/api/announcements/")
	if id == "" {
		WriteJSONError(w, http.StatusNotFound, "not_found", "")
		return
	}
	if err := a.Svc.DeleteAnnouncement(r.Context(), id); err != nil {
		WriteServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
