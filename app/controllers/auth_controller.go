package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"monresto/app/dto"
	"monresto/app/services"
)

type AuthController struct {
	Users *services.UserService
}

func NewAuthController(users *services.UserService) *AuthController {
	return &AuthController{Users: users}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Username == "" || req.Email == "" || req.Password == "" {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("Username, email and password are required."))
		return
	}
	if err := c.Users.Register(req.Username, req.Email, req.Password); err != nil {
		if errors.Is(err, services.ErrDuplicateUser) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("Username or email already exists."))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	_, _ = w.Write([]byte("User registered successfully."))
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	token, err := c.Users.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte("Invalid username or password."))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(dto.TokenResponse{Token: token})
}

func (c *AuthController) Profile(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if token == "" {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("Missing token."))
		return
	}
	u, err := c.Users.Profile(r.Context(), token)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		if errors.Is(err, services.ErrNotFound) {
			_, _ = w.Write([]byte("User not found."))
		} else {
			_, _ = w.Write([]byte("Invalid token."))
		}
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(dto.ProfileResponse{Username: u.Username, Email: u.Email})
}

func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if token == "" {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("Missing token."))
		return
	}
	if err := c.Users.Logout(r.Context(), token); err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte("Invalid token."))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	_, _ = w.Write([]byte("Logged out."))
}

func (c *AuthController) List(w http.ResponseWriter, r *http.Request) {
	users, err := c.Users.List()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(users)
}

func (c *AuthController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	u, err := c.Users.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("User not found."))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(u)
}

func (c *AuthController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.RegisterRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if err := c.Users.Update(id, req.Username, req.Email, req.Password); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("User not found."))
		case errors.Is(err, services.ErrDuplicateUser):
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("Username or email already exists."))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}
	_, _ = w.Write([]byte("User updated successfully."))
}

func (c *AuthController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.Users.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("User not found."))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	_, _ = w.Write([]byte("User deleted successfully."))
}

func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("Invalid id."))
		return 0, false
	}
	return uint(id), true
}
