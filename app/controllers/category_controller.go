package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"monresto/app/dto"
	"monresto/app/models"
	"monresto/app/services"
)

type CategoryController struct {
	Categories *services.CategoryService
}

func NewCategoryController(categories *services.CategoryService) *CategoryController {
	return &CategoryController{Categories: categories}
}

func (c *CategoryController) List(w http.ResponseWriter, r *http.Request) {
	categories, err := c.Categories.List()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(categories)
}

func (c *CategoryController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	category, err := c.Categories.Get(id)
	if err != nil {
		writeEntityErr(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(category)
}

func (c *CategoryController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CategoryRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Name == "" {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("Name is required."))
		return
	}
	category := models.Category{Name: req.Name}
	if err := c.Categories.Create(&category); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(category)
}

func (c *CategoryController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.CategoryRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	category, err := c.Categories.Update(id, req.Name)
	if err != nil {
		writeEntityErr(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(category)
}

func (c *CategoryController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.Categories.Delete(id); err != nil {
		writeEntityErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeEntityErr(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("Not found."))
		return
	}
	w.WriteHeader(http.StatusInternalServerError)
}
