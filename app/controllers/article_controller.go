package controllers

import (
	"encoding/json"
	"net/http"

	"monresto/app/dto"
	"monresto/app/models"
	"monresto/app/services"
)

type ArticleController struct {
	Articles *services.ArticleService
}

func NewArticleController(articles *services.ArticleService) *ArticleController {
	return &ArticleController{Articles: articles}
}

func (c *ArticleController) List(w http.ResponseWriter, r *http.Request) {
	articles, err := c.Articles.List()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(articles)
}

func (c *ArticleController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	article, err := c.Articles.Get(id)
	if err != nil {
		writeEntityErr(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(article)
}

func (c *ArticleController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.ArticleRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Name == "" || req.CategoryID == 0 {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("Name and category are required."))
		return
	}
	article := models.Article{Name: req.Name, Description: req.Description, Price: req.Price, CategoryID: req.CategoryID}
	if err := c.Articles.Create(&article); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(article)
}

func (c *ArticleController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.ArticleRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	article, err := c.Articles.Update(id, req.Name, req.Description, req.Price, req.CategoryID)
	if err != nil {
		writeEntityErr(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(article)
}

func (c *ArticleController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.Articles.Delete(id); err != nil {
		writeEntityErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
