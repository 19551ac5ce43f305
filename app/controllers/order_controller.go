package controllers

import (
	"encoding/json"
	"net/http"

	"monresto/app/dto"
	"monresto/app/middleware"
	"monresto/app/models"
	"monresto/app/services"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	orders, err := c.Orders.List()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(orders)
}

func (c *OrderController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	order, err := c.Orders.Get(id)
	if err != nil {
		writeEntityErr(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(order)
}

func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	var req dto.OrderRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if len(req.Items) == 0 {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("Order needs at least one item."))
		return
	}
	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("Item quantity must be positive."))
			return
		}
		items = append(items, models.OrderItem{ArticleID: item.ArticleID, Quantity: item.Quantity})
	}
	order, err := c.Orders.Place(claims.Subject, items)
	if err != nil {
		writeEntityErr(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(order)
}

func (c *OrderController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.Orders.Delete(id); err != nil {
		writeEntityErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
