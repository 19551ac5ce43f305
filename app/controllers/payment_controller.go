package controllers

import (
	"encoding/json"
	"net/http"

	"monresto/app/dto"
	"monresto/app/middleware"
	"monresto/app/services"
)

type PaymentController struct {
	Payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{Payments: payments}
}

func (c *PaymentController) List(w http.ResponseWriter, r *http.Request) {
	payments, err := c.Payments.List()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payments)
}

func (c *PaymentController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	payment, err := c.Payments.Get(id)
	if err != nil {
		writeEntityErr(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payment)
}

func (c *PaymentController) Create(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	var req dto.PaymentRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Amount <= 0 {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("Amount must be positive."))
		return
	}
	payment, err := c.Payments.Create(claims.Subject, req.Amount, req.Method)
	if err != nil {
		writeEntityErr(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payment)
}
