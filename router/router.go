package router

import (
	"net/http"

	"monresto/app/controllers"
	"monresto/app/middleware"
)

// NewRouter wires every endpoint. User administration and all entity writes
// require a bearer token; menu reads and the contact form stay public.
func NewRouter(
	authCtrl *controllers.AuthController,
	contactCtrl *controllers.ContactController,
	categoryCtrl *controllers.CategoryController,
	articleCtrl *controllers.ArticleController,
	orderCtrl *controllers.OrderController,
	paymentCtrl *controllers.PaymentController,
	mw *middleware.Auth,
) http.Handler {
	mux := http.NewServeMux()

	// auth
	mux.HandleFunc("POST /api/auth/register", authCtrl.Register)
	mux.HandleFunc("POST /api/auth/login", authCtrl.Login)
	mux.HandleFunc("GET /api/auth/profile", authCtrl.Profile)
	mux.HandleFunc("POST /api/auth/logout", authCtrl.Logout)
	mux.Handle("GET /api/auth", mw.RequireAuth(http.HandlerFunc(authCtrl.List)))
	mux.Handle("GET /api/auth/{id}", mw.RequireAuth(http.HandlerFunc(authCtrl.GetByID)))
	mux.Handle("PUT /api/auth/{id}", mw.RequireAuth(http.HandlerFunc(authCtrl.Update)))
	mux.Handle("DELETE /api/auth/{id}", mw.RequireAuth(http.HandlerFunc(authCtrl.Delete)))

	// contact
	mux.HandleFunc("POST /api/contact", contactCtrl.Create)

	// menu
	mux.HandleFunc("GET /api/categories", categoryCtrl.List)
	mux.HandleFunc("GET /api/categories/{id}", categoryCtrl.GetByID)
	mux.Handle("POST /api/categories", mw.RequireAuth(http.HandlerFunc(categoryCtrl.Create)))
	mux.Handle("PUT /api/categories/{id}", mw.RequireAuth(http.HandlerFunc(categoryCtrl.Update)))
	mux.Handle("DELETE /api/categories/{id}", mw.RequireAuth(http.HandlerFunc(categoryCtrl.Delete)))

	mux.HandleFunc("GET /api/articles", articleCtrl.List)
	mux.HandleFunc("GET /api/articles/{id}", articleCtrl.GetByID)
	mux.Handle("POST /api/articles", mw.RequireAuth(http.HandlerFunc(articleCtrl.Create)))
	mux.Handle("PUT /api/articles/{id}", mw.RequireAuth(http.HandlerFunc(articleCtrl.Update)))
	mux.Handle("DELETE /api/articles/{id}", mw.RequireAuth(http.HandlerFunc(articleCtrl.Delete)))

	// orders and payments
	mux.Handle("GET /api/orders", mw.RequireAuth(http.HandlerFunc(orderCtrl.List)))
	mux.Handle("GET /api/orders/{id}", mw.RequireAuth(http.HandlerFunc(orderCtrl.GetByID)))
	mux.Handle("POST /api/orders", mw.RequireAuth(http.HandlerFunc(orderCtrl.Create)))
	mux.Handle("DELETE /api/orders/{id}", mw.RequireAuth(http.HandlerFunc(orderCtrl.Delete)))

	mux.Handle("GET /api/payments", mw.RequireAuth(http.HandlerFunc(paymentCtrl.List)))
	mux.Handle("GET /api/payments/{id}", mw.RequireAuth(http.HandlerFunc(paymentCtrl.GetByID)))
	mux.Handle("POST /api/payments", mw.RequireAuth(http.HandlerFunc(paymentCtrl.Create)))

	return mux
}
