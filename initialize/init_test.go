package initialize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"monresto/config"
)

// TestAPI_RegisterLoginProfile drives the full router against an in-memory
// sqlite store: register, log in, then read the profile with the bearer token.
func TestAPI_RegisterLoginProfile(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	// 1) Register
	status, body := post(t, srv, "/api/auth/register", map[string]string{
		"username": "alice", "email": "alice@example.com", "password": "hunter2",
	}, "")
	if status != http.StatusOK || body != "User registered successfully." {
		t.Fatalf("register: status=%d body=%q", status, body)
	}

	// duplicate username, different email
	status, body = post(t, srv, "/api/auth/register", map[string]string{
		"username": "alice", "email": "alice2@example.com", "password": "hunter2",
	}, "")
	if status != http.StatusBadRequest || body != "Username or email already exists." {
		t.Fatalf("duplicate register: status=%d body=%q", status, body)
	}

	// 2) Login
	token := login(t, srv, "alice", "hunter2")

	// wrong password and unknown user answer identically
	status, body = post(t, srv, "/api/auth/login", map[string]string{"username": "alice", "password": "wrong"}, "")
	if status != http.StatusUnauthorized || body != "Invalid username or password." {
		t.Fatalf("wrong password: status=%d body=%q", status, body)
	}
	status2, body2 := post(t, srv, "/api/auth/login", map[string]string{"username": "nobody", "password": "hunter2"}, "")
	if status2 != status || body2 != body {
		t.Fatalf("unknown user answered differently: status=%d body=%q", status2, body2)
	}

	// 3) Profile
	status, body = get(t, srv, "/api/auth/profile", token)
	if status != http.StatusOK {
		t.Fatalf("profile: status=%d body=%q", status, body)
	}
	var profile struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	if err := json.Unmarshal([]byte(body), &profile); err != nil {
		t.Fatalf("profile decode: %v", err)
	}
	if profile.Username != "alice" || profile.Email != "alice@example.com" {
		t.Fatalf("unexpected profile: %+v", profile)
	}
	if strings.Contains(strings.ToLower(body), "password") {
		t.Fatalf("profile leaks password material: %q", body)
	}

	// missing and garbage tokens
	if status, _ := get(t, srv, "/api/auth/profile", ""); status != http.StatusUnauthorized {
		t.Fatalf("profile without token: status=%d", status)
	}
	if status, _ := get(t, srv, "/api/auth/profile", "garbage"); status != http.StatusUnauthorized {
		t.Fatalf("profile with garbage token: status=%d", status)
	}
}

func TestAPI_UserAdminEndpointsAreGated(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	if status, _ := get(t, srv, "/api/auth", ""); status != http.StatusUnauthorized {
		t.Fatalf("tokenless user list: status=%d", status)
	}

	register(t, srv, "alice", "alice@example.com", "hunter2")
	token := login(t, srv, "alice", "hunter2")

	status, body := get(t, srv, "/api/auth", token)
	if status != http.StatusOK {
		t.Fatalf("user list: status=%d body=%q", status, body)
	}
	var users []map[string]any
	if err := json.Unmarshal([]byte(body), &users); err != nil || len(users) != 1 {
		t.Fatalf("user list decode: %v body=%q", err, body)
	}

	status, body = get(t, srv, "/api/auth/1", token)
	if status != http.StatusOK {
		t.Fatalf("get user 1: status=%d body=%q", status, body)
	}
	if status, body = get(t, srv, "/api/auth/999", token); status != http.StatusNotFound || body != "User not found." {
		t.Fatalf("get missing user: status=%d body=%q", status, body)
	}

	status, body = do(t, srv, http.MethodPut, "/api/auth/1", map[string]string{
		"username": "alice", "email": "alice@new.example.com", "password": "hunter3",
	}, token)
	if status != http.StatusOK || body != "User updated successfully." {
		t.Fatalf("update user: status=%d body=%q", status, body)
	}

	// old credentials are dead, new ones work
	if status, _ = post(t, srv, "/api/auth/login", map[string]string{"username": "alice", "password": "hunter2"}, ""); status != http.StatusUnauthorized {
		t.Fatalf("old password still valid: status=%d", status)
	}
	token = login(t, srv, "alice", "hunter3")

	status, body = do(t, srv, http.MethodDelete, "/api/auth/999", nil, token)
	if status != http.StatusNotFound || body != "User not found." {
		t.Fatalf("delete missing user: status=%d body=%q", status, body)
	}
	status, body = do(t, srv, http.MethodDelete, "/api/auth/1", nil, token)
	if status != http.StatusOK || body != "User deleted successfully." {
		t.Fatalf("delete user: status=%d body=%q", status, body)
	}
}

func TestAPI_Logout(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	register(t, srv, "alice", "alice@example.com", "hunter2")
	token := login(t, srv, "alice", "hunter2")

	if status, _ := get(t, srv, "/api/auth/profile", token); status != http.StatusOK {
		t.Fatalf("profile before logout: status=%d", status)
	}
	if status, _ := do(t, srv, http.MethodPost, "/api/auth/logout", nil, token); status != http.StatusOK {
		t.Fatalf("logout: status=%d", status)
	}
	if status, _ := get(t, srv, "/api/auth/profile", token); status != http.StatusUnauthorized {
		t.Fatalf("profile after logout: status=%d", status)
	}
}

func TestAPI_Contact(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	status, body := post(t, srv, "/api/contact", map[string]string{
		"name": "Paul", "email": "paul@example.com", "message": "Table for two?",
	}, "")
	if status != http.StatusOK {
		t.Fatalf("contact: status=%d body=%q", status, body)
	}
	var out map[string]string
	if err := json.Unmarshal([]byte(body), &out); err != nil || out["message"] != "Contact saved successfully!" {
		t.Fatalf("contact response: %v body=%q", err, body)
	}
}

func TestAPI_MenuAndOrders(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	register(t, srv, "alice", "alice@example.com", "hunter2")
	token := login(t, srv, "alice", "hunter2")

	// menu writes need a token
	if status, _ := post(t, srv, "/api/categories", map[string]any{"name": "Pizzas"}, ""); status != http.StatusUnauthorized {
		t.Fatalf("tokenless category create: status=%d", status)
	}

	status, body := post(t, srv, "/api/categories", map[string]any{"name": "Pizzas"}, token)
	if status != http.StatusOK {
		t.Fatalf("create category: status=%d body=%q", status, body)
	}
	var category struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal([]byte(body), &category); err != nil {
		t.Fatalf("category decode: %v", err)
	}

	status, body = post(t, srv, "/api/articles", map[string]any{
		"name": "Margherita", "description": "Tomato, mozzarella, basil", "price": 9.5, "category_id": category.ID,
	}, token)
	if status != http.StatusOK {
		t.Fatalf("create article: status=%d body=%q", status, body)
	}
	var article struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal([]byte(body), &article); err != nil {
		t.Fatalf("article decode: %v", err)
	}

	// menu reads are public
	if status, _ := get(t, srv, "/api/articles", ""); status != http.StatusOK {
		t.Fatalf("public article list: status=%d", status)
	}

	status, body = post(t, srv, "/api/orders", map[string]any{
		"items": []map[string]any{{"article_id": article.ID, "quantity": 2}},
	}, token)
	if status != http.StatusOK {
		t.Fatalf("place order: status=%d body=%q", status, body)
	}
	var order struct {
		ID    uint    `json:"id"`
		Total float64 `json:"total"`
	}
	if err := json.Unmarshal([]byte(body), &order); err != nil {
		t.Fatalf("order decode: %v", err)
	}
	if order.Total != 19 {
		t.Fatalf("order total: got %v want 19", order.Total)
	}

	status, body = post(t, srv, "/api/payments", map[string]any{"amount": order.Total, "method": "card"}, token)
	if status != http.StatusOK {
		t.Fatalf("create payment: status=%d body=%q", status, body)
	}
}

// --- harness ---

var testDBSeq int

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	testDBSeq++
	cfg := &config.Config{
		DB: config.DB{
			Driver: "sqlite",
			Path:   fmt.Sprintf("file:api_%s_%d?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"), testDBSeq),
		},
		JWT:     config.JWT{Secret: "test-secret", Issuer: "monresto", Audience: "monresto-clients", ExpMin: 60},
		HashKey: "test-hash-key",
	}
	app, err := New(cfg)
	if err != nil {
		t.Fatalf("build app: %v", err)
	}
	return httptest.NewServer(app.Router)
}

func do(t *testing.T, srv *httptest.Server, method, path string, payload any, token string) (int, string) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, srv.URL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(raw)
}

func post(t *testing.T, srv *httptest.Server, path string, payload any, token string) (int, string) {
	t.Helper()
	return do(t, srv, http.MethodPost, path, payload, token)
}

func get(t *testing.T, srv *httptest.Server, path, token string) (int, string) {
	t.Helper()
	return do(t, srv, http.MethodGet, path, nil, token)
}

func register(t *testing.T, srv *httptest.Server, username, email, password string) {
	t.Helper()
	status, body := post(t, srv, "/api/auth/register", map[string]string{
		"username": username, "email": email, "password": password,
	}, "")
	if status != http.StatusOK {
		t.Fatalf("register %s: status=%d body=%q", username, status, body)
	}
}

func login(t *testing.T, srv *httptest.Server, username, password string) string {
	t.Helper()
	status, body := post(t, srv, "/api/auth/login", map[string]string{
		"username": username, "password": password,
	}, "")
	if status != http.StatusOK {
		t.Fatalf("login %s: status=%d body=%q", username, status, body)
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal([]byte(body), &out); err != nil || out.Token == "" {
		t.Fatalf("login response: %v body=%q", err, body)
	}
	return out.Token
}
