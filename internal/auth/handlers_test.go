package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestHandler(t *testing.T, queries *fakeQueries) *Handler {
	t.Helper()
	return &Handler{
		Service:           newTestService(t, queries),
		AccessCookieName:  "at",
		RefreshCookieName: "rt",
		CookieSameSite:    http.SameSiteLaxMode,
	}
}

func TestRegisterCreatesAccount(t *testing.T) {
	handler := newTestHandler(t, newFakeQueries())

	body := bytes.NewBufferString(`{"fullName":"Ayşe Yılmaz","email":"ayse@example.com","password":"password123"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", body)
	rec := httptest.NewRecorder()
	handler.Register(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	var payload struct {
		Data Account `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Data.Email != "ayse@example.com" {
		t.Fatalf("unexpected email: %s", payload.Data.Email)
	}
	if payload.Data.Role != "b2c" {
		t.Fatalf("new accounts must start as b2c, got %s", payload.Data.Role)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	handler := newTestHandler(t, newFakeQueries())

	for i, want := range []int{http.StatusCreated, http.StatusConflict} {
		body := bytes.NewBufferString(`{"fullName":"Ayşe Yılmaz","email":"ayse@example.com","password":"password123"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", body)
		rec := httptest.NewRecorder()
		handler.Register(rec, req)
		if rec.Code != want {
			t.Fatalf("attempt %d: got status %d, want %d", i, rec.Code, want)
		}
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	queries := newFakeQueries()
	handler := newTestHandler(t, queries)

	registerBody := bytes.NewBufferString(`{"fullName":"Ayşe Yılmaz","email":"ayse@example.com","password":"password123"}`)
	registerReq := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", registerBody)
	handler.Register(httptest.NewRecorder(), registerReq)

	body := bytes.NewBufferString(`{"email":"ayse@example.com","password":"wrong-password"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body)
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	var payload struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Error.Code != "INVALID_CREDENTIALS" {
		t.Fatalf("unexpected error code: %s", payload.Error.Code)
	}
}

func TestLoginSetsAuthCookies(t *testing.T) {
	queries := newFakeQueries()
	handler := newTestHandler(t, queries)

	registerBody := bytes.NewBufferString(`{"fullName":"Ayşe Yılmaz","email":"ayse@example.com","password":"password123"}`)
	registerReq := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", registerBody)
	handler.Register(httptest.NewRecorder(), registerReq)

	body := bytes.NewBufferString(`{"email":"ayse@example.com","password":"password123"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body)
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	res := rec.Result()
	defer res.Body.Close()
	access := findCookie(res.Cookies(), "at")
	refresh := findCookie(res.Cookies(), "rt")
	if access == nil || access.Value == "" {
		t.Fatalf("expected access cookie")
	}
	if refresh == nil || refresh.Value == "" {
		t.Fatalf("expected refresh cookie")
	}
	if !access.HttpOnly || !refresh.HttpOnly {
		t.Fatalf("auth cookies must be http-only")
	}
}
