package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"
)

const (
	testToken    = "tok-ann"
	testPassword = "secret123"
)

type wireContact struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Categories []string `json:"categories"`
	Favorite   bool     `json:"favorite"`
	Status     string   `json:"status"`
	CreatedAt  string   `json:"createdAt"`
}

type wireActivity struct {
	Action      string `json:"action"`
	ContactName string `json:"contact_name"`
	ActionType  string `json:"action_type"`
	Timestamp   string `json:"timestamp"`
}

// fakeBackend is an in-memory contacts API that records activities the way
// the real backend does.
type fakeBackend struct {
	mu         sync.Mutex
	contacts   []wireContact
	activities []wireActivity
	requests   int
	nextID     int
	expired    bool
}

func newFakeBackend(t *testing.T) (*fakeBackend, *httptest.Server) {
	t.Helper()

	b := &fakeBackend{
		nextID: 100,
		contacts: []wireContact{
			{ID: "c1", Name: "Bob", Email: "bob@x.com", Categories: []string{"Work"}, Status: "active", CreatedAt: "2024-05-01T10:00:00Z"},
			{ID: "c2", Name: "Ann", Email: "ann@x.com", Phone: "555-0100", Categories: []string{"Family", "Work"}, Favorite: true, Status: "active", CreatedAt: "2024-05-02T10:00:00Z"},
			{ID: "c3", Name: "Carl", Email: "carl@x.com", Categories: []string{}, Status: "blocked", CreatedAt: "2024-05-03T10:00:00Z"},
		},
		activities: []wireActivity{
			{Action: "added", ContactName: "Bob", Timestamp: "2024-05-01T10:00:00Z"},
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/login", b.login)
	mux.HandleFunc("POST /api/register", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, map[string]string{"message": "ok"})
	})
	mux.HandleFunc("GET /logout", b.authed(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	mux.HandleFunc("GET /api/contacts", b.authed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, b.contacts)
	}))
	mux.HandleFunc("GET /api/user-activities", b.authed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, b.activities)
	}))
	mux.HandleFunc("GET /api/contacts/{id}", b.authed(func(w http.ResponseWriter, r *http.Request) {
		if i := b.index(r.PathValue("id")); i >= 0 {
			writeJSON(w, http.StatusOK, b.contacts[i])
			return
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Contact not found"})
	}))
	mux.HandleFunc("POST /api/contacts", b.authed(b.create))
	mux.HandleFunc("PUT /api/contacts/{id}", b.authed(b.update))
	mux.HandleFunc("DELETE /api/contacts/{id}", b.authed(func(w http.ResponseWriter, r *http.Request) {
		i := b.index(r.PathValue("id"))
		b.record("deleted", b.contacts[i].Name, "")
		b.contacts = append(b.contacts[:i], b.contacts[i+1:]...)
		writeJSON(w, http.StatusOK, true)
	}))
	mux.HandleFunc("PATCH /api/contacts/{id}/toggle-favorite", b.authed(func(w http.ResponseWriter, r *http.Request) {
		i := b.index(r.PathValue("id"))
		b.contacts[i].Favorite = !b.contacts[i].Favorite
		kind := "unfavorite"
		if b.contacts[i].Favorite {
			kind = "favorite"
		}
		b.record("toggle_favorite", b.contacts[i].Name, kind)
		writeJSON(w, http.StatusOK, true)
	}))
	mux.HandleFunc("PATCH /api/contacts/{id}/set-status", b.authed(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Status string `json:"status"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		i := b.index(r.PathValue("id"))
		b.contacts[i].Status = body.Status
		b.record("set_status", b.contacts[i].Name, body.Status)
		writeJSON(w, http.StatusOK, true)
	}))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return b, srv
}

func (b *fakeBackend) login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)
	if body.Password != testPassword {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"access_token": testToken,
		"user":         map[string]string{"id": "u1", "name": "Ann Owner", "email": body.Email},
	})
}

func (b *fakeBackend) create(w http.ResponseWriter, r *http.Request) {
	var c wireContact
	_ = json.NewDecoder(r.Body).Decode(&c)
	b.nextID++
	c.ID = "c" + strconv.Itoa(b.nextID)
	c.Status = "active"
	c.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	b.contacts = append(b.contacts, c)
	b.record("added", c.Name, "")
	writeJSON(w, http.StatusCreated, c)
}

func (b *fakeBackend) update(w http.ResponseWriter, r *http.Request) {
	var c wireContact
	_ = json.NewDecoder(r.Body).Decode(&c)
	i := b.index(r.PathValue("id"))
	c.ID = b.contacts[i].ID
	c.Status = b.contacts[i].Status
	c.Favorite = b.contacts[i].Favorite
	c.CreatedAt = b.contacts[i].CreatedAt
	b.contacts[i] = c
	b.record("updated", c.Name, "")
	writeJSON(w, http.StatusOK, c)
}

// authed serializes handlers and enforces the bearer token.
func (b *fakeBackend) authed(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.requests++
		if b.expired || r.Header.Get("Authorization") != "Bearer "+testToken {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			return
		}
		next(w, r)
	}
}

func (b *fakeBackend) index(id string) int {
	for i, c := range b.contacts {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (b *fakeBackend) record(action, name, kind string) {
	b.activities = append(b.activities, wireActivity{
		Action:      action,
		ContactName: name,
		ActionType:  kind,
		Timestamp:   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

func (b *fakeBackend) contact(id string) wireContact {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.contacts[b.index(id)]
}

func (b *fakeBackend) requestCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.requests
}

func (b *fakeBackend) expire() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.expired = true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
