// Package devstore is an in-process stand-in for the hosted JSON-document
// store. It speaks the same contract the dashboard depends on: collections
// under /{collection}, documents under /{collection}/{id}, identifiers
// assigned by the server under "_id", JSON in and out. Nothing survives a
// restart; the store exists for local development and for tests.
package devstore

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Store is a mutex-guarded in-memory document collection server.
type Store struct {
	mu sync.Mutex
	// collections maps collection name to documents by id. order keeps
	// insertion order per collection so listings are stable.
	collections map[string]map[string]map[string]any
	order       map[string][]string

	router chi.Router
}

// New returns an empty store with its routes registered.
func New() *Store {
	s := &Store{
		collections: make(map[string]map[string]map[string]any),
		order:       make(map[string][]string),
	}
	r := chi.NewRouter()
	r.Route("/{collection}", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Post("/", s.handleCreate)
		r.Get("/{id}", s.handleGet)
		r.Put("/{id}", s.handleReplace)
		r.Delete("/{id}", s.handleDelete)
	})
	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Store) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Store) handleList(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "collection")

	s.mu.Lock()
	docs := make([]map[string]any, 0, len(s.order[name]))
	for _, id := range s.order[name] {
		docs = append(docs, s.collections[name][id])
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, docs)
}

func (s *Store) handleCreate(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "collection")
	doc, ok := decodeDocument(w, r)
	if !ok {
		return
	}

	id := newID()
	doc["_id"] = id

	s.mu.Lock()
	if s.collections[name] == nil {
		s.collections[name] = make(map[string]map[string]any)
	}
	s.collections[name][id] = doc
	s.order[name] = append(s.order[name], id)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, doc)
}

func (s *Store) handleGet(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "collection")
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	doc, ok := s.collections[name][id]
	s.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Store) handleReplace(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "collection")
	id := chi.URLParam(r, "id")
	doc, ok := decodeDocument(w, r)
	if !ok {
		return
	}
	doc["_id"] = id

	s.mu.Lock()
	_, exists := s.collections[name][id]
	if exists {
		s.collections[name][id] = doc
	}
	s.mu.Unlock()

	if !exists {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Store) handleDelete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "collection")
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	_, exists := s.collections[name][id]
	if exists {
		delete(s.collections[name], id)
		ids := s.order[name]
		for i, existing := range ids {
			if existing == id {
				s.order[name] = append(ids[:i], ids[i+1:]...)
				break
			}
		}
	}
	s.mu.Unlock()

	if !exists {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// newID mints a compact hex identifier in the style of hosted document
// stores.
func newID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func decodeDocument(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	var doc map[string]any
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return nil, false
	}
	return doc, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
