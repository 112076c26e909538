// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package fakeapi is an internal helper for the test packages.
// It serves an in-memory rendition of the remote REST API using an
// httptest server, so the gateway, web, and CLI test suites can run
// without a real API server. It counts the received calls, may be
// asked to fail an endpoint with a given status code, and may be put
// in a hanging mode where requests block until they are cancelled.
package fakeapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/momeni/car-dealer/pkg/core/model"
)

// Credentials and tokens which the fake API accepts and issues.
const (
	Email    = "admin@example.com"
	Password = "secret"
	Access   = "test-access"
	Refresh  = "test-refresh"
)

// Server is a running fake API.
type Server struct {
	srv *httptest.Server

	mutex    sync.Mutex
	cars     []model.Car
	slides   []model.ImageSlider
	images   map[model.ID]string
	lastID   int
	calls    map[string]int
	failures map[string]int
	hang     chan struct{}

	// Uploads keeps the contents of the uploaded images by their names.
	Uploads map[string][]byte
}

// New starts a fake API which will be closed by the t cleanup.
func New(t *testing.T) *Server {
	t.Helper()
	s := &Server{
		images:   make(map[model.ID]string),
		calls:    make(map[string]int),
		failures: make(map[string]int),
		Uploads:  make(map[string][]byte),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/cars/{$}", s.listCars)
	mux.HandleFunc("POST /api/cars/{$}", s.auth(s.createCar))
	mux.HandleFunc("PUT /api/cars/{$}", s.auth(s.updateCar))
	mux.HandleFunc("DELETE /api/cars/{$}", s.auth(s.deleteCar))
	mux.HandleFunc("POST /api/cars/image/{$}", s.auth(s.uploadImage))
	mux.HandleFunc("DELETE /api/cars/image-delete/{id}/", s.auth(s.deleteImage))
	mux.HandleFunc("GET /api/cars/image-slider/{$}", s.listSlides)
	mux.HandleFunc("POST /api/cars/image-slider/{$}", s.auth(s.createSlide))
	mux.HandleFunc("PUT /api/cars/image-slider/{$}", s.auth(s.updateSlide))
	mux.HandleFunc("DELETE /api/cars/image-slider/{$}", s.auth(s.deleteSlide))
	mux.HandleFunc("POST /api/token/{$}", s.token)
	s.srv = httptest.NewServer(s.intercept(mux))
	t.Cleanup(func() {
		s.Release()
		s.srv.Close()
	})
	return s
}

// URL returns the base URL of s, ending with a slash.
func (s *Server) URL() string {
	return s.srv.URL + "/"
}

// SeedCars appends cars to the collection, assigning numeric IDs to
// the cars which have no ID. It returns the stored cars.
func (s *Server) SeedCars(cars ...model.Car) []model.Car {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	for _, c := range cars {
		if c.ID.IsZero() {
			c.ID = s.nextID()
		}
		s.cars = append(s.cars, c)
	}
	return append([]model.Car(nil), s.cars...)
}

// SeedSlides appends slides like SeedCars.
func (s *Server) SeedSlides(slides ...model.ImageSlider) []model.ImageSlider {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	for _, sl := range slides {
		if sl.ID.IsZero() {
			sl.ID = s.nextID()
		}
		s.slides = append(s.slides, sl)
	}
	return append([]model.ImageSlider(nil), s.slides...)
}

// Cars returns a copy of the stored car collection.
func (s *Server) Cars() []model.Car {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return append([]model.Car(nil), s.cars...)
}

// Slides returns a copy of the stored slide collection.
func (s *Server) Slides() []model.ImageSlider {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return append([]model.ImageSlider(nil), s.slides...)
}

// Calls returns the number of requests which were received for the
// method and path, e.g., Calls("GET", "/api/cars/").
func (s *Server) Calls(method, path string) int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.calls[method+" "+path]
}

// TotalCalls returns the number of all received requests.
func (s *Server) TotalCalls() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	n := 0
	for _, c := range s.calls {
		n += c
	}
	return n
}

// Fail makes the method and path endpoint answer with status until it
// is asked to Fail with a zero status.
func (s *Server) Fail(method, path string, status int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if status == 0 {
		delete(s.failures, method+" "+path)
		return
	}
	s.failures[method+" "+path] = status
}

// Hang makes all following requests block until their contexts are
// cancelled or Release is called.
func (s *Server) Hang() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.hang == nil {
		s.hang = make(chan struct{})
	}
}

// Release unblocks the hanging requests and ends the hanging mode.
func (s *Server) Release() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.hang != nil {
		close(s.hang)
		s.hang = nil
	}
}

func (s *Server) intercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		s.mutex.Lock()
		s.calls[key]++
		status := s.failures[key]
		hang := s.hang
		s.mutex.Unlock()
		if hang != nil {
			select {
			case <-hang:
			case <-r.Context().Done():
				return
			}
		}
		if status != 0 {
			http.Error(w, http.StatusText(status), status)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) auth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+Access {
			writeJSON(w, http.StatusUnauthorized, map[string]string{
				"detail": "Authentication credentials were not provided.",
			})
			return
		}
		next(w, r)
	}
}

func (s *Server) nextID() model.ID {
	s.lastID++
	return model.ID(strconv.Itoa(s.lastID))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func readJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"detail": err.Error(),
		})
		return false
	}
	return true
}

func formID(w http.ResponseWriter, r *http.Request) (model.ID, bool) {
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"detail": err.Error(),
		})
		return "", false
	}
	return model.ID(r.FormValue("id")), true
}

func (s *Server) listCars(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.Cars())
}

func (s *Server) createCar(w http.ResponseWriter, r *http.Request) {
	var d model.CarDraft
	if !readJSON(w, r, &d) {
		return
	}
	s.mutex.Lock()
	car := d.WithID(s.nextID())
	s.cars = append(s.cars, car)
	s.mutex.Unlock()
	writeJSON(w, http.StatusCreated, car)
}

func (s *Server) updateCar(w http.ResponseWriter, r *http.Request) {
	var c model.Car
	if !readJSON(w, r, &c) {
		return
	}
	s.mutex.Lock()
	_, _, ok := model.Find(s.cars, c.ID)
	if ok {
		s.cars = model.Apply(s.cars, c)
	}
	s.mutex.Unlock()
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) deleteCar(w http.ResponseWriter, r *http.Request) {
	id, ok := formID(w, r)
	if !ok {
		return
	}
	s.mutex.Lock()
	s.cars = model.Remove(s.cars, id)
	s.mutex.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) uploadImage(w http.ResponseWriter, r *http.Request) {
	f, h, err := r.FormFile("image")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"detail": err.Error(),
		})
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"detail": err.Error(),
		})
		return
	}
	s.mutex.Lock()
	id := s.nextID()
	u := fmt.Sprintf("%smedia/%s/%s", s.URL(), id, h.Filename)
	s.images[id] = u
	s.Uploads[h.Filename] = data
	s.mutex.Unlock()
	writeJSON(w, http.StatusCreated, model.Image{ID: id, URL: u})
}

func (s *Server) deleteImage(w http.ResponseWriter, r *http.Request) {
	id := model.ID(r.PathValue("id"))
	s.mutex.Lock()
	_, ok := s.images[id]
	delete(s.images, id)
	s.mutex.Unlock()
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listSlides(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.Slides())
}

func (s *Server) createSlide(w http.ResponseWriter, r *http.Request) {
	var d model.SlideDraft
	if !readJSON(w, r, &d) {
		return
	}
	s.mutex.Lock()
	sl := d.WithID(s.nextID())
	s.slides = append(s.slides, sl)
	s.mutex.Unlock()
	writeJSON(w, http.StatusCreated, sl)
}

func (s *Server) updateSlide(w http.ResponseWriter, r *http.Request) {
	var sl model.ImageSlider
	if !readJSON(w, r, &sl) {
		return
	}
	s.mutex.Lock()
	_, _, ok := model.Find(s.slides, sl.ID)
	if ok {
		s.slides = model.Apply(s.slides, sl)
	}
	s.mutex.Unlock()
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
		return
	}
	writeJSON(w, http.StatusOK, sl)
}

func (s *Server) deleteSlide(w http.ResponseWriter, r *http.Request) {
	id, ok := formID(w, r)
	if !ok {
		return
	}
	s.mutex.Lock()
	s.slides = model.Remove(s.slides, id)
	s.mutex.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) token(w http.ResponseWriter, r *http.Request) {
	var c map[string]string
	if !readJSON(w, r, &c) {
		return
	}
	user := c["email"]
	if user == "" {
		user = c["username"]
	}
	if user != Email || c["password"] != Password {
		writeJSON(w, http.StatusUnauthorized, map[string]string{
			"detail": "No active account found with the given credentials",
		})
		return
	}
	writeJSON(w, http.StatusOK, model.Tokens{Access: Access, Refresh: Refresh})
}

// Context returns a context which is cancelled by the t cleanup.
func Context(t *testing.T) context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}
