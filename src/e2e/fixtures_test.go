// Test fixtures replicating the AI service's root endpoint contract
package main

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

// newServiceRouter builds a router that answers like the real AI service
// root endpoint.
func newServiceRouter() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"message": expectedMessage})
	}).Methods("GET")
	return r
}

// newStubRouter answers the root path with an arbitrary status and body.
func newStubRouter(status int, body string) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}).Methods("GET")
	return r
}
