package adapters

import (
	"net/http"

	"github.com/Ash-L2L/l2l-openapi/pkg/openapi"
)

// ServeHTTP implements http.Handler
func (s *Spec) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, contentType, err := s.Body(r.URL.Query().Get(FormatParam))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// Handler returns an http.Handler serving doc
func Handler(doc openapi.Documented) http.Handler {
	return NewSpec(doc)
}
