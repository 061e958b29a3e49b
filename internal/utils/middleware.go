package utils

import (
	"fmt"
	"net/http"
	"time"

	"ms-booking/internal/logger"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// RequestLogger records method, path, status and duration for every request.
func RequestLogger(l *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			l.LogAPI(r.Method, r.URL.Path, fmt.Sprintf("%d", rec.status), time.Since(start).String())
		})
	}
}

// Recover converts handler panics into a structured 500 response.
func Recover(l *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					l.Error("API", fmt.Sprintf("panic handling %s %s: %v", r.Method, r.URL.Path, rec))
					Error(w, http.StatusInternalServerError, "unexpected failure")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
