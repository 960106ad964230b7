package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// PanicHandler writes the error response after a recovered panic
type PanicHandler func(w http.ResponseWriter, r *http.Request, err any)

// Recovery creates panic recovery middleware. The panic is logged with
// its stack and handler writes the response.
func Recovery(logger *slog.Logger, handler PanicHandler) func(http.Handler) http.Handler {
	if handler == nil {
		handler = DefaultPanicHandler
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}
					logger.Error("panic recovered",
						slog.Any("error", err),
						slog.String("stack", string(debug.Stack())),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.String("request_id", w.Header().Get(RequestIDHeader)),
					)
					handler(w, r, err)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// DefaultPanicHandler returns a plain 500 Internal Server Error
func DefaultPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
