package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pawlig/pawlig/internal/auth"
	"github.com/pawlig/pawlig/internal/obs"
)

type ctxKey int

const (
	ctxKeyRequestID ctxKey = iota
	ctxKeySession
)

func RequestIDFromContext(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyRequestID).(string)
	return v
}

// SessionFromContext returns the verified session, or nil for
// anonymous requests.
func SessionFromContext(ctx context.Context) *auth.Session {
	v, _ := ctx.Value(ctxKeySession).(*auth.Session)
	return v
}

type statusRecorder struct {
	h  http.ResponseWriter
	st int
	n  int
}

func (w *statusRecorder) Header() http.Header { return w.h.Header() }
func (w *statusRecorder) WriteHeader(code int) {
	w.st = code
	w.h.WriteHeader(code)
}
func (w *statusRecorder) Write(b []byte) (int, error) {
	n, err := w.h.Write(b)
	w.n += n
	return n, err
}

func WithRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-Id")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", reqID)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKeyRequestID, reqID)))
	})
}

func WithLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sr := &statusRecorder{h: w, st: 200}
		next.ServeHTTP(sr, r)
		lat := time.Since(start)
		obs.Logger.Info("http_request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sr.st,
			"bytes", sr.n,
			"latency_ms", float64(lat.Microseconds())/1000.0,
			"request_id", RequestIDFromContext(r.Context()),
		)
	})
}

// SessionCookie is the cookie carrying the session token when no
// Authorization header is present.
const SessionCookie = "pawlig_session"

// WithSession decodes the session token from the Authorization header
// or the session cookie and stores it in the request context. Invalid
// tokens leave the request anonymous; the guard then redirects to
// login rather than this layer rejecting outright.
func WithSession(codec *auth.Codec, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ""
		if h := r.Header.Get("Authorization"); len(h) > 7 && h[:7] == "Bearer " {
			token = h[7:]
		} else if c, err := r.Cookie(SessionCookie); err == nil {
			token = c.Value
		}
		if token != "" {
			if s, err := codec.Decode(token); err == nil {
				r = r.WithContext(context.WithValue(r.Context(), ctxKeySession, s))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// Protect is the request-interception enforcement layer: it evaluates
// the same guard decision the handlers use and short-circuits
// refusals. Handlers still call the guard for per-method and
// per-resource requirements, so both layers always agree.
func Protect(req auth.Requirement, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := Require(w, r, req); !ok {
			return
		}
		next(w, r)
	}
}

// Require evaluates the guard for the request and writes the refusal
// response when access is denied. The callback path for login
// redirects is the originally requested path.
func Require(w http.ResponseWriter, r *http.Request, req auth.Requirement) (*auth.Session, bool) {
	sess := SessionFromContext(r.Context())
	d := auth.Decide(sess, r.URL.Path, req)
	switch d.Outcome {
	case auth.Allow:
		return sess, true
	case auth.RedirectLogin:
		WriteJSONError(w, http.StatusUnauthorized, "login_required", d.Callback)
	default:
		WriteJSONError(w, http.StatusForbidden, "unauthorized", d.Reason)
	}
	return nil, false
}
