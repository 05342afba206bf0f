package api

import (
	"bytes"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"slices"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v4/request"

	"github.com/samandr77/microservices/vstpayment/pkg/logger"
)

var skipLogging = map[string]struct{}{
	"/health": {},
}

var redactedHeaders = map[string]struct{}{
	"Authorization": {},
	"Cookie":        {},
	"X-Api-Key":     {},
}

type Middleware struct {
	apiKeyEnabled bool
	apiKey        string
	gatewayWL     []string
}

func NewMiddleware(apiKeyEnabled bool, apiKey string, gatewayWL []string) *Middleware {
	return &Middleware{
		apiKeyEnabled: apiKeyEnabled,
		apiKey:        apiKey,
		gatewayWL:     gatewayWL,
	}
}

func (m *Middleware) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.Must(uuid.NewV4()).String()
		}

		ctx = logger.WithRequestID(ctx, requestID)
		w.Header().Set("X-Request-Id", requestID)

		_, skip := skipLogging[r.URL.Path]
		if !skip && !strings.HasPrefix(r.URL.Path, "/swagger/") {
			reqBody, err := io.ReadAll(r.Body)
			if err != nil {
				SendJSONErr(ctx, w, http.StatusBadRequest, err, CodeInvalidBody, "cannot read body")
				return
			}

			r.Body.Close()
			r.Body = io.NopCloser(bytes.NewBuffer(reqBody))

			var headers strings.Builder

			for k, v := range r.Header {
				if _, ok := redactedHeaders[k]; ok {
					continue
				}

				headers.WriteString(fmt.Sprintf("%s: %s,\n", k, v))
			}

			slog.InfoContext(ctx, "incoming request",
				"request", fmt.Sprintf("%s %s\n%s", r.Method, r.URL.Redacted(), reqBody),
				"headers", headers.String(),
				"remote_addr", r.RemoteAddr,
			)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			rec := recover()
			if rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				slog.ErrorContext(ctx, "recovered from panic", "error", rec, "stack", string(debug.Stack()))
				SendJSONErr(ctx, w, http.StatusInternalServerError, nil, CodeInternal, "internal server error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// APIKeyAuth verifies incoming API key. The key is accepted from X-Api-Key or as a bearer token.
func (m *Middleware) APIKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if !m.apiKeyEnabled {
			next.ServeHTTP(w, r)
			return
		}

		apiKey := r.Header.Get("X-Api-Key")
		if apiKey == "" {
			token, err := request.BearerExtractor{}.ExtractToken(r)
			if err != nil {
				SendJSONErr(ctx, w, http.StatusUnauthorized, errors.New("no api key"), CodeUnauthorized, "api key is required")
				return
			}

			apiKey = token
		}

		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(m.apiKey)) != 1 {
			SendJSONErr(ctx, w, http.StatusUnauthorized, errors.New("wrong api key"), CodeUnauthorized, "invalid api key")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GatewayIPWL verifies incoming request IP against the gateway whitelist. An empty whitelist allows everyone.
func (m *Middleware) GatewayIPWL(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if len(m.gatewayWL) != 0 {
			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				SendJSONErr(ctx, w, http.StatusForbidden, err, CodeForbidden, "ip check failed")
				return
			}

			if !slices.Contains(m.gatewayWL, host) {
				SendJSONErr(ctx, w, http.StatusForbidden, fmt.Errorf("ip %s is not allowed", host), CodeForbidden, "ip is not allowed")
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
