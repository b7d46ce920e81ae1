package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwtutil "pageforge/app/jwt"
	"pageforge/app/session"
	"pageforge/global"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func init() {
	global.Logger = zerolog.Nop()
}

func TestRecoverConvertsPanicToRedacted500(t *testing.T) {
	h := Recover(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("secret detail that must not leak")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
	require.NotContains(t, rec.Body.String(), "secret detail")
}

func TestRequireSession(t *testing.T) {
	signer := &jwtutil.Signer{Secret: []byte("s"), Issuer: "pageforge", Validity: time.Hour}
	auth := &Auth{Signer: signer}

	var gotSubject string
	h := auth.RequireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSubject = GetClaims(r.Context()).Subject
	}))

	// no cookie
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// tampered token
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: session.CookieName, Value: "tampered"})
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// valid token reaches the handler with claims in context
	token, err := signer.Sign("user-9", "alice")
	require.NoError(t, err)
	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "user-9", gotSubject)
}

func TestRateLimitDisabledWithoutRedis(t *testing.T) {
	rl := &RateLimit{}
	called := 0
	h := rl.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called++ }))

	for i := 0; i < 50; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
	require.Equal(t, 50, called)
}

func newRateLimiter(t *testing.T, limit int, window time.Duration) (*RateLimit, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return &RateLimit{Client: client, Limit: limit, Window: window}, mr
}

func TestRateLimitCeiling(t *testing.T) {
	rl, _ := newRateLimiter(t, 3, time.Minute)
	called := 0
	h := rl.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called++ }))

	// requests within the ceiling pass
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
	require.Equal(t, 3, called)

	// everything past the ceiling is throttled without reaching the handler
	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", nil))
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.JSONEq(t, `{"error":"too many requests"}`, rec.Body.String())
	}
	require.Equal(t, 3, called)
}

func TestRateLimitWindowResets(t *testing.T) {
	rl, mr := newRateLimiter(t, 1, time.Minute)
	h := rl.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", nil))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	mr.FastForward(time.Minute + time.Second)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", nil))
	require.Equal(t, http.StatusOK, rec.Code, "counter expires with the window")
}

func TestRateLimitScopedPerPath(t *testing.T) {
	rl, _ := newRateLimiter(t, 1, time.Minute)
	h := rl.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", nil))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	// a different endpoint from the same IP has its own window
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/register", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitFailsOpenOnRedisOutage(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1", // nothing listens here
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	rl := &RateLimit{Client: client, Limit: 1, Window: time.Minute}

	called := 0
	h := rl.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called++ }))

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
	require.Equal(t, 3, called, "an unreachable limiter must not block logins")
}
