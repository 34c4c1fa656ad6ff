package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cagncvs/minimal-api/pkg/auth"
)

func init() { gin.SetMode(gin.TestMode) }

type fakeSessions map[string]bool

func (f fakeSessions) Active(_ context.Context, jti string) (bool, error) { return f[jti], nil }

func protected(iss *auth.Issuer, sessions SessionChecker, roles ...string) *gin.Engine {
	r := gin.New()
	r.GET("/p", JWTAuth(iss, sessions), RequireRole(roles...), func(c *gin.Context) {
		claims, ok := Claims(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, claims.Email)
	})
	return r
}

func do(r http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/p", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth(t *testing.T) {
	iss := auth.NewIssuer("secret", time.Hour)
	adm, _, _ := iss.CreateAccessToken("1", "Adm", "adm@teste.com")
	editor, _, _ := iss.CreateAccessToken("2", "Editor", "ed@teste.com")
	r := protected(iss, nil, "Adm")

	cases := []struct {
		name  string
		token string
		want  int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"garbage", "abc.def.ghi", http.StatusUnauthorized},
		{"wrong role", editor, http.StatusForbidden},
		{"allowed", adm, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if w := do(r, tc.token); w.Code != tc.want {
				t.Fatalf("expected %d, got %d (%s)", tc.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestJWTAuth_RevokedSession(t *testing.T) {
	iss := auth.NewIssuer("secret", time.Hour)
	live, liveClaims, _ := iss.CreateAccessToken("1", "Adm", "adm@teste.com")
	dead, _, _ := iss.CreateAccessToken("1", "Adm", "adm@teste.com")
	r := protected(iss, fakeSessions{liveClaims.ID: true}, "Adm")

	if w := do(r, live); w.Code != http.StatusOK {
		t.Fatalf("expected 200 for registered session, got %d", w.Code)
	}
	if w := do(r, dead); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unregistered session, got %d", w.Code)
	}
}

func TestRateLimit_PerIP(t *testing.T) {
	lim := NewIPLimiter(0.01, 1)
	r := gin.New()
	r.POST("/login", RateLimit(lim), func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	if w := send("10.0.0.1"); w.Code != http.StatusOK {
		t.Fatalf("first request should pass, got %d", w.Code)
	}
	w := send("10.0.0.1")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request should be throttled, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") != "100" {
		t.Fatalf("expected Retry-After 100, got %q", w.Header().Get("Retry-After"))
	}
	if w := send("10.0.0.2"); w.Code != http.StatusOK {
		t.Fatalf("other IPs have their own bucket, got %d", w.Code)
	}
}

func TestIPLimiter_EvictsIdle(t *testing.T) {
	lim := NewIPLimiter(1, 1)
	now := time.Unix(1_700_000_000, 0)
	lim.now = func() time.Time { return now }

	lim.get("a")
	lim.get("b")
	if lim.size() != 2 {
		t.Fatalf("expected 2 entries, got %d", lim.size())
	}

	now = now.Add(time.Hour)
	lim.get("c")
	if lim.size() != 1 {
		t.Fatalf("expected idle entries to be evicted, got %d", lim.size())
	}
}
