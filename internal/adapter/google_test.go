package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/akarpushin/go-notes-api/internal/logger"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

// newTestAdapter wires the adapter against a local httptest server that
// plays both the token endpoint and the userinfo endpoint.
func newTestAdapter(t *testing.T, userinfoStatus int, userinfoBody string) (*googleAdapter, *httptest.Server) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if r.PostFormValue("code") != "good-code" {
			http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"token-123","token_type":"Bearer"}`))
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
			http.Error(w, "no token", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(userinfoStatus)
		_, _ = w.Write([]byte(userinfoBody))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	a := &googleAdapter{
		oauth: &oauth2.Config{
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			Endpoint: oauth2.Endpoint{
				AuthURL:  srv.URL + "/auth",
				TokenURL: srv.URL + "/token",
			},
			RedirectURL: "http://localhost:8080/api/auth/google/callback",
			Scopes:      []string{"email", "profile"},
		},
		client:      resty.New().SetTimeout(5 * time.Second),
		userInfoURL: srv.URL + "/userinfo",
		logger:      logger.NewLogger("test"),
	}
	return a, srv
}

func TestAuthCodeURL(t *testing.T) {
	a, _ := newTestAdapter(t, http.StatusOK, `{}`)

	u := a.AuthCodeURL("state-abc")

	assert.Contains(t, u, "state=state-abc")
	assert.Contains(t, u, "client_id=client-id")
	assert.Contains(t, u, "redirect_uri=")
}

func TestResolveProfile_Success(t *testing.T) {
	a, _ := newTestAdapter(t, http.StatusOK,
		`{"id":"google-sub-1","email":"jane@example.com","name":"Jane","picture":"https://pic"}`)

	profile, err := a.ResolveProfile(context.Background(), "good-code")
	require.NoError(t, err)

	assert.Equal(t, "google-sub-1", profile.ID)
	assert.Equal(t, "jane@example.com", profile.Email)
	assert.Equal(t, "Jane", profile.Name)
	assert.Equal(t, "https://pic", profile.Avatar)
}

func TestResolveProfile_BadCode(t *testing.T) {
	a, _ := newTestAdapter(t, http.StatusOK, `{}`)

	_, err := a.ResolveProfile(context.Background(), "expired-code")
	require.ErrorIs(t, err, ErrCodeExchangeFailed)
}

func TestResolveProfile_UserinfoRejected(t *testing.T) {
	a, _ := newTestAdapter(t, http.StatusForbidden, `{"error":"forbidden"}`)

	_, err := a.ResolveProfile(context.Background(), "good-code")
	require.ErrorIs(t, err, ErrProfileFetchFailed)
}

func TestResolveProfile_IncompleteProfile(t *testing.T) {
	a, _ := newTestAdapter(t, http.StatusOK, `{"name":"Jane"}`)

	_, err := a.ResolveProfile(context.Background(), "good-code")
	require.ErrorIs(t, err, ErrIncompleteProfile)
}
