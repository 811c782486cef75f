package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"outfit_advisor/internal/api"
	"outfit_advisor/internal/app/service"
	"outfit_advisor/internal/common/security"
	"outfit_advisor/internal/domain/repository"
	"outfit_advisor/internal/platform/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDescriptions struct{}

func (stubDescriptions) GenerateDescription(ctx context.Context, dressType string) (string, error) {
	return "A flowing red dress.", nil
}

type stubImages struct{}

func (stubImages) FirstImageURL(ctx context.Context, query string) (string, error) {
	return "https://img.example/red.jpg", nil
}

type stubServedCache struct{}

func (stubServedCache) MarkServed(ctx context.Context, key, imageURL string, ttl time.Duration) (bool, error) {
	return false, nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := &config.Config{
		SessionSecret: []byte("test-secret"),
		SessionExp:    time.Hour,
	}
	tokens := security.NewTokenManager(cfg)
	authService := service.NewAuthService(repository.NewMemoryUserRepository(), tokens)
	recommendationService := service.NewRecommendationService(
		stubDescriptions{}, stubImages{}, stubServedCache{},
		"https://via.placeholder.com/150", time.Minute, 3,
	)

	ts := httptest.NewServer(api.NewRouter(authService, recommendationService, tokens))
	t.Cleanup(ts.Close)
	return ts
}

// noRedirectClient stops at the first response so redirects can be asserted.
func noRedirectClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func postForm(t *testing.T, client *http.Client, target string, form url.Values, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := client.Do(req)
	require.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestRegisterLoginRecommendFlow(t *testing.T) {
	ts := newTestServer(t)
	client := noRedirectClient()
	creds := url.Values{"username": {"alice"}, "password": {"S3cret!"}}

	// Register redirects to the login page; no session cookie is set.
	resp := postForm(t, client, ts.URL+"/register", creds)
	readBody(t, resp)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
	assert.Empty(t, resp.Cookies(), "registration must not create a session")

	// Login sets the session cookie and redirects home.
	resp = postForm(t, client, ts.URL+"/login", creds)
	readBody(t, resp)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	var session *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "jwt" {
			session = c
		}
	}
	require.NotNil(t, session, "login must set the jwt cookie")
	require.NotEmpty(t, session.Value)

	// The recommendation endpoint works with the session cookie.
	form := url.Values{
		"color":      {"red"},
		"top_bottom": {"dress"},
		"occasion":   {"wedding"},
	}
	resp = postForm(t, client, ts.URL+"/recommend", form, session)
	body := readBody(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "A flowing red dress.")
	assert.Contains(t, body, "https://img.example/red.jpg")
	assert.Contains(t, body, "Necklace")
}

func TestRegisterDuplicateRendersGenericError(t *testing.T) {
	ts := newTestServer(t)
	client := noRedirectClient()
	creds := url.Values{"username": {"alice"}, "password": {"S3cret!"}}

	resp := postForm(t, client, ts.URL+"/register", creds)
	readBody(t, resp)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	resp = postForm(t, client, ts.URL+"/register", url.Values{"username": {"alice"}, "password": {"other"}})
	body := readBody(t, resp)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, body, "username already taken")
}

func TestRegisterEmptyInput(t *testing.T) {
	ts := newTestServer(t)
	client := noRedirectClient()

	resp := postForm(t, client, ts.URL+"/register", url.Values{"username": {""}, "password": {""}})
	body := readBody(t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "username and password are required")
}

func TestLoginFailuresShareOneMessage(t *testing.T) {
	ts := newTestServer(t)
	client := noRedirectClient()

	resp := postForm(t, client, ts.URL+"/register", url.Values{"username": {"alice"}, "password": {"S3cret!"}})
	readBody(t, resp)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	// Wrong password and unknown username produce identical responses.
	resp = postForm(t, client, ts.URL+"/login", url.Values{"username": {"alice"}, "password": {"wrong"}})
	wrongPassBody := readBody(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = postForm(t, client, ts.URL+"/login", url.Values{"username": {"bob"}, "password": {"anything"}})
	unknownUserBody := readBody(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	assert.Equal(t, wrongPassBody, unknownUserBody)
	assert.Contains(t, wrongPassBody, "invalid credentials")
}

func TestRecommendRequiresSession(t *testing.T) {
	ts := newTestServer(t)
	client := noRedirectClient()
	form := url.Values{"color": {"red"}, "top_bottom": {"dress"}}

	// Browsers get bounced to the login page.
	resp := postForm(t, client, ts.URL+"/recommend", form)
	readBody(t, resp)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	// API clients get a JSON 401.
	req, err := http.NewRequest(http.MethodPost, ts.URL+"/recommend", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	resp, err = client.Do(req)
	require.NoError(t, err)
	body := readBody(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, body, "authentication required")
}

func TestRecommendJSONResponse(t *testing.T) {
	ts := newTestServer(t)
	client := noRedirectClient()
	creds := url.Values{"username": {"alice"}, "password": {"S3cret!"}}

	resp := postForm(t, client, ts.URL+"/register", creds)
	readBody(t, resp)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	resp = postForm(t, client, ts.URL+"/login", creds)
	readBody(t, resp)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	var session *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "jwt" {
			session = c
		}
	}
	require.NotNil(t, session)

	form := url.Values{"color": {"red"}, "top_bottom": {"jeans"}}
	req, err := http.NewRequest(http.MethodPost, ts.URL+"/recommend", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.AddCookie(session)
	resp, err = client.Do(req)
	require.NoError(t, err)
	body := readBody(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"image_url"`)
	assert.Contains(t, body, "Leather Belt")
}
