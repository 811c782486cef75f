package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstImageURL(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "red dress", r.URL.Query().Get("q"))
		w.Write([]byte(`<html><body>
			<div><img src="https://img.example/red.jpg"><img src="https://img.example/second.jpg"></div>
		</body></html>`))
	}))
	defer ts.Close()

	s := NewScraper(ts.URL, 5*time.Second)
	url, err := s.FirstImageURL(context.Background(), "red dress")
	require.NoError(t, err)
	assert.Equal(t, "https://img.example/red.jpg", url)
}

func TestFirstImageURLNoImages(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><p>nothing here</p></body></html>`))
	}))
	defer ts.Close()

	s := NewScraper(ts.URL, 5*time.Second)
	_, err := s.FirstImageURL(context.Background(), "red dress")
	assert.Error(t, err)
}

func TestFirstImageURLBadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	s := NewScraper(ts.URL, 5*time.Second)
	_, err := s.FirstImageURL(context.Background(), "red dress")
	assert.Error(t, err)
}
