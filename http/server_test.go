package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkondo/wikitoc"
	wikihttp "github.com/tkondo/wikitoc/http"
	"github.com/tkondo/wikitoc/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestServer_TOC(t *testing.T) {
	t.Parallel()

	t.Run("success response carries the compliance disclosure", func(t *testing.T) {
		t.Parallel()

		scraper := &mock.Scraper{
			ScrapeFn: func(_ context.Context, url string) *wikitoc.ScrapeResult {
				return wikitoc.NewSuccessResult(url, "Amazon Web Services", []wikitoc.TocEntry{
					{Level: 2, Title: "概要", Anchor: "概要", Href: "#概要"},
				})
			},
		}
		server := httptest.NewServer(wikihttp.NewServer(scraper, discardLogger()))
		defer server.Close()

		resp, err := http.Get(server.URL + "/toc?url=https://ja.wikipedia.org/wiki/Amazon_Web_Services")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json; charset=utf-8", resp.Header.Get("Content-Type"))
		assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

		body := decodeBody(t, resp)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Amazon Web Services", body["title"])
		assert.Equal(t, float64(1), body["total_items"])
		assert.Equal(t, wikitoc.RobotsCompliance, body["robots_compliance"])
		assert.Equal(t, wikitoc.UserAgent, body["user_agent"])
		require.Len(t, body["toc"], 1)
	})

	t.Run("missing url parameter is a 400 without entering the pipeline", func(t *testing.T) {
		t.Parallel()

		called := false
		scraper := &mock.Scraper{
			ScrapeFn: func(_ context.Context, url string) *wikitoc.ScrapeResult {
				called = true
				return wikitoc.NewSuccessResult(url, "", nil)
			},
		}
		server := httptest.NewServer(wikihttp.NewServer(scraper, discardLogger()))
		defer server.Close()

		resp, err := http.Get(server.URL + "/toc")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.False(t, called, "missing url must never enter the pipeline")

		body := decodeBody(t, resp)
		assert.Equal(t, false, body["success"])
		errObj, ok := body["error"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, string(wikitoc.CategoryInputFailure), errObj["category"])
	})

	t.Run("policy rejection is a 403", func(t *testing.T) {
		t.Parallel()

		scraper := &mock.Scraper{
			ScrapeFn: func(_ context.Context, url string) *wikitoc.ScrapeResult {
				return wikitoc.NewRejectedResult(url, wikitoc.DefaultPolicy().Validate(url))
			},
		}
		server := httptest.NewServer(wikihttp.NewServer(scraper, discardLogger()))
		defer server.Close()

		resp, err := http.Get(server.URL + "/toc?url=" + "https://ja.wikipedia.org/wiki/%E7%89%B9%E5%88%A5:%E7%AE%A1%E7%90%86%E8%80%85")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		body := decodeBody(t, resp)
		errObj, ok := body["error"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, string(wikitoc.CategorySpecialPage), errObj["category"])
	})

	t.Run("failure statuses map by category", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name   string
			code   string
			status int
		}{
			{"timeout", wikitoc.ETIMEOUT, http.StatusGatewayTimeout},
			{"connection failed", wikitoc.EUNAVAILABLE, http.StatusBadGateway},
			{"upstream error", wikitoc.EUPSTREAM, http.StatusBadGateway},
			{"extraction failure", wikitoc.EINVALID, http.StatusInternalServerError},
		}

		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				scraper := &mock.Scraper{
					ScrapeFn: func(_ context.Context, url string) *wikitoc.ScrapeResult {
						return wikitoc.NewErrorResult(url, wikitoc.Errorf(tt.code, "failed"))
					},
				}
				server := httptest.NewServer(wikihttp.NewServer(scraper, discardLogger()))
				defer server.Close()

				resp, err := http.Get(server.URL + "/toc?url=https://en.wikipedia.org/wiki/Go")
				require.NoError(t, err)
				defer resp.Body.Close()

				assert.Equal(t, tt.status, resp.StatusCode)

				body := decodeBody(t, resp)
				assert.Equal(t, false, body["success"])
				assert.NotContains(t, body, "robots_compliance")
			})
		}
	})

	t.Run("non-GET is a 405", func(t *testing.T) {
		t.Parallel()

		scraper := &mock.Scraper{}
		server := httptest.NewServer(wikihttp.NewServer(scraper, discardLogger()))
		defer server.Close()

		resp, err := http.Post(server.URL+"/toc", "application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		assert.Equal(t, http.MethodGet, resp.Header.Get("Allow"))
	})

	t.Run("health endpoint responds ok", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(wikihttp.NewServer(&mock.Scraper{}, discardLogger()))
		defer server.Close()

		resp, err := http.Get(server.URL + "/health")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "ok", body["status"])
	})
}
