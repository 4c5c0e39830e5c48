package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNewsApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/news/webhook", NewsWebhook)
	return app
}

func postNews(t *testing.T, app *fiber.App, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	jsonBody, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/news/webhook", bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(respBody, &parsed))

	return resp, parsed
}

func TestNewsWebhookRequiresEnglishObject(t *testing.T) {
	app := newNewsApp()

	resp, body := postNews(t, app, map[string]interface{}{"title": "orphan"})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid payload: missing 'english' object", body["error"])
}

func TestNewsWebhookRequiresTitleAndContent(t *testing.T) {
	app := newNewsApp()

	resp, body := postNews(t, app, map[string]interface{}{
		"english": map[string]interface{}{"title": "No content here"},
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Missing required fields: title or content", body["error"])
}

func TestNewsWebhookRejectsNonImageURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html>not an image</html>"))
	}))
	defer server.Close()

	app := newNewsApp()

	resp, body := postNews(t, app, map[string]interface{}{
		"english": map[string]interface{}{
			"title":   "Rooftop Sessions Return",
			"content": "<p>Live music every Sunday.</p>",
			"image":   server.URL + "/poster",
		},
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errMsg, _ := body["error"].(string)
	assert.True(t, strings.HasPrefix(errMsg, "Image processing failed:"), "error was %q", errMsg)
}

func TestNewsWebhookRejectsUnreachableImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	app := newNewsApp()

	resp, _ := postNews(t, app, map[string]interface{}{
		"english": map[string]interface{}{
			"title":   "Rooftop Sessions Return",
			"content": "<p>Live music every Sunday.</p>",
			"image":   server.URL + "/poster.jpg",
		},
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestIngestNewsImageStoresUnderNewsPrefix(t *testing.T) {
	blobStore := fakeBlobStore(t)
	defer blobStore.Close()

	imageServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(pngBytes(t))
	}))
	defer imageServer.Close()

	url, err := ingestNewsImage(imageServer.URL + "/poster.png")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "http://cdn.test/assets/images/news/"), "url was %q", url)
	assert.True(t, strings.HasSuffix(url, ".png"))
}

func TestIngestNewsImageRejectsOversizedBody(t *testing.T) {
	imageServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(make([]byte, MaxNewsImageSize+1))
	}))
	defer imageServer.Close()

	_, err := ingestNewsImage(imageServer.URL + "/huge.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "10MB")
}
