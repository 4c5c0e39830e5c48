package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velour_backend/pkg/config"
	"velour_backend/pkg/storage"
)

// fakeBlobStore stands in for the platform's S3-compatible endpoint.
func fakeBlobStore(t *testing.T) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("ETag", `"test"`)
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, storage.Init(config.StorageConfig{
		Endpoint:  server.URL,
		AccessKey: "test",
		SecretKey: "test",
		Bucket:    "assets",
		PublicURL: "http://cdn.test/assets",
	}))

	return server
}

func pngBytes(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: 120, G: 20, B: 200, A: 255})
		}
	}

	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func multipartFile(t *testing.T, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="upload%s"`, ".bin"))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func newUploadApp() *fiber.App {
	app := fiber.New(fiber.Config{BodyLimit: 20 * 1024 * 1024})
	app.Post("/api/admin/upload-image", UploadImage)
	return app
}

func postUpload(t *testing.T, app *fiber.App, body *bytes.Buffer, contentType string) (*http.Response, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload-image", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(respBody, &parsed))

	return resp, parsed
}

func TestUploadImageMissingFile(t *testing.T) {
	app := newUploadApp()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload-image", strings.NewReader(""))
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadImageRejectsNonImage(t *testing.T) {
	app := newUploadApp()

	body, contentType := multipartFile(t, "text/plain", []byte("not an image"))
	resp, parsed := postUpload(t, app, body, contentType)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "File must be an image", parsed["error"])
}

func TestUploadImageRejectsOversizedFile(t *testing.T) {
	app := newUploadApp()

	body, contentType := multipartFile(t, "image/png", make([]byte, 6*1024*1024))
	resp, parsed := postUpload(t, app, body, contentType)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "File size must be less than 5MB", parsed["error"])
}

func TestUploadImageStoresUnderEventsPrefix(t *testing.T) {
	server := fakeBlobStore(t)
	defer server.Close()

	app := newUploadApp()

	body, contentType := multipartFile(t, "image/png", pngBytes(t))
	resp, parsed := postUpload(t, app, body, contentType)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, parsed["success"])

	path, _ := parsed["path"].(string)
	assert.True(t, strings.HasPrefix(path, "images/events/"), "path was %q", path)
	assert.True(t, strings.HasSuffix(path, ".png"))

	url, _ := parsed["url"].(string)
	assert.Equal(t, "http://cdn.test/assets/"+path, url)
}
