package server

import (
	"bytes"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/achmichael/next-porto/internal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	conf := config.Default()
	conf.Seed = 5
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	New(conf).ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	w := get(t, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestOptions(t *testing.T) {
	w := get(t, "/api/options")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Variants  []string `json:"variants"`
		Colors    []string `json:"colors"`
		Densities []string `json:"densities"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"dots", "circles", "grid", "waves"}, body.Variants)
	assert.Equal(t, []string{"teal", "blue", "purple", "orange"}, body.Colors)
	assert.Equal(t, []string{"low", "medium", "high"}, body.Densities)
}

func TestScene(t *testing.T) {
	w := get(t, "/api/scene")
	require.Equal(t, http.StatusOK, w.Code)

	var body config.Config
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Sections, 5)
	assert.Equal(t, "home", body.Sections[0].Name)
	assert.NotContains(t, w.Body.String(), "8080")
}

func TestBackdropPNG(t *testing.T) {
	w := get(t, "/backdrop/dots?color=purple&density=high&width=120&height=90&frames=3")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))

	img, err := png.Decode(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 120, img.Bounds().Dx())
	assert.Equal(t, 90, img.Bounds().Dy())
}

func TestBackdropClampsSize(t *testing.T) {
	w := get(t, "/backdrop/grid?width=99999&height=-4&frames=0")
	require.Equal(t, http.StatusOK, w.Code)
	img, err := png.Decode(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, config.MaxSurfaceSize, img.Bounds().Dx())
	assert.Equal(t, 1, img.Bounds().Dy())
}

func TestBackdropUnknownVariantRendersFallback(t *testing.T) {
	w := get(t, "/backdrop/sparkles?width=40&height=40&frames=1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
}

func TestBackdropBadParameters(t *testing.T) {
	for _, q := range []string{"width=wide", "height=1.5", "frames=many", "seed=abc"} {
		w := get(t, "/backdrop/waves?"+q)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
		assert.Contains(t, w.Body.String(), "not an integer", q)
	}
}
