package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krypteia/krypteia-go/internal/server"
)

func newTestRouter() http.Handler {
	return server.NewRouter(server.NewHandler(nil))
}

func postTransform(t *testing.T, router http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeTransform(t *testing.T, rec *httptest.ResponseRecorder) server.TransformResponse {
	t.Helper()
	var resp server.TransformResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestVigenereEncryptEndpoint(t *testing.T) {
	router := newTestRouter()

	rec := postTransform(t, router, "/v1/ciphers/vigenere/encrypt", map[string]any{
		"text": "ATTACKATDAWN",
		"key":  "LEMON",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeTransform(t, rec)
	assert.Equal(t, "vigenere", resp.Cipher)
	assert.Equal(t, "encrypt", resp.Mode)
	assert.Equal(t, "LXFOPVEFRNHR", resp.Result)
}

func TestAdditiveRoundTripOverHTTP(t *testing.T) {
	router := newTestRouter()

	enc := postTransform(t, router, "/v1/ciphers/additive/encrypt", map[string]any{
		"text":  "Attack at dawn!",
		"shift": 3,
	})
	require.Equal(t, http.StatusOK, enc.Code)

	dec := postTransform(t, router, "/v1/ciphers/additive/decrypt", map[string]any{
		"text":  decodeTransform(t, enc).Result,
		"shift": 3,
	})
	require.Equal(t, http.StatusOK, dec.Code)
	assert.Equal(t, "Attack at dawn!", decodeTransform(t, dec).Result)
}

func TestMultiplicativeDecryptReportsNonInvertibleKey(t *testing.T) {
	router := newTestRouter()

	rec := postTransform(t, router, "/v1/ciphers/multiplicative/decrypt", map[string]any{
		"text":  "HELLO",
		"shift": 4,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "KEY_NOT_INVERTIBLE", errResp.Code)
}

func TestMonoalphabeticRejectsMalformedKey(t *testing.T) {
	router := newTestRouter()

	rec := postTransform(t, router, "/v1/ciphers/monoalphabetic/encrypt", map[string]any{
		"text": "HELLO",
		"key":  "ABC",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "MALFORMED_KEY", errResp.Code)
}

func TestUnknownCipherReturns404(t *testing.T) {
	router := newTestRouter()

	rec := postTransform(t, router, "/v1/ciphers/enigma/encrypt", map[string]any{
		"text": "HELLO",
		"key":  "K",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)

	var errResp struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "UNKNOWN_CIPHER", errResp.Code)
}

func TestMissingNumericFieldIsRejected(t *testing.T) {
	router := newTestRouter()

	rec := postTransform(t, router, "/v1/ciphers/affine/encrypt", map[string]any{
		"text": "HELLO",
		"a":    5,
		// b missing
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "INVALID_REQUEST", errResp.Code)
}

func TestInvalidJSONBody(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/v1/ciphers/vigenere/encrypt", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRailFenceDefaultDepth(t *testing.T) {
	router := newTestRouter()

	// Depth omitted defaults to 3.
	rec := postTransform(t, router, "/v1/ciphers/railfence/encrypt", map[string]any{
		"text": "WEAREDISCOVERED",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "WECRERDSOEEAIVD", decodeTransform(t, rec).Result)
}

func TestDoubleColumnarOverHTTP(t *testing.T) {
	router := newTestRouter()

	enc := postTransform(t, router, "/v1/ciphers/double/encrypt", map[string]any{
		"text": "WEAREDISCOVERED",
		"key":  "ZEBRAS",
		"key2": "LEMON",
	})
	require.Equal(t, http.StatusOK, enc.Code)

	dec := postTransform(t, router, "/v1/ciphers/double/decrypt", map[string]any{
		"text": decodeTransform(t, enc).Result,
		"key":  "ZEBRAS",
		"key2": "LEMON",
	})
	require.Equal(t, http.StatusOK, dec.Code)
	assert.Equal(t, "WEAREDISCOVERED", decodeTransform(t, dec).Result)
}

func TestListCiphers(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/ciphers", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp server.CipherListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Ciphers, 11)
	assert.Contains(t, resp.Ciphers, "playfair")
}

func TestHealthz(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
