// Package server exposes the cipher transforms over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/krypteia/krypteia-go/pkg/classical"
	"github.com/krypteia/krypteia-go/pkg/classical/logging"
	"github.com/krypteia/krypteia-go/pkg/classical/playfair"
	"github.com/krypteia/krypteia-go/pkg/classical/polyalphabetic"
	"github.com/krypteia/krypteia-go/pkg/classical/substitution"
	"github.com/krypteia/krypteia-go/pkg/classical/transposition"
	"github.com/krypteia/krypteia-go/pkg/httputil"
)

// Ciphers lists the cipher names accepted in the URL, menu order.
var Ciphers = []string{
	"additive",
	"multiplicative",
	"affine",
	"monoalphabetic",
	"autokey",
	"vigenere",
	"playfair",
	"railfence",
	"columnar",
	"combination",
	"double",
}

// TransformRequest is the wire format for encrypt/decrypt requests. Only
// the fields relevant to the addressed cipher are read.
type TransformRequest struct {
	Text  string `json:"text"`
	Key   string `json:"key,omitempty"`
	Key2  string `json:"key2,omitempty"`
	Shift *int   `json:"shift,omitempty"`
	A     *int   `json:"a,omitempty"`
	B     *int   `json:"b,omitempty"`
	Depth *int   `json:"depth,omitempty"`
}

// TransformResponse is the wire format for successful transforms.
type TransformResponse struct {
	Cipher string `json:"cipher"`
	Mode   string `json:"mode"`
	Result string `json:"result"`
}

// CipherListResponse is the wire format for the cipher listing.
type CipherListResponse struct {
	Ciphers []string `json:"ciphers"`
}

var (
	errUnknownCipher = errors.New("unknown cipher")
	errMissingField  = errors.New("missing request field")
)

// Handler serves the transform endpoints.
type Handler struct {
	log logging.Logger
}

// NewHandler returns a Handler logging through the given Logger. A nil
// logger binds to the default.
func NewHandler(log logging.Logger) *Handler {
	if log == nil {
		log = logging.New(nil)
	}
	return &Handler{log: log}
}

// ListCiphers returns the supported cipher names.
func (h *Handler) ListCiphers(w http.ResponseWriter, r *http.Request) {
	httputil.JSON(w, http.StatusOK, CipherListResponse{Ciphers: Ciphers})
}

// Encrypt handles POST /v1/ciphers/{cipher}/encrypt.
func (h *Handler) Encrypt(w http.ResponseWriter, r *http.Request) {
	h.transform(w, r, "encrypt")
}

// Decrypt handles POST /v1/ciphers/{cipher}/decrypt.
func (h *Handler) Decrypt(w http.ResponseWriter, r *http.Request) {
	h.transform(w, r, "decrypt")
}

func (h *Handler) transform(w http.ResponseWriter, r *http.Request, mode string) {
	ctx := r.Context()
	cipher := chi.URLParam(r, "cipher")

	var req TransformRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "request body is not valid JSON")
		return
	}

	result, err := dispatch(cipher, mode, &req)
	if err != nil {
		h.log.Warn(ctx, "transform rejected",
			"cipher", cipher, "mode", mode, "reason", err.Error(), logging.CipherKey(req.Key))
		switch {
		case errors.Is(err, errUnknownCipher):
			httputil.Error(w, http.StatusNotFound, "UNKNOWN_CIPHER", "unknown cipher: "+cipher)
		case errors.Is(err, errMissingField):
			httputil.Error(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		case errors.Is(err, classical.ErrKeyNotInvertible):
			httputil.Error(w, http.StatusBadRequest, "KEY_NOT_INVERTIBLE", "key has no inverse mod 26")
		case errors.Is(err, classical.ErrMalformedKey):
			httputil.Error(w, http.StatusBadRequest, "MALFORMED_KEY", "key fails validation for this cipher")
		default:
			httputil.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return
	}

	h.log.Info(ctx, "transform served",
		"cipher", cipher, "mode", mode, "text_len", len(req.Text), logging.CipherKey(req.Key))
	httputil.JSON(w, http.StatusOK, TransformResponse{
		Cipher: cipher,
		Mode:   mode,
		Result: result,
	})
}

// dispatch invokes exactly one core transform for the named cipher and mode.
// It owns no cipher logic of its own.
func dispatch(cipher, mode string, req *TransformRequest) (string, error) {
	encrypt := mode == "encrypt"

	switch cipher {
	case "additive":
		if req.Shift == nil {
			return "", fmt.Errorf("%w: additive cipher requires \"shift\"", errMissingField)
		}
		if encrypt {
			return substitution.AdditiveEncrypt(req.Text, *req.Shift), nil
		}
		return substitution.AdditiveDecrypt(req.Text, *req.Shift), nil

	case "multiplicative":
		if req.Shift == nil {
			return "", fmt.Errorf("%w: multiplicative cipher requires \"shift\"", errMissingField)
		}
		if encrypt {
			return substitution.MultiplicativeEncrypt(req.Text, *req.Shift), nil
		}
		return substitution.MultiplicativeDecrypt(req.Text, *req.Shift)

	case "affine":
		if req.A == nil || req.B == nil {
			return "", fmt.Errorf("%w: affine cipher requires \"a\" and \"b\"", errMissingField)
		}
		if encrypt {
			return substitution.AffineEncrypt(req.Text, *req.A, *req.B), nil
		}
		return substitution.AffineDecrypt(req.Text, *req.A, *req.B)

	case "monoalphabetic":
		if encrypt {
			return substitution.MonoalphabeticEncrypt(req.Text, req.Key)
		}
		return substitution.MonoalphabeticDecrypt(req.Text, req.Key)

	case "autokey":
		if encrypt {
			return polyalphabetic.AutokeyEncrypt(req.Text, req.Key), nil
		}
		return polyalphabetic.AutokeyDecrypt(req.Text, req.Key), nil

	case "vigenere":
		if encrypt {
			return polyalphabetic.VigenereEncrypt(req.Text, req.Key), nil
		}
		return polyalphabetic.VigenereDecrypt(req.Text, req.Key), nil

	case "playfair":
		if encrypt {
			return playfair.Encrypt(req.Text, req.Key), nil
		}
		return playfair.Decrypt(req.Text, req.Key), nil

	case "railfence":
		depth := 3
		if req.Depth != nil {
			depth = *req.Depth
		}
		if encrypt {
			return transposition.RailFenceEncrypt(req.Text, depth), nil
		}
		return transposition.RailFenceDecrypt(req.Text, depth), nil

	case "columnar":
		if encrypt {
			return transposition.ColumnarEncrypt(req.Text, req.Key)
		}
		return transposition.ColumnarDecrypt(req.Text, req.Key)

	case "combination":
		if encrypt {
			return transposition.CombinationEncrypt(req.Text, req.Key)
		}
		return transposition.CombinationDecrypt(req.Text, req.Key)

	case "double":
		if encrypt {
			return transposition.DoubleColumnarEncrypt(req.Text, req.Key, req.Key2)
		}
		return transposition.DoubleColumnarDecrypt(req.Text, req.Key, req.Key2)
	}

	return "", errUnknownCipher
}
