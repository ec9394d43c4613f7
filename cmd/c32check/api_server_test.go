package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newTestRouter() http.Handler {
	return NewRouter(NewIPRateLimiter(rate.Inf, 1))
}

func get(t *testing.T, h http.Handler, target string, out interface{}) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if out != nil {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
	}
	return rec
}

func TestAPIEncodeDecode(t *testing.T) {
	h := newTestRouter()

	var enc EncodeResponse
	rec := get(t, h, "/encode/a46ff88886c2ef9762d970b4d2c63678835bd39d", &enc)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, EncodeResponse{Family: "c32", Value: "MHQZH246RBQSERPSE2TD5HHPF21NQMWX"}, enc)

	rec = get(t, h, "/encode/a46ff88886c2ef9762d970b4d2c63678835bd39d?family=z32", &enc)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "wtz9tnrgamz3qas3qn4pfttsxnbizwh7", enc.Value)

	rec = get(t, h, "/encode/01?min_length=4", &enc)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0001", enc.Value)

	var dec DecodeResponse
	rec = get(t, h, "/decode/38CNP6RVS0EXQQ4V34", &dec)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "68656c6c6f20776f726c64", dec.Hex)

	rec = get(t, h, "/decode/1?min_bytes=3", &dec)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "000001", dec.Hex)
}

func TestAPICheck(t *testing.T) {
	h := newTestRouter()

	var enc EncodeResponse
	rec := get(t, h, "/check/encode/12/68656c6c6f20776f726c64", &enc)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "CD1JPRV3F41VPYWKCCGRMASC8", enc.Value)

	var dec CheckDecodeResponse
	rec = get(t, h, "/check/decode/cd1jprv3f41vpywkccgrmasc8", &dec)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, CheckDecodeResponse{Family: "c32", Version: 12, Hex: "68656c6c6f20776f726c64"}, dec)
}

func TestAPIAddress(t *testing.T) {
	h := newTestRouter()

	var addr AddressResponse
	rec := get(t, h, "/address/encode/22/a46ff88886c2ef9762d970b4d2c63678835bd39d", &addr)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "SP2J6ZY48GV1EZ5V2V5RB9MP66SW86PYKKNRV9EJ7", addr.Address)

	var dec AddressDecodeResponse
	rec = get(t, h, "/address/decode/SP2J6ZY48GV1EZ5V2V5RB9MP66SW86PYKKNRV9EJ7", &dec)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, AddressDecodeResponse{Family: "c32", Version: 22, Hash160: "a46ff88886c2ef9762d970b4d2c63678835bd39d"}, dec)

	rec = get(t, h, "/address/decode/1FzTxL9Mxnm2fdmnQEArfhzJHevwbvcH6d?family=b58", &dec)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, dec.Version)
}

func TestAPIConvert(t *testing.T) {
	h := newTestRouter()

	var addr AddressResponse
	rec := get(t, h, "/convert/b58/SPWNYDJ3STG7XH7ERWXMV6MQ7Q6EATWVY5Q1QMP8", &addr)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, AddressResponse{Family: "b58", Address: "16EMaNw3pkn3v6f2BgnSSs53zAKH4Q8YJg"}, addr)

	rec = get(t, h, "/convert/c32/3D2oetdNuZUqQHPJmcMDDHYoqkyNVsFk9r", &addr)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "SM1Y6EXF21RZ9739DFTEQKB1H044BMM0XVCM4A4NY", addr.Address)

	rec = get(t, h, "/convert/b58/SZ2J6ZY48GV1EZ5V2V5RB9MP66SW86PYKKQ9H6DPR?version=31", &addr)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "DjUAUhPHyP8C256UAEVjhbRgoHvBetzPRR", addr.Address)
}

func TestAPIVersions(t *testing.T) {
	var v VersionsResponse
	rec := get(t, newTestRouter(), "/versions", &v)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 22, v.C32.Mainnet.P2PKH)
	assert.Equal(t, 196, v.Base58.Testnet.P2SH)
}

func TestAPIErrors(t *testing.T) {
	h := newTestRouter()

	cases := []struct {
		target string
		status int
	}{
		{"/encode/abcdefg", http.StatusBadRequest},
		{"/encode/00?family=b64", http.StatusBadRequest},
		{"/encode/00?min_length=x", http.StatusBadRequest},
		{"/check/encode/32/00", http.StatusBadRequest},
		{"/check/encode/x/00", http.StatusBadRequest},
		{"/address/encode/22/a46ff88886c2ef9762d970b4d2c63678835bd3", http.StatusBadRequest},
		{"/address/decode/sP2J6ZY48GV1EZ5V2V5RB9MP66SW86PYKKNRV9EJ7", http.StatusBadRequest},
		{"/address/decode/SP2J6ZY48GV1EZ5V2V5RB9MP66SW86PYKKNRV9EJ8", http.StatusUnprocessableEntity},
		{"/convert/b58/S02J6ZY48GV1EZ5V2V5RB9MP66SW86PYKKPVKG2CE", http.StatusBadRequest},
		{"/nowhere", http.StatusNotFound},
	}
	for _, c := range cases {
		var e ErrorResponse
		rec := get(t, h, c.target, &e)
		assert.Equal(t, c.status, rec.Code, c.target)
		assert.NotEmpty(t, e.Error, c.target)
	}
}

func TestAPIRateLimit(t *testing.T) {
	h := NewRouter(NewIPRateLimiter(rate.Limit(0.001), 2))

	for i := 0; i < 2; i++ {
		rec := get(t, h, "/versions", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	}

	var e ErrorResponse
	rec := get(t, h, "/versions", &e)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "too many requests", e.Error)
}

func TestAPICORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/versions", nil)
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
