package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/nicolocarcagni/c32check"
	"golang.org/x/time/rate"
)

type serverConfig struct {
	Listen string
	Port   int
	Rate   float64
	Burst  int
}

// RestServer serves the codec operations over HTTP.
type RestServer struct{}

// NewRouter builds the API handler. Every route is rate limited per client
// IP by limiter.
func NewRouter(limiter *IPRateLimiter) http.Handler {
	rs := RestServer{}

	router := mux.NewRouter()
	router.Use(LoggingMiddleware)
	readMW := RateLimitMiddleware(limiter)

	router.Handle("/encode/{hex}", readMW(http.HandlerFunc(rs.encode))).Methods("GET")
	router.Handle("/decode/{value}", readMW(http.HandlerFunc(rs.decode))).Methods("GET")
	router.Handle("/check/encode/{version}/{hex}", readMW(http.HandlerFunc(rs.checkEncode))).Methods("GET")
	router.Handle("/check/decode/{value}", readMW(http.HandlerFunc(rs.checkDecode))).Methods("GET")
	router.Handle("/address/encode/{version}/{hash160}", readMW(http.HandlerFunc(rs.addressEncode))).Methods("GET")
	router.Handle("/address/decode/{address}", readMW(http.HandlerFunc(rs.addressDecode))).Methods("GET")
	router.Handle("/convert/b58/{address}", readMW(http.HandlerFunc(rs.convert(c32check.C32ToB58Bridge)))).Methods("GET")
	router.Handle("/convert/c32/{address}", readMW(http.HandlerFunc(rs.convert(c32check.B58ToC32Bridge)))).Methods("GET")
	router.Handle("/versions", readMW(http.HandlerFunc(rs.versions))).Methods("GET")

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "not found"})
	})

	return CORSMiddleware(router)
}

// runServe starts the API server and blocks until ctx is cancelled.
func runServe(ctx context.Context, cfg serverConfig) error {
	limiter := NewIPRateLimiter(rate.Limit(cfg.Rate), cfg.Burst)
	go limiter.Run(ctx, time.Minute)

	addr := fmt.Sprintf("%s:%d", cfg.Listen, cfg.Port)
	srv := &http.Server{
		Handler:      NewRouter(limiter),
		Addr:         addr,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			PrintWarning("API server shutdown: %v", err)
		}
	}()

	PrintInfo("API Server started on http://%s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	PrintSuccess("API Server stopped")
	return nil
}

// Responses
type EncodeResponse struct {
	Family string `json:"family"`
	Value  string `json:"value"`
}

type DecodeResponse struct {
	Family string `json:"family"`
	Hex    string `json:"hex"`
}

type CheckDecodeResponse struct {
	Family  string `json:"family"`
	Version int    `json:"version"`
	Hex     string `json:"hex"`
}

type AddressResponse struct {
	Family  string `json:"family,omitempty"`
	Address string `json:"address"`
}

type AddressDecodeResponse struct {
	Family  string `json:"family"`
	Version int    `json:"version"`
	Hash160 string `json:"hash160"`
}

type VersionsResponse struct {
	C32    c32check.VersionTable `json:"c32"`
	Base58 c32check.VersionTable `json:"b58"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

var errBadRequest = errors.New("bad request")

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, c32check.ErrChecksumMismatch):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, c32check.ErrInvalidEncoding),
		errors.Is(err, c32check.ErrInvalidVersion),
		errors.Is(err, errBadRequest):
		status = http.StatusBadRequest
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

func familyParam(r *http.Request) (*c32check.Family, error) {
	name := r.URL.Query().Get("family")
	if name == "" {
		return c32check.C32, nil
	}
	f, err := c32check.FamilyByName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return f, nil
}

// intParam parses an optional integer; ok reports whether it was present.
func intParam(raw, name string) (n int, ok bool, err error) {
	if raw == "" {
		return 0, false, nil
	}
	n, err = strconv.Atoi(raw)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %s must be an integer", errBadRequest, name)
	}
	return n, true, nil
}

func (rs *RestServer) encode(w http.ResponseWriter, r *http.Request) {
	f, err := familyParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	minLength, _, err := intParam(r.URL.Query().Get("min_length"), "min_length")
	if err != nil {
		writeError(w, err)
		return
	}

	s, err := f.Encode(mux.Vars(r)["hex"], minLength)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, EncodeResponse{Family: f.Name(), Value: s})
}

func (rs *RestServer) decode(w http.ResponseWriter, r *http.Request) {
	f, err := familyParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	minBytes, _, err := intParam(r.URL.Query().Get("min_bytes"), "min_bytes")
	if err != nil {
		writeError(w, err)
		return
	}

	h, err := f.Decode(mux.Vars(r)["value"], minBytes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DecodeResponse{Family: f.Name(), Hex: h})
}

func (rs *RestServer) checkEncode(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	f, err := familyParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	version, _, err := intParam(vars["version"], "version")
	if err != nil {
		writeError(w, err)
		return
	}

	s, err := f.CheckEncode(version, vars["hex"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, EncodeResponse{Family: f.Name(), Value: s})
}

func (rs *RestServer) checkDecode(w http.ResponseWriter, r *http.Request) {
	f, err := familyParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	version, h, err := f.CheckDecode(mux.Vars(r)["value"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, CheckDecodeResponse{Family: f.Name(), Version: version, Hex: h})
}

func (rs *RestServer) addressEncode(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	f, err := familyParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	version, _, err := intParam(vars["version"], "version")
	if err != nil {
		writeError(w, err)
		return
	}

	addr, err := f.Address(version, vars["hash160"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, AddressResponse{Family: f.Name(), Address: addr})
}

func (rs *RestServer) addressDecode(w http.ResponseWriter, r *http.Request) {
	f, err := familyParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	version, h, err := f.AddressDecode(mux.Vars(r)["address"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, AddressDecodeResponse{Family: f.Name(), Version: version, Hash160: h})
}

func (rs *RestServer) convert(b *c32check.Bridge) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version, ok, err := intParam(r.URL.Query().Get("version"), "version")
		if err != nil {
			writeError(w, err)
			return
		}

		src := mux.Vars(r)["address"]
		var addr string
		if ok {
			addr, err = b.ReencodeVersion(src, version)
		} else {
			addr, err = b.Reencode(src)
		}
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, AddressResponse{Family: b.To.Name(), Address: addr})
	}
}

func (rs *RestServer) versions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, VersionsResponse{C32: c32check.Versions, Base58: c32check.BitcoinVersions})
}
