package middleware

import (
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
)

// Compress brotli-encodes responses for clients that advertise
// Accept-Encoding: br. Everything else passes through untouched.
func Compress(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !acceptsBrotli(r) {
			next.ServeHTTP(w, r)
			return
		}

		bw := brotli.NewWriter(w)
		brw := &brotliResponseWriter{ResponseWriter: w, bw: bw}

		next.ServeHTTP(brw, r)

		if brw.wroteHeader && !brw.passthrough {
			bw.Close()
		}
	})
}

func acceptsBrotli(r *http.Request) bool {
	for _, enc := range strings.Split(r.Header.Get("Accept-Encoding"), ",") {
		enc = strings.TrimSpace(enc)
		if enc == "br" || strings.HasPrefix(enc, "br;") {
			return true
		}
	}
	return false
}

type brotliResponseWriter struct {
	http.ResponseWriter
	bw          *brotli.Writer
	wroteHeader bool
	passthrough bool
}

func (w *brotliResponseWriter) WriteHeader(code int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	// Leave responses the handler already encoded alone.
	if w.Header().Get("Content-Encoding") != "" {
		w.passthrough = true
		w.ResponseWriter.WriteHeader(code)
		return
	}

	w.Header().Set("Content-Encoding", "br")
	w.Header().Del("Content-Length")
	w.ResponseWriter.WriteHeader(code)
}

func (w *brotliResponseWriter) Write(p []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if w.passthrough {
		return w.ResponseWriter.Write(p)
	}
	return w.bw.Write(p)
}
