package folio

import (
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const brotliLevel = 5

// brotliWithConfig compresses responses for clients that accept br. The
// status line is held back until the first body byte, so bodiless
// responses (redirects, 304s) go out without a Content-Encoding.
func brotliWithConfig(level int, skipper middleware.Skipper) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipper(c) || !acceptsBrotli(c.Request()) {
				return next(c)
			}
			res := c.Response()
			res.Header().Add(echo.HeaderVary, echo.HeaderAcceptEncoding)

			orig := res.Writer
			bw := &brotliResponseWriter{ResponseWriter: orig, bw: brotli.NewWriterLevel(orig, level)}
			res.Writer = bw
			defer func() {
				_ = bw.finish()
				res.Writer = orig
			}()
			return next(c)
		}
	}
}

func acceptsBrotli(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get(echo.HeaderAcceptEncoding), ",") {
		coding, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if strings.TrimSpace(coding) != "br" {
			continue
		}
		q := strings.ReplaceAll(params, " ", "")
		return q != "q=0" && q != "q=0.0" && q != "q=0.00" && q != "q=0.000"
	}
	return false
}

type brotliResponseWriter struct {
	http.ResponseWriter
	bw      *brotli.Writer
	code    int
	started bool
}

func (w *brotliResponseWriter) WriteHeader(code int) {
	if !w.started {
		w.code = code
	}
}

func (w *brotliResponseWriter) Write(b []byte) (int, error) {
	if !w.started {
		if w.Header().Get(echo.HeaderContentType) == "" {
			w.Header().Set(echo.HeaderContentType, http.DetectContentType(b))
		}
		w.start()
	}
	return w.bw.Write(b)
}

func (w *brotliResponseWriter) start() {
	w.started = true
	w.Header().Del(echo.HeaderContentLength)
	w.Header().Set(echo.HeaderContentEncoding, "br")
	if w.code == 0 {
		w.code = http.StatusOK
	}
	w.ResponseWriter.WriteHeader(w.code)
}

func (w *brotliResponseWriter) finish() error {
	if w.started {
		return w.bw.Close()
	}
	if w.code != 0 {
		w.ResponseWriter.WriteHeader(w.code)
	}
	return nil
}

func (w *brotliResponseWriter) Flush() {
	if !w.started {
		w.start()
	}
	_ = w.bw.Flush()
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (w *brotliResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
