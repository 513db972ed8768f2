package folio

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/yosssi/gohtml"
)

// Render writes a templ component as an HTTP 200 HTML response.
func (a *App) Render(c echo.Context, cmp templ.Component) error {
	return a.RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
// With pretty_html on, the markup is indented before it is written.
func (a *App) RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	if !a.Config.PrettyHTML {
		return Render(c, code, cmp)
	}
	var buf bytes.Buffer
	if err := cmp.Render(c.Request().Context(), &buf); err != nil {
		return err
	}
	return c.HTMLBlob(code, gohtml.FormatBytes(buf.Bytes()))
}

// Render writes cmp straight to the response.
func Render(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}
