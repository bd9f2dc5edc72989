package handlers

import (
	"bookpub/web/components"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Dashboard はワークフロー操作画面を表示
func Dashboard(c echo.Context) error {
	return render(c, components.Dashboard())
}

func render(c echo.Context, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	return component.Render(c.Request().Context(), c.Response())
}
