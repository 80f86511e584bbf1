package theme

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"admybrand.GO/api"
	themeService "admybrand.GO/service/theme"
)

func init() {
	api.RegisterModule(RegisterThemeRoutes)
}

type themeView struct {
	Theme      themeService.Theme      `json:"theme"`
	IsDark     bool                    `json:"is_dark"`
	Appearance themeService.Appearance `json:"appearance"`
}

func view(ctrl *themeService.Controller) themeView {
	return themeView{Theme: ctrl.Theme(), IsDark: ctrl.IsDark(), Appearance: ctrl.Appearance()}
}

func RegisterThemeRoutes(apiGroup *echo.Group, deps *api.Deps) {
	g := apiGroup.Group("/theme")

	// GET /api/theme – active theme and resolved appearance
	g.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, view(deps.Theme))
	})

	// PUT /api/theme – select a theme directly
	g.PUT("", func(c echo.Context) error {
		var body struct {
			Theme string `json:"theme"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		deps.Theme.Select(themeService.Theme(body.Theme))
		return c.JSON(http.StatusOK, view(deps.Theme))
	})

	// POST /api/theme/cycle – advance dark → light → night → bright
	g.POST("/cycle", func(c echo.Context) error {
		deps.Theme.Cycle()
		return c.JSON(http.StatusOK, view(deps.Theme))
	})

	// POST /api/theme/resync – re-read the host preference for system mode
	g.POST("/resync", func(c echo.Context) error {
		deps.Theme.Resync()
		return c.JSON(http.StatusOK, view(deps.Theme))
	})
}
