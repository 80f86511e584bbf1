package forms

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"admybrand.GO/api"
	formsService "admybrand.GO/service/forms"
)

func init() {
	api.RegisterModule(RegisterFormRoutes)
}

func RegisterFormRoutes(apiGroup *echo.Group, deps *api.Deps) {
	// POST /api/contact
	apiGroup.POST("/contact", func(c echo.Context) error {
		var form formsService.ContactForm
		if err := c.Bind(&form); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if errs := form.Validate(); len(errs) > 0 {
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": errs})
		}
		resp, err := deps.Forms.Submit(c.Request().Context(), form)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		status := http.StatusOK
		if !resp.Success {
			status = http.StatusBadGateway
		}
		return c.JSON(status, resp)
	})

	// POST /api/newsletter
	apiGroup.POST("/newsletter", func(c echo.Context) error {
		var signup formsService.NewsletterSignup
		if err := c.Bind(&signup); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if errs := signup.Validate(); len(errs) > 0 {
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": errs})
		}
		resp, err := deps.Forms.Submit(c.Request().Context(), signup)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		status := http.StatusOK
		if !resp.Success {
			status = http.StatusBadGateway
		}
		return c.JSON(status, resp)
	})
}
