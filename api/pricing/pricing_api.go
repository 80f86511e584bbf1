package pricing

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"admybrand.GO/api"
	pricingService "admybrand.GO/service/pricing"
)

func init() {
	api.RegisterModule(RegisterPricingRoutes)
}

func RegisterPricingRoutes(apiGroup *echo.Group, deps *api.Deps) {
	g := apiGroup.Group("/pricing")

	// POST /api/pricing/quote – itemized quote for a calculator configuration
	g.POST("/quote", func(c echo.Context) error {
		start := time.Now()

		var cfg pricingService.Configuration
		if err := c.Bind(&cfg); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		breakdown := pricingService.ComputeBreakdown(cfg)
		duration := time.Since(start).Milliseconds()
		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
		return c.JSON(http.StatusOK, breakdown)
	})

	// GET /api/pricing/plans – plan table for the calculator UI
	g.GET("/plans", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"plans":               pricingService.Plans(),
			"free_user_allowance": pricingService.FreeUserAllowance,
			"storage_rate_per_gb": pricingService.StorageRatePerGB,
			"integration_rate":    pricingService.IntegrationRate,
		})
	})
}
