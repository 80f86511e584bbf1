package cart

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"admybrand.GO/api"
	repository "admybrand.GO/model/repository/catalog"
)

func init() {
	api.RegisterModule(RegisterCartRoutes)
}

// HeaderSession carries the visitor session id; carts are isolated per
// session instead of sharing one global cart.
const HeaderSession = "X-Session-ID"

func sessionID(c echo.Context) string {
	if id := c.Request().Header.Get(HeaderSession); id != "" {
		return id
	}
	return "anonymous"
}

func RegisterCartRoutes(apiGroup *echo.Group, deps *api.Deps) {
	repo := repository.NewRepository(deps.DB)
	g := apiGroup.Group("/cart")

	// GET /api/cart – current snapshot
	g.GET("", func(c echo.Context) error {
		snap := deps.Carts.ForSession(sessionID(c)).Get()
		return c.JSON(http.StatusOK, snap)
	})

	// POST /api/cart/items – add a product (quantity defaults to 1)
	g.POST("/items", func(c echo.Context) error {
		var body struct {
			ProductID string `json:"product_id"`
			Quantity  int    `json:"quantity"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if body.ProductID == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "product_id is required"})
		}
		p, ok := repo.ProductByID(body.ProductID)
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		}
		snap := deps.Carts.ForSession(sessionID(c)).Add(*p, body.Quantity)
		return c.JSON(http.StatusOK, snap)
	})

	// PUT /api/cart/items/:id – set quantity exactly (<= 0 removes)
	g.PUT("/items/:id", func(c echo.Context) error {
		var body struct {
			Quantity int `json:"quantity"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		snap := deps.Carts.ForSession(sessionID(c)).UpdateQuantity(c.Param("id"), body.Quantity)
		return c.JSON(http.StatusOK, snap)
	})

	// DELETE /api/cart/items/:id – remove a line (absent id is a no-op)
	g.DELETE("/items/:id", func(c echo.Context) error {
		snap := deps.Carts.ForSession(sessionID(c)).Remove(c.Param("id"))
		return c.JSON(http.StatusOK, snap)
	})

	// DELETE /api/cart – clear
	g.DELETE("", func(c echo.Context) error {
		snap := deps.Carts.ForSession(sessionID(c)).Clear()
		return c.JSON(http.StatusOK, snap)
	})
}
