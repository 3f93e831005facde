package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/maisonlumiere/boutique/internal/handlers"
	"github.com/maisonlumiere/boutique/internal/metrics"
)

type Deps struct {
	ProductHandler   *handlers.ProductHandler
	OrderHandler     *handlers.OrderHandler
	BlogHandler      *handlers.BlogHandler
	CartHandler      *handlers.CartHandler
	SearchHandler    *handlers.SearchHandler
	DashboardHandler *handlers.DashboardHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/metrics", metrics.Handler())

	api := e.Group("/api")

	api.GET("/search", d.SearchHandler.Search)
	api.GET("/dashboard/stats", d.DashboardHandler.GetStats)

	products := api.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/:id", d.ProductHandler.GetProduct)
	products.POST("", d.ProductHandler.CreateProduct)
	products.PATCH("/:id", d.ProductHandler.PatchProduct)
	products.DELETE("/:id", d.ProductHandler.DeleteProduct)

	orders := api.Group("/orders")
	orders.GET("", d.OrderHandler.GetOrders)
	orders.GET("/:id", d.OrderHandler.GetOrder)
	orders.POST("", d.OrderHandler.CreateOrder)
	orders.PATCH("/:id/status", d.OrderHandler.UpdateOrderStatus)

	blog := api.Group("/blog")
	blog.GET("", d.BlogHandler.GetBlogPosts)
	blog.GET("/:id", d.BlogHandler.GetBlogPost)
	blog.GET("/slug/:slug", d.BlogHandler.GetBlogPostBySlug)
	blog.POST("", d.BlogHandler.CreateBlogPost)
	blog.PATCH("/:id", d.BlogHandler.PatchBlogPost)
	blog.DELETE("/:id", d.BlogHandler.DeleteBlogPost)

	cart := api.Group("/cart")
	cart.GET("/:sessionId", d.CartHandler.GetCart)
	cart.POST("", d.CartHandler.AddToCart)
	cart.PATCH("/item/:id", d.CartHandler.UpdateCartItem)
	cart.DELETE("/item/:id", d.CartHandler.RemoveFromCart)
	cart.DELETE("/:sessionId", d.CartHandler.ClearCart)
}
