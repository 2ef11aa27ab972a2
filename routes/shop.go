package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	shopcontroller "github.com/iskolardev/pupshop-api/controllers/shop"
	"github.com/iskolardev/pupshop-api/middleware"
	"github.com/iskolardev/pupshop-api/store"
	"github.com/iskolardev/pupshop-api/views"
)

// NewShopRouter wires the customer-facing surface. rdb may be nil; the rate
// limiter then lets everything through.
func NewShopRouter(st *store.Store, rdb *redis.Client) *gin.Engine {
	r := newEngine()
	r.SetHTMLTemplate(views.Templates())

	r.GET("/", shopcontroller.ShowSection(st))
	r.GET("/show/:section", shopcontroller.ShowSection(st))
	r.POST("/register", middleware.RateLimiter(rdb), shopcontroller.Register(st))
	r.POST("/contact", middleware.RateLimiter(rdb), shopcontroller.Contact(st))

	return r
}
