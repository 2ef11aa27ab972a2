package routes

import (
	"github.com/gin-gonic/gin"

	admincontroller "github.com/iskolardev/pupshop-api/controllers/admin"
	"github.com/iskolardev/pupshop-api/store"
	"github.com/iskolardev/pupshop-api/views"
)

// NewAdminRouter wires the inventory panel. Every mutation redirects back to
// the listing, which re-reads the store.
func NewAdminRouter(st *store.Store) *gin.Engine {
	r := newEngine()
	r.SetHTMLTemplate(views.Templates())

	r.GET("/", admincontroller.Inventory(st))
	r.POST("/add", admincontroller.AddProduct(st))
	r.POST("/update", admincontroller.UpdateProduct(st))
	r.POST("/delete", admincontroller.DeleteProduct(st))
	r.GET("/export", admincontroller.ExportInventory(st))

	return r
}
