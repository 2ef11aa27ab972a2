package admincontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iskolardev/pupshop-api/store"
	"github.com/iskolardev/pupshop-api/views"
)

// GET /
// The table is re-read from the store on every render, so a redirect landing
// here always reflects the mutation that just committed.
func Inventory(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := st.ListProducts()
		if err != nil {
			log.Printf("❌ render inventory: %v", err)
			c.String(http.StatusInternalServerError, "The inventory is unavailable right now. Please try again later.")
			return
		}
		c.HTML(http.StatusOK, "admin", views.AdminPage{Products: products})
	}
}
