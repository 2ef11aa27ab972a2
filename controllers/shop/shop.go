package shopcontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iskolardev/pupshop-api/models"
	"github.com/iskolardev/pupshop-api/store"
	"github.com/iskolardev/pupshop-api/views"
)

// GET / and GET /show/:section
// Renders the full shop document with the requested section active. Unknown
// section names render home. Every render re-reads the catalog so the home
// grid always shows current rows.
func ShowSection(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		section := views.NormalizeSection(c.Param("section"))

		products, err := st.ListProducts()
		if err != nil {
			log.Printf("❌ render %s: %v", section, err)
			c.String(http.StatusInternalServerError, "The shop is unavailable right now. Please try again later.")
			return
		}

		c.HTML(http.StatusOK, "shop", views.NewShopPage(section, products))
	}
}

func renderContact(c *gin.Context, st *store.Store, notice string) {
	products, err := st.ListProducts()
	if err != nil {
		products = []models.Product{}
	}
	page := views.NewShopPage(views.SectionContact, products)
	page.Notice = notice
	c.HTML(http.StatusOK, "shop", page)
}
