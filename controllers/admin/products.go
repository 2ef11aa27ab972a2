package admincontroller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/iskolardev/pupshop-api/store"
)

// POST /add
func AddProduct(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("item_name")
		if name == "" {
			c.String(http.StatusBadRequest, "item_name is required")
			return
		}
		quantity, err := strconv.Atoi(c.PostForm("quantity"))
		if err != nil {
			c.String(http.StatusBadRequest, "Invalid quantity")
			return
		}
		price, err := decimal.NewFromString(c.PostForm("price"))
		if err != nil {
			c.String(http.StatusBadRequest, "Invalid price")
			return
		}

		if _, err := st.AddProduct(name, quantity, price); err != nil {
			c.String(http.StatusInternalServerError, "Failed to add item")
			return
		}
		c.Redirect(http.StatusSeeOther, "/")
	}
}

// POST /update
func UpdateProduct(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseItemID(c.PostForm("item_id"))
		if err != nil {
			c.String(http.StatusBadRequest, "Invalid item_id")
			return
		}
		name := c.PostForm("item_name")
		quantity, err := strconv.Atoi(c.PostForm("quantity"))
		if err != nil {
			c.String(http.StatusBadRequest, "Invalid quantity")
			return
		}
		price, err := decimal.NewFromString(c.PostForm("price"))
		if err != nil {
			c.String(http.StatusBadRequest, "Invalid price")
			return
		}

		if err := st.UpdateProduct(id, name, quantity, price); err != nil {
			if errors.Is(err, store.ErrProductNotFound) {
				// The listing simply re-renders unchanged.
				log.Printf("update: no product with id %d", id)
				c.Redirect(http.StatusSeeOther, "/")
				return
			}
			c.String(http.StatusInternalServerError, "Failed to update item")
			return
		}
		c.Redirect(http.StatusSeeOther, "/")
	}
}

// POST /delete
func DeleteProduct(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseItemID(c.PostForm("item_id"))
		if err != nil {
			c.String(http.StatusBadRequest, "Invalid item_id")
			return
		}

		if err := st.DeleteProduct(id); err != nil {
			if errors.Is(err, store.ErrProductNotFound) {
				log.Printf("delete: no product with id %d", id)
				c.Redirect(http.StatusSeeOther, "/")
				return
			}
			c.String(http.StatusInternalServerError, "Failed to delete item")
			return
		}
		c.Redirect(http.StatusSeeOther, "/")
	}
}

func parseItemID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
