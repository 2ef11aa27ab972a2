package shopcontroller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iskolardev/pupshop-api/auth"
	"github.com/iskolardev/pupshop-api/store"
)

// POST /register
// Validates that password and confirmation match before anything touches the
// store, then hashes and persists. Success redirects to the login section.
func Register(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		email := c.PostForm("email")
		password := c.PostForm("password")
		confirm := c.PostForm("confirm_password")

		if password != confirm {
			c.String(http.StatusBadRequest, "Passwords do not match!")
			return
		}

		hash, err := auth.HashPassword(password)
		if err != nil {
			log.Printf("❌ hash password for %q: %v", email, err)
			c.String(http.StatusInternalServerError, "Registration failed. Please try again.")
			return
		}

		if _, err := st.RegisterUser(name, email, hash); err != nil {
			if errors.Is(err, store.ErrDuplicateEmail) {
				c.String(http.StatusConflict, "That email address is already registered.")
				return
			}
			c.String(http.StatusInternalServerError, "Registration failed. Please try again.")
			return
		}

		c.Redirect(http.StatusSeeOther, "/show/login")
	}
}
