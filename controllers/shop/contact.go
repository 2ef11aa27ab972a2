package shopcontroller

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/iskolardev/pupshop-api/store"
)

// POST /contact
// Messages are not persisted; each submission gets a reference number so the
// sender has something to quote.
func Contact(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ref := uuid.NewString()
		log.Printf("📨 contact message %s from %q <%s>: %q",
			ref, c.PostForm("name"), c.PostForm("email"), c.PostForm("message"))
		renderContact(c, st, "Thank you for reaching out! Your reference number is "+ref+".")
	}
}
