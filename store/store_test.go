package store

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/iskolardev/pupshop-api/models"
	"github.com/iskolardev/pupshop-api/views"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	st := NewWithDB(db)
	require.NoError(t, st.Migrate())
	return st
}

func TestSeedPopulatesFiveProductsNewestFirst(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.Seed())

	products, err := st.ListProducts()
	require.NoError(t, err)
	require.Len(t, products, 5)

	for i := 1; i < len(products); i++ {
		assert.Greater(t, products[i-1].ID, products[i].ID, "ordering must be id descending")
	}
	assert.Equal(t, "PUP STUDY WITH STYLE Shirt", products[0].Name)
	assert.Equal(t, "PUP Minimalist Baybayin Lanyard", products[4].Name)
}

func TestSeedIsIdempotent(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.Seed())
	require.NoError(t, st.Seed())

	products, err := st.ListProducts()
	require.NoError(t, err)
	assert.Len(t, products, 5)
}

func TestAddProductAppearsInListing(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.Seed())

	_, err := st.AddProduct("Mug", 10, decimal.RequireFromString("99.50"))
	require.NoError(t, err)

	products, err := st.ListProducts()
	require.NoError(t, err)
	require.Len(t, products, 6)

	mug := products[0] // newest first
	assert.Equal(t, "Mug", mug.Name)
	assert.Equal(t, 10, mug.Stock)
	assert.Equal(t, "₱99.50", views.Peso(mug.Price))
	assert.Equal(t, "Added from admin panel", mug.Description)
	assert.Equal(t, "/static/images/pup_logo.png", mug.ImageURL)
}

func TestUpdateProductOverwritesNameStockPrice(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.Seed())

	products, err := st.ListProducts()
	require.NoError(t, err)
	target := products[len(products)-1]

	err = st.UpdateProduct(target.ID, "Lanyard v2", 42, decimal.RequireFromString("150.00"))
	require.NoError(t, err)

	var updated models.Product
	require.NoError(t, st.db.First(&updated, target.ID).Error)
	assert.Equal(t, "Lanyard v2", updated.Name)
	assert.Equal(t, 42, updated.Stock)
	assert.Equal(t, "150.00", updated.Price.StringFixed(2))
	// Fields outside the admin form are untouched.
	assert.Equal(t, target.Description, updated.Description)
	assert.Equal(t, target.SoldCount, updated.SoldCount)
}

func TestUpdateMissingProductReturnsNotFoundAndChangesNothing(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.Seed())

	before, err := st.ListProducts()
	require.NoError(t, err)

	err = st.UpdateProduct(9999, "Ghost", 1, decimal.RequireFromString("1.00"))
	assert.ErrorIs(t, err, ErrProductNotFound)

	after, err := st.ListProducts()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestDeleteMissingProductReturnsNotFoundAndChangesNothing(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.Seed())

	err := st.DeleteProduct(9999)
	assert.ErrorIs(t, err, ErrProductNotFound)

	after, err := st.ListProducts()
	require.NoError(t, err)
	assert.Len(t, after, 5)
}

func TestDeleteProductRemovesRow(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.Seed())

	products, err := st.ListProducts()
	require.NoError(t, err)

	require.NoError(t, st.DeleteProduct(products[0].ID))

	after, err := st.ListProducts()
	require.NoError(t, err)
	assert.Len(t, after, 4)
	for _, p := range after {
		assert.NotEqual(t, products[0].ID, p.ID)
	}
}

func TestRegisterUserStoresRow(t *testing.T) {
	st := newTestStore(t)

	user, err := st.RegisterUser("Juan Dela Cruz", "juan@iskolar.pup.edu.ph", "$2a$10$fakehash")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "juan@iskolar.pup.edu.ph", user.Email)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestRegisterDuplicateEmailFailsWithoutNewRow(t *testing.T) {
	st := newTestStore(t)

	_, err := st.RegisterUser("Juan", "juan@iskolar.pup.edu.ph", "hash-one")
	require.NoError(t, err)

	_, err = st.RegisterUser("Juana", "juan@iskolar.pup.edu.ph", "hash-two")
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	var count int64
	require.NoError(t, st.db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
