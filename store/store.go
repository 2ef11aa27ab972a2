package store

import (
	"errors"
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/iskolardev/pupshop-api/models"
)

// Placeholder values for products created from the admin panel, which only
// collects name, quantity and price.
const (
	adminDescription = "Added from admin panel"
	adminImageURL    = "/static/images/pup_logo.png"
)

// Store is the sole owner of persistent state. Both the shop and the admin
// surface are handed the same Store at startup.
type Store struct {
	db *gorm.DB
}

// Open connects to Postgres and runs migrations.
func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	st := &Store{db: db}
	if err := st.Migrate(); err != nil {
		return nil, err
	}
	return st, nil
}

// NewWithDB wraps an already-open gorm handle. Used by tests.
func NewWithDB(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(&models.User{}, &models.Product{}); err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}
	return nil
}

// ListProducts returns every product, newest id first. No pagination.
func (s *Store) ListProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Order("id desc").Find(&products).Error; err != nil {
		log.Printf("❌ list products: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return products, nil
}

// AddProduct inserts a new product with the admin-panel placeholder
// description and image.
func (s *Store) AddProduct(name string, quantity int, price decimal.Decimal) (models.Product, error) {
	product := models.Product{
		Name:        name,
		Description: adminDescription,
		Price:       price,
		Stock:       quantity,
		ImageURL:    adminImageURL,
	}
	if err := s.db.Create(&product).Error; err != nil {
		log.Printf("❌ add product %q: %v", name, err)
		return models.Product{}, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return product, nil
}

// UpdateProduct overwrites name, stock and price of the row matching id.
// Returns ErrProductNotFound when no row matches.
func (s *Store) UpdateProduct(id uint, name string, quantity int, price decimal.Decimal) error {
	res := s.db.Model(&models.Product{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":  name,
		"stock": quantity,
		"price": price,
	})
	if res.Error != nil {
		log.Printf("❌ update product %d: %v", id, res.Error)
		return fmt.Errorf("%w: %v", ErrStore, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// DeleteProduct removes the row matching id. Returns ErrProductNotFound when
// no row matches.
func (s *Store) DeleteProduct(id uint) error {
	res := s.db.Delete(&models.Product{}, id)
	if res.Error != nil {
		log.Printf("❌ delete product %d: %v", id, res.Error)
		return fmt.Errorf("%w: %v", ErrStore, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// RegisterUser inserts a user row. The password arrives already hashed; the
// store never sees plaintext.
func (s *Store) RegisterUser(name, email, passwordHash string) (models.User, error) {
	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.User{}, ErrDuplicateEmail
		}
		log.Printf("❌ register user %q: %v", email, err)
		return models.User{}, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return user, nil
}
