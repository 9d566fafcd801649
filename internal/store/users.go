package store

import (
	"errors"

	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library

	"image_gallery/internal/domain"
)

// UserStore is the identity store: registration, login verification and
// lookups. It never touches media or tag state.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Register creates a new user with a bcrypt-hashed password and the default
// role. Returns ErrDuplicateEmail when the email or username is taken.
func (s *UserStore) Register(username, email, password string) (domain.User, error) {
	var count int64
	if err := s.db.Model(&domain.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return domain.User{}, err
	}
	if count > 0 {
		return domain.User{}, ErrDuplicateEmail
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}
	user := domain.User{
		Username: username,
		Email:    email,
		Password: string(hash),
		Role:     domain.RoleUser,
	}
	// Unique constraints still back the pre-check up under concurrent registrations
	if err := s.db.Create(&user).Error; err != nil {
		return domain.User{}, ErrDuplicateEmail
	}
	return user, nil
}

// Authenticate looks a user up by email and verifies the password against the
// stored hash. Unknown email and bad password both yield ErrInvalidCredentials.
func (s *UserStore) Authenticate(email, password string) (domain.User, error) {
	var user domain.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return domain.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// FindByID fetches a user by primary key.
func (s *UserStore) FindByID(id uint) (domain.User, error) {
	var user domain.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}
