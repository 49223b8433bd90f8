package repositories

import (
	"agrodirect/models"
	"agrodirect/utils"
	"errors"
	"fmt"
	"strings"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository holds the read-only demo accounts. Every account shares the
// configured demo password, hashed once at startup.
type UserRepository struct {
	users   []models.User
	byPhone map[string]int
	byID    map[string]int
}

func NewUserRepository(demoPassword string) (*UserRepository, error) {
	seed, err := parseSeed(seedData)
	if err != nil {
		return nil, err
	}
	return newUserRepository(seed.Users, demoPassword)
}

func newUserRepository(users []models.User, demoPassword string) (*UserRepository, error) {
	hash, err := utils.HashPassword(demoPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash demo password: %w", err)
	}

	repo := &UserRepository{
		users:   make([]models.User, len(users)),
		byPhone: make(map[string]int, len(users)),
		byID:    make(map[string]int, len(users)),
	}
	for i, u := range users {
		u.PasswordHash = hash
		repo.users[i] = u
		repo.byPhone[normalizePhone(u.Phone)] = i
		repo.byID[u.ID] = i
	}
	return repo, nil
}

func (r *UserRepository) FindByPhone(phone string) (*models.User, error) {
	idx, ok := r.byPhone[normalizePhone(phone)]
	if !ok {
		return nil, ErrUserNotFound
	}
	user := r.users[idx]
	return &user, nil
}

func (r *UserRepository) FindByID(id string) (*models.User, error) {
	idx, ok := r.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	user := r.users[idx]
	return &user, nil
}

func (r *UserRepository) All() []models.User {
	out := make([]models.User, len(r.users))
	copy(out, r.users)
	return out
}

func normalizePhone(phone string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(phone))
}
