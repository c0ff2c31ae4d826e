package repository

import (
	"context"
	"fmt"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/JuliusM5/lidija-sub000/internal/models"
	"github.com/JuliusM5/lidija-sub000/internal/store"
)

const usersCollection = "users"

type UserRepositoryImpl struct {
	store *store.Store
}

func NewUserRepository(s *store.Store) *UserRepositoryImpl {
	return &UserRepositoryImpl{store: s}
}

func (r *UserRepositoryImpl) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var users []models.User
	if err := r.store.LoadInto(usersCollection, &users); err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	for i := range users {
		if strings.EqualFold(users[i].Username, username) {
			return &users[i], nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", username, ErrNotFound)
}

func (r *UserRepositoryImpl) VerifyPassword(ctx context.Context, username, password string) (*models.User, error) {
	user, err := r.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("wrong password for %s: %w", username, err)
	}
	return user, nil
}

// SeedDefaultAdmin creates the initial admin account when the users file is
// empty. Password comes from ADMIN_PASSWORD; nothing is seeded without it.
func (r *UserRepositoryImpl) SeedDefaultAdmin(ctx context.Context, username, password string) error {
	if password == "" {
		return nil
	}
	var users []models.User
	return r.store.Update(usersCollection, &users, func() error {
		if len(users) > 0 {
			return nil
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash admin password: %w", err)
		}
		users = append(users, models.User{
			ID:           store.NewID(),
			Username:     username,
			PasswordHash: string(hash),
			Name:         "Administratorė",
			Role:         models.RoleAdmin,
		})
		log.Printf("seeded default admin user %q", username)
		return nil
	})
}
