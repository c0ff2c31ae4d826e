package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/xid"

	"github.com/JuliusM5/lidija-sub000/internal/models"
	"github.com/JuliusM5/lidija-sub000/internal/store"
)

const subscribersCollection = "subscribers"

type SubscriberRepositoryImpl struct {
	store *store.Store
}

func NewSubscriberRepository(s *store.Store) *SubscriberRepositoryImpl {
	return &SubscriberRepositoryImpl{store: s}
}

func (r *SubscriberRepositoryImpl) List(ctx context.Context) ([]models.Subscriber, error) {
	var subscribers []models.Subscriber
	if err := r.store.LoadInto(subscribersCollection, &subscribers); err != nil {
		return nil, fmt.Errorf("load subscribers: %w", err)
	}
	sort.SliceStable(subscribers, func(i, j int) bool {
		return subscribers[i].CreatedAt.After(subscribers[j].CreatedAt)
	})
	return subscribers, nil
}

// Create registers an email address once; duplicates are matched
// case-insensitively.
func (r *SubscriberRepositoryImpl) Create(ctx context.Context, email string) (*models.Subscriber, error) {
	email = strings.TrimSpace(email)
	sub := models.Subscriber{
		ID:        xid.New().String(),
		Email:     email,
		Status:    "active",
		CreatedAt: time.Now().UTC(),
	}

	var subscribers []models.Subscriber
	err := r.store.Update(subscribersCollection, &subscribers, func() error {
		for _, existing := range subscribers {
			if strings.EqualFold(existing.Email, email) {
				return fmt.Errorf("subscriber %s: %w", email, ErrDuplicate)
			}
		}
		subscribers = append(subscribers, sub)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriberRepositoryImpl) Delete(ctx context.Context, id string) error {
	var subscribers []models.Subscriber
	return r.store.Update(subscribersCollection, &subscribers, func() error {
		for i := range subscribers {
			if subscribers[i].ID == id {
				subscribers = append(subscribers[:i], subscribers[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("subscriber %s: %w", id, ErrNotFound)
	})
}

func (r *SubscriberRepositoryImpl) Count(ctx context.Context) (int, error) {
	var subscribers []models.Subscriber
	if err := r.store.LoadInto(subscribersCollection, &subscribers); err != nil {
		return 0, err
	}
	return len(subscribers), nil
}
