package preference

import (
	"context"
	"fmt"

	"go-pm/pkg/dataview"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// knownKeys is the closed set of preference keys clients may write.
var knownKeys = map[string]bool{
	dataview.DensityKey: true,
	"theme":             true,
}

type PreferenceService interface {
	Get(ctx context.Context, userID primitive.ObjectID, key string) (string, error)
	Set(ctx context.Context, userID primitive.ObjectID, key, value string) error
	List(ctx context.Context, userID primitive.ObjectID) ([]Preference, error)
	StoreFor(userID primitive.ObjectID) dataview.PreferenceStore
}

type PreferenceServiceImpl struct {
	Repo PreferenceRepository
}

func NewPreferenceService(repo PreferenceRepository) PreferenceService {
	return &PreferenceServiceImpl{Repo: repo}
}

func (s *PreferenceServiceImpl) Get(ctx context.Context, userID primitive.ObjectID, key string) (string, error) {
	return s.Repo.Get(ctx, userID, key)
}

func (s *PreferenceServiceImpl) Set(ctx context.Context, userID primitive.ObjectID, key, value string) error {
	if !knownKeys[key] {
		return fmt.Errorf("unknown preference key %q", key)
	}
	return s.Repo.Set(ctx, userID, key, value)
}

func (s *PreferenceServiceImpl) List(ctx context.Context, userID primitive.ObjectID) ([]Preference, error) {
	return s.Repo.List(ctx, userID)
}

// StoreFor binds the repository to one user, giving view controllers a plain
// key-value store.
func (s *PreferenceServiceImpl) StoreFor(userID primitive.ObjectID) dataview.PreferenceStore {
	return &userStore{repo: s.Repo, userID: userID}
}

type userStore struct {
	repo   PreferenceRepository
	userID primitive.ObjectID
}

func (u *userStore) Get(ctx context.Context, key string) (string, error) {
	return u.repo.Get(ctx, u.userID, key)
}

func (u *userStore) Set(ctx context.Context, key, value string) error {
	return u.repo.Set(ctx, u.userID, key, value)
}
