package savedview

import (
	"context"
	"fmt"
	"strings"

	common_models "go-pm/internal/common/models"
	"go-pm/internal/features/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuditLogger records saved view mutations.
type AuditLogger interface {
	LogChange(ctx context.Context, action common_models.AuditAction, entityKind string, recordID string, changes map[string]common_models.Change) error
}

type SavedViewService interface {
	SaveView(ctx context.Context, view *SavedView) error
	GetView(ctx context.Context, id string) (*SavedView, error)
	DeleteView(ctx context.Context, id string, userID primitive.ObjectID) error
	ListUserViews(ctx context.Context, userID primitive.ObjectID, kind string) ([]SavedView, error)
	ListPublicViews(ctx context.Context, kind string) ([]SavedView, error)
}

type SavedViewServiceImpl struct {
	Repo  SavedViewRepository
	Audit AuditLogger
}

func NewSavedViewService(repo SavedViewRepository, auditService AuditLogger) SavedViewService {
	return &SavedViewServiceImpl{
		Repo:  repo,
		Audit: auditService,
	}
}

// SaveView persists a named view. A blank name is rejected before any write
// happens.
func (s *SavedViewServiceImpl) SaveView(ctx context.Context, view *SavedView) error {
	view.Name = strings.TrimSpace(view.Name)
	if view.Name == "" {
		return fmt.Errorf("view name is required")
	}
	if _, err := entity.ParseKind(view.Type); err != nil {
		return err
	}
	if view.Filters == nil {
		view.Filters = map[string]string{}
	}

	if err := s.Repo.Create(ctx, view); err != nil {
		return err
	}

	_ = s.Audit.LogChange(ctx, common_models.AuditActionSettings, view.Type, view.ID.Hex(), map[string]common_models.Change{
		"saved_view": {New: view.Name},
	})
	return nil
}

func (s *SavedViewServiceImpl) GetView(ctx context.Context, id string) (*SavedView, error) {
	return s.Repo.Get(ctx, id)
}

func (s *SavedViewServiceImpl) DeleteView(ctx context.Context, id string, userID primitive.ObjectID) error {
	if err := s.Repo.Delete(ctx, id, userID); err != nil {
		return err
	}
	_ = s.Audit.LogChange(ctx, common_models.AuditActionSettings, "", id, map[string]common_models.Change{
		"saved_view": {Old: id, New: "DELETED"},
	})
	return nil
}

func (s *SavedViewServiceImpl) ListUserViews(ctx context.Context, userID primitive.ObjectID, kind string) ([]SavedView, error) {
	return s.Repo.FindByUser(ctx, userID, kind)
}

func (s *SavedViewServiceImpl) ListPublicViews(ctx context.Context, kind string) ([]SavedView, error) {
	return s.Repo.FindPublic(ctx, kind)
}
