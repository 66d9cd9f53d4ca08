package audit

import (
	"context"
	"time"

	common_models "go-pm/internal/common/models"
	"go-pm/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const systemActor = "system"

type UserFinder interface {
	FindByIDs(ctx context.Context, ids []string) ([]common_models.User, error)
}

type AuditService interface {
	LogChange(ctx context.Context, action common_models.AuditAction, entityKind string, recordID string, changes map[string]common_models.Change) error
	ListLogs(ctx context.Context, q LogQuery, page, limit int64) ([]common_models.AuditLog, error)
}

type AuditServiceImpl struct {
	Repo     AuditRepository
	UserRepo UserFinder
}

func NewAuditService(repo AuditRepository, userRepo UserFinder) AuditService {
	return &AuditServiceImpl{
		Repo:     repo,
		UserRepo: userRepo,
	}
}

func (s *AuditServiceImpl) LogChange(ctx context.Context, action common_models.AuditAction, entityKind string, recordID string, changes map[string]common_models.Change) error {
	actorID := systemActor
	if claims, ok := ctx.Value(utils.UserClaimsKey).(*utils.UserClaims); ok {
		actorID = claims.UserID
	}

	return s.Repo.Create(ctx, common_models.AuditLog{
		ID:        primitive.NewObjectID(),
		Action:    action,
		Entity:    entityKind,
		RecordID:  recordID,
		ActorID:   actorID,
		Changes:   changes,
		Timestamp: time.Now(),
	})
}

func (s *AuditServiceImpl) ListLogs(ctx context.Context, q LogQuery, page, limit int64) ([]common_models.AuditLog, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	logs, err := s.Repo.List(ctx, q, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	names := s.actorNames(ctx, logs)
	for i := range logs {
		logs[i].ActorName = names[logs[i].ActorID]
	}
	return logs, nil
}

// actorNames resolves display names for every distinct actor in one user
// lookup. Deleted actors keep a generic label so old lines still render.
func (s *AuditServiceImpl) actorNames(ctx context.Context, logs []common_models.AuditLog) map[string]string {
	names := map[string]string{
		"":          "System",
		systemActor: "System",
	}

	var ids []string
	for _, l := range logs {
		if _, seen := names[l.ActorID]; !seen {
			names[l.ActorID] = "Unknown User"
			ids = append(ids, l.ActorID)
		}
	}
	if len(ids) == 0 {
		return names
	}

	users, err := s.UserRepo.FindByIDs(ctx, ids)
	if err != nil {
		return names
	}
	for _, u := range users {
		names[u.ID.Hex()] = u.Name
	}
	return names
}
