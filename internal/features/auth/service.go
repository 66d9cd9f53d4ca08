package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-pm/internal/common/models"
	"go-pm/internal/features/audit"
	"go-pm/internal/features/user"
	"go-pm/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// TenantCreator creates the tenant a fresh registration belongs to.
type TenantCreator interface {
	Create(ctx context.Context, tenant *models.Tenant) error
}

type AuthService interface {
	Register(ctx context.Context, name, email, password, tenantName string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}

type AuthServiceImpl struct {
	UserRepo     user.UserRepository
	TenantRepo   TenantCreator
	AuditService audit.AuditService
}

func NewAuthService(userRepo user.UserRepository, tenantRepo TenantCreator, auditService audit.AuditService) AuthService {
	return &AuthServiceImpl{
		UserRepo:     userRepo,
		TenantRepo:   tenantRepo,
		AuditService: auditService,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, name, email, password, tenantName string) (*models.User, error) {
	if existing, err := s.UserRepo.FindByEmailGlobal(ctx, email); err == nil && existing != nil {
		return nil, errors.New("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	if tenantName == "" {
		tenantName = fmt.Sprintf("%s's Workspace", name)
	}
	tenant := &models.Tenant{
		ID:        primitive.NewObjectID(),
		Name:      tenantName,
		Domain:    utils.Slugify(tenantName) + "-" + primitive.NewObjectID().Hex()[:4],
		Plan:      "free",
		Status:    "active",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.TenantRepo.Create(ctx, tenant); err != nil {
		return nil, err
	}

	ctx = context.WithValue(ctx, models.TenantIDKey, tenant.ID.Hex())

	newUser := &models.User{
		ID:        primitive.NewObjectID(),
		TenantID:  tenant.ID,
		Name:      name,
		Email:     email,
		Password:  string(hashed),
		Role:      "admin",
		Status:    "active",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.UserRepo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	_ = s.AuditService.LogChange(ctx, models.AuditActionCreate, "users", newUser.ID.Hex(), map[string]models.Change{
		"user": {New: email},
	})

	return newUser, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.UserRepo.FindByEmailGlobal(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", errors.New("invalid credentials")
		}
		return "", err
	}

	if u.Status != "active" {
		return "", errors.New("account is not active")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(u.ID, u.TenantID, u.Role)
	if err != nil {
		return "", err
	}

	_ = s.UserRepo.TouchLastLogin(ctx, u.ID)

	ctx = context.WithValue(ctx, models.TenantIDKey, u.TenantID.Hex())
	_ = s.AuditService.LogChange(ctx, models.AuditActionLogin, "users", u.ID.Hex(), nil)

	return token, nil
}
