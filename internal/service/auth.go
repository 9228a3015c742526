package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"propertyhub-backend/internal/config"
	"propertyhub-backend/internal/domain"
	"propertyhub-backend/internal/logger"
	"propertyhub-backend/internal/repository"
	"propertyhub-backend/internal/security"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type authService struct {
	tenantRepo   repository.TenantRepository
	landlordRepo repository.LandlordRepository
	tokens       security.TokenManager
	landlord     config.LandlordConfig
}

func NewAuthService(tenantRepo repository.TenantRepository, landlordRepo repository.LandlordRepository, tokens security.TokenManager, landlord config.LandlordConfig) AuthService {
	return &authService{
		tenantRepo:   tenantRepo,
		landlordRepo: landlordRepo,
		tokens:       tokens,
		landlord:     landlord,
	}
}

func (s *authService) Signup(ctx context.Context, req SignupRequest) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}
	role, ok := domain.ParseRole(req.Role)
	if !ok {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, req.Role)
	}

	if role == domain.RoleLandlord {
		return s.signupLandlord(ctx, email, req)
	}
	return s.signupTenant(ctx, email, req)
}

func (s *authService) signupTenant(ctx context.Context, email string, req SignupRequest) (*AuthResult, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required for tenant signup", domain.ErrInvalidInput)
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	tenant := &domain.Tenant{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.tenantRepo.Create(ctx, tenant); err != nil {
		return nil, err
	}
	logger.Info("Tenant registered", "tenantID", tenant.ID)

	return s.issue(tenant.ID, tenant.Name, tenant.Email, domain.RoleTenant)
}

func (s *authService) signupLandlord(ctx context.Context, email string, req SignupRequest) (*AuthResult, error) {
	if !strings.EqualFold(email, s.landlord.Email) {
		return nil, fmt.Errorf("%w: only the authorized landlord email may register", domain.ErrForbidden)
	}
	if subtle.ConstantTimeCompare([]byte(req.AccessCode), []byte(s.landlord.AccessCode)) != 1 {
		return nil, fmt.Errorf("%w: invalid access code", domain.ErrForbidden)
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	landlord := &domain.Landlord{
		Name:         s.landlord.Name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.landlordRepo.Create(ctx, landlord); err != nil {
		return nil, err
	}
	logger.Info("Landlord registered", "landlordID", landlord.ID)

	return s.issue(landlord.ID, landlord.Name, landlord.Email, domain.RoleLandlord)
}

// Login checks tenants first, then landlords
func (s *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}

	tenant, err := s.tenantRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if tenant != nil && security.VerifyPassword(tenant.PasswordHash, password) {
		return s.issue(tenant.ID, tenant.Name, tenant.Email, domain.RoleTenant)
	}

	landlord, err := s.landlordRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if landlord != nil && security.VerifyPassword(landlord.PasswordHash, password) {
		return s.issue(landlord.ID, landlord.Name, landlord.Email, domain.RoleLandlord)
	}

	logger.Warn("Failed login attempt", "email", email)
	return nil, ErrInvalidCredentials
}

func (s *authService) issue(id int32, name, email string, role domain.Role) (*AuthResult, error) {
	token, err := s.tokens.GenerateAccessToken(id, email, role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &AuthResult{
		Token: token,
		User: AuthUser{
			ID:    id,
			Name:  name,
			Email: email,
			Role:  role,
		},
	}, nil
}
