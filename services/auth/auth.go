// File: services/auth/auth.go
package auth

import (
	"context"

	employeeRepo "github.com/jpcunanan716/bestaccord-transportation-sub000/database/repository/employee"
	userRepo "github.com/jpcunanan716/bestaccord-transportation-sub000/database/repository/user"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/models"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/services/booking"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService issues and revokes sessions for the two login surfaces:
// office accounts (admin dashboard) and crew accounts (mobile app).
type AuthService interface {
	OfficeLogin(ctx context.Context, username, password string) (token string, user *models.User, err error)
	EmployeeLogin(ctx context.Context, employeeID, password string) (token string, employee *models.Employee, err error)
	RegisterUser(ctx context.Context, username, fullName, role, password string) (*models.User, error)
	Revoke(ctx context.Context, subject string) error
}

// DefaultAuthService is the production implementation.
type DefaultAuthService struct {
	Users     userRepo.UserRepository
	Employees employeeRepo.EmployeeRepository
}

// cacheToken stores the token hash in the auth cache so the middleware can
// validate without a database round trip. Redis being down is not fatal; the
// middleware falls back to the stored hash.
func cacheToken(ctx context.Context, subject, tokenHash string) {
	client := utils.GetAuthCacheClient()
	if client == nil {
		return
	}
	if err := client.Set(ctx, utils.AuthCachePrefix+subject, tokenHash, utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("auth cache write failed", zap.String("subject", subject), zap.Error(err))
	}
}

func (s *DefaultAuthService) OfficeLogin(ctx context.Context, username, password string) (string, *models.User, error) {
	if username == "" || password == "" {
		return "", nil, booking.NewValidationError("username and password are required")
	}

	user, err := s.Users.GetByUsername(username)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, booking.NewValidationError("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, booking.NewValidationError("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Role, utils.TokenTTL)
	if err != nil {
		return "", nil, err
	}

	tokenHash := utils.HashToken(token)
	if err := s.Users.UpdateSetDocument(user.ID, bson.M{"tokenHash": tokenHash}); err != nil {
		return "", nil, err
	}
	cacheToken(ctx, user.ID, tokenHash)

	user.PasswordHash = ""
	user.TokenHash = ""
	return token, user, nil
}

func (s *DefaultAuthService) EmployeeLogin(ctx context.Context, employeeID, password string) (string, *models.Employee, error) {
	if employeeID == "" || password == "" {
		return "", nil, booking.NewValidationError("employee id and password are required")
	}

	emp, err := s.Employees.GetByEmployeeID(employeeID)
	if err != nil {
		return "", nil, err
	}
	if emp == nil {
		return "", nil, booking.NewValidationError("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(password)); err != nil {
		return "", nil, booking.NewValidationError("invalid credentials")
	}

	token, err := utils.GenerateToken(emp.EmployeeID, string(emp.Role), utils.TokenTTL)
	if err != nil {
		return "", nil, err
	}

	tokenHash := utils.HashToken(token)
	if err := s.Employees.UpdateSetDocument(emp.EmployeeID, bson.M{"tokenHash": tokenHash}); err != nil {
		return "", nil, err
	}
	cacheToken(ctx, emp.EmployeeID, tokenHash)

	emp.PasswordHash = ""
	emp.TokenHash = ""
	return token, emp, nil
}

func (s *DefaultAuthService) RegisterUser(ctx context.Context, username, fullName, role, password string) (*models.User, error) {
	if role != "admin" && role != "staff" {
		return nil, booking.NewValidationError("role must be admin or staff")
	}
	if len(password) < 8 {
		return nil, booking.NewValidationError("password must be at least 8 characters")
	}

	existing, err := s.Users.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, booking.NewConflictError("username %s is already taken", username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		FullName:     fullName,
		Role:         role,
		PasswordHash: string(hash),
	}
	if err := s.Users.Create(user); err != nil {
		return nil, booking.NewConflictError("user could not be created: %v", err)
	}

	user.PasswordHash = ""
	return user, nil
}

// Revoke invalidates the subject's current session by clearing both the
// cached and the stored token hash.
func (s *DefaultAuthService) Revoke(ctx context.Context, subject string) error {
	if client := utils.GetAuthCacheClient(); client != nil {
		if err := client.Del(ctx, utils.AuthCachePrefix+subject).Err(); err != nil {
			utils.GetLogger().Warn("auth cache delete failed", zap.String("subject", subject), zap.Error(err))
		}
	}

	// The subject may be either surface; clear whichever record matches.
	if user, err := s.Users.GetByID(subject); err == nil && user != nil {
		return s.Users.UpdateSetDocument(subject, bson.M{"tokenHash": ""})
	}
	if emp, err := s.Employees.GetByEmployeeID(subject); err == nil && emp != nil {
		return s.Employees.UpdateSetDocument(subject, bson.M{"tokenHash": ""})
	}
	return nil
}
