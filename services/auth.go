package services

import (
	"context"
	"log"
	"time"

	"NavidentClinic/models"
	"NavidentClinic/role"
	"NavidentClinic/utils"
)

type AuthUserStore interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Insert(ctx context.Context, u *models.User) error
	Replace(ctx context.Context, u *models.User) error
}

type AuthService struct {
	users AuthUserStore
}

func NewAuthService(users AuthUserStore) *AuthService {
	return &AuthService{users: users}
}

/*
* SignIn verifies the credentials and issues a bearer token. A wrong
* username and a wrong password are indistinguishable to the caller.
 */
func (s *AuthService) SignIn(ctx context.Context, req *models.AuthRequest) (*models.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, utils.ValidationFailed(err)
	}
	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.VerifyPassword(user.Password, req.Password) {
		return nil, utils.Unauthenticated("Invalid username or password")
	}
	if !user.Usable() {
		return nil, utils.Unauthenticated("Account is not usable")
	}

	token, err := utils.GenerateToken(user.Username, user.Role)
	if err != nil {
		return nil, utils.Internal(err)
	}
	log.Println("User signed in:", user.Username)
	return &models.AuthResponse{
		Token:    token,
		UserID:   user.ID.Hex(),
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}, nil
}

// SignUp registers a staff account. The new account gets no token; the user
// signs in afterwards.
func (s *AuthService) SignUp(ctx context.Context, user *models.User) (*models.AuthResponse, error) {
	if err := user.Validate(); err != nil {
		return nil, utils.ValidationFailed(err)
	}
	if len(user.Password) < 6 {
		return nil, utils.InvalidArgument("Password must be at least 6 characters long")
	}

	taken, err := s.users.ExistsByUsername(ctx, user.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, utils.Conflict("Username is already taken: " + user.Username)
	}
	taken, err = s.users.ExistsByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, utils.Conflict("Email is already registered: " + user.Email)
	}

	hash, err := utils.HashPassword(user.Password)
	if err != nil {
		return nil, utils.Internal(err)
	}
	user.Password = hash
	user.Active = true
	user.Locked = false
	user.CredentialsExpired = false
	user.AccountExpired = false
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	if err := s.users.Insert(ctx, user); err != nil {
		return nil, err
	}
	log.Println("User registered:", user.Username, "with role", user.Role)
	return &models.AuthResponse{
		UserID:   user.ID.Hex(),
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}, nil
}

// Refresh issues a fresh token for an already authenticated principal.
func (s *AuthService) Refresh(ctx context.Context, username string) (*models.AuthResponse, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.NotFound("User", "username", username)
	}
	if !user.Usable() {
		return nil, utils.Unauthenticated("Account is not usable")
	}
	token, err := utils.GenerateToken(user.Username, user.Role)
	if err != nil {
		return nil, utils.Internal(err)
	}
	return &models.AuthResponse{
		Token:    token,
		UserID:   user.ID.Hex(),
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}, nil
}

/*
* EnsureAdminUser guarantees a usable administrator account exists at
* startup. An existing account keeps its password and email; only the role
* and the usability flags are forced.
 */
func (s *AuthService) EnsureAdminUser(ctx context.Context, username, password, email string) error {
	existing, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return err
	}

	if existing == nil {
		hash, err := utils.HashPassword(password)
		if err != nil {
			return err
		}
		admin := &models.User{
			Username:  username,
			Password:  hash,
			Email:     email,
			FirstName: "System",
			LastName:  "Administrator",
			Role:      role.Administrator,
			Active:    true,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := s.users.Insert(ctx, admin); err != nil {
			return err
		}
		log.Println("Bootstrap admin user created:", username)
		return nil
	}

	if existing.Role == role.Administrator && existing.Usable() {
		return nil
	}
	existing.Role = role.Administrator
	existing.Active = true
	existing.Locked = false
	existing.CredentialsExpired = false
	existing.AccountExpired = false
	existing.UpdatedAt = time.Now()
	if err := s.users.Replace(ctx, existing); err != nil {
		return err
	}
	log.Println("Bootstrap admin user repaired:", username)
	return nil
}
