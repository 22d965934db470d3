package services

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"NavidentClinic/models"
	"NavidentClinic/utils"
)

type UserStore interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Insert(ctx context.Context, u *models.User) error
	Replace(ctx context.Context, u *models.User) error
	DeleteByID(ctx context.Context, id string) (bool, error)
	FindPage(ctx context.Context, page, size int64, sortBy, sortDir string) ([]models.User, int64, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Search(ctx context.Context, query string) ([]models.User, error)
}

// UserService is the administrator facing account management. Responses
// never carry the password hash.
type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

func sanitize(u *models.User) *models.User {
	u.Password = ""
	return u
}

func sanitizeAll(users []models.User) []models.User {
	for i := range users {
		users[i].Password = ""
	}
	return users
}

func (s *UserService) Create(ctx context.Context, in *models.User) (*models.User, error) {
	if err := in.Validate(); err != nil {
		return nil, utils.ValidationFailed(err)
	}
	if len(in.Password) < 6 {
		return nil, utils.InvalidArgument("Password must be at least 6 characters long")
	}

	taken, err := s.users.ExistsByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, utils.Conflict("Username is already taken: " + in.Username)
	}
	taken, err = s.users.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, utils.Conflict("Email is already registered: " + in.Email)
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, utils.Internal(err)
	}
	in.Password = hash
	in.ID = primitive.ObjectID{}
	in.Active = true
	in.CreatedAt = time.Now()
	in.UpdatedAt = time.Now()

	if err := s.users.Insert(ctx, in); err != nil {
		return nil, err
	}
	log.Println("User created:", in.Username, "with role", in.Role)
	return sanitize(in), nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, utils.NotFound("User", "id", id)
	}
	return sanitize(u), nil
}

// Update changes profile fields and the role. The password only changes
// when the request carries a new one.
func (s *UserService) Update(ctx context.Context, id string, in *models.User) (*models.User, error) {
	existing, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, utils.NotFound("User", "id", id)
	}

	in.Username = existing.Username
	if in.Email == "" {
		in.Email = existing.Email
	}
	if err := in.Validate(); err != nil {
		return nil, utils.ValidationFailed(err)
	}

	existing.Email = in.Email
	existing.FirstName = in.FirstName
	existing.LastName = in.LastName
	existing.Role = in.Role
	if in.Password != "" {
		if len(in.Password) < 6 {
			return nil, utils.InvalidArgument("Password must be at least 6 characters long")
		}
		hash, err := utils.HashPassword(in.Password)
		if err != nil {
			return nil, utils.Internal(err)
		}
		existing.Password = hash
	}
	existing.UpdatedAt = time.Now()

	if err := s.users.Replace(ctx, existing); err != nil {
		return nil, err
	}
	return sanitize(existing), nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	deleted, err := s.users.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return utils.NotFound("User", "id", id)
	}
	log.Println("User deleted:", id)
	return nil
}

func (s *UserService) GetPage(ctx context.Context, page, size int64, sortBy, sortDir string) (*models.PageResponse, error) {
	users, total, err := s.users.FindPage(ctx, page, size, sortBy, sortDir)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	resp := models.NewPageResponse(sanitizeAll(users), page, size, total)
	return &resp, nil
}

func (s *UserService) GetAll(ctx context.Context) ([]models.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return sanitizeAll(users), nil
}

func (s *UserService) Search(ctx context.Context, query string) ([]models.User, error) {
	users, err := s.users.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return sanitizeAll(users), nil
}

// ToggleActive flips the account's active flag.
func (s *UserService) ToggleActive(ctx context.Context, id string) (*models.User, error) {
	existing, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, utils.NotFound("User", "id", id)
	}
	existing.Active = !existing.Active
	existing.UpdatedAt = time.Now()
	if err := s.users.Replace(ctx, existing); err != nil {
		return nil, err
	}
	log.Println("User", existing.Username, "active set to", existing.Active)
	return sanitize(existing), nil
}

// SetPassword replaces the account's password. Administrator use only; no
// current password check is made.
func (s *UserService) SetPassword(ctx context.Context, id, newPassword string) error {
	if len(newPassword) < 6 {
		return utils.InvalidArgument("Password must be at least 6 characters long")
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return utils.NotFound("User", "id", id)
	}
	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return utils.Internal(err)
	}
	user.Password = hash
	user.UpdatedAt = time.Now()
	if err := s.users.Replace(ctx, user); err != nil {
		return err
	}
	log.Println("Password changed for user:", user.Username)
	return nil
}
