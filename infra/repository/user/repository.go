package user

import (
	"context"
	"errors"

	"github.com/amirasaad/pocketpilot/pkg/domain"
	"github.com/amirasaad/pocketpilot/pkg/dto"
	"github.com/amirasaad/pocketpilot/pkg/repository/user"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a GORM-backed user repository.
func New(db *gorm.DB) user.Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	create *dto.UserCreate,
) error {
	u := &User{
		ID:           create.ID,
		Username:     create.Username,
		Email:        create.Email,
		Password:     create.Password,
		Theme:        create.Theme,
		Language:     create.Language,
		ProfilePhoto: create.ProfilePhoto,
	}
	err := r.db.WithContext(ctx).Create(u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrAlreadyExists
	}
	return err
}

func (r *repository) Update(
	ctx context.Context,
	id uuid.UUID,
	uu *dto.UserUpdate,
) error {
	updates := make(map[string]any)

	if uu.Email != nil {
		updates["email"] = *uu.Email
	}
	if uu.Password != nil {
		updates["password"] = *uu.Password
	}
	if uu.Theme != nil {
		updates["theme"] = *uu.Theme
	}
	if uu.Language != nil {
		updates["language"] = *uu.Language
	}
	if uu.ProfilePhoto != nil {
		updates["profile_photo"] = *uu.ProfilePhoto
	}

	if len(updates) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).
		Updates(updates).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrAlreadyExists
	}
	return err
}

func (r *repository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*dto.UserRead, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (*dto.UserRead, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *repository) GetByUsername(
	ctx context.Context,
	username string,
) (*dto.UserRead, error) {
	return r.first(ctx, "username = ?", username)
}

func (r *repository) ExistsByEmail(
	ctx context.Context,
	email string,
) (bool, error) {
	return r.exists(ctx, "email = ?", email)
}

func (r *repository) ExistsByUsername(
	ctx context.Context,
	username string,
) (bool, error) {
	return r.exists(ctx, "username = ?", username)
}

func (r *repository) first(ctx context.Context, query string, arg any) (*dto.UserRead, error) {
	var u User
	if err := r.db.WithContext(ctx).Where(query, arg).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&u), nil
}

func (r *repository) exists(ctx context.Context, query string, arg any) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&User{}).Where(query, arg).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func mapModelToDTO(u *User) *dto.UserRead {
	return &dto.UserRead{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		HashedPassword: u.Password,
		Theme:          u.Theme,
		Language:       u.Language,
		ProfilePhoto:   u.ProfilePhoto,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
