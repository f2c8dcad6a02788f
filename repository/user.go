package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/videomotion/video-motion-api/entity"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *entity.User) error {
	if user == nil {
		return errors.New("user cannot be nil")
	}
	return translateError(r.db.Create(user).Error)
}

func (r *UserRepository) GetByID(id uuid.UUID) (*entity.User, error) {
	var user entity.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *UserRepository) GetByUsername(username string) (*entity.User, error) {
	var user entity.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

// GetByIdentifier resolves a login identifier that may be a username or an
// email address.
func (r *UserRepository) GetByIdentifier(identifier string) (*entity.User, error) {
	var user entity.User
	err := r.db.Where("username = ? OR email = ?", identifier, identifier).First(&user).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *UserRepository) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	var count int64
	err := r.db.Model(&entity.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) Update(user *entity.User) error {
	if user == nil {
		return errors.New("user cannot be nil")
	}
	return translateError(r.db.Save(user).Error)
}

func (r *UserRepository) UpdateRefreshToken(id uuid.UUID, refreshToken string) error {
	return translateError(r.db.Model(&entity.User{}).
		Where("id = ?", id).
		Update("refresh_token", refreshToken).Error)
}

func (r *UserRepository) UpdatePassword(id uuid.UUID, hashed string) error {
	return translateError(r.db.Model(&entity.User{}).
		Where("id = ?", id).
		Update("password", hashed).Error)
}

// UpdateAccount patches fullname/email; empty values are left untouched.
func (r *UserRepository) UpdateAccount(id uuid.UUID, fullname, email string) (*entity.User, error) {
	updates := map[string]interface{}{}
	if fullname != "" {
		updates["fullname"] = fullname
	}
	if email != "" {
		updates["email"] = email
	}

	if len(updates) > 0 {
		result := r.db.Model(&entity.User{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, translateError(result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}

	return r.GetByID(id)
}

func (r *UserRepository) UpdateAvatar(id uuid.UUID, avatarURL string) (*entity.User, error) {
	return r.updateAsset(id, "avatar", avatarURL)
}

func (r *UserRepository) UpdateCoverImage(id uuid.UUID, coverURL string) (*entity.User, error) {
	return r.updateAsset(id, "cover_image", coverURL)
}

func (r *UserRepository) updateAsset(id uuid.UUID, column, url string) (*entity.User, error) {
	result := r.db.Model(&entity.User{}).Where("id = ?", id).Update(column, url)
	if result.Error != nil {
		return nil, translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(id)
}
