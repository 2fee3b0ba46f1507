package postgres

import (
	"context"
	"strings"
	"time"

	"crave/internal/domain/entity"
	domainerrors "crave/internal/domain/errors"
	"crave/internal/domain/repository"
	"crave/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate user id")
		}
		user.ID = id
	}
	userM := &model.UserModel{
		ID:           user.ID,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
	}

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrUserAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail matches case-insensitively, mirroring the unique index on LOWER(email).
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("password_hash", hash)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update password hash")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// adminRepository implements the repository.AdminRepository interface.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

func (repo *adminRepository) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	var adminM model.AdminUserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", userID).
		First(&adminM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to read admin flag")
	}

	return adminM.IsAdmin, nil
}

// sessionStore implements the repository.SessionStore interface.
type sessionStore struct {
	db *gorm.DB
}

// NewSessionStore is the constructor for sessionStore.
func NewSessionStore(db *gorm.DB) repository.SessionStore {
	return &sessionStore{db: db}
}

func (store *sessionStore) Create(ctx context.Context, session *entity.Session) error {
	if session.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate session id")
		}
		session.ID = id
	}
	sessionM := &model.SessionModel{
		ID:        session.ID,
		UserID:    session.UserID,
		ExpiresAt: session.ExpiresAt,
		RevokedAt: session.RevokedAt,
	}

	if err := store.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("session references an unknown user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	session.CreatedAt = sessionM.CreatedAt

	return nil
}

func (store *sessionStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	var sessionM model.SessionModel

	if err := store.db.WithContext(ctx).
		Where("id = ?", id).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	return &entity.Session{
		ID:        sessionM.ID,
		UserID:    sessionM.UserID,
		ExpiresAt: sessionM.ExpiresAt,
		RevokedAt: sessionM.RevokedAt,
		CreatedAt: sessionM.CreatedAt,
	}, nil
}

func (store *sessionStore) Revoke(ctx context.Context, id uuid.UUID, at time.Time) error {
	if err := store.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", at).Error; err != nil {
		return errors.Wrap(err, "failed to revoke session")
	}

	return nil
}

func (store *sessionStore) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result := store.db.WithContext(ctx).
		Where("expires_at < ?", before).
		Delete(&model.SessionModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete expired sessions")
	}

	return result.RowsAffected, nil
}
