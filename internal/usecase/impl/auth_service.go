package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"crave/config"
	deliverycontext "crave/internal/delivery/context"
	"crave/internal/domain/entity"
	domainerrors "crave/internal/domain/errors"
	"crave/internal/domain/lifecycle"
	"crave/internal/domain/repository"
	"crave/internal/domain/service"
	"crave/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultMinPasswordLength  = 8
	defaultForcedSignOutDelay = 2 * time.Second
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager          repository.TransactionManager
	userRepo           repository.UserRepository
	adminRepo          repository.AdminRepository
	sessions           repository.SessionStore
	hasher             service.PasswordHasher
	tokenService       service.TokenService
	minPasswordLength  int
	forcedSignOutDelay time.Duration
	afterFunc          func(time.Duration, func()) *time.Timer
	now                func() time.Time
	logger             *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	AdminRepo    repository.AdminRepository
	Sessions     repository.SessionStore
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	srv := &authService{
		txManager:          params.TxManager,
		userRepo:           params.UserRepo,
		adminRepo:          params.AdminRepo,
		sessions:           params.Sessions,
		hasher:             params.Hasher,
		tokenService:       params.TokenService,
		minPasswordLength:  defaultMinPasswordLength,
		forcedSignOutDelay: defaultForcedSignOutDelay,
		afterFunc:          time.AfterFunc,
		now:                time.Now,
		logger:             params.Logger,
	}
	if params.Config != nil {
		if params.Config.Auth != nil && params.Config.Auth.MinPasswordLength > 0 {
			srv.minPasswordLength = params.Config.Auth.MinPasswordLength
		}
		if params.Config.Admin != nil && params.Config.Admin.ForcedSignOutDelay > 0 {
			srv.forcedSignOutDelay = params.Config.Admin.ForcedSignOutDelay
		}
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *authService) SignUp(ctx context.Context, input *usecase.Credentials) (*entity.User, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email and password are required")
	}
	email := normalizeEmail(input.Email)
	if !strings.Contains(email, "@") {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email is invalid")
	}
	if len(input.Password) < srv.minPasswordLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("password is too short")
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	now := srv.now()
	user := &entity.User{Email: email, PasswordHash: hash, CreatedAt: now, UpdatedAt: now}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("sign up")
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Debug("Registration completed", slog.String("userID", user.ID.String()))

	return user, nil
}

func (srv *authService) SignIn(ctx context.Context, input *usecase.Credentials) (*entity.AuthSession, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("sign in")
	}

	user, err := srv.userRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown email")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Sign-in rejected", slog.String("userID", user.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	srv.upgradePasswordHash(ctx, user, input.Password)

	var session *entity.AuthSession
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		session, err = srv.issueSession(ctx, repoFactory, user)

		return err
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User signed in",
		slog.String("userID", user.ID.String()),
		slog.String("sessionID", session.SessionID.String()),
	)

	return session, nil
}

// upgradePasswordHash re-hashes with the current cost. Failures only cost a
// retry at the next sign-in, so they are logged and sign-in proceeds.
func (srv *authService) upgradePasswordHash(ctx context.Context, user *entity.User, password string) {
	if !srv.hasher.NeedsRehash(user.PasswordHash) {
		return
	}

	hash, err := srv.hasher.Hash(password)
	if err == nil {
		err = srv.userRepo.UpdatePasswordHash(ctx, user.ID, hash)
	}
	if err != nil {
		srv.log(ctx).Warn("Failed to upgrade password hash",
			slog.String("userID", user.ID.String()),
			slog.Any("error", err),
		)

		return
	}

	user.PasswordHash = hash
	srv.log(ctx).Info("Password hash upgraded", slog.String("userID", user.ID.String()))
}

// AdminSignIn leaves no usable session behind for non-admins.
func (srv *authService) AdminSignIn(ctx context.Context, input *usecase.Credentials) (*entity.AuthSession, error) {
	session, err := srv.SignIn(ctx, input)
	if err != nil {
		return nil, err
	}

	if entity.ParseRoles(session.Roles).Contains(entity.RoleAdmin) {
		return session, nil
	}

	if err := srv.SignOut(ctx, session.SessionID); err != nil {
		srv.log(ctx).Error("Failed to sign out denied admin session",
			slog.String("sessionID", session.SessionID.String()),
			slog.Any("error", err),
		)
	}

	return nil, domainerrors.ErrAdminAccessDenied.WrapMessage("admin sign in")
}

func (srv *authService) SignOut(ctx context.Context, sessionID uuid.UUID) error {
	if err := srv.sessions.Revoke(ctx, sessionID, srv.now()); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to revoke session")
	}

	srv.log(ctx).Debug("Session revoked", slog.String("sessionID", sessionID.String()))

	return nil
}

// Refresh revokes the presented session and issues a new one in the same transaction.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*entity.AuthSession, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	var session *entity.AuthSession
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessions := repoFactory.SessionStore()

		current, err := sessions.FindByID(ctx, claims.SessionID)
		if errors.Is(err, repository.ErrSessionNotFound) {
			return domainerrors.ErrRefreshTokenInvalid.WrapMessage("unknown session")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find session")
		}
		if !current.Active(srv.now()) || current.UserID != claims.UserID {
			return domainerrors.ErrRefreshTokenInvalid.WrapMessage("session is no longer active")
		}

		if err := sessions.Revoke(ctx, current.ID, srv.now()); err != nil {
			return errors.Wrap(err, "failed to revoke session")
		}

		user, err := repoFactory.UserRepo().FindByID(ctx, current.UserID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrRefreshTokenInvalid.WrapMessage("user no longer exists")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		session, err = srv.issueSession(ctx, repoFactory, user)

		return err
	})
	if err != nil {
		return nil, err
	}

	return session, nil
}

func (srv *authService) CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound.WrapMessage("current user")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// Authenticate checks the token signature, then the session row, on every request.
func (srv *authService) Authenticate(ctx context.Context, accessToken string) (*usecase.Identity, error) {
	claims, err := srv.tokenService.ValidateAccessToken(accessToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrSessionInvalid, err.Error())
	}

	session, err := srv.sessions.FindByID(ctx, claims.SessionID)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil, domainerrors.ErrSessionInvalid.WrapMessage("unknown session")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find session")
	}
	if !session.Active(srv.now()) || session.UserID != claims.UserID {
		return nil, domainerrors.ErrSessionInvalid.WrapMessage("session is no longer active")
	}

	return &usecase.Identity{
		UserID:    claims.UserID,
		SessionID: session.ID,
		Roles:     entity.ParseRoles(claims.Roles),
	}, nil
}

// RequireAdmin re-reads the admin table on every call. A denied caller keeps its
// session for forcedSignOutDelay so the client can show the denial first.
func (srv *authService) RequireAdmin(ctx context.Context, identity *usecase.Identity) error {
	if identity == nil {
		return domainerrors.ErrSessionInvalid.WrapMessage("admin gate")
	}

	isAdmin, err := srv.adminRepo.IsAdmin(ctx, identity.UserID)
	if err != nil {
		return errors.Wrap(err, "failed to check admin flag")
	}
	if isAdmin {
		return nil
	}

	srv.log(ctx).Warn("Admin access denied, scheduling sign-out",
		slog.String("userID", identity.UserID.String()),
		slog.Duration("delay", srv.forcedSignOutDelay),
	)

	detached := context.WithoutCancel(ctx)
	sessionID := identity.SessionID
	srv.afterFunc(srv.forcedSignOutDelay, func() {
		signOutCtx, cancel := context.WithTimeout(detached, lifecycle.DefaultTimeout)
		defer cancel()

		if err := srv.SignOut(signOutCtx, sessionID); err != nil {
			srv.log(detached).Error("Forced sign-out failed",
				slog.String("sessionID", sessionID.String()),
				slog.Any("error", err),
			)
		}
	})

	return domainerrors.ErrAdminAccessDenied.WrapMessage("admin gate")
}

func (srv *authService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	removed, err := srv.sessions.DeleteExpired(ctx, srv.now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete expired sessions")
	}

	if removed > 0 {
		srv.log(ctx).Info("Expired sessions purged", slog.Int64("count", removed))
	}

	return removed, nil
}

// issueSession stores a session row and signs the token pair bound to it.
func (srv *authService) issueSession(ctx context.Context, repoFactory repository.RepositoryFactory, user *entity.User) (*entity.AuthSession, error) {
	roles := entity.Roles{entity.RoleCustomer}
	isAdmin, err := repoFactory.AdminRepo().IsAdmin(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check admin flag")
	}
	if isAdmin {
		roles = append(roles, entity.RoleAdmin)
	}

	sessionID, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session id")
	}

	now := srv.now()
	if err := repoFactory.SessionStore().Create(ctx, &entity.Session{
		ID:        sessionID,
		UserID:    user.ID,
		ExpiresAt: now.Add(srv.tokenService.GetRefreshTokenDuration()),
		CreatedAt: now,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, sessionID, roles.Strings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &entity.AuthSession{
		SessionID:    sessionID,
		UserID:       user.ID,
		Email:        user.Email,
		Roles:        roles.Strings(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    now.Add(srv.tokenService.GetAccessTokenDuration()),
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
