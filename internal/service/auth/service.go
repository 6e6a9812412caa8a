package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/worklane-hq/hrm-backend-go/internal/domain/auth"
	"github.com/worklane-hq/hrm-backend-go/internal/domain/user"
	"github.com/worklane-hq/hrm-backend-go/internal/pkg/database"
	"github.com/worklane-hq/hrm-backend-go/internal/pkg/jwt"
	"github.com/worklane-hq/hrm-backend-go/internal/pkg/oauth"
	"github.com/worklane-hq/hrm-backend-go/internal/pkg/querycache"
	"github.com/worklane-hq/hrm-backend-go/internal/repository/postgresql"
)

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	jwt.Service
	postgresql.JWTRepository
	google oauth.GoogleService
	cache  *querycache.Cache
}

func NewAuthService(db *database.DB, userRepository user.UserRepository, jwtService jwt.Service, jwtRepository postgresql.JWTRepository, google oauth.GoogleService, cache *querycache.Cache) *AuthServiceImpl {
	return &AuthServiceImpl{
		db:             db,
		UserRepository: userRepository,
		Service:        jwtService,
		JWTRepository:  jwtRepository,
		google:         google,
		cache:          cache,
	}
}

func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (user.User, error) {
	if err := req.Validate(); err != nil {
		return user.User{}, err
	}

	exists, err := a.UserRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to check existing email: %w", err)
	}
	if exists {
		return user.User{}, user.ErrUserEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashed := string(hash)

	created, err := a.UserRepository.Create(ctx, user.User{
		Email:        req.Email,
		PasswordHash: &hashed,
		Role:         user.RoleEmployee,
	})
	if err != nil {
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return created, nil
}

func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := loginReq.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, loginReq.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if userData.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(loginReq.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(ctx, userData, sessionTrackReq)
}

// LoginWithGoogle returns the redirect URL that starts the OAuth2 flow.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, userAgent string) (redirectURL, state string, err error) {
	if a.google == nil {
		return "", "", auth.ErrGoogleSignInDisabled
	}
	state = a.google.GenerateState(userAgent)
	return a.google.RedirectURL(state), state, nil
}

// OAuthCallbackGoogle finishes the OAuth2 flow and signs the user in,
// linking the Google account to an existing user by email.
func (a *AuthServiceImpl) OAuthCallbackGoogle(ctx context.Context, code string, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if a.google == nil {
		return auth.TokenResponse{}, auth.ErrGoogleSignInDisabled
	}

	token, err := a.google.VerifyToken(ctx, code)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to exchange oauth code: %w", err)
	}

	info, err := a.google.VerifyUser(ctx, token)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to fetch google user: %w", err)
	}

	userData, err := a.UserRepository.LinkGoogleAccount(ctx, info.GoogleID, info.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrUserNotFound
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to link google account: %w", err)
	}

	return a.issueTokens(ctx, userData, sessionTrackReq)
}

func (a *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	revoked, err := a.JWTRepository.IsRefreshTokenRevoked(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if revoked {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	claims, err := a.decodeRefreshClaims(ctx, refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrUserNotFound
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	var tokenResponse auth.TokenResponse
	tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.EmployeeID, userData.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return tokenResponse, nil
}

// Logout revokes the refresh token and clears the session's cached query
// results in full.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if err := a.JWTRepository.RevokeRefreshToken(ctx, refreshToken); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	claims, err := a.decodeRefreshClaims(ctx, refreshToken)
	if err == nil {
		if userID, ok := claims["user_id"].(string); ok && userID != "" {
			a.invalidateSessionCache(ctx, userID)
		}
	}

	return nil
}

func (a *AuthServiceImpl) issueTokens(ctx context.Context, userData user.User, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse
	var err error

	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, postgresql.TxKey, tx)

		tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.EmployeeID, userData.Role)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(userData.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		if err := a.CreateRefreshToken(txCtx, userData.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, sessionTrackReq); err != nil {
			return fmt.Errorf("failed to save refresh token: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	// A fresh sign-in must not see results cached under a previous session
	// of the same user.
	a.cache.InvalidatePrefix(querycache.Key(string(userData.Role), userData.ID) + ":")

	return tokenResponse, nil
}

func (a *AuthServiceImpl) invalidateSessionCache(ctx context.Context, userID string) {
	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return
	}
	a.cache.InvalidatePrefix(querycache.Key(string(userData.Role), userData.ID) + ":")
}

func (a *AuthServiceImpl) decodeRefreshClaims(ctx context.Context, token string) (map[string]interface{}, error) {
	decoded, err := jwtauth.VerifyToken(a.Service.JWTAuth(), token)
	if err != nil {
		return nil, err
	}

	claims, err := decoded.AsMap(ctx)
	if err != nil {
		return nil, err
	}

	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "refresh" {
		return nil, auth.ErrInvalidToken
	}

	return claims, nil
}
