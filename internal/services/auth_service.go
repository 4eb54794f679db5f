package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/mertdogan/expense-tracker-api/internal/config"
	"github.com/mertdogan/expense-tracker-api/internal/dto"
	"github.com/mertdogan/expense-tracker-api/internal/models"
	"gorm.io/gorm"
)

var (
	ErrAuthentication = errors.New("authentication failed")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenInvalid   = errors.New("invalid token")
	ErrUserNotFound   = errors.New("user not found")
)

type AuthService struct {
	db       *gorm.DB
	cfg      *config.Config
	verifier *GoogleVerifier
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{
		db:       db,
		cfg:      cfg,
		verifier: NewGoogleVerifier(cfg.GoogleTokenInfoURL, cfg.GoogleClientID, cfg.AuthTimeout),
	}
}

// SignIn verifies the Google ID token, finds or creates the user, and issues
// a session token. First sign-in also creates the default settings row.
func (s *AuthService) SignIn(ctx context.Context, idToken string) (*dto.AuthResponse, error) {
	identity, err := s.verifier.Verify(ctx, idToken)
	if err != nil {
		return nil, err
	}

	user, err := s.findOrCreateUser(identity)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.IssueToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		User: dto.UserResponse{
			ID:      user.ID,
			Email:   user.Email,
			Name:    user.Name,
			Picture: user.Picture,
		},
	}, nil
}

// CurrentUser returns the profile for an authenticated user id.
func (s *AuthService) CurrentUser(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}

func (s *AuthService) findOrCreateUser(identity *GoogleIdentity) (*models.User, error) {
	var user models.User
	err := s.db.Where("google_id = ?", identity.GoogleID).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	user = models.User{
		GoogleID: identity.GoogleID,
		Email:    identity.Email,
		Name:     identity.Name,
		Picture:  identity.Picture,
		IsActive: true,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&models.UserSettings{
			UserID:   user.ID,
			Theme:    models.DefaultTheme,
			Currency: models.DefaultCurrency,
		}).Error
	})
	if err != nil {
		// A concurrent first sign-in may have won the insert; the unique index
		// on google_id guarantees a single surviving row to fall back to.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing models.User
			if ferr := s.db.Where("google_id = ?", identity.GoogleID).First(&existing).Error; ferr == nil {
				return &existing, nil
			}
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("user created", "user_id", user.ID, "email", user.Email)
	return &user, nil
}

// IssueToken mints a signed session token bound to the user id, expiring
// JWTExpiry (24h by default) from now. Sessions are stateless; there is no
// refresh or revocation path.
func (s *AuthService) IssueToken(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"iat":     now.Unix(),
		"exp":     now.Add(s.cfg.JWTExpiry).Unix(),
		"jti":     uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// ValidateToken checks signature and expiry and returns the embedded user id.
func (s *AuthService) ValidateToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, ErrTokenInvalid
	}

	userID, ok := claims["user_id"].(float64)
	if !ok || userID <= 0 {
		return 0, ErrTokenInvalid
	}

	return uint(userID), nil
}
