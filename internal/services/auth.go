// Package services holds the business rules between the HTTP handlers and
// the repositories. Services talk to storage through small consumer
// interfaces and report failures through sentinel errors.
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/rollodex/brandcentral/internal/jwt"
	"github.com/rollodex/brandcentral/internal/models"
	"github.com/rollodex/brandcentral/internal/roles"
)

// passwordHashCost is the bcrypt work factor for new passwords.
const passwordHashCost = 12

var (
	// ErrEmailExists is returned when registering an already-taken email.
	ErrEmailExists = errors.New("email already registered")

	// ErrInvalidCredentials covers every login failure: unknown email,
	// wrong password and deactivated account are indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserReader reads user records for authentication.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter persists user records for authentication.
type UserWriter interface {
	Create(ctx context.Context, user *models.UserDB) error
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}

// BrandCreator creates the companion brand profile at registration.
type BrandCreator interface {
	Create(ctx context.Context, brand *models.BrandDB) error
}

// RetailerCreator creates the companion retailer profile at registration.
type RetailerCreator interface {
	Create(ctx context.Context, retailer *models.RetailerDB) error
}

// PreferencesCreator seeds default notification preferences.
type PreferencesCreator interface {
	CreateDefaults(ctx context.Context, userID uuid.UUID) error
}

// TokenIssuer mints access tokens.
type TokenIssuer interface {
	Generate(ctx context.Context, id jwt.Identity) (string, error)
}

// AuthService implements registration and login.
type AuthService struct {
	reader    UserReader
	writer    UserWriter
	brands    BrandCreator
	retailers RetailerCreator
	prefs     PreferencesCreator
	activity  ActivityWriter
	tokens    TokenIssuer
}

func NewAuthService(
	reader UserReader,
	writer UserWriter,
	brands BrandCreator,
	retailers RetailerCreator,
	prefs PreferencesCreator,
	activity ActivityWriter,
	tokens TokenIssuer,
) *AuthService {
	return &AuthService{
		reader:    reader,
		writer:    writer,
		brands:    brands,
		retailers: retailers,
		prefs:     prefs,
		activity:  activity,
		tokens:    tokens,
	}
}

// RegisterParams carries the validated registration input.
type RegisterParams struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	CompanyName string
	CompanyType roles.CompanyType
	Phone       *string
	Title       *string
}

// Register creates the user, its companion company profile, default
// notification preferences and the audit row, then issues a token. The
// caller wraps the whole call in one transaction.
func (svc *AuthService) Register(ctx context.Context, p RegisterParams) (string, *models.UserDB, error) {
	email := NormalizeEmail(p.Email)

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if existing != nil {
		return "", nil, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), passwordHashCost)
	if err != nil {
		return "", nil, err
	}

	user := &models.UserDB{
		UserID:       uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Role:         roles.ForCompanyType(p.CompanyType).String(),
		CompanyName:  p.CompanyName,
		CompanyType:  p.CompanyType.String(),
		Phone:        p.Phone,
		Title:        p.Title,
		IsActive:     true,
	}
	if err := svc.writer.Create(ctx, user); err != nil {
		return "", nil, err
	}

	if p.CompanyType == roles.CompanyBrand {
		brand := &models.BrandDB{
			BrandID:  uuid.New(),
			OwnerID:  user.UserID,
			Name:     p.CompanyName,
			IsPublic: true,
		}
		brand.ProfileCompletionScore = brand.CompletionScore()
		if err := svc.brands.Create(ctx, brand); err != nil {
			return "", nil, err
		}
	} else {
		retailer := &models.RetailerDB{
			RetailerID: uuid.New(),
			OwnerID:    user.UserID,
			Name:       p.CompanyName,
		}
		if err := svc.retailers.Create(ctx, retailer); err != nil {
			return "", nil, err
		}
	}

	if err := svc.prefs.CreateDefaults(ctx, user.UserID); err != nil {
		return "", nil, err
	}

	// The audit row joins the registration transaction.
	userID := user.UserID
	if err := svc.activity.Record(ctx, newActivity(ctx, user.UserID, "user_registered", "user", &userID, map[string]any{
		"company_type": user.CompanyType,
	})); err != nil {
		return "", nil, err
	}

	token, err := svc.tokens.Generate(ctx, jwt.Identity{
		UserID:      user.UserID,
		Email:       user.Email,
		Role:        user.Role,
		CompanyName: user.CompanyName,
		CompanyType: user.CompanyType,
	})
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Login checks credentials and issues a token. The last-login timestamp
// update and the audit row are best-effort.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, *models.UserDB, error) {
	user, err := svc.reader.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return "", nil, err
	}
	if user == nil || !user.IsActive {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := svc.writer.UpdateLastLogin(ctx, user.UserID); err != nil {
		return "", nil, err
	}

	userID := user.UserID
	recordActivity(ctx, svc.activity, user.UserID, "user_login", "user", &userID, nil)

	token, err := svc.tokens.Generate(ctx, jwt.Identity{
		UserID:      user.UserID,
		Email:       user.Email,
		Role:        user.Role,
		CompanyName: user.CompanyName,
		CompanyType: user.CompanyType,
	})
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// NormalizeEmail trims whitespace and lowercases an address. All storage
// and lookups go through the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
