package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/nsthome/institute-api/internal/models"
	"github.com/nsthome/institute-api/internal/repository"
	appErrors "github.com/nsthome/institute-api/pkg/errors"
)

type authStudentRepository interface {
	FindByPhone(ctx context.Context, phone string) (*models.Student, error)
	FindByIdentity(ctx context.Context, name, phone, class string) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
}

// AuthConfig defines configuration for the identification flows.
type AuthConfig struct {
	TokenSecret string
	TokenExpiry time.Duration
	Issuer      string
	AdminPhone  string
	AdminName   string
}

// AuthService handles signup, login and session tokens. There is no
// password anywhere in this system: students are identified by the
// (name, phone, class) tuple, and one configured phone number short-circuits
// to an admin identity without touching the store. The bypass is inherited
// behaviour, kept deliberately; see DESIGN.md.
type AuthService struct {
	repo      authStudentRepository
	validator *validator.Validate
	logger    *zap.Logger
	config    AuthConfig
}

// NewAuthService constructs an AuthService.
func NewAuthService(repo authStudentRepository, validate *validator.Validate, logger *zap.Logger, config AuthConfig) *AuthService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.TokenExpiry <= 0 {
		config.TokenExpiry = 24 * time.Hour
	}
	return &AuthService{repo: repo, validator: validate, logger: logger, config: config}
}

// Register creates a pending student and issues a session token. The phone
// uniqueness pre-check gives a friendly conflict message; the unique index
// behind repository.ErrDuplicatePhone is what actually guarantees it.
func (s *AuthService) Register(ctx context.Context, req models.SignupRequest) (*models.AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid signup payload")
	}

	if _, err := s.repo.FindByPhone(ctx, req.Phone); err == nil {
		return nil, appErrors.Clone(appErrors.ErrPhoneRegistered, "this phone number is already registered, please login")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check existing registration")
	}

	student := &models.Student{
		Name:   req.Name,
		Phone:  req.Phone,
		Class:  req.Class,
		Status: models.StatusPending,
	}
	if err := s.repo.Create(ctx, student); err != nil {
		if errors.Is(err, repository.ErrDuplicatePhone) {
			return nil, appErrors.Clone(appErrors.ErrPhoneRegistered, "this phone number is already registered, please login")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to register student")
	}

	s.logger.Info("student registered",
		zap.String("student_id", student.ID),
		zap.String("class", student.Class),
	)

	profile := studentProfile(student)
	return s.issueToken(profile)
}

// Login identifies a student or the sentinel admin. It does not gate on
// approval status; the dashboard decides what an identified student may see.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload")
	}

	if s.config.AdminPhone != "" && req.Phone == s.config.AdminPhone {
		profile := models.UserProfile{
			ID:     "admin",
			Name:   s.config.AdminName,
			Phone:  s.config.AdminPhone,
			Role:   models.RoleAdmin,
			Status: models.StatusApproved,
		}
		return s.issueToken(profile)
	}

	student, err := s.repo.FindByIdentity(ctx, req.Name, req.Phone, req.Class)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "no matching record found, please verify your name, phone and class")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to look up student")
	}

	return s.issueToken(studentProfile(student))
}

// ValidateToken parses and verifies a session token.
func (s *AuthService) ValidateToken(tokenString string) (*models.SessionClaims, error) {
	claims := &models.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, appErrors.Clone(appErrors.ErrUnauthorized, "unexpected signing method")
		}
		return []byte(s.config.TokenSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid or expired session token")
	}
	return claims, nil
}

func (s *AuthService) issueToken(profile models.UserProfile) (*models.AuthResponse, error) {
	now := time.Now().UTC()
	claims := models.SessionClaims{
		UserID: profile.ID,
		Role:   profile.Role,
		Name:   profile.Name,
		Phone:  profile.Phone,
		Class:  profile.Class,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   profile.ID,
			Issuer:    s.config.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.TokenSecret))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign session token")
	}

	return &models.AuthResponse{
		Token:     signed,
		ExpiresIn: int64(s.config.TokenExpiry.Seconds()),
		IssuedAt:  now,
		User:      profile,
	}, nil
}

func studentProfile(student *models.Student) models.UserProfile {
	return models.UserProfile{
		ID:     student.ID,
		Name:   student.Name,
		Phone:  student.Phone,
		Role:   models.RoleStudent,
		Status: student.Status,
		Class:  student.Class,
	}
}
