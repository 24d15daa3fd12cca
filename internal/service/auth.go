package service

import (
	"errors"
	"fmt"
	"net/url"

	"fitness-backend/internal/crypto"
	"fitness-backend/internal/mailer"
	"fitness-backend/internal/models"
	"fitness-backend/internal/repository"
	"fitness-backend/internal/token"

	"go.uber.org/zap"
)

// RegisterInput is a validated registration request. Role is optional and
// defaults to Client; the store is the authority on role validity and
// username/email uniqueness.
type RegisterInput struct {
	Username    string
	Password    string
	Name        string
	Surname     string
	SecondName  *string
	Email       string
	PhoneNumber string
	Role        string
}

type AuthService interface {
	Register(input RegisterInput) (int64, error)
	VerifyEmail(verifyToken string) error
	Login(username, password string) (string, *models.PublicUser, error)
	Profile(userID int64) (*models.Profile, error)
}

type authService struct {
	repo    repository.UserRepository
	tokens  *token.Manager
	mail    mailer.Mailer
	baseURL string
	logger  *zap.Logger
}

func NewAuthService(repo repository.UserRepository, tokens *token.Manager, mail mailer.Mailer, baseURL string, logger *zap.Logger) AuthService {
	return &authService{
		repo:    repo,
		tokens:  tokens,
		mail:    mail,
		baseURL: baseURL,
		logger:  logger,
	}
}

// Register creates the account, stores a fresh verification token and sends
// the confirmation email. The account exists as soon as the store accepts it;
// a mail delivery failure is reported to the caller but not rolled back.
func (s *authService) Register(input RegisterInput) (int64, error) {
	if input.Role == "" {
		input.Role = models.RoleClient
	}

	passwordHash, salt, err := crypto.HashPassword(input.Password)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	userID, err := s.repo.CreateUser(&models.NewUser{
		Username:     input.Username,
		PasswordHash: passwordHash,
		Salt:         salt,
		Name:         input.Name,
		Surname:      input.Surname,
		SecondName:   input.SecondName,
		Email:        input.Email,
		PhoneNumber:  input.PhoneNumber,
		Role:         input.Role,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return 0, ErrDuplicateAccount
		}
		return 0, err
	}

	verifyToken, err := crypto.NewVerificationToken()
	if err != nil {
		s.logger.Error("Failed to generate verification token", zap.Error(err))
		return 0, fmt.Errorf("failed to generate verification token: %w", err)
	}

	if err := s.repo.SetVerifyToken(userID, verifyToken); err != nil {
		s.logger.Error("Failed to store verification token", zap.Error(err), zap.Int64("userId", userID))
		return 0, fmt.Errorf("failed to store verification token: %w", err)
	}

	verifyLink := fmt.Sprintf("%s/api/verify-email?token=%s", s.baseURL, url.QueryEscape(verifyToken))
	subject, body := mailer.VerificationEmail(input.Name, verifyLink)
	if err := s.mail.Send(input.Email, subject, body); err != nil {
		s.logger.Error("Failed to send verification email", zap.Error(err), zap.Int64("userId", userID))
		return 0, fmt.Errorf("failed to send verification email: %w", err)
	}

	s.logger.Info("User registered", zap.Int64("userId", userID), zap.String("username", input.Username))
	return userID, nil
}

// VerifyEmail redeems a verification token. A token validates at most once;
// unknown, expired and already-consumed tokens all fail the same way.
func (s *authService) VerifyEmail(verifyToken string) error {
	redeemed, err := s.repo.VerifyByToken(verifyToken)
	if err != nil {
		s.logger.Error("Failed to redeem verification token", zap.Error(err))
		return fmt.Errorf("failed to redeem verification token: %w", err)
	}
	if !redeemed {
		return ErrTokenNotRedeemed
	}
	return nil
}

// Login checks the credentials and issues a session token. Unknown usernames
// and wrong passwords produce the same error; an unverified account is
// reported distinctly once the password owner is identified.
func (s *authService) Login(username, password string) (string, *models.PublicUser, error) {
	user, err := s.repo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		s.logger.Error("Failed to get user by username", zap.Error(err))
		return "", nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	if !user.IsVerified {
		return "", nil, ErrEmailNotVerified
	}

	cred, err := s.repo.GetCredential(username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		s.logger.Error("Failed to get credential", zap.Error(err))
		return "", nil, fmt.Errorf("failed to retrieve credential: %w", err)
	}

	derived, err := crypto.DeriveHash(password, cred.Salt)
	if err != nil {
		s.logger.Error("Failed to derive hash", zap.Error(err))
		return "", nil, fmt.Errorf("failed to derive hash: %w", err)
	}

	if !crypto.HashesEqual(derived, cred.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	sessionToken, err := s.tokens.Issue(user.ID, user.Username, user.Role)
	if err != nil {
		s.logger.Error("Failed to issue session token", zap.Error(err))
		return "", nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	s.logger.Info("User logged in", zap.String("username", user.Username))

	return sessionToken, &models.PublicUser{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
		Surname:  user.Surname,
		Role:     user.Role,
	}, nil
}

func (s *authService) Profile(userID int64) (*models.Profile, error) {
	profile, err := s.repo.GetProfile(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		s.logger.Error("Failed to get profile", zap.Error(err), zap.Int64("userId", userID))
		return nil, fmt.Errorf("failed to retrieve profile: %w", err)
	}
	return profile, nil
}
