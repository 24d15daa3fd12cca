package service

import (
	"errors"
	"testing"
	"time"

	"fitness-backend/internal/models"
	"fitness-backend/internal/repository"
	"fitness-backend/internal/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeUserRepo keeps accounts in memory and mimics the store's semantics:
// uniqueness on username/email, single-use verification tokens.
type fakeUserRepo struct {
	nextID   int64
	accounts map[string]*fakeAccount // keyed by username
}

type fakeAccount struct {
	user        models.User
	cred        models.Credential
	email       string
	phone       string
	secondName  *string
	verifyToken string
	createdAt   time.Time
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{accounts: map[string]*fakeAccount{}}
}

func (r *fakeUserRepo) CreateUser(user *models.NewUser) (int64, error) {
	if _, ok := r.accounts[user.Username]; ok {
		return 0, repository.ErrDuplicate
	}
	for _, acc := range r.accounts {
		if acc.email == user.Email {
			return 0, repository.ErrDuplicate
		}
	}
	if user.Role != models.RoleClient && user.Role != models.RoleAdmin && user.Role != models.RoleTrainer {
		return 0, &repository.ConstraintError{Message: "Invalid role: " + user.Role}
	}

	r.nextID++
	r.accounts[user.Username] = &fakeAccount{
		user: models.User{
			ID:       r.nextID,
			Username: user.Username,
			Name:     user.Name,
			Surname:  user.Surname,
			Role:     user.Role,
		},
		cred:       models.Credential{PasswordHash: user.PasswordHash, Salt: user.Salt},
		email:      user.Email,
		phone:      user.PhoneNumber,
		secondName: user.SecondName,
		createdAt:  time.Now(),
	}
	return r.nextID, nil
}

func (r *fakeUserRepo) SetVerifyToken(userID int64, tok string) error {
	for _, acc := range r.accounts {
		if acc.user.ID == userID {
			acc.verifyToken = tok
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeUserRepo) VerifyByToken(tok string) (bool, error) {
	for _, acc := range r.accounts {
		if acc.verifyToken != "" && acc.verifyToken == tok {
			acc.user.IsVerified = true
			acc.verifyToken = ""
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*models.User, error) {
	acc, ok := r.accounts[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	user := acc.user
	return &user, nil
}

func (r *fakeUserRepo) GetCredential(username string) (*models.Credential, error) {
	acc, ok := r.accounts[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cred := acc.cred
	return &cred, nil
}

func (r *fakeUserRepo) GetProfile(userID int64) (*models.Profile, error) {
	for _, acc := range r.accounts {
		if acc.user.ID == userID {
			return &models.Profile{
				ID:          acc.user.ID,
				Username:    acc.user.Username,
				Name:        acc.user.Name,
				Surname:     acc.user.Surname,
				SecondName:  acc.secondName,
				Email:       acc.email,
				PhoneNumber: acc.phone,
				Role:        acc.user.Role,
				CreatedAt:   acc.createdAt,
			}, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

type sentMail struct {
	to      string
	subject string
	body    string
}

func (m *fakeMailer) Send(to, subject, html string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: html})
	return nil
}

func newTestService(repo repository.UserRepository, mail *fakeMailer) (AuthService, *token.Manager) {
	tokens := token.NewManager("test-secret", time.Hour)
	svc := NewAuthService(repo, tokens, mail, "http://localhost:5000", zap.NewNop())
	return svc, tokens
}

func amyInput() RegisterInput {
	return RegisterInput{
		Username:    "amy",
		Password:    "Secret123",
		Name:        "Amy",
		Surname:     "Lee",
		Email:       "amy@x.com",
		PhoneNumber: "+1234567890",
	}
}

func TestRegisterCreatesUnverifiedAccount(t *testing.T) {
	repo := newFakeUserRepo()
	mail := &fakeMailer{}
	svc, _ := newTestService(repo, mail)

	id, err := svc.Register(amyInput())
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	acc := repo.accounts["amy"]
	require.NotNil(t, acc)
	assert.False(t, acc.user.IsVerified)
	assert.Equal(t, models.RoleClient, acc.user.Role)
	assert.NotEmpty(t, acc.verifyToken)

	require.Len(t, mail.sent, 1)
	assert.Equal(t, "amy@x.com", mail.sent[0].to)
	assert.Contains(t, mail.sent[0].body, acc.verifyToken)
}

func TestRegisterDuplicateAccount(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newTestService(repo, &fakeMailer{})

	_, err := svc.Register(amyInput())
	require.NoError(t, err)

	_, err = svc.Register(amyInput())
	assert.ErrorIs(t, err, ErrDuplicateAccount)
}

func TestRegisterInvalidRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newTestService(repo, &fakeMailer{})

	input := amyInput()
	input.Role = "Superuser"
	_, err := svc.Register(input)

	var constraintErr *repository.ConstraintError
	assert.True(t, errors.As(err, &constraintErr))
}

func TestRegisterMailFailureKeepsAccount(t *testing.T) {
	repo := newFakeUserRepo()
	mail := &fakeMailer{err: errors.New("smtp unreachable")}
	svc, _ := newTestService(repo, mail)

	_, err := svc.Register(amyInput())
	require.Error(t, err)

	// No compensating rollback: the account exists, still unverified.
	acc := repo.accounts["amy"]
	require.NotNil(t, acc)
	assert.False(t, acc.user.IsVerified)
}

func TestVerifyEmailIsSingleUse(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newTestService(repo, &fakeMailer{})

	_, err := svc.Register(amyInput())
	require.NoError(t, err)
	verifyToken := repo.accounts["amy"].verifyToken

	require.NoError(t, svc.VerifyEmail(verifyToken))
	assert.True(t, repo.accounts["amy"].user.IsVerified)

	// Second redemption of the same token must fail and must not flip
	// anything back.
	err = svc.VerifyEmail(verifyToken)
	assert.ErrorIs(t, err, ErrTokenNotRedeemed)
	assert.True(t, repo.accounts["amy"].user.IsVerified)
}

func TestVerifyEmailUnknownToken(t *testing.T) {
	svc, _ := newTestService(newFakeUserRepo(), &fakeMailer{})
	assert.ErrorIs(t, svc.VerifyEmail("deadbeef"), ErrTokenNotRedeemed)
}

func TestLoginUnknownUserAndWrongPasswordAreIndistinguishable(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newTestService(repo, &fakeMailer{})

	_, err := svc.Register(amyInput())
	require.NoError(t, err)
	require.NoError(t, svc.VerifyEmail(repo.accounts["amy"].verifyToken))

	_, _, errUnknown := svc.Login("nobody", "Secret123")
	_, _, errWrongPass := svc.Login("amy", "WrongPass")

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errWrongPass)
}

func TestLoginUnverifiedAccount(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newTestService(repo, &fakeMailer{})

	_, err := svc.Register(amyInput())
	require.NoError(t, err)

	_, _, err = svc.Login("amy", "Secret123")
	assert.ErrorIs(t, err, ErrEmailNotVerified)
}

func TestLoginIssuesTokenWithAccountClaims(t *testing.T) {
	repo := newFakeUserRepo()
	svc, tokens := newTestService(repo, &fakeMailer{})

	id, err := svc.Register(amyInput())
	require.NoError(t, err)
	require.NoError(t, svc.VerifyEmail(repo.accounts["amy"].verifyToken))

	sessionToken, user, err := svc.Login("amy", "Secret123")
	require.NoError(t, err)

	claims, err := tokens.Verify(sessionToken)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "amy", claims.Username)
	assert.Equal(t, models.RoleClient, claims.Role)

	assert.Equal(t, id, user.ID)
	assert.Equal(t, "Amy", user.Name)
	assert.Equal(t, "Lee", user.Surname)
	assert.Equal(t, models.RoleClient, user.Role)
}

// Full registration-to-login walk-through.
func TestRegistrationFlow(t *testing.T) {
	repo := newFakeUserRepo()
	mail := &fakeMailer{}
	svc, tokens := newTestService(repo, mail)

	id, err := svc.Register(amyInput())
	require.NoError(t, err)
	require.Equal(t, int64(1), id)

	// Login before verification is refused distinctly from bad credentials.
	_, _, err = svc.Login("amy", "Secret123")
	require.ErrorIs(t, err, ErrEmailNotVerified)

	// Redeem the emailed token.
	require.NoError(t, svc.VerifyEmail(repo.accounts["amy"].verifyToken))

	sessionToken, user, err := svc.Login("amy", "Secret123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleClient, user.Role)

	claims, err := tokens.Verify(sessionToken)
	require.NoError(t, err)
	assert.Equal(t, "amy", claims.Username)
}

func TestProfile(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newTestService(repo, &fakeMailer{})

	id, err := svc.Register(amyInput())
	require.NoError(t, err)

	profile, err := svc.Profile(id)
	require.NoError(t, err)
	assert.Equal(t, "amy", profile.Username)
	assert.Equal(t, "amy@x.com", profile.Email)
	assert.Equal(t, "+1234567890", profile.PhoneNumber)

	_, err = svc.Profile(999)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
