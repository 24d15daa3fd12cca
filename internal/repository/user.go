package repository

import (
	"fitness-backend/internal/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// UserRepository wraps the account stored procedures. The store is the single
// source of truth for username/email uniqueness and role validity.
type UserRepository interface {
	CreateUser(user *models.NewUser) (int64, error)
	SetVerifyToken(userID int64, token string) error
	VerifyByToken(token string) (bool, error)
	GetByUsername(username string) (*models.User, error)
	GetCredential(username string) (*models.Credential, error)
	GetProfile(userID int64) (*models.Profile, error)
}

type userRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewUserRepository(db *sqlx.DB, log *zap.Logger) UserRepository {
	return &userRepository{db: db, log: log}
}

// CreateUser asks the store to create the account and returns the assigned
// id. Uniqueness violations surface as ErrDuplicate, store-side domain
// validation as *ConstraintError.
func (r *userRepository) CreateUser(user *models.NewUser) (int64, error) {
	var id int64
	query := `SELECT fitness_register_user($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	err := r.db.Get(&id, query,
		user.Username,
		user.PasswordHash,
		user.Salt,
		user.Name,
		user.Surname,
		user.SecondName,
		user.Email,
		user.PhoneNumber,
		user.Role,
	)
	if err != nil {
		return 0, mapError(err)
	}
	return id, nil
}

func (r *userRepository) SetVerifyToken(userID int64, token string) error {
	_, err := r.db.Exec(`SELECT fitness_set_verify_token($1, $2)`, userID, token)
	return mapError(err)
}

// VerifyByToken redeems a verification token. Returns false when the token is
// unknown, already consumed or expired; the store clears the token on success
// so it can never validate twice.
func (r *userRepository) VerifyByToken(token string) (bool, error) {
	var verified bool
	err := r.db.Get(&verified, `SELECT fitness_verify_email($1)`, token)
	if err != nil {
		return false, mapError(err)
	}
	return verified, nil
}

func (r *userRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	query := `SELECT id, username, name, surname, role, is_verified FROM fitness_get_user_by_username($1)`
	if err := r.db.Get(&user, query, username); err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

func (r *userRepository) GetCredential(username string) (*models.Credential, error) {
	var cred models.Credential
	query := `SELECT password_hash, salt FROM fitness_get_hash_and_salt($1)`
	if err := r.db.Get(&cred, query, username); err != nil {
		return nil, mapError(err)
	}
	return &cred, nil
}

func (r *userRepository) GetProfile(userID int64) (*models.Profile, error) {
	var profile models.Profile
	query := `SELECT id, username, name, surname, secondname, email, phonenumber, role, created_at
	          FROM fitness_get_user_profile($1)`
	if err := r.db.Get(&profile, query, userID); err != nil {
		return nil, mapError(err)
	}
	return &profile, nil
}
