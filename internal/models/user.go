package models

import "time"

// Roles assignable to an account. The store enforces the same set.
const (
	RoleClient  = "Client"
	RoleAdmin   = "Admin"
	RoleTrainer = "Trainer"
)

// User is an account row as returned by fitness_get_user_by_username.
type User struct {
	ID         int64  `db:"id"`
	Username   string `db:"username"`
	Name       string `db:"name"`
	Surname    string `db:"surname"`
	Role       string `db:"role"`
	IsVerified bool   `db:"is_verified"`
}

// NewUser carries everything the store needs to create an account.
type NewUser struct {
	Username     string
	PasswordHash string
	Salt         string
	Name         string
	Surname      string
	SecondName   *string
	Email        string
	PhoneNumber  string
	Role         string
}

// Credential is the secret material bound to one account.
type Credential struct {
	PasswordHash string `db:"password_hash"`
	Salt         string `db:"salt"`
}

// PublicUser is the projection returned on login. Never includes
// credential material.
type PublicUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Role     string `json:"role"`
}

// Profile is the typed projection returned by GET /api/profile.
type Profile struct {
	ID          int64     `db:"id" json:"id"`
	Username    string    `db:"username" json:"username"`
	Name        string    `db:"name" json:"name"`
	Surname     string    `db:"surname" json:"surname"`
	SecondName  *string   `db:"secondname" json:"secondname"`
	Email       string    `db:"email" json:"email"`
	PhoneNumber string    `db:"phonenumber" json:"phonenumber"`
	Role        string    `db:"role" json:"role"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}
