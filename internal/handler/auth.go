package handler

import (
	"errors"
	"net/http"

	"fitness-backend/internal/middleware"
	"fitness-backend/internal/repository"
	"fitness-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AuthHandler interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	VerifyEmail(c *gin.Context)
	Profile(c *gin.Context)
}

type authHandler struct {
	authService service.AuthService
	log         *logrus.Logger
}

func NewAuthHandler(authService service.AuthService, log *logrus.Logger) AuthHandler {
	return &authHandler{authService: authService, log: log}
}

type RegisterRequest struct {
	Username    string  `json:"username" binding:"required"`
	Password    string  `json:"password" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Surname     string  `json:"surname" binding:"required"`
	SecondName  *string `json:"secondname"`
	Email       string  `json:"email" binding:"required"`
	PhoneNumber string  `json:"phonenumber" binding:"required"`
	Role        string  `json:"role"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *authHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for registration: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "All required fields must be filled in."})
		return
	}

	userID, err := h.authService.Register(service.RegisterInput{
		Username:    req.Username,
		Password:    req.Password,
		Name:        req.Name,
		Surname:     req.Surname,
		SecondName:  req.SecondName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Role:        req.Role,
	})
	if err != nil {
		if errors.Is(err, service.ErrDuplicateAccount) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "A user with this username or email already exists."})
			return
		}
		var constraintErr *repository.ConstraintError
		if errors.As(err, &constraintErr) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": constraintErr.Message})
			return
		}
		h.log.Errorf("Failed to register user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error during registration."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully! Check your email (" + req.Email + ") to confirm your address.",
		"id":      userID,
	})
}

func (h *authHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for login: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Enter username and password."})
		return
	}

	sessionToken, user, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid username or password."})
		case errors.Is(err, service.ErrEmailNotVerified):
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Confirm your email before logging in."})
		default:
			h.log.Errorf("Failed to login user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error during authentication."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful.",
		"token":   sessionToken,
		"user":    user,
	})
}

const verifySuccessPage = `
      <h2>&#9989; Email confirmed successfully!</h2>
      <p>You can now log in.</p>
    `

const verifyFailurePage = `
      <h2>Email confirmation failed</h2>
      <p>The confirmation link is invalid or has already been used.</p>
    `

func (h *authHandler) VerifyEmail(c *gin.Context) {
	verifyToken := c.Query("token")
	if verifyToken == "" {
		c.String(http.StatusBadRequest, "Verification token is missing.")
		return
	}

	if err := h.authService.VerifyEmail(verifyToken); err != nil {
		if errors.Is(err, service.ErrTokenNotRedeemed) {
			c.Data(http.StatusBadRequest, "text/html; charset=utf-8", []byte(verifyFailurePage))
			return
		}
		h.log.Errorf("Failed to verify email: %v", err)
		c.String(http.StatusInternalServerError, "Server error during email confirmation.")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(verifySuccessPage))
}

func (h *authHandler) Profile(c *gin.Context) {
	userID := c.GetInt64(middleware.ContextUserID)

	profile, err := h.authService.Profile(userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Profile not found."})
			return
		}
		h.log.Errorf("Failed to get profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error while fetching profile."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile fetched successfully.",
		"profile": profile,
	})
}
