package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"logitrack/internal/config"
	"logitrack/internal/middleware"
	"logitrack/internal/models"
	"logitrack/internal/store"
)

type signupInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// SignupUser registers a regular (non-staff) user. Staff accounts come from
// the seed or an existing staff user editing the record.
func SignupUser(c *gin.Context) {
	var input signupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		logrus.WithError(err).Error("password hashing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashed),
	}
	if err := config.DB.Create(&user).Error; err != nil {
		if terr := store.Translate(err); terr != err {
			handleError(c, terr)
			return
		}
		logrus.WithError(err).Error("user create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create user: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

type tokenInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ObtainToken exchanges credentials for an access/refresh pair. The access
// token lives 60 minutes, the refresh token 24 hours.
func ObtainToken(c *gin.Context) {
	var input tokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.WithField("email", input.Email).Warn("login attempt for unknown user")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		} else {
			logrus.WithError(err).Error("user lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		logrus.WithField("email", input.Email).Warn("login attempt with wrong password")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	access, err := middleware.GenerateAccessToken(user.ID, user.Staff)
	if err != nil {
		logrus.WithError(err).Error("access token generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}
	refresh, err := middleware.GenerateRefreshToken(user.ID, user.Staff)
	if err != nil {
		logrus.WithError(err).Error("refresh token generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access": access, "refresh": refresh})
}

type refreshInput struct {
	Refresh string `json:"refresh" binding:"required"`
}

// RefreshToken issues a fresh access token from a valid refresh token.
func RefreshToken(c *gin.Context) {
	var input refreshInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	claims, err := middleware.ParseToken(input.Refresh, "refresh")
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
		return
	}
	staff, _ := claims["is_staff"].(bool)

	access, err := middleware.GenerateAccessToken(uint(userID), staff)
	if err != nil {
		logrus.WithError(err).Error("access token generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"access": access})
}
