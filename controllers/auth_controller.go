package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"motorent-api/middleware"
	"motorent-api/models"
	"motorent-api/services"
	"motorent-api/utils"
)

const tokenLifetime = time.Hour * 24 * 7

type AuthController struct {
	userService *services.UserService
	jwtSecret   string
	blacklist   *middleware.TokenBlacklist
}

func NewAuthController(userService *services.UserService, jwtSecret string, blacklist *middleware.TokenBlacklist) *AuthController {
	return &AuthController{
		userService: userService,
		jwtSecret:   jwtSecret,
		blacklist:   blacklist,
	}
}

type RegisterRequest struct {
	Name      string  `json:"name" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=6"`
	CNPJ      *string `json:"cnpj"`
	Birthday  *string `json:"birthday"`
	CNHNumber *string `json:"cnh_number"`
	CNHType   *string `json:"cnh_type"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	user, err := ac.userService.RegisterUser(services.RegisterUserInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		CNPJ:      req.CNPJ,
		Birthday:  req.Birthday,
		CNHNumber: req.CNHNumber,
		CNHType:   req.CNHType,
	})
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	utils.SendCreated(c, "User created successfully.", user)
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	user, ok := ac.userService.Authenticate(req.Email, req.Password)
	if !ok {
		utils.SendError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := ac.generateJWT(user.ID, user.Role)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Token: token,
		User:  *user,
	})
}

// Logout revokes the presented token for its remaining lifetime.
func (ac *AuthController) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" || tokenString == authHeader {
		utils.SendError(c, http.StatusBadRequest, "Authorization token required")
		return
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(ac.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		utils.SendError(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			ttl := time.Until(exp.Time)
			if err := ac.blacklist.Revoke(c.Request.Context(), tokenString, ttl); err != nil {
				utils.SendError(c, http.StatusInternalServerError, "Failed to revoke token")
				return
			}
		}
	}

	utils.SendSuccess(c, "Successfully logged out", nil)
}

func (ac *AuthController) generateJWT(userID, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(tokenLifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(ac.jwtSecret))
}
