package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/karamsafarli/siemens-hackathon/pkg/auth"
	"github.com/karamsafarli/siemens-hackathon/pkg/auth/controller"
	"github.com/karamsafarli/siemens-hackathon/pkg/auth/repository"
)

type authCtrl struct {
	repo   repository.UserRepository
	secret string
}

func New(repo repository.UserRepository, secret string) controller.AuthController {
	return &authCtrl{repo: repo, secret: secret}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *authCtrl) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Email and password are required"})
	}

	user, err := h.repo.FindByEmail(req.Email)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid credentials"})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid credentials"})
	}

	token, err := auth.IssueToken(h.secret, user.ID, user.Email, user.Role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"user": echo.Map{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

func (h *authCtrl) Logout(c echo.Context) error {
	// JWT logout is client-side token removal.
	return c.JSON(http.StatusOK, echo.Map{"message": "Logged out successfully"})
}

func (h *authCtrl) Me(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Not authenticated"})
	}
	user, err := h.repo.FindByID(uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"user": user})
}
