package auth

import (
	"errors"
	"net/http"

	"github.com/bimma2006/dhanukayaff/internal/services"
	"github.com/bimma2006/dhanukayaff/internal/utils"

	"github.com/gin-gonic/gin"
)

// Signup godoc
// @Summary Create a storefront account
// @Description Validates Sri Lankan phone and NIC formats and identity uniqueness
// @Tags auth
// @Accept json
// @Produce json
// @Param input body SignupInput true "Signup form"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /auth/signup [post]
func Signup(c *gin.Context) {
	var input SignupInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	_, err := services.SignupUser(services.SignupRequest{
		Identifier: input.Identifier,
		Username:   input.Username,
		Email:      input.Email,
		Phone:      input.Phone,
		NIC:        input.NIC,
		Password:   input.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields),
			errors.Is(err, services.ErrInvalidPhone),
			errors.Is(err, services.ErrInvalidNIC),
			errors.Is(err, services.ErrUserAlreadyExists):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to create account"))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessMessage("Account created successfully"))
}

// Login godoc
// @Summary Log in with any identity field
// @Tags auth
// @Accept json
// @Produce json
// @Param input body LoginInput true "Login form"
// @Success 200 {object} LoginResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var input LoginInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	user, err := services.LoginUser(input.Identifier, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse("Invalid credentials"))
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Success: true, User: UserBrief{Identifier: user.Identifier}})
}

// AccountHistory godoc
// @Summary Recent account activity
// @Description The most recent 100 signup/login/order entries, newest first
// @Tags auth
// @Produce json
// @Success 200 {array} models.AccountActivity
// @Router /accounts/history [get]
func AccountHistory(c *gin.Context) {
	history, err := services.AccountHistory()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to load history"))
		return
	}
	c.JSON(http.StatusOK, history)
}
