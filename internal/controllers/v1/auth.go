package v1

import (
	"net/http"
	"strings"

	"github.com/familyledger/backend/internal/auth"
	"github.com/familyledger/backend/internal/httputil"
	"github.com/familyledger/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the routes for registration and login
// with the RouterGroup that is passed. These routes are public.
func RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/register", OptionsRegister)
	r.POST("/register", Register)

	r.OPTIONS("/login", OptionsLogin)
	r.POST("/login", Login)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/register [options]
func OptionsRegister(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/login [options]
func OptionsLogin(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Register
// @Description	Registers a new user account
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		500		{object}	UserResponse
// @Param			user	body		RegisterEditable	true	"User"
// @Router			/v1/auth/register [post]
func Register(c *gin.Context) {
	var editable RegisterEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	if len(editable.Password) < 8 {
		e := errPasswordTooShort.Error()
		c.JSON(http.StatusBadRequest, UserResponse{
			Error: &e,
		})
		return
	}

	hash, err := auth.HashPassword(editable.Password)
	if err != nil {
		e := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, UserResponse{
			Error: &e,
		})
		return
	}

	user := models.User{
		Name:         editable.Name,
		Email:        editable.Email,
		PasswordHash: hash,
	}

	err = models.DB.Create(&user).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	data := newUser(user)
	c.JSON(http.StatusCreated, UserResponse{Data: &data})
}

// @Summary		Login
// @Description	Verifies the credentials and returns a bearer token for the API
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200			{object}	LoginResponse
// @Failure		400			{object}	LoginResponse
// @Failure		401			{object}	LoginResponse
// @Failure		500			{object}	LoginResponse
// @Param			credentials	body		LoginEditable	true	"Credentials"
// @Router			/v1/auth/login [post]
func Login(c *gin.Context) {
	var editable LoginEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LoginResponse{
			Error: &e,
		})
		return
	}

	var user models.User
	email := strings.ToLower(strings.TrimSpace(editable.Email))
	err = models.DB.Where(&models.User{Email: email}).First(&user).Error
	if err != nil || !auth.CheckPassword(user.PasswordHash, editable.Password) {
		// The same response for unknown emails and wrong passwords so
		// that the endpoint does not leak which emails are registered
		e := errInvalidCredentials.Error()
		c.JSON(http.StatusUnauthorized, LoginResponse{
			Error: &e,
		})
		return
	}

	token, err := auth.GenerateToken(auth.Secret(), user.ID)
	if err != nil {
		e := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, LoginResponse{
			Error: &e,
		})
		return
	}

	data := LoginData{
		Token: token,
		User:  newUser(user),
	}
	c.JSON(http.StatusOK, LoginResponse{Data: &data})
}
