package v1

import (
	"net/http"

	"github.com/familyledger/backend/internal/httputil"
	"github.com/familyledger/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterFamilyRoutes registers the routes for families with
// the RouterGroup that is passed.
func RegisterFamilyRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsFamily)
	r.GET("", GetFamily)
	r.POST("", CreateFamily)

	r.OPTIONS("/join", OptionsFamilyJoin)
	r.POST("/join", JoinFamily)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Families
// @Success		204
// @Router			/v1/families [options]
func OptionsFamily(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Families
// @Success		204
// @Router			/v1/families/join [options]
func OptionsFamilyJoin(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Create family
// @Description	Creates a new family with the caller as its first member
// @Tags			Families
// @Accept			json
// @Produce		json
// @Success		201		{object}	FamilyResponse
// @Failure		400		{object}	FamilyResponse
// @Failure		401		{object}	httpError
// @Failure		500		{object}	FamilyResponse
// @Param			family	body		FamilyEditable	true	"Family"
// @Router			/v1/families [post]
func CreateFamily(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FamilyResponse{
			Error: &e,
		})
		return
	}

	if user.FamilyID != nil {
		e := errAlreadyInFamily.Error()
		c.JSON(http.StatusBadRequest, FamilyResponse{
			Error: &e,
		})
		return
	}

	var editable FamilyEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FamilyResponse{
			Error: &e,
		})
		return
	}

	family := editable.model()

	// Create the family and add the creator in one transaction
	tx := models.DB.Begin()

	err = tx.Create(&family).Error
	if err != nil {
		tx.Rollback()

		e := err.Error()
		c.JSON(status(err), FamilyResponse{
			Error: &e,
		})
		return
	}

	err = tx.Model(&user).Update("FamilyID", family.ID).Error
	if err != nil {
		tx.Rollback()

		e := err.Error()
		c.JSON(status(err), FamilyResponse{
			Error: &e,
		})
		return
	}

	tx.Commit()

	data := newFamily(family, []models.User{user})
	c.JSON(http.StatusCreated, FamilyResponse{Data: &data})
}

// @Summary		Join family
// @Description	Adds the caller to the family with the submitted invite code
// @Tags			Families
// @Accept			json
// @Produce		json
// @Success		200		{object}	FamilyResponse
// @Failure		400		{object}	FamilyResponse
// @Failure		401		{object}	httpError
// @Failure		404		{object}	FamilyResponse
// @Failure		500		{object}	FamilyResponse
// @Param			invite	body		JoinEditable	true	"Invite code"
// @Router			/v1/families/join [post]
func JoinFamily(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FamilyResponse{
			Error: &e,
		})
		return
	}

	if user.FamilyID != nil {
		e := errAlreadyInFamily.Error()
		c.JSON(http.StatusBadRequest, FamilyResponse{
			Error: &e,
		})
		return
	}

	var editable JoinEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FamilyResponse{
			Error: &e,
		})
		return
	}

	// An empty invite code must never reach the lookup: a zero-value
	// field in a gorm struct condition is ignored, so the query would
	// match an arbitrary family
	if editable.InviteCode == "" {
		e := errInviteCodeEmpty.Error()
		c.JSON(http.StatusBadRequest, FamilyResponse{
			Error: &e,
		})
		return
	}

	var family models.Family
	err = models.DB.Where(&models.Family{InviteCode: editable.InviteCode}).First(&family).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FamilyResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&user).Update("FamilyID", family.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FamilyResponse{
			Error: &e,
		})
		return
	}

	members, err := familyMembers(family.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FamilyResponse{
			Error: &e,
		})
		return
	}

	data := newFamily(family, members)
	c.JSON(http.StatusOK, FamilyResponse{Data: &data})
}

// @Summary		Get family
// @Description	Returns the caller's family with all its members
// @Tags			Families
// @Produce		json
// @Success		200	{object}	FamilyResponse
// @Failure		401	{object}	httpError
// @Failure		404	{object}	FamilyResponse
// @Failure		500	{object}	FamilyResponse
// @Router			/v1/families [get]
func GetFamily(c *gin.Context) {
	user, err := requireFamily(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FamilyResponse{
			Error: &e,
		})
		return
	}

	var family models.Family
	err = models.DB.First(&family, *user.FamilyID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FamilyResponse{
			Error: &e,
		})
		return
	}

	members, err := familyMembers(family.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FamilyResponse{
			Error: &e,
		})
		return
	}

	data := newFamily(family, members)
	c.JSON(http.StatusOK, FamilyResponse{Data: &data})
}
