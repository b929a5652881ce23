package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"serenity-backend/internal/imgur"
	"serenity-backend/internal/service"
)

type UserController struct {
	UserService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// GetMe handles GET /me
func (uc *UserController) GetMe(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	user, err := uc.UserService.GetProfile(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile handles PUT /me/profile
func (uc *UserController) UpdateProfile(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	user, err := uc.UserService.UpdateProfile(uid, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UploadImage handles POST /me/profile/image
func (uc *UserController) UploadImage(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, imgur.MaxImageBytes+1<<20)
	fh, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	user, err := uc.UserService.UploadProfileImage(c.Request.Context(), uid, fh.Filename, f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteMe handles DELETE /me
func (uc *UserController) DeleteMe(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	if err := uc.UserService.DeleteAccount(uid); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
