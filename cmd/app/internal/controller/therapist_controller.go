package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"serenity-backend/internal/imgur"
	"serenity-backend/internal/model"
	"serenity-backend/internal/repository"
	"serenity-backend/internal/service"
)

type TherapistController struct {
	TherapistService service.TherapistService
}

func NewTherapistController(therapistService service.TherapistService) *TherapistController {
	return &TherapistController{TherapistService: therapistService}
}

// adminTherapist adds the suspension state for the admin listing.
type adminTherapist struct {
	model.Therapist
	Suspended bool `json:"suspended"`
}

// GetTherapists handles GET /therapists?location=&gender=
func (tc *TherapistController) GetTherapists(c *gin.Context) {
	list, err := tc.TherapistService.ListActive(c.Request.Context(), repository.TherapistFilter{
		Location: c.Query("location"),
		Gender:   c.Query("gender"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	if list == nil {
		list = []model.Therapist{}
	}
	c.JSON(http.StatusOK, gin.H{"therapists": list})
}

// GetTherapist handles GET /therapists/:id
func (tc *TherapistController) GetTherapist(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	t, err := tc.TherapistService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// GetAllTherapists handles GET /admin/therapists
func (tc *TherapistController) GetAllTherapists(c *gin.Context) {
	list, err := tc.TherapistService.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}
	now := timeNow()
	out := make([]adminTherapist, len(list))
	for i := range list {
		out[i] = adminTherapist{Therapist: list[i], Suspended: list[i].IsSuspended(now)}
	}
	c.JSON(http.StatusOK, gin.H{"therapists": out})
}

// CreateTherapist handles POST /admin/therapists (JSON or multipart with an
// optional "image" file).
func (tc *TherapistController) CreateTherapist(c *gin.Context) {
	input, upload, cleanup, ok := bindTherapist(c)
	if !ok {
		return
	}
	defer cleanup()
	t, err := tc.TherapistService.Create(c.Request.Context(), input, upload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// UpdateTherapist handles PUT /admin/therapists/:id
func (tc *TherapistController) UpdateTherapist(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	input, upload, cleanup, ok := bindTherapist(c)
	if !ok {
		return
	}
	defer cleanup()
	t, err := tc.TherapistService.Update(c.Request.Context(), id, input, upload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// DeleteTherapist handles DELETE /admin/therapists/:id
func (tc *TherapistController) DeleteTherapist(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := tc.TherapistService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SuspendTherapist handles POST /admin/therapists/:id/suspend
func (tc *TherapistController) SuspendTherapist(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	t, err := tc.TherapistService.Suspend(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func bindTherapist(c *gin.Context) (service.TherapistInput, *service.Upload, func(), bool) {
	var input service.TherapistInput
	noop := func() {}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, imgur.MaxImageBytes+1<<20)
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return input, nil, noop, false
	}
	if c.ContentType() != gin.MIMEMultipartPOSTForm {
		return input, nil, noop, true
	}
	fh, err := c.FormFile("image")
	if err != nil {
		return input, nil, noop, true
	}
	f, err := fh.Open()
	if err != nil {
		respondError(c, err)
		return input, nil, noop, false
	}
	return input, &service.Upload{Filename: fh.Filename, Body: f}, func() { f.Close() }, true
}
