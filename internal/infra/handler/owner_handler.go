package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/charlinto/MedRemApp/internal/app"
)

type OwnerHandler struct {
	useCase app.OwnerUseCase
}

func NewOwnerHandler(useCase app.OwnerUseCase) *OwnerHandler {
	return &OwnerHandler{
		useCase: useCase,
	}
}

func (h *OwnerHandler) RegisterContact(c *gin.Context) {
	owner, err := ownerID(c)
	if err != nil {
		return
	}

	var req RegisterContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)

		return
	}

	output, err := h.useCase.RegisterContact(c.Request.Context(), app.RegisterContactInput{
		OwnerID:     owner,
		Email:       req.Email,
		DeviceToken: req.DeviceToken,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromContactDTO(output))
}

func (h *OwnerHandler) GetContact(c *gin.Context) {
	owner, err := ownerID(c)
	if err != nil {
		return
	}

	output, err := h.useCase.GetContact(c.Request.Context(), app.GetContactInput{OwnerID: owner})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromContactDTO(output))
}

func (h *OwnerHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.PUT("/owner", h.RegisterContact)
	router.GET("/owner", h.GetContact)
}
