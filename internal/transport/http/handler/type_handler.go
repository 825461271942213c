package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RobbertNaessens/webapp-backend/internal/domain"
	"github.com/RobbertNaessens/webapp-backend/internal/service"
	resp "github.com/RobbertNaessens/webapp-backend/internal/transport/http/response"
)

type TypeHandler struct {
	svc *service.TypeService
}

func NewTypeHandler(svc *service.TypeService) *TypeHandler {
	return &TypeHandler{svc: svc}
}

type typeBody struct {
	Title string `json:"title" binding:"required,max=255"`
}

func (h *TypeHandler) GetAll(c *gin.Context) {
	q, ok := bindListQuery(c)
	if !ok {
		return
	}
	list, err := h.svc.GetAll(c.Request.Context(), q.Limit, q.Offset)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *TypeHandler) GetByID(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	t, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TypeHandler) Create(c *gin.Context) {
	var body typeBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, resp.Error(resp.CodeBadRequest, err.Error()))
		return
	}
	t, err := h.svc.Create(c.Request.Context(), domain.TypeFields{Title: body.Title})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *TypeHandler) UpdateByID(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var body typeBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, resp.Error(resp.CodeBadRequest, err.Error()))
		return
	}
	t, err := h.svc.UpdateByID(c.Request.Context(), id, domain.TypeFields{Title: body.Title})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TypeHandler) DeleteByID(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteByID(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
