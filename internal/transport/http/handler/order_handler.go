package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RobbertNaessens/webapp-backend/internal/domain"
	"github.com/RobbertNaessens/webapp-backend/internal/service"
	resp "github.com/RobbertNaessens/webapp-backend/internal/transport/http/response"
)

type OrderHandler struct {
	svc *service.OrderService
}

func NewOrderHandler(svc *service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// orderBody carries the already-materialized item snapshots; beyond shape
// validation they are stored untouched.
type orderBody struct {
	UserID string               `json:"userId" binding:"required,uuid"`
	Items  domain.ItemSnapshots `json:"items" binding:"required"`
}

func (h *OrderHandler) GetAll(c *gin.Context) {
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

func (h *OrderHandler) GetByID(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	order, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) GetByUserID(c *gin.Context) {
	userID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	orders, err := h.svc.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Create(c *gin.Context) {
	var body orderBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, resp.Error(resp.CodeBadRequest, err.Error()))
		return
	}
	order, err := h.svc.Create(c.Request.Context(), domain.OrderFields{UserID: body.UserID, Items: body.Items})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) UpdateByID(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var body orderBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, resp.Error(resp.CodeBadRequest, err.Error()))
		return
	}
	order, err := h.svc.UpdateByID(c.Request.Context(), id, domain.OrderFields{UserID: body.UserID, Items: body.Items})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) DeleteByID(c *gin.Context) {
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
