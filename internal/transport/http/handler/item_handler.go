package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/RobbertNaessens/webapp-backend/internal/core/cache"
	"github.com/RobbertNaessens/webapp-backend/internal/domain"
	"github.com/RobbertNaessens/webapp-backend/internal/service"
	resp "github.com/RobbertNaessens/webapp-backend/internal/transport/http/response"
)

type ItemHandler struct {
	svc      *service.ItemService
	cache    *cache.Cache
	cacheTTL time.Duration
}

func NewItemHandler(svc *service.ItemService) *ItemHandler {
	return &ItemHandler{svc: svc}
}

// WithCache enables the short-TTL response cache on the public by-type
// route. The service and repository layers stay uncached.
func (h *ItemHandler) WithCache(c *cache.Cache, ttl time.Duration) *ItemHandler {
	h.cache = c
	h.cacheTTL = ttl
	return h
}

type itemBody struct {
	Title       string       `json:"title" binding:"required,max=255"`
	ImageSrc    string       `json:"imagesrc" binding:"required,max=500"`
	TypeID      string       `json:"typeId" binding:"required,uuid"`
	Description *string      `json:"description" binding:"omitempty,max=255"`
	Price       domain.Price `json:"price"`
}

func (b itemBody) fields() domain.ItemFields {
	return domain.ItemFields{
		Title:       b.Title,
		ImageSrc:    b.ImageSrc,
		TypeID:      b.TypeID,
		Description: b.Description,
		Price:       b.Price,
	}
}

func bindItemBody(c *gin.Context) (itemBody, bool) {
	var body itemBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, resp.Error(resp.CodeBadRequest, err.Error()))
		return body, false
	}
	if !body.Price.GreaterThan(decimal.Zero) {
		c.JSON(http.StatusBadRequest, resp.Error(resp.CodeBadRequest, "price must be positive"))
		return body, false
	}
	return body, true
}

func (h *ItemHandler) GetAll(c *gin.Context) {
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

func (h *ItemHandler) GetByID(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	item, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) GetByType(c *gin.Context) {
	title := c.Param("typetitle")
	load := func(ctx context.Context) (*service.Data[domain.Item], error) {
		return h.svc.GetByType(ctx, title)
	}

	var out *service.Data[domain.Item]
	var err error
	if h.cache != nil {
		out, err = cache.GetOrLoadJSON(h.cache, c.Request.Context(), "items:type:"+title, h.cacheTTL, load)
	} else {
		out, err = load(c.Request.Context())
	}
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *ItemHandler) Create(c *gin.Context) {
	body, ok := bindItemBody(c)
	if !ok {
		return
	}
	item, err := h.svc.Create(c.Request.Context(), body.fields())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ItemHandler) UpdateByID(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	body, ok := bindItemBody(c)
	if !ok {
		return
	}
	item, err := h.svc.UpdateByID(c.Request.Context(), id, body.fields())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) DeleteByID(c *gin.Context) {
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
