package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/RobbertNaessens/webapp-backend/internal/service"
	resp "github.com/RobbertNaessens/webapp-backend/internal/transport/http/response"
)

// listQuery is the shared pagination query. Limit and offset must be given
// together or not at all.
type listQuery struct {
	Limit  *int `form:"limit" binding:"omitempty,gt=0,lte=1000"`
	Offset *int `form:"offset" binding:"omitempty,gte=0"`
}

func bindListQuery(c *gin.Context) (listQuery, bool) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, resp.Error(resp.CodeBadRequest, err.Error()))
		return q, false
	}
	if (q.Limit == nil) != (q.Offset == nil) {
		c.JSON(http.StatusBadRequest, resp.Error(resp.CodeBadRequest, "limit and offset must be given together"))
		return q, false
	}
	return q, true
}

func uuidParam(c *gin.Context, name string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, resp.Error(resp.CodeBadRequest, name+" must be a valid uuid"))
		return "", false
	}
	return id, true
}

// fail maps service errors onto the HTTP contract: absence becomes 404 with
// the lookup key echoed back, bad credentials 401, everything else an
// opaque 500.
func fail(c *gin.Context, err error) {
	var nf *service.NotFoundError
	switch {
	case errors.As(err, &nf):
		c.JSON(http.StatusNotFound, resp.New(resp.CodeNotFound, nf.Msg, nf.Payload))
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, resp.Error(resp.CodeUnauthorized, err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, resp.Error(resp.CodeServerError, "internal server error"))
	}
}
