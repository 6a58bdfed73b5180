package httpserver

import (
	"net/http"

	"customer-service/internal/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type customerHandler struct {
	svc    CustomerService
	logger *zap.Logger
}

type countResponse struct {
	Count int64 `json:"count"`
}

type existsResponse struct {
	Email  string `json:"email"`
	Exists bool   `json:"exists"`
}

func (h *customerHandler) list(c *gin.Context) {
	customers, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.logger, "list", err)
		return
	}
	c.JSON(http.StatusOK, nonNil(customers))
}

func (h *customerHandler) get(c *gin.Context) {
	customer, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, h.logger, "get", err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *customerHandler) create(c *gin.Context) {
	var req domain.Customer
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid customer payload")
		return
	}
	created, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, h.logger, "create", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *customerHandler) update(c *gin.Context) {
	id := c.Param("id")
	if !domain.IsValidID(id) {
		writeServiceError(c, h.logger, "update", domain.ErrInvalidID)
		return
	}
	var req domain.Customer
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid customer payload")
		return
	}
	updated, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, h.logger, "update", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *customerHandler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, h.logger, "delete", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *customerHandler) deleteAll(c *gin.Context) {
	if err := h.svc.DeleteAll(c.Request.Context()); err != nil {
		writeServiceError(c, h.logger, "delete all", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *customerHandler) search(c *gin.Context) {
	customers, err := h.svc.SearchByName(c.Request.Context(), c.Query("name"))
	if err != nil {
		writeServiceError(c, h.logger, "search", err)
		return
	}
	c.JSON(http.StatusOK, nonNil(customers))
}

func (h *customerHandler) count(c *gin.Context) {
	n, err := h.svc.Count(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.logger, "count", err)
		return
	}
	c.JSON(http.StatusOK, countResponse{Count: n})
}

func (h *customerHandler) getByEmail(c *gin.Context) {
	customer, err := h.svc.FindByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		writeServiceError(c, h.logger, "get by email", err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *customerHandler) exists(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		writeError(c, http.StatusBadRequest, "email query parameter is required")
		return
	}
	ok, err := h.svc.ExistsByEmail(c.Request.Context(), email)
	if err != nil {
		writeServiceError(c, h.logger, "exists", err)
		return
	}
	c.JSON(http.StatusOK, existsResponse{Email: email, Exists: ok})
}

func nonNil(cs []domain.Customer) []domain.Customer {
	if cs == nil {
		return []domain.Customer{}
	}
	return cs
}
