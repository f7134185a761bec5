package handler

import (
	"strings"

	"provider-connection-checker/internal/adapter/http/dto"
	"provider-connection-checker/internal/core/domain"
	"provider-connection-checker/internal/core/ports"
	"provider-connection-checker/pkg/apperror"
	"provider-connection-checker/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProviderHandler serves read-only provider connection state.
type ProviderHandler struct {
	statusSvc ports.ProviderStatusService
	supported func() []domain.ProviderType
}

// NewProviderHandler creates a new ProviderHandler. supported reports which
// provider types the checker can test.
func NewProviderHandler(statusSvc ports.ProviderStatusService, supported func() []domain.ProviderType) *ProviderHandler {
	return &ProviderHandler{statusSvc: statusSvc, supported: supported}
}

// GetConnection handles GET /api/v1/providers/:id/connection.
func (h *ProviderHandler) GetConnection(c *gin.Context) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		response.Error(c, apperror.ErrInvalidProviderID())
		return
	}

	provider, err := h.statusSvc.GetConnectionStatus(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewProviderConnectionResponse(provider))
}

// ListSupportedTypes handles GET /api/v1/provider-types.
func (h *ProviderHandler) ListSupportedTypes(c *gin.Context) {
	var types []domain.ProviderType
	if h.supported != nil {
		types = h.supported()
	}
	response.OK(c, dto.NewProviderTypesResponse(types))
}
