package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"classificador-backend/internal/classification/domain"
	"classificador-backend/internal/classification/dto"
	"classificador-backend/internal/classification/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClassificationHandler handles classification HTTP requests
type ClassificationHandler struct {
	usecase usecase.ClassificationUsecase
	log     *zap.Logger
}

// NewClassificationHandler creates a new ClassificationHandler
func NewClassificationHandler(uc usecase.ClassificationUsecase, log *zap.Logger) *ClassificationHandler {
	return &ClassificationHandler{
		usecase: uc,
		log:     log,
	}
}

// Classify classifies an email and returns the label and suggested reply
// POST /api/classificador
func (h *ClassificationHandler) Classify(c *gin.Context) {
	var req dto.ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: dto.MsgEmailTextRequired})
		return
	}

	result, err := h.usecase.Classify(c.Request.Context(), req.EmailText)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyEmailText) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: dto.MsgEmailTextRequired})
			return
		}
		h.log.Error("classification failed", zap.Error(err), zap.String("request_id", c.GetString("requestID")))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: dto.MsgClassifyFailed})
		return
	}

	c.JSON(http.StatusOK, dto.ClassifyResponse{
		Classification:    result.Classification,
		SuggestedResponse: result.SuggestedResponse,
	})
}

// ListClassifications returns all stored classifications, newest first
// GET /api/classificador
func (h *ClassificationHandler) ListClassifications(c *gin.Context) {
	records, err := h.usecase.ListClassifications(c.Request.Context())
	if err != nil {
		h.log.Error("failed to list classifications", zap.Error(err), zap.String("request_id", c.GetString("requestID")))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: dto.MsgListFailed})
		return
	}

	c.JSON(http.StatusOK, records)
}

// GetClassification returns a single stored classification
// GET /api/classificador/:id
func (h *ClassificationHandler) GetClassification(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: dto.MsgInvalidID})
		return
	}

	record, err := h.usecase.GetClassification(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: dto.MsgNotFound})
			return
		}
		h.log.Error("failed to get classification", zap.Error(err), zap.Uint64("id", id))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: dto.MsgListFailed})
		return
	}

	c.JSON(http.StatusOK, record)
}
