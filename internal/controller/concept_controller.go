package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/hqanh/theorytrainer/internal/dto"
	"github.com/hqanh/theorytrainer/internal/model"
	"github.com/hqanh/theorytrainer/internal/service"
)

type ConceptController struct {
	conceptSvc service.ConceptService
}

func NewConceptController(conceptSvc service.ConceptService) *ConceptController {
	return &ConceptController{conceptSvc: conceptSvc}
}

// CreateConcept godoc
// @Summary Create a curated concept
// @Description Insert a concept/definition record directly, bypassing interactive curation
// @Tags admin
// @Accept json
// @Produce json
// @Param concept body dto.CreateConceptRequest true "Concept data"
// @Success 201 {object} dto.ConceptResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or category"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/concepts [post]
func (ctrl *ConceptController) CreateConcept(c *gin.Context) {
	var req dto.CreateConceptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CreateConceptRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.conceptSvc.CreateConcept(req)
	if err != nil {
		if errors.Is(err, service.ErrMalformedRecord) || errors.Is(err, service.ErrUnknownCategory) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		log.Error().Err(err).Msg("Failed to create concept")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create concept"})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetConcepts godoc
// @Summary List concepts
// @Description Retrieve curated concepts, optionally filtered by comma-separated categories
// @Tags concepts
// @Produce json
// @Param categories query string false "Comma-separated categories (Writing,Research,Stats)"
// @Success 200 {array} dto.ConceptResponse
// @Failure 400 {object} dto.ErrorResponse "Unknown category"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /concepts [get]
func (ctrl *ConceptController) GetConcepts(c *gin.Context) {
	categories, err := parseCategories(c.Query("categories"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	concepts, err := ctrl.conceptSvc.GetConcepts(categories)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list concepts")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve concepts"})
		return
	}
	c.JSON(http.StatusOK, concepts)
}

// GetCategories godoc
// @Summary List categories present in the store
// @Tags concepts
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /categories [get]
func (ctrl *ConceptController) GetCategories(c *gin.Context) {
	categories, err := ctrl.conceptSvc.GetCategories()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list categories")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// parseCategories splits a comma-separated category filter and validates
// each entry against the fixed set. Empty input means all categories.
func parseCategories(raw string) ([]model.Category, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var categories []model.Category
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		category, ok := model.ParseCategory(part)
		if !ok {
			return nil, service.ErrUnknownCategory
		}
		categories = append(categories, category)
	}
	return categories, nil
}
