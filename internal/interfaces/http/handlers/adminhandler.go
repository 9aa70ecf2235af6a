package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/potluckhq/potluck/internal/application/potluck/dto"
	"github.com/potluckhq/potluck/internal/application/potluck/usecases"
	"github.com/potluckhq/potluck/internal/shared/logger"
	"github.com/potluckhq/potluck/internal/shared/utils"
)

// referenced from swagger annotations
var _ = dto.PotluckTreeDTO{}

// AdminUseCases groups the organizer operations behind the admin routes.
type AdminUseCases struct {
	ListPotlucks   listPotlucksUseCase
	CreatePotluck  createPotluckUseCase
	GetPotluck     getPotluckUseCase
	UpdatePotluck  updatePotluckUseCase
	DeletePotluck  deleteBySlugUseCase
	AddCategory    addCategoryUseCase
	UpdateCategory updateCategoryUseCase
	DeleteCategory deleteChildUseCase
	AddItem        addItemUseCase
	UpdateItem     updateItemUseCase
	DeleteItem     deleteChildUseCase
	UpdateClaim    updateClaimUseCase
	DeleteClaim    deleteChildUseCase
}

type AdminHandler struct {
	uc     AdminUseCases
	logger logger.Interface
}

func NewAdminHandler(uc AdminUseCases, logger logger.Interface) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// Dashboard godoc
// @Summary Admin dashboard
// @Description List every potluck, newest first, with category, item and claim counts
// @Tags admin
// @Produce json
// @Security AdminSession
// @Success 200 {object} utils.APIResponse{data=dto.DashboardDTO}
// @Failure 401 {object} utils.APIResponse
// @Router /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	result, err := h.uc.ListPotlucks.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreatePotluck godoc
// @Summary Create potluck
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminSession
// @Param potluck body CreatePotluckRequest true "Potluck data"
// @Success 201 {object} utils.APIResponse{data=dto.PotluckDTO}
// @Failure 422 {object} utils.APIResponse
// @Router /admin/potlucks [post]
func (h *AdminHandler) CreatePotluck(c *gin.Context) {
	var req CreatePotluckRequest
	if err := utils.BindRequest(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.uc.CreatePotluck.Execute(c.Request.Context(), usecases.CreatePotluckCommand{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Potluck created successfully")
}

// GetPotluck godoc
// @Summary Potluck management view
// @Description Full tree of categories, items and claims
// @Tags admin
// @Produce json
// @Security AdminSession
// @Param slug path string true "Potluck slug"
// @Success 200 {object} utils.APIResponse{data=dto.PotluckTreeDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /admin/potlucks/{slug} [get]
func (h *AdminHandler) GetPotluck(c *gin.Context) {
	result, err := h.uc.GetPotluck.Execute(c.Request.Context(), usecases.GetPotluckQuery{Slug: c.Param("slug")})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdatePotluck godoc
// @Summary Edit potluck metadata
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminSession
// @Param slug path string true "Potluck slug"
// @Param potluck body UpdatePotluckRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=dto.PotluckDTO}
// @Failure 404 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /admin/potlucks/{slug} [put]
func (h *AdminHandler) UpdatePotluck(c *gin.Context) {
	var req UpdatePotluckRequest
	if err := utils.BindRequest(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.uc.UpdatePotluck.Execute(c.Request.Context(), usecases.UpdatePotluckCommand{
		Slug:        c.Param("slug"),
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Potluck updated successfully", result)
}

// DeletePotluck godoc
// @Summary Delete potluck
// @Description Removes the potluck with all categories, items and claims
// @Tags admin
// @Security AdminSession
// @Param slug path string true "Potluck slug"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /admin/potlucks/{slug} [delete]
func (h *AdminHandler) DeletePotluck(c *gin.Context) {
	if err := h.uc.DeletePotluck.Execute(c.Request.Context(), c.Param("slug")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// AddCategory godoc
// @Summary Add category
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminSession
// @Param slug path string true "Potluck slug"
// @Param category body CreateCategoryRequest true "Category data"
// @Success 201 {object} utils.APIResponse{data=dto.CategoryDTO}
// @Failure 404 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /admin/potlucks/{slug}/categories [post]
func (h *AdminHandler) AddCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := utils.BindRequest(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.uc.AddCategory.Execute(c.Request.Context(), usecases.AddCategoryCommand{
		Slug:         c.Param("slug"),
		Name:         req.Name,
		Description:  req.Description,
		MaxItems:     req.MaxItems,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Category created successfully")
}

// UpdateCategory godoc
// @Summary Edit category
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminSession
// @Param slug path string true "Potluck slug"
// @Param category_id path int true "Category ID"
// @Param category body UpdateCategoryRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=dto.CategoryDTO}
// @Failure 404 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /admin/potlucks/{slug}/categories/{category_id} [put]
func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	categoryID, err := utils.ParseID(c, "category_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateCategoryRequest
	if err := utils.BindRequest(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.uc.UpdateCategory.Execute(c.Request.Context(), usecases.UpdateCategoryCommand{
		Slug:         c.Param("slug"),
		CategoryID:   categoryID,
		Name:         req.Name,
		Description:  req.Description,
		MaxItems:     req.MaxItems,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Category updated successfully", result)
}

// DeleteCategory godoc
// @Summary Delete category
// @Description Removes the category with its items and claims
// @Tags admin
// @Security AdminSession
// @Param slug path string true "Potluck slug"
// @Param category_id path int true "Category ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /admin/potlucks/{slug}/categories/{category_id} [delete]
func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	h.deleteChild(c, "category_id", h.uc.DeleteCategory)
}

// AddItem godoc
// @Summary Add item
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminSession
// @Param slug path string true "Potluck slug"
// @Param category_id path int true "Category ID"
// @Param item body CreateItemRequest true "Item data"
// @Success 201 {object} utils.APIResponse{data=dto.ItemDTO}
// @Failure 404 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /admin/potlucks/{slug}/categories/{category_id}/items [post]
func (h *AdminHandler) AddItem(c *gin.Context) {
	categoryID, err := utils.ParseID(c, "category_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateItemRequest
	if err := utils.BindRequest(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.uc.AddItem.Execute(c.Request.Context(), usecases.AddItemCommand{
		Slug:           c.Param("slug"),
		CategoryID:     categoryID,
		Name:           req.Name,
		Description:    req.Description,
		ClaimLimit:     req.ClaimLimit,
		RequireDetails: req.RequireDetails,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Item created successfully")
}

// UpdateItem godoc
// @Summary Edit item
// @Description claim_limit cannot drop below the number of existing claims
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminSession
// @Param slug path string true "Potluck slug"
// @Param item_id path int true "Item ID"
// @Param item body UpdateItemRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=dto.ItemDTO}
// @Failure 404 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /admin/potlucks/{slug}/items/{item_id} [put]
func (h *AdminHandler) UpdateItem(c *gin.Context) {
	itemID, err := utils.ParseID(c, "item_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateItemRequest
	if err := utils.BindRequest(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.uc.UpdateItem.Execute(c.Request.Context(), usecases.UpdateItemCommand{
		Slug:           c.Param("slug"),
		ItemID:         itemID,
		Name:           req.Name,
		Description:    req.Description,
		ClaimLimit:     req.ClaimLimit,
		RequireDetails: req.RequireDetails,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Item updated successfully", result)
}

// DeleteItem godoc
// @Summary Delete item
// @Description Removes the item and its claims
// @Tags admin
// @Security AdminSession
// @Param slug path string true "Potluck slug"
// @Param item_id path int true "Item ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /admin/potlucks/{slug}/items/{item_id} [delete]
func (h *AdminHandler) DeleteItem(c *gin.Context) {
	h.deleteChild(c, "item_id", h.uc.DeleteItem)
}

// UpdateClaim godoc
// @Summary Edit claim
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminSession
// @Param slug path string true "Potluck slug"
// @Param claim_id path int true "Claim ID"
// @Param claim body UpdateClaimRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=dto.ClaimDTO}
// @Failure 404 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /admin/potlucks/{slug}/claims/{claim_id} [put]
func (h *AdminHandler) UpdateClaim(c *gin.Context) {
	claimID, err := utils.ParseID(c, "claim_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateClaimRequest
	if err := utils.BindRequest(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.uc.UpdateClaim.Execute(c.Request.Context(), usecases.UpdateClaimCommand{
		Slug:         c.Param("slug"),
		ClaimID:      claimID,
		AttendeeName: req.AttendeeName,
		ItemDetails:  req.ItemDetails,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Claim updated successfully", result)
}

// DeleteClaim godoc
// @Summary Delete claim
// @Tags admin
// @Security AdminSession
// @Param slug path string true "Potluck slug"
// @Param claim_id path int true "Claim ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /admin/potlucks/{slug}/claims/{claim_id} [delete]
func (h *AdminHandler) DeleteClaim(c *gin.Context) {
	h.deleteChild(c, "claim_id", h.uc.DeleteClaim)
}

func (h *AdminHandler) deleteChild(c *gin.Context, param string, uc deleteChildUseCase) {
	id, err := utils.ParseID(c, param)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if err := uc.Execute(c.Request.Context(), c.Param("slug"), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
