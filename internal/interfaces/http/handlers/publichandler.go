package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/potluckhq/potluck/internal/application/potluck/usecases"
	"github.com/potluckhq/potluck/internal/interfaces/http/middleware"
	"github.com/potluckhq/potluck/internal/shared/logger"
	"github.com/potluckhq/potluck/internal/shared/utils"
)

// PublicHandler serves attendees who reach a potluck through its share link.
type PublicHandler struct {
	getPotluckUC      getPotluckUseCase
	claimItemUC       claimItemUseCase
	deleteOwnClaimUC  deleteOwnClaimUseCase
	addAttendeeItemUC addAttendeeItemUseCase
	logger            logger.Interface
}

func NewPublicHandler(
	getPotluckUC getPotluckUseCase,
	claimItemUC claimItemUseCase,
	deleteOwnClaimUC deleteOwnClaimUseCase,
	addAttendeeItemUC addAttendeeItemUseCase,
	logger logger.Interface,
) *PublicHandler {
	return &PublicHandler{
		getPotluckUC:      getPotluckUC,
		claimItemUC:       claimItemUC,
		deleteOwnClaimUC:  deleteOwnClaimUC,
		addAttendeeItemUC: addAttendeeItemUC,
		logger:            logger,
	}
}

// GetPotluck godoc
// @Summary Public potluck view
// @Description Categories, items, claimant names and remaining capacity. is_mine marks the caller's claims.
// @Tags public
// @Produce json
// @Param slug path string true "Potluck slug"
// @Success 200 {object} utils.APIResponse{data=dto.PotluckTreeDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /p/{slug} [get]
func (h *PublicHandler) GetPotluck(c *gin.Context) {
	result, err := h.getPotluckUC.Execute(c.Request.Context(), usecases.GetPotluckQuery{
		Slug:            c.Param("slug"),
		ViewerSessionID: middleware.AttendeeSessionID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ClaimItem godoc
// @Summary Claim an item
// @Tags public
// @Accept json
// @Produce json
// @Param slug path string true "Potluck slug"
// @Param item_id path int true "Item ID"
// @Param claim body ClaimItemRequest true "Claimant"
// @Success 201 {object} utils.APIResponse{data=dto.ClaimDTO}
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /p/{slug}/items/{item_id}/claims [post]
func (h *PublicHandler) ClaimItem(c *gin.Context) {
	itemID, err := utils.ParseID(c, "item_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ClaimItemRequest
	if err := utils.BindRequest(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.claimItemUC.Execute(c.Request.Context(), usecases.ClaimItemCommand{
		Slug:         c.Param("slug"),
		ItemID:       itemID,
		AttendeeName: req.AttendeeName,
		ItemDetails:  req.ItemDetails,
		SessionID:    middleware.AttendeeSessionID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Item claimed successfully")
}

// DeleteOwnClaim godoc
// @Summary Remove own claim
// @Description Succeeds only for the browser session that made the claim, with the same attendee name
// @Tags public
// @Accept json
// @Param slug path string true "Potluck slug"
// @Param claim_id path int true "Claim ID"
// @Param claimant body DeleteOwnClaimRequest true "Attendee name used when claiming"
// @Success 204
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /p/{slug}/claims/{claim_id} [delete]
func (h *PublicHandler) DeleteOwnClaim(c *gin.Context) {
	claimID, err := utils.ParseID(c, "claim_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req DeleteOwnClaimRequest
	if err := utils.BindRequest(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.deleteOwnClaimUC.Execute(c.Request.Context(), usecases.DeleteOwnClaimCommand{
		Slug:         c.Param("slug"),
		ClaimID:      claimID,
		SessionID:    middleware.AttendeeSessionID(c),
		AttendeeName: req.AttendeeName,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// AddAttendeeItem godoc
// @Summary Suggest an item
// @Description Adds an attendee item while the category is below max_items
// @Tags public
// @Accept json
// @Produce json
// @Param slug path string true "Potluck slug"
// @Param category_id path int true "Category ID"
// @Param item body AttendeeItemRequest true "Item"
// @Success 201 {object} utils.APIResponse{data=dto.ItemDTO}
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /p/{slug}/categories/{category_id}/items [post]
func (h *PublicHandler) AddAttendeeItem(c *gin.Context) {
	categoryID, err := utils.ParseID(c, "category_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AttendeeItemRequest
	if err := utils.BindRequest(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addAttendeeItemUC.Execute(c.Request.Context(), usecases.AddAttendeeItemCommand{
		Slug:        c.Param("slug"),
		CategoryID:  categoryID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Item added successfully")
}
