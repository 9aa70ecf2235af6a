package http

import (
	"fmt"

	"github.com/potluckhq/potluck/internal/interfaces/http/handlers"
	"github.com/potluckhq/potluck/internal/interfaces/http/middleware"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	authHandler   *handlers.AuthHandler
	adminHandler  *handlers.AdminHandler
	publicHandler *handlers.PublicHandler
	healthHandler *handlers.HealthHandler
}

func (r *Router) initHandlers() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	u := r.ucs
	r.hdlrs = &allHandlers{
		authHandler: handlers.NewAuthHandler(u.loginUC, u.logoutUC, r.cfg.Auth.Cookie, r.log),
		adminHandler: handlers.NewAdminHandler(handlers.AdminUseCases{
			ListPotlucks:   u.listPotlucksUC,
			CreatePotluck:  u.createPotluckUC,
			GetPotluck:     u.getPotluckUC,
			UpdatePotluck:  u.updatePotluckUC,
			DeletePotluck:  u.deletePotluckUC,
			AddCategory:    u.addCategoryUC,
			UpdateCategory: u.updateCategoryUC,
			DeleteCategory: u.deleteCategoryUC,
			AddItem:        u.addItemUC,
			UpdateItem:     u.updateItemUC,
			DeleteItem:     u.deleteItemUC,
			UpdateClaim:    u.updateClaimUC,
			DeleteClaim:    u.deleteClaimUC,
		}, r.log),
		publicHandler: handlers.NewPublicHandler(u.getPotluckUC, u.claimItemUC, u.deleteOwnClaimUC, u.addAttendeeItemUC, r.log),
		healthHandler: handlers.NewHealthHandler(sqlDB, r.log),
	}

	r.adminAuth = middleware.NewAdminAuthMiddleware(u.verifySessionUC, r.log)
	return nil
}
