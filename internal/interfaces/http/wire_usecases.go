package http

import (
	"fmt"

	authUsecases "github.com/potluckhq/potluck/internal/application/auth/usecases"
	"github.com/potluckhq/potluck/internal/application/potluck/usecases"
	"github.com/potluckhq/potluck/internal/infrastructure/auth"
	"github.com/potluckhq/potluck/internal/shared/id"
	"github.com/potluckhq/potluck/internal/shared/services/markdown"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Admin auth
	loginUC         *authUsecases.LoginAdminUseCase
	logoutUC        *authUsecases.LogoutAdminUseCase
	verifySessionUC *authUsecases.VerifyAdminSessionUseCase

	// Potluck
	listPotlucksUC  *usecases.ListPotlucksUseCase
	createPotluckUC *usecases.CreatePotluckUseCase
	getPotluckUC    *usecases.GetPotluckUseCase
	updatePotluckUC *usecases.UpdatePotluckUseCase
	deletePotluckUC *usecases.DeletePotluckUseCase

	// Category
	addCategoryUC    *usecases.AddCategoryUseCase
	updateCategoryUC *usecases.UpdateCategoryUseCase
	deleteCategoryUC *usecases.DeleteCategoryUseCase

	// Item
	addItemUC         *usecases.AddItemUseCase
	updateItemUC      *usecases.UpdateItemUseCase
	deleteItemUC      *usecases.DeleteItemUseCase
	addAttendeeItemUC *usecases.AddAttendeeItemUseCase

	// Claim
	claimItemUC      *usecases.ClaimItemUseCase
	updateClaimUC    *usecases.UpdateClaimUseCase
	deleteClaimUC    *usecases.DeleteClaimUseCase
	deleteOwnClaimUC *usecases.DeleteOwnClaimUseCase
}

func (r *Router) initUseCases() error {
	password, err := auth.NewAdminPassword(&r.cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to prepare admin password: %w", err)
	}
	tokens := auth.NewSessionTokenService(r.cfg.Auth.SecretKey, r.cfg.Auth.SessionTTL())
	renderer := markdown.NewMarkdownService()

	p, c, i, cl, tx := r.repos.potluckRepo, r.repos.categoryRepo, r.repos.itemRepo, r.repos.claimRepo, r.repos.txManager

	r.ucs = &allUseCases{
		loginUC:         authUsecases.NewLoginAdminUseCase(password, tokens, r.log),
		logoutUC:        authUsecases.NewLogoutAdminUseCase(r.sessionStore, tokens, r.log),
		verifySessionUC: authUsecases.NewVerifyAdminSessionUseCase(tokens, r.sessionStore, r.log),

		listPotlucksUC:  usecases.NewListPotlucksUseCase(p, r.log),
		createPotluckUC: usecases.NewCreatePotluckUseCase(p, id.NewSlug, r.log),
		getPotluckUC:    usecases.NewGetPotluckUseCase(p, c, i, cl, renderer, r.log),
		updatePotluckUC: usecases.NewUpdatePotluckUseCase(p, r.log),
		deletePotluckUC: usecases.NewDeletePotluckUseCase(p, r.log),

		addCategoryUC:    usecases.NewAddCategoryUseCase(p, c, r.log),
		updateCategoryUC: usecases.NewUpdateCategoryUseCase(p, c, r.log),
		deleteCategoryUC: usecases.NewDeleteCategoryUseCase(p, c, r.log),

		addItemUC:         usecases.NewAddItemUseCase(p, c, i, r.log),
		updateItemUC:      usecases.NewUpdateItemUseCase(p, c, i, cl, tx, r.log),
		deleteItemUC:      usecases.NewDeleteItemUseCase(p, c, i, r.log),
		addAttendeeItemUC: usecases.NewAddAttendeeItemUseCase(p, c, i, tx, renderer, r.log),

		claimItemUC:      usecases.NewClaimItemUseCase(p, c, i, cl, tx, renderer, r.log),
		updateClaimUC:    usecases.NewUpdateClaimUseCase(p, c, i, cl, renderer, r.log),
		deleteClaimUC:    usecases.NewDeleteClaimUseCase(p, c, i, cl, r.log),
		deleteOwnClaimUC: usecases.NewDeleteOwnClaimUseCase(p, c, i, cl, renderer, r.log),
	}
	return nil
}
