package http

import (
	"github.com/potluckhq/potluck/internal/domain/potluck"
	"github.com/potluckhq/potluck/internal/infrastructure/repository"
	"github.com/potluckhq/potluck/internal/shared/db"
)

// repositories holds the storage adapters shared by every use case.
type repositories struct {
	potluckRepo  potluck.PotluckRepository
	categoryRepo potluck.CategoryRepository
	itemRepo     potluck.ItemRepository
	claimRepo    potluck.ClaimRepository
	txManager    *db.TransactionManager
}

func (r *Router) initRepositories() {
	r.repos = &repositories{
		potluckRepo:  repository.NewPotluckRepository(r.db),
		categoryRepo: repository.NewCategoryRepository(r.db),
		itemRepo:     repository.NewItemRepository(r.db),
		claimRepo:    repository.NewClaimRepository(r.db),
		txManager:    db.NewTransactionManager(r.db),
	}
}
