package pricing

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository handles persistence for the offer catalog
type Repository interface {
	ListPlans(ctx context.Context) ([]Plan, error)
	ListPacks(ctx context.Context) ([]CreditPack, error)
	ListActionCosts(ctx context.Context) ([]CreditActionCost, error)
	Seed(ctx context.Context, catalog *Catalog) error
	Load(ctx context.Context) (*Catalog, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListPlans(ctx context.Context) ([]Plan, error) {
	var plans []Plan
	err := r.db.WithContext(ctx).Order("sort_order ASC").Find(&plans).Error
	return plans, err
}

func (r *repository) ListPacks(ctx context.Context) ([]CreditPack, error) {
	var packs []CreditPack
	err := r.db.WithContext(ctx).Order("sort_order ASC").Find(&packs).Error
	return packs, err
}

func (r *repository) ListActionCosts(ctx context.Context) ([]CreditActionCost, error) {
	var scale []CreditActionCost
	err := r.db.WithContext(ctx).Order("id ASC").Find(&scale).Error
	return scale, err
}

// Seed upserts the catalog rows. Safe to run on every start.
func (r *repository) Seed(ctx context.Context, catalog *Catalog) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, p := range catalog.Plans {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&p).Error; err != nil {
				return err
			}
		}
		for _, p := range catalog.Packs {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&p).Error; err != nil {
				return err
			}
		}
		for _, a := range catalog.Scale {
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "action"}},
				UpdateAll: true,
			}).Create(&a).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Load reads the full catalog into memory. Seeds the defaults first when the
// plans table is empty, so a fresh database serves prices immediately.
func (r *repository) Load(ctx context.Context) (*Catalog, error) {
	plans, err := r.ListPlans(ctx)
	if err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		if err := r.Seed(ctx, DefaultCatalog()); err != nil {
			return nil, err
		}
		if plans, err = r.ListPlans(ctx); err != nil {
			return nil, err
		}
	}

	packs, err := r.ListPacks(ctx)
	if err != nil {
		return nil, err
	}
	scale, err := r.ListActionCosts(ctx)
	if err != nil {
		return nil, err
	}

	return &Catalog{Plans: plans, Packs: packs, Scale: scale}, nil
}
