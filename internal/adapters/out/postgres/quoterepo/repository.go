package quoterepo

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/quote"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormQuoteRepository implements ports.QuoteRepository using GORM.
type GormQuoteRepository struct {
	db *gorm.DB
}

// NewGormQuoteRepository creates a new GORM quote repository.
func NewGormQuoteRepository(db *gorm.DB) *GormQuoteRepository {
	return &GormQuoteRepository{db: db}
}

// Add inserts quotes in one statement.
func (r *GormQuoteRepository) Add(ctx context.Context, quotes ...*quote.Quote) error {
	if len(quotes) == 0 {
		return nil
	}

	dtos := make([]QuoteDTO, 0, len(quotes))
	for _, q := range quotes {
		if err := q.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(q))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// Update stores the selection state of existing quotes.
func (r *GormQuoteRepository) Update(ctx context.Context, quotes ...*quote.Quote) error {
	for _, q := range quotes {
		if err := q.Validate(); err != nil {
			return err
		}

		result := r.db.WithContext(ctx).
			Model(&QuoteDTO{}).
			Where("id = ?", q.ID().Bytes()).
			Update("is_selected", q.IsSelected())
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("quote", q.ID().String())
		}
	}
	return nil
}

// Get retrieves a quote by ID.
func (r *GormQuoteRepository) Get(ctx context.Context, id kernel.UUID) (*quote.Quote, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto QuoteDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("quote", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListByShipment returns all quotes of a shipment, cheapest first.
func (r *GormQuoteRepository) ListByShipment(ctx context.Context, shipmentID kernel.UUID) ([]*quote.Quote, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []QuoteDTO
	if err := r.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID.Bytes()).
		Order("price ASC").Order("id ASC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	quotes := make([]*quote.Quote, 0, len(dtos))
	for _, dto := range dtos {
		q, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}

	return quotes, nil
}
