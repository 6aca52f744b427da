package configstore

import (
	"context"
	"errors"
	"time"

	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/pricing"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

const effectiveAt = "(effective_from IS NULL OR effective_from <= ?) AND (effective_until IS NULL OR effective_until >= ?)"

// GormConfigurationStore implements ports.ConfigurationStore using GORM.
type GormConfigurationStore struct {
	db *gorm.DB
}

// NewGormConfigurationStore creates a configuration store reading from db.
func NewGormConfigurationStore(db *gorm.DB) *GormConfigurationStore {
	return &GormConfigurationStore{db: db}
}

// ActiveCarriers returns active carriers ordered by creation.
func (s *GormConfigurationStore) ActiveCarriers(ctx context.Context) ([]*carrier.Carrier, error) {
	var dtos []CarrierDTO
	if err := s.db.WithContext(ctx).
		Preload("Company").
		Where("is_active = ?", true).
		Order("created_at ASC").Order("id ASC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}
	return mapAll(dtos, carrierToDomain)
}

// Carrier returns one carrier regardless of activation.
func (s *GormConfigurationStore) Carrier(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CarrierDTO
	if err := s.db.WithContext(ctx).Preload("Company").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("carrier", id.String())
		}
		return nil, err
	}
	return carrierToDomain(dto)
}

// Zones returns the zones of a carrier with their postal matchers.
func (s *GormConfigurationStore) Zones(ctx context.Context, carrierID kernel.UUID) ([]pricing.Zone, error) {
	var dtos []ZoneDTO
	if err := s.db.WithContext(ctx).
		Preload("PostalMatchers", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC").Order("id ASC")
		}).
		Where("carrier_id = ?", carrierID.Bytes()).
		Order("position ASC").Order("id ASC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}
	return mapAll(dtos, zoneToDomain)
}

// RateCards returns the rate cards of a carrier effective at now.
func (s *GormConfigurationStore) RateCards(ctx context.Context, carrierID kernel.UUID, now time.Time) ([]pricing.RateCard, error) {
	var dtos []RateCardDTO
	if err := s.db.WithContext(ctx).
		Where("carrier_id = ?", carrierID.Bytes()).
		Where(effectiveAt, now, now).
		Order("position ASC").Order("id ASC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}
	return mapAll(dtos, rateCardToDomain)
}

// Surcharges returns the active surcharges of a carrier effective at now.
func (s *GormConfigurationStore) Surcharges(ctx context.Context, carrierID kernel.UUID, now time.Time) ([]pricing.Surcharge, error) {
	var dtos []SurchargeDTO
	if err := s.db.WithContext(ctx).
		Where("carrier_id = ? AND is_active = ?", carrierID.Bytes(), true).
		Where(effectiveAt, now, now).
		Order("type ASC").Order("id ASC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}
	return mapAll(dtos, surchargeToDomain)
}

// PricingRules returns the pricing rules of a carrier effective at now, newest first.
func (s *GormConfigurationStore) PricingRules(ctx context.Context, carrierID kernel.UUID, now time.Time) ([]pricing.PricingRule, error) {
	var dtos []PricingRuleDTO
	if err := s.db.WithContext(ctx).
		Where("carrier_id = ?", carrierID.Bytes()).
		Where(effectiveAt, now, now).
		Order("created_at DESC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}
	return mapAll(dtos, pricingRuleToDomain)
}

// Terminals returns the active terminals of a carrier.
func (s *GormConfigurationStore) Terminals(ctx context.Context, carrierID kernel.UUID) ([]pricing.Terminal, error) {
	var dtos []TerminalDTO
	if err := s.db.WithContext(ctx).
		Where("carrier_id = ? AND is_active = ?", carrierID.Bytes(), true).
		Order("code ASC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}
	return mapAll(dtos, terminalToDomain)
}
