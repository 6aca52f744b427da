// Package configstore reads carrier pricing configuration from postgres.
// Tables are owned by the carrier administration service; this package only reads them.
package configstore

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// CompanyDTO is the owning company of a carrier.
type CompanyDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string
	IsVerified bool `gorm:"not null;default:false"`
}

func (CompanyDTO) TableName() string { return "companies" }

// CarrierDTO is a carrier with its coverage and integration settings.
type CarrierDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID         uuid.UUID `gorm:"type:uuid;index;not null"`
	Company           CompanyDTO
	Name              string            `gorm:"not null"`
	Kind              string            `gorm:"type:varchar(32);not null;default:manual"`
	IsActive          bool              `gorm:"index;not null;default:false"`
	TransportModes    pq.StringArray    `gorm:"type:text[]"`
	Countries         pq.StringArray    `gorm:"type:text[]"`
	IntegrationConfig map[string]string `gorm:"serializer:json"`
	CreatedAt         time.Time
}

func (CarrierDTO) TableName() string { return "carriers" }

// ZoneDTO is a carrier zone.
type ZoneDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	CarrierID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Code           string    `gorm:"not null"`
	Name           string
	CountryCode    string `gorm:"type:varchar(64)"`
	Description    string
	Position       int                `gorm:"not null;default:0"`
	PostalMatchers []PostalMatcherDTO `gorm:"foreignKey:ZoneID"`
}

func (ZoneDTO) TableName() string { return "zones" }

// PostalMatcherDTO is a postal code prefix or range of a zone.
type PostalMatcherDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ZoneID       uuid.UUID `gorm:"type:uuid;index;not null"`
	Prefix       string
	RangeFrom    string
	RangeTo      string
	CountryCode  string
	City         string
	IsRemoteArea bool `gorm:"not null;default:false"`
	Position     int  `gorm:"not null;default:0"`
}

func (PostalMatcherDTO) TableName() string { return "postal_matchers" }

// RateCardDTO is a weight banded price of a zone pair.
type RateCardDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CarrierID         uuid.UUID       `gorm:"type:uuid;index;not null"`
	OriginZoneID      *uuid.UUID      `gorm:"type:uuid"`
	DestinationZoneID *uuid.UUID      `gorm:"type:uuid"`
	TransportMode     string          `gorm:"type:varchar(16)"`
	WeightMin         float64         `gorm:"type:numeric(12,3);not null;default:0"`
	WeightMax         *float64        `gorm:"type:numeric(12,3)"`
	Rate              decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	Unit              string          `gorm:"type:varchar(16);not null;default:per_kg"`
	Currency          string          `gorm:"type:varchar(3)"`
	TransitDaysMin    *int
	TransitDaysMax    *int
	EffectiveFrom     *time.Time
	EffectiveUntil    *time.Time
	Position          int `gorm:"not null;default:0"`
}

func (RateCardDTO) TableName() string { return "rate_cards" }

// SurchargeDTO is an additional charge of a carrier.
type SurchargeDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	CarrierID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Type           string    `gorm:"type:varchar(32);not null"`
	Name           string
	Calculation    string           `gorm:"type:varchar(16);not null"`
	Value          decimal.Decimal  `gorm:"type:numeric(14,4);not null"`
	MinValue       *decimal.Decimal `gorm:"type:numeric(14,2)"`
	MaxValue       *decimal.Decimal `gorm:"type:numeric(14,2)"`
	TransportModes pq.StringArray   `gorm:"type:text[]"`
	IsActive       bool             `gorm:"not null;default:true"`
	EffectiveFrom  *time.Time
	EffectiveUntil *time.Time
}

func (SurchargeDTO) TableName() string { return "surcharges" }

// PricingRuleDTO holds the carrier wide pricing parameters.
type PricingRuleDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CarrierID      uuid.UUID       `gorm:"type:uuid;index;not null"`
	DimFactor      int             `gorm:"not null;default:5000"`
	MinimumCharge  decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	InsuranceRate  decimal.Decimal `gorm:"type:numeric(6,3);not null;default:0.5"`
	Currency       string          `gorm:"type:varchar(3)"`
	EffectiveFrom  *time.Time
	EffectiveUntil *time.Time
	CreatedAt      time.Time
}

func (PricingRuleDTO) TableName() string { return "pricing_rules" }

// TerminalDTO is a physical location of a carrier.
type TerminalDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CarrierID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Code        string
	Name        string
	Type        string
	CountryCode string
	City        string
	Address     string
	PostalCode  string
	Latitude    float64 `gorm:"type:numeric(10,7)"`
	Longitude   float64 `gorm:"type:numeric(10,7)"`
	Phone       string
	Email       string
	IsActive    bool `gorm:"index;not null;default:true"`
}

func (TerminalDTO) TableName() string { return "terminals" }

// Models lists every table of the configuration schema, for migrations.
func Models() []any {
	return []any{
		&CompanyDTO{}, &CarrierDTO{}, &ZoneDTO{}, &PostalMatcherDTO{},
		&RateCardDTO{}, &SurchargeDTO{}, &PricingRuleDTO{}, &TerminalDTO{},
	}
}
