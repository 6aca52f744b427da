// Package quoterepo maps quote aggregates to the quotes table.
package quoterepo

import (
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/quote"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// QuoteDTO is the database representation of a quote.
type QuoteDTO struct {
	ID                uuid.UUID             `gorm:"type:uuid;primaryKey"`
	ShipmentID        uuid.UUID             `gorm:"type:uuid;index;not null"`
	CarrierID         uuid.UUID             `gorm:"type:uuid;index;not null"`
	Price             decimal.Decimal       `gorm:"type:numeric(14,2);not null"`
	Currency          string                `gorm:"type:varchar(3);not null"`
	BaseRate          decimal.Decimal       `gorm:"type:numeric(14,2)"`
	Surcharges        []quote.SurchargeLine `gorm:"serializer:json"`
	SurchargeTotal    decimal.Decimal       `gorm:"type:numeric(14,2)"`
	InsuranceCost     decimal.Decimal       `gorm:"type:numeric(14,2)"`
	BillableWeight    float64               `gorm:"type:numeric(12,2)"`
	TransitDaysMin    int
	TransitDaysMax    int
	EstimatedDelivery time.Time
	TransportMode     string         `gorm:"type:varchar(16)"`
	ServicesIncluded  pq.StringArray `gorm:"type:text[]"`
	ValidUntil        time.Time      `gorm:"index"`
	IsSelected        bool           `gorm:"not null;default:false"`
	CreatedAt         time.Time
}

// TableName specifies the database table name for quotes.
func (QuoteDTO) TableName() string {
	return "quotes"
}

func fromDomain(q *quote.Quote) QuoteDTO {
	raw := q.Raw()
	return QuoteDTO{
		ID:                q.ID().Bytes(),
		ShipmentID:        q.ShipmentID().Bytes(),
		CarrierID:         raw.CarrierID.Bytes(),
		Price:             raw.Price,
		Currency:          raw.Currency,
		BaseRate:          raw.BaseRate,
		Surcharges:        raw.Surcharges,
		SurchargeTotal:    raw.SurchargeTotal,
		InsuranceCost:     raw.InsuranceCost,
		BillableWeight:    raw.BillableWeight,
		TransitDaysMin:    raw.TransitDaysMin,
		TransitDaysMax:    raw.TransitDaysMax,
		EstimatedDelivery: raw.EstimatedDelivery,
		TransportMode:     raw.TransportMode.String(),
		ServicesIncluded:  pq.StringArray(raw.ServicesIncluded),
		ValidUntil:        raw.ValidUntil,
		IsSelected:        q.IsSelected(),
		CreatedAt:         q.CreatedAt(),
	}
}

func toDomain(dto QuoteDTO) (*quote.Quote, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}
	carrierID, err := kernel.UUIDFromBytes(dto.CarrierID[:])
	if err != nil {
		return nil, err
	}

	surcharges := dto.Surcharges
	if surcharges == nil {
		surcharges = []quote.SurchargeLine{}
	}
	services := []string(dto.ServicesIncluded)
	if services == nil {
		services = []string{}
	}

	return quote.RestoreQuote(id, shipmentID, quote.RawQuote{
		CarrierID:         carrierID,
		Price:             dto.Price,
		Currency:          dto.Currency,
		BaseRate:          dto.BaseRate,
		Surcharges:        surcharges,
		SurchargeTotal:    dto.SurchargeTotal,
		InsuranceCost:     dto.InsuranceCost,
		BillableWeight:    dto.BillableWeight,
		TransitDaysMin:    dto.TransitDaysMin,
		TransitDaysMax:    dto.TransitDaysMax,
		EstimatedDelivery: dto.EstimatedDelivery,
		TransportMode:     kernel.TransportMode(dto.TransportMode),
		ServicesIncluded:  services,
		ValidUntil:        dto.ValidUntil,
	}, dto.IsSelected, dto.CreatedAt)
}
