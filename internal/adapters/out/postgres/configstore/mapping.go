package configstore

import (
	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/pricing"

	"github.com/google/uuid"
)

func carrierToDomain(dto CarrierDTO) (*carrier.Carrier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}
	kind, err := carrier.ParseKind(dto.Kind)
	if err != nil {
		kind = carrier.KindMock
	}

	c, err := carrier.NewCarrier(id, companyID, dto.Name, kind)
	if err != nil {
		return nil, err
	}
	if err = c.SupportTransportModes(parseModes(dto.TransportModes)...); err != nil {
		return nil, err
	}
	c.SupportCountries(dto.Countries...)
	c.Configure(dto.IntegrationConfig)
	if dto.IsActive {
		c.Activate()
	}
	if dto.Company.IsVerified {
		c.VerifyCompany()
	}
	return c, nil
}

// parseModes drops unknown modes.
func parseModes(raw []string) []kernel.TransportMode {
	modes := make([]kernel.TransportMode, 0, len(raw))
	for _, s := range raw {
		if mode, err := kernel.ParseTransportMode(s); err == nil {
			modes = append(modes, mode)
		}
	}
	return modes
}

func zoneToDomain(dto ZoneDTO) (pricing.Zone, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return pricing.Zone{}, err
	}
	carrierID, err := kernel.UUIDFromBytes(dto.CarrierID[:])
	if err != nil {
		return pricing.Zone{}, err
	}

	matchers := make([]pricing.PostalMatcher, 0, len(dto.PostalMatchers))
	for _, m := range dto.PostalMatchers {
		matchers = append(matchers, pricing.PostalMatcher{
			Prefix:       m.Prefix,
			From:         m.RangeFrom,
			To:           m.RangeTo,
			CountryCode:  m.CountryCode,
			City:         m.City,
			IsRemoteArea: m.IsRemoteArea,
		})
	}

	return pricing.Zone{
		ID:             id,
		CarrierID:      carrierID,
		Code:           dto.Code,
		Name:           dto.Name,
		CountryCode:    dto.CountryCode,
		Description:    dto.Description,
		PostalMatchers: matchers,
	}, nil
}

func rateCardToDomain(dto RateCardDTO) (pricing.RateCard, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return pricing.RateCard{}, err
	}
	carrierID, err := kernel.UUIDFromBytes(dto.CarrierID[:])
	if err != nil {
		return pricing.RateCard{}, err
	}
	originZoneID, err := optionalUUID(dto.OriginZoneID)
	if err != nil {
		return pricing.RateCard{}, err
	}
	destinationZoneID, err := optionalUUID(dto.DestinationZoneID)
	if err != nil {
		return pricing.RateCard{}, err
	}

	var mode kernel.TransportMode
	if dto.TransportMode != "" {
		if mode, err = kernel.ParseTransportMode(dto.TransportMode); err != nil {
			return pricing.RateCard{}, err
		}
	}
	unit, err := pricing.ParseRateUnit(dto.Unit)
	if err != nil {
		unit = pricing.RateUnitPerKg
	}

	return pricing.RateCard{
		ID:                id,
		CarrierID:         carrierID,
		OriginZoneID:      originZoneID,
		DestinationZoneID: destinationZoneID,
		TransportMode:     mode,
		WeightMin:         dto.WeightMin,
		WeightMax:         dto.WeightMax,
		Rate:              dto.Rate,
		Unit:              unit,
		Currency:          dto.Currency,
		TransitDaysMin:    dto.TransitDaysMin,
		TransitDaysMax:    dto.TransitDaysMax,
		Window:            kernel.EffectiveWindow{From: dto.EffectiveFrom, Until: dto.EffectiveUntil},
	}, nil
}

func surchargeToDomain(dto SurchargeDTO) (pricing.Surcharge, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return pricing.Surcharge{}, err
	}
	carrierID, err := kernel.UUIDFromBytes(dto.CarrierID[:])
	if err != nil {
		return pricing.Surcharge{}, err
	}

	return pricing.Surcharge{
		ID:             id,
		CarrierID:      carrierID,
		Type:           pricing.SurchargeType(dto.Type),
		Name:           dto.Name,
		Calculation:    pricing.Calculation(dto.Calculation),
		Value:          dto.Value,
		MinValue:       dto.MinValue,
		MaxValue:       dto.MaxValue,
		TransportModes: parseModes(dto.TransportModes),
		IsActive:       dto.IsActive,
		Window:         kernel.EffectiveWindow{From: dto.EffectiveFrom, Until: dto.EffectiveUntil},
	}, nil
}

func pricingRuleToDomain(dto PricingRuleDTO) (pricing.PricingRule, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return pricing.PricingRule{}, err
	}
	carrierID, err := kernel.UUIDFromBytes(dto.CarrierID[:])
	if err != nil {
		return pricing.PricingRule{}, err
	}

	return pricing.PricingRule{
		ID:            id,
		CarrierID:     carrierID,
		DimFactor:     dto.DimFactor,
		MinimumCharge: dto.MinimumCharge,
		InsuranceRate: dto.InsuranceRate,
		Currency:      dto.Currency,
		Window:        kernel.EffectiveWindow{From: dto.EffectiveFrom, Until: dto.EffectiveUntil},
		CreatedAt:     dto.CreatedAt,
	}, nil
}

func terminalToDomain(dto TerminalDTO) (pricing.Terminal, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return pricing.Terminal{}, err
	}
	carrierID, err := kernel.UUIDFromBytes(dto.CarrierID[:])
	if err != nil {
		return pricing.Terminal{}, err
	}

	return pricing.Terminal{
		ID:          id,
		CarrierID:   carrierID,
		Code:        dto.Code,
		Name:        dto.Name,
		Type:        dto.Type,
		CountryCode: dto.CountryCode,
		City:        dto.City,
		Address:     dto.Address,
		PostalCode:  dto.PostalCode,
		Latitude:    dto.Latitude,
		Longitude:   dto.Longitude,
		Phone:       dto.Phone,
		Email:       dto.Email,
		IsActive:    dto.IsActive,
	}, nil
}

func optionalUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	parsed, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func mapAll[D, M any](dtos []D, mapper func(D) (M, error)) ([]M, error) {
	models := make([]M, 0, len(dtos))
	for _, dto := range dtos {
		m, err := mapper(dto)
		if err != nil {
			return nil, err
		}
		models = append(models, m)
	}
	return models, nil
}
