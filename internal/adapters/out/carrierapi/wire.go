package carrierapi

import "time"

type party struct {
	PostalCode  string `json:"postalCode"`
	CityName    string `json:"cityName"`
	CountryCode string `json:"countryCode"`
}

type dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type packageSpec struct {
	Weight     float64    `json:"weight,omitempty"`
	Quantity   int        `json:"quantity"`
	Dimensions dimensions `json:"dimensions"`
}

type rateRequest struct {
	CustomerDetails struct {
		ShipperDetails  party `json:"shipperDetails"`
		ReceiverDetails party `json:"receiverDetails"`
	} `json:"customerDetails"`
	PlannedShippingDateAndTime string        `json:"plannedShippingDateAndTime"`
	UnitOfMeasurement          string        `json:"unitOfMeasurement"`
	IsCustomsDeclarable        bool          `json:"isCustomsDeclarable"`
	TotalWeight                float64       `json:"totalWeight"`
	TransportMode              string        `json:"transportMode,omitempty"`
	DeclaredValue              string        `json:"declaredValue,omitempty"`
	DeclaredValueCurrency      string        `json:"declaredValueCurrency,omitempty"`
	Packages                   []packageSpec `json:"packages"`
}

type price struct {
	Price         float64 `json:"price"`
	PriceCurrency string  `json:"priceCurrency"`
}

type product struct {
	ProductCode          string  `json:"productCode"`
	TransportMode        string  `json:"transportMode"`
	TotalPrice           []price `json:"totalPrice"`
	DeliveryCapabilities struct {
		EstimatedDeliveryDateAndTime string `json:"estimatedDeliveryDateAndTime"`
		TotalTransitDays             int    `json:"totalTransitDays"`
		MinTransitDays               int    `json:"minTransitDays"`
	} `json:"deliveryCapabilities"`
	Services []string `json:"services"`
}

type rateResponse struct {
	Products []product `json:"products"`
}

type contactInformation struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
}

type postalAddress struct {
	CityName     string `json:"cityName"`
	CountryCode  string `json:"countryCode"`
	PostalCode   string `json:"postalCode"`
	AddressLine1 string `json:"addressLine1,omitempty"`
}

type shipmentParty struct {
	PostalAddress      postalAddress      `json:"postalAddress"`
	ContactInformation contactInformation `json:"contactInformation"`
}

type account struct {
	TypeCode string `json:"typeCode"`
	Number   string `json:"number"`
}

type shipmentRequest struct {
	PlannedShippingDateAndTime string `json:"plannedShippingDateAndTime"`
	Pickup                     struct {
		IsRequested bool `json:"isRequested"`
	} `json:"pickup"`
	ProductCode     string    `json:"productCode"`
	Reference       string    `json:"reference"`
	Accounts        []account `json:"accounts"`
	CustomerDetails struct {
		ShipperDetails  shipmentParty `json:"shipperDetails"`
		ReceiverDetails shipmentParty `json:"receiverDetails"`
	} `json:"customerDetails"`
	Content struct {
		Weight float64 `json:"weight"`
	} `json:"content"`
}

type shipmentResponse struct {
	ShipmentTrackingNumber     string `json:"shipmentTrackingNumber"`
	DispatchConfirmationNumber string `json:"dispatchConfirmationNumber"`
}

type serviceArea struct {
	Description string `json:"description"`
}

type trackingEvent struct {
	TypeCode    string        `json:"typeCode"`
	Description string        `json:"description"`
	Date        string        `json:"date"`
	ServiceArea []serviceArea `json:"serviceArea"`
}

type trackingResponse struct {
	Shipments []struct {
		ShipmentTrackingNumber string          `json:"shipmentTrackingNumber"`
		Events                 []trackingEvent `json:"events"`
	} `json:"shipments"`
}

type labelResponse struct {
	URL string `json:"url"`
}

func (e trackingEvent) location() string {
	if len(e.ServiceArea) == 0 {
		return ""
	}
	return e.ServiceArea[0].Description
}

// timestamp accepts RFC 3339 and the date-only form some carriers send.
func (e trackingEvent) timestamp() (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", time.DateOnly} {
		if t, err := time.Parse(layout, e.Date); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
