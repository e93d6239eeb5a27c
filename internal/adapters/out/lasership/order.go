package lasership

import (
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
)

const (
	serviceCode = "RD"
	pickupType  = "LaserShip"

	timestampLayout = "2006-01-02T15:04:05Z"
)

// wireOrder is the carrier's PlaceOrder request payload.
type wireOrder struct {
	CustomerBranch      string      `json:"CustomerBranch"`
	CustomerOrderNumber string      `json:"CustomerOrderNumber"`
	OrderedFor          string      `json:"OrderedFor"`
	OrderedBy           orderedBy   `json:"OrderedBy"`
	Reference1          string      `json:"Reference1"`
	Reference2          string      `json:"Reference2"`
	ServiceCode         string      `json:"ServiceCode"`
	PickupType          string      `json:"PickupType"`
	Origin              location    `json:"Origin"`
	Destination         location    `json:"Destination"`
	Pieces              []wirePiece `json:"Pieces"`
}

type orderedBy struct {
	Name  string `json:"Name"`
	Phone string `json:"Phone"`
	Email string `json:"Email"`
}

type location struct {
	LocationType                string `json:"LocationType"`
	CustomerClientID            string `json:"CustomerClientID"`
	Contact                     string `json:"Contact"`
	Organization                string `json:"Organization"`
	Address                     string `json:"Address"`
	Address2                    string `json:"Address2"`
	PostalCode                  string `json:"PostalCode"`
	City                        string `json:"City"`
	State                       string `json:"State"`
	Country                     string `json:"Country"`
	Phone                       string `json:"Phone"`
	PhoneExtension              string `json:"PhoneExtension"`
	Email                       string `json:"Email"`
	Payor                       string `json:"Payor"`
	Instruction                 string `json:"Instruction"`
	Note                        string `json:"Note"`
	UTCExpectedReadyForPickupBy string `json:"UTCExpectedReadyForPickupBy,omitempty"`
	UTCExpectedDeparture        string `json:"UTCExpectedDeparture,omitempty"`
	UTCExpectedDeliveryBy       string `json:"UTCExpectedDeliveryBy,omitempty"`
	CustomerRoute               string `json:"CustomerRoute"`
	CustomerSequence            string `json:"CustomerSequence"`
}

type wirePiece struct {
	ContainerType         string          `json:"ContainerType"`
	CustomerBarcode       string          `json:"CustomerBarcode"`
	CustomerPalletBarcode string          `json:"CustomerPalletBarcode"`
	Weight                string          `json:"Weight"`
	WeightUnit            string          `json:"WeightUnit"`
	Width                 int             `json:"Width"`
	Length                int             `json:"Length"`
	Height                int             `json:"Height"`
	DimensionUnit         string          `json:"DimensionUnit"`
	Description           string          `json:"Description"`
	Reference             string          `json:"Reference"`
	DeclaredValue         int             `json:"DeclaredValue"`
	DeclaredValueCurrency string          `json:"DeclaredValueCurrency"`
	SignatureType         string          `json:"SignatureType"`
	Attributes            []pieceAttribute `json:"Attributes"`
}

type pieceAttribute struct {
	Type        string `json:"Type"`
	Description string `json:"Description"`
}

// buildWireOrder assembles the carrier order from a validated record, the
// configured shipper identity, and the pull schedule of the ship date.
func buildWireOrder(o *order.Order, identity ShipperIdentity, schedule services.PullSchedule) wireOrder {
	return wireOrder{
		CustomerBranch:      identity.CustomerBranch,
		CustomerOrderNumber: o.ID(),
		OrderedFor:          o.Field(order.FieldContactName),
		OrderedBy: orderedBy{
			Name:  identity.OrderedByName,
			Phone: identity.OrderedByPhone,
			Email: identity.OrderedByEmail,
		},
		Reference1:  o.Field(order.FieldReference),
		Reference2:  o.ID(),
		ServiceCode: serviceCode,
		PickupType:  pickupType,
		Origin: location{
			LocationType:                "Business",
			Contact:                     identity.OriginContact,
			Organization:                identity.OriginOrganization,
			Address:                     identity.OriginAddress,
			Address2:                    identity.OriginAddress2,
			PostalCode:                  identity.OriginPostalCode,
			City:                        identity.OriginCity,
			State:                       identity.OriginState,
			Country:                     identity.OriginCountry,
			Phone:                       identity.OriginPhone,
			Email:                       identity.OriginEmail,
			UTCExpectedReadyForPickupBy: formatTimestamp(schedule.ReadyForPickup),
			UTCExpectedDeparture:        formatTimestamp(schedule.Departure),
		},
		Destination: location{
			LocationType:          "Residence",
			Contact:               o.Field(order.FieldContactName),
			Organization:          o.Field(order.FieldCompanyName),
			Address:               o.Field(order.FieldAddress1),
			Address2:              o.Field(order.FieldAddress2),
			PostalCode:            o.Field(order.FieldPostalCode),
			City:                  o.Field(order.FieldCity),
			State:                 o.Field(order.FieldState),
			Country:               o.Field(order.FieldCountry),
			Phone:                 o.Field(order.FieldTelephone),
			Instruction:           o.Field(order.FieldInstructions),
			UTCExpectedDeliveryBy: o.Field(order.FieldDeliveryDate),
		},
		Pieces: []wirePiece{
			{
				ContainerType:         "CustomPackaging",
				Weight:                o.Field(order.FieldWeight),
				WeightUnit:            "lbs",
				Width:                 13,
				Length:                13,
				Height:                13,
				DimensionUnit:         "in",
				Description:           "Meal Kit",
				DeclaredValue:         65,
				DeclaredValueCurrency: "USD",
				SignatureType:         "NotRequired",
				Attributes: []pieceAttribute{
					{Type: "Perishable", Description: ""},
				},
			},
		},
	}
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
