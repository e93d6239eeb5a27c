package lasership

// ShipperIdentity carries the fixed shipper-side details stamped onto
// every carrier order: the customer branch, the ordering party, and the
// origin facility the carrier pulls from.
type ShipperIdentity struct {
	CustomerBranch string
	OrderedByName  string
	OrderedByPhone string
	OrderedByEmail string

	OriginContact      string
	OriginOrganization string
	OriginAddress      string
	OriginAddress2     string
	OriginPostalCode   string
	OriginCity         string
	OriginState        string
	OriginCountry      string
	OriginPhone        string
	OriginEmail        string
}

// DefaultShipperIdentity returns the Brooklyn fulfillment facility
// identity used in production.
func DefaultShipperIdentity() ShipperIdentity {
	return ShipperIdentity{
		CustomerBranch: "CFDBRKLN",
		OrderedByName:  "Chef'd",
		OrderedByPhone: "3105311935",
		OrderedByEmail: "tech@chefd.com",

		OriginContact:      "Purple Carrot",
		OriginOrganization: "Purple Carrot",
		OriginAddress:      "365 Ten Eyck St.",
		OriginAddress2:     "",
		OriginPostalCode:   "11206",
		OriginCity:         "BROOKLYN",
		OriginState:        "NY",
		OriginCountry:      "US",
		OriginPhone:        "8577038188",
		OriginEmail:        "tech@chefd.com",
	}
}
