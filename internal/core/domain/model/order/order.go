package order

import (
	"strings"
	"time"

	"fulfillment/internal/pkg/errs"
)

// Normalized field names of the batch input columns. Column headers are
// normalized by the input adapter (non-word runs replaced with underscores,
// uppercased), so "Sales Order #" becomes SALES_ORDER_.
const (
	FieldSalesOrder   = "SALES_ORDER_"
	FieldContactName  = "CONTACT_NAME"
	FieldCompanyName  = "COMPANY_NAME"
	FieldAddress1     = "ADDRESS_1"
	FieldAddress2     = "ADDRESS_2"
	FieldCity         = "CITY"
	FieldState        = "STATE"
	FieldCountry      = "COUNTRY"
	FieldCarrier      = "CARRIER"
	FieldTelephone    = "TELEPHONE"
	FieldPostalCode   = "POSTAL_CODE"
	FieldShipDate     = "SHIP_DATE"
	FieldWeight       = "WEIGHT"
	FieldTransitDays  = "TNT"
	FieldReference    = "REFERENCE"
	FieldInstructions = "SPECIAL_DELIVERY_INSTRUCTIONS"

	// FieldDeliveryDate is added by the pipeline once the delivery
	// commitment has been resolved; it is never part of the input.
	FieldDeliveryDate = "DELIVERY_DATE"

	// FieldErrors carries the failure reason of a rejected or failed order.
	// It only ever appears on failed orders.
	FieldErrors = "ERRORS"
)

// ErrOrderHasNoColumns is returned when an Order is constructed without any columns.
var ErrOrderHasNoColumns = errs.NewValueIsRequiredError("order must carry at least one input column")

// shipDateLayouts are the accepted SHIP_DATE formats, tried in order.
var shipDateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	time.RFC3339,
}

// Order is one shipment record of a batch run. It carries the normalized
// input fields of a single row plus the state the pipeline attaches to it:
// the coerced transit time, the resolved delivery date, and, for rejected
// or failed orders, a human-readable failure reason.
//
// An Order moves through the run in exactly one of two terminal states:
// succeeded (a label and tracking number were purchased) or failed (the
// failure reason is set). The failure reason is terminal for the run.
//
// Example:
//
//	o, err := order.New(
//	    []string{"SALES_ORDER_", "CONTACT_NAME"},
//	    map[string]string{"SALES_ORDER_": "123456", "CONTACT_NAME": "Jane Doe"},
//	)
//	if err != nil {
//	    // handle construction error
//	}
//	fmt.Println(o.ID()) // Output: 123456
type Order struct {
	columns     []string
	fields      map[string]string
	transitDays int
	failure     string
}

// New creates an Order from the normalized column list and field values of
// one input row. The column list preserves input column order; it is what
// the failed-orders manifest uses as its header. Fields not present in the
// map read as empty strings.
func New(columns []string, fields map[string]string) (*Order, error) {
	if len(columns) == 0 {
		return nil, ErrOrderHasNoColumns
	}

	cols := make([]string, len(columns))
	copy(cols, columns)

	vals := make(map[string]string, len(fields))
	for name, value := range fields {
		vals[name] = value
	}

	return &Order{
		columns: cols,
		fields:  vals,
	}, nil
}

// ID returns the sales order number identifying this order.
func (o *Order) ID() string {
	return o.fields[FieldSalesOrder]
}

// Field returns the value of the named field, or an empty string when absent.
// FieldErrors reads the failure reason.
func (o *Order) Field(name string) string {
	if name == FieldErrors {
		return o.failure
	}
	return o.fields[name]
}

// SetField sets the value of the named field. Fields not present in the
// original input are appended to the column list so manifests include them.
func (o *Order) SetField(name string, value string) {
	if _, ok := o.fields[name]; !ok && !o.hasColumn(name) {
		o.columns = append(o.columns, name)
	}
	o.fields[name] = value
}

// Columns returns the record's field names in input column order,
// including any fields added by the pipeline.
func (o *Order) Columns() []string {
	cols := make([]string, len(o.columns))
	copy(cols, o.columns)
	return cols
}

// TransitDays returns the carrier transit time in days, as coerced by the validator.
func (o *Order) TransitDays() int {
	return o.transitDays
}

// SetTransitDays records the coerced transit time.
func (o *Order) SetTransitDays(days int) {
	o.transitDays = days
}

// ShipDate parses the SHIP_DATE field. The calendar day of the result is the
// day the carrier's pull-time window applies to.
func (o *Order) ShipDate() (time.Time, error) {
	raw := o.Field(FieldShipDate)
	for _, layout := range shipDateLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, errs.NewValueIsInvalidError(FieldShipDate + " " + raw)
}

// DestinationAddress renders the destination as a single geocodable line:
// "ADDRESS_1 ADDRESS_2, CITY, STATE POSTAL_CODE".
func (o *Order) DestinationAddress() string {
	street := strings.TrimSpace(o.Field(FieldAddress1) + " " + o.Field(FieldAddress2))
	return street + ", " + o.Field(FieldCity) + ", " +
		o.Field(FieldState) + " " + o.Field(FieldPostalCode)
}

// MarkFailed records the failure reason, quarantining the order for this run.
func (o *Order) MarkFailed(reason string) {
	o.failure = reason
}

// Failed reports whether the order has been rejected or has failed downstream.
func (o *Order) Failed() bool {
	return o.failure != ""
}

// FailureReason returns the human-readable failure reason, empty when the
// order has not failed.
func (o *Order) FailureReason() string {
	return o.failure
}

func (o *Order) hasColumn(name string) bool {
	for _, col := range o.columns {
		if col == name {
			return true
		}
	}
	return false
}
