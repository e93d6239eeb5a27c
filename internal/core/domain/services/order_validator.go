package services

import (
	"fmt"
	"strconv"
	"strings"

	"fulfillment/internal/core/domain/model/order"
)

// requiredFields is the fixed list of fields every order must carry.
// The declared order here is the order missing-field clauses appear in
// the rejection message, regardless of input column order.
var requiredFields = []string{
	order.FieldContactName,
	order.FieldAddress1,
	order.FieldCity,
	order.FieldCountry,
	order.FieldCarrier,
	order.FieldState,
	order.FieldTelephone,
	order.FieldPostalCode,
	order.FieldShipDate,
	order.FieldWeight,
	order.FieldTransitDays,
}

// telephonePlaceholder replaces phone numbers with fewer than ten digits,
// which the carrier would reject outright.
const telephonePlaceholder = "1111111111"

// OrderValidator is a domain service that checks raw orders for required
// fields and normalizes the fields the carrier is strict about.
//
// Validation rules:
//   - Every field in the required list must be present and non-empty
//   - Missing fields are concatenated into a single rejection message,
//     one "Missing <FIELD>" clause per field, in required-list order
//   - Normalization runs only on present, non-empty fields; an empty field
//     is never "corrected", it is reported missing
//
// Normalization rules:
//   - TELEPHONE: stripped of non-digits; fewer than ten digits becomes a
//     fixed placeholder
//   - POSTAL_CODE: a four-character code is left-padded with one zero
//     (US ZIP leading-zero repair); any other length passes through
//   - TNT: coerced from string to an integer transit-day count
//
// Validation is idempotent: re-validating an already validated order leaves
// every field unchanged.
type OrderValidator struct{}

// NewOrderValidator creates a new OrderValidator instance.
func NewOrderValidator() OrderValidator {
	return OrderValidator{}
}

// Validate partitions orders into valid and rejected sets. Rejected orders
// are marked with a message of the form
// "Sales Order <id>: Missing <FIELD>[, Missing <FIELD>...]".
// Every input order appears in exactly one of the two returned slices.
func (v OrderValidator) Validate(orders []*order.Order) (valid []*order.Order, rejected []*order.Order) {
	for _, o := range orders {
		if clauses := v.check(o); len(clauses) > 0 {
			o.MarkFailed(fmt.Sprintf("Sales Order %s:%s", o.ID(), strings.Join(clauses, ",")))
			rejected = append(rejected, o)
			continue
		}
		valid = append(valid, o)
	}
	return valid, rejected
}

// check validates and normalizes one order, returning the error clauses for
// any missing or malformed required fields.
func (v OrderValidator) check(o *order.Order) []string {
	var clauses []string

	for _, field := range requiredFields {
		value := o.Field(field)
		if value == "" {
			clauses = append(clauses, " Missing "+field)
			continue
		}

		switch field {
		case order.FieldTelephone:
			o.SetField(field, normalizeTelephone(value))
		case order.FieldPostalCode:
			o.SetField(field, normalizePostalCode(value))
		case order.FieldTransitDays:
			days, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				clauses = append(clauses, " Invalid "+field)
				continue
			}
			o.SetTransitDays(days)
		}
	}

	return clauses
}

// normalizeTelephone strips every non-digit character. Numbers with fewer
// than ten digits are replaced with the fixed placeholder.
func normalizeTelephone(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() < 10 {
		return telephonePlaceholder
	}
	return digits.String()
}

// normalizePostalCode repairs US ZIP codes that lost a leading zero in the
// tabular input. Only exactly-four-character codes are padded.
func normalizePostalCode(zip string) string {
	if len(zip) == 4 {
		return "0" + zip
	}
	return zip
}
