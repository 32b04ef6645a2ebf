package normalize

import (
	"bytes"
	"encoding/json"
	"strings"

	"leadsync_backend/internal/leads/transport"
	"leadsync_backend/platform/apperr"
)

// JSON normalizes an ad-hoc JSON lead notification. The payload must be
// an object; recognized top-level fields are promoted into the canonical
// shape, everything else stays available under Raw. Missing optional
// fields never fail.
func JSON(body []byte) (transport.LeadInput, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var obj map[string]interface{}
	if err := dec.Decode(&obj); err != nil {
		return transport.LeadInput{}, apperr.Wrap(apperr.KindValidation, "body must be a JSON object", err)
	}
	if obj == nil {
		return transport.LeadInput{}, apperr.Validation("body must be a JSON object")
	}

	lead := transport.LeadInput{
		Source:   stringField(obj, "source", transport.SourceWebhook),
		Format:   stringField(obj, "format", transport.FormatJSON),
		Subject:  optional(stringValue(obj["subject"])),
		Comments: optional(firstString(obj, "comments", "notes", "message")),
		Raw:      string(body),
	}

	customer := objectField(obj, "customer")
	lead.Customer = transport.Customer{
		Name:  optional(customerName(obj, customer)),
		Email: optional(coalesce(stringValue(customer["email"]), stringValue(obj["email"]))),
		Phone: optional(NormalizePhone(coalesce(stringValue(customer["phone"]), stringValue(obj["phone"])))),
	}

	vehicle := objectField(obj, "vehicle")
	lead.Vehicle = transport.Vehicle{
		Year:  optional(stringValue(vehicle["year"])),
		Make:  optional(stringValue(vehicle["make"])),
		Model: optional(stringValue(vehicle["model"])),
		VIN:   optional(stringValue(vehicle["vin"])),
	}
	lead.VehicleDescription = optional(stringValue(vehicle["description"]))

	return lead, nil
}

// customerName prefers an explicit customer.name, then a flat name field,
// then first/last name parts seen in ad-hoc producer payloads.
func customerName(obj, customer map[string]interface{}) string {
	if name := stringValue(customer["name"]); name != "" {
		return name
	}
	if name := stringValue(obj["name"]); name != "" {
		return name
	}
	first := firstString(obj, "firstName", "first_name")
	last := firstString(obj, "lastName", "last_name")
	return joinName(first, last)
}

func objectField(obj map[string]interface{}, key string) map[string]interface{} {
	if nested, ok := obj[key].(map[string]interface{}); ok {
		return nested
	}
	return map[string]interface{}{}
}

func stringField(obj map[string]interface{}, key, fallback string) string {
	if value := stringValue(obj[key]); value != "" {
		return value
	}
	return fallback
}

func firstString(obj map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if value := stringValue(obj[key]); value != "" {
			return value
		}
	}
	return ""
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// stringValue renders scalar JSON values as strings; producers routinely
// send numbers where strings are expected (vehicle year in particular).
func stringValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}
