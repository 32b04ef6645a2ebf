// Package normalize turns the two inbound wire formats (ad-hoc JSON and
// the ADF XML dialect found in email bodies) into the one canonical lead
// shape. Normalizers are pure: raw bytes in, canonical lead or typed
// error out.
package normalize

import (
	"strings"

	"leadsync_backend/internal/leads/transport"
	"leadsync_backend/platform/apperr"
)

const (
	adfOpenTag  = "<adf"
	adfCloseTag = "</adf>"
)

// ADF normalizes an ADF/XML lead notification. The input is typically an
// email body with mail headers and MIME boundaries around the fragment,
// so only the first <adf>...</adf> slice is parsed. A missing or
// structurally unparsable fragment is rejected; absent fields inside a
// well-formed fragment never are.
func ADF(body []byte) (transport.LeadInput, error) {
	text := string(body)

	start := strings.Index(text, adfOpenTag)
	end := strings.Index(text, adfCloseTag)
	if start == -1 || end == -1 || end < start {
		return transport.LeadInput{}, apperr.Parse("no ADF fragment found in body")
	}
	fragment := text[start : end+len(adfCloseTag)]

	root, err := parseXMLNode(fragment)
	if err != nil {
		return transport.LeadInput{}, apperr.Wrap(apperr.KindParse, "malformed ADF fragment", err)
	}

	prospect := root.first("prospect")
	customer := prospect.first("customer")
	contact := customer.first("contact")

	firstName, lastName := contactNameParts(contact)

	lead := transport.LeadInput{
		Source: transport.SourceWebhook,
		Format: transport.FormatADF,
		Customer: transport.Customer{
			Name:  optional(joinName(firstName, lastName)),
			Email: optional(contact.childText("email")),
			Phone: optional(NormalizePhone(contact.childText("phone"))),
		},
		Comments: optional(prospect.childText("comments")),
		Raw:      fragment,
	}

	if vehicle := prospect.first("vehicle"); vehicle != nil {
		lead.Vehicle = transport.Vehicle{
			Year:  optional(vehicle.childText("year")),
			Make:  optional(vehicle.childText("make")),
			Model: optional(vehicle.childText("model")),
			VIN:   optional(vehicle.childText("vin")),
		}
		lead.VehicleDescription = optional(vehicle.childText("description"))
	}
	if tradeIn := prospect.first("trade-in"); tradeIn != nil {
		lead.TradeInDescription = optional(tradeIn.childText("description"))
	} else if tradeIn := prospect.first("trade_in"); tradeIn != nil {
		// Some senders use an underscore instead of the documented hyphen.
		lead.TradeInDescription = optional(tradeIn.childText("description"))
	}

	return lead, nil
}

// contactNameParts extracts the first and last name from the repeated
// <name> elements of a contact. Senders either tag parts with a part
// attribute or rely on document order; both independently optional.
func contactNameParts(contact *xmlNode) (first, last string) {
	names := contact.all("name")
	var untagged []string

	for _, n := range names {
		switch strings.ToLower(n.attr("part")) {
		case "first":
			if first == "" {
				first = n.text()
			}
		case "last":
			if last == "" {
				last = n.text()
			}
		case "full":
			if first == "" && last == "" {
				parts := strings.SplitN(n.text(), " ", 2)
				first = parts[0]
				if len(parts) > 1 {
					last = parts[1]
				}
			}
		default:
			untagged = append(untagged, n.text())
		}
	}

	// Positional fallback for senders that omit the part attribute.
	if first == "" && len(untagged) > 0 {
		first = untagged[0]
	}
	if last == "" && len(untagged) > 1 {
		last = untagged[1]
	}
	return first, last
}

func joinName(first, last string) string {
	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	default:
		return last
	}
}

// optional maps the empty string to a null canonical field.
func optional(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
