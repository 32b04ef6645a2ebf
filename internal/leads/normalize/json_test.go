package normalize

import (
	"testing"

	"leadsync_backend/internal/leads/transport"
	"leadsync_backend/platform/apperr"
)

func TestJSONRequiresObject(t *testing.T) {
	cases := []string{
		`"a string"`,
		`42`,
		`[{"name":"Jane"}]`,
		`true`,
		`null`,
		``,
		`{not json`,
	}
	for _, body := range cases {
		_, err := JSON([]byte(body))
		if !apperr.Is(err, apperr.KindValidation) {
			t.Errorf("body %q: expected validation error, got %v", body, err)
		}
	}
}

func TestJSONPromotesRecognizedFields(t *testing.T) {
	body := `{
		"source": "dealer-site",
		"subject": "New inquiry",
		"customer": {"name": "Jane Doe", "email": "jane@x.com", "phone": "555-1234"},
		"vehicle": {"year": 2021, "make": "Toyota", "model": "Corolla", "vin": "1NXBR32E84Z995078"},
		"comments": "call me",
		"campaign": "summer-sale"
	}`

	lead, err := JSON([]byte(body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lead.Source != "dealer-site" {
		t.Errorf("expected source dealer-site, got %q", lead.Source)
	}
	if lead.Format != transport.FormatJSON {
		t.Errorf("expected format json, got %q", lead.Format)
	}
	assertString(t, "subject", lead.Subject, "New inquiry")
	assertString(t, "customer.name", lead.Customer.Name, "Jane Doe")
	assertString(t, "customer.email", lead.Customer.Email, "jane@x.com")
	assertString(t, "customer.phone", lead.Customer.Phone, "555-1234")
	assertString(t, "vehicle.year", lead.Vehicle.Year, "2021")
	assertString(t, "vehicle.vin", lead.Vehicle.VIN, "1NXBR32E84Z995078")
	assertString(t, "comments", lead.Comments, "call me")

	// Unrecognized fields stay in the raw snapshot but are not promoted.
	if lead.Raw != body {
		t.Error("raw should preserve the original payload")
	}
}

func TestJSONDefaultsAndFlatFields(t *testing.T) {
	lead, err := JSON([]byte(`{"first_name": "Jane", "last_name": "Doe", "email": "jane@x.com", "phone": "555-1234"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lead.Source != transport.SourceWebhook {
		t.Errorf("expected default source webhook, got %q", lead.Source)
	}
	if lead.Format != transport.FormatJSON {
		t.Errorf("expected default format json, got %q", lead.Format)
	}
	assertString(t, "customer.name", lead.Customer.Name, "Jane Doe")
	assertString(t, "customer.email", lead.Customer.Email, "jane@x.com")
	assertString(t, "customer.phone", lead.Customer.Phone, "555-1234")
}

func TestJSONEmptyObjectNeverErrors(t *testing.T) {
	lead, err := JSON([]byte(`{}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lead.Customer.Name != nil || lead.Customer.Email != nil || lead.Customer.Phone != nil {
		t.Error("expected null customer fields")
	}
	if lead.Subject != nil || lead.Comments != nil {
		t.Error("expected null subject and comments")
	}
}

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"555-1234", "555-1234"},           // national, no region: pass through
		{"+1 415 555 2671", "+14155552671"}, // international: E.164
		{"+31 6 12345678", "+31612345678"},
		{"+999 junk", "+999 junk"}, // unparseable international: pass through
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizePhone(tc.in); got != tc.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
