package ecd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hendrawanz/ecard-filler/internal/automator/form"
)

func TestClassifyField(t *testing.T) {
	tests := []struct {
		name string
		desc fieldDescriptor
		want form.FieldKind
	}{
		{
			"id substring wins",
			fieldDescriptor{ID: "passportNo-8f2a"},
			form.FieldPassport,
		},
		{
			"id beats placeholder",
			fieldDescriptor{ID: "arrivalDate-c41d", Placeholder: "Passport number"},
			form.FieldArrival,
		},
		{
			"placeholder when id is opaque",
			fieldDescriptor{ID: "field-19ac", Placeholder: "Nama Lengkap / Full Name"},
			form.FieldFullName,
		},
		{
			"nearby text as last resort",
			fieldDescriptor{ID: "field-2", Nearby: "Alamat di Indonesia\nwajib diisi"},
			form.FieldAddress,
		},
		{
			"indonesian id keyword",
			fieldDescriptor{Nearby: "Tanggal Lahir / Date of Birth"},
			form.FieldBirthDate,
		},
		{
			"departure not mistaken for arrival",
			fieldDescriptor{ID: "departureDate-77"},
			form.FieldDeparture,
		},
		{
			"flight name id not mistaken for full name",
			fieldDescriptor{ID: "flightName-0b"},
			form.FieldFlight,
		},
		{
			"unclassifiable is still reported",
			fieldDescriptor{ID: "x-91", Placeholder: "???", Nearby: "---"},
			form.FieldUnknown,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, classifyField(tc.desc))
		})
	}
}

func TestClassifyField_PlaceholderFullNameNotPassport(t *testing.T) {
	// "Full name as in passport" mentions both; order in the keyword table
	// decides, and passport is the more specific signal.
	got := classifyField(fieldDescriptor{Placeholder: "Full name as in passport"})
	assert.Equal(t, form.FieldPassport, got)
}
