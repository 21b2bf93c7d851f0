package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitDate(t *testing.T) {
	tests := []struct {
		name string
		date string
		lang Language
		want string
	}{
		{name: "english keeps the calendar year", date: "2024-03-09", lang: LangEnglish, want: "09 03 2024"},
		{name: "thai converts to buddhist era", date: "2024-03-09", lang: LangThai, want: "09 03 2567"},
		{name: "malformed date yields empty cells", date: "not-a-date", lang: LangThai, want: "  "},
		{name: "empty date yields empty cells", date: "", lang: LangEnglish, want: "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitDate(tt.date, tt.lang).String())
		})
	}
}

func TestChequeRecordValidate(t *testing.T) {
	rec := ChequeRecord{Payee: "ACME Supplies", Amount: "150.00"}
	assert.NoError(t, rec.Validate())

	zero := ChequeRecord{Payee: "ACME Supplies", Amount: "0"}
	assert.ErrorIs(t, zero.Validate(), ErrInvalidAmount)

	bad := ChequeRecord{Payee: "ACME Supplies", Amount: "nope"}
	assert.ErrorIs(t, bad.Validate(), ErrInvalidAmount)

	noPayee := ChequeRecord{Payee: "  ", Amount: "10"}
	assert.ErrorIs(t, noPayee.Validate(), ErrMissingPayee)
}

func TestLayoutClone(t *testing.T) {
	original := Layout{FieldDate: {X: 125, Y: 12}}
	clone := original.Clone()
	clone[FieldDate] = Position{X: 1, Y: 1}

	assert.Equal(t, Position{X: 125, Y: 12}, original[FieldDate])
}
