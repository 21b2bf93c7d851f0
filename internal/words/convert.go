// Package words converts monetary amounts into written-out cheque text,
// in Thai or English. Conversion is pure: identical input always yields
// identical output, and malformed input yields the empty string.
package words

import (
	"github.com/chequeflow/chequeflow/internal/model"
)

// Convert renders an amount string as cheque text in the given language.
// Unparseable or negative input produces "" (never an error); zero
// produces the canonical zero phrase for the language.
func Convert(amount string, lang model.Language) string {
	amt, ok := model.ParseAmount(amount)
	if !ok {
		return ""
	}
	return ConvertAmount(amt, lang)
}

// ConvertAmount renders an already-parsed amount as cheque text.
func ConvertAmount(amt model.Amount, lang model.Language) string {
	if lang == model.LangEnglish {
		return englishText(amt)
	}
	return thaiText(amt)
}
