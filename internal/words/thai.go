package words

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chequeflow/chequeflow/internal/model"
)

var (
	thaiDigits = []string{"ศูนย์", "หนึ่ง", "สอง", "สาม", "สี่", "ห้า", "หก", "เจ็ด", "แปด", "เก้า"}
	thaiUnits  = []string{"", "สิบ", "ร้อย", "พัน", "หมื่น", "แสน", "ล้าน"}
)

const (
	thaiZeroPhrase = "ศูนย์บาทถ้วน"
	thaiOneUnit    = "เอ็ด" // units-place one in a multi-digit number
	thaiTwenty     = "ยี่"  // tens-place two
	thaiBaht       = "บาท"
	thaiSatang     = "สตางค์"
	thaiEven       = "ถ้วน" // "even amount", replaces the satang clause
)

// thaiText writes the amount in Thai cheque wording. The integer and
// fractional parts are decomposed independently; the satang part is
// always treated as two digits so a trailing one still gets the
// units-place tie-break (0.01 reads as เอ็ดสตางค์).
func thaiText(amt model.Amount) string {
	if amt.IsZero() {
		return thaiZeroPhrase
	}

	var b strings.Builder
	if amt.Baht > 0 {
		writeThaiDigits(&b, strconv.FormatInt(amt.Baht, 10))
		b.WriteString(thaiBaht)
	}

	if amt.Satang > 0 {
		writeThaiDigits(&b, fmt.Sprintf("%02d", amt.Satang))
		b.WriteString(thaiSatang)
	} else {
		b.WriteString(thaiEven)
	}
	return b.String()
}

// writeThaiDigits emits the positional wording for one run of decimal
// digits. Positions cycle through the unit words every six places, and
// position 6 exactly appends the million word on top of the cycle --
// including when the digit there is zero, which is how repeated
// million-groupings chain for numbers of ten million and up.
func writeThaiDigits(b *strings.Builder, digits string) {
	length := len(digits)
	for i := 0; i < length; i++ {
		digit := int(digits[i] - '0')
		pos := length - i - 1

		if digit != 0 {
			switch {
			case pos == 0 && digit == 1 && length > 1:
				b.WriteString(thaiOneUnit)
			case pos == 1 && digit == 2:
				b.WriteString(thaiTwenty)
			case pos == 1 && digit == 1:
				// tens-place one is silent; only the unit word appears
			default:
				b.WriteString(thaiDigits[digit])
			}
			b.WriteString(thaiUnits[pos%6])
		}

		if pos == 6 {
			b.WriteString(thaiUnits[6])
		}
	}
}
