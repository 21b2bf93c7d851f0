package words

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chequeflow/chequeflow/internal/model"
)

func TestConvertThai(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{name: "empty input", amount: "", want: ""},
		{name: "malformed input", amount: "abc", want: ""},
		{name: "negative input", amount: "-5", want: ""},
		{name: "zero", amount: "0", want: "ศูนย์บาทถ้วน"},
		{name: "single one keeps generic digit word", amount: "1", want: "หนึ่งบาทถ้วน"},
		{name: "silent tens-place one", amount: "10", want: "สิบบาทถ้วน"},
		{name: "eleven uses the unit-one word", amount: "11", want: "สิบเอ็ดบาทถ้วน"},
		{name: "twenty-one uses both tie-breaks", amount: "21", want: "ยี่สิบเอ็ดบาทถ้วน"},
		{name: "hundred", amount: "100", want: "หนึ่งร้อยบาทถ้วน"},
		{name: "hundred and one", amount: "101", want: "หนึ่งร้อยเอ็ดบาทถ้วน"},
		{name: "hundred eleven", amount: "111", want: "หนึ่งร้อยสิบเอ็ดบาทถ้วน"},
		{name: "one million", amount: "1000000", want: "หนึ่งล้านบาทถ้วน"},
		{name: "two million has one million word", amount: "2000000", want: "สองล้านบาทถ้วน"},
		{name: "two and a half million", amount: "2500000", want: "สองล้านห้าแสนบาทถ้วน"},
		{name: "ten million band", amount: "10000000", want: "หนึ่งสิบล้านบาทถ้วน"},
		{
			name:   "eight digits",
			amount: "12345678",
			want:   "หนึ่งสิบสองล้านสามแสนสี่หมื่นห้าพันหกร้อยเจ็ดสิบแปดบาทถ้วน",
		},
		{name: "baht and satang", amount: "1.50", want: "หนึ่งบาทห้าสิบสตางค์"},
		{name: "satang only", amount: "0.25", want: "ยี่สิบห้าสตางค์"},
		{name: "one satang uses the unit-one word", amount: "0.01", want: "เอ็ดสตางค์"},
		{name: "five satang", amount: "0.05", want: "ห้าสตางค์"},
		{name: "tie-breaks in both parts", amount: "21.21", want: "ยี่สิบเอ็ดบาทยี่สิบเอ็ดสตางค์"},
		{
			name:   "seven digits with satang",
			amount: "1234567.89",
			want:   "หนึ่งล้านสองแสนสามหมื่นสี่พันห้าร้อยหกสิบเจ็ดบาทแปดสิบเก้าสตางค์",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Convert(tt.amount, model.LangThai))
		})
	}
}

func TestConvertEnglish(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{name: "empty input", amount: "", want: ""},
		{name: "malformed input", amount: "12,000", want: ""},
		{name: "zero", amount: "0", want: "Zero Baht Only"},
		{name: "one", amount: "1", want: "One Baht Only"},
		{name: "hyphenated tens with minor clause", amount: "21.50", want: "Twenty-One Baht and Fifty Satang Only"},
		{name: "hundred", amount: "100", want: "One Hundred Baht Only"},
		{name: "hundred with teens remainder", amount: "115", want: "One Hundred Fifteen Baht Only"},
		{name: "thousand", amount: "1000", want: "One Thousand Baht Only"},
		{name: "million", amount: "1000000", want: "One Million Baht Only"},
		{
			name:   "full magnitude chain",
			amount: "1234567.89",
			want:   "One Million Two Hundred Thirty-Four Thousand Five Hundred Sixty-Seven Baht and Eighty-Nine Satang Only",
		},
		{name: "satang only", amount: "0.75", want: "Seventy-Five Satang Only"},
		{name: "one satang", amount: "0.01", want: "One Satang Only"},
		{name: "billion is out of range", amount: "1000000000", want: "Number too large Baht Only"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Convert(tt.amount, model.LangEnglish))
		})
	}
}

func TestConvertIsDeterministic(t *testing.T) {
	inputs := []string{"0", "1", "21.21", "1234567.89", "10000000", "0.01"}
	for _, in := range inputs {
		for _, lang := range []model.Language{model.LangThai, model.LangEnglish} {
			first := Convert(in, lang)
			second := Convert(in, lang)
			assert.Equal(t, first, second, "input %q lang %s", in, lang)
		}
	}
}

func TestConvertAmountZero(t *testing.T) {
	zero := model.Amount{}
	assert.Equal(t, "ศูนย์บาทถ้วน", ConvertAmount(zero, model.LangThai))
	assert.Equal(t, "Zero Baht Only", ConvertAmount(zero, model.LangEnglish))
}
