package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ChequeStatus marks a printed cheque as live or voided.
type ChequeStatus string

// Cheque record statuses.
const (
	StatusSuccess ChequeStatus = "SUCCESS"
	StatusVoid    ChequeStatus = "VOID"
)

// Cheque validation errors.
var (
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	ErrMissingPayee  = errors.New("payee is required")
)

// ChequeRecord is one entry in a user's print history.
type ChequeRecord struct {
	ID        string       `json:"id"`
	CreatedAt time.Time    `json:"createdAt"`
	PrintDate string       `json:"printDate"`
	ChequeNo  string       `json:"chequeNo"`
	Date      string       `json:"date"`
	Payee     string       `json:"payee"`
	Amount    string       `json:"amount"`
	Language  Language     `json:"chequeLang"`
	Bank      string       `json:"bank"`
	Status    ChequeStatus `json:"status"`
	ACPayee   bool         `json:"acPayee"`
	NoBearer  bool         `json:"noBearer"`
}

// Validate checks the record is printable: a positive amount and a payee.
func (r *ChequeRecord) Validate() error {
	amt, ok := ParseAmount(r.Amount)
	if !ok || amt.IsZero() {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(r.Payee) == "" {
		return ErrMissingPayee
	}
	return nil
}

// Voided reports whether the record has been voided.
func (r *ChequeRecord) Voided() bool {
	return r.Status == StatusVoid
}

// DateDigits is the cheque date split into the eight digit cells printed
// on the date line: dd mm yyyy.
type DateDigits struct {
	D1, D2 string
	M1, M2 string
	Y1, Y2 string
	Y3, Y4 string
}

// String joins the cells with the spacing used on the printed date line.
func (d DateDigits) String() string {
	return fmt.Sprintf("%s%s %s%s %s%s%s%s", d.D1, d.D2, d.M1, d.M2, d.Y1, d.Y2, d.Y3, d.Y4)
}

// SplitDate decomposes an ISO date (YYYY-MM-DD) into per-cell digits.
// Thai cheques carry the Buddhist Era year (+543). A malformed date
// yields empty cells rather than an error.
func SplitDate(date string, lang Language) DateDigits {
	parts := strings.SplitN(date, "-", 3)
	if len(parts) != 3 {
		return DateDigits{}
	}
	year, month, day := parts[0], parts[1], parts[2]
	if len(year) != 4 || len(month) != 2 || len(day) != 2 {
		return DateDigits{}
	}

	if lang == LangThai {
		y, err := strconv.Atoi(year)
		if err != nil {
			return DateDigits{}
		}
		year = strconv.Itoa(y + 543)
	}

	return DateDigits{
		D1: day[0:1], D2: day[1:2],
		M1: month[0:1], M2: month[1:2],
		Y1: year[0:1], Y2: year[1:2],
		Y3: year[2:3], Y4: year[3:4],
	}
}
