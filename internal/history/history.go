// Package history records printed cheques per user: append on print,
// void/restore, running totals, and CSV export of the full report.
package history

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"

	"github.com/chequeflow/chequeflow/internal/common"
	"github.com/chequeflow/chequeflow/internal/model"
	"github.com/chequeflow/chequeflow/internal/service"
	"github.com/chequeflow/chequeflow/internal/storage"
)

// csvHeader carries the Thai column headers of the exported report.
var csvHeader = []string{
	"วันที่พิมพ์", "เลขที่เช็ค", "วันที่หน้าเช็ค", "ธนาคาร",
	"สั่งจ่ายแก่", "จำนวนเงิน", "รูปแบบ", "สถานะ",
}

// Service manages a user's print history through the storage service.
type Service struct {
	store service.Storage
	newID func() string
	now   func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithIDFunc overrides record ID generation. Test hook.
func WithIDFunc(f func() string) Option {
	return func(s *Service) { s.newID = f }
}

// WithClock overrides the service's clock. Test hook.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a history service backed by store.
func NewService(store service.Storage, opts ...Option) *Service {
	s := &Service{
		store: store,
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns a user's history, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]model.ChequeRecord, error) {
	raw, ok, err := s.store.Get(ctx, storage.UserHistoryKey(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var records []model.ChequeRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("failed to decode history: %w", err)
	}
	return records, nil
}

// FindDuplicate returns the most recent non-voided record with the same
// cheque number on the same bank, or nil. Blank cheque numbers never
// count as duplicates.
func (s *Service) FindDuplicate(ctx context.Context, userID, chequeNo, bank string) (*model.ChequeRecord, error) {
	if chequeNo == "" {
		return nil, nil
	}

	records, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range records {
		r := &records[i]
		if r.ChequeNo == chequeNo && r.Bank == bank && !r.Voided() {
			return r, nil
		}
	}
	return nil, nil
}

// Append records a freshly printed cheque at the head of the history,
// filling in the record's identity and timestamps.
func (s *Service) Append(ctx context.Context, userID string, rec model.ChequeRecord) (model.ChequeRecord, error) {
	if err := rec.Validate(); err != nil {
		return model.ChequeRecord{}, err
	}

	records, err := s.List(ctx, userID)
	if err != nil {
		return model.ChequeRecord{}, err
	}

	now := s.now()
	rec.ID = s.newID()
	rec.CreatedAt = now
	rec.PrintDate = now.Format("02/01/2006 15:04:05")
	rec.Status = model.StatusSuccess

	records = append([]model.ChequeRecord{rec}, records...)
	if err := s.save(ctx, userID, records); err != nil {
		return model.ChequeRecord{}, err
	}
	return rec, nil
}

// ToggleStatus flips a record between SUCCESS and VOID, returning the
// new status.
func (s *Service) ToggleStatus(ctx context.Context, userID, recordID string) (model.ChequeStatus, error) {
	records, err := s.List(ctx, userID)
	if err != nil {
		return "", err
	}

	for i := range records {
		if records[i].ID != recordID {
			continue
		}
		if records[i].Voided() {
			records[i].Status = model.StatusSuccess
		} else {
			records[i].Status = model.StatusVoid
		}
		if err := s.save(ctx, userID, records); err != nil {
			return "", err
		}
		return records[i].Status, nil
	}
	return "", fmt.Errorf("%w: record %s", common.ErrNotFound, recordID)
}

// Clear deletes the user's entire history.
func (s *Service) Clear(ctx context.Context, userID string) error {
	if err := s.store.Remove(ctx, storage.UserHistoryKey(userID)); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

func (s *Service) save(ctx context.Context, userID string, records []model.ChequeRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	if err := s.store.Set(ctx, storage.UserHistoryKey(userID), string(data)); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	return nil
}

// NetTotal sums the amounts of all non-voided records.
func NetTotal(records []model.ChequeRecord) float64 {
	var total float64
	for _, r := range records {
		if r.Voided() {
			continue
		}
		if amt, ok := model.ParseAmount(r.Amount); ok {
			total += amt.Float()
		}
	}
	return total
}

// ExportCSV writes the history as UTF-8 CSV with a BOM so spreadsheet
// applications pick up the Thai headers correctly. With showProgress a
// progress bar tracks rows on stderr.
func ExportCSV(w io.Writer, records []model.ChequeRecord, showProgress bool) error {
	if _, err := io.WriteString(w, "\uFEFF"); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.Default(int64(len(records)), "exporting")
	}

	for _, r := range records {
		chequeNo := r.ChequeNo
		if chequeNo == "" {
			chequeNo = "-"
		}
		bank := r.Bank
		if bank == "" {
			bank = "-"
		}
		status := "ปกติ"
		if r.Voided() {
			status = "ยกเลิก"
		}

		row := []string{r.PrintDate, chequeNo, r.Date, bank, r.Payee, r.Amount, string(r.Language), status}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush export: %w", err)
	}
	return nil
}
