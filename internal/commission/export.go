package commission

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"
)

// ExportRow is one flattened commission line for reporting. Rows read the
// persisted snapshot only; nothing is re-resolved on export.
type ExportRow struct {
	CommissionID uint
	DealRef      string
	BrokerName   string
	ProjectName  string
	SalePrice    float64
	Rate         float64
	Amount       float64
	BrokerRate   float64
	BrokerAmount float64
	Status       string
	CreatedAt    time.Time
	ApprovedAt   *time.Time
	PaidAt       *time.Time
}

// ExportRows loads the flattened report, optionally filtered by status.
func (r *Repository) ExportRows(status string) ([]ExportRow, error) {
	q := r.DB.Table("commissions").
		Select(`commissions.id AS commission_id,
			deals.reference AS deal_ref,
			brokers.first_name || ' ' || brokers.last_name AS broker_name,
			projects.name AS project_name,
			commissions.sale_price,
			commissions.rate,
			commissions.amount,
			commissions.broker_rate,
			commissions.broker_amount,
			commissions.status,
			commissions.created_at,
			commissions.approved_at,
			commissions.paid_at`).
		Joins("JOIN deals ON deals.id = commissions.deal_id").
		Joins("JOIN brokers ON brokers.id = commissions.broker_id").
		Joins("JOIN projects ON projects.id = deals.project_id").
		Where("commissions.deleted_at IS NULL").
		Order("commissions.created_at ASC")
	if status != "" {
		q = q.Where("commissions.status = ?", status)
	}

	var rows []ExportRow
	err := q.Scan(&rows).Error
	return rows, err
}

// WriteCSV renders export rows with a header line.
func WriteCSV(w io.Writer, rows []ExportRow) error {
	cw := csv.NewWriter(w)
	header := []string{
		"commission_id", "deal_reference", "broker", "project",
		"sale_price", "rate", "amount", "broker_rate", "broker_amount",
		"status", "created_at", "approved_at", "paid_at",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	fmtTime := func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format(time.RFC3339)
	}

	for _, row := range rows {
		record := []string{
			strconv.FormatUint(uint64(row.CommissionID), 10),
			row.DealRef,
			row.BrokerName,
			row.ProjectName,
			strconv.FormatFloat(row.SalePrice, 'f', 2, 64),
			strconv.FormatFloat(row.Rate, 'f', 2, 64),
			strconv.FormatFloat(row.Amount, 'f', 2, 64),
			strconv.FormatFloat(row.BrokerRate, 'f', 2, 64),
			strconv.FormatFloat(row.BrokerAmount, 'f', 2, 64),
			row.Status,
			row.CreatedAt.Format(time.RFC3339),
			fmtTime(row.ApprovedAt),
			fmtTime(row.PaidAt),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
