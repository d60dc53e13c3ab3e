// Package export renders ticket listings as spreadsheets.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/niggl1/appsindico/internal/application/ticket/dto"
	"github.com/niggl1/appsindico/internal/shared/biztime"
)

const (
	sheetName      = "Tickets"
	dateTimeLayout = "02/01/2006 15:04"
)

var headers = []any{"Protocol", "Title", "Status", "Priority", "Assignee", "Scheduled", "Created"}

// XLSXExporter writes one header row and one row per ticket.
// Dates are printed in the business timezone.
type XLSXExporter struct{}

func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

func (e *XLSXExporter) Export(rows []dto.ExportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E0E0E0"}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", "G1", headerStyle); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	for i, r := range rows {
		scheduled := ""
		if r.ScheduledAt != nil {
			scheduled = biztime.FormatInBizTimezone(*r.ScheduledAt, dateTimeLayout)
		}
		values := []any{
			r.Protocol,
			r.Title,
			r.Status,
			r.Priority,
			r.AssigneeName,
			scheduled,
			biztime.FormatInBizTimezone(r.CreatedAt, dateTimeLayout),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(sheetName, "A", "A", 12); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheetName, "B", "B", 40); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheetName, "C", "G", 18); err != nil {
		return nil, err
	}
	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("failed to freeze header: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
