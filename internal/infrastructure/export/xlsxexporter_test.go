package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/niggl1/appsindico/internal/application/ticket/dto"
	"github.com/niggl1/appsindico/internal/shared/biztime"
)

func TestXLSXExporter_Export(t *testing.T) {
	require.NoError(t, biztime.Init("America/Sao_Paulo"))

	scheduled := time.Date(2026, 5, 4, 13, 30, 0, 0, time.UTC)
	rows := []dto.ExportRow{
		{
			Protocol:     "482913",
			Title:        "Pump maintenance",
			Status:       "Open",
			Priority:     "high",
			AssigneeName: "Carlos",
			ScheduledAt:  &scheduled,
			CreatedAt:    time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			Protocol:  "105522",
			Title:     "Gate",
			Status:    "Completed",
			Priority:  "low",
			CreatedAt: time.Date(2026, 5, 2, 2, 0, 0, 0, time.UTC),
		},
	}

	data, err := NewXLSXExporter().Export(rows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Tickets"}, f.GetSheetList())

	got, err := f.GetRows("Tickets")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"Protocol", "Title", "Status", "Priority", "Assignee", "Scheduled", "Created"}, got[0])
	assert.Equal(t, []string{"482913", "Pump maintenance", "Open", "high", "Carlos", "04/05/2026 10:30", "01/05/2026 09:00"}, got[1])
	// 02:00 UTC is still the previous day in São Paulo
	assert.Equal(t, "01/05/2026 23:00", got[2][6])
	assert.Equal(t, "", got[2][5])
}

func TestXLSXExporter_EmptyList(t *testing.T) {
	data, err := NewXLSXExporter().Export(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows("Tickets")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
