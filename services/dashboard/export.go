package dashboard

import (
	"fmt"
	"io"

	"scheduledash/models"

	"github.com/xuri/excelize/v2"
)

var scheduleHeaders = []string{"Day", "Start Time", "End Time"}

var timeOffHeaders = []string{"Type", "Start Date", "End Date", "Description", "Status"}

// Export writes the current schedule and time-off list as an xlsx workbook
// with one sheet per section.
func (s *DefaultSession) Export(w io.Writer) error {
	s.mu.Lock()
	schedule := s.schedule.Snapshot()
	records := s.timeOff.List()
	s.mu.Unlock()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(sheet, "Weekly Hours"); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeRows(f, "Weekly Hours", scheduleHeaders, scheduleRows(schedule)); err != nil {
		return err
	}

	if _, err := f.NewSheet("Time Off"); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	if err := writeRows(f, "Time Off", timeOffHeaders, timeOffRows(records)); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func scheduleRows(schedule models.WeeklySchedule) [][]any {
	rows := make([][]any, 0, len(models.Weekdays))
	for _, day := range models.Weekdays {
		hours, ok := schedule[day]
		if !ok {
			continue
		}
		rows = append(rows, []any{day, hours.StartTime, hours.EndTime})
	}
	return rows
}

func timeOffRows(records []models.TimeOffRecord) [][]any {
	rows := make([][]any, 0, len(records))
	for _, record := range records {
		rows = append(rows, []any{
			string(record.Type), record.StartDate, record.EndDate,
			record.Description, string(record.Status),
		})
	}
	return rows
}

func writeRows(f *excelize.File, sheet string, headers []string, rows [][]any) error {
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("set header cell: %w", err)
		}
	}
	for r, row := range rows {
		for c, value := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("set cell value: %w", err)
			}
		}
	}
	return nil
}
