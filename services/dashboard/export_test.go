package dashboard

import (
	"bytes"
	"context"
	"testing"

	"scheduledash/models"

	"github.com/xuri/excelize/v2"
)

func TestExportWritesBothSheets(t *testing.T) {
	timeOffAPI := &fakeTimeOffAPI{records: []models.RawTimeOff{
		{ID: "a", Type: models.TimeOffVacation, StartDate: "2025-06-01", EndDate: "2025-06-03", Description: "Trip", Status: models.TimeOffApproved},
	}}
	session := newTestSession(&fakeScheduleAPI{schedule: models.DefaultSchedule()}, timeOffAPI)
	if err := session.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	var buf bytes.Buffer
	if err := session.Export(&buf); err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	for _, sheet := range []string{"Weekly Hours", "Time Off"} {
		if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
			t.Fatalf("missing sheet %q", sheet)
		}
	}

	day, err := f.GetCellValue("Weekly Hours", "A2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if day != "Sunday" {
		t.Fatalf("expected Sunday in the first schedule row, got %q", day)
	}
	start, _ := f.GetCellValue("Weekly Hours", "B2")
	if start != "09:00" {
		t.Fatalf("expected default start time, got %q", start)
	}

	recordType, _ := f.GetCellValue("Time Off", "A2")
	if recordType != "vacation" {
		t.Fatalf("expected vacation row, got %q", recordType)
	}
	status, _ := f.GetCellValue("Time Off", "E2")
	if status != "approved" {
		t.Fatalf("expected approved status, got %q", status)
	}
}

func TestExportEmptyTimeOffStillProducesWorkbook(t *testing.T) {
	session := newTestSession(&fakeScheduleAPI{}, &fakeTimeOffAPI{})

	var buf bytes.Buffer
	if err := session.Export(&buf); err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	header, _ := f.GetCellValue("Time Off", "A1")
	if header != "Type" {
		t.Fatalf("expected header row, got %q", header)
	}
}
