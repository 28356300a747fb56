package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Jeyeeem21/RoomManagement/internal/model"
	"github.com/Jeyeeem21/RoomManagement/internal/repository"
)

func newExportFixture(t *testing.T) (ExportService, *repository.Repository) {
	t.Helper()
	repo := newMockRepository()
	repo.Room.Create(context.Background(), &model.Room{RoomID: "room-5", BuildingID: "bldg-1", Name: "Lab 2"})
	return NewExportService(repo, zap.NewNop()), repo
}

func TestExportFacultyTimetable(t *testing.T) {
	svc, repo := newExportFixture(t)
	ctx := context.Background()

	repo.Booking.Create(ctx, &model.Booking{
		RoomID:      "room-5",
		Course:      "IT 104",
		FacultyName: "J. Dela Cruz",
		DayOfWeek:   "Monday",
		StartDate:   datePtr(2024, 3, 1),
		LastDate:    datePtr(2024, 3, 31),
		StartTime:   "09:00:00",
		EndTime:     "10:00:00",
		IsRecurring: true,
	})

	buf, filename, err := svc.ExportFacultyTimetable(ctx, "J. Dela Cruz")
	if err != nil {
		t.Fatalf("ExportFacultyTimetable: %v", err)
	}
	if filename != "faculty_schedule_J._Dela_Cruz.xlsx" {
		t.Errorf("filename = %q", filename)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	var found bool
	for _, row := range rows {
		for _, cell := range row {
			if cell == "IT 104\nLab 2\nJ. Dela Cruz" {
				found = true
			}
		}
	}
	if !found {
		t.Error("placed booking cell missing from workbook")
	}
}

func TestExportProgramTimetableGroups(t *testing.T) {
	svc, repo := newExportFixture(t)
	ctx := context.Background()

	for _, section := range []string{"B", "A"} {
		repo.Booking.Create(ctx, &model.Booking{
			RoomID:      "room-5",
			Course:      "IT 104",
			FacultyName: "J. Dela Cruz",
			Program:     "BSIT",
			Year:        "2",
			Section:     section,
			Unit:        "3",
			DayOfWeek:   "Monday",
			StartDate:   datePtr(2024, 3, 1),
			LastDate:    datePtr(2024, 3, 31),
			StartTime:   "09:00:00",
			EndTime:     "10:00:00",
			IsRecurring: true,
		})
	}

	buf, filename, err := svc.ExportProgramTimetable(ctx, "BSIT")
	if err != nil {
		t.Fatalf("ExportProgramTimetable: %v", err)
	}
	if filename != "program_schedule_BSIT.xlsx" {
		t.Errorf("filename = %q", filename)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	var sectionHeaders []string
	var legendRows int
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		switch row[0] {
		case "BSIT — Year 2 Section A", "BSIT — Year 2 Section B":
			sectionHeaders = append(sectionHeaders, row[0])
		case "IT 104":
			legendRows++
		}
	}
	if len(sectionHeaders) != 2 {
		t.Fatalf("section headers = %v, want both sections", sectionHeaders)
	}
	// Sections sort lexicographically: A before B.
	if sectionHeaders[0] != "BSIT — Year 2 Section A" {
		t.Errorf("first section = %q, want Section A", sectionHeaders[0])
	}
	if legendRows != 2 {
		t.Errorf("legend rows = %d, want one per section", legendRows)
	}
}
