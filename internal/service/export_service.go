package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Jeyeeem21/RoomManagement/internal/repository"
	"github.com/Jeyeeem21/RoomManagement/internal/schedule"
)

// ExportService renders weekly timetables to spreadsheet workbooks.
type ExportService interface {
	// ExportFacultyTimetable renders one flat weekly grid of everything
	// the named faculty member teaches.
	ExportFacultyTimetable(ctx context.Context, facultyName string) (*bytes.Buffer, string, error)
	// ExportProgramTimetable renders one grid per (year, section) group
	// of the program, each with its course legend.
	ExportProgramTimetable(ctx context.Context, program string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) ExportFacultyTimetable(ctx context.Context, facultyName string) (*bytes.Buffer, string, error) {
	bookings, err := s.repo.Booking.ListByFaculty(ctx, facultyName)
	if err != nil {
		s.logger.Error("load faculty bookings failed", zap.String("faculty", facultyName), zap.Error(err))
		return nil, "", err
	}
	roomNames, err := s.roomNames(ctx)
	if err != nil {
		return nil, "", err
	}

	grid := schedule.BuildWeekGrid(bookings, roomNames)

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	f.SetCellValue(sheet, "A1", fmt.Sprintf("Weekly Schedule — %s", facultyName))
	if err := s.renderGrid(f, sheet, grid, 3); err != nil {
		return nil, "", err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("write workbook failed", zap.Error(err))
		return nil, "", err
	}
	return buf, exportFilename("faculty", facultyName), nil
}

func (s *exportService) ExportProgramTimetable(ctx context.Context, program string) (*bytes.Buffer, string, error) {
	bookings, err := s.repo.Booking.ListByProgram(ctx, program)
	if err != nil {
		s.logger.Error("load program bookings failed", zap.String("program", program), zap.Error(err))
		return nil, "", err
	}
	roomNames, err := s.roomNames(ctx)
	if err != nil {
		return nil, "", err
	}

	grids := schedule.BuildSectionGrids(bookings, roomNames)

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	row := 1
	for _, sg := range grids {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row),
			fmt.Sprintf("%s — Year %s Section %s", program, sg.Year, sg.Section))
		row += 2
		if err := s.renderGrid(f, sheet, sg.Grid, row); err != nil {
			return nil, "", err
		}
		row += schedule.GridSlotCount + 2

		if len(sg.Legend) > 0 {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Course")
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), "Description")
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), "Units")
			f.SetCellValue(sheet, fmt.Sprintf("D%d", row), "Instructor")
			row++
			for _, le := range sg.Legend {
				f.SetCellValue(sheet, fmt.Sprintf("A%d", row), le.Course)
				f.SetCellValue(sheet, fmt.Sprintf("B%d", row), le.Description)
				f.SetCellValue(sheet, fmt.Sprintf("C%d", row), le.Units)
				f.SetCellValue(sheet, fmt.Sprintf("D%d", row), le.Instructor)
				row++
			}
		}
		row += 2
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("write workbook failed", zap.Error(err))
		return nil, "", err
	}
	return buf, exportFilename("program", program), nil
}

// renderGrid writes one weekly grid starting at headerRow: a header row
// of day names, then one row per 30-minute slot. Spanning bookings merge
// cells downward; skip cells stay blank under the merge.
func (s *exportService) renderGrid(f *excelize.File, sheet string, grid *schedule.WeekGrid, headerRow int) error {
	f.SetCellValue(sheet, cellName(1, headerRow), "Time")
	for j, day := range grid.Days {
		f.SetCellValue(sheet, cellName(j+2, headerRow), day.String())
	}

	for i, slot := range grid.Slots {
		row := headerRow + 1 + i
		f.SetCellValue(sheet, cellName(1, row), slotLabel(slot))

		for j := range grid.Days {
			cell := grid.Cells[i][j]
			if cell.Skip || cell.Text == "" {
				continue
			}
			name := cellName(j+2, row)
			f.SetCellValue(sheet, name, cell.Text)
			if cell.Span > 1 {
				if err := f.MergeCell(sheet, name, cellName(j+2, row+cell.Span-1)); err != nil {
					return err
				}
			}
			if cell.Color != "" {
				styleID, err := f.NewStyle(&excelize.Style{
					Fill: excelize.Fill{
						Type:    "pattern",
						Pattern: 1,
						Color:   []string{strings.TrimPrefix(cell.Color, "#")},
					},
					Alignment: &excelize.Alignment{
						Horizontal: "center",
						Vertical:   "center",
						WrapText:   true,
					},
				})
				if err != nil {
					return err
				}
				f.SetCellStyle(sheet, name, cellName(j+2, row+cell.Span-1), styleID)
			}
		}
	}

	f.SetColWidth(sheet, "A", "A", 16)
	f.SetColWidth(sheet, "B", "G", 24)
	return nil
}

func (s *exportService) roomNames(ctx context.Context) (map[string]string, error) {
	rooms, err := s.repo.Room.List(ctx)
	if err != nil {
		s.logger.Error("load rooms for export failed", zap.Error(err))
		return nil, err
	}
	names := make(map[string]string, len(rooms))
	for _, r := range rooms {
		names[r.RoomID] = r.Name
	}
	return names, nil
}

// slotLabel renders one time-axis row label, e.g. "07:00 - 07:30".
func slotLabel(slot schedule.TimeOfDay) string {
	start := slot.String()[:5]
	end := (slot + schedule.TimeOfDay(schedule.GridSlotMinutes*60)).String()[:5]
	return start + " - " + end
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

// exportFilename keeps download names shell-friendly: spaces become
// underscores.
func exportFilename(kind, subject string) string {
	return fmt.Sprintf("%s_schedule_%s.xlsx", kind, strings.ReplaceAll(subject, " ", "_"))
}
