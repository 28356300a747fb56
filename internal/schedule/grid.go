package schedule

import (
	"sort"
	"strings"
	"time"

	"github.com/Jeyeeem21/RoomManagement/internal/model"
)

// The export grid is a fixed week of 30-minute slots from 07:00 to 17:00
// inclusive — 21 slot rows across the Monday–Saturday day axis.
const (
	GridSlotMinutes = 30
	gridFirstSlot   = TimeOfDay(7 * secondsPerHour)
	gridLastSlot    = TimeOfDay(17 * secondsPerHour)
	GridSlotCount   = int(gridLastSlot-gridFirstSlot)/(GridSlotMinutes*secondsPerMinute) + 1
)

// GridCell is one rendered cell of the weekly grid. A booking occupies
// its start slot with Span rows; the Span-1 cells below it carry Skip and
// are omitted from output because the spanning cell covers their area.
type GridCell struct {
	Text  string
	Color string
	Span  int
	Skip  bool
}

// WeekGrid is the laid-out weekly timetable: Slots is the time axis (the
// 21 slot start times), Days the day axis, and Cells the [slot][day]
// matrix. Built fresh per export request, never persisted.
type WeekGrid struct {
	Slots []TimeOfDay
	Days  []time.Weekday
	Cells [][]GridCell
}

// SectionGrid is one (year, section) group of the grouped export: its own
// weekly grid plus a course legend keyed by first occurrence.
type SectionGrid struct {
	Year    string
	Section string
	Grid    *WeekGrid
	Legend  []LegendEntry
}

// LegendEntry describes one distinct course of a section grid.
type LegendEntry struct {
	Course      string
	Description string
	Units       string
	Instructor  string
}

// BuildWeekGrid lays the bookings out on the fixed weekly grid.
//
// Only bookings whose start time lands exactly on a slot boundary are
// placed; anything else is silently dropped, which matches how exports
// have always behaved. Row span is ceil(duration/30min) with a minimum of
// one slot, clamped to the bottom of the grid.
func BuildWeekGrid(bookings []model.Booking, roomNames map[string]string) *WeekGrid {
	g := newWeekGrid()
	for _, b := range bookings {
		g.place(b, roomNames)
	}
	return g
}

// BuildSectionGrids groups the bookings by (year, section), lays out one
// grid per group and assembles each group's course legend. Groups are
// sorted by year then section, both lexicographic.
func BuildSectionGrids(bookings []model.Booking, roomNames map[string]string) []SectionGrid {
	type groupKey struct{ year, section string }
	groups := make(map[groupKey][]model.Booking)
	var order []groupKey
	for _, b := range bookings {
		k := groupKey{b.Year, b.Section}
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], b)
	}

	sort.Slice(order, func(i, j int) bool {
		if order[i].year != order[j].year {
			return order[i].year < order[j].year
		}
		return order[i].section < order[j].section
	})

	result := make([]SectionGrid, 0, len(order))
	for _, k := range order {
		members := groups[k]
		result = append(result, SectionGrid{
			Year:    k.year,
			Section: k.section,
			Grid:    BuildWeekGrid(members, roomNames),
			Legend:  buildLegend(members),
		})
	}
	return result
}

func newWeekGrid() *WeekGrid {
	slots := make([]TimeOfDay, GridSlotCount)
	for i := range slots {
		slots[i] = gridFirstSlot + TimeOfDay(i*GridSlotMinutes*secondsPerMinute)
	}
	cells := make([][]GridCell, GridSlotCount)
	for i := range cells {
		cells[i] = make([]GridCell, len(GridDays))
	}
	return &WeekGrid{Slots: slots, Days: GridDays, Cells: cells}
}

func (g *WeekGrid) place(b model.Booking, roomNames map[string]string) {
	day, ok := bookingWeekday(b)
	if !ok {
		return
	}
	dayIdx := -1
	for i, d := range g.Days {
		if d == day {
			dayIdx = i
			break
		}
	}
	if dayIdx < 0 {
		return
	}

	start, end, ok := parseRange(b.StartTime, b.EndTime)
	if !ok {
		return
	}

	// Exact slot-start matches only; off-grid starts are dropped.
	slotIdx := -1
	for i, s := range g.Slots {
		if s == start {
			slotIdx = i
			break
		}
	}
	if slotIdx < 0 {
		return
	}

	minutes := end.Minutes() - start.Minutes()
	if end < start {
		minutes += 24 * 60 // crosses midnight
	}
	span := (minutes + GridSlotMinutes - 1) / GridSlotMinutes
	if span < 1 {
		span = 1
	}
	if slotIdx+span > GridSlotCount {
		span = GridSlotCount - slotIdx
	}

	g.Cells[slotIdx][dayIdx] = GridCell{
		Text:  gridCellText(b, roomNames),
		Color: eventColor(b),
		Span:  span,
	}
	for i := 1; i < span; i++ {
		g.Cells[slotIdx+i][dayIdx] = GridCell{Skip: true}
	}
}

// bookingWeekday resolves the grid column: the rule's weekday for
// recurring bookings, the concrete date's weekday for one-offs.
func bookingWeekday(b model.Booking) (time.Weekday, bool) {
	if b.IsRecurring {
		return ParseWeekday(b.DayOfWeek)
	}
	if b.Date == nil {
		return 0, false
	}
	return dateUTC(*b.Date).Weekday(), true
}

func gridCellText(b model.Booking, roomNames map[string]string) string {
	parts := []string{b.Course}
	if ys := strings.TrimSpace(b.Year + " " + b.Section); ys != "" {
		parts = append(parts, ys)
	}
	parts = append(parts, RoomLabel(roomNames, b.RoomID))
	if b.FacultyName != "" {
		parts = append(parts, b.FacultyName)
	}
	return strings.Join(parts, "\n")
}

// buildLegend lists each distinct course once, keyed by its first
// occurrence in the group's bookings.
func buildLegend(bookings []model.Booking) []LegendEntry {
	seen := make(map[string]bool)
	var legend []LegendEntry
	for _, b := range bookings {
		if b.Course == "" || seen[b.Course] {
			continue
		}
		seen[b.Course] = true
		legend = append(legend, LegendEntry{
			Course:      b.Course,
			Description: b.Program,
			Units:       b.Unit,
			Instructor:  b.FacultyName,
		})
	}
	return legend
}
