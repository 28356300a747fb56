package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Jeyeeem21/RoomManagement/internal/model"
	"github.com/Jeyeeem21/RoomManagement/internal/repository"
)

// In-memory repositories for service tests. They mirror the query
// narrowing of the real gorm implementations where the services depend
// on it (ListForConflict in particular).

func newMockRepository() *repository.Repository {
	return &repository.Repository{
		College:  &mockCollegeRepo{items: map[string]*model.College{}},
		Building: &mockBuildingRepo{items: map[string]*model.Building{}},
		Room:     &mockRoomRepo{items: map[string]*model.Room{}},
		Booking:  &mockBookingRepo{items: map[string]*model.Booking{}},
		User:     &mockUserRepo{items: map[string]*model.User{}},
		Setting:  &mockSettingRepo{items: map[string]*model.Setting{}},
	}
}

// ── bookings ──

type mockBookingRepo struct {
	items map[string]*model.Booking
	seq   int
}

func (m *mockBookingRepo) Create(_ context.Context, b *model.Booking) error {
	if b.BookingID == "" {
		m.seq++
		b.BookingID = fmt.Sprintf("bk-%d", m.seq)
	}
	cp := *b
	m.items[b.BookingID] = &cp
	return nil
}

func (m *mockBookingRepo) GetByID(_ context.Context, id string) (*model.Booking, error) {
	b, ok := m.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *b
	return &cp, nil
}

func (m *mockBookingRepo) List(_ context.Context) ([]model.Booking, error) {
	out := make([]model.Booking, 0, len(m.items))
	for _, b := range m.items {
		out = append(out, *b)
	}
	return out, nil
}

func (m *mockBookingRepo) ListByRoom(_ context.Context, roomID string) ([]model.Booking, error) {
	var out []model.Booking
	for _, b := range m.items {
		if b.RoomID == roomID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *mockBookingRepo) ListByBuilding(_ context.Context, _ string) ([]model.Booking, error) {
	// Tests that need building scoping pre-filter their fixtures.
	return m.List(context.Background())
}

func (m *mockBookingRepo) ListByFaculty(_ context.Context, facultyName string) ([]model.Booking, error) {
	var out []model.Booking
	for _, b := range m.items {
		if b.FacultyName == facultyName {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *mockBookingRepo) ListByProgram(_ context.Context, program string) ([]model.Booking, error) {
	var out []model.Booking
	for _, b := range m.items {
		if b.Program == program {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *mockBookingRepo) ListForConflict(_ context.Context, roomID string, date *time.Time, dayOfWeek string) ([]model.Booking, error) {
	if date == nil && dayOfWeek == "" {
		return nil, nil
	}
	var out []model.Booking
	for _, b := range m.items {
		if b.RoomID != roomID {
			continue
		}
		sameDate := date != nil && b.Date != nil && b.Date.Equal(*date)
		sameDay := dayOfWeek != "" && b.DayOfWeek == dayOfWeek
		if sameDate || sameDay {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *mockBookingRepo) Update(_ context.Context, b *model.Booking) error {
	if _, ok := m.items[b.BookingID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *b
	m.items[b.BookingID] = &cp
	return nil
}

func (m *mockBookingRepo) Delete(_ context.Context, id string) error {
	delete(m.items, id)
	return nil
}

func (m *mockBookingRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.items)), nil
}

func (m *mockBookingRepo) CountByDayOfWeek(_ context.Context, dayOfWeek string) (int64, error) {
	var n int64
	for _, b := range m.items {
		if b.DayOfWeek == dayOfWeek {
			n++
		}
	}
	return n, nil
}

// ── rooms ──

type mockRoomRepo struct {
	items map[string]*model.Room
	seq   int
}

func (m *mockRoomRepo) Create(_ context.Context, r *model.Room) error {
	if r.RoomID == "" {
		m.seq++
		r.RoomID = fmt.Sprintf("room-%d", m.seq)
	}
	cp := *r
	m.items[r.RoomID] = &cp
	return nil
}

func (m *mockRoomRepo) GetByID(_ context.Context, id string) (*model.Room, error) {
	r, ok := m.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *mockRoomRepo) List(_ context.Context) ([]model.Room, error) {
	out := make([]model.Room, 0, len(m.items))
	for _, r := range m.items {
		out = append(out, *r)
	}
	return out, nil
}

func (m *mockRoomRepo) ListByBuilding(_ context.Context, buildingID string) ([]model.Room, error) {
	var out []model.Room
	for _, r := range m.items {
		if r.BuildingID == buildingID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockRoomRepo) Update(_ context.Context, r *model.Room) error {
	if _, ok := m.items[r.RoomID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *r
	m.items[r.RoomID] = &cp
	return nil
}

func (m *mockRoomRepo) Delete(_ context.Context, id string) error {
	delete(m.items, id)
	return nil
}

func (m *mockRoomRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.items)), nil
}

func (m *mockRoomRepo) SumCapacity(_ context.Context) (int64, error) {
	var sum int64
	for _, r := range m.items {
		sum += int64(r.Capacity)
	}
	return sum, nil
}

// ── buildings ──

type mockBuildingRepo struct {
	items map[string]*model.Building
	seq   int
}

func (m *mockBuildingRepo) Create(_ context.Context, b *model.Building) error {
	if b.BuildingID == "" {
		m.seq++
		b.BuildingID = fmt.Sprintf("bldg-%d", m.seq)
	}
	cp := *b
	m.items[b.BuildingID] = &cp
	return nil
}

func (m *mockBuildingRepo) GetByID(_ context.Context, id string) (*model.Building, error) {
	b, ok := m.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *b
	return &cp, nil
}

func (m *mockBuildingRepo) List(_ context.Context) ([]model.Building, error) {
	out := make([]model.Building, 0, len(m.items))
	for _, b := range m.items {
		out = append(out, *b)
	}
	return out, nil
}

func (m *mockBuildingRepo) ListByCollege(_ context.Context, collegeID string) ([]model.Building, error) {
	var out []model.Building
	for _, b := range m.items {
		if b.CollegeID == collegeID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *mockBuildingRepo) ListRecent(_ context.Context, limit int) ([]model.Building, error) {
	out, _ := m.List(context.Background())
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockBuildingRepo) ListRoomCounts(_ context.Context) ([]repository.BuildingRoomCount, error) {
	var out []repository.BuildingRoomCount
	for _, b := range m.items {
		out = append(out, repository.BuildingRoomCount{
			BuildingID: b.BuildingID,
			Name:       b.Name,
			Capacity:   b.Capacity,
		})
	}
	return out, nil
}

func (m *mockBuildingRepo) Update(_ context.Context, b *model.Building) error {
	if _, ok := m.items[b.BuildingID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *b
	m.items[b.BuildingID] = &cp
	return nil
}

func (m *mockBuildingRepo) Delete(_ context.Context, id string) error {
	delete(m.items, id)
	return nil
}

func (m *mockBuildingRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.items)), nil
}

// ── colleges ──

type mockCollegeRepo struct {
	items map[string]*model.College
	seq   int
}

func (m *mockCollegeRepo) Create(_ context.Context, c *model.College) error {
	if c.CollegeID == "" {
		m.seq++
		c.CollegeID = fmt.Sprintf("col-%d", m.seq)
	}
	cp := *c
	m.items[c.CollegeID] = &cp
	return nil
}

func (m *mockCollegeRepo) GetByID(_ context.Context, id string) (*model.College, error) {
	c, ok := m.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *mockCollegeRepo) List(_ context.Context) ([]model.College, error) {
	out := make([]model.College, 0, len(m.items))
	for _, c := range m.items {
		out = append(out, *c)
	}
	return out, nil
}

func (m *mockCollegeRepo) ListRecent(_ context.Context, limit int) ([]model.College, error) {
	out, _ := m.List(context.Background())
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockCollegeRepo) Update(_ context.Context, c *model.College) error {
	if _, ok := m.items[c.CollegeID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *c
	m.items[c.CollegeID] = &cp
	return nil
}

func (m *mockCollegeRepo) Delete(_ context.Context, id string) error {
	delete(m.items, id)
	return nil
}

func (m *mockCollegeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.items)), nil
}

// ── users ──

type mockUserRepo struct {
	items map[string]*model.User
	seq   int
}

func (m *mockUserRepo) Create(_ context.Context, u *model.User) error {
	if u.UserID == "" {
		m.seq++
		u.UserID = fmt.Sprintf("user-%d", m.seq)
	}
	cp := *u
	m.items[u.UserID] = &cp
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	u, ok := m.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.items {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	u, ok := m.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

// ── settings ──

type mockSettingRepo struct {
	items map[string]*model.Setting
	seq   int
}

func (m *mockSettingRepo) Get(_ context.Context, key string) (*model.Setting, error) {
	s, ok := m.items[key]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *mockSettingRepo) List(_ context.Context) ([]model.Setting, error) {
	out := make([]model.Setting, 0, len(m.items))
	for _, s := range m.items {
		out = append(out, *s)
	}
	return out, nil
}

func (m *mockSettingRepo) Upsert(_ context.Context, s *model.Setting) error {
	if existing, ok := m.items[s.Key]; ok {
		existing.Value = s.Value
		return nil
	}
	m.seq++
	s.SettingID = fmt.Sprintf("set-%d", m.seq)
	cp := *s
	m.items[s.Key] = &cp
	return nil
}

func (m *mockSettingRepo) Delete(_ context.Context, key string) error {
	delete(m.items, key)
	return nil
}
