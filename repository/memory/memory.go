// Package memory là nguồn dữ liệu trong RAM, dùng khi DB_DRIVER=memory và trong test.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"orionhotel/constants"
	"orionhotel/models"
	"orionhotel/repository"
)

type data struct {
	mu sync.RWMutex

	rooms         map[int]models.Room
	guests        map[uint]models.Guest
	reservations  map[uint]models.Reservation
	bills         map[uint]models.Bill
	charges       map[uint]models.ServiceCharge
	items         map[uint]models.InventoryItem
	logs          []models.InventoryLog
	tasks         map[uint]models.HousekeepingTask
	requests      map[uint]models.MaintenanceRequest
	staff         map[uint]models.Staff
	notifications map[uint]models.Notification
	settings      map[string]string

	seq uint
	now func() time.Time
}

func (d *data) nextID() uint {
	d.seq++
	return d.seq
}

// NewStore tạo một Store rỗng
func NewStore() *repository.Store {
	d := &data{
		rooms:         map[int]models.Room{},
		guests:        map[uint]models.Guest{},
		reservations:  map[uint]models.Reservation{},
		bills:         map[uint]models.Bill{},
		charges:       map[uint]models.ServiceCharge{},
		items:         map[uint]models.InventoryItem{},
		tasks:         map[uint]models.HousekeepingTask{},
		requests:      map[uint]models.MaintenanceRequest{},
		staff:         map[uint]models.Staff{},
		notifications: map[uint]models.Notification{},
		settings:      map[string]string{},
		now:           time.Now,
	}
	return &repository.Store{
		Rooms:         &roomRepo{d},
		Guests:        &guestRepo{d},
		Reservations:  &reservationRepo{d},
		Bills:         &billRepo{d},
		Inventory:     &inventoryRepo{d},
		Housekeeping:  &housekeepingRepo{d},
		Staff:         &staffRepo{d},
		Notifications: &notificationRepo{d},
		Settings:      &settingsRepo{d},
		Reports:       &reportRepo{d},
		Dumper:        &dumper{d},
	}
}

type roomRepo struct{ d *data }

func (r *roomRepo) Create(_ context.Context, room *models.Room) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	if _, ok := r.d.rooms[room.RoomNumber]; ok {
		return repository.ErrDuplicate
	}
	now := r.d.now()
	room.CreatedAt, room.UpdatedAt = now, now
	r.d.rooms[room.RoomNumber] = *room
	return nil
}

func (r *roomRepo) FindByNumber(_ context.Context, number int) (*models.Room, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	room, ok := r.d.rooms[number]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &room, nil
}

func (r *roomRepo) List(_ context.Context, filter repository.RoomFilter) ([]models.Room, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	out := []models.Room{}
	for _, room := range r.d.rooms {
		if filter.Status != "" && room.Status != filter.Status {
			continue
		}
		if filter.RoomType != "" && room.RoomType != filter.RoomType {
			continue
		}
		out = append(out, room)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RoomNumber < out[j].RoomNumber })
	return out, nil
}

func (r *roomRepo) Update(_ context.Context, room *models.Room) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	cur, ok := r.d.rooms[room.RoomNumber]
	if !ok {
		return repository.ErrNotFound
	}
	cur.RoomType = room.RoomType
	cur.Price = room.Price
	cur.Amenities = room.Amenities
	cur.Floor = room.Floor
	cur.UpdatedAt = r.d.now()
	r.d.rooms[room.RoomNumber] = cur
	return nil
}

func (r *roomRepo) UpdateStatus(_ context.Context, number int, status string) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	cur, ok := r.d.rooms[number]
	if !ok {
		return repository.ErrNotFound
	}
	cur.Status = status
	cur.UpdatedAt = r.d.now()
	r.d.rooms[number] = cur
	return nil
}

func (r *roomRepo) UpdateStatusIf(_ context.Context, number int, from, to string) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	cur, ok := r.d.rooms[number]
	if !ok {
		return repository.ErrNotFound
	}
	if cur.Status != from {
		return repository.ErrConflict
	}
	cur.Status = to
	cur.UpdatedAt = r.d.now()
	r.d.rooms[number] = cur
	return nil
}

func (r *roomRepo) CountByStatus(_ context.Context) (map[string]int64, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	counts := map[string]int64{}
	for _, room := range r.d.rooms {
		counts[room.Status]++
	}
	return counts, nil
}

type guestRepo struct{ d *data }

func (r *guestRepo) Create(_ context.Context, g *models.Guest) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	g.ID = r.d.nextID()
	g.CreatedAt = r.d.now()
	r.d.guests[g.ID] = *g
	return nil
}

func (r *guestRepo) FindByID(_ context.Context, id uint) (*models.Guest, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	g, ok := r.d.guests[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &g, nil
}

func (r *guestRepo) List(_ context.Context, status string) ([]models.Guest, error) {
	return r.filter(func(g *models.Guest) bool { return status == "" || g.Status == status }), nil
}

func (r *guestRepo) Search(_ context.Context, query string) ([]models.Guest, error) {
	name := strings.ToLower(query)
	return r.filter(func(g *models.Guest) bool {
		return strings.Contains(strings.ToLower(g.FullName), name) || strings.Contains(g.Phone, query)
	}), nil
}

func (r *guestRepo) filter(keep func(*models.Guest) bool) []models.Guest {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	out := []models.Guest{}
	for _, g := range r.d.guests {
		if keep(&g) {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *guestRepo) Update(_ context.Context, g *models.Guest) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	if _, ok := r.d.guests[g.ID]; !ok {
		return repository.ErrNotFound
	}
	r.d.guests[g.ID] = *g
	return nil
}

type reservationRepo struct{ d *data }

func (r *reservationRepo) Create(_ context.Context, res *models.Reservation) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	res.ID = r.d.nextID()
	res.CreatedAt = r.d.now()
	r.d.reservations[res.ID] = *res
	return nil
}

func (r *reservationRepo) FindByID(_ context.Context, id uint) (*models.Reservation, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	res, ok := r.d.reservations[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &res, nil
}

func (r *reservationRepo) List(_ context.Context, status string) ([]models.Reservation, error) {
	return r.filter(func(res *models.Reservation) bool { return status == "" || res.Status == status }), nil
}

func (r *reservationRepo) Upcoming(_ context.Context, after time.Time) ([]models.Reservation, error) {
	day := time.Time(models.Day(after))
	return r.filter(func(res *models.Reservation) bool {
		return res.Status != constants.ReservationStatusCancelled && time.Time(res.CheckIn).After(day)
	}), nil
}

func (r *reservationRepo) CountOverlapping(_ context.Context, roomNumber int, in, out time.Time, excludeID uint) (int64, error) {
	list := r.filter(func(res *models.Reservation) bool {
		return res.ID != excludeID && res.RoomNumber != nil && *res.RoomNumber == roomNumber &&
			res.IsActive() && res.Overlaps(in, out)
	})
	return int64(len(list)), nil
}

func (r *reservationRepo) filter(keep func(*models.Reservation) bool) []models.Reservation {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	out := []models.Reservation{}
	for _, res := range r.d.reservations {
		if keep(&res) {
			out = append(out, res)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		ti, tj := time.Time(out[i].CheckIn), time.Time(out[j].CheckIn)
		if ti.Equal(tj) {
			return out[i].ID < out[j].ID
		}
		return ti.Before(tj)
	})
	return out
}

func (r *reservationRepo) Update(_ context.Context, res *models.Reservation) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	if _, ok := r.d.reservations[res.ID]; !ok {
		return repository.ErrNotFound
	}
	r.d.reservations[res.ID] = *res
	return nil
}
