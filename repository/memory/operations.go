package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"orionhotel/models"
	"orionhotel/repository"

	"github.com/goccy/go-json"
)

type housekeepingRepo struct{ d *data }

func (r *housekeepingRepo) CreateTask(_ context.Context, t *models.HousekeepingTask) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	t.ID = r.d.nextID()
	t.CreatedAt = r.d.now()
	r.d.tasks[t.ID] = *t
	return nil
}

func (r *housekeepingRepo) FindTask(_ context.Context, id uint) (*models.HousekeepingTask, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	t, ok := r.d.tasks[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &t, nil
}

func (r *housekeepingRepo) ListTasks(_ context.Context, status string) ([]models.HousekeepingTask, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	out := []models.HousekeepingTask{}
	for _, t := range r.d.tasks {
		if status == "" || t.Status == status {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *housekeepingRepo) UpdateTask(_ context.Context, t *models.HousekeepingTask) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	if _, ok := r.d.tasks[t.ID]; !ok {
		return repository.ErrNotFound
	}
	r.d.tasks[t.ID] = *t
	return nil
}

func (r *housekeepingRepo) CreateRequest(_ context.Context, m *models.MaintenanceRequest) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	m.ID = r.d.nextID()
	m.CreatedAt = r.d.now()
	r.d.requests[m.ID] = *m
	return nil
}

func (r *housekeepingRepo) FindRequest(_ context.Context, id uint) (*models.MaintenanceRequest, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	m, ok := r.d.requests[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &m, nil
}

func (r *housekeepingRepo) ListRequests(_ context.Context, status string) ([]models.MaintenanceRequest, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	out := []models.MaintenanceRequest{}
	for _, m := range r.d.requests {
		if status == "" || m.Status == status {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *housekeepingRepo) UpdateRequest(_ context.Context, m *models.MaintenanceRequest) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	if _, ok := r.d.requests[m.ID]; !ok {
		return repository.ErrNotFound
	}
	r.d.requests[m.ID] = *m
	return nil
}

type staffRepo struct{ d *data }

func (r *staffRepo) Create(_ context.Context, s *models.Staff) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	for _, cur := range r.d.staff {
		if cur.Username == s.Username {
			return repository.ErrDuplicate
		}
	}
	s.ID = r.d.nextID()
	s.CreatedAt = r.d.now()
	r.d.staff[s.ID] = *s
	return nil
}

func (r *staffRepo) FindByID(_ context.Context, id uint) (*models.Staff, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	s, ok := r.d.staff[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &s, nil
}

func (r *staffRepo) find(match func(*models.Staff) bool) (*models.Staff, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	for _, s := range r.d.staff {
		if match(&s) {
			return &s, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *staffRepo) FindByUsername(_ context.Context, username string) (*models.Staff, error) {
	return r.find(func(s *models.Staff) bool { return s.Username == username })
}

func (r *staffRepo) FindByEmail(_ context.Context, email string) (*models.Staff, error) {
	return r.find(func(s *models.Staff) bool { return s.Email != "" && strings.EqualFold(s.Email, email) })
}

func (r *staffRepo) List(_ context.Context, activeOnly bool) ([]models.Staff, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	out := []models.Staff{}
	for _, s := range r.d.staff {
		if !activeOnly || s.IsActive() {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *staffRepo) Update(_ context.Context, s *models.Staff) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	if _, ok := r.d.staff[s.ID]; !ok {
		return repository.ErrNotFound
	}
	for id, cur := range r.d.staff {
		if id != s.ID && cur.Username == s.Username {
			return repository.ErrDuplicate
		}
	}
	r.d.staff[s.ID] = *s
	return nil
}

func (r *staffRepo) CountActiveByRole(_ context.Context) (map[string]int64, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	counts := map[string]int64{}
	for _, s := range r.d.staff {
		if s.IsActive() {
			counts[s.Role]++
		}
	}
	return counts, nil
}

type notificationRepo struct{ d *data }

func (r *notificationRepo) Create(_ context.Context, n *models.Notification) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	n.ID = r.d.nextID()
	if n.CreatedAt.IsZero() {
		n.CreatedAt = r.d.now()
	}
	r.d.notifications[n.ID] = *n
	return nil
}

func (r *notificationRepo) ListForRole(_ context.Context, role string, unreadOnly bool) ([]models.Notification, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	out := []models.Notification{}
	for _, n := range r.d.notifications {
		if n.VisibleTo(role) && (!unreadOnly || !n.IsRead) {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *notificationRepo) MarkAsRead(_ context.Context, id uint) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	n, ok := r.d.notifications[id]
	if !ok {
		return repository.ErrNotFound
	}
	n.IsRead = true
	r.d.notifications[id] = n
	return nil
}

func (r *notificationRepo) MarkAllAsRead(_ context.Context, role string) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	for id, n := range r.d.notifications {
		if n.VisibleTo(role) {
			n.IsRead = true
			r.d.notifications[id] = n
		}
	}
	return nil
}

func (r *notificationRepo) ClearAll(_ context.Context, role string) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	for id, n := range r.d.notifications {
		if n.VisibleTo(role) {
			delete(r.d.notifications, id)
		}
	}
	return nil
}

type settingsRepo struct{ d *data }

func (r *settingsRepo) All(_ context.Context) (map[string]string, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	out := make(map[string]string, len(r.d.settings))
	for k, v := range r.d.settings {
		out[k] = v
	}
	return out, nil
}

func (r *settingsRepo) Upsert(_ context.Context, values map[string]string) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	for k, v := range values {
		r.d.settings[k] = v
	}
	return nil
}

type reportRepo struct{ d *data }

func (r *reportRepo) RevenueByMonth(_ context.Context, since time.Time) ([]repository.MonthlyRevenue, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	lo := time.Time(models.Day(since))
	totals := map[string]float64{}
	for _, b := range r.d.bills {
		day := time.Time(b.BillDate)
		if b.IsPaid() && !day.Before(lo) {
			totals[day.Format("2006-01")] += b.Total
		}
	}
	out := make([]repository.MonthlyRevenue, 0, len(totals))
	for month, revenue := range totals {
		out = append(out, repository.MonthlyRevenue{Month: month, Revenue: revenue})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out, nil
}

func (r *reportRepo) CountReservations(_ context.Context, status string) (int64, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	var n int64
	for _, res := range r.d.reservations {
		if res.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *reportRepo) CountLowStock(_ context.Context) (int64, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	var n int64
	for _, item := range r.d.items {
		if item.IsLowStock() {
			n++
		}
	}
	return n, nil
}

func (r *reportRepo) InventoryUsage(_ context.Context, limit int) ([]models.ItemUsage, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	return usage(r.d.logs, limit), nil
}

// dumper xuất dữ liệu RAM theo đúng tên bảng của schema
type dumper struct{ d *data }

func (dm *dumper) Tables() []string {
	return repository.BackupTables
}

func (dm *dumper) Dump(_ context.Context, table string) ([]map[string]interface{}, error) {
	dm.d.mu.RLock()
	defer dm.d.mu.RUnlock()
	var rows interface{}
	switch table {
	case "staff":
		rows = values(dm.d.staff)
	case "guests":
		rows = values(dm.d.guests)
	case "rooms":
		rows = values(dm.d.rooms)
	case "reservations":
		rows = values(dm.d.reservations)
	case "inventory":
		rows = values(dm.d.items)
	case "inventory_logs":
		rows = dm.d.logs
	case "notifications":
		rows = values(dm.d.notifications)
	case "housekeeping_tasks":
		rows = values(dm.d.tasks)
	case "maintenance_requests":
		rows = values(dm.d.requests)
	case "system_settings":
		list := []models.SystemSetting{}
		for k, v := range dm.d.settings {
			list = append(list, models.SystemSetting{SettingKey: k, SettingValue: v})
		}
		sort.Slice(list, func(i, j int) bool { return list[i].SettingKey < list[j].SettingKey })
		rows = list
	case "bills":
		rows = values(dm.d.bills)
	case "service_charges":
		rows = values(dm.d.charges)
	default:
		return nil, repository.ErrNotFound
	}

	// đi qua JSON để có cùng dạng map như bản dump SQL
	raw, err := json.Marshal(rows)
	if err != nil {
		return nil, err
	}
	out := []map[string]interface{}{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func values[K comparable, V any](m map[K]V) []V {
	out := make([]V, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}
