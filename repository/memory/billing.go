package memory

import (
	"context"
	"sort"
	"time"

	"orionhotel/constants"
	"orionhotel/models"
	"orionhotel/repository"
)

type billRepo struct{ d *data }

func (r *billRepo) Create(_ context.Context, b *models.Bill) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	b.ID = r.d.nextID()
	now := r.d.now()
	b.CreatedAt, b.UpdatedAt = now, now
	stored := *b
	stored.ServiceCharges = nil
	r.d.bills[b.ID] = stored
	return nil
}

func (r *billRepo) withCharges(b models.Bill) *models.Bill {
	charges := []models.ServiceCharge{}
	for _, c := range r.d.charges {
		if c.BillID == b.ID {
			charges = append(charges, c)
		}
	}
	sort.Slice(charges, func(i, j int) bool { return charges[i].ID < charges[j].ID })
	b.ServiceCharges = charges
	return &b
}

func (r *billRepo) FindByID(_ context.Context, id uint) (*models.Bill, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	b, ok := r.d.bills[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return r.withCharges(b), nil
}

func (r *billRepo) FindOpenByGuest(_ context.Context, guestID uint) (*models.Bill, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	var found *models.Bill
	for _, b := range r.d.bills {
		if b.GuestID != guestID || b.Status == constants.BillStatusPaid {
			continue
		}
		if found == nil || b.ID > found.ID {
			found = &b
		}
	}
	if found == nil {
		return nil, repository.ErrNotFound
	}
	return r.withCharges(*found), nil
}

func (r *billRepo) List(_ context.Context, status string) ([]models.Bill, error) {
	return r.filter(func(b *models.Bill) bool { return status == "" || b.Status == status }), nil
}

func (r *billRepo) Outstanding(_ context.Context) ([]models.Bill, error) {
	return r.filter(func(b *models.Bill) bool { return b.Status != constants.BillStatusPaid }), nil
}

func (r *billRepo) filter(keep func(*models.Bill) bool) []models.Bill {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	out := []models.Bill{}
	for _, b := range r.d.bills {
		if keep(&b) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (r *billRepo) Update(_ context.Context, b *models.Bill) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	if _, ok := r.d.bills[b.ID]; !ok {
		return repository.ErrNotFound
	}
	stored := *b
	stored.ServiceCharges = nil
	stored.UpdatedAt = r.d.now()
	r.d.bills[b.ID] = stored
	return nil
}

func (r *billRepo) AddServiceCharge(_ context.Context, c *models.ServiceCharge) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	if _, ok := r.d.bills[c.BillID]; !ok {
		return repository.ErrNotFound
	}
	c.ID = r.d.nextID()
	c.CreatedAt = r.d.now()
	r.d.charges[c.ID] = *c
	return nil
}

func (r *billRepo) ServiceCharges(_ context.Context, billID uint) ([]models.ServiceCharge, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	return r.withCharges(models.Bill{ID: billID}).ServiceCharges, nil
}

func (r *billRepo) PaidRevenue(_ context.Context, from, to time.Time) (float64, error) {
	lo, hi := time.Time(models.Day(from)), time.Time(models.Day(to))
	var total float64
	for _, b := range r.filter(func(b *models.Bill) bool { return b.IsPaid() }) {
		day := time.Time(b.BillDate)
		if !day.Before(lo) && day.Before(hi) {
			total += b.Total
		}
	}
	return total, nil
}

type inventoryRepo struct{ d *data }

func (r *inventoryRepo) Create(_ context.Context, item *models.InventoryItem) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	item.ItemID = r.d.nextID()
	item.LastUpdated = r.d.now()
	r.d.items[item.ItemID] = *item
	return nil
}

func (r *inventoryRepo) FindByID(_ context.Context, id uint) (*models.InventoryItem, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	item, ok := r.d.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &item, nil
}

func (r *inventoryRepo) List(_ context.Context) ([]models.InventoryItem, error) {
	return r.filter(func(*models.InventoryItem) bool { return true }), nil
}

func (r *inventoryRepo) LowStock(_ context.Context) ([]models.InventoryItem, error) {
	return r.filter(func(i *models.InventoryItem) bool { return i.IsLowStock() }), nil
}

func (r *inventoryRepo) filter(keep func(*models.InventoryItem) bool) []models.InventoryItem {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	out := []models.InventoryItem{}
	for _, item := range r.d.items {
		if keep(&item) {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r *inventoryRepo) Update(_ context.Context, item *models.InventoryItem) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	stored, ok := r.d.items[item.ItemID]
	if !ok {
		return repository.ErrNotFound
	}
	item.Quantity = stored.Quantity
	item.LastUpdated = r.d.now()
	r.d.items[item.ItemID] = *item
	return nil
}

func (r *inventoryRepo) Consume(_ context.Context, id uint, amount int, at time.Time) (*models.InventoryItem, error) {
	return r.adjust(id, -amount, constants.InventoryActionConsume, at)
}

func (r *inventoryRepo) Restock(_ context.Context, id uint, amount int, at time.Time) (*models.InventoryItem, error) {
	return r.adjust(id, amount, constants.InventoryActionRestock, at)
}

func (r *inventoryRepo) adjust(id uint, delta int, action string, at time.Time) (*models.InventoryItem, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	item, ok := r.d.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if item.Quantity+delta < 0 {
		return nil, repository.ErrConflict
	}
	item.Quantity += delta
	item.LastUpdated = at
	r.d.items[id] = item

	changed := delta
	if changed < 0 {
		changed = -changed
	}
	r.d.logs = append(r.d.logs, models.InventoryLog{
		LogID:           r.d.nextID(),
		ItemID:          id,
		ItemName:        item.Name,
		ActionType:      action,
		QuantityChanged: changed,
		LogDate:         at,
	})
	return &item, nil
}

func (r *inventoryRepo) Logs(_ context.Context, action string, from, to time.Time) ([]models.InventoryLog, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	out := []models.InventoryLog{}
	for _, l := range r.d.logs {
		if l.ActionType == action && !l.LogDate.Before(from) && l.LogDate.Before(to) {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LogDate.After(out[j].LogDate) })
	return out, nil
}

func (r *inventoryRepo) MostUsed(_ context.Context, limit int) ([]models.ItemUsage, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	return usage(r.d.logs, limit), nil
}

func usage(logs []models.InventoryLog, limit int) []models.ItemUsage {
	totals := map[string]int64{}
	for _, l := range logs {
		if l.ActionType == constants.InventoryActionConsume {
			totals[l.ItemName] += int64(l.QuantityChanged)
		}
	}
	out := make([]models.ItemUsage, 0, len(totals))
	for name, used := range totals {
		out = append(out, models.ItemUsage{Name: name, Used: used})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Used == out[j].Used {
			return out[i].Name < out[j].Name
		}
		return out[i].Used > out[j].Used
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
