package reminder

import (
	"context"
	"sync"
	"time"
)

// TestReminderRepository is an in-memory ReminderRepository for service
// tests. Range queries filter the seeded Reminders slice the way the
// real repository filters rows.
type TestReminderRepository struct {
	Reminders []Reminder

	CreateError      error
	FindError        error
	FindPendingError error
	GetError         error
	ListError        error
	UpdateError      error
	// UpdateErrorByID fails updates for specific reminders only.
	UpdateErrorByID map[ID]error

	RangeWith        [][2]time.Time
	PendingRangeWith [][2]time.Time
	Updated          []Reminder

	nextID ID
	lock   sync.Mutex
}

func NewTestReminderRepository() *TestReminderRepository {
	return &TestReminderRepository{UpdateErrorByID: make(map[ID]error)}
}

func (r *TestReminderRepository) Create(ctx context.Context, input CreateInput) (Reminder, error) {
	if r.CreateError != nil {
		return Reminder{}, r.CreateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.nextID++
	rem := Reminder{
		ID:          r.nextID,
		VendorName:  input.VendorName,
		Description: input.Description,
		Side:        input.Side,
		Agreement:   input.Agreement,
		Amount:      input.Amount,
		BillingDate: input.BillingDate,
		Type:        input.Type,
		BeforeDays:  input.BeforeDays,
		TimeOfDay:   input.TimeOfDay,
		State:       input.State,
		CreatedAt:   input.CreatedAt,
	}
	r.Reminders = append(r.Reminders, rem)
	return rem, nil
}

func (r *TestReminderRepository) GetByID(ctx context.Context, id ID) (Reminder, error) {
	if r.GetError != nil {
		return Reminder{}, r.GetError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, rem := range r.Reminders {
		if rem.ID == id {
			return rem, nil
		}
	}
	return Reminder{}, ErrReminderDoesNotExist
}

func (r *TestReminderRepository) List(ctx context.Context) ([]Reminder, error) {
	if r.ListError != nil {
		return nil, r.ListError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]Reminder(nil), r.Reminders...), nil
}

func (r *TestReminderRepository) FindByBillingDateRange(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]Reminder, error) {
	if r.FindError != nil {
		return nil, r.FindError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.RangeWith = append(r.RangeWith, [2]time.Time{from, to})
	return r.filter(from, to, false), nil
}

func (r *TestReminderRepository) FindPendingByBillingDateRange(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]Reminder, error) {
	if r.FindPendingError != nil {
		return nil, r.FindPendingError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.PendingRangeWith = append(r.PendingRangeWith, [2]time.Time{from, to})
	return r.filter(from, to, true), nil
}

func (r *TestReminderRepository) Update(ctx context.Context, rem Reminder) (Reminder, error) {
	if r.UpdateError != nil {
		return Reminder{}, r.UpdateError
	}
	if err, ok := r.UpdateErrorByID[rem.ID]; ok {
		return Reminder{}, err
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix := range r.Reminders {
		if r.Reminders[ix].ID == rem.ID {
			r.Reminders[ix] = rem
			r.Updated = append(r.Updated, rem)
			return rem, nil
		}
	}
	return Reminder{}, ErrReminderDoesNotExist
}

func (r *TestReminderRepository) filter(from time.Time, to time.Time, excludePaid bool) []Reminder {
	reminders := make([]Reminder, 0)
	for _, rem := range r.Reminders {
		if rem.BillingDate.Before(from) || !rem.BillingDate.Before(to) {
			continue
		}
		if excludePaid && rem.State == StatePaid {
			continue
		}
		reminders = append(reminders, rem)
	}
	return reminders
}
