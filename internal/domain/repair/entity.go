package repair

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNegativeCost      = errors.New("cost cannot be negative")
	ErrEmptyCustomerName = errors.New("customer name must not be empty")
	ErrEmptyPlate        = errors.New("plate must not be empty")
)

// Repair is one entry of the workshop's repair ledger, keyed by the vehicle
// plate it was performed on.
type Repair struct {
	id                int64
	plate             string
	customerFirstName string
	customerLastName  string
	costCents         int64
	performedAt       time.Time
	km                *int32
	workDone          *string
	notes             *string
	photoURL          *string
	createdAt         time.Time
	updatedAt         time.Time
}

func NewRepair(
	plate, customerFirstName, customerLastName string,
	costCents int64,
	performedAt time.Time,
	km *int32,
	workDone, notes, photoURL *string,
) (*Repair, error) {
	plate = strings.ToUpper(strings.TrimSpace(plate))
	if plate == "" {
		return nil, ErrEmptyPlate
	}
	if strings.TrimSpace(customerFirstName) == "" || strings.TrimSpace(customerLastName) == "" {
		return nil, ErrEmptyCustomerName
	}
	if costCents < 0 {
		return nil, ErrNegativeCost
	}

	return &Repair{
		plate:             plate,
		customerFirstName: strings.TrimSpace(customerFirstName),
		customerLastName:  strings.TrimSpace(customerLastName),
		costCents:         costCents,
		performedAt:       performedAt,
		km:                km,
		workDone:          workDone,
		notes:             notes,
		photoURL:          photoURL,
	}, nil
}

func (r *Repair) ID() int64                 { return r.id }
func (r *Repair) Plate() string             { return r.plate }
func (r *Repair) CustomerFirstName() string { return r.customerFirstName }
func (r *Repair) CustomerLastName() string  { return r.customerLastName }
func (r *Repair) CostCents() int64          { return r.costCents }
func (r *Repair) PerformedAt() time.Time    { return r.performedAt }
func (r *Repair) Km() *int32                { return r.km }
func (r *Repair) WorkDone() *string         { return r.workDone }
func (r *Repair) Notes() *string            { return r.notes }
func (r *Repair) PhotoURL() *string         { return r.photoURL }
func (r *Repair) CreatedAt() time.Time      { return r.createdAt }
func (r *Repair) UpdatedAt() time.Time      { return r.updatedAt }
