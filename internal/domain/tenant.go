package domain

import (
	"fmt"
	"time"
)

type BillType string

const (
	BillTypeRent        BillType = "rent"
	BillTypeWater       BillType = "water"
	BillTypeElectricity BillType = "electricity"
)

// BillTypes lists every bill a tenant is charged each period, in display order.
var BillTypes = []BillType{BillTypeRent, BillTypeWater, BillTypeElectricity}

// ParseBillType converts a request value into a BillType. Matching is exact.
func ParseBillType(s string) (BillType, error) {
	switch BillType(s) {
	case BillTypeRent:
		return BillTypeRent, nil
	case BillTypeWater:
		return BillTypeWater, nil
	case BillTypeElectricity:
		return BillTypeElectricity, nil
	case "":
		return "", fmt.Errorf("%w: bill type is required", ErrInvalidInput)
	}
	return "", fmt.Errorf("%w: invalid bill type %q", ErrInvalidInput, s)
}

type Tenant struct {
	ID              int32     `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"-"`
	RoomType        *string   `json:"room_type"`
	HouseID         *int32    `json:"house_id"`
	RentPaid        bool      `json:"rent_paid"`
	WaterPaid       bool      `json:"water_paid"`
	ElectricityPaid bool      `json:"electricity_paid"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// IsPaid reports whether the current period's charge for bt is settled.
func (t *Tenant) IsPaid(bt BillType) bool {
	switch bt {
	case BillTypeRent:
		return t.RentPaid
	case BillTypeWater:
		return t.WaterPaid
	case BillTypeElectricity:
		return t.ElectricityPaid
	}
	return false
}

// MarkPaid sets the paid-flag for bt. Flags are never cleared here.
func (t *Tenant) MarkPaid(bt BillType) {
	switch bt {
	case BillTypeRent:
		t.RentPaid = true
	case BillTypeWater:
		t.WaterPaid = true
	case BillTypeElectricity:
		t.ElectricityPaid = true
	}
}

// RoomTypeLabel returns the selected room type or "Not Selected".
func (t *Tenant) RoomTypeLabel() string {
	if t.RoomType == nil || *t.RoomType == "" {
		return "Not Selected"
	}
	return *t.RoomType
}
