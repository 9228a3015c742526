package billing

import (
	"sort"

	"github.com/shopspring/decimal"

	"propertyhub-backend/internal/domain"
)

// PricingTable maps room types to monthly rent and carries the fixed
// utility charges. It is built once at startup and never mutated.
type PricingTable struct {
	Rent        map[string]decimal.Decimal
	Water       decimal.Decimal
	Electricity decimal.Decimal
}

// DefaultPricingTable returns the rates used when configuration does not
// override them.
func DefaultPricingTable() PricingTable {
	return PricingTable{
		Rent: map[string]decimal.Decimal{
			"Bedsitter": decimal.NewFromInt(5000),
			"Studio":    decimal.NewFromInt(6000),
			"1-Bedroom": decimal.NewFromInt(8000),
			"2-Bedroom": decimal.NewFromInt(12000),
			"3-Bedroom": decimal.NewFromInt(15000),
		},
		Water:       decimal.NewFromInt(800),
		Electricity: decimal.NewFromInt(1200),
	}
}

// RentFor returns the rent for roomType. Unset or unknown room types are
// charged zero rent rather than rejected.
func (p PricingTable) RentFor(roomType *string) decimal.Decimal {
	if roomType == nil {
		return decimal.Zero
	}
	rent, ok := p.Rent[*roomType]
	if !ok {
		return decimal.Zero
	}
	return rent
}

func (p PricingTable) WaterCharge() decimal.Decimal {
	return p.Water
}

func (p PricingTable) ElectricityCharge() decimal.Decimal {
	return p.Electricity
}

// ChargeFor returns what the tenant owes for a single bill type this period.
func (p PricingTable) ChargeFor(t *domain.Tenant, bt domain.BillType) decimal.Decimal {
	switch bt {
	case domain.BillTypeRent:
		return p.RentFor(t.RoomType)
	case domain.BillTypeWater:
		return p.WaterCharge()
	case domain.BillTypeElectricity:
		return p.ElectricityCharge()
	}
	return decimal.Zero
}

// IsRoomType reports whether label is a room type that can be selected.
func (p PricingTable) IsRoomType(label string) bool {
	_, ok := p.Rent[label]
	return ok
}

// RoomTypes returns the selectable room types ordered by rent, then label.
func (p PricingTable) RoomTypes() []string {
	labels := make([]string, 0, len(p.Rent))
	for label := range p.Rent {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		ri, rj := p.Rent[labels[i]], p.Rent[labels[j]]
		if !ri.Equal(rj) {
			return ri.LessThan(rj)
		}
		return labels[i] < labels[j]
	})
	return labels
}
