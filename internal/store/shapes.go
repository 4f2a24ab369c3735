package store

import "github.com/c51838777-max/santakrit/internal/domain"

// shapeField binds one remote column name to the canonical value it carries.
type shapeField struct {
	col string
	val func(t domain.Trip) any
}

// payloadShape is one candidate encoding of a trip for the remote trips
// table. Deployments drifted apart over time: newer schemas carry bill URL
// columns, an intermediate generation renamed the share/advance columns,
// and the oldest only has the universal six. Shapes are tried in order,
// most complete first, until the store accepts one.
type payloadShape struct {
	name   string
	fields []shapeField
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

var baseFields = []shapeField{
	{"date", func(t domain.Trip) any { return t.Date }},
	{"route", func(t domain.Trip) any { return t.Route }},
	{"price", func(t domain.Trip) any { return t.Price }},
	{"fuel", func(t domain.Trip) any { return t.Fuel }},
	{"wage", func(t domain.Trip) any { return t.Wage }},
	{"profit", func(t domain.Trip) any { return t.Profit }},
}

var tripShapes = []payloadShape{
	{
		name: "full",
		fields: append([]shapeField{
			{"driver_name", func(t domain.Trip) any { return t.DriverName }},
			{"maintenance", func(t domain.Trip) any { return t.Maintenance }},
			{"basket_count", func(t domain.Trip) any { return t.BasketCount }},
			{"basket", func(t domain.Trip) any { return t.Basket }},
			{"staff_share", func(t domain.Trip) any { return t.BasketShare }},
			{"advance", func(t domain.Trip) any { return t.StaffShare }},
			{"fuel_bill_url", func(t domain.Trip) any { return nullIfEmpty(t.FuelBillURL) }},
			{"maintenance_bill_url", func(t domain.Trip) any { return nullIfEmpty(t.MaintenanceBillURL) }},
			{"basket_bill_url", func(t domain.Trip) any { return nullIfEmpty(t.BasketBillURL) }},
		}, baseFields...),
	},
	{
		name: "no-bills",
		fields: append([]shapeField{
			{"driver_name", func(t domain.Trip) any { return t.DriverName }},
			{"maintenance", func(t domain.Trip) any { return t.Maintenance }},
			{"basket_count", func(t domain.Trip) any { return t.BasketCount }},
			{"basket", func(t domain.Trip) any { return t.Basket }},
			{"staff_share", func(t domain.Trip) any { return t.BasketShare }},
			{"advance", func(t domain.Trip) any { return t.StaffShare }},
		}, baseFields...),
	},
	{
		name: "legacy-names",
		fields: append([]shapeField{
			{"driver_name", func(t domain.Trip) any { return t.DriverName }},
			{"maintenance", func(t domain.Trip) any { return t.Maintenance }},
			{"basket_count", func(t domain.Trip) any { return t.BasketCount }},
			{"basket", func(t domain.Trip) any { return t.Basket }},
			{"basket_share", func(t domain.Trip) any { return t.BasketShare }},
			{"staff_advance", func(t domain.Trip) any { return t.StaffShare }},
		}, baseFields...),
	},
	{
		name:   "minimal",
		fields: baseFields,
	},
}

func (p payloadShape) columns() []string {
	cols := make([]string, len(p.fields))
	for i, f := range p.fields {
		cols[i] = f.col
	}
	return cols
}

func (p payloadShape) values(t domain.Trip) []any {
	vals := make([]any, len(p.fields))
	for i, f := range p.fields {
		vals[i] = f.val(t)
	}
	return vals
}
