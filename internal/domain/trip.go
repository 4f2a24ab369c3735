package domain

// Trip is the canonical shape of one recorded delivery run. Every record
// coming from the remote store or the local cache passes through Normalize
// before it is held in memory, so all numeric fields are always set and the
// date is always a plain YYYY-MM-DD string.
type Trip struct {
	ID          int64   `json:"id"`
	Date        string  `json:"date"`
	DriverName  string  `json:"driverName"`
	Route       string  `json:"route"`
	Price       float64 `json:"price"`
	Fuel        float64 `json:"fuel"`
	Wage        float64 `json:"wage"`
	Maintenance float64 `json:"maintenance"`

	// BasketCount drives the tiered bonus; Basket and BasketShare are
	// derived from it at entry time and never set directly by the driver.
	BasketCount int     `json:"basketCount"`
	Basket      float64 `json:"basket"`
	BasketShare float64 `json:"basketShare"`

	// StaffShare is the cash advance drawn against future pay. It is a
	// liability against the driver's pay, not a fleet cost, so it never
	// enters the profit formula.
	StaffShare float64 `json:"staffShare"`

	Profit float64 `json:"profit"`

	FuelBillURL        string `json:"fuelBillUrl,omitempty"`
	MaintenanceBillURL string `json:"maintenanceBillUrl,omitempty"`
	BasketBillURL      string `json:"basketBillUrl,omitempty"`
}

// RoutePreset is a named default applied when a driver picks a known route.
// Trips copy the values at entry time and keep no reference to the preset.
type RoutePreset struct {
	Route string  `json:"route"`
	Price float64 `json:"price"`
	Wage  float64 `json:"wage"`
}

// TripInput is the driver-facing submission payload. Price and Wage are
// pointers so a missing value can fall back to the route preset without
// clobbering an explicit zero.
type TripInput struct {
	Date               string   `json:"date"`
	DriverName         string   `json:"driverName"`
	Route              string   `json:"route"`
	Price              *float64 `json:"price"`
	Fuel               float64  `json:"fuel"`
	Wage               *float64 `json:"wage"`
	Maintenance        float64  `json:"maintenance"`
	BasketCount        int      `json:"basketCount"`
	StaffShare         float64  `json:"staffShare"`
	FuelBillURL        string   `json:"fuelBillUrl"`
	MaintenanceBillURL string   `json:"maintenanceBillUrl"`
	BasketBillURL      string   `json:"basketBillUrl"`
}
