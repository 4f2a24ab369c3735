package domain

// basketTier maps a basket-count lower bound to the bonus pair it earns.
// Evaluated highest-first; this is a step function, not interpolated.
type basketTier struct {
	minCount int
	revenue  float64
	share    float64
}

var basketTiers = []basketTier{
	{101, 1000, 700},
	{91, 600, 400},
	{86, 300, 200},
}

// BasketBonus returns the (revenue, fleet share cost) pair earned by a
// basket delivery count. Counts of 85 and below earn nothing.
func BasketBonus(count int) (revenue, share float64) {
	for _, tier := range basketTiers {
		if count >= tier.minCount {
			return tier.revenue, tier.share
		}
	}
	return 0, 0
}

// ComputeProfit is the single profit formula. StaffShare (the advance) is
// deliberately absent: it is deducted from the driver's pay, not from the
// fleet's result.
func ComputeProfit(price, fuel, wage, basket, maintenance, basketShare float64) float64 {
	return (price + basket) - (fuel + wage + maintenance + basketShare)
}

// RemainingPay computes a driver's net payable for a period. The housing
// allowance applies only when the driver logged at least one trip.
func RemainingPay(wage, basketShare, staffShare, otherDeductions float64, tripCount int) float64 {
	housing := 0.0
	if tripCount > 0 {
		housing = HousingAllowance
	}
	return (wage + basketShare + housing) - staffShare - otherDeductions
}

// BuildTrip turns a driver submission into a canonical Trip, deriving the
// basket bonus from the count and the profit from the fixed formula. Preset
// defaults are applied by the caller before this point.
func BuildTrip(in TripInput) Trip {
	basket, share := BasketBonus(in.BasketCount)

	price := 0.0
	if in.Price != nil {
		price = *in.Price
	}
	wage := 0.0
	if in.Wage != nil {
		wage = *in.Wage
	}

	t := Trip{
		Date:        dateOnly(in.Date),
		DriverName:  in.DriverName,
		Route:       in.Route,
		Price:       price,
		Fuel:        in.Fuel,
		Wage:        wage,
		Maintenance: in.Maintenance,
		BasketCount: in.BasketCount,
		Basket:      basket,
		BasketShare: share,
		StaffShare:  in.StaffShare,

		FuelBillURL:        in.FuelBillURL,
		MaintenanceBillURL: in.MaintenanceBillURL,
		BasketBillURL:      in.BasketBillURL,
	}
	t.Profit = ComputeProfit(t.Price, t.Fuel, t.Wage, t.Basket, t.Maintenance, t.BasketShare)
	return t
}
