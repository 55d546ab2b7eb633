package payoff

import "time"

// AverageMonth is the 30.44-day month used for payoff dates instead of
// calendar arithmetic. Consumers depend on this approximation.
const AverageMonth = 2630016 * time.Second

// PayoffDate returns start plus months average months.
func PayoffDate(start time.Time, months int) time.Time {
	return start.Add(time.Duration(months) * AverageMonth)
}
