package wealth

import "time"

// SEK is a helper for tests to create Swedish krona money from const
func SEK(v float64) Money { return M(v, "SEK") }

// USD is a helper for tests to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// day is a helper for tests to create dates tersely.
func day(y int, m time.Month, d int) Date { return NewDate(y, m, d) }
