package xlsxio

import "math"

// Excel stores dates as a day count with a time-of-day fraction. Day 1 of
// the 1900 date system is 1900-01-01, but the format inherited Lotus 1-2-3's
// fictitious 1900-02-29 (serial 60), so serials from 61 onward are shifted
// by one day relative to the true calendar. Following xlrd's handling, the
// epoch is 1899-12-31 for serials below 60 and 1899-12-30 from 60 on, which
// collapses the fake leap day instead of propagating the off-by-one.
const (
	secondsPerDay = 86400

	// Unix seconds at 1899-12-31T00:00:00Z and 1899-12-30T00:00:00Z.
	epoch1900     = -2209075200
	epoch1900Adj  = -2209161600
	cutoverSerial = 60

	// Unix seconds at the serial-60 boundary (1900-02-28T00:00:00Z);
	// timestamps at or after it convert with the adjusted epoch.
	cutoverUnix = epoch1900Adj + cutoverSerial*secondsPerDay
)

// SerialToUnix converts an Excel serial date number (1900 date system) to
// Unix-epoch seconds. The time-of-day fraction is rounded to the nearest
// whole second. serial must be finite; Cell.AsDatetime rejects non-finite
// and negative values before converting.
func SerialToUnix(serial float64) int64 {
	epoch := int64(epoch1900Adj)
	if serial < cutoverSerial {
		epoch = epoch1900
	}
	return epoch + int64(math.Round(serial*secondsPerDay))
}

// UnixToSerial converts Unix-epoch seconds to an Excel serial date number,
// the inverse of SerialToUnix. Timestamps on or after 1900-02-28 use the
// adjusted epoch so that write-then-read round-trips at whole-second
// precision.
func UnixToSerial(unix int64) float64 {
	epoch := int64(epoch1900Adj)
	if unix < cutoverUnix {
		epoch = epoch1900
	}
	return float64(unix-epoch) / secondsPerDay
}
