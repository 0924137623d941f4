package pvrecio

import "math"

// Converter turns a UTC calendar timestamp into a Modified Julian Date. It
// is a plain value, injected wherever needed, rather than the process-wide
// singleton the original C++ driver used from every call site (§9 design
// note: "replace with a plain function or an injected converter").
type Converter struct{}

// NewConverter returns the stock UTC->MJD converter. There is nothing to
// configure; it exists as a type (rather than a bare function) so callers
// can swap in a fake in tests without reaching for package-level state.
func NewConverter() Converter { return Converter{} }

// ToMJD converts a calendar UTC timestamp to a Modified Julian Date using
// the mean-of-exposure convention: the recorded timestamp marks the start
// of a 10-second exposure, so the input adapter has a built-in +5 second
// offset to report the midpoint, matching the original resolve_line's
// "(ss + mics*1E-6 + 5.0)" term.
func (Converter) ToMJD(year, month, day, hour, minute, second, microsecond int) float64 {
	fracDay := (float64(hour) + (float64(minute) + (float64(second) + float64(microsecond)*1e-6 + 5.0)/60.0)/60.0) / 24.0
	return julianDayNumber(year, month, day) - 2400001.0 + fracDay
}

// julianDayNumber computes the integer Julian Day Number (noon-referenced)
// of a proleptic Gregorian calendar date, using the standard Fliegel/Van
// Flandern formula.
func julianDayNumber(year, month, day int) float64 {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	jdn := day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
	return float64(jdn)
}

// Mjd2Cal converts a Modified Julian Date back to a UTC calendar date plus
// a fractional day, the inverse used by the output writer to derive a
// tracklet's filename date and each point's H:M:S.sss fields.
func Mjd2Cal(mjd float64) (year, month, day int, fracDay float64) {
	// Split the fraction off the MJD itself: the JD offset is integral, and
	// adding it first would cost ~1e-5 s of precision in fracDay.
	whole := math.Floor(mjd)
	fracDay = mjd - whole
	jdn := int64(whole) + 2400001

	// Inverse of the Fliegel/Van Flandern formula.
	a := jdn + 32044
	b := (4*a + 3) / 146097
	c := a - (146097*b)/4
	d := (4*c + 3) / 1461
	e := c - (1461*d)/4
	m := (5*e + 2) / 153

	day = int(e-(153*m+2)/5) + 1
	month = int(m+3-12*(m/10))
	year = int(100*b+d) - 4800 + int(m/10)
	return year, month, day, fracDay
}
