// Package timezone pins wall-clock handling to the application timezone.
//
// Stay dates are calendar dates (YYYY-MM-DD) interpreted in that zone, so "today" for
// check-in purposes follows the kennel's clock rather than the server's:
//
//	today := timezone.Today()
//	d, err := timezone.ParseDate(req.CheckInDate)
//
// The zone comes from APP_TIMEZONE and is loaded lazily; SetLocation overrides it.
package timezone
