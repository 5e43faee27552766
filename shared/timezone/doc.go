// Package timezone pins timestamps to the zone configured by APP_TIMEZONE.
//
// Row creation times are rendered through Format so API responses use one zone.
// Calendar dates (check-in, check-out, cut-off) are not converted.
package timezone
