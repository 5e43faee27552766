package timezone

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultName = "UTC"

var appLocation atomic.Pointer[time.Location]

// Init sets the application timezone from an IANA name. Unknown names fall back to UTC.
func Init(name string) *time.Location {
	if name == "" {
		name = defaultName
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC. Use IANA names like 'Europe/London'")

		loc = time.UTC
	}

	appLocation.Store(loc)
	log.Debug().Str("timezone", loc.String()).Msg("Application timezone initialized")

	return loc
}

// Location is UTC until Init runs.
func Location() *time.Location {
	if loc := appLocation.Load(); loc != nil {
		return loc
	}

	return time.UTC
}

// Now returns the current time in the application timezone.
func Now() time.Time {
	return time.Now().In(Location())
}

// Format renders an instant in the application timezone.
func Format(t time.Time, layout string) string {
	return t.In(Location()).Format(layout)
}
