package tz

import (
	"strings"
	"time"
)

// BMT is Biel Mean Time (UTC+1, no DST), the reference zone of Swatch
// Internet Time.
var BMT = time.FixedZone("BMT", 60*60)

// Resolve returns the location named by the IANA zone id, or def when id is
// blank or unknown. A nil def means time.Local.
func Resolve(id string, def *time.Location) *time.Location {
	if def == nil {
		def = time.Local
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return def
	}
	loc, err := time.LoadLocation(id)
	if err != nil {
		return def
	}
	return loc
}

// Load is like time.LoadLocation but maps the empty id to time.Local instead
// of UTC.
func Load(id string) (*time.Location, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return time.Local, nil
	}
	return time.LoadLocation(id)
}
