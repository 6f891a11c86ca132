// Package dates parses the date formats the API accepts in request payloads
// and query parameters.
package dates

import "time"

// Layouts are the accepted date formats
var Layouts = []string{"2006-01-02", time.RFC3339}

// Parse tries each accepted layout in order and returns the first match
func Parse(raw string) (time.Time, error) {
	var err error
	for _, layout := range Layouts {
		var t time.Time
		if t, err = time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
