package models

import (
	"database/sql/driver"
	"strings"

	"github.com/lib/pq"
)

// Genres is a postgres text[] column. Values are written with pq array
// encoding and repaired on read.
type Genres []string

func (Genres) GormDataType() string {
	return "text[]"
}

func (g *Genres) Scan(src interface{}) error {
	var arr pq.StringArray
	if err := arr.Scan(src); err != nil {
		return err
	}
	*g = Genres(RepairGenres(arr))
	return nil
}

func (g Genres) Value() (driver.Value, error) {
	if g == nil {
		return pq.StringArray{}.Value()
	}
	return pq.StringArray(g).Value()
}

// RepairGenres rewrites genre values that were persisted as a single
// brace-delimited string ("{rock,jazz}") or exploded into characters
// ("{", "r", "o", ...) back into a proper list. Proper lists are returned
// unchanged.
//
// TODO: drop once every deployment has run database.RepairGenreRows at
// startup.
func RepairGenres(genres []string) []string {
	var raw string
	switch {
	case len(genres) == 1 && strings.HasPrefix(genres[0], "{"):
		raw = genres[0]
	case len(genres) > 1 && genres[0] == "{":
		raw = strings.Join(genres, "")
	default:
		return genres
	}

	raw = strings.TrimSuffix(strings.TrimPrefix(raw, "{"), "}")
	repaired := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		part = strings.Trim(strings.TrimSpace(part), `"`)
		if part != "" {
			repaired = append(repaired, part)
		}
	}
	return repaired
}

// Contains reports whether name is one of the genres.
func (g Genres) Contains(name string) bool {
	for _, genre := range g {
		if genre == name {
			return true
		}
	}
	return false
}
