package model

import "strconv"

// Coordinate represents geographic coordinates (WGS84 degrees).
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location identifies a place either by free-text name or by explicit
// coordinates. Exactly one of the two is set.
type Location struct {
	Name  string
	Coord *Coordinate
}

// NamedLocation builds a Location from a free-text place name.
func NamedLocation(name string) Location {
	return Location{Name: name}
}

// CoordLocation builds a Location from explicit coordinates, skipping
// geocoding entirely.
func CoordLocation(lat, lng float64) Location {
	return Location{Coord: &Coordinate{Lat: lat, Lng: lng}}
}

// Label returns the human-facing name of the location: the original name
// string when present, otherwise "lat,lng".
func (l Location) Label() string {
	if l.Name != "" || l.Coord == nil {
		return l.Name
	}
	return strconv.FormatFloat(l.Coord.Lat, 'f', -1, 64) + "," +
		strconv.FormatFloat(l.Coord.Lng, 'f', -1, 64)
}
