package schema

// Location - plain latitude / longitude pair used by the API
type Location struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// Valid reports whether the coordinates are inside the lat / lng ranges
func (l Location) Valid() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}

// GeoJSON - mongo location format
type GeoJSON struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// NewGeoJSONPoint converts a location into a GeoJSON point, longitude first
func NewGeoJSONPoint(loc Location) GeoJSON {
	return GeoJSON{
		Type:        "Point",
		Coordinates: []float64{loc.Longitude, loc.Latitude},
	}
}

// Location returns the latitude / longitude of a GeoJSON point
func (g GeoJSON) Location() Location {
	if len(g.Coordinates) < 2 {
		return Location{}
	}
	return Location{
		Longitude: g.Coordinates[0],
		Latitude:  g.Coordinates[1],
	}
}
