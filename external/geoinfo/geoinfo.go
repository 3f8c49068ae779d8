package geoinfo

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"

	"github.com/shivam222343/doantion-app/schema"
)

const (
	logPrefix      = "geoinfo"
	defaultTimeout = 5 * time.Second
)

var ErrNoAddress = errors.New("no address found for the location")

// Address - pickup address resolved from a coordinate
type Address struct {
	DisplayName string `json:"display_name"`
	Home        string `json:"home,omitempty"`
	Street      string `json:"street,omitempty"`
	Locality    string `json:"locality,omitempty"`
	State       string `json:"state,omitempty"`
	Country     string `json:"country,omitempty"`
	PostalCode  string `json:"postal_code,omitempty"`
}

// GeoInfo - interface to operate google maps
type GeoInfo interface {
	ReverseGeocode(ctx context.Context, loc schema.Location) (*Address, error)
}

type geoInfo struct {
	client *maps.Client
}

func (g geoInfo) ReverseGeocode(ctx context.Context, loc schema.Location) (*Address, error) {
	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"lat":    loc.Latitude,
		"lng":    loc.Longitude,
	}).Info("query geo info")

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	results, err := g.client.ReverseGeocode(ctx, &maps.GeocodingRequest{LatLng: &maps.LatLng{
		Lat: loc.Latitude,
		Lng: loc.Longitude,
	}})
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("reverse geocode")
		return nil, err
	}

	return addressFromResults(results)
}

// addressFromResults takes the most precise result, google returns them
// ordered from street level to country level
func addressFromResults(results []maps.GeocodingResult) (*Address, error) {
	if len(results) == 0 {
		return nil, ErrNoAddress
	}

	r := results[0]
	address := &Address{DisplayName: r.FormattedAddress}

	for _, c := range r.AddressComponents {
		for _, t := range c.Types {
			switch t {
			case "premise", "street_number":
				if address.Home == "" {
					address.Home = c.LongName
				}
			case "route":
				address.Street = c.LongName
			case "locality":
				address.Locality = c.LongName
			case "administrative_area_level_1":
				address.State = c.LongName
			case "country":
				address.Country = c.LongName
			case "postal_code":
				address.PostalCode = c.LongName
			}
		}
	}

	return address, nil
}

// New - new GeoInfo interface
func New(apiKey string) (GeoInfo, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("new map client")

		return nil, err
	}

	return &geoInfo{
		client: client,
	}, nil
}
