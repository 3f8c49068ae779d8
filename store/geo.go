package store

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/shivam222343/doantion-app/schema"
)

// distanceQuery returns documents whose field lies within distance meters,
// nearest first.
// reference: https://docs.mongodb.com/manual/reference/operator/query/nearSphere/#op._S_nearSphere
func distanceQuery(field string, distance int, cords schema.Location) bson.E {
	return bson.E{
		Key: field,
		Value: bson.D{{
			Key: "$nearSphere",
			Value: bson.D{{
				Key: "$geometry",
				Value: bson.D{{
					Key:   "type",
					Value: "Point",
				}, {
					Key:   "coordinates",
					Value: bson.A{cords.Longitude, cords.Latitude},
				}},
			}, {
				Key:   "$maxDistance",
				Value: distance,
			}},
		}},
	}
}
