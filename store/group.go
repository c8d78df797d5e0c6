package store

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/foundernet/ecosystem-api/schema"
)

// Group - interface for finding groups of nearby accounts
type Group interface {
	NearestDistance(int, schema.Location) ([]string, error)
}

// NearestDistance - find account numbers within a distance in meters,
// ordered nearest first by the 2dsphere index
func (m *mongoDB) NearestDistance(distance int, cords schema.Location) ([]string, error) {
	query := distanceQuery(distance, cords)
	c := m.client.Database(m.database).Collection(schema.ProfileCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cur, err := c.Find(ctx, query)
	if nil != err {
		log.WithField("prefix", mongoLogPrefix).Errorf("query nearest distance with error: %s", err)
		return []string{}, fmt.Errorf("nearest distance query with error: %s", err)
	}

	accountNumbers := make([]string, 0)
	var record schema.Profile

	// iterate
	for cur.Next(ctx) {
		err = cur.Decode(&record)
		if nil != err {
			log.WithField("prefix", mongoLogPrefix).Infof("query nearest distance with error: %s", err)
			return []string{}, fmt.Errorf("nearest distance query decode record with error: %s", err)
		}
		accountNumbers = append(accountNumbers, record.AccountNumber)
	}

	log.WithField("prefix", mongoLogPrefix).Debugf("nearest distance query gets %d account number: %v", len(accountNumbers),
		accountNumbers)

	return accountNumbers, nil
}

// $nearSphere provides documents from nearest to farthest
// reference: https://docs.mongodb.com/manual/reference/operator/query/nearSphere/#op._S_nearSphere
func distanceQuery(distance int, cords schema.Location) bson.D {
	return bson.D{{
		Key: "location",
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
	}}
}
