package store

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/foundernet/ecosystem-api/schema"
)

// ProfileOperator - operations on the live profile collection
type ProfileOperator interface {
	UpdateProfileLocation(accountNumber string, latitude, longitude float64) error
	DeleteProfile(accountNumber string) error
}

// UpdateProfileLocation upserts the account's current position as a GeoJSON
// point so the 2dsphere index can answer nearest queries.
func (m *mongoDB) UpdateProfileLocation(accountNumber string, latitude, longitude float64) error {
	c := m.client.Database(m.database).Collection(schema.ProfileCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{
		"account_number": accountNumber,
	}
	update := bson.M{
		"$set": bson.M{
			"location": schema.GeoJSON{
				Type:        "Point",
				Coordinates: []float64{longitude, latitude},
			},
		},
		"$setOnInsert": bson.M{
			"id":             accountNumber,
			"account_number": accountNumber,
		},
	}

	if _, err := c.UpdateOne(ctx, query, update, options.Update().SetUpsert(true)); err != nil {
		log.WithFields(log.Fields{
			"prefix":         mongoLogPrefix,
			"account_number": accountNumber,
			"error":          err,
		}).Error("update profile location")
		return err
	}

	return nil
}

// DeleteProfile removes the account's live profile record.
func (m *mongoDB) DeleteProfile(accountNumber string) error {
	c := m.client.Database(m.database).Collection(schema.ProfileCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if _, err := c.DeleteOne(ctx, bson.M{"account_number": accountNumber}); err != nil {
		log.WithFields(log.Fields{
			"prefix":         mongoLogPrefix,
			"account_number": accountNumber,
			"error":          err,
		}).Error("delete profile")
		return err
	}

	return nil
}
