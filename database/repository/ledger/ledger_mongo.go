package ledgerRepo

import (
	"context"
	"fmt"
	"time"

	"glowstudio/config"
	"glowstudio/database"
	"glowstudio/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoLedgerRepo implements LedgerRepository using MongoDB.
type MongoLedgerRepo struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoLedgerRepo returns a repository bound to the "bookings" collection.
func NewMongoLedgerRepo() *MongoLedgerRepo {
	client := database.MongoClient
	coll := client.Database(config.AppConfig.MongoDatabase).Collection("bookings")
	return &MongoLedgerRepo{client: client, coll: coll}
}

// LoadAll fetches every stored booking.
func (repo *MongoLedgerRepo) LoadAll() ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// SaveAll replaces the stored collection with the given bookings inside a
// single transaction, so readers never observe a partially written ledger.
func (repo *MongoLedgerRepo) SaveAll(bookings []models.Booking) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	session, err := repo.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start mongo session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := repo.coll.DeleteMany(sc, bson.M{}); err != nil {
			return nil, err
		}
		if len(bookings) == 0 {
			return nil, nil
		}
		docs := make([]interface{}, len(bookings))
		for i, b := range bookings {
			docs[i] = b
		}
		_, err := repo.coll.InsertMany(sc, docs)
		return nil, err
	})
	if err != nil {
		return fmt.Errorf("failed to save bookings: %w", err)
	}
	return nil
}
