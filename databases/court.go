package databases

import (
	"context"

	"github.com/liberia-ecms/court-records-api/models"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const courtCollection = "courts"

// CourtDatabase contains the court registry database operations
type CourtDatabase interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Court, error)
	InsertOne(ctx context.Context, document interface{}) (interface{}, error)
	DeleteOne(ctx context.Context, filter interface{}) error
}

type courtDatabase struct {
	db DatabaseHelper
}

// NewCourtDatabase initializes a new instance of court database
func NewCourtDatabase(db DatabaseHelper) CourtDatabase {
	return &courtDatabase{db: db}
}

func (c *courtDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Court, error) {
	cursor, err := c.db.Collection(courtCollection).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var courts []models.Court
	if err := cursor.All(ctx, &courts); err != nil {
		return nil, err
	}
	return courts, nil
}

func (c *courtDatabase) InsertOne(ctx context.Context, document interface{}) (interface{}, error) {
	res, err := c.db.Collection(courtCollection).InsertOne(ctx, document)
	if err != nil {
		return nil, err
	}
	return res.Decode(), nil
}

func (c *courtDatabase) DeleteOne(ctx context.Context, filter interface{}) error {
	return c.db.Collection(courtCollection).DeleteOne(ctx, filter)
}
