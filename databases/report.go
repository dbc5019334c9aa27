package databases

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReportDatabase contains the report database operations shared by every
// report collection. T is the concrete report model for the collection.
type ReportDatabase[T any] interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*T, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]T, error)
	InsertOne(ctx context.Context, document interface{}) (interface{}, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error
	DeleteMany(ctx context.Context, filter interface{}) (int64, error)
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
}

type reportDatabase[T any] struct {
	db         DatabaseHelper
	collection string
}

// NewReportDatabase initializes a report database backed by the named
// collection
func NewReportDatabase[T any](db DatabaseHelper, collection string) ReportDatabase[T] {
	return &reportDatabase[T]{db: db, collection: collection}
}

func (r *reportDatabase[T]) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*T, error) {
	doc := new(T)
	err := r.db.Collection(r.collection).FindOne(ctx, filter, opts...).Decode(doc)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *reportDatabase[T]) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := r.db.Collection(r.collection).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *reportDatabase[T]) InsertOne(ctx context.Context, document interface{}) (interface{}, error) {
	res, err := r.db.Collection(r.collection).InsertOne(ctx, document)
	if err != nil {
		return nil, err
	}
	return res.Decode(), nil
}

func (r *reportDatabase[T]) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error {
	_, err := r.db.Collection(r.collection).UpdateOne(ctx, filter, update, opts...)
	return err
}

func (r *reportDatabase[T]) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	return r.db.Collection(r.collection).DeleteMany(ctx, filter)
}

func (r *reportDatabase[T]) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return r.db.Collection(r.collection).CountDocuments(ctx, filter, opts...)
}
