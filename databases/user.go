package databases

import (
	"context"

	"github.com/liberia-ecms/court-records-api/models"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const userCollection = "users"

// UserDatabase contains the user database operations
type UserDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.User, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.User, error)
	InsertOne(ctx context.Context, document interface{}) (interface{}, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}) error
	DeleteOne(ctx context.Context, filter interface{}) error
}

type userDatabase struct {
	db DatabaseHelper
}

// NewUserDatabase initializes a new instance of user database
func NewUserDatabase(db DatabaseHelper) UserDatabase {
	return &userDatabase{db: db}
}

func (u *userDatabase) FindOne(ctx context.Context, filter interface{}) (*models.User, error) {
	user := &models.User{}
	err := u.db.Collection(userCollection).FindOne(ctx, filter).Decode(user)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (u *userDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.User, error) {
	cursor, err := u.db.Collection(userCollection).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (u *userDatabase) InsertOne(ctx context.Context, document interface{}) (interface{}, error) {
	res, err := u.db.Collection(userCollection).InsertOne(ctx, document)
	if err != nil {
		return nil, err
	}
	return res.Decode(), nil
}

func (u *userDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}) error {
	_, err := u.db.Collection(userCollection).UpdateOne(ctx, filter, update)
	return err
}

func (u *userDatabase) DeleteOne(ctx context.Context, filter interface{}) error {
	return u.db.Collection(userCollection).DeleteOne(ctx, filter)
}
