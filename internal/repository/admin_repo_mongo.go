package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vitalapp/vitalapp-api/internal/models"
)

type MongoAdminRepo struct {
	DB *mongo.Database
}

func NewMongoAdminRepo(db *mongo.Database) *MongoAdminRepo {
	return &MongoAdminRepo{DB: db}
}

func (r *MongoAdminRepo) collection() *mongo.Collection {
	return r.DB.Collection("admins")
}

func (r *MongoAdminRepo) List(ctx context.Context) ([]models.Admin, error) {
	cursor, err := r.collection().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	admins := make([]models.Admin, 0)
	if err := cursor.All(ctx, &admins); err != nil {
		return nil, err
	}
	return admins, nil
}

func (r *MongoAdminRepo) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	a := &models.Admin{}
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(a)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *MongoAdminRepo) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	a := &models.Admin{}
	err := r.collection().FindOne(ctx, bson.M{"email": email}).Decode(a)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *MongoAdminRepo) Insert(ctx context.Context, admin *models.Admin) error {
	if admin.ID == 0 {
		id, err := nextSequence(ctx, r.DB, "admins")
		if err != nil {
			return err
		}
		admin.ID = id
	}
	_, err := r.collection().InsertOne(ctx, admin)
	return mapMongoWriteErr(err)
}

func (r *MongoAdminRepo) Update(ctx context.Context, admin *models.Admin) error {
	update := bson.M{"$set": bson.M{
		"name":     admin.Name,
		"email":    admin.Email,
		"password": admin.Password,
	}}
	res, err := r.collection().UpdateOne(ctx, bson.M{"_id": admin.ID}, update)
	if err != nil {
		return mapMongoWriteErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoAdminRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	return err
}
