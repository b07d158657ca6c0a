package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vitalapp/vitalapp-api/internal/models"
)

type MongoPatientRepo struct {
	DB *mongo.Database
}

func NewMongoPatientRepo(db *mongo.Database) *MongoPatientRepo {
	return &MongoPatientRepo{DB: db}
}

func (r *MongoPatientRepo) collection() *mongo.Collection {
	return r.DB.Collection("patients")
}

func (r *MongoPatientRepo) List(ctx context.Context) ([]models.Patient, error) {
	cursor, err := r.collection().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	patients := make([]models.Patient, 0)
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *MongoPatientRepo) GetByID(ctx context.Context, id int64) (*models.Patient, error) {
	p := &models.Patient{}
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(p)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *MongoPatientRepo) FindByEmail(ctx context.Context, email string) (*models.Patient, error) {
	p := &models.Patient{}
	err := r.collection().FindOne(ctx, bson.M{"email": email}).Decode(p)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *MongoPatientRepo) Insert(ctx context.Context, patient *models.Patient) error {
	if patient.ID == 0 {
		id, err := nextSequence(ctx, r.DB, "patients")
		if err != nil {
			return err
		}
		patient.ID = id
	}
	_, err := r.collection().InsertOne(ctx, patient)
	return mapMongoWriteErr(err)
}

func (r *MongoPatientRepo) Update(ctx context.Context, patient *models.Patient) error {
	update := bson.M{"$set": bson.M{
		"name":     patient.Name,
		"email":    patient.Email,
		"password": patient.Password,
		"phone":    patient.Phone,
	}}
	res, err := r.collection().UpdateOne(ctx, bson.M{"_id": patient.ID}, update)
	if err != nil {
		return mapMongoWriteErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoPatientRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	return err
}
