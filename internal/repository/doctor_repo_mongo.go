package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vitalapp/vitalapp-api/internal/models"
)

type MongoDoctorRepo struct {
	DB *mongo.Database
}

func NewMongoDoctorRepo(db *mongo.Database) *MongoDoctorRepo {
	return &MongoDoctorRepo{DB: db}
}

func (r *MongoDoctorRepo) collection() *mongo.Collection {
	return r.DB.Collection("doctors")
}

func (r *MongoDoctorRepo) List(ctx context.Context) ([]models.Doctor, error) {
	cursor, err := r.collection().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	doctors := make([]models.Doctor, 0)
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *MongoDoctorRepo) GetByID(ctx context.Context, id int64) (*models.Doctor, error) {
	d := &models.Doctor{}
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(d)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *MongoDoctorRepo) FindByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	d := &models.Doctor{}
	err := r.collection().FindOne(ctx, bson.M{"email": email}).Decode(d)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *MongoDoctorRepo) Insert(ctx context.Context, doctor *models.Doctor) error {
	if doctor.ID == 0 {
		id, err := nextSequence(ctx, r.DB, "doctors")
		if err != nil {
			return err
		}
		doctor.ID = id
	}
	_, err := r.collection().InsertOne(ctx, doctor)
	return mapMongoWriteErr(err)
}

func (r *MongoDoctorRepo) Update(ctx context.Context, doctor *models.Doctor) error {
	update := bson.M{"$set": bson.M{
		"name":        doctor.Name,
		"email":       doctor.Email,
		"password":    doctor.Password,
		"phoneNumber": doctor.PhoneNumber,
		"specialty":   doctor.Specialty,
	}}
	res, err := r.collection().UpdateOne(ctx, bson.M{"_id": doctor.ID}, update)
	if err != nil {
		return mapMongoWriteErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoDoctorRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	return err
}
