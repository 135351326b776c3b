package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/smarthealth/patient-api/internal/core/domain"
)

const patientCollection = "patients"

type MongoPatientRepository struct {
	coll *mongo.Collection
}

func NewPatientRepository(db *mongo.Database) *MongoPatientRepository {
	return &MongoPatientRepository{coll: db.Collection(patientCollection)}
}

type mongoPatient struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	FullName         string             `bson:"full_name"`
	Email            string             `bson:"email"`
	PasswordHash     string             `bson:"password_hash"`
	ContactNumber    string             `bson:"contact_number,omitempty"`
	DateOfBirth      string             `bson:"date_of_birth,omitempty"`
	HealthCardNumber string             `bson:"health_card_number,omitempty"`
	Active           bool               `bson:"active"`
	CreatedAt        int64              `bson:"created_at"`
	UpdatedAt        int64              `bson:"updated_at"`
}

func (r *MongoPatientRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return false, fmt.Errorf("count patients: %w", err)
	}
	return n > 0, nil
}

func (r *MongoPatientRepository) Create(ctx context.Context, patient *domain.Patient) (*domain.Patient, error) {
	doc := mongoPatient{
		FullName:         patient.FullName,
		Email:            patient.Email,
		PasswordHash:     patient.PasswordHash,
		ContactNumber:    patient.ContactNumber,
		DateOfBirth:      patient.DateOfBirth,
		HealthCardNumber: patient.HealthCardNumber,
		Active:           patient.Active,
		CreatedAt:        patient.CreatedAt.Unix(),
		UpdatedAt:        patient.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert patient: %w", err)
	}

	created := *patient
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoPatientRepository) FindByEmail(ctx context.Context, email string) (*domain.Patient, error) {
	var mp mongoPatient
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPatientNotFound
		}
		return nil, fmt.Errorf("find patient: %w", err)
	}

	return &domain.Patient{
		ID:               mp.ID.Hex(),
		FullName:         mp.FullName,
		Email:            mp.Email,
		PasswordHash:     mp.PasswordHash,
		ContactNumber:    mp.ContactNumber,
		DateOfBirth:      mp.DateOfBirth,
		HealthCardNumber: mp.HealthCardNumber,
		Active:           mp.Active,
		CreatedAt:        unixToTime(mp.CreatedAt),
		UpdatedAt:        unixToTime(mp.UpdatedAt),
	}, nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
