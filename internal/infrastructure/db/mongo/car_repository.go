package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vaais251/GB-Guide/internal/core/domain"
)

const carsCollection = "cars"

type MongoCarRepository struct {
	coll *mongo.Collection
	seq  *Sequences
}

func NewCarRepository(db *mongo.Database, seq *Sequences) *MongoCarRepository {
	return &MongoCarRepository{coll: db.Collection(carsCollection), seq: seq}
}

type mongoCar struct {
	ID                 int64  `bson:"_id"`
	OwnerID            int64  `bson:"owner_id"`
	Make               string `bson:"make"`
	Model              string `bson:"model"`
	LicensePlate       string `bson:"license_plate"`
	WithDriver         bool   `bson:"with_driver"`
	Status             string `bson:"status"`
	DriverLicenseImage string `bson:"driver_license_image,omitempty"`
	CreatedAt          int64  `bson:"created_at"`
}

// EnsureIndexes creates the unique license plate index.
func (r *MongoCarRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "license_plate", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("cars indexes: %w", err)
	}
	return nil
}

func (r *MongoCarRepository) Insert(ctx context.Context, car *domain.Car) (*domain.Car, error) {
	id, err := r.seq.Next(ctx, "cars")
	if err != nil {
		return nil, err
	}

	doc := mongoCar{
		ID:                 id,
		OwnerID:            car.OwnerID,
		Make:               car.Make,
		Model:              car.Model,
		LicensePlate:       car.LicensePlate,
		WithDriver:         car.WithDriver,
		Status:             string(car.Status),
		DriverLicenseImage: car.DriverLicenseImage,
		CreatedAt:          car.CreatedAt.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicatePlate
		}
		return nil, fmt.Errorf("insert car: %w", err)
	}

	created := *car
	created.ID = id
	return &created, nil
}

func (r *MongoCarRepository) ListByStatus(ctx context.Context, status domain.VerificationStatus) ([]domain.Car, error) {
	return r.findAll(ctx, bson.M{"status": string(status)})
}

func (r *MongoCarRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Car, error) {
	return r.findAll(ctx, bson.M{"owner_id": ownerID})
}

func (r *MongoCarRepository) FindByID(ctx context.Context, id int64) (*domain.Car, error) {
	var mc mongoCar
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCarNotFound
		}
		return nil, fmt.Errorf("find car: %w", err)
	}
	c := mc.toDomain()
	return &c, nil
}

func (r *MongoCarRepository) UpdateStatus(ctx context.Context, id int64, status domain.VerificationStatus) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": string(status)}})
	if err != nil {
		return fmt.Errorf("update car status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCarNotFound
	}
	return nil
}

func (r *MongoCarRepository) findAll(ctx context.Context, filter bson.M) ([]domain.Car, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoCar
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode cars: %w", err)
	}

	cars := make([]domain.Car, 0, len(docs))
	for _, d := range docs {
		cars = append(cars, d.toDomain())
	}
	return cars, nil
}

func (mc mongoCar) toDomain() domain.Car {
	return domain.Car{
		ID:                 mc.ID,
		OwnerID:            mc.OwnerID,
		Make:               mc.Make,
		Model:              mc.Model,
		LicensePlate:       mc.LicensePlate,
		WithDriver:         mc.WithDriver,
		Status:             domain.VerificationStatus(mc.Status),
		DriverLicenseImage: mc.DriverLicenseImage,
		CreatedAt:          unixToTime(mc.CreatedAt),
	}
}
