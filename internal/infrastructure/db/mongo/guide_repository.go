package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vaais251/GB-Guide/internal/core/domain"
)

const guidesCollection = "guide_profiles"

type MongoGuideRepository struct {
	coll *mongo.Collection
	seq  *Sequences
}

func NewGuideRepository(db *mongo.Database, seq *Sequences) *MongoGuideRepository {
	return &MongoGuideRepository{coll: db.Collection(guidesCollection), seq: seq}
}

type mongoGuide struct {
	ID        int64    `bson:"_id"`
	UserID    int64    `bson:"user_id"`
	Bio       string   `bson:"bio,omitempty"`
	DailyRate float64  `bson:"daily_rate"`
	Languages []string `bson:"languages,omitempty"`
	Status    string   `bson:"status"`
	CNICImage string   `bson:"cnic_image,omitempty"`
	CreatedAt int64    `bson:"created_at"`
}

// EnsureIndexes creates the unique user_id index enforcing one profile per user.
func (r *MongoGuideRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("guide_profiles indexes: %w", err)
	}
	return nil
}

func (r *MongoGuideRepository) Insert(ctx context.Context, profile *domain.GuideProfile) (*domain.GuideProfile, error) {
	id, err := r.seq.Next(ctx, "guide_profiles")
	if err != nil {
		return nil, err
	}

	doc := mongoGuide{
		ID:        id,
		UserID:    profile.UserID,
		Bio:       profile.Bio,
		DailyRate: profile.DailyRate,
		Languages: profile.Languages,
		Status:    string(profile.Status),
		CNICImage: profile.CNICImage,
		CreatedAt: profile.CreatedAt.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrGuideProfileExists
		}
		return nil, fmt.Errorf("insert guide profile: %w", err)
	}

	created := *profile
	created.ID = id
	return &created, nil
}

func (r *MongoGuideRepository) FindByID(ctx context.Context, id int64) (*domain.GuideProfile, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoGuideRepository) FindByUserID(ctx context.Context, userID int64) (*domain.GuideProfile, error) {
	return r.findOne(ctx, bson.M{"user_id": userID})
}

func (r *MongoGuideRepository) ListByStatus(ctx context.Context, status domain.VerificationStatus) ([]domain.GuideProfile, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"status": string(status)}, opts)
	if err != nil {
		return nil, fmt.Errorf("list guide profiles: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoGuide
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode guide profiles: %w", err)
	}

	profiles := make([]domain.GuideProfile, 0, len(docs))
	for _, d := range docs {
		profiles = append(profiles, d.toDomain())
	}
	return profiles, nil
}

func (r *MongoGuideRepository) UpdateStatus(ctx context.Context, id int64, status domain.VerificationStatus) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": string(status)}})
	if err != nil {
		return fmt.Errorf("update guide status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrGuideNotFound
	}
	return nil
}

func (r *MongoGuideRepository) findOne(ctx context.Context, filter bson.M) (*domain.GuideProfile, error) {
	var mg mongoGuide
	if err := r.coll.FindOne(ctx, filter).Decode(&mg); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrGuideNotFound
		}
		return nil, fmt.Errorf("find guide profile: %w", err)
	}
	g := mg.toDomain()
	return &g, nil
}

func (mg mongoGuide) toDomain() domain.GuideProfile {
	return domain.GuideProfile{
		ID:        mg.ID,
		UserID:    mg.UserID,
		Bio:       mg.Bio,
		DailyRate: mg.DailyRate,
		Languages: mg.Languages,
		Status:    domain.VerificationStatus(mg.Status),
		CNICImage: mg.CNICImage,
		CreatedAt: unixToTime(mg.CreatedAt),
	}
}
