package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const countersCollection = "counters"

// Sequences allocates monotonically increasing numeric ids per entity name,
// backed by atomic $inc upserts on a counters collection.
type Sequences struct {
	coll *mongo.Collection
}

func NewSequences(db *mongo.Database) *Sequences {
	return &Sequences{coll: db.Collection(countersCollection)}
}

// Next returns the next id for the named sequence, creating it at 1 on first use.
func (s *Sequences) Next(ctx context.Context, name string) (int64, error) {
	res := s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)

	var doc struct {
		Seq int64 `bson:"seq"`
	}
	if err := res.Decode(&doc); err != nil {
		return 0, fmt.Errorf("next sequence %q: %w", name, err)
	}
	return doc.Seq, nil
}
