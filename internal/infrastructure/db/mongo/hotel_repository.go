package mongo

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vaais251/GB-Guide/internal/core/domain"
)

const hotelsCollection = "hotels"

// MongoHotelRepository persists hotels with their rooms embedded in the same
// document, so a detail read is a single query.
type MongoHotelRepository struct {
	coll *mongo.Collection
	seq  *Sequences
}

func NewHotelRepository(db *mongo.Database, seq *Sequences) *MongoHotelRepository {
	return &MongoHotelRepository{coll: db.Collection(hotelsCollection), seq: seq}
}

type mongoRoom struct {
	ID            int64   `bson:"id"`
	RoomType      string  `bson:"room_type"`
	PricePerNight float64 `bson:"price_per_night"`
	Capacity      int     `bson:"capacity"`
	IsAvailable   bool    `bson:"is_available"`
}

type mongoHotel struct {
	ID          int64       `bson:"_id"`
	OwnerID     int64       `bson:"owner_id"`
	Name        string      `bson:"name"`
	Location    string      `bson:"location"`
	City        string      `bson:"city"`
	Description string      `bson:"description,omitempty"`
	Images      []string    `bson:"images,omitempty"`
	CreatedAt   int64       `bson:"created_at"`
	Rooms       []mongoRoom `bson:"rooms,omitempty"`
}

func (r *MongoHotelRepository) Insert(ctx context.Context, hotel *domain.Hotel) (*domain.Hotel, error) {
	id, err := r.seq.Next(ctx, "hotels")
	if err != nil {
		return nil, err
	}

	doc := mongoHotel{
		ID:          id,
		OwnerID:     hotel.OwnerID,
		Name:        hotel.Name,
		Location:    hotel.Location,
		City:        hotel.City,
		Description: hotel.Description,
		Images:      hotel.Images,
		CreatedAt:   hotel.CreatedAt.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert hotel: %w", err)
	}

	created := *hotel
	created.ID = id
	return &created, nil
}

func (r *MongoHotelRepository) List(ctx context.Context, city string) ([]domain.Hotel, error) {
	filter := bson.M{}
	if city != "" {
		filter["city"] = primitive.Regex{Pattern: regexp.QuoteMeta(city), Options: "i"}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetProjection(bson.M{"rooms": 0})

	return r.findAll(ctx, filter, opts)
}

func (r *MongoHotelRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Hotel, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.findAll(ctx, bson.M{"owner_id": ownerID}, opts)
}

func (r *MongoHotelRepository) FindByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	var mh mongoHotel
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mh); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrHotelNotFound
		}
		return nil, fmt.Errorf("find hotel: %w", err)
	}
	h := mh.toDomain()
	return &h, nil
}

// AddRoom assigns the room its id and pushes it onto the hotel document.
func (r *MongoHotelRepository) AddRoom(ctx context.Context, hotelID int64, room *domain.Room) error {
	id, err := r.seq.Next(ctx, "rooms")
	if err != nil {
		return err
	}
	room.ID = id

	doc := mongoRoom{
		ID:            room.ID,
		RoomType:      room.RoomType,
		PricePerNight: room.PricePerNight,
		Capacity:      room.Capacity,
		IsAvailable:   room.IsAvailable,
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": hotelID}, bson.M{"$push": bson.M{"rooms": doc}})
	if err != nil {
		return fmt.Errorf("add room: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrHotelNotFound
	}
	return nil
}

func (r *MongoHotelRepository) findAll(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.Hotel, error) {
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoHotel
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode hotels: %w", err)
	}

	hotels := make([]domain.Hotel, 0, len(docs))
	for _, d := range docs {
		hotels = append(hotels, d.toDomain())
	}
	return hotels, nil
}

func (mh mongoHotel) toDomain() domain.Hotel {
	h := domain.Hotel{
		ID:          mh.ID,
		OwnerID:     mh.OwnerID,
		Name:        mh.Name,
		Location:    mh.Location,
		City:        mh.City,
		Description: mh.Description,
		Images:      mh.Images,
		CreatedAt:   unixToTime(mh.CreatedAt),
	}
	for _, rm := range mh.Rooms {
		h.Rooms = append(h.Rooms, domain.Room{
			ID:            rm.ID,
			HotelID:       mh.ID,
			RoomType:      rm.RoomType,
			PricePerNight: rm.PricePerNight,
			Capacity:      rm.Capacity,
			IsAvailable:   rm.IsAvailable,
		})
	}
	return h
}
