package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/vaais251/GB-Guide/internal/core/domain"
	"github.com/vaais251/GB-Guide/internal/core/ports"
)

const defaultRoomCapacity = 2

// HotelService implements hotel listing use cases. The public listing is
// served through a short-TTL cache; mutations invalidate the affected keys.
type HotelService struct {
	repo   ports.HotelRepository
	cache  ports.ListingCache
	logger zerolog.Logger
}

func NewHotelService(repo ports.HotelRepository, cache ports.ListingCache, logger zerolog.Logger) *HotelService {
	return &HotelService{repo: repo, cache: cache, logger: logger}
}

func (s *HotelService) CreateHotel(ctx context.Context, actor *domain.User, input ports.CreateHotelInput) (*domain.Hotel, error) {
	hotel := &domain.Hotel{
		OwnerID:     actor.ID,
		Name:        input.Name,
		Location:    input.Location,
		City:        input.City,
		Description: input.Description,
		Images:      input.Images,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, hotel)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create hotel")
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, listingKey(""), listingKey(input.City))
	}

	s.logger.Info().Int64("hotel_id", created.ID).Int64("owner_id", actor.ID).Msg("hotel created")
	return created, nil
}

func (s *HotelService) ListHotels(ctx context.Context, city string) ([]domain.Hotel, error) {
	key := listingKey(city)
	if s.cache != nil {
		if payload, ok := s.cache.Get(ctx, key); ok {
			var hotels []domain.Hotel
			if err := json.Unmarshal(payload, &hotels); err == nil {
				return hotels, nil
			}
		}
	}

	hotels, err := s.repo.List(ctx, city)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(hotels); err == nil {
			s.cache.Set(ctx, key, payload)
		}
	}
	return hotels, nil
}

func (s *HotelService) ListMyHotels(ctx context.Context, ownerID int64) ([]domain.Hotel, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *HotelService) GetHotel(ctx context.Context, id int64) (*domain.Hotel, error) {
	return s.repo.FindByID(ctx, id)
}

// AddRoom appends a room to an existing hotel. The existence check runs
// before the ownership check, so a missing hotel is always not-found no
// matter who asks.
func (s *HotelService) AddRoom(ctx context.Context, actor *domain.User, input ports.AddRoomInput) (*domain.Room, error) {
	hotel, err := s.repo.FindByID(ctx, input.HotelID)
	if err != nil {
		return nil, err
	}

	if !actor.CanManage(hotel.OwnerID) {
		return nil, domain.ErrForbidden
	}

	capacity := input.Capacity
	if capacity <= 0 {
		capacity = defaultRoomCapacity
	}
	room := &domain.Room{
		HotelID:       hotel.ID,
		RoomType:      input.RoomType,
		PricePerNight: input.PricePerNight,
		Capacity:      capacity,
		IsAvailable:   input.IsAvailable,
	}

	if err := s.repo.AddRoom(ctx, hotel.ID, room); err != nil {
		s.logger.Error().Err(err).Int64("hotel_id", hotel.ID).Msg("failed to add room")
		return nil, err
	}

	s.logger.Info().Int64("hotel_id", hotel.ID).Int64("room_id", room.ID).Msg("room added")
	return room, nil
}

// listingKey maps a city filter to its cache key. The empty filter shares a
// single "all" key.
func listingKey(city string) string {
	city = strings.ToLower(strings.TrimSpace(city))
	if city == "" {
		return "hotels:list:all"
	}
	return "hotels:list:city:" + city
}
