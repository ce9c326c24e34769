package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jakkritp/staybooking/internal/core/domain"
	"github.com/jakkritp/staybooking/internal/core/ports"
	"github.com/jakkritp/staybooking/internal/platform/logger"
)

const roomsCacheTTL = 5 * time.Minute

type RoomInput struct {
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
}

type CreatePlaceRequest struct {
	Title        string      `json:"title" validate:"required"`
	Category     string      `json:"category" validate:"required"`
	Latitude     float64     `json:"latitude"`
	Longitude    float64     `json:"longitude"`
	DefaultPrice float64     `json:"default_price" validate:"gt=0"`
	Rooms        []RoomInput `json:"rooms" validate:"dive"`
}

type PaymentInfoInput struct {
	BankName      string `json:"bank_name" validate:"required"`
	AccountName   string `json:"account_name" validate:"required"`
	AccountNumber string `json:"account_number" validate:"required"`
	QRCodeURL     string `json:"qr_code_url"`
}

// RoomService owns the room registry: place and room CRUD, the manual
// occupied flag, and the per-place receiving details. Room listings are
// cached in Redis; availability never is, since stale availability would
// reintroduce the double-booking race.
type RoomService struct {
	placeRepo ports.PlaceRepository
	roomRepo  ports.RoomRepository
	cache     *redis.Client
}

func NewRoomService(placeRepo ports.PlaceRepository, roomRepo ports.RoomRepository, cache *redis.Client) *RoomService {
	return &RoomService{
		placeRepo: placeRepo,
		roomRepo:  roomRepo,
		cache:     cache,
	}
}

func roomsCacheKey(placeID uuid.UUID) string {
	return fmt.Sprintf("rooms:%s", placeID.String())
}

func (s *RoomService) CreatePlace(ctx context.Context, hostID uuid.UUID, req CreatePlaceRequest) (*domain.Place, []domain.Room, error) {
	now := time.Now().UTC()
	place := &domain.Place{
		ID:           uuid.New(),
		HostID:       hostID,
		Title:        req.Title,
		Category:     req.Category,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		DefaultPrice: req.DefaultPrice,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.placeRepo.Create(ctx, place); err != nil {
		return nil, nil, fmt.Errorf("create place: %w", err)
	}

	rooms := make([]domain.Room, 0, len(req.Rooms))
	for _, in := range req.Rooms {
		room, err := s.addRoom(ctx, place, in)
		if err != nil {
			return nil, nil, err
		}
		rooms = append(rooms, *room)
	}

	return place, rooms, nil
}

func (s *RoomService) GetPlace(ctx context.Context, placeID uuid.UUID) (*domain.Place, error) {
	return s.placeRepo.GetByID(ctx, placeID)
}

func (s *RoomService) AddRoom(ctx context.Context, placeID uuid.UUID, in RoomInput) (*domain.Room, error) {
	place, err := s.placeRepo.GetByID(ctx, placeID)
	if err != nil {
		return nil, err
	}

	room, err := s.addRoom(ctx, place, in)
	if err != nil {
		return nil, err
	}

	s.invalidateRooms(ctx, placeID)
	return room, nil
}

func (s *RoomService) addRoom(ctx context.Context, place *domain.Place, in RoomInput) (*domain.Room, error) {
	price := in.Price
	if price <= 0 {
		price = place.DefaultPrice
	}

	now := time.Now().UTC()
	room := &domain.Room{
		ID:        uuid.New(),
		PlaceID:   place.ID,
		Name:      in.Name,
		Price:     price,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	return room, nil
}

// ListRooms serves the room registry of a place, cache-first.
func (s *RoomService) ListRooms(ctx context.Context, placeID uuid.UUID) ([]domain.Room, error) {
	key := roomsCacheKey(placeID)

	if cached, err := s.cache.Get(ctx, key).Result(); err == nil {
		var rooms []domain.Room
		if err := json.Unmarshal([]byte(cached), &rooms); err == nil {
			return rooms, nil
		}
	}

	if _, err := s.placeRepo.GetByID(ctx, placeID); err != nil {
		return nil, err
	}

	rooms, err := s.roomRepo.ListByPlace(ctx, placeID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(rooms); err == nil {
		if err := s.cache.Set(ctx, key, payload, roomsCacheTTL).Err(); err != nil {
			logger.Log.Warn("rooms cache set failed", "place_id", placeID.String(), "error", err)
		}
	}

	return rooms, nil
}

// DeleteRoom removes a room from the registry. A room with bookings cannot
// be deleted; the ledger keeps its history instead.
func (s *RoomService) DeleteRoom(ctx context.Context, roomID uuid.UUID) error {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return err
	}

	if err := s.roomRepo.Delete(ctx, roomID); err != nil {
		return err
	}

	s.invalidateRooms(ctx, room.PlaceID)
	return nil
}

// SetOccupied flips the manual flag. Releasing an occupied room clears its
// bookings (cascade preserved from the original marketplace behaviour); the
// cleared count is reported back to the caller.
func (s *RoomService) SetOccupied(ctx context.Context, roomID uuid.UUID, occupied bool) (*domain.Room, int64, error) {
	room, cleared, err := s.roomRepo.SetOccupied(ctx, roomID, occupied)
	if err != nil {
		return nil, 0, err
	}

	if cleared > 0 {
		logger.Log.Warn("cascade-cleared bookings on room release",
			"room_id", roomID.String(), "cleared", cleared)
	}

	s.invalidateRooms(ctx, room.PlaceID)
	return room, cleared, nil
}

func (s *RoomService) SetPaymentInfo(ctx context.Context, placeID uuid.UUID, in PaymentInfoInput) (*domain.PaymentInfo, error) {
	if _, err := s.placeRepo.GetByID(ctx, placeID); err != nil {
		return nil, err
	}

	info := &domain.PaymentInfo{
		PlaceID:       placeID,
		BankName:      in.BankName,
		AccountName:   in.AccountName,
		AccountNumber: in.AccountNumber,
		QRCodeURL:     in.QRCodeURL,
		UpdatedAt:     time.Now().UTC(),
	}

	if err := s.placeRepo.UpsertPaymentInfo(ctx, info); err != nil {
		return nil, fmt.Errorf("save payment info: %w", err)
	}

	return info, nil
}

func (s *RoomService) GetPaymentInfo(ctx context.Context, placeID uuid.UUID) (*domain.PaymentInfo, error) {
	return s.placeRepo.GetPaymentInfo(ctx, placeID)
}

func (s *RoomService) invalidateRooms(ctx context.Context, placeID uuid.UUID) {
	if err := s.cache.Del(ctx, roomsCacheKey(placeID)).Err(); err != nil {
		logger.Log.Warn("rooms cache invalidation failed", "place_id", placeID.String(), "error", err)
	}
}
