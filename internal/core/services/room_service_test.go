package services_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jakkritp/staybooking/internal/core/domain"
	"github.com/jakkritp/staybooking/internal/core/ports/mocks"
	"github.com/jakkritp/staybooking/internal/core/services"
)

func TestSetOccupied_ReportsCascadeResult(t *testing.T) {
	mockPlaceRepo := mocks.NewPlaceRepository(t)
	mockRoomRepo := mocks.NewRoomRepository(t)
	cache, mockRedis := redismock.NewClientMock()

	service := services.NewRoomService(mockPlaceRepo, mockRoomRepo, cache)

	ctx := context.Background()
	placeID := uuid.New()
	roomID := uuid.New()

	updated := &domain.Room{ID: roomID, PlaceID: placeID, Occupied: false}

	mockRoomRepo.On("SetOccupied", ctx, roomID, false).Return(updated, int64(2), nil)
	mockRedis.ExpectDel(fmt.Sprintf("rooms:%s", placeID.String())).SetVal(1)

	room, cleared, err := service.SetOccupied(ctx, roomID, false)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), cleared)
	assert.False(t, room.Occupied)

	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestSetOccupied_ReleaseWithoutBookingsIsNoOp(t *testing.T) {
	mockPlaceRepo := mocks.NewPlaceRepository(t)
	mockRoomRepo := mocks.NewRoomRepository(t)
	cache, mockRedis := redismock.NewClientMock()

	service := services.NewRoomService(mockPlaceRepo, mockRoomRepo, cache)

	ctx := context.Background()
	placeID := uuid.New()
	roomID := uuid.New()

	updated := &domain.Room{ID: roomID, PlaceID: placeID, Occupied: false}

	mockRoomRepo.On("SetOccupied", ctx, roomID, false).Return(updated, int64(0), nil)
	mockRedis.ExpectDel(fmt.Sprintf("rooms:%s", placeID.String())).SetVal(0)

	_, cleared, err := service.SetOccupied(ctx, roomID, false)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), cleared)
}

func TestDeleteRoom_RejectedWhileBooked(t *testing.T) {
	mockPlaceRepo := mocks.NewPlaceRepository(t)
	mockRoomRepo := mocks.NewRoomRepository(t)
	cache, mockRedis := redismock.NewClientMock()

	service := services.NewRoomService(mockPlaceRepo, mockRoomRepo, cache)

	ctx := context.Background()
	roomID := uuid.New()

	mockRoomRepo.On("GetByID", ctx, roomID).Return(&domain.Room{ID: roomID, PlaceID: uuid.New()}, nil)
	mockRoomRepo.On("Delete", ctx, roomID).Return(domain.ErrRoomHasBookings)

	err := service.DeleteRoom(ctx, roomID)

	assert.ErrorIs(t, err, domain.ErrRoomHasBookings)
	// No invalidation for a rejected delete.
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestListRooms_CacheMissFillsCache(t *testing.T) {
	mockPlaceRepo := mocks.NewPlaceRepository(t)
	mockRoomRepo := mocks.NewRoomRepository(t)
	cache, mockRedis := redismock.NewClientMock()

	service := services.NewRoomService(mockPlaceRepo, mockRoomRepo, cache)

	ctx := context.Background()
	placeID := uuid.New()
	rooms := []domain.Room{{ID: uuid.New(), PlaceID: placeID, Name: "Garden", Price: 800}}

	payload, err := json.Marshal(rooms)
	assert.NoError(t, err)

	key := fmt.Sprintf("rooms:%s", placeID.String())
	mockRedis.ExpectGet(key).RedisNil()
	mockRedis.ExpectSet(key, payload, 5*time.Minute).SetVal("OK")

	mockPlaceRepo.On("GetByID", ctx, placeID).Return(&domain.Place{ID: placeID}, nil)
	mockRoomRepo.On("ListByPlace", ctx, placeID).Return(rooms, nil)

	got, err := service.ListRooms(ctx, placeID)

	assert.NoError(t, err)
	assert.Equal(t, rooms, got)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestListRooms_CacheHitSkipsRepositories(t *testing.T) {
	mockPlaceRepo := mocks.NewPlaceRepository(t)
	mockRoomRepo := mocks.NewRoomRepository(t)
	cache, mockRedis := redismock.NewClientMock()

	service := services.NewRoomService(mockPlaceRepo, mockRoomRepo, cache)

	placeID := uuid.New()
	rooms := []domain.Room{{ID: uuid.New(), PlaceID: placeID, Name: "River", Price: 1200}}

	payload, err := json.Marshal(rooms)
	assert.NoError(t, err)

	mockRedis.ExpectGet(fmt.Sprintf("rooms:%s", placeID.String())).SetVal(string(payload))

	got, err := service.ListRooms(context.Background(), placeID)

	assert.NoError(t, err)
	if assert.Len(t, got, 1) {
		assert.Equal(t, rooms[0].ID, got[0].ID)
		assert.Equal(t, rooms[0].Name, got[0].Name)
		assert.Equal(t, rooms[0].Price, got[0].Price)
	}
	mockRoomRepo.AssertNotCalled(t, "ListByPlace", mock.Anything, mock.Anything)
}

func TestAddRoom_FallsBackToPlaceDefaultPrice(t *testing.T) {
	mockPlaceRepo := mocks.NewPlaceRepository(t)
	mockRoomRepo := mocks.NewRoomRepository(t)
	cache, mockRedis := redismock.NewClientMock()

	service := services.NewRoomService(mockPlaceRepo, mockRoomRepo, cache)

	ctx := context.Background()
	placeID := uuid.New()

	mockPlaceRepo.On("GetByID", ctx, placeID).Return(&domain.Place{ID: placeID, DefaultPrice: 900}, nil)
	mockRoomRepo.On("Create", ctx, mock.MatchedBy(func(r *domain.Room) bool {
		return r.PlaceID == placeID && r.Price == 900
	})).Return(nil)
	mockRedis.ExpectDel(fmt.Sprintf("rooms:%s", placeID.String())).SetVal(1)

	room, err := service.AddRoom(ctx, placeID, services.RoomInput{Name: "Attic"})

	assert.NoError(t, err)
	assert.Equal(t, 900.0, room.Price)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}
