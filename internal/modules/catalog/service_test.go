package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"stayelo/internal/domain"
)

type fakeRoomRepo struct {
	rooms map[int64]*domain.Room
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: map[int64]*domain.Room{}}
}

func (r *fakeRoomRepo) Create(_ context.Context, room *domain.Room) error {
	room.ID = int64(len(r.rooms) + 1)
	r.rooms[room.ID] = room
	return nil
}

func (r *fakeRoomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	room, ok := r.rooms[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *room
	return &cp, nil
}

func (r *fakeRoomRepo) GetAll(_ context.Context) ([]domain.Room, error) {
	out := make([]domain.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		out = append(out, *room)
	}
	return out, nil
}

func (r *fakeRoomRepo) Update(_ context.Context, room *domain.Room) error {
	if _, ok := r.rooms[room.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.rooms[room.ID] = room
	return nil
}

func (r *fakeRoomRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.rooms[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.rooms, id)
	return nil
}

func TestService_CreateRoom(t *testing.T) {
	service := NewService(newFakeRoomRepo())

	room, err := service.CreateRoom(context.Background(), CreateRoomRequest{
		Name:     "Sea Breeze",
		Type:     "Deluxe",
		Price:    2500,
		Capacity: 3,
	})

	assert.NoError(t, err)
	assert.NotZero(t, room.ID)
	assert.True(t, room.IsActive)
}

func TestService_CreateRoom_Invalid(t *testing.T) {
	service := NewService(newFakeRoomRepo())

	_, err := service.CreateRoom(context.Background(), CreateRoomRequest{
		Name: "Broken", Type: "Standard", Price: 0, Capacity: 2,
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.CreateRoom(context.Background(), CreateRoomRequest{
		Type: "Standard", Price: 1000, Capacity: 2,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_UpdateRoom(t *testing.T) {
	repo := newFakeRoomRepo()
	service := NewService(repo)

	created, err := service.CreateRoom(context.Background(), CreateRoomRequest{
		Name: "Garden View", Type: "Standard", Price: 1500, Capacity: 2,
	})
	assert.NoError(t, err)

	newPrice := 1800.0
	updated, err := service.UpdateRoom(context.Background(), created.ID, UpdateRoomRequest{Price: &newPrice})
	assert.NoError(t, err)
	assert.Equal(t, 1800.0, updated.Price)
	assert.Equal(t, "Garden View", updated.Name)

	badPrice := -5.0
	_, err = service.UpdateRoom(context.Background(), created.ID, UpdateRoomRequest{Price: &badPrice})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_UpdateRoom_NotFound(t *testing.T) {
	service := NewService(newFakeRoomRepo())

	name := "Ghost"
	_, err := service.UpdateRoom(context.Background(), 99, UpdateRoomRequest{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_DeleteRoom_NotFound(t *testing.T) {
	service := NewService(newFakeRoomRepo())
	assert.ErrorIs(t, service.DeleteRoom(context.Background(), 99), ErrNotFound)
}
