package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"petstay/config"
	"petstay/infras/otel/mocks"
	roomMocks "petstay/internal/domains/room/mocks"
	"petstay/internal/domains/room/model"
	"petstay/internal/domains/room/model/dto"
	"petstay/internal/domains/room/service"
	cacheMocks "petstay/shared/cache/mocks"
	gDto "petstay/shared/dto"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Rooms.Dog.Prefix = "D"
	cfg.Rooms.Dog.FirstNumber = 101
	cfg.Rooms.Dog.Count = 10
	cfg.Rooms.Cat.Prefix = "C"
	cfg.Rooms.Cat.FirstNumber = 201
	cfg.Rooms.Cat.Count = 10

	return cfg
}

func TestRoomService_Availability(t *testing.T) {
	occupied := []model.Room{
		{ID: "r1", RoomNumber: "C201", PetType: "Cat"},
		{ID: "r2", RoomNumber: "D101", PetType: "Dog", Occupied: true, OccupiedBy: "B1"},
		{ID: "r3", RoomNumber: "D102", PetType: "Dog"},
	}

	tests := []struct {
		name      string
		setupMock func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache)
		want      func(t *testing.T, res dto.AvailabilityResponse)
		wantErr   bool
	}{
		{
			name: "counts free rooms per pet type",
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), "room:availability", gomock.Any()).Return(errors.New("cache miss"))
				cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Room, error) {
						assert.Equal(t, "rooms.room_number", params.SortBy)
						assert.Equal(t, gDto.SortDirAsc, params.SortDir)

						return occupied, nil
					})
			},
			want: func(t *testing.T, res dto.AvailabilityResponse) {
				t.Helper()

				assert.Equal(t, dto.Availability{Available: 1, Total: 2}, res.Dog)
				assert.Equal(t, dto.Availability{Available: 1, Total: 1}, res.Cat)
				assert.Len(t, res.Rooms, 3)
				assert.Equal(t, "B1", res.Rooms[1].OccupiedBy)
			},
		},
		{
			name: "empty table is seeded then rescanned",
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

				var seeded []model.Room

				gomock.InOrder(
					repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil),
					repo.EXPECT().
						InsertMissing(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, rooms []model.Room) (int, error) {
							seeded = rooms

							return len(rooms), nil
						}),
					repo.EXPECT().
						GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
						DoAndReturn(func(context.Context, gDto.QueryParams, gDto.FilterGroup, ...string) ([]model.Room, error) {
							return seeded, nil
						}),
				)
			},
			want: func(t *testing.T, res dto.AvailabilityResponse) {
				t.Helper()

				assert.Equal(t, dto.Availability{Available: 10, Total: 10}, res.Dog)
				assert.Equal(t, dto.Availability{Available: 10, Total: 10}, res.Cat)
				assert.Equal(t, "D101", res.Rooms[0].RoomNumber)
				assert.Equal(t, "C210", res.Rooms[19].RoomNumber)
			},
		},
		{
			name: "cached snapshot",
			setupMock: func(_ *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						res, _ := value.(*dto.AvailabilityResponse)
						res.Dog = dto.Availability{Available: 3, Total: 10}

						return nil
					})
			},
			want: func(t *testing.T, res dto.AvailabilityResponse) {
				t.Helper()

				assert.Equal(t, 3, res.Dog.Available)
			},
		},
		{
			name: "scan failure",
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := roomMocks.NewMockRoom(ctrl)
			cache := cacheMocks.NewMockRedisCache(ctrl)

			tt.setupMock(repo, cache)

			svc := service.New(repo, newConfig(), cache, mocks.NewOtel())

			res, err := svc.Availability(context.Background())

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			tt.want(t, res)
		})
	}
}

func TestRoomService_Seed(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := roomMocks.NewMockRoom(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	cache.EXPECT().Clear(gomock.Any(), "room*").Return(nil).AnyTimes()

	repo.EXPECT().
		InsertMissing(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rooms []model.Room) (int, error) {
			assert.Len(t, rooms, 20)

			for _, room := range rooms {
				assert.False(t, room.Occupied)
				assert.Equal(t, "system", room.CreatedBy)
			}

			// four numbers already exist
			return 16, nil
		})

	svc := service.New(repo, newConfig(), cache, mocks.NewOtel())

	res, err := svc.Seed(context.Background())

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, dto.SeedResponse{Created: 16, Total: 20}, res)
}
