package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/mocks"
)

func TestMenuService_Listing(t *testing.T) {
	ctx := context.Background()

	available := []model.MenuItem{
		{ID: "antipasti-tray", Category: model.CategoryColdPlatters, Available: true},
	}
	all := append(available, model.MenuItem{ID: "seasonal-salad", Category: model.CategorySalads})

	repo := new(mocks.MockMenuRepositoryInterface)
	repo.On("List", mock.Anything, true).Return(available, nil)
	repo.On("List", mock.Anything, false).Return(all, nil)

	svc := NewMenuService(repo)

	items, err := svc.ListAvailable(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	items, err = svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestMenuService_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         string
		setupMocks func(*mocks.MockMenuRepositoryInterface)
		wantErr    error
	}{
		{
			name: "found",
			id:   "antipasti-tray",
			setupMocks: func(repo *mocks.MockMenuRepositoryInterface) {
				repo.On("FindByID", mock.Anything, "antipasti-tray").
					Return(&model.MenuItem{ID: "antipasti-tray"}, nil)
			},
		},
		{
			name: "absent item maps to ErrItemNotFound",
			id:   "nope",
			setupMocks: func(repo *mocks.MockMenuRepositoryInterface) {
				repo.On("FindByID", mock.Anything, "nope").Return(nil, nil)
			},
			wantErr: ErrItemNotFound,
		},
		{
			name: "repository error passes through",
			id:   "antipasti-tray",
			setupMocks: func(repo *mocks.MockMenuRepositoryInterface) {
				repo.On("FindByID", mock.Anything, "antipasti-tray").
					Return(nil, errors.New("connection reset"))
			},
			wantErr: errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockMenuRepositoryInterface)
			tt.setupMocks(repo)

			svc := NewMenuService(repo)
			item, err := svc.Get(ctx, tt.id)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, item)
			} else {
				require.NoError(t, err)
				require.NotNil(t, item)
				assert.Equal(t, tt.id, item.ID)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestMenuService_UpsertAndDelete(t *testing.T) {
	ctx := context.Background()

	repo := new(mocks.MockMenuRepositoryInterface)
	item := &model.MenuItem{ID: "mini-sandwich", Category: model.CategorySandwiches, Price: 9}
	repo.On("Upsert", mock.Anything, item).Return(nil)
	repo.On("Delete", mock.Anything, "mini-sandwich").Return(nil)

	svc := NewMenuService(repo)

	require.NoError(t, svc.Upsert(ctx, item))
	require.NoError(t, svc.Delete(ctx, "mini-sandwich"))
	repo.AssertExpectations(t)
}
