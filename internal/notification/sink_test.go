package notification_test

import (
	"context"
	"testing"

	"github.com/MichalMitros/price-monitor/internal/notification"
	"github.com/MichalMitros/price-monitor/internal/notification/mocks"
	"github.com/MichalMitros/price-monitor/internal/platform"
	"github.com/MichalMitros/price-monitor/internal/platform/models"
	"github.com/MichalMitros/price-monitor/internal/platform/models/modelstesting"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUnitPriceChanged(t *testing.T) {
	logger := zerolog.Nop()
	product := modelstesting.FakeProduct()

	tests := map[string]struct {
		storeErr error
		wantErr  error
	}{
		"ok": {},
		"store error": {
			storeErr: assert.AnError,
			wantErr:  assert.AnError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			store := mocks.NewStore(t)
			store.On("CreateNotification", mock.Anything, mock.MatchedBy(func(n *models.Notification) bool {
				return n.UserID == product.OwnerID &&
					n.Type == models.NotificationPriceDrop &&
					*n.ProductID == product.ID
			})).Return(func(_ context.Context, n *models.Notification) (*models.Notification, error) {
				if tt.storeErr != nil {
					return nil, tt.storeErr
				}
				created := *n
				created.ID = 1
				return &created, nil
			})

			sink := notification.NewSink(store, &logger)
			got, err := sink.PriceChanged(context.TODO(), &product, 20, 10)

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")
			if tt.wantErr == nil {
				assert.EqualValues(t, 1, got.ID, "should return saved notification")
			}
		})
	}
}

func TestUnitMarkRead(t *testing.T) {
	logger := zerolog.Nop()
	owner := int64(10)
	stranger := int64(20)
	stored := modelstesting.FakeNotification(func(n *models.Notification) {
		n.UserID = owner
	})

	tests := map[string]struct {
		userID    int64
		getResult *models.Notification
		getErr    error
		wantMark  bool
		wantOK    bool
		wantErr   error
	}{
		"owner marks notification": {
			userID:    owner,
			getResult: &stored,
			wantMark:  true,
			wantOK:    true,
		},
		"other user can't mark notification": {
			userID:    stranger,
			getResult: &stored,
		},
		"missing notification": {
			userID: owner,
			getErr: platform.ErrNotFound,
		},
		"store error": {
			userID:  owner,
			getErr:  assert.AnError,
			wantErr: assert.AnError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			store := mocks.NewStore(t)
			store.On("GetNotification", mock.Anything, stored.ID).Return(tt.getResult, tt.getErr)
			if tt.wantMark {
				store.On("MarkNotificationRead", mock.Anything, stored.ID).Return(nil)
			}

			sink := notification.NewSink(store, &logger)
			ok, err := sink.MarkRead(context.TODO(), stored.ID, tt.userID)

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")
			assert.Equal(t, tt.wantOK, ok, "should return correct result")
			if !tt.wantMark {
				store.AssertNotCalled(t, "MarkNotificationRead", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestUnitListRecent(t *testing.T) {
	logger := zerolog.Nop()
	userID := int64(7)
	notifications := []models.Notification{
		modelstesting.FakeNotification(func(n *models.Notification) { n.UserID = userID }),
		modelstesting.FakeNotification(func(n *models.Notification) { n.UserID = userID }),
	}

	store := mocks.NewStore(t)
	store.On("RecentNotifications", mock.Anything, userID, notification.RecentLimit).Return(notifications, nil)
	store.On("CountUnread", mock.Anything, userID).Return(2, nil)

	sink := notification.NewSink(store, &logger)

	got, err := sink.ListRecent(context.TODO(), userID)
	require.NoError(t, err)
	assert.Equal(t, notifications, got)

	count, err := sink.UnreadCount(context.TODO(), userID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestUnitBulkOperations(t *testing.T) {
	logger := zerolog.Nop()
	userID := int64(7)

	store := mocks.NewStore(t)
	store.On("MarkAllNotificationsRead", mock.Anything, userID).Return(int64(3), nil)
	store.On("DeleteNotifications", mock.Anything, userID).Return(int64(0), assert.AnError)

	sink := notification.NewSink(store, &logger)

	assert.NoError(t, sink.MarkAllRead(context.TODO(), userID))
	assert.ErrorIs(t, sink.DeleteAll(context.TODO(), userID), assert.AnError)
}

func TestUnitProductAdded(t *testing.T) {
	logger := zerolog.Nop()
	product := modelstesting.FakeProduct()

	store := mocks.NewStore(t)
	store.On("CreateNotification", mock.Anything, mock.MatchedBy(func(n *models.Notification) bool {
		return n.Type == models.NotificationProductAdded && n.UserID == product.OwnerID
	})).Return(&models.Notification{ID: 5, ProductID: lo.ToPtr(product.ID)}, nil)

	sink := notification.NewSink(store, &logger)
	got, err := sink.ProductAdded(context.TODO(), &product)

	require.NoError(t, err)
	assert.EqualValues(t, 5, got.ID)
}
