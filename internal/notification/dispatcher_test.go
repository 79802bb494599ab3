package notification_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-editions/internal/messaging"
	"github.com/feral-file/ff-editions/internal/mocks"
	"github.com/feral-file/ff-editions/internal/notification"
	"github.com/feral-file/ff-editions/internal/store"
	"github.com/feral-file/ff-editions/internal/store/schema"
)

func testSale() notification.EditionSold {
	return notification.EditionSold{
		PostID:        "post-1",
		PurchaseID:    "purchase-1",
		OwnerID:       "owner-1",
		BuyerID:       "buyer-1",
		BuyerUsername: "bob",
		EditionNumber: 4,
	}
}

func TestDispatcher_NotifyEditionSold(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockPublisher := mocks.NewMockPublisher(ctrl)
	mockClock := mocks.NewMockClock(ctrl)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mockClock.EXPECT().Now().Return(now).AnyTimes()
	mockStore.EXPECT().
		CreateNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.CreateNotificationInput) error {
			assert.Equal(t, "owner-1", input.UserID)
			assert.Equal(t, "buyer-1", input.ActorID)
			assert.Equal(t, schema.NotificationTypeEditionSold, input.Type)
			require.NotNil(t, input.PurchaseID)
			assert.Equal(t, "purchase-1", *input.PurchaseID)
			return nil
		}).
		Times(1)
	mockPublisher.EXPECT().
		PublishPush(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *messaging.PushEvent) error {
			assert.Len(t, event.ID, 26)
			assert.Equal(t, "edition_sold", event.Type)
			assert.Equal(t, "owner-1", event.UserID)
			assert.Equal(t, "bob collected edition #4 of your post", event.Body)
			assert.Equal(t, now, event.CreatedAt)
			return nil
		}).
		Times(1)

	dispatcher := notification.NewDispatcher(mockStore, mockPublisher, mockClock)
	require.NoError(t, dispatcher.NotifyEditionSold(context.Background(), testSale()))
}

func TestDispatcher_SkipsSelfPurchase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations: nothing may be written or sent
	dispatcher := notification.NewDispatcher(mocks.NewMockStore(ctrl), mocks.NewMockPublisher(ctrl), mocks.NewMockClock(ctrl))

	sale := testSale()
	sale.BuyerID = sale.OwnerID
	require.NoError(t, dispatcher.NotifyEditionSold(context.Background(), sale))
}

func TestDispatcher_WithoutPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockStore.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	dispatcher := notification.NewDispatcher(mockStore, nil, mocks.NewMockClock(ctrl))
	require.NoError(t, dispatcher.NotifyEditionSold(context.Background(), testSale()))
}

func TestDispatcher_ReportsBothFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockPublisher := mocks.NewMockPublisher(ctrl)
	mockClock := mocks.NewMockClock(ctrl)

	mockClock.EXPECT().Now().Return(time.Now()).AnyTimes()
	mockStore.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(errors.New("db down")).Times(1)
	mockPublisher.EXPECT().PublishPush(gomock.Any(), gomock.Any()).Return(errors.New("nats down")).Times(1)

	dispatcher := notification.NewDispatcher(mockStore, mockPublisher, mockClock)
	err := dispatcher.NotifyEditionSold(context.Background(), testSale())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
	assert.Contains(t, err.Error(), "nats down")
}
