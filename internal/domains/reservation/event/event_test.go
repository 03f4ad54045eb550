package event_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotel/config"
	kafkaMocks "hotel/infras/kafka/mocks"
	"hotel/infras/otel/mocks"
	"hotel/internal/domains/reservation/event"
	"hotel/internal/domains/reservation/model"
)

func reservation() model.Reservation {
	return model.Reservation{
		ID:           42,
		GuestID:      7,
		RoomID:       3,
		CheckInDate:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
		GrandTotal:   decimal.RequireFromString("327"),
		Status:       model.StatusConfirmed,
	}
}

func TestNew(t *testing.T) {
	at := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	evt := event.New(event.TypeCreated, reservation(), at)

	assert.Equal(t, event.TypeCreated, evt.Type)
	assert.Equal(t, int64(42), evt.ReservationID)
	assert.Equal(t, "2025-06-01", evt.CheckInDate)
	assert.Equal(t, "2025-06-04", evt.CheckOutDate)
	assert.Equal(t, "Confirmed", evt.Status)
	assert.Equal(t, "327.00", evt.GrandTotal)
	assert.Equal(t, at, evt.OccurredAt)
}

func TestTypeOf(t *testing.T) {
	assert.Equal(t, event.TypeCanceled, event.TypeOf(model.OperationCancel))
	assert.Equal(t, event.TypeCheckedIn, event.TypeOf(model.OperationCheckIn))
	assert.Equal(t, event.TypeCheckedOut, event.TypeOf(model.OperationCheckOut))
}

func TestPublisher_Publish(t *testing.T) {
	evt := event.New(event.TypeCreated, reservation(), time.Now())

	tests := []struct {
		name      string
		enable    bool
		setupMock func(client *kafkaMocks.MockClient)
		wantErr   bool
	}{
		{
			name:      "disabled publisher sends nothing",
			enable:    false,
			setupMock: func(_ *kafkaMocks.MockClient) {},
		},
		{
			name:   "sends keyed message",
			enable: true,
			setupMock: func(client *kafkaMocks.MockClient) {
				client.EXPECT().
					SendMessages(gomock.Any(), "hotel.reservation.events", gomock.Any()).
					Return(nil)
			},
		},
		{
			name:   "broker failure",
			enable: true,
			setupMock: func(client *kafkaMocks.MockClient) {
				client.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("broker down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := kafkaMocks.NewMockClient(ctrl)
			tt.setupMock(client)

			cfg := &config.Config{}
			cfg.Kafka.Enable = tt.enable
			cfg.Kafka.Topics.Reservation = "hotel.reservation.events"

			err := event.NewPublisher(cfg, client, mocks.NewOtel()).Publish(context.Background(), evt)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPublisher_BreakerOpens(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := kafkaMocks.NewMockClient(ctrl)
	client.EXPECT().
		SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("broker down")).
		Times(2)

	cfg := &config.Config{}
	cfg.Kafka.Enable = true
	cfg.Kafka.Topics.Reservation = "hotel.reservation.events"
	cfg.Kafka.Breaker.FailureThreshold = 2
	cfg.Kafka.Breaker.TimeoutSeconds = 60

	publisher := event.NewPublisher(cfg, client, mocks.NewOtel())
	evt := event.New(event.TypeCanceled, reservation(), time.Now())

	assert.Error(t, publisher.Publish(context.Background(), evt))
	assert.Error(t, publisher.Publish(context.Background(), evt))

	err := publisher.Publish(context.Background(), evt)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}
