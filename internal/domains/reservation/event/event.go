// Package event publishes reservation lifecycle events after their transaction commits.
package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=../mocks/event_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/internal/domains/reservation/model"
	"hotel/shared/constant"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
)

const (
	breakerName      = "reservation-events"
	headerEventType  = "event_type"
	moneyPlaces      = 2
	defaultThreshold = 5
)

type Type string

const (
	TypeCreated    Type = "reservation.created"
	TypeCanceled   Type = "reservation.canceled"
	TypeCheckedIn  Type = "reservation.checked_in"
	TypeCheckedOut Type = "reservation.checked_out"
)

var operationTypes = map[model.Operation]Type{
	model.OperationCancel:   TypeCanceled,
	model.OperationCheckIn:  TypeCheckedIn,
	model.OperationCheckOut: TypeCheckedOut,
}

func TypeOf(op model.Operation) Type {
	return operationTypes[op]
}

type Event struct {
	Type          Type      `json:"type"`
	ReservationID int64     `json:"reservation_id"`
	GuestID       int64     `json:"guest_id"`
	RoomID        int64     `json:"room_id"`
	CheckInDate   string    `json:"check_in_date"`
	CheckOutDate  string    `json:"check_out_date"`
	Status        string    `json:"status"`
	GrandTotal    string    `json:"grand_total"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func New(t Type, r model.Reservation, at time.Time) Event {
	return Event{
		Type:          t,
		ReservationID: r.ID,
		GuestID:       r.GuestID,
		RoomID:        r.RoomID,
		CheckInDate:   r.CheckInDate.Format(constant.DateOnlyFormat),
		CheckOutDate:  r.CheckOutDate.Format(constant.DateOnlyFormat),
		Status:        string(r.Status),
		GrandTotal:    r.GrandTotal.StringFixed(moneyPlaces),
		OccurredAt:    at,
	}
}

type Publisher interface {
	Publish(ctx context.Context, evt Event) error
}

type publisherImpl struct {
	client  kafka.Client
	otel    otel.Otel
	breaker *gobreaker.CircuitBreaker
	topic   string
	enabled bool
}

func NewPublisher(cfg *config.Config, client kafka.Client, otel otel.Otel) Publisher {
	threshold := cfg.Kafka.Breaker.FailureThreshold
	if threshold == 0 {
		threshold = defaultThreshold
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: cfg.Kafka.Breaker.MaxRequests,
		Interval:    time.Duration(cfg.Kafka.Breaker.IntervalSeconds) * time.Second,
		Timeout:     time.Duration(cfg.Kafka.Breaker.TimeoutSeconds) * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
		},
	})

	return &publisherImpl{
		client:  client,
		otel:    otel,
		breaker: breaker,
		topic:   cfg.Kafka.Topics.Reservation,
		enabled: cfg.Kafka.Enable,
	}
}

// Publish sends evt keyed by reservation id. While the breaker is open it fails fast with
// gobreaker.ErrOpenState.
func (p *publisherImpl) Publish(ctx context.Context, evt Event) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".reservation.Publish")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !p.enabled {
		return nil
	}

	scope.SetAttribute("event.type", string(evt.Type))

	_, err = p.breaker.Execute(func() (interface{}, error) {
		return nil, p.client.SendMessages(ctx, p.topic, kafka.Message{
			Key:     strconv.FormatInt(evt.ReservationID, 10),
			Value:   evt,
			Headers: map[string]string{headerEventType: string(evt.Type)},
		})
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		log.Warn().Str("type", string(evt.Type)).Int64("reservation_id", evt.ReservationID).Msg("event publisher unavailable, dropping event")

		return fmt.Errorf("failed to publish %s: %w", evt.Type, err)
	}

	if err != nil {
		log.Error().Err(err).Str("type", string(evt.Type)).Int64("reservation_id", evt.ReservationID).Msg("failed to publish reservation event")

		return fmt.Errorf("failed to publish %s: %w", evt.Type, err)
	}

	return nil
}
