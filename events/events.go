package events

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"hackportal-backend/entity"
	"hackportal-backend/errs"
	"hackportal-backend/log"
)

const (
	SubmissionsExchange = "submissions"
)

type SubmissionType uint32

const (
	SSaved SubmissionType = iota
	SClassified
	SAbstract
)

func (t SubmissionType) String() string {
	switch t {
	case SSaved:
		return "saved"
	case SClassified:
		return "classified"
	case SAbstract:
		return "abstract"
	}
	return fmt.Sprintf("SubmissionType(%d)", uint32(t))
}

type SubmissionEvent struct {
	ID             uuid.UUID
	Type           SubmissionType
	TeamID         primitive.ObjectID
	Links          []entity.ArtifactLink
	Classification entity.Classification
	At             time.Time
}

// NewSubmissionEvent snapshots s.
func NewSubmissionEvent(t SubmissionType, s *entity.Submission) *SubmissionEvent {
	return &SubmissionEvent{
		ID:             uuid.New(),
		Type:           t,
		TeamID:         s.TeamID,
		Links:          append([]entity.ArtifactLink(nil), s.Links...),
		Classification: s.Classification,
		At:             s.UpdatedAt,
	}
}

type channel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type Events struct {
	conn *amqp.Connection
	open func() (channel, error)
}

// Connect dials RabbitMQ, retrying with backoff, and declares the exchanges.
func Connect(url string) (*Events, error) {
	log.Logger.Info("Trying to connect to rabbitmq...")

	var conn *amqp.Connection
	t := time.Second
	for i := 0; i < 6; i++ {
		var err error
		conn, err = amqp.Dial(url)
		if err != nil {
			if i == 5 {
				return nil, err
			}
			log.Logger.Debug("rabbitmq dial failed", zap.Int("attempt", i+1), zap.Error(err))
			time.Sleep(t)
			t *= 2

			continue
		}

		break
	}
	log.Logger.Info("Connected to rabbitmq")

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	defer ch.Close()

	err = ch.ExchangeDeclare(
		SubmissionsExchange,
		"fanout",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		conn.Close()
		return nil, err
	}

	e := &Events{conn: conn}
	e.open = func() (channel, error) {
		ch, err := conn.Channel()
		if err != nil {
			return nil, err
		}
		return ch, nil
	}
	return e, nil
}

func queueError(err error) error {
	return fmt.Errorf("%w: %v", errs.ErrQueue, err)
}

// PublishSubmission failures wrap errs.ErrQueue.
func (e *Events) PublishSubmission(event *SubmissionEvent) error {
	var b bytes.Buffer
	err := gob.NewEncoder(&b).Encode(event)
	if err != nil {
		return queueError(err)
	}

	rch, err := e.open()
	if err != nil {
		return queueError(err)
	}
	defer rch.Close()

	err = rch.Publish(SubmissionsExchange, event.TeamID.Hex(), false, false, amqp.Publishing{
		ContentType: "application/x-gob",
		MessageId:   event.ID.String(),
		Timestamp:   event.At,
		Type:        event.Type.String(),
		Body:        b.Bytes(),
	})
	if err != nil {
		return queueError(err)
	}
	return nil
}

func (e *Events) Close() error {
	if e.conn == nil {
		return nil
	}
	return e.conn.Close()
}

// Nop drops every event. It is used when no broker is configured.
type Nop struct{}

func (Nop) PublishSubmission(*SubmissionEvent) error {
	return nil
}

// Decode reads an event published by PublishSubmission.
func Decode(body []byte) (*SubmissionEvent, error) {
	var event *SubmissionEvent
	err := gob.NewDecoder(bytes.NewReader(body)).Decode(&event)
	if err != nil {
		return nil, err
	}
	return event, nil
}
