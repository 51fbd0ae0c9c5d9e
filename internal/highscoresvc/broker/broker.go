package broker

import (
	"encoding/json"

	"github.com/avvvet/highscore-services/internal/comm"
	"github.com/avvvet/highscore-services/internal/highscoresvc/models"
	log "github.com/sirupsen/logrus"
)

// Publisher is satisfied by *nats.Conn.
type Publisher interface {
	Publish(subj string, data []byte) error
}

// Broker publishes game and score lifecycle events. Failures are logged and
// never returned to the caller.
type Broker struct {
	Conn    Publisher
	Subject string
}

func NewBroker(conn Publisher, subject string) *Broker {
	return &Broker{
		Conn:    conn,
		Subject: subject,
	}
}

func (b *Broker) GameCreated(game *models.Game) {
	b.publishEvent(comm.EventGameCreated, game)
}

func (b *Broker) GameDeleted(slug string) {
	b.publishEvent(comm.EventGameDeleted, comm.GameDeleted{URLSlug: slug})
}

func (b *Broker) ScoreCreated(score *models.Score) {
	b.publishEvent(comm.EventScoreCreated, score)
}

func (b *Broker) publishEvent(eventType string, data any) {
	ev, err := comm.NewEvent(eventType, data)
	if err != nil {
		log.Errorf("error [%s] unable to marshal event data: %s", eventType, err)
		return
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		log.Errorf("error [%s] unable to marshal event: %s", eventType, err)
		return
	}

	b.Publish(b.Subject, payload)
}

func (b *Broker) Publish(topic string, payload []byte) error {
	err := b.Conn.Publish(topic, payload)
	if err != nil {
		log.Errorf("Error publishing to topic %s: %s", topic, err)
		return err
	}

	return nil
}
