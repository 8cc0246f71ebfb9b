// Package broadcaster implements the background job that drains the
// exit WAL: pending pop records are published to Kafka and marked
// acknowledged, so every popped value reaches downstream consumers at
// least once.
package broadcaster

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"github.com/IBM/sarama"

	exitwal "stackd/infra/wal/exit"
)

type Broadcaster struct {
	exitWAL  *exitwal.ExitWAL
	producer sarama.SyncProducer
	topic    string
	interval time.Duration
}

// Event is the published wire shape. Value is base64 in JSON.
type Event struct {
	V     int    `json:"v"`
	Type  string `json:"type"`
	Seq   uint64 `json:"seq"`
	Value []byte `json:"value"`
}

func New(
	exitWAL *exitwal.ExitWAL,
	brokers []string,
	topic string,
	interval time.Duration,
) (*Broadcaster, error) {

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	return &Broadcaster{
		exitWAL:  exitWAL,
		producer: producer,
		topic:    topic,
		interval: interval,
	}, nil
}

// Start runs the drain loop until ctx is cancelled.
func (b *Broadcaster) Start(ctx context.Context) {
	log.Println("[broadcaster] started")

	go func() {
		ticker := time.NewTicker(b.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return

			case <-ticker.C:
				if err := b.drainOnce(); err != nil {
					log.Printf("[broadcaster] drain failed: %v", err)
				}
			}
		}
	}()
}

func (b *Broadcaster) drainOnce() error {
	return b.exitWAL.ScanPending(func(rec *exitwal.ExitRecord) error {
		// Mark SENT first so a crash mid-publish retries instead of
		// losing the record.
		if err := b.exitWAL.MarkSent(rec.Seq); err != nil {
			return err
		}

		payload, err := json.Marshal(Event{
			V:     1,
			Type:  "pop",
			Seq:   rec.Seq,
			Value: rec.Payload,
		})
		if err != nil {
			return err
		}

		msg := &sarama.ProducerMessage{
			Topic: b.topic,
			Key:   sarama.StringEncoder(strconv.FormatUint(rec.Seq, 10)),
			Value: sarama.ByteEncoder(payload),
		}

		if _, _, err := b.producer.SendMessage(msg); err != nil {
			log.Printf("[broadcaster] publish seq=%d failed: %v", rec.Seq, err)
			return nil // stays SENT, retried next tick
		}

		return b.exitWAL.MarkAcked(rec.Seq)
	})
}

func (b *Broadcaster) Close() error {
	return b.producer.Close()
}
