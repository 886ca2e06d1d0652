package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

// consume reads batch messages on its own connection until ctx is done or
// the delivery channel closes.
func (w *Worker) consume(ctx context.Context, id int, url string) error {
	conn, err := amqp.Dial(url)
	if err != nil {
		return fmt.Errorf("error dialling rabbitmq: %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("error connecting to rabbitmq channel: %w", err)
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(
		BatchQueue, // queue name
		true,       // durable
		false,      // auto-delete when unused
		false,      // exclusive
		false,      // no-wait
		nil,        // arguments
	); err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	// One unacknowledged batch per worker.
	if err := ch.Qos(1, 0, false); err != nil {
		return fmt.Errorf("failed to set qos: %w", err)
	}

	msgs, err := ch.Consume(
		BatchQueue, // queue name
		"",         // consumer tag
		false,      // auto-ack
		false,      // exclusive
		false,      // no-local
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		return fmt.Errorf("error consuming rabbitmq messages: %w", err)
	}

	log := w.logger.With(zap.Int("worker", id))
	log.Info("worker started")

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return errors.New("delivery channel closed")
			}
			if err := w.HandleMessage(ctx, msg.Body); err != nil {
				log.Debug("message handled with error", zap.Error(err))
			}
			settle(ctx, log, msg)
		}
	}
}

// settle acks a handled message. A message whose batch was interrupted by
// shutdown is requeued so another consumer picks it up.
func settle(ctx context.Context, log *zap.Logger, msg amqp.Delivery) {
	if ctx.Err() != nil {
		if err := msg.Nack(false, true); err != nil {
			log.Warn("failed to requeue message", zap.Error(err))
		}
		return
	}

	if err := msg.Ack(false); err != nil {
		log.Warn("failed to ack message", zap.Error(err))
	}
}

// StartConsumerWorkerPool runs numWorkers consumers and blocks until all of
// them stop. The first consumer error is returned.
func (w *Worker) StartConsumerWorkerPool(ctx context.Context, url string, numWorkers int) error {
	if numWorkers < 1 {
		numWorkers = 1
	}

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	wg.Add(numWorkers)

	for i := range numWorkers {
		go func() {
			defer wg.Done()
			if err := w.consume(ctx, i+1, url); err != nil {
				w.logger.Error("worker stopped", zap.Int("worker", i+1), zap.Error(err))
				once.Do(func() { firstErr = err })
			}
		}()
	}
	wg.Wait()

	return firstErr
}
