package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	DefaultExchange = "events"

	// how long to wait for a broker confirm or return after publishing
	defaultConfirmWait = 150 * time.Millisecond
)

type Options struct {
	Exchange string
	// Mandatory asks the broker to return unroutable messages.
	Mandatory   bool
	ConfirmWait time.Duration
}

// Publisher sends JSON envelopes to a durable topic exchange with publisher
// confirms enabled. A closed channel is re-dialed on the next publish.
type Publisher struct {
	url  string
	opts Options

	mu sync.Mutex

	conn *amqp.Connection
	ch   *amqp.Channel

	confirmCh <-chan amqp.Confirmation
	returnCh  <-chan amqp.Return
}

func NewPublisher(url string, opts Options) (*Publisher, error) {
	if opts.Exchange == "" {
		opts.Exchange = DefaultExchange
	}
	if opts.ConfirmWait <= 0 {
		opts.ConfirmWait = defaultConfirmWait
	}

	p := &Publisher{url: url, opts: opts}
	if err := p.connect(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Publisher) Exchange() string { return p.opts.Exchange }

func (p *Publisher) connect() error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(p.opts.Exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("declare exchange %q: %w", p.opts.Exchange, err)
	}

	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("enable confirms: %w", err)
	}

	p.conn = conn
	p.ch = ch
	p.confirmCh = ch.NotifyPublish(make(chan amqp.Confirmation, 1))
	p.returnCh = ch.NotifyReturn(make(chan amqp.Return, 1))
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
	return nil
}

// PublishEvent publishes body under routingKey. messageID becomes the AMQP
// message id so consumers can deduplicate.
func (p *Publisher) PublishEvent(ctx context.Context, routingKey, messageID string, body []byte) error {
	if strings.TrimSpace(routingKey) == "" {
		return errors.New("missing routingKey")
	}
	if strings.TrimSpace(messageID) == "" {
		return errors.New("missing messageID")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil || p.ch.IsClosed() {
		if p.conn != nil {
			_ = p.conn.Close()
		}
		if err := p.connect(); err != nil {
			return err
		}
	}

	err := p.ch.PublishWithContext(
		ctx,
		p.opts.Exchange,
		routingKey,
		p.opts.Mandatory,
		false,
		amqp.Publishing{
			MessageId:    messageID,
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}

	return p.awaitConfirm(ctx)
}

// awaitConfirm waits for the broker's verdict. A return always arrives before
// the matching ack, so the return channel is checked again after an ack.
func (p *Publisher) awaitConfirm(ctx context.Context) error {
	timeout := time.NewTimer(p.opts.ConfirmWait)
	defer timeout.Stop()

	select {
	case ret := <-p.returnCh:
		// consume the ack that follows the return so it is not seen by the next publish
		select {
		case <-p.confirmCh:
		case <-timeout.C:
		}
		return errors.New("NO_ROUTE: " + ret.RoutingKey)
	case conf := <-p.confirmCh:
		select {
		case ret := <-p.returnCh:
			return errors.New("NO_ROUTE: " + ret.RoutingKey)
		default:
		}
		if !conf.Ack {
			return errors.New("publish nack")
		}
		return nil
	case <-timeout.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
