package messaging

import (
	"context"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Publisher publica eventos de domínio para consumidores externos.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, event any) error
	Close() error
}

type RabbitPublisher struct {
	url      string
	exchange string
	queue    string

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

var _ Publisher = (*RabbitPublisher)(nil)

// New devolve um publisher nulo quando o RabbitMQ está desabilitado.
func New(cfg config.RabbitMQ) (Publisher, error) {
	if !cfg.Enabled {
		logrus.Info("RabbitMQ desabilitado, eventos de cobrança não serão publicados")
		return Nop{}, nil
	}

	p := &RabbitPublisher{url: cfg.URL, exchange: cfg.Exchange, queue: cfg.Queue}
	if err := p.connect(); err != nil {
		return nil, err
	}

	logrus.WithField("queue", cfg.Queue).Info("Conexão com RabbitMQ estabelecida com sucesso")
	return p, nil
}

func (p *RabbitPublisher) connect() error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return errors.Wrap(err, "erro ao conectar no RabbitMQ")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return errors.Wrap(err, "erro ao abrir canal no RabbitMQ")
	}

	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return errors.Wrap(err, "erro ao declarar fila")
	}

	if p.exchange != "" {
		if err := ch.ExchangeDeclare(p.exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return errors.Wrap(err, "erro ao declarar exchange")
		}
		if err := ch.QueueBind(p.queue, "subscription.#", p.exchange, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return errors.Wrap(err, "erro ao vincular fila")
		}
	}

	p.conn, p.ch = conn, ch
	return nil
}

func (p *RabbitPublisher) Publish(ctx context.Context, routingKey string, event any) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar evento")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil || p.conn.IsClosed() {
		if err := p.connect(); err != nil {
			return err
		}
	}

	// Sem exchange a mensagem vai direto para a fila pela exchange padrão.
	key := routingKey
	if p.exchange == "" {
		key = p.queue
	}

	err = p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         routingKey,
		Body:         body,
	})
	if err != nil {
		logrus.WithError(err).WithField("routing_key", routingKey).Error("rabbitmq: falha ao publicar evento")
		return errors.Wrap(err, "erro ao publicar evento")
	}

	return nil
}

func (p *RabbitPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

type Nop struct{}

var _ Publisher = Nop{}

func (Nop) Publish(context.Context, string, any) error { return nil }
func (Nop) Close() error                               { return nil }
