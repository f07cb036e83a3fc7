package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Jangel21/restaurante-app/src/order/domain/entity"
)

const (
	ordersExchange      = "orders_topic"
	completedRoutingKey = "orders.completed"
)

// RabbitMQPublisher publica eventos de órdenes en un exchange topic.
type RabbitMQPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewRabbitMQPublisher conecta al broker y declara el exchange de órdenes
func NewRabbitMQPublisher(url string) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("error connecting to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("error opening channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		ordersExchange, // name
		"topic",        // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("error declaring exchange: %w", err)
	}

	return &RabbitMQPublisher{
		conn:    conn,
		channel: channel,
	}, nil
}

// orderCompletedEvent es el payload publicado al cerrar un ticket
type orderCompletedEvent struct {
	EventType     string    `json:"event_type"`
	OrderID       string    `json:"order_id"`
	TicketNumber  int64     `json:"ticket_number"`
	CustomerName  string    `json:"customer_name"`
	OrderType     string    `json:"order_type"`
	PaymentMethod string    `json:"payment_method"`
	Subtotal      string    `json:"subtotal"`
	IVA           string    `json:"iva"`
	Total         string    `json:"total"`
	CompletedAt   time.Time `json:"completed_at"`
}

// PublishOrderCompleted publica el evento orders.completed
func (p *RabbitMQPublisher) PublishOrderCompleted(ctx context.Context, order *entity.Order) error {
	event := orderCompletedEvent{
		EventType:     completedRoutingKey,
		OrderID:       order.ID.String(),
		TicketNumber:  order.TicketNumber,
		CustomerName:  order.CustomerName,
		OrderType:     string(order.OrderType),
		PaymentMethod: string(order.PaymentMethod),
		Subtotal:      order.Subtotal.StringFixed(2),
		IVA:           order.IVA.StringFixed(2),
		Total:         order.Total.StringFixed(2),
	}
	if order.CompletedAt != nil {
		event.CompletedAt = *order.CompletedAt
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("error marshaling event: %w", err)
	}

	err = p.channel.PublishWithContext(ctx,
		ordersExchange,
		completedRoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("error publishing event: %w", err)
	}

	return nil
}

// Close libera el canal y la conexión al broker
func (p *RabbitMQPublisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
