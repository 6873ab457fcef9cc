package rabbitmq

import (
	"fmt"

	"github.com/streadway/amqp"
)

// Connect открывает соединение с брокером и объявляет topic-exchange
// для событий уведомлений. Routing key публикации — категория уведомления.
func Connect(url, exchange string) (*amqp.Connection, *amqp.Channel, error) {
	const op = "rabbitmq.Connect"

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := ch.ExchangeDeclare(
		exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		ch.Close()
		conn.Close()
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return conn, ch, nil
}
