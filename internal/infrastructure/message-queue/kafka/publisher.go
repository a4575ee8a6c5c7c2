package kafka

import "github.com/segmentio/kafka-go"

type Publisher struct {
	conn *kafka.Conn
}

func CreatePublisher(conn *kafka.Conn) *Publisher {
	return &Publisher{conn: conn}
}

func (p *Publisher) Publish(msg []byte, key string) error {
	kafkaMsg := kafka.Message{
		Value: msg,
	}
	if key != "" {
		kafkaMsg.Key = []byte(key)
	}

	_, err := p.conn.WriteMessages(kafkaMsg)
	return err
}
