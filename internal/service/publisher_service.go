package service

import (
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Topic names for the in-process work queue.
const (
	TopicEnrollmentCompleted = "ENROLLMENT_COMPLETED"
	TopicLeadCaptured        = "LEAD_CAPTURED"
)

type IQueuePublisher interface {
	Publish(topic string, payload interface{}) error
}

type queuePublisher struct {
	pubSub *gochannel.GoChannel
}

func NewQueuePublisher(pubSub *gochannel.GoChannel) IQueuePublisher {
	return &queuePublisher{pubSub: pubSub}
}

func (p *queuePublisher) Publish(topic string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	msg := message.NewMessage(watermill.NewUUID(), data)
	return p.pubSub.Publish(topic, msg)
}
