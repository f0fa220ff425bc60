package event

import (
	"sync"

	"github.com/leandro-lugaresi/hub"
)

// Data represents key value pairs attached to an event message.
type Data = hub.Fields

// Message represents a published event.
type Message = hub.Message

// Hub is the event message hub type.
type Hub = hub.Hub

var sharedHub *Hub
var hubOnce sync.Once

// SharedHub returns the process wide event hub.
func SharedHub() *Hub {
	hubOnce.Do(func() {
		sharedHub = hub.New()
	})

	return sharedHub
}

// Publish sends an event to all subscribers of the topic.
func Publish(topic string, data Data) {
	SharedHub().Publish(Message{
		Name:   topic,
		Fields: data,
	})
}

// Subscribe returns a new subscription for the topics, wildcards like "log.*" are supported.
func Subscribe(topics ...string) hub.Subscription {
	return SharedHub().Subscribe(100, topics...)
}

// Unsubscribe removes a subscription.
func Unsubscribe(s hub.Subscription) {
	SharedHub().Unsubscribe(s)
}
