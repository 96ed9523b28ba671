// broker/broker.go
package broker

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Collection change topics. One topic per (collection, owner) pair so a
// subscriber only sees changes to its own records.
const (
	CollectionTasks         = "tasks"
	CollectionMarks         = "marks"
	CollectionStudySessions = "studySessions"
)

// Topic builds the subscription key for a user's view of a collection.
func Topic(collection string, userID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", collection, userID)
}

type Broker struct {
	subscribers map[string][]chan struct{}
	mu          sync.RWMutex
}

func NewBroker() *Broker {
	return &Broker{
		subscribers: make(map[string][]chan struct{}),
	}
}

// Subscribe registers interest in a topic. The returned channel receives a
// signal whenever the topic's matching set changes; the subscriber re-queries
// the full snapshot itself. Callers must Unsubscribe on every exit path.
func (b *Broker) Subscribe(topic string) <-chan struct{} {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch := make(chan struct{}, 1)
	b.subscribers[topic] = append(b.subscribers[topic], ch)
	return ch
}

func (b *Broker) Unsubscribe(topic string, ch <-chan struct{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if chans, ok := b.subscribers[topic]; ok {
		for i, c := range chans {
			if c == ch {
				b.subscribers[topic] = append(chans[:i], chans[i+1:]...)
				close(c)
				break
			}
		}
	}
}

// Publish signals every subscriber of the topic. Each channel holds at most
// one pending signal and further ones coalesce into it, so a slow subscriber
// never blocks the mutation path that published the change.
func (b *Broker) Publish(topic string) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subscribers[topic] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
