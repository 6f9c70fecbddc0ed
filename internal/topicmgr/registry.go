package topicmgr

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"sync"
)

// topicNamePattern accepts dot separated lowercase segments, e.g.
// "dashboard.user.saved".
var topicNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*)+$`)

// Registry manages the collection of registered topics.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Topic
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Topic)}
}

// Register adds topics to the registry. It stops at the first invalid or
// duplicate topic.
func (r *Registry) Register(topics ...Topic) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, topic := range topics {
		if err := validate(topic); err != nil {
			return err
		}
		name := topic.Name()
		if _, exists := r.entries[name]; exists {
			return &TopicError{
				Type:    ErrorDuplicateRegistration,
				Topic:   name,
				Module:  topic.Module(),
				Message: fmt.Sprintf("topic already registered: %s", name),
			}
		}
		r.entries[name] = topic
	}
	return nil
}

func validate(topic Topic) error {
	if topic == nil {
		return &TopicError{Type: ErrorValidationFailed, Message: "cannot register nil topic"}
	}
	name := topic.Name()
	if !topicNamePattern.MatchString(name) {
		return &TopicError{
			Type:    ErrorValidationFailed,
			Topic:   name,
			Message: fmt.Sprintf("invalid topic name %q", name),
		}
	}
	if topic.Module() == "" {
		return &TopicError{
			Type:    ErrorValidationFailed,
			Topic:   name,
			Message: fmt.Sprintf("topic %s has no module", name),
		}
	}
	if !strings.HasPrefix(name, topic.Module()+".") {
		return &TopicError{
			Type:    ErrorValidationFailed,
			Topic:   name,
			Module:  topic.Module(),
			Message: fmt.Sprintf("topic %s must be prefixed with its module %s", name, topic.Module()),
		}
	}
	return nil
}

// Get retrieves a topic by name.
func (r *Registry) Get(name string) (Topic, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	topic, ok := r.entries[name]
	return topic, ok
}

// MustGet is Get for topics that are known to be registered.
func (r *Registry) MustGet(name string) Topic {
	topic, ok := r.Get(name)
	if !ok {
		panic(&TopicError{Type: ErrorTopicNotFound, Topic: name, Message: "topic not found: " + name})
	}
	return topic
}

// List returns all registered topics ordered by name.
func (r *Registry) List() []Topic {
	return r.filter(func(Topic) bool { return true })
}

// ListByModule returns the topics owned by module, ordered by name.
func (r *Registry) ListByModule(module string) []Topic {
	return r.filter(func(t Topic) bool { return t.Module() == module })
}

// Count returns the number of registered topics.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

func (r *Registry) filter(keep func(Topic) bool) []Topic {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var topics []Topic
	for _, t := range r.entries {
		if keep(t) {
			topics = append(topics, t)
		}
	}
	slices.SortFunc(topics, func(a, b Topic) int { return strings.Compare(a.Name(), b.Name()) })
	return topics
}
