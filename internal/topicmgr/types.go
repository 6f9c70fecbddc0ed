package topicmgr

import "maps"

// Topic is a strongly-typed topic identifier.
type Topic interface {
	// Name returns the unique string identifier for this topic.
	Name() string

	// Module returns the module that owns this topic.
	Module() string

	// Description returns human-readable documentation.
	Description() string

	// Example returns an example payload.
	Example() string

	// Metadata returns additional topic information.
	Metadata() map[string]string
}

// TypedTopic is the Topic implementation returned by DefineModule.
type TypedTopic struct {
	name        string
	module      string
	description string
	example     string
	metadata    map[string]string
}

var _ Topic = (*TypedTopic)(nil)

// TopicConfig holds configuration for creating a new topic.
type TopicConfig struct {
	Name        string            `json:"name"`
	Module      string            `json:"module"`
	Description string            `json:"description"`
	Example     string            `json:"example"`
	Metadata    map[string]string `json:"metadata"`
}

// DefineModule creates a topic owned by config.Module.
func DefineModule(config TopicConfig) Topic {
	return &TypedTopic{
		name:        config.Name,
		module:      config.Module,
		description: config.Description,
		example:     config.Example,
		metadata:    maps.Clone(config.Metadata),
	}
}

// ErrorType defines the type of topic management error.
type ErrorType string

const (
	ErrorTopicNotFound         ErrorType = "topic_not_found"
	ErrorDuplicateRegistration ErrorType = "duplicate_registration"
	ErrorValidationFailed      ErrorType = "validation_failed"
)

// TopicError represents structured errors in the topic management system.
type TopicError struct {
	Type    ErrorType `json:"type"`
	Topic   string    `json:"topic"`
	Module  string    `json:"module"`
	Message string    `json:"message"`
}

func (e *TopicError) Error() string {
	return e.Message
}

// Is matches any *TopicError with the same Type, so callers can test
// errors.Is(err, &TopicError{Type: ErrorDuplicateRegistration}).
func (e *TopicError) Is(target error) bool {
	t, ok := target.(*TopicError)
	return ok && t.Type == e.Type
}

func (t *TypedTopic) Name() string        { return t.name }
func (t *TypedTopic) Module() string      { return t.module }
func (t *TypedTopic) Description() string { return t.description }
func (t *TypedTopic) Example() string     { return t.example }

// Metadata returns a copy of the topic metadata.
func (t *TypedTopic) Metadata() map[string]string {
	if t.metadata == nil {
		return map[string]string{}
	}
	return maps.Clone(t.metadata)
}

// String returns the topic name for easy debugging.
func (t *TypedTopic) String() string {
	return t.name
}
