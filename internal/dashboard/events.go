package dashboard

import "github.com/nfrund/portview/internal/topicmgr"

// Topics published when the users collection changes. The "action"
// metadata names the change in log lines.
var (
	TopicUserSaved = topicmgr.DefineModule(topicmgr.TopicConfig{
		Name:        "dashboard.user.saved",
		Module:      "dashboard",
		Description: "A user's profile fields were overwritten",
		Example:     `{"user_id":"1","label":"Doe, Jane","workspace":"0b8f..."}`,
		Metadata:    map[string]string{"action": "saved"},
	})

	TopicUserDeleted = topicmgr.DefineModule(topicmgr.TopicConfig{
		Name:        "dashboard.user.deleted",
		Module:      "dashboard",
		Description: "A user record was removed",
		Example:     `{"user_id":"1","label":"Doe, Jane","workspace":"0b8f..."}`,
		Metadata:    map[string]string{"action": "deleted"},
	})
)

// RegisterTopics adds the dashboard topics to r.
func RegisterTopics(r *topicmgr.Registry) error {
	return r.Register(TopicUserSaved, TopicUserDeleted)
}

// UserEvent is the payload of TopicUserSaved and TopicUserDeleted.
type UserEvent struct {
	UserID    string `json:"user_id"`
	Label     string `json:"label"`
	Workspace string `json:"workspace,omitempty"`
}
