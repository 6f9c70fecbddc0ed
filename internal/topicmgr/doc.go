// Package topicmgr keeps the catalogue of message bus topics. Topics are
// declared as package variables by the code that publishes them and
// registered with a Registry during the module register phase:
//
//	var UserSaved = topicmgr.DefineModule(topicmgr.TopicConfig{
//		Name:        "dashboard.user.saved",
//		Module:      "dashboard",
//		Description: "A user record was created or updated",
//		Example:     `{"user_id":"1","label":"Doe, Jane"}`,
//	})
//
// Subscribers discover topics through the registry instead of repeating
// their names.
package topicmgr
