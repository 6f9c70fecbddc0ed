// Package modules contains the self-contained application features.
//
// Each subdirectory is a module implementing module.Module. Modules are
// listed in internal/app/modules.go, register their services and topics
// first, then boot their routes and subscriptions.
package modules
