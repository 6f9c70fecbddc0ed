package view

import (
	"github.com/nfrund/portview/internal/dashboard"
	"github.com/nfrund/portview/internal/domain"
)

// Data is the view model of the dashboard page. Selected and Stock are nil
// when nothing is selected or displayed.
type Data struct {
	Users    []domain.User
	Selected *domain.User
	Stock    *domain.Stock
}

// FromSnapshot converts dashboard state into a view model.
func FromSnapshot(s dashboard.Snapshot) Data {
	return Data{Users: s.Users, Selected: s.Selected, Stock: s.Stock}
}

// Panel names one independently swappable part of the page.
type Panel int

const (
	PanelUsers Panel = iota
	PanelForm
	PanelPortfolio
	PanelStock
)
