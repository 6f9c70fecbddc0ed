// Package dashboard holds the state of one dashboard session and the
// operations that act on it: selecting a user, viewing a stock, saving a
// profile and deleting a user.
//
// Lookup misses are reported as domain.ErrUserNotFound or
// domain.ErrStockNotFound and leave the state untouched. Callers are expected
// to treat them as no-ops.
package dashboard

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"sync"

	"github.com/nfrund/portview/internal/domain"
	"github.com/nfrund/portview/internal/pubsub"
	"github.com/nfrund/portview/internal/topicmgr"
)

// Snapshot is a consistent copy of the dashboard state, used for rendering.
// Selected and Stock are nil when nothing is selected or displayed.
type Snapshot struct {
	Users    []domain.User
	Selected *domain.User
	Stock    *domain.Stock
}

// Option configures a Dashboard.
type Option func(*Dashboard)

// WithPublisher makes the dashboard publish a UserEvent after every
// successful save or delete.
func WithPublisher(pub pubsub.Publisher) Option {
	return func(d *Dashboard) { d.pub = pub }
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dashboard) { d.logger = logger }
}

// WithName tags published events with the name of the owning workspace.
func WithName(name string) Option {
	return func(d *Dashboard) { d.name = name }
}

// Dashboard is the application state of one session.
type Dashboard struct {
	mu sync.Mutex

	users   []domain.User
	catalog *Catalog

	selected    domain.UserID
	hasSelected bool
	stock       *domain.Stock

	name   string
	pub    pubsub.Publisher
	logger *slog.Logger
}

// New creates a dashboard owning the given users. The slice is used as is;
// pass a clone when the caller keeps a reference to it.
func New(users []domain.User, catalog *Catalog, opts ...Option) *Dashboard {
	if catalog == nil {
		catalog = NewCatalog(nil)
	}
	d := &Dashboard{
		users:   users,
		catalog: catalog,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Users returns a copy of the users collection in collection order.
func (d *Dashboard) Users() []domain.User {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.copyUsers()
}

// Select makes the user with the given id the selected one.
func (d *Dashboard) Select(id domain.UserID) (domain.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	i := d.indexOf(id)
	if i < 0 {
		return domain.User{}, domain.ErrUserNotFound
	}
	d.selected, d.hasSelected = id, true
	return d.users[i].Clone(), nil
}

// Selected returns the selected user, if any.
func (d *Dashboard) Selected() (domain.User, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	u := d.selectedUser()
	if u == nil {
		return domain.User{}, false
	}
	return *u, true
}

// ViewStock displays the stock with the given symbol. On a miss a diagnostic
// is logged and the displayed stock, if any, stays in place.
func (d *Dashboard) ViewStock(symbol string) (domain.Stock, error) {
	stock, ok := d.catalog.Lookup(symbol)
	if !ok {
		d.logger.Warn("stock not found", "symbol", symbol)
		return domain.Stock{}, domain.ErrStockNotFound
	}

	d.mu.Lock()
	d.stock = &stock
	d.mu.Unlock()
	return stock, nil
}

// DisplayedStock returns the stock currently displayed, if any.
func (d *Dashboard) DisplayedStock() (domain.Stock, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stock == nil {
		return domain.Stock{}, false
	}
	return *d.stock, true
}

// Save overwrites the five profile fields of the user with the given id,
// verbatim. The id and the portfolio are left untouched and the user stays
// (or becomes) the selected one.
func (d *Dashboard) Save(ctx context.Context, id domain.UserID, profile domain.Profile) (domain.User, error) {
	d.mu.Lock()
	i := d.indexOf(id)
	if i < 0 {
		d.mu.Unlock()
		return domain.User{}, domain.ErrUserNotFound
	}
	d.users[i].Profile = profile
	d.selected, d.hasSelected = id, true
	saved := d.users[i].Clone()
	d.mu.Unlock()

	d.publish(ctx, TopicUserSaved, saved)
	return saved, nil
}

// Delete removes exactly one user with the given id and clears the
// selection. The displayed stock is not affected.
func (d *Dashboard) Delete(ctx context.Context, id domain.UserID) error {
	d.mu.Lock()
	i := d.indexOf(id)
	if i < 0 {
		d.mu.Unlock()
		return domain.ErrUserNotFound
	}
	removed := d.users[i]
	d.users = slices.Delete(d.users, i, i+1)
	d.selected, d.hasSelected = "", false
	d.mu.Unlock()

	d.publish(ctx, TopicUserDeleted, removed)
	return nil
}

// Snapshot returns a consistent copy of the whole state.
func (d *Dashboard) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	s := Snapshot{Users: d.copyUsers()}
	if u := d.selectedUser(); u != nil {
		s.Selected = u
	}
	if d.stock != nil {
		stock := *d.stock
		s.Stock = &stock
	}
	return s
}

// Catalog returns the stocks catalog the dashboard looks symbols up in.
func (d *Dashboard) Catalog() *Catalog { return d.catalog }

// indexOf must be called with mu held.
func (d *Dashboard) indexOf(id domain.UserID) int {
	return slices.IndexFunc(d.users, func(u domain.User) bool { return u.ID == id })
}

// selectedUser must be called with mu held. It returns a copy.
func (d *Dashboard) selectedUser() *domain.User {
	if !d.hasSelected {
		return nil
	}
	i := d.indexOf(d.selected)
	if i < 0 {
		return nil
	}
	u := d.users[i].Clone()
	return &u
}

func (d *Dashboard) copyUsers() []domain.User {
	out := make([]domain.User, len(d.users))
	for i, u := range d.users {
		out[i] = u.Clone()
	}
	return out
}

func (d *Dashboard) publish(ctx context.Context, topic topicmgr.Topic, u domain.User) {
	if d.pub == nil {
		return
	}
	payload, err := json.Marshal(UserEvent{UserID: u.ID.String(), Label: u.Label(), Workspace: d.name})
	if err != nil {
		d.logger.Error("failed to encode dashboard event", "topic", topic.Name(), "error", err)
		return
	}
	msg := pubsub.Message{Topic: topic.Name(), UserID: u.ID.String(), Payload: payload}
	if err := d.pub.Publish(ctx, msg); err != nil {
		d.logger.Error("failed to publish dashboard event", "topic", topic.Name(), "error", err)
	}
}
