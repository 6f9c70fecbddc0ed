package dashboard_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/nfrund/portview/internal/dashboard"
	"github.com/nfrund/portview/internal/domain"
	"github.com/nfrund/portview/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu   sync.Mutex
	msgs []pubsub.Message
	err  error
}

func (p *recordingPublisher) Publish(ctx context.Context, msg pubsub.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.msgs = append(p.msgs, msg)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) messages() []pubsub.Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]pubsub.Message(nil), p.msgs...)
}

func sampleUsers() []domain.User {
	return []domain.User{
		{
			ID:        "1",
			Profile:   domain.Profile{Firstname: "Jane", Lastname: "Doe", Address: "1 Elm", City: "Springfield", Email: "jane@example.com"},
			Portfolio: []domain.Holding{{Symbol: "ACME", Owned: 10}},
		},
		{
			ID:      "2",
			Profile: domain.Profile{Firstname: "John", Lastname: "Roe"},
		},
		{
			ID:        "3",
			Profile:   domain.Profile{Firstname: "Ann", Lastname: "Poe"},
			Portfolio: []domain.Holding{},
		},
	}
}

func sampleCatalog() *dashboard.Catalog {
	return dashboard.NewCatalog([]domain.Stock{
		{Symbol: "ACME", Name: "Acme Corp", Sector: "Tech", SubIndustry: "Software", Address: "1 Main St"},
		{Symbol: "INIT", Name: "Initech", Sector: "Tech", SubIndustry: "Services", Address: "2 Office Park"},
	})
}

func TestDashboard_InitialState(t *testing.T) {
	d := dashboard.New(sampleUsers(), sampleCatalog())

	snap := d.Snapshot()
	assert.Len(t, snap.Users, 3)
	assert.Nil(t, snap.Selected, "no user is selected initially")
	assert.Nil(t, snap.Stock, "no stock is displayed initially")

	_, ok := d.Selected()
	assert.False(t, ok)
}

func TestDashboard_UsersKeepCollectionOrder(t *testing.T) {
	d := dashboard.New(sampleUsers(), sampleCatalog())

	var labels []string
	for _, u := range d.Users() {
		labels = append(labels, u.Label())
	}
	assert.Equal(t, []string{"Doe, Jane", "Roe, John", "Poe, Ann"}, labels)
}

func TestDashboard_Select(t *testing.T) {
	d := dashboard.New(sampleUsers(), sampleCatalog())

	u, err := d.Select("2")
	require.NoError(t, err)
	assert.Equal(t, "John", u.Profile.Firstname)

	selected, ok := d.Selected()
	require.True(t, ok)
	assert.Equal(t, domain.UserID("2"), selected.ID)

	t.Run("stale id is a no-op", func(t *testing.T) {
		_, err := d.Select("99")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)

		selected, ok := d.Selected()
		require.True(t, ok)
		assert.Equal(t, domain.UserID("2"), selected.ID, "selection is unchanged")
	})
}

func TestDashboard_ReturnedUsersDoNotAliasState(t *testing.T) {
	d := dashboard.New(sampleUsers(), sampleCatalog())

	u, err := d.Select("1")
	require.NoError(t, err)
	u.Portfolio[0].Owned = 1000
	u.Profile.Firstname = "mutated"

	again, _ := d.Select("1")
	assert.Equal(t, 10, again.Portfolio[0].Owned)
	assert.Equal(t, "Jane", again.Profile.Firstname)
}

func TestDashboard_ViewStock(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	d := dashboard.New(sampleUsers(), sampleCatalog(), dashboard.WithLogger(logger))

	stock, err := d.ViewStock("ACME")
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", stock.Name)
	assert.Equal(t, "logos/ACME.svg", stock.LogoURL())

	t.Run("miss leaves the displayed stock unchanged", func(t *testing.T) {
		_, err := d.ViewStock("NOPE")
		assert.ErrorIs(t, err, domain.ErrStockNotFound)

		shown, ok := d.DisplayedStock()
		require.True(t, ok)
		assert.Equal(t, "ACME", shown.Symbol)
		assert.Contains(t, logs.String(), "stock not found")
		assert.Contains(t, logs.String(), "symbol=NOPE")
	})

	t.Run("lookup is exact", func(t *testing.T) {
		_, err := d.ViewStock("acme")
		assert.ErrorIs(t, err, domain.ErrStockNotFound)
		_, err = d.ViewStock(" ACME")
		assert.ErrorIs(t, err, domain.ErrStockNotFound)
	})

	t.Run("miss with nothing displayed", func(t *testing.T) {
		fresh := dashboard.New(sampleUsers(), sampleCatalog(), dashboard.WithLogger(logger))
		_, err := fresh.ViewStock("NOPE")
		assert.ErrorIs(t, err, domain.ErrStockNotFound)
		_, ok := fresh.DisplayedStock()
		assert.False(t, ok)
	})
}

func TestDashboard_Save(t *testing.T) {
	pub := &recordingPublisher{}
	d := dashboard.New(sampleUsers(), sampleCatalog(), dashboard.WithPublisher(pub), dashboard.WithName("w-1"))
	ctx := context.Background()

	_, err := d.Select("1")
	require.NoError(t, err)

	profile := domain.Profile{Firstname: "A", Lastname: "B", Address: "C", City: "D", Email: "E"}
	saved, err := d.Save(ctx, "1", profile)
	require.NoError(t, err)

	assert.Equal(t, domain.UserID("1"), saved.ID)
	assert.Equal(t, profile, saved.Profile)
	assert.Equal(t, []domain.Holding{{Symbol: "ACME", Owned: 10}}, saved.Portfolio, "portfolio is untouched")

	users := d.Users()
	assert.Equal(t, "B, A", users[0].Label(), "list reflects the new name")
	assert.Equal(t, "Roe, John", users[1].Label(), "other records are unchanged")

	selected, ok := d.Selected()
	require.True(t, ok)
	assert.Equal(t, domain.UserID("1"), selected.ID, "save keeps the selection")

	msgs := pub.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, dashboard.TopicUserSaved.Name(), msgs[0].Topic)
	var event dashboard.UserEvent
	require.NoError(t, json.Unmarshal(msgs[0].Payload, &event))
	assert.Equal(t, dashboard.UserEvent{UserID: "1", Label: "B, A", Workspace: "w-1"}, event)
}

func TestDashboard_SaveIsVerbatim(t *testing.T) {
	d := dashboard.New(sampleUsers(), sampleCatalog())

	profile := domain.Profile{Firstname: "  padded  ", Lastname: "", Address: "", City: "", Email: "not-an-email"}
	saved, err := d.Save(context.Background(), "2", profile)
	require.NoError(t, err)
	assert.Equal(t, profile, saved.Profile)
}

func TestDashboard_SaveMiss(t *testing.T) {
	pub := &recordingPublisher{}
	d := dashboard.New(sampleUsers(), sampleCatalog(), dashboard.WithPublisher(pub))
	before := d.Users()

	_, err := d.Save(context.Background(), "99", domain.Profile{Firstname: "X"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Equal(t, before, d.Users())
	assert.Empty(t, pub.messages())
	_, ok := d.Selected()
	assert.False(t, ok)
}

func TestDashboard_Delete(t *testing.T) {
	pub := &recordingPublisher{}
	d := dashboard.New(sampleUsers(), sampleCatalog(), dashboard.WithPublisher(pub))
	ctx := context.Background()

	_, err := d.Select("2")
	require.NoError(t, err)
	_, err = d.ViewStock("INIT")
	require.NoError(t, err)

	require.NoError(t, d.Delete(ctx, "2"))

	users := d.Users()
	require.Len(t, users, 2)
	assert.Equal(t, domain.UserID("1"), users[0].ID)
	assert.Equal(t, domain.UserID("3"), users[1].ID)
	assert.Equal(t, sampleUsers()[0], users[0], "other records are unchanged")

	_, ok := d.Selected()
	assert.False(t, ok, "delete returns to the unselected state")

	shown, ok := d.DisplayedStock()
	require.True(t, ok, "the stock panel is not cleared by delete")
	assert.Equal(t, "INIT", shown.Symbol)

	msgs := pub.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, dashboard.TopicUserDeleted.Name(), msgs[0].Topic)
	assert.Equal(t, "2", msgs[0].UserID)

	t.Run("deleting again is a no-op", func(t *testing.T) {
		err := d.Delete(ctx, "2")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.Len(t, d.Users(), 2)
		assert.Len(t, pub.messages(), 1)
	})
}

func TestDashboard_DeleteRemovesExactlyOne(t *testing.T) {
	users := sampleUsers()
	users = append(users, domain.User{ID: "1", Profile: domain.Profile{Lastname: "Twin"}})
	d := dashboard.New(users, sampleCatalog())

	require.NoError(t, d.Delete(context.Background(), "1"))

	remaining := d.Users()
	require.Len(t, remaining, 3)
	assert.Equal(t, "Twin, ", remaining[2].Label())
}

func TestDashboard_PublishFailureDoesNotFailSave(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("bus closed")}
	var logs bytes.Buffer
	d := dashboard.New(sampleUsers(), sampleCatalog(),
		dashboard.WithPublisher(pub),
		dashboard.WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))

	_, err := d.Save(context.Background(), "1", domain.Profile{Firstname: "A"})
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "failed to publish dashboard event")
}

func TestDashboard_EndToEnd(t *testing.T) {
	users := []domain.User{{
		ID:        "1",
		Profile:   domain.Profile{Firstname: "Jane", Lastname: "Doe", Address: "1 Elm", City: "X", Email: "j@x"},
		Portfolio: []domain.Holding{{Symbol: "ACME", Owned: 10}},
	}}
	catalog := dashboard.NewCatalog([]domain.Stock{
		{Symbol: "ACME", Name: "Acme Corp", Sector: "Tech", SubIndustry: "Software", Address: "1 Main St"},
	})
	d := dashboard.New(users, catalog)
	ctx := context.Background()

	u, err := d.Select("1")
	require.NoError(t, err)
	assert.Equal(t, "Jane", u.Profile.Firstname)
	assert.Equal(t, "Doe", u.Profile.Lastname)
	require.Len(t, u.Portfolio, 1)
	assert.Equal(t, "ACME", u.Portfolio[0].Symbol)
	assert.Equal(t, 10, u.Portfolio[0].Owned)

	stock, err := d.ViewStock(u.Portfolio[0].Symbol)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", stock.Name)
	assert.Equal(t, "Tech", stock.Sector)
	assert.Equal(t, "Software", stock.SubIndustry)
	assert.Equal(t, "1 Main St", stock.Address)
	assert.Equal(t, "logos/ACME.svg", stock.LogoURL())

	require.NoError(t, d.Delete(ctx, "1"))
	snap := d.Snapshot()
	assert.Empty(t, snap.Users)
	assert.Nil(t, snap.Selected)
}

func TestCatalog(t *testing.T) {
	c := dashboard.NewCatalog([]domain.Stock{{Symbol: "A", Name: "first"}, {Symbol: "B"}, {Symbol: "A", Name: "second"}})

	s, ok := c.Lookup("A")
	require.True(t, ok)
	assert.Equal(t, "first", s.Name)
	assert.Equal(t, 3, c.Len())
	assert.Len(t, c.All(), 3)

	_, ok = c.Lookup("C")
	assert.False(t, ok)

	assert.Equal(t, 0, dashboard.New(nil, nil).Catalog().Len())
}
