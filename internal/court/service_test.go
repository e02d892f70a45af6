package court_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smashcourt/smashcourt-backend/internal/court"
	"github.com/smashcourt/smashcourt-backend/internal/user"
)

type memRepo struct {
	courts map[string]*court.Court
	nextID int
}

func newMemRepo() *memRepo {
	return &memRepo{courts: make(map[string]*court.Court)}
}

func (m *memRepo) Create(ctx context.Context, c *court.Court) error {
	m.nextID++
	c.ID = string(rune('a' + m.nextID - 1))
	m.courts[c.ID] = c
	return nil
}

func (m *memRepo) GetByID(ctx context.Context, id string) (*court.Court, error) {
	c, ok := m.courts[id]
	if !ok {
		return nil, court.ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (m *memRepo) List(ctx context.Context) ([]*court.Court, error) {
	var out []*court.Court
	for _, c := range m.courts {
		out = append(out, c)
	}
	return out, nil
}

func (m *memRepo) ListByOwner(ctx context.Context, ownerID string) ([]*court.Court, error) {
	var out []*court.Court
	for _, c := range m.courts {
		if c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memRepo) Update(ctx context.Context, c *court.Court) error {
	if _, ok := m.courts[c.ID]; !ok {
		return court.ErrNotFound
	}
	m.courts[c.ID] = c
	return nil
}

func (m *memRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.courts[id]; !ok {
		return court.ErrNotFound
	}
	delete(m.courts, id)
	return nil
}

func createCourt(t *testing.T, svc court.Service, ownerID string) *court.Court {
	t.Helper()
	c, err := svc.Create(context.Background(), court.CreateRequest{
		Name:      "Center Court",
		Type:      "indoor",
		BasePrice: decimal.NewFromInt(150),
		OwnerID:   ownerID,
	})
	require.NoError(t, err)
	return c
}

func TestCreateValidation(t *testing.T) {
	svc := court.NewService(newMemRepo())

	_, err := svc.Create(context.Background(), court.CreateRequest{
		Name: " ", Type: "indoor", BasePrice: decimal.NewFromInt(150),
	})
	assert.ErrorIs(t, err, court.ErrEmptyName)

	_, err = svc.Create(context.Background(), court.CreateRequest{
		Name: "Court", Type: "rooftop", BasePrice: decimal.NewFromInt(150),
	})
	assert.ErrorIs(t, err, court.ErrInvalidType)

	_, err = svc.Create(context.Background(), court.CreateRequest{
		Name: "Court", Type: "indoor", BasePrice: decimal.Zero,
	})
	assert.ErrorIs(t, err, court.ErrInvalidBasePrice)

	c := createCourt(t, svc, "owner-1")
	assert.Equal(t, court.StatusActive, c.Status)
}

func TestUpdateOwnership(t *testing.T) {
	svc := court.NewService(newMemRepo())
	c := createCourt(t, svc, "owner-1")

	newName := "Renamed Court"

	// A different owner cannot touch the listing.
	_, err := svc.Update(context.Background(), c.ID, court.UpdateRequest{Name: &newName}, "owner-2", user.RoleOwner)
	assert.ErrorIs(t, err, court.ErrPermissionDenied)

	// The listing owner can.
	updated, err := svc.Update(context.Background(), c.ID, court.UpdateRequest{Name: &newName}, "owner-1", user.RoleOwner)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Court", updated.Name)

	// So can an admin.
	price := decimal.NewFromInt(200)
	updated, err = svc.Update(context.Background(), c.ID, court.UpdateRequest{BasePrice: &price}, "admin-1", user.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, updated.BasePrice.Equal(price))
}

func TestUpdateRejectsInvalidFields(t *testing.T) {
	svc := court.NewService(newMemRepo())
	c := createCourt(t, svc, "owner-1")

	badType := "rooftop"
	_, err := svc.Update(context.Background(), c.ID, court.UpdateRequest{Type: &badType}, "owner-1", user.RoleOwner)
	assert.ErrorIs(t, err, court.ErrInvalidType)

	badPrice := decimal.NewFromInt(-5)
	_, err = svc.Update(context.Background(), c.ID, court.UpdateRequest{BasePrice: &badPrice}, "owner-1", user.RoleOwner)
	assert.ErrorIs(t, err, court.ErrInvalidBasePrice)

	badStatus := "closed"
	_, err = svc.Update(context.Background(), c.ID, court.UpdateRequest{Status: &badStatus}, "owner-1", user.RoleOwner)
	assert.ErrorIs(t, err, court.ErrInvalidStatus)
}

func TestDeleteOwnership(t *testing.T) {
	svc := court.NewService(newMemRepo())
	c := createCourt(t, svc, "owner-1")

	err := svc.Delete(context.Background(), c.ID, "owner-2", user.RoleOwner)
	assert.ErrorIs(t, err, court.ErrPermissionDenied)

	err = svc.Delete(context.Background(), c.ID, "admin-1", user.RoleAdmin)
	require.NoError(t, err)

	_, err = svc.GetByID(context.Background(), c.ID)
	assert.ErrorIs(t, err, court.ErrNotFound)
}
