package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/deppfellow/travel-api/internal/errs"
	"github.com/deppfellow/travel-api/internal/lib/paginate"
	"github.com/deppfellow/travel-api/internal/lib/query"
	"github.com/deppfellow/travel-api/internal/model"
	"github.com/deppfellow/travel-api/internal/mongoerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func requireStatus(t *testing.T, err error, status int) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, status, httpErr.Status, httpErr.Message)
	return httpErr
}

func missing(collection string) error {
	return mongoerr.NotFoundIn(collection, mongo.ErrNoDocuments)
}

// memHotels keeps provinces in insertion order and hands out copies, like a
// real store would.
type memHotels struct {
	provinces []model.HotelProvince
	writes    int
}

func copyHotelProvince(p model.HotelProvince) *model.HotelProvince {
	p.HotelItems = append([]model.HotelItem(nil), p.HotelItems...)
	return &p
}

func (m *memHotels) index(match func(model.HotelProvince) bool) int {
	for i, p := range m.provinces {
		if match(p) {
			return i
		}
	}
	return -1
}

func (m *memHotels) Paginate(_ context.Context, f query.HotelFilter, page paginate.Page) (paginate.Result[model.HotelItem], error) {
	return paginate.InMemory[model.HotelProvince, model.HotelItem]{
		MatchRoot: f.MatchParent,
		Children: func(p model.HotelProvince) []model.HotelItem {
			items := make([]model.HotelItem, 0, len(p.HotelItems))
			for _, h := range p.HotelItems {
				h.HotelSlug = p.HotelSlug
				items = append(items, h)
			}
			return items
		},
		MatchChild: f.MatchChild,
	}.Paginate(m.provinces, page), nil
}

func (m *memHotels) Search(context.Context) ([]model.HotelSearchEntry, error) {
	return nil, nil
}

func (m *memHotels) Provinces(context.Context) ([]string, error) {
	return nil, nil
}

func (m *memHotels) FindItemByName(_ context.Context, name string) (*model.HotelItem, error) {
	for _, p := range m.provinces {
		for _, h := range p.HotelItems {
			if query.ContainsFold(h.Name, name) {
				return &h, nil
			}
		}
	}
	return nil, missing("hotels")
}

func (m *memHotels) Stats(context.Context) (model.HotelStats, error) {
	return model.HotelStats{}, nil
}

func (m *memHotels) FindBySlug(_ context.Context, slug string) (*model.HotelProvince, error) {
	i := m.index(func(p model.HotelProvince) bool { return p.HotelSlug == slug })
	if i < 0 {
		return nil, missing("hotels")
	}
	return copyHotelProvince(m.provinces[i]), nil
}

func (m *memHotels) FindByItem(_ context.Context, id string) (*model.HotelProvince, error) {
	for _, p := range m.provinces {
		for _, h := range p.HotelItems {
			if h.ID == id {
				return copyHotelProvince(p), nil
			}
		}
	}
	return nil, missing("hotels")
}

func (m *memHotels) Create(_ context.Context, p *model.HotelProvince) error {
	p.ID = primitive.NewObjectID()
	m.provinces = append(m.provinces, *copyHotelProvince(*p))
	m.writes++
	return nil
}

func (m *memHotels) PushItem(_ context.Context, slug string, item model.HotelItem, now time.Time) error {
	i := m.index(func(p model.HotelProvince) bool { return p.HotelSlug == slug })
	if i < 0 {
		return missing("hotels")
	}
	m.provinces[i].HotelItems = append(m.provinces[i].HotelItems, item)
	m.provinces[i].UpdatedAt = now
	m.writes++
	return nil
}

func (m *memHotels) ReplaceItem(_ context.Context, slug string, item model.HotelItem, now time.Time) error {
	i := m.index(func(p model.HotelProvince) bool { return p.HotelSlug == slug })
	if i < 0 {
		return missing("hotels")
	}
	for j, h := range m.provinces[i].HotelItems {
		if h.ID == item.ID {
			m.provinces[i].HotelItems[j] = item
			m.provinces[i].UpdatedAt = now
			m.writes++
			return nil
		}
	}
	return missing("hotels")
}

func (m *memHotels) PullItem(_ context.Context, provinceID primitive.ObjectID, id string, now time.Time) (*model.HotelProvince, error) {
	i := m.index(func(p model.HotelProvince) bool { return p.ID == provinceID })
	if i < 0 {
		return nil, missing("hotels")
	}
	p := copyHotelProvince(m.provinces[i])
	if err := p.RemoveItem(id, now); err != nil {
		return nil, missing("hotels")
	}
	m.provinces[i] = *p
	m.writes++
	return copyHotelProvince(*p), nil
}

func (m *memHotels) WithinViewport(_ context.Context, vp query.Viewport, limit int) ([]model.HotelItem, error) {
	var out []model.HotelItem
	for _, p := range m.provinces {
		for _, h := range p.HotelItems {
			if vp.Contains(h.Location.Longitude(), h.Location.Latitude()) && len(out) < limit {
				h.HotelSlug = p.HotelSlug
				out = append(out, h)
			}
		}
	}
	return out, nil
}

func (m *memHotels) itemCount() int {
	n := 0
	for _, p := range m.provinces {
		n += len(p.HotelItems)
	}
	return n
}

// memUsers is a user store keyed by id.
type memUsers struct {
	users []model.User
}

func (m *memUsers) All(context.Context) ([]model.User, error) {
	return append([]model.User(nil), m.users...), nil
}

func (m *memUsers) FindByID(_ context.Context, id primitive.ObjectID) (*model.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, missing("users")
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, missing("users")
}

func (m *memUsers) Create(_ context.Context, u *model.User) error {
	u.ID = primitive.NewObjectID()
	m.users = append(m.users, *u)
	return nil
}

func (m *memUsers) Replace(_ context.Context, u model.User) error {
	for i := range m.users {
		if m.users[i].ID == u.ID {
			m.users[i] = u
			return nil
		}
	}
	return missing("users")
}

func (m *memUsers) Delete(_ context.Context, id primitive.ObjectID) error {
	for i := range m.users {
		if m.users[i].ID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return nil
		}
	}
	return missing("users")
}

func (m *memUsers) add(role string) model.User {
	u := model.User{ID: primitive.NewObjectID(), Username: role, Email: role + "@example.com", Role: role}
	m.users = append(m.users, u)
	return u
}

// memPlaces is a place store over a slice.
type memPlaces struct {
	kind    model.PlaceKind
	places  []model.Place
	failErr error
}

func (m *memPlaces) Kind() model.PlaceKind { return m.kind }

func (m *memPlaces) Paginate(_ context.Context, f query.PlaceFilter, page paginate.Page) (paginate.Result[model.Place], error) {
	matched := paginate.Filter(m.places, f.Match)
	return paginate.NewResult(paginate.Slice(matched, page), page, int64(len(matched))), nil
}

func (m *memPlaces) All(_ context.Context, f query.PlaceFilter) ([]model.Place, error) {
	return paginate.Filter(m.places, f.Match), nil
}

func (m *memPlaces) FindByName(_ context.Context, name string) (*model.Place, error) {
	for _, p := range m.places {
		if query.ContainsFold(p.Name, name) {
			return &p, nil
		}
	}
	return nil, missing("destinations")
}

func (m *memPlaces) FindByID(_ context.Context, id primitive.ObjectID) (*model.Place, error) {
	for _, p := range m.places {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, missing("destinations")
}

func (m *memPlaces) Create(_ context.Context, p *model.Place) error {
	p.ID = primitive.NewObjectID()
	m.places = append(m.places, *p)
	return nil
}

func (m *memPlaces) Replace(_ context.Context, p model.Place) error {
	for i := range m.places {
		if m.places[i].ID == p.ID {
			m.places[i] = p
			return nil
		}
	}
	return missing("destinations")
}

func (m *memPlaces) Delete(_ context.Context, id primitive.ObjectID) error {
	for i := range m.places {
		if m.places[i].ID == id {
			m.places = append(m.places[:i], m.places[i+1:]...)
			return nil
		}
	}
	return missing("destinations")
}

func (m *memPlaces) UpdateRating(_ context.Context, id primitive.ObjectID, r model.RatingUpdate, now time.Time) (*model.Place, error) {
	for i := range m.places {
		if m.places[i].ID == id {
			m.places[i].Rating, m.places[i].RatingCount, m.places[i].UpdatedAt = r.Rating, r.RatingCount, now
			p := m.places[i]
			return &p, nil
		}
	}
	return nil, missing("destinations")
}

func (m *memPlaces) WithinViewport(_ context.Context, vp query.Viewport, limit int) ([]model.Place, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	var out []model.Place
	for _, p := range m.places {
		if vp.Contains(p.Location.Longitude(), p.Location.Latitude()) && len(out) < limit {
			out = append(out, p)
		}
	}
	return out, nil
}

var errStoreDown = errors.New("store unavailable")
