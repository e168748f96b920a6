package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ItineraryProvince groups the itinerary entries written for one province.
type ItineraryProvince struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ProvinceName string             `bson:"provinceName" json:"provinceName"`
	ProvinceSlug string             `bson:"provinceSlug" json:"provinceSlug"`
	Entries      []ItineraryEntry   `bson:"itineraryDetail" json:"itineraryDetail"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type ItineraryEntry struct {
	ID         primitive.ObjectID `bson:"_id" json:"_id"`
	TimeTrip   string             `bson:"timeTrip" json:"timeTrip"`
	Content    string             `bson:"content" json:"content"`
	UserCreate string             `bson:"userCreate" json:"userCreate"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type ItineraryEntryPatch struct {
	TimeTrip *string
	Content  *string
}

func MergeItineraryEntry(existing ItineraryEntry, patch ItineraryEntryPatch, now time.Time) ItineraryEntry {
	merged := existing
	mergeString(&merged.TimeTrip, patch.TimeTrip)
	mergeString(&merged.Content, patch.Content)
	merged.UpdatedAt = now
	return merged
}

// sameEntry is the natural key of an entry: one author posting the same trip twice.
func sameEntry(a, b ItineraryEntry) bool {
	return a.UserCreate == b.UserCreate && a.TimeTrip == b.TimeTrip && a.Content == b.Content
}

func (e ItineraryEntry) stored(now time.Time) ItineraryEntry {
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectIDFromTimestamp(now)
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	e.UpdatedAt = now
	return e
}

func NewItineraryProvince(name, slug string, first ItineraryEntry, now time.Time) *ItineraryProvince {
	return &ItineraryProvince{
		ProvinceName: name,
		ProvinceSlug: slug,
		Entries:      []ItineraryEntry{first.stored(now)},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (p *ItineraryProvince) AddEntry(entry ItineraryEntry, now time.Time) (ItineraryEntry, error) {
	if indexOf(p.Entries, func(e ItineraryEntry) bool { return sameEntry(e, entry) }) >= 0 {
		return ItineraryEntry{}, ErrDuplicateChild
	}
	entry = entry.stored(now)
	p.Entries = append(p.Entries, entry)
	p.UpdatedAt = now
	return entry, nil
}

func (p *ItineraryProvince) UpdateEntry(id primitive.ObjectID, patch ItineraryEntryPatch, now time.Time) (ItineraryEntry, error) {
	i := indexOf(p.Entries, func(e ItineraryEntry) bool { return e.ID == id })
	if i < 0 {
		return ItineraryEntry{}, ErrChildNotFound
	}
	p.Entries[i] = MergeItineraryEntry(p.Entries[i], patch, now)
	p.UpdatedAt = now
	return p.Entries[i], nil
}

func (p *ItineraryProvince) RemoveEntry(id primitive.ObjectID, now time.Time) error {
	i := indexOf(p.Entries, func(e ItineraryEntry) bool { return e.ID == id })
	if i < 0 {
		return ErrChildNotFound
	}
	p.Entries = removeAt(p.Entries, i)
	p.UpdatedAt = now
	return nil
}
