package model

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultHotelCategory is used when a hotel is added without a category.
const DefaultHotelCategory = "Khách sạn"

// HotelProvince is the root document grouping every hotel of one province.
type HotelProvince struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Hotel      string             `bson:"hotel" json:"hotel"`
	HotelSlug  string             `bson:"hotelSlug" json:"hotelSlug"`
	HotelItems []HotelItem        `bson:"hotelItem" json:"hotelItem"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// HotelItem is one hotel inside a province.
type HotelItem struct {
	ID             string   `bson:"id" json:"id"`
	Name           string   `bson:"name" json:"name"`
	Category       string   `bson:"category" json:"category"`
	Image          string   `bson:"image" json:"image"`
	Stars          int      `bson:"stars" json:"stars"`
	ReviewScore    string   `bson:"reviewScore" json:"reviewScore"`
	ReviewText     string   `bson:"reviewText" json:"reviewText"`
	NumberOfReview int      `bson:"numberOfReview" json:"numberOfReview"`
	Facilities     []string `bson:"facilities" json:"facilities"`
	InfoHotel      []string `bson:"infoHotel" json:"infoHotel"`
	ListIntroduce  []string `bson:"listIntroduce" json:"listIntroduce"`
	URLMap         string   `bson:"urlMap,omitempty" json:"urlMap,omitempty"`
	Location       GeoPoint `bson:"location" json:"location"`
	ImageDetails   []string `bson:"imageDetails" json:"imageDetails"`

	// HotelSlug is only populated on flattened listings.
	HotelSlug string `bson:"hotelSlug,omitempty" json:"hotelSlug,omitempty"`
}

// HotelItemPatch carries the fields of a partial hotel update. Nil means "keep".
type HotelItemPatch struct {
	Name           *string
	Category       *string
	Image          *string
	Stars          *int
	ReviewScore    *string
	ReviewText     *string
	NumberOfReview *int
	Facilities     *[]string
	InfoHotel      *[]string
	ListIntroduce  *[]string
	URLMap         *string
	Location       *GeoPoint
	ImageDetails   *[]string
}

// MergeHotelItem applies patch to existing. The id is never taken from the patch.
func MergeHotelItem(existing HotelItem, patch HotelItemPatch) HotelItem {
	merged := existing
	mergeString(&merged.Name, patch.Name)
	mergeString(&merged.Category, patch.Category)
	mergeString(&merged.Image, patch.Image)
	mergeString(&merged.ReviewScore, patch.ReviewScore)
	mergeString(&merged.ReviewText, patch.ReviewText)
	mergeString(&merged.URLMap, patch.URLMap)
	mergeStrings(&merged.Facilities, patch.Facilities)
	mergeStrings(&merged.InfoHotel, patch.InfoHotel)
	mergeStrings(&merged.ListIntroduce, patch.ListIntroduce)
	mergeStrings(&merged.ImageDetails, patch.ImageDetails)
	if patch.Stars != nil {
		merged.Stars = *patch.Stars
	}
	if patch.NumberOfReview != nil {
		merged.NumberOfReview = *patch.NumberOfReview
	}
	if patch.Location != nil {
		merged.Location = patch.Location.Normalize()
	}
	merged.ID = existing.ID
	return merged
}

func sameName(a, b string) bool {
	return strings.TrimSpace(a) == strings.TrimSpace(b)
}

// NewHotelProvince creates a root holding a single hotel.
func NewHotelProvince(name, slug string, first HotelItem, now time.Time) *HotelProvince {
	return &HotelProvince{
		Hotel:      name,
		HotelSlug:  slug,
		HotelItems: []HotelItem{first.normalized()},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (h HotelItem) normalized() HotelItem {
	if h.Category == "" {
		h.Category = DefaultHotelCategory
	}
	h.Location = h.Location.Normalize()
	h.HotelSlug = ""
	return h
}

// AddItem appends a hotel, rejecting a name already used in this province.
func (p *HotelProvince) AddItem(item HotelItem, now time.Time) (HotelItem, error) {
	if indexOf(p.HotelItems, func(h HotelItem) bool { return sameName(h.Name, item.Name) }) >= 0 {
		return HotelItem{}, ErrDuplicateChild
	}
	item = item.normalized()
	p.HotelItems = append(p.HotelItems, item)
	p.UpdatedAt = now
	return item, nil
}

// UpdateItem merges patch into the hotel with the given id.
// Renaming onto another hotel's name is rejected.
func (p *HotelProvince) UpdateItem(id string, patch HotelItemPatch, now time.Time) (HotelItem, error) {
	i := indexOf(p.HotelItems, func(h HotelItem) bool { return h.ID == id })
	if i < 0 {
		return HotelItem{}, ErrChildNotFound
	}
	if patch.Name != nil {
		clash := indexOf(p.HotelItems, func(h HotelItem) bool { return h.ID != id && sameName(h.Name, *patch.Name) })
		if clash >= 0 {
			return HotelItem{}, ErrDuplicateChild
		}
	}
	p.HotelItems[i] = MergeHotelItem(p.HotelItems[i], patch)
	p.UpdatedAt = now
	return p.HotelItems[i], nil
}

// RemoveItem drops the hotel with the given id.
func (p *HotelProvince) RemoveItem(id string, now time.Time) error {
	i := indexOf(p.HotelItems, func(h HotelItem) bool { return h.ID == id })
	if i < 0 {
		return ErrChildNotFound
	}
	p.HotelItems = removeAt(p.HotelItems, i)
	p.UpdatedAt = now
	return nil
}

// HotelSearchEntry is the lightweight row used by the search box.
type HotelSearchEntry struct {
	Hotel string `bson:"hotel" json:"hotel"`
	Name  string `bson:"name" json:"name"`
	Image string `bson:"image" json:"image"`
}

// HotelProvinceStat counts hotels of one province.
type HotelProvinceStat struct {
	PlaceName       string `bson:"placeName" json:"placeName"`
	TotalHotelItems int    `bson:"totalHotelItems" json:"totalHotelItems"`
}

// HotelStats summarises the hotel collection for the admin dashboard.
type HotelStats struct {
	TotalHotels     int                 `json:"totalHotels"`
	TotalHotelItems int                 `json:"totalHotelItems"`
	HotelStats      []HotelProvinceStat `json:"hotelStats"`
}
