package query

import (
	"github.com/deppfellow/travel-api/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HotelFilter narrows the flattened hotel listing.
type HotelFilter struct {
	ProvinceSlug string
	Name         string
	Stars        *int
}

// NewHotelFilter builds a filter from raw parameters. A malformed stars value is ignored.
func NewHotelFilter(provinceSlug, name, stars string) HotelFilter {
	f := HotelFilter{ProvinceSlug: provinceSlug, Name: name}
	if v, ok := ParseInt(stars); ok {
		f.Stars = &v
	}
	return f
}

func (f HotelFilter) Parent() bson.D {
	if f.ProvinceSlug == "" {
		return nil
	}
	return bson.D{{Key: "hotelSlug", Value: f.ProvinceSlug}}
}

func (f HotelFilter) Child() bson.D {
	var d bson.D
	if f.Name != "" {
		d = append(d, bson.E{Key: "name", Value: Contains(f.Name)})
	}
	if f.Stars != nil {
		d = append(d, bson.E{Key: "stars", Value: *f.Stars})
	}
	return d
}

func (f HotelFilter) MatchParent(p model.HotelProvince) bool {
	return f.ProvinceSlug == "" || p.HotelSlug == f.ProvinceSlug
}

func (f HotelFilter) MatchChild(h model.HotelItem) bool {
	if f.Name != "" && !ContainsFold(h.Name, f.Name) {
		return false
	}
	if f.Stars != nil && h.Stars != *f.Stars {
		return false
	}
	return true
}

// CuisineFilter narrows the flattened food listing.
type CuisineFilter struct {
	ProvinceSlug string
	Region       string
	FoodName     string
}

func (f CuisineFilter) Parent() bson.D {
	var d bson.D
	if f.ProvinceSlug != "" {
		d = append(d, bson.E{Key: "provinceSlug", Value: f.ProvinceSlug})
	}
	if f.Region != "" {
		d = append(d, bson.E{Key: "regional", Value: Prefix(f.Region)})
	}
	return d
}

func (f CuisineFilter) Child() bson.D {
	if f.FoodName == "" {
		return nil
	}
	return bson.D{{Key: "foodName", Value: Contains(f.FoodName)}}
}

func (f CuisineFilter) MatchParent(c model.CuisineProvince) bool {
	if f.ProvinceSlug != "" && c.ProvinceSlug != f.ProvinceSlug {
		return false
	}
	return f.Region == "" || HasPrefixFold(c.Regional, f.Region)
}

func (f CuisineFilter) MatchChild(food model.Food) bool {
	return f.FoodName == "" || ContainsFold(food.FoodName, f.FoodName)
}

// PlaceFilter narrows destination and restaurant listings.
type PlaceFilter struct {
	Province  string
	Category  string
	Name      string
	ExcludeID *primitive.ObjectID
}

// NewPlaceFilter builds a filter from raw parameters. An excludeId that is not
// a valid ObjectID is ignored.
func NewPlaceFilter(province, category, name, excludeID string) PlaceFilter {
	f := PlaceFilter{Province: province, Category: category, Name: name}
	if id, err := primitive.ObjectIDFromHex(excludeID); err == nil {
		f.ExcludeID = &id
	}
	return f
}

func (f PlaceFilter) BSON() bson.D {
	d := bson.D{}
	if f.Province != "" {
		d = append(d, bson.E{Key: "location.address", Value: Contains(f.Province)})
	}
	if f.Category != "" {
		d = append(d, bson.E{Key: "category", Value: f.Category})
	}
	if f.Name != "" {
		d = append(d, bson.E{Key: "name", Value: Contains(f.Name)})
	}
	if f.ExcludeID != nil {
		d = append(d, bson.E{Key: "_id", Value: bson.D{{Key: "$ne", Value: *f.ExcludeID}}})
	}
	return d
}

func (f PlaceFilter) Match(p model.Place) bool {
	if f.Province != "" && !ContainsFold(p.Location.Address, f.Province) {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Name != "" && !ContainsFold(p.Name, f.Name) {
		return false
	}
	return f.ExcludeID == nil || p.ID != *f.ExcludeID
}
