package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CuisineProvince is the root document holding the dishes of one province.
type CuisineProvince struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ProvinceName      string             `bson:"provinceName" json:"provinceName"`
	ProvinceSlug      string             `bson:"provinceSlug" json:"provinceSlug"`
	Regional          string             `bson:"regional" json:"regional"`
	ImgRepresentative string             `bson:"imgRepresentative" json:"imgRepresentative"`
	Foods             []Food             `bson:"cuisineDetail" json:"cuisineDetail"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Food is one dish.
type Food struct {
	FoodID    string    `bson:"foodId" json:"foodId"`
	FoodName  string    `bson:"foodName" json:"foodName"`
	ImgFood   string    `bson:"imgFood" json:"imgFood"`
	FoodDesc  string    `bson:"foodDesc" json:"foodDesc"`
	ListImage []string  `bson:"listImage" json:"listImage"`
	LinkVideo []string  `bson:"linkVideo" json:"linkVideo"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`

	// Parent fields, set on flattened listings only.
	ProvinceName string `bson:"provinceName,omitempty" json:"provinceName,omitempty"`
	ProvinceSlug string `bson:"provinceSlug,omitempty" json:"provinceSlug,omitempty"`
	Regional     string `bson:"regional,omitempty" json:"regional,omitempty"`
}

type FoodPatch struct {
	FoodName  *string
	ImgFood   *string
	FoodDesc  *string
	ListImage *[]string
	LinkVideo *[]string
}

// MergeFood applies patch to existing and stamps updatedAt.
func MergeFood(existing Food, patch FoodPatch, now time.Time) Food {
	merged := existing
	mergeString(&merged.FoodName, patch.FoodName)
	mergeString(&merged.ImgFood, patch.ImgFood)
	mergeString(&merged.FoodDesc, patch.FoodDesc)
	mergeStrings(&merged.ListImage, patch.ListImage)
	mergeStrings(&merged.LinkVideo, patch.LinkVideo)
	merged.FoodID = existing.FoodID
	merged.UpdatedAt = now
	return merged
}

func (f Food) stored(now time.Time) Food {
	f.ProvinceName, f.ProvinceSlug, f.Regional = "", "", ""
	if f.CreatedAt.IsZero() {
		f.CreatedAt = now
	}
	f.UpdatedAt = now
	return f
}

func NewCuisineProvince(name, slug, regional, img string, first Food, now time.Time) *CuisineProvince {
	return &CuisineProvince{
		ProvinceName:      name,
		ProvinceSlug:      slug,
		Regional:          regional,
		ImgRepresentative: img,
		Foods:             []Food{first.stored(now)},
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// AddFood appends a dish; the dish name must be unique within the province.
func (c *CuisineProvince) AddFood(food Food, now time.Time) (Food, error) {
	if indexOf(c.Foods, func(f Food) bool { return sameName(f.FoodName, food.FoodName) }) >= 0 {
		return Food{}, ErrDuplicateChild
	}
	food = food.stored(now)
	c.Foods = append(c.Foods, food)
	c.UpdatedAt = now
	return food, nil
}

func (c *CuisineProvince) UpdateFood(foodID string, patch FoodPatch, now time.Time) (Food, error) {
	i := indexOf(c.Foods, func(f Food) bool { return f.FoodID == foodID })
	if i < 0 {
		return Food{}, ErrChildNotFound
	}
	if patch.FoodName != nil {
		if indexOf(c.Foods, func(f Food) bool { return f.FoodID != foodID && sameName(f.FoodName, *patch.FoodName) }) >= 0 {
			return Food{}, ErrDuplicateChild
		}
	}
	c.Foods[i] = MergeFood(c.Foods[i], patch, now)
	c.UpdatedAt = now
	return c.Foods[i], nil
}

func (c *CuisineProvince) RemoveFood(foodID string, now time.Time) error {
	i := indexOf(c.Foods, func(f Food) bool { return f.FoodID == foodID })
	if i < 0 {
		return ErrChildNotFound
	}
	c.Foods = removeAt(c.Foods, i)
	c.UpdatedAt = now
	return nil
}

// CuisineProvinceSummary is a province row without its dishes.
type CuisineProvinceSummary struct {
	ID                primitive.ObjectID `bson:"_id" json:"_id"`
	ProvinceName      string             `bson:"provinceName" json:"provinceName"`
	ProvinceSlug      string             `bson:"provinceSlug" json:"provinceSlug"`
	Regional          string             `bson:"regional" json:"regional"`
	ImgRepresentative string             `bson:"imgRepresentative" json:"imgRepresentative"`
	FoodCount         int                `bson:"foodCount" json:"foodCount"`
}
