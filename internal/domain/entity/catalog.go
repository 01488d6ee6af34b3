package entity

// ItemType discriminates the three orderable item variants.
type ItemType string

const (
	ItemTypeFood  ItemType = "food"
	ItemTypeDrink ItemType = "drink"
	ItemTypeRoom  ItemType = "room"
)

// Valid reports whether the item type is one of the known variants.
func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeFood, ItemTypeDrink, ItemTypeRoom:
		return true
	}

	return false
}

// Hotel is a browsable venue offering food, drinks and rooms.
type Hotel struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// Item is an orderable catalog entry. Read-only from this service's ordering
// workflows; the discriminator Type selects the source table (food, drinks,
// rooms). For rooms, Name carries the room type and Price the per-night rate.
type Item struct {
	ID       int64    `json:"id"`
	Type     ItemType `json:"type"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	HotelID  int64    `json:"hotel_id"`
	ImageURL string   `json:"image_url"`
}
