package model

// HotelModel mirrors the 'hotels' table. Rows are seeded out of band and
// read-only from this service.
type HotelModel struct {
	ID       int64  `gorm:"primary_key"`
	Name     string `gorm:"type:varchar(255);not null"`
	ImageURL string `gorm:"column:image_url;type:text"`
}

// TableName explicitly sets the table name for GORM.
func (HotelModel) TableName() string {
	return "hotels"
}

// ItemModel is the shared row shape of the three per-type menu tables
// (foods, drinks, rooms). The table is chosen at query time.
type ItemModel struct {
	ID       int64   `gorm:"primary_key"`
	Name     string  `gorm:"type:varchar(255);not null"`
	Price    float64 `gorm:"not null"`
	HotelID  int64   `gorm:"column:hotel_id;not null"`
	ImageURL string  `gorm:"column:image_url;type:text"`
}
