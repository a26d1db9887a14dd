package models

type Supplement struct {
	ID          string  `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name        string  `gorm:"type:varchar(100);not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `json:"price"`
	Category    string  `gorm:"type:varchar(50)" json:"category"`
	Image       string  `gorm:"type:text" json:"image"`
	Stock       int     `json:"stock"`
}
