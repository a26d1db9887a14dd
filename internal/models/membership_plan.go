package models

type MembershipPlan struct {
	ID       string   `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name     string   `gorm:"type:varchar(100);not null" json:"name"`
	Duration int      `gorm:"not null" json:"duration"` // минимальный срок в месяцах
	Price    float64  `json:"price"`
	Features []string `gorm:"serializer:json;type:text" json:"features"`
}
