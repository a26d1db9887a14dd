package models

import "time"

// DashboardStat - карточка статистики на главном экране
type DashboardStat struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	Title    string `gorm:"type:varchar(100);not null" json:"title"`
	Value    string `gorm:"type:varchar(50)" json:"value"`
	Position int    `gorm:"uniqueIndex" json:"-"`
}

// UpcomingClass - занятие из блока "Upcoming Classes"
type UpcomingClass struct {
	ID       uint      `gorm:"primaryKey" json:"-"`
	Name     string    `gorm:"type:varchar(100);not null" json:"name"`
	Trainer  string    `gorm:"type:varchar(100)" json:"trainer"`
	StartsAt time.Time `json:"startsAt"`
}
