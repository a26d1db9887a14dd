package models

type Role string

const (
	RoleTrainer Role = "trainer"
	RoleMember  Role = "member"
)

func (r Role) Valid() bool {
	return r == RoleTrainer || r == RoleMember
}

type User struct {
	ID             string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name           string `gorm:"type:varchar(100);not null" json:"name"`
	Email          string `gorm:"type:varchar(255)" json:"email"`
	Role           Role   `gorm:"type:varchar(20);default:'member'" json:"role"`
	ProfilePicture string `gorm:"type:text" json:"profilePicture,omitempty"` // пусто, если нет фото
}
