package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StaffStatusActive   = "active"
	StaffStatusInactive = "inactive"
)

type StaffMember struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string         `gorm:"type:varchar(255);not null" json:"name"`
	Email     string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone     string         `gorm:"type:varchar(50)" json:"phone"`
	Role      string         `gorm:"type:varchar(50);index;not null" json:"role"`
	Status    string         `gorm:"type:varchar(20);not null;default:active" json:"status"`
	HireDate  string         `gorm:"type:varchar(10)" json:"hire_date"` // YYYY-MM-DD
	Salary    float64        `json:"salary"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
