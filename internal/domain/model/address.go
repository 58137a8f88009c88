package model

import "time"

// 配送先住所
type Address struct {
	ID     int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID int64 `gorm:"not null;index" json:"user_id"`

	//通り
	Street string `gorm:"type:varchar(255);not null" json:"street"`

	//番地
	Number string `gorm:"type:varchar(30);not null" json:"number"`

	//地区
	Neighborhood string `gorm:"type:varchar(255)" json:"neighborhood"`

	//市
	City string `gorm:"type:varchar(255);not null" json:"city"`

	//州
	State string `gorm:"type:varchar(100);not null" json:"state"`

	//郵便番号
	ZipCode string `gorm:"type:varchar(20);not null" json:"zip_code"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
