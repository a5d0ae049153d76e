package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Device 一个已注册的浏览器扩展实例。
// 注册时下发 device_id + key，key 只保存 bcrypt 哈希。
// swagger:model Device
type Device struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	DeviceID   string    `gorm:"size:36;uniqueIndex;not null" json:"deviceId"`
	Name       string    `gorm:"size:128" json:"name"`
	KeyHash    string    `gorm:"size:60;not null" json:"-"`
	LastSeenAt time.Time `json:"lastSeenAt"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (Device) TableName() string {
	return "devices"
}

func (d *Device) BeforeCreate(tx *gorm.DB) (err error) {
	if d.DeviceID == "" {
		d.DeviceID = uuid.New().String()
	}
	return
}

// GenerateUUID 生成通用唯一标识
func GenerateUUID() string {
	return uuid.New().String()
}
