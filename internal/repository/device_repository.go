package repository

import (
	"learnlens_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type DeviceRepository struct {
	DB *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) *DeviceRepository {
	return &DeviceRepository{DB: db}
}

func (r *DeviceRepository) Create(device *model.Device) error {
	return r.DB.Create(device).Error
}

func (r *DeviceRepository) FindByDeviceID(deviceID string) (*model.Device, error) {
	var device model.Device
	err := r.DB.Where("device_id = ?", deviceID).First(&device).Error
	if err != nil {
		return nil, err
	}
	return &device, nil
}

// UpdateLastSeen 异步活跃时间更新用，失败不影响主流程
func (r *DeviceRepository) UpdateLastSeen(deviceID string) error {
	return r.DB.Model(&model.Device{}).
		Where("device_id = ?", deviceID).
		Update("last_seen_at", time.Now().UTC()).Error
}
