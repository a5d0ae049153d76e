package service

import (
	"errors"
	"learnlens_backend/internal/config"
	"learnlens_backend/internal/model"
	"learnlens_backend/internal/repository"
	"learnlens_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService 扩展实例的注册与登录。
// 注册时生成 device_id 与一次性下发的 key，key 只保存 bcrypt 哈希。
type AuthService struct {
	devices *repository.DeviceRepository
	cfg     *config.Config
}

func NewAuthService(devices *repository.DeviceRepository, cfg *config.Config) *AuthService {
	return &AuthService{devices: devices, cfg: cfg}
}

// DeviceCredentials 注册返回的凭据，key 仅此一次可见
type DeviceCredentials struct {
	DeviceID string `json:"deviceId"`
	Key      string `json:"key"`
	Token    string `json:"token"`
}

// Register 注册一个新的扩展实例并签发访问令牌
func (s *AuthService) Register(name string) (*DeviceCredentials, error) {
	key := model.GenerateUUID()

	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	device := &model.Device{
		Name:    name,
		KeyHash: string(hash),
	}
	if err := s.devices.Create(device); err != nil {
		return nil, err
	}

	token, err := util.GenerateJWT(device, s.cfg.JWT.Secret, s.cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}

	return &DeviceCredentials{
		DeviceID: device.DeviceID,
		Key:      key,
		Token:    token,
	}, nil
}

// Login 校验 device_id + key，签发新的访问令牌
func (s *AuthService) Login(deviceID, key string) (string, error) {
	device, err := s.devices.FindByDeviceID(deviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", util.ErrDeviceNotFound
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(device.KeyHash), []byte(key)); err != nil {
		return "", util.ErrInvalidDeviceKey
	}

	return util.GenerateJWT(device, s.cfg.JWT.Secret, s.cfg.JWT.ExpireTime)
}
