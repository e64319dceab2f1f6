package dto

import (
	"time"

	"github.com/MannyGDy/Captive-Portal/internal/portal/domain"
)

type SettingOutput struct {
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Description string    `json:"description"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewSettingOutput(s *domain.Setting) SettingOutput {
	return SettingOutput{
		Key:         s.Key,
		Value:       s.Value,
		Description: s.Description,
		UpdatedAt:   s.UpdatedAt,
	}
}

type UpdateSettingInput struct {
	Value string `json:"value"`
}
