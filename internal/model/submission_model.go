package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Submission struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WizardId  string         `gorm:"type:varchar(64);not null;index"`
	Selection datatypes.JSON `gorm:"type:jsonb"`
	Config    datatypes.JSON `gorm:"type:jsonb"`
	FilePaths datatypes.JSON `gorm:"type:jsonb"`
	Status    string         `gorm:"type:varchar(20);not null;index"`
	SessionId *string        `gorm:"type:varchar(128);index"`
	Error     *string        `gorm:"type:text"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (Submission) TableName() string {
	return "submissions"
}
