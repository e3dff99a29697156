package model

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel 所有表共用的基础字段
// 删除走软删除，DeletedAt 非空的行默认不出现在查询结果里
type BaseModel struct {
	ID        int64          `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
