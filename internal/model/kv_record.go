package model

import (
	"time"

	"gorm.io/datatypes"
)

// KVRecord 持久化键值记录，整集合覆盖写入
type KVRecord struct {
	Key       string         `gorm:"column:record_key;primaryKey;size:255;comment:命名空间键(device:key)"`
	Value     datatypes.JSON `gorm:"comment:整集合 JSON"`
	UpdatedAt time.Time
}

func (KVRecord) TableName() string {
	return "kv_records"
}
