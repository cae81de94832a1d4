package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"buyingbd_storefront/internal/model"
)

// KVRepository 键值记录仓储接口
type KVRepository interface {
	// Get 不存在时返回 found=false，err=nil
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// DeleteByPrefix 删除某个设备命名空间下的全部记录
	DeleteByPrefix(ctx context.Context, prefix string) (int64, error)
}

type kvRepo struct {
	db *gorm.DB
}

// NewKVRepository 创建键值记录仓储
func NewKVRepository(db *gorm.DB) KVRepository {
	return &kvRepo{db: db}
}

func (r *kvRepo) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var rec model.KVRecord
	err := r.db.WithContext(ctx).Where("record_key = ?", key).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(rec.Value), true, nil
}

// Set 整条覆盖（Upsert）
func (r *kvRepo) Set(ctx context.Context, key string, value []byte) error {
	rec := model.KVRecord{Key: key, Value: datatypes.JSON(value)}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "record_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
}

func (r *kvRepo) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Where("record_key = ?", key).Delete(&model.KVRecord{}).Error
}

func (r *kvRepo) DeleteByPrefix(ctx context.Context, prefix string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("record_key LIKE ? ESCAPE '\\'", escapeLike(prefix)+"%").
		Delete(&model.KVRecord{})
	return result.RowsAffected, result.Error
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
