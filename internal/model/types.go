package model

import (
	"database/sql/driver"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// StringList 字符串数组
// Postgres 下存为 text[]，其他方言 (sqlite 开发/测试) 存为数组字面量文本 {a,b}
type StringList pq.StringArray

// GormDataType 通用类型，建表时由 GormDBDataType 细化
func (StringList) GormDataType() string {
	return "text"
}

// GormDBDataType 按方言选择列类型
func (StringList) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}

func (l StringList) Value() (driver.Value, error) {
	return pq.StringArray(l).Value()
}

func (l *StringList) Scan(src interface{}) error {
	return (*pq.StringArray)(l).Scan(src)
}

// Contains 是否包含指定值
func (l StringList) Contains(v string) bool {
	for _, s := range l {
		if s == v {
			return true
		}
	}
	return false
}
