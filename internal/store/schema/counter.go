package schema

import "time"

// Counter stores named monotonic counters used for sequence allocation and
// reconciliation cursors. Increments happen atomically in the database so
// concurrent writers never observe stale values.
type Counter struct {
	Name      string    `gorm:"primaryKey;type:text"`
	Value     int64     `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Counter) TableName() string {
	return "counters"
}
