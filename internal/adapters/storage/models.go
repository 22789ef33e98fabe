package storage

import "time"

// TimeLogModel is the GORM model for time_logs table
type TimeLogModel struct {
	CreatedAt   time.Time `gorm:"not null;index:idx_created_at"`
	Date        string    `gorm:"not null;index:idx_date"`
	Description string    `gorm:"not null;default:''"`
	Hours       float64   `gorm:"not null;default:0"`
	ID          string    `gorm:"primaryKey"`
	Seconds     int64     `gorm:"not null;check:seconds > 0"`
	Source      string    `gorm:"not null;default:'manual';check:source IN ('auto','checkpoint','manual','switch','unload')"`
	TaskID      int64     `gorm:"not null;index:idx_task_id"`
}

// TableName specifies the table name for GORM
func (TimeLogModel) TableName() string { return "time_logs" }
