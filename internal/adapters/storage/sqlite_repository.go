package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/renato0307/tally/internal/config"
	"github.com/renato0307/tally/internal/domain"
	"github.com/renato0307/tally/internal/logging"
	"github.com/renato0307/tally/internal/ports"
)

const maxRetries = 3

// SQLiteRepository implements ports.TimeLogRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.TimeLogRepository = (*SQLiteRepository)(nil)

// gormLogger wraps the tally logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("TALLY_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (creating if needed) the time-log database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	dbPath = config.ExpandPath(dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets `tally logs` read while a timer is writing
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&TimeLogModel{}); err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			return nil, fmt.Errorf("failed to migrate time_logs schema: %w", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	logging.Logger.Debug("Time log database opened", "path", dbPath)
	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// CreateTimeLog implements TimeLogWriter.CreateTimeLog.
// Replaying a record with an ID that is already stored is a no-op as long as
// it describes the same work; a different record under that ID is rejected.
func (r *SQLiteRepository) CreateTimeLog(ctx context.Context, record domain.TimeLogRecord) error {
	model := domainToTimeLogModel(record)

	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			result := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoNothing: true,
			}).Create(&model)
			if result.Error != nil {
				return fmt.Errorf("failed to create time log: %w", result.Error)
			}
			if result.RowsAffected > 0 {
				return nil
			}

			var existing TimeLogModel
			if err := tx.Where("id = ?", record.ID).First(&existing).Error; err != nil {
				return fmt.Errorf("failed to load existing time log: %w", err)
			}
			if existing.TaskID != model.TaskID || existing.Seconds != model.Seconds {
				return fmt.Errorf("%w: %s", domain.ErrTimeLogDuplicate, record.ID)
			}
			logging.Logger.Debug("Duplicate time log ignored", "id", record.ID)
			return nil
		})
	}, maxRetries)
}

// GetTimeLog implements TimeLogReader.GetTimeLog
func (r *SQLiteRepository) GetTimeLog(ctx context.Context, id string) (*domain.StoredTimeLog, error) {
	var model TimeLogModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	}, maxRetries)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrTimeLogNotFound, id)
		}
		return nil, err
	}

	result := timeLogModelToDomain(model)
	return &result, nil
}

// ListTimeLogs implements TimeLogReader.ListTimeLogs, newest first
func (r *SQLiteRepository) ListTimeLogs(ctx context.Context, filter domain.TimeLogFilter) ([]domain.StoredTimeLog, error) {
	var models []TimeLogModel

	err := withRetry(func() error {
		query := r.db.WithContext(ctx).Model(&TimeLogModel{})
		if !filter.TaskID.IsZero() {
			query = query.Where("task_id = ?", int64(filter.TaskID))
		}
		if filter.Since != "" {
			query = query.Where("date >= ?", filter.Since)
		}
		if filter.Until != "" {
			query = query.Where("date <= ?", filter.Until)
		}
		if filter.Limit > 0 {
			query = query.Limit(filter.Limit)
		}
		return query.Order("date DESC").Order("created_at DESC").Find(&models).Error
	}, maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to list time logs: %w", err)
	}

	result := make([]domain.StoredTimeLog, 0, len(models))
	for _, m := range models {
		result = append(result, timeLogModelToDomain(m))
	}
	return result, nil
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			logging.Logger.Debug("Database busy, retrying", "attempt", i+1, "error", err)
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
