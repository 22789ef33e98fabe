package storage

import (
	"github.com/renato0307/tally/internal/domain"
)

// timeLogModelToDomain converts a TimeLogModel (GORM) to domain.StoredTimeLog
func timeLogModelToDomain(m TimeLogModel) domain.StoredTimeLog {
	return domain.StoredTimeLog{
		CreatedAt: m.CreatedAt,
		TimeLogRecord: domain.TimeLogRecord{
			Date:        m.Date,
			Description: m.Description,
			Hours:       m.Hours,
			ID:          m.ID,
			Seconds:     m.Seconds,
			Source:      domain.SaveSource(m.Source),
			TaskID:      domain.TaskID(m.TaskID),
		},
	}
}

// domainToTimeLogModel converts a domain.TimeLogRecord to TimeLogModel (GORM)
func domainToTimeLogModel(r domain.TimeLogRecord) TimeLogModel {
	return TimeLogModel{
		Date:        r.Date,
		Description: r.Description,
		Hours:       r.Hours,
		ID:          r.ID,
		Seconds:     r.Seconds,
		Source:      string(r.Source),
		TaskID:      int64(r.TaskID),
	}
}
