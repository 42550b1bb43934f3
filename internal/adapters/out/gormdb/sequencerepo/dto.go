// Package sequencerepo persists order number counters, one row per prefix.
// Writes are guarded by a version column.
package sequencerepo

import (
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/sequence"
)

type CounterDTO struct {
	Prefix     string `gorm:"type:varchar(16);primaryKey"`
	LastDate   string `gorm:"type:varchar(10);not null"`
	LastNumber int    `gorm:"type:int;not null"`
	Version    int    `gorm:"type:int;not null"`
}

func (CounterDTO) TableName() string {
	return "sequence_counters"
}

func toDomain(dto CounterDTO) (*sequence.Counter, error) {
	lastDate, err := kernel.ParseDate(dto.LastDate)
	if err != nil {
		return nil, err
	}
	return sequence.RestoreCounter(dto.Prefix, lastDate, dto.LastNumber, dto.Version)
}
