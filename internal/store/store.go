package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

func (s *implStore) Create(ctx context.Context, t *Transcription) error {
	if strings.TrimSpace(t.Content) == "" {
		return ErrEmptyContent
	}
	if err := s.db.WithContext(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("create transcription: %w", err)
	}
	s.logger.Info(ctx, "Stored transcription %d (%s)", t.ID, t.AudioFileName)
	return nil
}

func (s *implStore) Get(ctx context.Context, id uint) (*Transcription, error) {
	var t Transcription
	err := s.db.WithContext(ctx).First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("get transcription %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get transcription %d: %w", id, err)
	}
	return &t, nil
}

func (s *implStore) List(ctx context.Context) ([]Transcription, error) {
	var list []Transcription
	if err := s.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list transcriptions: %w", err)
	}
	return list, nil
}

func (s *implStore) UpdateSummary(ctx context.Context, id uint, summary string) error {
	res := s.db.WithContext(ctx).Model(&Transcription{}).Where("id = ?", id).Update("summary", summary)
	if res.Error != nil {
		return fmt.Errorf("update summary %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update summary %d: %w", id, ErrNotFound)
	}
	return nil
}

func (s *implStore) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&Transcription{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete transcription %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete transcription %d: %w", id, ErrNotFound)
	}
	s.logger.Info(ctx, "Deleted transcription %d", id)
	return nil
}

func (s *implStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
