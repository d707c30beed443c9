package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"smartqueue/internal/models"
)

// ErrUnavailable оборачивает любые сбои самого хранилища (обрыв соединения,
// ошибки драйвера). Такие ошибки не ретраятся — решение об откате за клиентом.
var ErrUnavailable = errors.New("хранилище недоступно")

// queueRow — строка таблицы queues. Список участников лежит одним
// JSON-документом: он всегда читается и пишется целиком, что и делает
// compare-and-swap по версии атомарным для всей очереди.
type queueRow struct {
	ID                string `gorm:"primaryKey"`
	OwnerID           string `gorm:"index;not null"`
	OwnerName         string
	Name              string `gorm:"not null"`
	Description       string
	IsActive          bool `gorm:"index;default:true"`
	WaitTimePerPerson int  `gorm:"not null"`
	MaxCapacity       int  `gorm:"not null"`
	ServedCount       int  `gorm:"not null;default:0"`
	Members           datatypes.JSON
	Version           int64 `gorm:"not null;default:0"`
	CreatedAt         time.Time
}

func (queueRow) TableName() string { return "queues" }

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// AutoMigrate создаёт таблицу очередей.
func (s *GormStore) AutoMigrate() error {
	return s.db.AutoMigrate(&queueRow{})
}

func (s *GormStore) Create(ctx context.Context, q *models.Queue) error {
	row, err := toRow(q)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return errors.Wrap(ErrUnavailable, err.Error())
	}
	return nil
}

func (s *GormStore) Get(ctx context.Context, id string) (*models.Queue, error) {
	var row queueRow
	if err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(ErrUnavailable, err.Error())
	}
	return fromRow(&row)
}

func (s *GormStore) CompareAndSwap(ctx context.Context, expectedVersion int64, q *models.Queue) error {
	membersJSON, err := json.Marshal(q.Members)
	if err != nil {
		return err
	}

	res := s.db.WithContext(ctx).Model(&queueRow{}).
		Where("id = ? AND version = ?", q.ID, expectedVersion).
		Updates(map[string]interface{}{
			"owner_name":           q.OwnerName,
			"name":                 q.Name,
			"description":          q.Description,
			"is_active":            q.IsActive,
			"wait_time_per_person": q.WaitTimePerPerson,
			"max_capacity":         q.MaxCapacity,
			"served_count":         q.ServedCount,
			"members":              datatypes.JSON(membersJSON),
			"version":              q.Version,
		})
	if res.Error != nil {
		return errors.Wrap(ErrUnavailable, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		// Либо очереди нет, либо кто-то успел записать раньше нас.
		var count int64
		if err := s.db.WithContext(ctx).Model(&queueRow{}).Where("id = ?", q.ID).Count(&count).Error; err != nil {
			return errors.Wrap(ErrUnavailable, err.Error())
		}
		if count == 0 {
			return ErrNotFound
		}
		return ErrVersionMismatch
	}
	return nil
}

func (s *GormStore) ListActive(ctx context.Context) ([]models.Queue, error) {
	var rows []queueRow
	if err := s.db.WithContext(ctx).Where("is_active = ?", true).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(ErrUnavailable, err.Error())
	}
	return fromRows(rows)
}

func (s *GormStore) ListByOwner(ctx context.Context, ownerID string) ([]models.Queue, error) {
	var rows []queueRow
	if err := s.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(ErrUnavailable, err.Error())
	}
	return fromRows(rows)
}

// ListContainingMember разбирает JSON участников на стороне приложения:
// выражение сравнения внутри JSON-массива не переносимо между Postgres и
// SQLite, а очередей у одного пользователя единицы.
func (s *GormStore) ListContainingMember(ctx context.Context, userID string) ([]models.Queue, error) {
	var rows []queueRow
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(ErrUnavailable, err.Error())
	}
	queues, err := fromRows(rows)
	if err != nil {
		return nil, err
	}
	result := make([]models.Queue, 0)
	for _, q := range queues {
		if q.HasMember(userID) {
			result = append(result, q)
		}
	}
	return result, nil
}

func toRow(q *models.Queue) (*queueRow, error) {
	membersJSON, err := json.Marshal(q.Members)
	if err != nil {
		return nil, err
	}
	return &queueRow{
		ID:                q.ID,
		OwnerID:           q.OwnerID,
		OwnerName:         q.OwnerName,
		Name:              q.Name,
		Description:       q.Description,
		IsActive:          q.IsActive,
		WaitTimePerPerson: q.WaitTimePerPerson,
		MaxCapacity:       q.MaxCapacity,
		ServedCount:       q.ServedCount,
		Members:           datatypes.JSON(membersJSON),
		Version:           q.Version,
		CreatedAt:         q.CreatedAt,
	}, nil
}

func fromRow(row *queueRow) (*models.Queue, error) {
	members := make([]models.Member, 0)
	if len(row.Members) > 0 {
		if err := json.Unmarshal(row.Members, &members); err != nil {
			return nil, err
		}
	}
	return &models.Queue{
		ID:                row.ID,
		OwnerID:           row.OwnerID,
		OwnerName:         row.OwnerName,
		Name:              row.Name,
		Description:       row.Description,
		IsActive:          row.IsActive,
		WaitTimePerPerson: row.WaitTimePerPerson,
		MaxCapacity:       row.MaxCapacity,
		ServedCount:       row.ServedCount,
		Members:           members,
		Version:           row.Version,
		CreatedAt:         row.CreatedAt,
	}, nil
}

func fromRows(rows []queueRow) ([]models.Queue, error) {
	queues := make([]models.Queue, 0, len(rows))
	for i := range rows {
		q, err := fromRow(&rows[i])
		if err != nil {
			return nil, err
		}
		queues = append(queues, *q)
	}
	return queues, nil
}
