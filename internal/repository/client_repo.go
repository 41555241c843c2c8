package repository

import (
	"context"
	"time"

	"github.com/beknazar93/CRM2/internal/dto"
	"github.com/beknazar93/CRM2/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientRepository interface {
	Create(ctx context.Context, c *model.Client) error
	// CreateInBatches bulk-inserts imported clients in chunks.
	CreateInBatches(ctx context.Context, clients []model.Client, batchSize int) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Client, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Client, error)
	List(ctx context.Context, filter dto.ClientFilter) ([]model.Client, int64, error)
	Update(ctx context.Context, c *model.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)

	// ExistsDuplicate checks the import dedupe rule: same name, sport
	// category, month and year means the client was already registered.
	ExistsDuplicate(ctx context.Context, name string, sportCategory, month, year *string) (bool, error)

	// DeleteOlderThan removes clients created before the cutoff and returns
	// how many rows went away.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type clientRepo struct{ db *gorm.DB }

func NewClientRepository(db *gorm.DB) ClientRepository { return &clientRepo{db: db} }

func (r *clientRepo) Create(ctx context.Context, c *model.Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clientRepo) CreateInBatches(ctx context.Context, clients []model.Client, batchSize int) error {
	return r.db.WithContext(ctx).CreateInBatches(clients, batchSize).Error
}

func (r *clientRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	var c model.Client
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clientRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Client, error) {
	var clients []model.Client
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&clients).Error
	return clients, err
}

func (r *clientRepo) List(ctx context.Context, filter dto.ClientFilter) ([]model.Client, int64, error) {
	var clients []model.Client
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Client{})
	if filter.Name != "" {
		q = q.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Stage != "" {
		q = q.Where("stage = ?", filter.Stage)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("created_at DESC").Limit(filter.Limit).Offset(offset).Find(&clients).Error
	return clients, total, err
}

func (r *clientRepo) Update(ctx context.Context, c *model.Client) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *clientRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Client{}, "id = ?", id).Error
}

func (r *clientRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Client{}).Count(&count).Error
	return count, err
}

func (r *clientRepo) ExistsDuplicate(ctx context.Context, name string, sportCategory, month, year *string) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&model.Client{}).Where("name = ?", name)
	q = whereNullable(q, "sport_category", sportCategory)
	q = whereNullable(q, "month", month)
	q = whereNullable(q, "year", year)
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func whereNullable(q *gorm.DB, column string, value *string) *gorm.DB {
	if value == nil {
		return q.Where(column + " IS NULL")
	}
	return q.Where(column+" = ?", *value)
}

func (r *clientRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&model.Client{})
	return res.RowsAffected, res.Error
}
