// Data-access layer for the creators table. Only talks to the database via GORM,
// so the dialect (mysql/postgres/sqlite/sqlserver) stays a config decision.
package repositories

import (
	"context"
	"errors"

	"github.com/Abdulwakil1/Creatorverse/models"

	"gorm.io/gorm"
)

// CreatorRepository defines the operations the service layer expects.
type CreatorRepository interface {
	Create(ctx context.Context, c *models.Creator) error
	FindByID(ctx context.Context, id uint) (*models.Creator, error)
	Update(ctx context.Context, c *models.Creator) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]models.Creator, error) // every row, oldest first
}

type creatorRepo struct{ db *gorm.DB }

// NewCreatorRepository injects *gorm.DB and returns the interface.
func NewCreatorRepository(db *gorm.DB) CreatorRepository {
	return &creatorRepo{db: db}
}

// Create inserts a row; the store assigns c.ID.
func (r *creatorRepo) Create(ctx context.Context, c *models.Creator) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *creatorRepo) FindByID(ctx context.Context, id uint) (*models.Creator, error) {
	var c models.Creator
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// Update writes all columns of an existing row (c.ID must be set).
func (r *creatorRepo) Update(ctx context.Context, c *models.Creator) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// Delete removes a row by primary key. A missing row is gorm.ErrRecordNotFound.
func (r *creatorRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Creator{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *creatorRepo) List(ctx context.Context) ([]models.Creator, error) {
	var items []models.Creator
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// IsNotFound checks GORM's "record not found" sentinel.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
