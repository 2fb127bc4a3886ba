package database

import (
	"context"
	"fmt"

	"devblog/internal/core/activity"

	"gorm.io/gorm"
)

// ActivityRepositoryDatabase writes activities to the post_activities table.
type ActivityRepositoryDatabase struct {
	DB *gorm.DB
}

func NewActivityRepositoryDatabase(db *gorm.DB) *ActivityRepositoryDatabase {
	return &ActivityRepositoryDatabase{DB: db}
}

func (repo *ActivityRepositoryDatabase) Name() string { return "mysql" }

// Record inserts the batch in a single statement.
func (repo *ActivityRepositoryDatabase) Record(ctx context.Context, batch []*activity.Activity) error {
	if len(batch) == 0 {
		return nil
	}
	for i, a := range batch {
		if a == nil {
			return fmt.Errorf("activity[%d] is nil", i)
		}
	}
	if err := repo.DB.WithContext(ctx).CreateInBatches(batch, len(batch)).Error; err != nil {
		return fmt.Errorf("insert activity batch: %w", err)
	}
	return nil
}

