package repository

import (
	"context"

	constant "github.com/azhuravlev/diplomdocs/internal/constant"
	"github.com/azhuravlev/diplomdocs/internal/model"
	"gorm.io/gorm"
)

type GroupOrderRepository struct {
	*baseRepository
}

func (gr GroupOrderRepository) List(ctx context.Context, tx *gorm.DB, groupId string, page, pageSize uint) ([]model.GroupOrder, int64, error) {
	gr.logger.Debugf("List group orders, group: %q, page: %d \n", groupId, page)

	db := gr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	q := db.WithContext(ctx).Model(&model.GroupOrder{})
	if groupId != "" {
		q = q.Where("group_id = ?", groupId)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []model.GroupOrder
	if err := q.Preload("Group").
		Order("order_date desc").
		Offset(int((page - 1) * pageSize)).
		Limit(int(pageSize)).
		Find(&orders).Error; err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (gr GroupOrderRepository) GetById(ctx context.Context, tx *gorm.DB, orderId string) (*model.GroupOrder, error) {
	gr.logger.Debugf("Get group order by id: %s \n", orderId)

	db := gr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var order *model.GroupOrder
	if err := db.WithContext(ctx).Model(&model.GroupOrder{}).
		Preload("Group").
		Where("id = ?", orderId).First(&order).Error; err != nil {
		return order, err
	}

	return order, nil
}

// Create inserts the order. The unique index on order_number rejects a
// colliding number, the caller surfaces that as a conflict.
func (gr *GroupOrderRepository) Create(ctx context.Context, tx *gorm.DB, newOrder model.GroupOrder) (*model.GroupOrder, error) {
	gr.logger.Debugf("Create group order with data: %v \n", newOrder)

	db := gr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	order := model.GroupOrder{
		OrderNumber: newOrder.OrderNumber,
		OrderDate:   newOrder.OrderDate,
		GroupID:     newOrder.GroupID,
		StudyForm:   newOrder.StudyForm,
		Direction:   newOrder.Direction,
		Note:        newOrder.Note,
		CreatedByID: newOrder.CreatedByID,
	}
	if err := db.WithContext(ctx).Model(&model.GroupOrder{}).Create(&order).Error; err != nil {
		return nil, err
	}

	return &order, nil
}
