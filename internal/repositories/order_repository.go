package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"inovitaz_backend/internal/models"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderNotPending    = errors.New("order is not pending")
	ErrCouponExhausted    = errors.New("coupon usage limit reached")
	ErrCouponUsageExists  = errors.New("coupon already used by this user")
)

// PurchasedProject joins a paid order with its project and download
// entitlement so the library view needs a single query.
type PurchasedProject struct {
	Project     models.Project
	Order       models.Order
	DownloadLog *models.DownloadLog
}

type OrderRepository interface {
	Create(order *models.Order) error
	FindByID(id string) (*models.Order, error)
	FindByGatewayOrderID(razorpayOrderID string) (*models.Order, error)
	FindByUser(userID string, status string, page, pageSize int) ([]models.Order, int64, error)
	FindAll(page, pageSize int) ([]models.Order, int64, error)
	PurchasedProjects(userID string) ([]PurchasedProject, error)
	HasPaidOrder(userID, projectID string) (bool, error)
	LatestPaidOrder(userID, projectID string) (*models.Order, error)

	MarkPaid(orderID, paymentID string, coupon *models.Coupon, discountPaise int64) error
	MarkFailed(orderID string) error
	CountPaidByProject(projectID string) (int64, error)
	DeleteUnpaidByProject(projectID string) error

	CountPaid() (int64, error)
	TotalRevenue() (float64, error)
	RecentPaid(limit int) ([]models.Order, error)
	MonthlyRevenue(since time.Time) ([]MonthRevenue, error)
}

// MonthRevenue is one bucket of the dashboard revenue chart.
type MonthRevenue struct {
	Month   time.Time `json:"month"`
	Revenue float64   `json:"revenue"`
}

type OrderRepositoryImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

func (r *OrderRepositoryImpl) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *OrderRepositoryImpl) FindByID(id string) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Project").First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepositoryImpl) FindByGatewayOrderID(razorpayOrderID string) (*models.Order, error) {
	var order models.Order
	err := r.db.First(&order, "razorpay_order_id = ?", razorpayOrderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepositoryImpl) FindByUser(userID string, status string, page, pageSize int) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{}).Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := query.Preload("Project").
		Order("created_at DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&orders).Error
	return orders, total, err
}

func (r *OrderRepositoryImpl) FindAll(page, pageSize int) ([]models.Order, int64, error) {
	var total int64
	if err := r.db.Model(&models.Order{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := r.db.Preload("Project").Preload("User").
		Order("created_at DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&orders).Error
	return orders, total, err
}

func (r *OrderRepositoryImpl) PurchasedProjects(userID string) ([]PurchasedProject, error) {
	var orders []models.Order
	err := r.db.Preload("Project").
		Where("user_id = ? AND status = ?", userID, models.OrderStatusPaid).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	// One library row per project, newest paid order wins.
	seen := make(map[string]bool, len(orders))
	result := make([]PurchasedProject, 0, len(orders))
	for _, order := range orders {
		projectID := order.ProjectID
		if seen[projectID] {
			continue
		}
		seen[projectID] = true

		var log models.DownloadLog
		var logPtr *models.DownloadLog
		logErr := r.db.First(&log, "order_id = ?", order.ID).Error
		if logErr == nil {
			logPtr = &log
		} else if !errors.Is(logErr, gorm.ErrRecordNotFound) {
			return nil, logErr
		}

		result = append(result, PurchasedProject{Project: order.Project, Order: order, DownloadLog: logPtr})
	}
	return result, nil
}

func (r *OrderRepositoryImpl) HasPaidOrder(userID, projectID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Order{}).
		Where("user_id = ? AND project_id = ? AND status = ?", userID, projectID, models.OrderStatusPaid).
		Count(&count).Error
	return count > 0, err
}

func (r *OrderRepositoryImpl) LatestPaidOrder(userID, projectID string) (*models.Order, error) {
	var order models.Order
	err := r.db.Where("user_id = ? AND project_id = ? AND status = ?", userID, projectID, models.OrderStatusPaid).
		Order("created_at DESC").
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// MarkPaid flips a pending order to paid and, when a coupon was applied,
// redeems it in the same transaction. The status guard makes the call
// idempotent under concurrent verification attempts, and the guarded
// used_count increment plus the unique (coupon_id, user_id) index keep
// redemption bounded.
func (r *OrderRepositoryImpl) MarkPaid(orderID, paymentID string, coupon *models.Coupon, discountPaise int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Order{}).
			Where("id = ? AND status = ?", orderID, models.OrderStatusPending).
			Updates(map[string]interface{}{
				"status":              models.OrderStatusPaid,
				"razorpay_payment_id": paymentID,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrOrderNotPending
		}

		if coupon == nil {
			return nil
		}

		redeem := tx.Model(&models.Coupon{}).
			Where("id = ? AND (usage_limit IS NULL OR used_count < usage_limit)", coupon.ID).
			Update("used_count", gorm.Expr("used_count + 1"))
		if redeem.Error != nil {
			return redeem.Error
		}
		if redeem.RowsAffected == 0 {
			return ErrCouponExhausted
		}

		var order models.Order
		if err := tx.First(&order, "id = ?", orderID).Error; err != nil {
			return err
		}

		usage := models.CouponUsage{
			CouponID:       coupon.ID,
			UserID:         order.UserID,
			OrderID:        order.ID,
			DiscountAmount: discountPaise,
		}
		if err := tx.Create(&usage).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrCouponUsageExists
			}
			return err
		}
		return nil
	})
}

func (r *OrderRepositoryImpl) MarkFailed(orderID string) error {
	result := r.db.Model(&models.Order{}).
		Where("id = ? AND status = ?", orderID, models.OrderStatusPending).
		Update("status", models.OrderStatusFailed)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOrderNotPending
	}
	return nil
}

func (r *OrderRepositoryImpl) CountPaidByProject(projectID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).
		Where("project_id = ? AND status = ?", projectID, models.OrderStatusPaid).
		Count(&count).Error
	return count, err
}

func (r *OrderRepositoryImpl) DeleteUnpaidByProject(projectID string) error {
	return r.db.Where("project_id = ? AND status <> ?", projectID, models.OrderStatusPaid).
		Delete(&models.Order{}).Error
}

func (r *OrderRepositoryImpl) CountPaid() (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).Where("status = ?", models.OrderStatusPaid).Count(&count).Error
	return count, err
}

func (r *OrderRepositoryImpl) TotalRevenue() (float64, error) {
	var total float64
	err := r.db.Model(&models.Order{}).
		Where("status = ?", models.OrderStatusPaid).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *OrderRepositoryImpl) RecentPaid(limit int) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Project").Preload("User").
		Where("status = ?", models.OrderStatusPaid).
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepositoryImpl) MonthlyRevenue(since time.Time) ([]MonthRevenue, error) {
	var buckets []MonthRevenue
	err := r.db.Model(&models.Order{}).
		Where("status = ? AND created_at >= ?", models.OrderStatusPaid, since).
		Select("date_trunc('month', created_at) as month, COALESCE(SUM(amount), 0) as revenue").
		Group("month").
		Order("month ASC").
		Scan(&buckets).Error
	return buckets, err
}
