package services

import (
	"context"
	"time"

	"inovitaz_backend/internal/email"
	"inovitaz_backend/internal/models"
	"inovitaz_backend/internal/payment"
	"inovitaz_backend/internal/repositories"
)

// Hand-written repository stubs: each method delegates to an optional
// func field and falls back to the package's not-found error.

type stubProjectRepo struct {
	findByID func(id string) (*models.Project, error)
}

func (s *stubProjectRepo) FindByID(id string) (*models.Project, error) {
	if s.findByID != nil {
		return s.findByID(id)
	}
	return nil, repositories.ErrProjectNotFound
}

func (s *stubProjectRepo) FindWithFilter(repositories.ProjectFilter) ([]models.Project, int64, error) {
	return nil, 0, nil
}
func (s *stubProjectRepo) CategoryCounts() ([]repositories.CategoryCount, error) { return nil, nil }
func (s *stubProjectRepo) Create(*models.Project) error                          { return nil }
func (s *stubProjectRepo) ApplyPatch(string, *repositories.ProjectPatch) error   { return nil }
func (s *stubProjectRepo) Delete(string) error                                   { return nil }
func (s *stubProjectRepo) CountAll() (int64, error)                              { return 0, nil }
func (s *stubProjectRepo) UpdateRatingStats(string, float64, int64) error        { return nil }

type stubCouponRepo struct {
	findActiveByCode func(code string) (*models.Coupon, error)
	findByCode       func(code string) (*models.Coupon, error)
	hasUserUsed      func(couponID, userID string) (bool, error)
}

func (s *stubCouponRepo) FindActiveByCode(code string) (*models.Coupon, error) {
	if s.findActiveByCode != nil {
		return s.findActiveByCode(code)
	}
	return nil, repositories.ErrCouponNotFound
}

func (s *stubCouponRepo) FindByCode(code string) (*models.Coupon, error) {
	if s.findByCode != nil {
		return s.findByCode(code)
	}
	return nil, repositories.ErrCouponNotFound
}

func (s *stubCouponRepo) HasUserUsed(couponID, userID string) (bool, error) {
	if s.hasUserUsed != nil {
		return s.hasUserUsed(couponID, userID)
	}
	return false, nil
}

func (s *stubCouponRepo) Create(*models.Coupon) error { return nil }
func (s *stubCouponRepo) FindAll(int, int) ([]models.Coupon, int64, error) {
	return nil, 0, nil
}
func (s *stubCouponRepo) SetActive(string, bool) error { return nil }

type stubOrderRepo struct {
	create               func(order *models.Order) error
	findByGatewayOrderID func(id string) (*models.Order, error)
	latestPaidOrder      func(userID, projectID string) (*models.Order, error)
	hasPaidOrder         func(userID, projectID string) (bool, error)
	markPaid             func(orderID, paymentID string, coupon *models.Coupon, discountPaise int64) error
	markFailed           func(orderID string) error
}

func (s *stubOrderRepo) Create(order *models.Order) error {
	if s.create != nil {
		return s.create(order)
	}
	return nil
}

func (s *stubOrderRepo) FindByID(string) (*models.Order, error) {
	return nil, repositories.ErrOrderNotFound
}

func (s *stubOrderRepo) FindByGatewayOrderID(id string) (*models.Order, error) {
	if s.findByGatewayOrderID != nil {
		return s.findByGatewayOrderID(id)
	}
	return nil, repositories.ErrOrderNotFound
}

func (s *stubOrderRepo) FindByUser(string, string, int, int) ([]models.Order, int64, error) {
	return nil, 0, nil
}
func (s *stubOrderRepo) FindAll(int, int) ([]models.Order, int64, error) { return nil, 0, nil }
func (s *stubOrderRepo) PurchasedProjects(string) ([]repositories.PurchasedProject, error) {
	return nil, nil
}

func (s *stubOrderRepo) HasPaidOrder(userID, projectID string) (bool, error) {
	if s.hasPaidOrder != nil {
		return s.hasPaidOrder(userID, projectID)
	}
	return false, nil
}

func (s *stubOrderRepo) LatestPaidOrder(userID, projectID string) (*models.Order, error) {
	if s.latestPaidOrder != nil {
		return s.latestPaidOrder(userID, projectID)
	}
	return nil, repositories.ErrOrderNotFound
}

func (s *stubOrderRepo) MarkPaid(orderID, paymentID string, coupon *models.Coupon, discountPaise int64) error {
	if s.markPaid != nil {
		return s.markPaid(orderID, paymentID, coupon, discountPaise)
	}
	return nil
}

func (s *stubOrderRepo) MarkFailed(orderID string) error {
	if s.markFailed != nil {
		return s.markFailed(orderID)
	}
	return nil
}

func (s *stubOrderRepo) CountPaidByProject(string) (int64, error) { return 0, nil }
func (s *stubOrderRepo) DeleteUnpaidByProject(string) error       { return nil }
func (s *stubOrderRepo) CountPaid() (int64, error)                { return 0, nil }
func (s *stubOrderRepo) TotalRevenue() (float64, error)           { return 0, nil }
func (s *stubOrderRepo) RecentPaid(int) ([]models.Order, error)   { return nil, nil }
func (s *stubOrderRepo) MonthlyRevenue(time.Time) ([]repositories.MonthRevenue, error) {
	return nil, nil
}

type stubDownloadLogRepo struct {
	findByOrder    func(userID, projectID, orderID string) (*models.DownloadLog, error)
	create         func(log *models.DownloadLog) error
	incrementCount func(id string) error
}

func (s *stubDownloadLogRepo) FindByOrder(userID, projectID, orderID string) (*models.DownloadLog, error) {
	if s.findByOrder != nil {
		return s.findByOrder(userID, projectID, orderID)
	}
	return nil, repositories.ErrDownloadLogNotFound
}

func (s *stubDownloadLogRepo) Create(log *models.DownloadLog) error {
	if s.create != nil {
		return s.create(log)
	}
	return nil
}

func (s *stubDownloadLogRepo) IncrementCount(id string) error {
	if s.incrementCount != nil {
		return s.incrementCount(id)
	}
	return nil
}

func (s *stubDownloadLogRepo) CountAll() (int64, error) { return 0, nil }

type stubReviewRepo struct {
	findByID             func(id string) (*models.Review, error)
	findByUserAndProject func(userID, projectID string) (*models.Review, error)
	create               func(review *models.Review) error
	update               func(review *models.Review) error
	stats                func(projectID string) (*repositories.RatingStats, error)
}

func (s *stubReviewRepo) FindByID(id string) (*models.Review, error) {
	if s.findByID != nil {
		return s.findByID(id)
	}
	return nil, repositories.ErrReviewNotFound
}

func (s *stubReviewRepo) FindByProject(string, int, int) ([]models.Review, int64, error) {
	return nil, 0, nil
}

func (s *stubReviewRepo) FindByUserAndProject(userID, projectID string) (*models.Review, error) {
	if s.findByUserAndProject != nil {
		return s.findByUserAndProject(userID, projectID)
	}
	return nil, repositories.ErrReviewNotFound
}

func (s *stubReviewRepo) Create(review *models.Review) error {
	if s.create != nil {
		return s.create(review)
	}
	return nil
}

func (s *stubReviewRepo) Update(review *models.Review) error {
	if s.update != nil {
		return s.update(review)
	}
	return nil
}

func (s *stubReviewRepo) DeleteByIDForUser(string, string) error { return nil }

func (s *stubReviewRepo) Stats(projectID string) (*repositories.RatingStats, error) {
	if s.stats != nil {
		return s.stats(projectID)
	}
	return &repositories.RatingStats{}, nil
}

// stubGateway records calls and verifies against a fixed secret.
type stubGateway struct {
	created      []payment.CreateOrderInput
	orderID      string
	createErr    error
	verifyResult bool
}

func (g *stubGateway) CreateOrder(_ context.Context, in payment.CreateOrderInput) (*payment.GatewayOrder, error) {
	if g.createErr != nil {
		return nil, g.createErr
	}
	g.created = append(g.created, in)
	id := g.orderID
	if id == "" {
		id = "order_stub_1"
	}
	return &payment.GatewayOrder{
		ID:       id,
		Amount:   in.AmountPaise,
		Currency: "INR",
		Receipt:  in.Receipt,
		Status:   "created",
	}, nil
}

func (g *stubGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return g.verifyResult
}

func (g *stubGateway) IsMock() bool { return false }

type stubMailer struct {
	sent []email.OrderConfirmation
}

func (m *stubMailer) SendOrderConfirmation(to, name string, data email.OrderConfirmation) error {
	m.sent = append(m.sent, data)
	return nil
}
