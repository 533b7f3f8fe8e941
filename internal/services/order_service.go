package services

import (
	"context"
	"errors"

	"inovitaz_backend/internal/repositories"
	"inovitaz_backend/internal/services/dto"
	"inovitaz_backend/pkg/apperrors"
)

type OrderService interface {
	MyOrders(ctx context.Context, userID string, query *dto.OrderListQuery) (*dto.OrderListResponse, error)
	PurchasedProjects(ctx context.Context, userID string) ([]dto.PurchasedProjectResponse, error)
	// OrderByID is owner-scoped: other users' orders look like 404.
	OrderByID(ctx context.Context, userID, orderID string) (*dto.OrderResponse, error)
}

type OrderServiceImpl struct {
	orderRepo    repositories.OrderRepository
	maxDownloads int
}

func NewOrderService(orderRepo repositories.OrderRepository, maxDownloads int) OrderService {
	return &OrderServiceImpl{orderRepo: orderRepo, maxDownloads: maxDownloads}
}

func (s *OrderServiceImpl) MyOrders(ctx context.Context, userID string, query *dto.OrderListQuery) (*dto.OrderListResponse, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	orders, total, err := s.orderRepo.FindByUser(userID, query.Status, page, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, dto.ToOrderResponse(&orders[i]))
	}
	return &dto.OrderListResponse{
		Orders:     items,
		Pagination: dto.NewPagination(page, limit, total),
	}, nil
}

func (s *OrderServiceImpl) PurchasedProjects(ctx context.Context, userID string) ([]dto.PurchasedProjectResponse, error) {
	purchased, err := s.orderRepo.PurchasedProjects(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.PurchasedProjectResponse, 0, len(purchased))
	for _, p := range purchased {
		item := dto.PurchasedProjectResponse{
			Project:     dto.ToProjectSummary(&p.Project),
			OrderID:     p.Order.ID,
			PurchasedAt: p.Order.CreatedAt,
		}
		if p.DownloadLog != nil {
			item.DownloadsUsed = p.DownloadLog.DownloadCount
			item.DownloadsRemaining = p.DownloadLog.Remaining()
			expiry := p.DownloadLog.ExpiryDate
			item.DownloadExpiry = &expiry
		} else {
			// No log yet means no download taken: full allowance.
			item.DownloadsRemaining = s.maxDownloads
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *OrderServiceImpl) OrderByID(ctx context.Context, userID, orderID string) (*dto.OrderResponse, error) {
	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return nil, apperrors.ErrOrderNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if order.UserID != userID {
		return nil, apperrors.ErrOrderNotFound(errors.New("order belongs to another user"))
	}

	resp := dto.ToOrderResponse(order)
	return &resp, nil
}
