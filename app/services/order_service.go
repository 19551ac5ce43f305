package services

import (
	"monresto/app/models"
	"monresto/app/repo"
)

type OrderService struct {
	orders   *repo.OrderRepository
	articles *repo.ArticleRepository
	users    UserStore
}

func NewOrderService(orders *repo.OrderRepository, articles *repo.ArticleRepository, users UserStore) *OrderService {
	return &OrderService{orders: orders, articles: articles, users: users}
}

// Place prices the order from the current article prices and persists it with
// its items. Unknown article ids fail the whole order.
func (s *OrderService) Place(username string, items []models.OrderItem) (*models.Order, error) {
	u, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, asNotFound(err)
	}
	o := &models.Order{UserID: u.ID}
	for _, item := range items {
		a, err := s.articles.FindByID(item.ArticleID)
		if err != nil {
			return nil, asNotFound(err)
		}
		o.Total += a.Price * float64(item.Quantity)
		o.OrderItems = append(o.OrderItems, models.OrderItem{ArticleID: item.ArticleID, Quantity: item.Quantity})
	}
	if err := s.orders.Create(o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *OrderService) Get(id uint) (*models.Order, error) {
	o, err := s.orders.FindByID(id)
	if err != nil {
		return nil, asNotFound(err)
	}
	return o, nil
}

func (s *OrderService) List() ([]models.Order, error) { return s.orders.ListAll() }

func (s *OrderService) Delete(id uint) error {
	o, err := s.orders.FindByID(id)
	if err != nil {
		return asNotFound(err)
	}
	return s.orders.Delete(o)
}
