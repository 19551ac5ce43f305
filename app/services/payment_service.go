package services

import (
	"monresto/app/models"
	"monresto/app/repo"
)

type PaymentService struct {
	payments *repo.PaymentRepository
	users    UserStore
}

func NewPaymentService(payments *repo.PaymentRepository, users UserStore) *PaymentService {
	return &PaymentService{payments: payments, users: users}
}

func (s *PaymentService) Create(username string, amount float64, method string) (*models.Payment, error) {
	u, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, asNotFound(err)
	}
	p := &models.Payment{UserID: u.ID, Amount: amount, Method: method}
	if err := s.payments.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PaymentService) Get(id uint) (*models.Payment, error) {
	p, err := s.payments.FindByID(id)
	if err != nil {
		return nil, asNotFound(err)
	}
	return p, nil
}

func (s *PaymentService) List() ([]models.Payment, error) { return s.payments.ListAll() }
