package services

import (
	"monresto/app/models"
	"monresto/app/repo"
)

type ContactService struct{ contacts *repo.ContactRepository }

func NewContactService(contacts *repo.ContactRepository) *ContactService {
	return &ContactService{contacts: contacts}
}

func (s *ContactService) Create(c *models.Contact) error { return s.contacts.Create(c) }
