package services

import (
	"context"
	"errors"
	"time"

	"monresto/app/hash"
	jwtutil "monresto/app/jwt"
	"monresto/app/models"

	"gorm.io/gorm"
)

// UserStore is the persistence capability the auth flow needs. The gorm
// repository satisfies it; tests may substitute anything else.
type UserStore interface {
	Create(u *models.User) error
	Save(u *models.User) error
	Delete(u *models.User) error
	FindByID(id uint) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	CountByUsernameOrEmail(username, email string) (int64, error)
	CountOthersByUsernameOrEmail(id uint, username, email string) (int64, error)
	ListAll() ([]models.User, error)
}

type UserService struct {
	users  UserStore
	hasher *hash.Hasher
	signer *jwtutil.Signer
	denied TokenDenylist
}

func NewUserService(users UserStore, hasher *hash.Hasher, signer *jwtutil.Signer, denied TokenDenylist) *UserService {
	return &UserService{users: users, hasher: hasher, signer: signer, denied: denied}
}

// Register creates a new user unless the username or email is taken. The
// pre-check is a fast fail; the unique indexes on users are the guard that
// holds under concurrent registrations.
func (s *UserService) Register(username, email, password string) error {
	count, err := s.users.CountByUsernameOrEmail(username, email)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateUser
	}
	u := &models.User{Username: username, Email: email, PasswordHash: s.hasher.Hash(password)}
	if err := s.users.Create(u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateUser
		}
		return err
	}
	return nil
}

// Login never reveals whether the username exists: an unknown user and a
// wrong password both come back as ErrInvalidCredentials.
func (s *UserService) Login(username, password string) (string, error) {
	u, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !s.hasher.Verify(password, u.PasswordHash) {
		return "", ErrInvalidCredentials
	}
	return s.signer.Sign(u.Username)
}

// Profile verifies the bearer token and returns the user it names.
func (s *UserService) Profile(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.signer.Parse(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if s.denied != nil {
		revoked, err := s.denied.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, ErrInvalidToken
		}
	}
	u, err := s.users.FindByUsername(claims.Subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// Logout revokes the token's jti for whatever lifetime it has left. With no
// deny-list configured tokens stay valid until expiry.
func (s *UserService) Logout(ctx context.Context, token string) error {
	claims, err := s.signer.Parse(token)
	if err != nil {
		return ErrInvalidToken
	}
	if s.denied == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.denied.Revoke(ctx, claims.ID, ttl)
}

func (s *UserService) List() ([]models.User, error) { return s.users.ListAll() }

func (s *UserService) Get(id uint) (*models.User, error) {
	u, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// Update overwrites username, email and password hash in place. Existence is
// checked before uniqueness against other users.
func (s *UserService) Update(id uint, username, email, password string) error {
	u, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	count, err := s.users.CountOthersByUsernameOrEmail(id, username, email)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateUser
	}
	u.Username = username
	u.Email = email
	u.PasswordHash = s.hasher.Hash(password)
	if err := s.users.Save(u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateUser
		}
		return err
	}
	return nil
}

func (s *UserService) Delete(id uint) error {
	u, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.users.Delete(u)
}
