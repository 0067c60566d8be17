package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"portfolio_studio/internal/domain/entities"
	"portfolio_studio/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidUserInput   = errors.New("invalid user input")
	ErrUserEmailTaken     = errors.New("user email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRootUserProtected  = errors.New("root users cannot be deleted")
)

// DefaultUserTokenTTL bounds admin sessions.
const DefaultUserTokenTTL = 12 * time.Hour

// IUserUseCase exposes back-office user provisioning and login.

type IUserUseCase interface {
	Login(ctx context.Context, email, password string) (string, entities.User, error)
	Create(ctx context.Context, name, email, password string, roles []entities.Role) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
	Delete(ctx context.Context, id string) error
}

type UserUseCase struct {
	repo     interfaces.IUserRepository
	tokens   interfaces.ISessionTokens
	tokenTTL time.Duration
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository, tokens interfaces.ISessionTokens) *UserUseCase {
	return &UserUseCase{repo: repo, tokens: tokens, tokenTTL: DefaultUserTokenTTL}
}

func (u *UserUseCase) Login(ctx context.Context, email, password string) (string, entities.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", entities.User{}, ErrInvalidCredentials
	}

	user, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", entities.User{}, err
	}
	if user.ID == "" {
		// Same error as a bad password so the endpoint does not leak which
		// e-mails exist.
		return "", entities.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", entities.User{}, ErrInvalidCredentials
	}

	token, err := u.tokens.MintUserToken(user, u.tokenTTL)
	if err != nil {
		return "", entities.User{}, err
	}
	log.Printf("[user][usecase] login user_id=%s", user.ID)
	return token, user, nil
}

func (u *UserUseCase) Create(ctx context.Context, name, email, password string, roles []entities.Role) (entities.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || len(password) < 8 || len(roles) == 0 {
		return entities.User{}, ErrInvalidUserInput
	}
	for _, r := range roles {
		if !r.IsValid() {
			return entities.User{}, ErrInvalidUserInput
		}
	}

	if existing, err := u.repo.GetByEmail(ctx, email); err != nil {
		return entities.User{}, err
	} else if existing.ID != "" {
		return entities.User{}, ErrUserEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, err
	}

	user := entities.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Roles:        roles,
		CreatedAt:    time.Now().UTC(),
	}
	return u.repo.Create(ctx, user)
}

func (u *UserUseCase) GetByID(ctx context.Context, id string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserInput
	}
	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

func (u *UserUseCase) List(ctx context.Context) ([]entities.User, error) {
	return u.repo.List(ctx)
}

func (u *UserUseCase) Delete(ctx context.Context, id string) error {
	user, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user.HasRole(entities.RoleRoot) {
		return ErrRootUserProtected
	}
	return u.repo.Delete(ctx, user.ID)
}
