package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/snackcheck/internal/error_values"
	"github.com/limbo/snackcheck/internal/repository"
	"github.com/limbo/snackcheck/internal/rewards"
	"github.com/limbo/snackcheck/pkg/entity"
	"golang.org/x/crypto/bcrypt"
)

const leaderboardSize = 20

var classRoles = map[string]string{
	"KLAS1":  entity.RoleStudentClass1,
	"KLAS2":  entity.RoleStudentClass2,
	"KLAS3":  entity.RoleStudentClass3,
	"DOCENT": entity.RoleTeacher,
	"ADMIN":  entity.RoleAdmin,
}

// RoleForClassCode maps a class code to its default role. Empty string means
// the code is unknown.
func RoleForClassCode(classCode string) string {
	return classRoles[strings.ToUpper(strings.TrimSpace(classCode))]
}

type UserService struct {
	repo repository.UsersRepositoryI
}

func NewUserService(usersRepo repository.UsersRepositoryI) *UserService {
	return &UserService{
		repo: usersRepo,
	}
}

func (us *UserService) CreateUser(ctx context.Context, req *CreateUserRequest) (*entity.User, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	classCode := strings.ToUpper(req.ClassCode)
	role := req.Role
	if role == "" {
		role = RoleForClassCode(classCode)
	}
	if role == "" {
		return nil, errorvalues.ErrInvalidRole
	}
	passwordHash, err := Hash(req.Password)
	if err != nil {
		return nil, errors.New("hashing password error: " + err.Error())
	}
	user := &entity.User{
		Name:         req.Name,
		PasswordHash: passwordHash,
		ClassCode:    classCode,
		Role:         role,
		Progress:     rewards.Reset(),
	}
	id, err := us.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return nil, err
		}
		return nil, errors.New("repository creating error: " + err.Error())
	}
	user.ID = id
	return user, nil
}

func (us *UserService) Login(ctx context.Context, name, password, classCode string) (*entity.User, error) {
	user, err := us.repo.FindByName(ctx, name, strings.ToUpper(strings.TrimSpace(classCode)))
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errorvalues.ErrWrongCredentials
	}
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) List(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	if limit <= 0 || offset < 0 {
		return nil, errorvalues.ErrValidation
	}
	users, err := us.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, errors.New("repository listing error: " + err.Error())
	}
	return users, nil
}

func (us *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	err := us.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("repository deletion error: " + err.Error())
	}
	return nil
}

// ResetProgress brings user's points, level, badges and streak back to the
// defaults of a new account. Food entries are kept.
func (us *UserService) ResetProgress(ctx context.Context, id uuid.UUID) (entity.UserProgress, error) {
	progress, err := us.repo.UpdateProgress(ctx, id, func(entity.UserProgress) (entity.UserProgress, error) {
		return rewards.Reset(), nil
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return entity.UserProgress{}, err
		}
		return entity.UserProgress{}, errors.New("repository progress reset error: " + err.Error())
	}
	return progress, nil
}

func (us *UserService) Leaderboard(ctx context.Context, viewer *entity.User) ([]entity.LeaderboardRow, error) {
	if viewer == nil {
		return nil, errorvalues.ErrInvalidToken
	}
	classCode := viewer.ClassCode
	if viewer.IsAdmin() {
		classCode = ""
	}
	rows, err := us.repo.Leaderboard(ctx, classCode, leaderboardSize)
	if err != nil {
		return nil, errors.New("repository leaderboard error: " + err.Error())
	}
	return rows, nil
}

func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
