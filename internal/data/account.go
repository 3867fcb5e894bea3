package data

import (
	"context"
	"errors"
	"fmt"

	"connect-account-service/internal/biz/model"
	"connect-account-service/internal/data/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// pgUniqueViolation PostgreSQL unique_violation
const pgUniqueViolation = "23505"

// AccountRepo 账户数据访问接口
type AccountRepo interface {
	// FindOne 返回第一个满足 filter 的账户, 没有时返回 model.ErrNotFound
	FindOne(ctx context.Context, filter model.AccountFilter, opts model.FindOptions) (*model.Account, error)
	// Save ID 为 0 时插入, 否则按 ID 更新; 用户名冲突返回 model.ErrUserAlreadyExists
	Save(ctx context.Context, account *model.Account) (*model.Account, error)
}

type accountRepo struct {
	queries *models.Queries
	l       *zap.Logger
}

func NewAccountRepo(data *Data, logger *zap.Logger) AccountRepo {
	return newAccountRepo(data.db, logger)
}

func newAccountRepo(db models.DBTX, logger *zap.Logger) *accountRepo {
	return &accountRepo{
		queries: models.New(db),
		l:       logger,
	}
}

func (r *accountRepo) FindOne(ctx context.Context, filter model.AccountFilter, opts model.FindOptions) (*model.Account, error) {
	dbUser, err := r.queries.FindUser(ctx, models.FindUserParams{
		ID:       filter.ID,
		Username: filter.Username,
		IsAdmin:  filter.IsAdmin,
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	account := toAccount(dbUser)
	if !opts.Includes(model.RelationRoles) {
		return account, nil
	}

	roles, err := r.loadRoles(ctx, dbUser.ID, opts.Includes(model.RelationRolePermissions))
	if err != nil {
		return nil, err
	}
	account.Roles = roles
	return account, nil
}

func (r *accountRepo) loadRoles(ctx context.Context, userID int64, withPermissions bool) ([]model.Role, error) {
	dbRoles, err := r.queries.ListUserRoles(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list roles of user %d: %w", userID, err)
	}

	roles := make([]model.Role, 0, len(dbRoles))
	ids := make([]int64, 0, len(dbRoles))
	for _, dr := range dbRoles {
		roles = append(roles, model.Role{ID: dr.ID, Name: dr.Name})
		ids = append(ids, dr.ID)
	}
	if !withPermissions || len(ids) == 0 {
		return roles, nil
	}

	rows, err := r.queries.ListRolePermissions(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list permissions of user %d: %w", userID, err)
	}
	byRole := make(map[int64][]model.Permission, len(ids))
	for _, row := range rows {
		byRole[row.RoleID] = append(byRole[row.RoleID], model.Permission{
			ID:          row.ID,
			Code:        row.Code,
			Description: row.Description,
		})
	}
	for i := range roles {
		roles[i].Permissions = byRole[roles[i].ID]
	}
	return roles, nil
}

func (r *accountRepo) Save(ctx context.Context, account *model.Account) (*model.Account, error) {
	var (
		dbUser models.User
		err    error
	)
	if account.ID == 0 {
		dbUser, err = r.queries.CreateUser(ctx, models.CreateUserParams{
			Username: account.Username,
			Password: account.PasswordHash,
			NickName: account.NickName,
			Email:    account.Email,
			Avatar:   account.Avatar,
			Phone:    account.Phone,
			IsAdmin:  account.IsAdmin,
			IsFrozen: account.IsFrozen,
		})
	} else {
		dbUser, err = r.queries.UpdateUser(ctx, models.UpdateUserParams{
			ID:       account.ID,
			Username: account.Username,
			Password: account.PasswordHash,
			NickName: account.NickName,
			Email:    account.Email,
			Avatar:   account.Avatar,
			Phone:    account.Phone,
			IsAdmin:  account.IsAdmin,
			IsFrozen: account.IsFrozen,
		})
	}
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, model.ErrUserAlreadyExists
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("save user %q: %w", account.Username, err)
	}

	saved := toAccount(dbUser)
	saved.Roles = account.Roles
	return saved, nil
}

func toAccount(u models.User) *model.Account {
	return &model.Account{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.Password,
		NickName:     u.NickName,
		Email:        u.Email,
		Avatar:       u.Avatar,
		Phone:        u.Phone,
		IsAdmin:      u.IsAdmin,
		IsFrozen:     u.IsFrozen,
		CreateTime:   u.CreateTime,
	}
}
