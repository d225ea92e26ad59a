package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/finance-pilot-api/infrastructure/database/postgres"
	"github.com/vfg2006/finance-pilot-api/internal/domain"
)

const (
	usersTable = "users u"
)

type UserRepository interface {
	ListActiveMembers(ctx context.Context) ([]*domain.Member, error)
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) ListActiveMembers(ctx context.Context) ([]*domain.Member, error) {
	query, args, err := squirrel.
		Select("u.id, u.org_id, u.role_id").
		From(usersTable).
		Where(squirrel.Eq{"u.active": true}).
		OrderBy("u.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de usuários")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(postgres.MapError(err), "erro ao listar usuários ativos")
	}
	defer rows.Close()

	members := make([]*domain.Member, 0)
	for rows.Next() {
		member := &domain.Member{}
		if err := rows.Scan(&member.UserID, &member.OrgID, &member.RoleID); err != nil {
			return nil, errors.Wrap(err, "erro ao deserializar usuário")
		}

		members = append(members, member)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro ao iterar sobre os usuários")
	}

	return members, nil
}
