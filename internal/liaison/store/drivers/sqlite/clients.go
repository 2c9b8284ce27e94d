package sqlite

import (
	"context"

	"github.com/aussiebroadwan/liaison/internal/liaison/domain"
	"github.com/aussiebroadwan/liaison/internal/liaison/store"
	"github.com/aussiebroadwan/liaison/internal/liaison/store/drivers/sqlite/gen"
)

type clientsRepo struct {
	q *gen.Queries
}

func (r *clientsRepo) ListClients(ctx context.Context, userID string) ([]domain.Client, error) {
	rows, err := r.q.ListClientsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	clients := make([]domain.Client, len(rows))
	for i, row := range rows {
		clients[i] = mapClient(row)
	}
	return clients, nil
}

func (r *clientsRepo) GetClient(ctx context.Context, userID, id string) (domain.Client, error) {
	row, err := r.q.GetClient(ctx, gen.GetClientParams{ID: id, UserID: userID})
	if err != nil {
		return domain.Client{}, mapNotFound(err)
	}
	return mapClient(row), nil
}

func (r *clientsRepo) CreateClient(ctx context.Context, c domain.Client) (domain.Client, error) {
	row, err := r.q.CreateClient(ctx, gen.CreateClientParams{
		ID:     c.ID,
		UserID: c.UserID,
		Name:   c.Name,
		Email:  c.Email,
		Phone:  mapOptionalString(c.Phone),
		Notes:  mapOptionalString(c.Notes),
	})
	if err != nil {
		return domain.Client{}, err
	}
	return mapClient(row), nil
}

func (r *clientsRepo) UpdateClient(ctx context.Context, c domain.Client) (domain.Client, error) {
	row, err := r.q.UpdateClient(ctx, gen.UpdateClientParams{
		Name:   c.Name,
		Email:  c.Email,
		Phone:  mapOptionalString(c.Phone),
		Notes:  mapOptionalString(c.Notes),
		ID:     c.ID,
		UserID: c.UserID,
	})
	if err != nil {
		return domain.Client{}, mapNotFound(err)
	}
	return mapClient(row), nil
}

func (r *clientsRepo) DeleteClient(ctx context.Context, userID, id string) error {
	n, err := r.q.DeleteClient(ctx, gen.DeleteClientParams{ID: id, UserID: userID})
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func mapClient(row gen.Client) domain.Client {
	return domain.Client{
		ID:        row.ID,
		UserID:    row.UserID,
		Name:      row.Name,
		Email:     row.Email,
		Phone:     mapNullStringPtr(row.Phone),
		Notes:     mapNullStringPtr(row.Notes),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
