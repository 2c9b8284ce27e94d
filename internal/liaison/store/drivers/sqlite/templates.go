package sqlite

import (
	"context"

	"github.com/aussiebroadwan/liaison/internal/liaison/domain"
	"github.com/aussiebroadwan/liaison/internal/liaison/store"
	"github.com/aussiebroadwan/liaison/internal/liaison/store/drivers/sqlite/gen"
)

type templatesRepo struct {
	q *gen.Queries
}

func (r *templatesRepo) ListTemplates(ctx context.Context, userID string) ([]domain.Template, error) {
	rows, err := r.q.ListTemplatesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Template, len(rows))
	for i, row := range rows {
		out[i] = mapTemplate(row)
	}
	return out, nil
}

func (r *templatesRepo) GetTemplate(ctx context.Context, userID, id string) (domain.Template, error) {
	row, err := r.q.GetTemplate(ctx, gen.GetTemplateParams{ID: id, UserID: userID})
	if err != nil {
		return domain.Template{}, mapNotFound(err)
	}
	return mapTemplate(row), nil
}

func (r *templatesRepo) CreateTemplate(ctx context.Context, t domain.Template) (domain.Template, error) {
	row, err := r.q.CreateTemplate(ctx, gen.CreateTemplateParams{
		ID:      t.ID,
		UserID:  t.UserID,
		Name:    t.Name,
		Subject: t.Subject,
		Body:    t.Body,
	})
	if err != nil {
		return domain.Template{}, err
	}
	return mapTemplate(row), nil
}

func (r *templatesRepo) UpdateTemplate(ctx context.Context, t domain.Template) (domain.Template, error) {
	row, err := r.q.UpdateTemplate(ctx, gen.UpdateTemplateParams{
		Name:    t.Name,
		Subject: t.Subject,
		Body:    t.Body,
		ID:      t.ID,
		UserID:  t.UserID,
	})
	if err != nil {
		return domain.Template{}, mapNotFound(err)
	}
	return mapTemplate(row), nil
}

func (r *templatesRepo) DeleteTemplate(ctx context.Context, userID, id string) error {
	n, err := r.q.DeleteTemplate(ctx, gen.DeleteTemplateParams{ID: id, UserID: userID})
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func mapTemplate(row gen.Template) domain.Template {
	return domain.Template{
		ID:        row.ID,
		UserID:    row.UserID,
		Name:      row.Name,
		Subject:   row.Subject,
		Body:      row.Body,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
