package services

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/uniswap/internal/client/models"
	"github.com/dmitrijs2005/uniswap/internal/client/normalize"
)

type ItemService interface {
	List(ctx context.Context) ([]models.Item, error)
	Get(ctx context.Context, itemID int64) (*models.Item, error)
	ByUser(ctx context.Context, userID int64) ([]models.Item, error)
	Create(ctx context.Context, p models.ItemPayload) (*models.Item, error)
	Update(ctx context.Context, itemID int64, p models.ItemPayload) (*models.Item, error)
	Delete(ctx context.Context, itemID int64) error
	MarkExchanged(ctx context.Context, itemID int64) (*models.Item, error)
}

type itemService struct {
	r Requester
	n *normalize.Normalizer
}

func NewItemService(r Requester, n *normalize.Normalizer) ItemService {
	return &itemService{r: r, n: n}
}

func (s *itemService) List(ctx context.Context) ([]models.Item, error) {
	raw, err := getList(ctx, s.r, "/api/items")
	if err != nil {
		return nil, err
	}
	return s.n.Items(raw), nil
}

func (s *itemService) Get(ctx context.Context, itemID int64) (*models.Item, error) {
	return s.one(ctx, http.MethodGet, "/api/items/"+id(itemID), nil)
}

func (s *itemService) ByUser(ctx context.Context, userID int64) ([]models.Item, error) {
	raw, err := getList(ctx, s.r, "/api/items/user/"+id(userID))
	if err != nil {
		return nil, err
	}
	return s.n.Items(raw), nil
}

func (s *itemService) Create(ctx context.Context, p models.ItemPayload) (*models.Item, error) {
	return s.one(ctx, http.MethodPost, "/api/items", p)
}

func (s *itemService) Update(ctx context.Context, itemID int64, p models.ItemPayload) (*models.Item, error) {
	return s.one(ctx, http.MethodPut, "/api/items/"+id(itemID), p)
}

func (s *itemService) Delete(ctx context.Context, itemID int64) error {
	return s.r.Do(ctx, http.MethodDelete, "/api/items/"+id(itemID), nil, nil)
}

func (s *itemService) MarkExchanged(ctx context.Context, itemID int64) (*models.Item, error) {
	return s.one(ctx, http.MethodPut, "/api/items/"+id(itemID)+"/exchange", nil)
}

func (s *itemService) one(ctx context.Context, method, path string, body any) (*models.Item, error) {
	raw, err := getObject(ctx, s.r, method, path, body)
	if err != nil {
		return nil, err
	}
	it := s.n.Item(raw)
	return &it, nil
}
