package admin

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/bklyngarment/storefront/internal/apiclient"
	"github.com/bklyngarment/storefront/internal/models"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type fakeBackend struct {
	mu sync.Mutex

	products []models.Product
	lookbook []models.LookbookItem
	videos   []models.Video

	listErr   error
	saveErr   error
	deleteErr error

	calls       map[string]int
	lastToken   string
	activeOnly  *bool
	lastPayload any
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		products: []models.Product{{ID: "p1", Name: "Lion Tee"}, {ID: "p2", Name: "Crown Hoodie"}},
		lookbook: []models.LookbookItem{{ID: "l1", Title: "Fall"}},
		videos:   []models.Video{{ID: "v1", Title: "Drop", Active: false}},
		calls:    map[string]int{},
	}
}

func (f *fakeBackend) record(name, token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
	if token != "" {
		f.lastToken = token
	}
}

func (f *fakeBackend) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeBackend) ListProducts(_ context.Context, _ apiclient.ProductQuery) ([]models.Product, error) {
	f.record("ListProducts", "")
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.Product(nil), f.products...), nil
}

func (f *fakeBackend) ListLookbook(context.Context) ([]models.LookbookItem, error) {
	f.record("ListLookbook", "")
	return append([]models.LookbookItem(nil), f.lookbook...), nil
}

func (f *fakeBackend) ListVideos(_ context.Context, activeOnly bool) ([]models.Video, error) {
	f.record("ListVideos", "")
	f.mu.Lock()
	f.activeOnly = &activeOnly
	f.mu.Unlock()
	return append([]models.Video(nil), f.videos...), nil
}

func (f *fakeBackend) CreateProduct(_ context.Context, token string, p models.ProductPayload) (*models.Product, error) {
	f.record("CreateProduct", token)
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.lastPayload = p
	created := models.Product{ID: "p-new", Name: p.Name, Price: p.Price, Category: p.Category, Sizes: p.Sizes}
	f.products = append(f.products, created)
	return &created, nil
}

func (f *fakeBackend) UpdateProduct(_ context.Context, token, id string, p models.ProductPayload) (*models.Product, error) {
	f.record("UpdateProduct", token)
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.lastPayload = p
	updated := models.Product{ID: id, Name: p.Name, Price: p.Price}
	for i := range f.products {
		if f.products[i].ID == id {
			f.products[i] = updated
		}
	}
	return &updated, nil
}

func (f *fakeBackend) DeleteProduct(_ context.Context, token, id string) error {
	f.record("DeleteProduct", token)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	return nil
}

func (f *fakeBackend) CreateLookbookItem(_ context.Context, token string, p models.LookbookPayload) (*models.LookbookItem, error) {
	f.record("CreateLookbookItem", token)
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	item := models.LookbookItem{ID: "l-new", Title: p.Title, ImageURL: p.ImageURL}
	return &item, nil
}

func (f *fakeBackend) DeleteLookbookItem(_ context.Context, token, _ string) error {
	f.record("DeleteLookbookItem", token)
	return f.deleteErr
}

func (f *fakeBackend) CreateVideo(_ context.Context, token string, p models.VideoPayload) (*models.Video, error) {
	f.record("CreateVideo", token)
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	v := models.Video{ID: "v-new", Title: p.Title, VideoURL: p.VideoURL, Active: p.Active}
	return &v, nil
}

func (f *fakeBackend) DeleteVideo(_ context.Context, token, _ string) error {
	f.record("DeleteVideo", token)
	return f.deleteErr
}

// fakeAuth implements Authenticator.
type fakeAuth struct {
	token     string
	loginErr  error
	verifyErr error
	verifies  int
}

func (a *fakeAuth) Login(_ context.Context, _, _ string) (string, error) {
	if a.loginErr != nil {
		return "", a.loginErr
	}
	return a.token, nil
}

func (a *fakeAuth) Verify(_ context.Context, _ string) error {
	a.verifies++
	return a.verifyErr
}

var errTransport = errors.New("dial tcp 127.0.0.1:8001: connect: connection refused")
