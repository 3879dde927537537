package admin

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/bklyngarment/storefront/internal/apiclient"
	"github.com/bklyngarment/storefront/internal/forms"
	"github.com/bklyngarment/storefront/internal/models"
	"github.com/bklyngarment/storefront/internal/viewstate"
)

// Backend is the part of the API client the dashboard needs.
type Backend interface {
	ListProducts(ctx context.Context, q apiclient.ProductQuery) ([]models.Product, error)
	ListLookbook(ctx context.Context) ([]models.LookbookItem, error)
	ListVideos(ctx context.Context, activeOnly bool) ([]models.Video, error)

	CreateProduct(ctx context.Context, token string, payload models.ProductPayload) (*models.Product, error)
	UpdateProduct(ctx context.Context, token, id string, payload models.ProductPayload) (*models.Product, error)
	DeleteProduct(ctx context.Context, token, id string) error

	CreateLookbookItem(ctx context.Context, token string, payload models.LookbookPayload) (*models.LookbookItem, error)
	DeleteLookbookItem(ctx context.Context, token, id string) error

	CreateVideo(ctx context.Context, token string, payload models.VideoPayload) (*models.Video, error)
	DeleteVideo(ctx context.Context, token, id string) error
}

// Mode says how the dashboard list is brought up to date after a successful mutation.
type Mode int

const (
	// Refetch reloads every list from the backend.
	Refetch Mode = iota
	// PatchLocal edits the stored list in place.
	PatchLocal
)

// Policy picks a Mode per kind of mutation.
type Policy struct {
	Save   Mode
	Delete Mode
}

// DefaultPolicy refetches after saves and patches after deletes.
func DefaultPolicy() Policy {
	return Policy{Save: Refetch, Delete: PatchLocal}
}

// Kind names the resource a submission touched, as shown in messages.
type Kind string

const (
	KindProduct  Kind = "product"
	KindLookbook Kind = "lookbook item"
	KindVideo    Kind = "video"
)

// SubmitError is a failed create or update. The draft is kept by the caller.
type SubmitError struct {
	Kind Kind
	Err  error
}

// Message is the alert text: the backend detail verbatim, else the transport error.
func (e *SubmitError) Message() string {
	return "Error saving " + string(e.Kind) + ": " + apiclient.DetailOr(e.Err, e.Err.Error())
}

func (e *SubmitError) Error() string { return e.Message() }

func (e *SubmitError) Unwrap() error { return e.Err }

// DeleteError is a failed delete. The dashboard list is left untouched.
type DeleteError struct {
	Kind Kind
	Err  error
}

func (e *DeleteError) Message() string { return "Error deleting " + string(e.Kind) }

func (e *DeleteError) Error() string { return e.Message() }

func (e *DeleteError) Unwrap() error { return e.Err }

// Service runs dashboard loads and submissions for one admin session at a time.
type Service struct {
	backend Backend
	states  viewstate.Store
	policy  Policy
	log     *logrus.Logger
	now     func() time.Time
}

// NewService wires a dashboard service.
func NewService(backend Backend, states viewstate.Store, policy Policy, logger *logrus.Logger) *Service {
	return &Service{backend: backend, states: states, policy: policy, log: logger, now: time.Now}
}

// Policy returns the active list policy.
func (s *Service) Policy() Policy { return s.policy }

// Load fetches products, lookbook and every video (active or not) in parallel and stores
// the result for sessionID. A failed fetch is logged and leaves its list empty.
func (s *Service) Load(ctx context.Context, sessionID string) viewstate.Dashboard {
	var d viewstate.Dashboard
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := s.backend.ListProducts(gctx, apiclient.ProductQuery{})
		if err != nil {
			s.log.WithError(err).Error("Error fetching products")
			return nil
		}
		d.Products = list
		return nil
	})
	g.Go(func() error {
		list, err := s.backend.ListLookbook(gctx)
		if err != nil {
			s.log.WithError(err).Error("Error fetching lookbook")
			return nil
		}
		d.Lookbook = list
		return nil
	})
	g.Go(func() error {
		list, err := s.backend.ListVideos(gctx, false)
		if err != nil {
			s.log.WithError(err).Error("Error fetching videos")
			return nil
		}
		d.Videos = list
		return nil
	})
	_ = g.Wait()

	d.LoadedAt = s.now()
	s.store(ctx, sessionID, d)
	return d
}

// Current returns the stored dashboard for sessionID, loading it when there is none.
func (s *Service) Current(ctx context.Context, sessionID string) viewstate.Dashboard {
	d, err := s.states.Get(ctx, sessionID)
	if err == nil {
		return d
	}
	if !errors.Is(err, viewstate.ErrNotFound) {
		s.log.WithError(err).Warn("failed to read dashboard state")
	}
	return s.Load(ctx, sessionID)
}

// Forget drops the stored dashboard, e.g. on logout.
func (s *Service) Forget(ctx context.Context, sessionID string) {
	if err := s.states.Delete(ctx, sessionID); err != nil {
		s.log.WithError(err).Warn("failed to drop dashboard state")
	}
}

// Product returns a product from the stored dashboard.
func (s *Service) Product(ctx context.Context, sessionID, id string) (models.Product, bool) {
	for _, p := range s.Current(ctx, sessionID).Products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// SaveProduct creates the product when id is empty, otherwise replaces it. Validation
// failures return *forms.ValidationError before any request is made.
func (s *Service) SaveProduct(ctx context.Context, sessionID, token, id string, draft forms.ProductDraft) (*models.Product, error) {
	payload, err := draft.Normalize()
	if err != nil {
		return nil, err
	}
	var saved *models.Product
	if id == "" {
		saved, err = s.backend.CreateProduct(ctx, token, payload)
	} else {
		saved, err = s.backend.UpdateProduct(ctx, token, id, payload)
	}
	if err != nil {
		s.log.WithError(err).WithField("product_id", id).Error("failed to save product")
		return nil, &SubmitError{Kind: KindProduct, Err: err}
	}
	s.afterSave(ctx, sessionID, func(d *viewstate.Dashboard) {
		d.Products = upsert(d.Products, *saved, func(p models.Product) string { return p.ID })
	})
	return saved, nil
}

// SaveLookbookItem creates a lookbook item.
func (s *Service) SaveLookbookItem(ctx context.Context, sessionID, token string, draft forms.LookbookDraft) (*models.LookbookItem, error) {
	payload, err := draft.Normalize()
	if err != nil {
		return nil, err
	}
	saved, err := s.backend.CreateLookbookItem(ctx, token, payload)
	if err != nil {
		s.log.WithError(err).Error("failed to save lookbook item")
		return nil, &SubmitError{Kind: KindLookbook, Err: err}
	}
	s.afterSave(ctx, sessionID, func(d *viewstate.Dashboard) {
		d.Lookbook = upsert(d.Lookbook, *saved, func(l models.LookbookItem) string { return l.ID })
	})
	return saved, nil
}

// SaveVideo creates a video.
func (s *Service) SaveVideo(ctx context.Context, sessionID, token string, draft forms.VideoDraft) (*models.Video, error) {
	payload, err := draft.Normalize()
	if err != nil {
		return nil, err
	}
	saved, err := s.backend.CreateVideo(ctx, token, payload)
	if err != nil {
		s.log.WithError(err).Error("failed to save video")
		return nil, &SubmitError{Kind: KindVideo, Err: err}
	}
	s.afterSave(ctx, sessionID, func(d *viewstate.Dashboard) {
		d.Videos = upsert(d.Videos, *saved, func(v models.Video) string { return v.ID })
	})
	return saved, nil
}

// DeleteProduct issues exactly one DELETE. On failure the stored list is not touched.
func (s *Service) DeleteProduct(ctx context.Context, sessionID, token, id string) error {
	if err := s.backend.DeleteProduct(ctx, token, id); err != nil {
		s.log.WithError(err).WithField("product_id", id).Error("failed to delete product")
		return &DeleteError{Kind: KindProduct, Err: err}
	}
	s.afterDelete(ctx, sessionID, func(d *viewstate.Dashboard) {
		d.Products = without(d.Products, id, func(p models.Product) string { return p.ID })
	})
	return nil
}

// DeleteLookbookItem issues exactly one DELETE.
func (s *Service) DeleteLookbookItem(ctx context.Context, sessionID, token, id string) error {
	if err := s.backend.DeleteLookbookItem(ctx, token, id); err != nil {
		s.log.WithError(err).WithField("lookbook_id", id).Error("failed to delete lookbook item")
		return &DeleteError{Kind: KindLookbook, Err: err}
	}
	s.afterDelete(ctx, sessionID, func(d *viewstate.Dashboard) {
		d.Lookbook = without(d.Lookbook, id, func(l models.LookbookItem) string { return l.ID })
	})
	return nil
}

// DeleteVideo issues exactly one DELETE.
func (s *Service) DeleteVideo(ctx context.Context, sessionID, token, id string) error {
	if err := s.backend.DeleteVideo(ctx, token, id); err != nil {
		s.log.WithError(err).WithField("video_id", id).Error("failed to delete video")
		return &DeleteError{Kind: KindVideo, Err: err}
	}
	s.afterDelete(ctx, sessionID, func(d *viewstate.Dashboard) {
		d.Videos = without(d.Videos, id, func(v models.Video) string { return v.ID })
	})
	return nil
}

func (s *Service) afterSave(ctx context.Context, sessionID string, patch func(*viewstate.Dashboard)) {
	s.apply(ctx, sessionID, s.policy.Save, patch)
}

func (s *Service) afterDelete(ctx context.Context, sessionID string, patch func(*viewstate.Dashboard)) {
	s.apply(ctx, sessionID, s.policy.Delete, patch)
}

func (s *Service) apply(ctx context.Context, sessionID string, mode Mode, patch func(*viewstate.Dashboard)) {
	if mode == Refetch {
		s.Load(ctx, sessionID)
		return
	}
	d := s.Current(ctx, sessionID)
	patch(&d)
	s.store(ctx, sessionID, d)
}

func (s *Service) store(ctx context.Context, sessionID string, d viewstate.Dashboard) {
	if sessionID == "" {
		return
	}
	if err := s.states.Put(ctx, sessionID, d); err != nil {
		s.log.WithError(err).Warn("failed to store dashboard state")
	}
}

func upsert[T any](list []T, item T, id func(T) string) []T {
	out := make([]T, 0, len(list)+1)
	replaced := false
	for _, v := range list {
		if id(v) == id(item) {
			out = append(out, item)
			replaced = true
			continue
		}
		out = append(out, v)
	}
	if !replaced {
		out = append(out, item)
	}
	return out
}

func without[T any](list []T, target string, id func(T) string) []T {
	out := make([]T, 0, len(list))
	for _, v := range list {
		if id(v) != target {
			out = append(out, v)
		}
	}
	return out
}
