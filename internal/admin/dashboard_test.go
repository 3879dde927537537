package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bklyngarment/storefront/internal/apiclient"
	"github.com/bklyngarment/storefront/internal/forms"
	"github.com/bklyngarment/storefront/internal/models"
	"github.com/bklyngarment/storefront/internal/viewstate"
)

func newTestService(b *fakeBackend, policy Policy) *Service {
	return NewService(b, viewstate.NewMemoryStore(0), policy, quietLogger())
}

func productIDs(d viewstate.Dashboard) []string {
	out := make([]string, 0, len(d.Products))
	for _, p := range d.Products {
		out = append(out, p.ID)
	}
	return out
}

func validDraft() forms.ProductDraft {
	d := forms.NewProductDraft()
	d.Name = "Lion Tee"
	d.Description = "Heavyweight cotton"
	d.Price = "35"
	d.ImageURL = "https://cdn.example.com/lion.png"
	return d
}

func TestLoadFetchesAllVideos(t *testing.T) {
	b := newFakeBackend()
	svc := newTestService(b, DefaultPolicy())

	d := svc.Load(context.Background(), "sid")
	assert.Len(t, d.Products, 2)
	assert.Len(t, d.Lookbook, 1)
	assert.Len(t, d.Videos, 1)
	require.NotNil(t, b.activeOnly)
	assert.False(t, *b.activeOnly)
}

func TestLoadFailureLeavesListEmpty(t *testing.T) {
	b := newFakeBackend()
	b.listErr = errTransport
	svc := newTestService(b, DefaultPolicy())

	d := svc.Load(context.Background(), "sid")
	assert.Empty(t, d.Products)
	assert.Len(t, d.Lookbook, 1)
}

func TestCurrentReusesStoredDashboard(t *testing.T) {
	b := newFakeBackend()
	svc := newTestService(b, DefaultPolicy())

	svc.Current(context.Background(), "sid")
	svc.Current(context.Background(), "sid")
	assert.Equal(t, 1, b.count("ListProducts"))
}

func TestDeleteProductPatchesLocally(t *testing.T) {
	b := newFakeBackend()
	svc := newTestService(b, DefaultPolicy())
	ctx := context.Background()
	svc.Load(ctx, "sid")

	require.NoError(t, svc.DeleteProduct(ctx, "sid", "tok", "p1"))
	assert.Equal(t, 1, b.count("DeleteProduct"))
	assert.Equal(t, "tok", b.lastToken)
	assert.Equal(t, []string{"p2"}, productIDs(svc.Current(ctx, "sid")))
	assert.Equal(t, 1, b.count("ListProducts"), "delete must not refetch")
}

func TestDeleteProductFailureKeepsList(t *testing.T) {
	b := newFakeBackend()
	b.deleteErr = &apiclient.APIError{Status: 500}
	svc := newTestService(b, DefaultPolicy())
	ctx := context.Background()
	svc.Load(ctx, "sid")

	err := svc.DeleteProduct(ctx, "sid", "tok", "p1")
	var delErr *DeleteError
	require.True(t, errors.As(err, &delErr))
	assert.Equal(t, "Error deleting product", delErr.Message())
	assert.Equal(t, 1, b.count("DeleteProduct"))
	assert.Equal(t, []string{"p1", "p2"}, productIDs(svc.Current(ctx, "sid")))
}

func TestDeleteWithRefetchPolicy(t *testing.T) {
	b := newFakeBackend()
	svc := newTestService(b, Policy{Save: Refetch, Delete: Refetch})
	ctx := context.Background()
	svc.Load(ctx, "sid")

	require.NoError(t, svc.DeleteVideo(ctx, "sid", "tok", "v1"))
	assert.Equal(t, 2, b.count("ListVideos"))
}

func TestDeleteMessagesPerKind(t *testing.T) {
	b := newFakeBackend()
	b.deleteErr = errTransport
	svc := newTestService(b, DefaultPolicy())
	ctx := context.Background()

	err := svc.DeleteLookbookItem(ctx, "sid", "tok", "l1")
	assert.EqualError(t, err, "Error deleting lookbook item")
	err = svc.DeleteVideo(ctx, "sid", "tok", "v1")
	assert.EqualError(t, err, "Error deleting video")
}

func TestSaveProductCreatesAndRefetches(t *testing.T) {
	b := newFakeBackend()
	svc := newTestService(b, DefaultPolicy())
	ctx := context.Background()
	svc.Load(ctx, "sid")

	draft := validDraft()
	draft.Sizes = "S, M,  L"
	saved, err := svc.SaveProduct(ctx, "sid", "tok", "", draft)
	require.NoError(t, err)
	assert.Equal(t, "p-new", saved.ID)
	assert.Equal(t, 1, b.count("CreateProduct"))
	assert.Equal(t, 2, b.count("ListProducts"))

	payload := b.lastPayload.(models.ProductPayload)
	assert.Equal(t, []string{"S", "M", "L"}, payload.Sizes)
	assert.Equal(t, 35.0, payload.Price)
	assert.Contains(t, productIDs(svc.Current(ctx, "sid")), "p-new")
}

func TestSaveProductUpdateWithPatchLocal(t *testing.T) {
	b := newFakeBackend()
	svc := newTestService(b, Policy{Save: PatchLocal, Delete: PatchLocal})
	ctx := context.Background()
	svc.Load(ctx, "sid")

	draft := validDraft()
	draft.Name = "Renamed"
	_, err := svc.SaveProduct(ctx, "sid", "tok", "p2", draft)
	require.NoError(t, err)
	assert.Equal(t, 1, b.count("UpdateProduct"))
	assert.Equal(t, 1, b.count("ListProducts"))

	d := svc.Current(ctx, "sid")
	assert.Equal(t, []string{"p1", "p2"}, productIDs(d))
	assert.Equal(t, "Renamed", d.Products[1].Name)
}

func TestSaveProductValidationSkipsNetwork(t *testing.T) {
	b := newFakeBackend()
	svc := newTestService(b, DefaultPolicy())

	draft := validDraft()
	draft.Price = "abc"
	_, err := svc.SaveProduct(context.Background(), "sid", "tok", "", draft)
	var verr *forms.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "price")
	assert.Zero(t, b.count("CreateProduct"))
}

func TestSaveProductFailureMessage(t *testing.T) {
	b := newFakeBackend()
	b.saveErr = &apiclient.APIError{Status: 400, Detail: "Name already taken"}
	svc := newTestService(b, DefaultPolicy())

	_, err := svc.SaveProduct(context.Background(), "sid", "tok", "", validDraft())
	var subErr *SubmitError
	require.True(t, errors.As(err, &subErr))
	assert.Equal(t, "Error saving product: Name already taken", subErr.Message())
}

func TestSaveFailureFallsBackToTransportText(t *testing.T) {
	b := newFakeBackend()
	b.saveErr = errTransport
	svc := newTestService(b, DefaultPolicy())

	_, err := svc.SaveLookbookItem(context.Background(), "sid", "tok", forms.LookbookDraft{
		Title: "Fall", ImageURL: "https://cdn.example.com/fall.jpg",
	})
	assert.EqualError(t, err, "Error saving lookbook item: "+errTransport.Error())
}

func TestSaveVideoKeepsActiveFlag(t *testing.T) {
	b := newFakeBackend()
	svc := newTestService(b, Policy{Save: PatchLocal})
	ctx := context.Background()
	svc.Load(ctx, "sid")

	saved, err := svc.SaveVideo(ctx, "sid", "tok", forms.VideoDraft{
		Title: "Launch", VideoURL: "https://youtu.be/abc123",
	})
	require.NoError(t, err)
	assert.False(t, saved.Active)
	assert.Len(t, svc.Current(ctx, "sid").Videos, 2)
}

func TestForgetDropsState(t *testing.T) {
	b := newFakeBackend()
	svc := newTestService(b, DefaultPolicy())
	ctx := context.Background()
	svc.Load(ctx, "sid")

	svc.Forget(ctx, "sid")
	svc.Current(ctx, "sid")
	assert.Equal(t, 2, b.count("ListProducts"))
}
