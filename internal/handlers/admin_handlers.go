package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bklyngarment/storefront/internal/admin"
	"github.com/bklyngarment/storefront/internal/forms"
	"github.com/bklyngarment/storefront/internal/middleware"
	"github.com/bklyngarment/storefront/internal/session"
	"github.com/bklyngarment/storefront/internal/templates/pages"
	"github.com/bklyngarment/storefront/internal/views"
	"github.com/bklyngarment/storefront/internal/viewstate"
)

// LoginInput is the admin login form.
type LoginInput struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// AdminHome renders the login form or, once authenticated, the dashboard with freshly
// fetched lists.
func (h *Handlers) AdminHome(c *gin.Context) {
	gate, ok := middleware.GateFromContext(c)
	if !ok || gate.State() != admin.StateAuthenticated {
		h.loginPage(c, http.StatusOK, views.AdminLogin{})
		return
	}
	d := h.Admin.Load(c.Request.Context(), session.FromContext(c).ID())
	h.dashboard(c, http.StatusOK, d, views.ParseTab(c.Query("tab"), h.Features.VideoShowcase), "")
}

// AdminLogin exchanges the posted credentials for a token.
func (h *Handlers) AdminLogin(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBind(&input); err != nil {
		h.loginPage(c, http.StatusBadRequest,
			views.AdminLogin{Username: input.Username, Error: "Username and password are required"})
		return
	}

	gate, _ := middleware.GateFromContext(c)
	if gate == nil {
		gate = admin.NewGate(h.API, session.FromContext(c), h.Log)
	}
	if err := gate.Login(c.Request.Context(), input.Username, input.Password); err != nil {
		var loginErr *admin.LoginError
		if !errors.As(err, &loginErr) {
			h.Log.WithError(err).Error("admin login failed")
			h.loginPage(c, http.StatusInternalServerError,
				views.AdminLogin{Username: input.Username, Error: admin.DefaultLoginError})
			return
		}
		h.loginPage(c, http.StatusUnauthorized,
			views.AdminLogin{Username: input.Username, Error: loginErr.Message})
		return
	}

	if middleware.WantsJSON(c) {
		c.JSON(http.StatusOK, gin.H{"state": admin.StateAuthenticated})
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin")
}

// AdminLogout forgets the token and the dashboard state. The backend is not told.
func (h *Handlers) AdminLogout(c *gin.Context) {
	sess := session.FromContext(c)
	if id := sess.ID(); id != "" {
		h.Admin.Forget(c.Request.Context(), id)
	}
	gate, ok := middleware.GateFromContext(c)
	if !ok {
		gate = admin.NewGate(h.API, sess, h.Log)
	}
	if err := gate.Logout(); err != nil {
		h.Log.WithError(err).Error("failed to clear admin session")
	}
	if middleware.WantsJSON(c) {
		c.JSON(http.StatusOK, gin.H{"state": admin.StateUnauthenticated})
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin")
}

func (h *Handlers) loginPage(c *gin.Context, status int, page views.AdminLogin) {
	h.render(c, status, page, pages.AdminLogin(page))
}

func (h *Handlers) dashboard(c *gin.Context, status int, d viewstate.Dashboard, tab views.AdminTab, alert string) {
	page := views.NewAdminDashboard(d, tab, alert, h.Features.VideoShowcase)
	h.render(c, status, page, pages.AdminDashboard(page))
}

// currentDashboard renders the session's stored lists without refetching them.
func (h *Handlers) currentDashboard(c *gin.Context, status int, tab views.AdminTab, alert string) {
	d := h.Admin.Current(c.Request.Context(), session.FromContext(c).ID())
	h.dashboard(c, status, d, tab, alert)
}

func (h *Handlers) backToTab(c *gin.Context, tab views.AdminTab) {
	if middleware.WantsJSON(c) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin?tab="+string(tab))
}

// sessionAndToken returns what every admin mutation needs. RequireAdmin guarantees the token.
func sessionAndToken(c *gin.Context) (string, string) {
	sess := session.FromContext(c)
	token, _ := sess.Token()
	return sess.ID(), token
}

// --- Products ---

// NewProduct renders the empty product form.
func (h *Handlers) NewProduct(c *gin.Context) {
	h.productForm(c, http.StatusOK, views.NewProductForm("", forms.NewProductDraft()))
}

// EditProduct renders the product form seeded from the product.
func (h *Handlers) EditProduct(c *gin.Context) {
	id := c.Param("id")
	sid, _ := sessionAndToken(c)
	product, ok := h.Admin.Product(c.Request.Context(), sid, id)
	if !ok {
		p, err := h.API.GetProduct(c.Request.Context(), id)
		if err != nil {
			h.notFound(c, http.StatusNotFound, "Product not found")
			return
		}
		product = *p
	}
	h.productForm(c, http.StatusOK, views.NewProductForm(id, forms.ProductDraftFrom(product)))
}

// CreateProduct handles POST /admin/products.
func (h *Handlers) CreateProduct(c *gin.Context) {
	h.saveProduct(c, "")
}

// UpdateProduct handles POST /admin/products/:id.
func (h *Handlers) UpdateProduct(c *gin.Context) {
	h.saveProduct(c, c.Param("id"))
}

func (h *Handlers) saveProduct(c *gin.Context, id string) {
	var draft forms.ProductDraft
	if err := c.ShouldBind(&draft); err != nil {
		h.Log.WithError(err).Warn("failed to bind product form")
		form := views.NewProductForm(id, draft)
		form.Errors = forms.BindErrors(err, c.Request.PostForm, forms.ProductCheckboxes...)
		h.productForm(c, http.StatusUnprocessableEntity, form)
		return
	}
	sid, token := sessionAndToken(c)
	_, err := h.Admin.SaveProduct(c.Request.Context(), sid, token, id, draft)
	if err != nil {
		form := views.NewProductForm(id, draft)
		status := applyFormError(err, &form.Errors, &form.Alert)
		h.productForm(c, status, form)
		return
	}
	h.backToTab(c, views.TabProducts)
}

func (h *Handlers) productForm(c *gin.Context, status int, form views.ProductForm) {
	h.render(c, status, form, pages.ProductForm(form))
}

// ConfirmDeleteProduct asks before deleting.
func (h *Handlers) ConfirmDeleteProduct(c *gin.Context) {
	id := c.Param("id")
	sid, _ := sessionAndToken(c)
	name := ""
	if p, ok := h.Admin.Product(c.Request.Context(), sid, id); ok {
		name = p.Name
	}
	h.confirmDelete(c, views.ConfirmDelete{
		Kind:   string(admin.KindProduct),
		Name:   name,
		Action: "/admin/products/" + id + "/delete",
		Back:   "/admin?tab=products",
	})
}

// DeleteProduct handles the confirmed delete.
func (h *Handlers) DeleteProduct(c *gin.Context) {
	h.deleteConfirmed(c, views.TabProducts, func(sid, token string) error {
		return h.Admin.DeleteProduct(c.Request.Context(), sid, token, c.Param("id"))
	})
}

// --- Lookbook ---

// NewLookbookItem renders the empty lookbook form.
func (h *Handlers) NewLookbookItem(c *gin.Context) {
	h.lookbookForm(c, http.StatusOK, views.LookbookForm{})
}

// CreateLookbookItem handles POST /admin/lookbook.
func (h *Handlers) CreateLookbookItem(c *gin.Context) {
	var draft forms.LookbookDraft
	if err := c.ShouldBind(&draft); err != nil {
		h.Log.WithError(err).Warn("failed to bind lookbook form")
		h.lookbookForm(c, http.StatusUnprocessableEntity, views.LookbookForm{
			Draft:  draft,
			Errors: forms.BindErrors(err, c.Request.PostForm),
		})
		return
	}
	sid, token := sessionAndToken(c)
	if _, err := h.Admin.SaveLookbookItem(c.Request.Context(), sid, token, draft); err != nil {
		form := views.LookbookForm{Draft: draft}
		status := applyFormError(err, &form.Errors, &form.Alert)
		h.lookbookForm(c, status, form)
		return
	}
	h.backToTab(c, views.TabLookbook)
}

func (h *Handlers) lookbookForm(c *gin.Context, status int, form views.LookbookForm) {
	h.render(c, status, form, pages.LookbookForm(form))
}

// ConfirmDeleteLookbookItem asks before deleting.
func (h *Handlers) ConfirmDeleteLookbookItem(c *gin.Context) {
	id := c.Param("id")
	h.confirmDelete(c, views.ConfirmDelete{
		Kind:   string(admin.KindLookbook),
		Action: "/admin/lookbook/" + id + "/delete",
		Back:   "/admin?tab=lookbook",
	})
}

// DeleteLookbookItem handles the confirmed delete.
func (h *Handlers) DeleteLookbookItem(c *gin.Context) {
	h.deleteConfirmed(c, views.TabLookbook, func(sid, token string) error {
		return h.Admin.DeleteLookbookItem(c.Request.Context(), sid, token, c.Param("id"))
	})
}

// --- Videos ---

// NewVideo renders the empty video form.
func (h *Handlers) NewVideo(c *gin.Context) {
	h.videoForm(c, http.StatusOK, views.VideoForm{Draft: forms.NewVideoDraft()})
}

// CreateVideo handles POST /admin/videos.
func (h *Handlers) CreateVideo(c *gin.Context) {
	var draft forms.VideoDraft
	if err := c.ShouldBind(&draft); err != nil {
		h.Log.WithError(err).Warn("failed to bind video form")
		h.videoForm(c, http.StatusUnprocessableEntity, views.VideoForm{
			Draft:  draft,
			Errors: forms.BindErrors(err, c.Request.PostForm, forms.VideoCheckboxes...),
		})
		return
	}
	sid, token := sessionAndToken(c)
	if _, err := h.Admin.SaveVideo(c.Request.Context(), sid, token, draft); err != nil {
		form := views.VideoForm{Draft: draft}
		status := applyFormError(err, &form.Errors, &form.Alert)
		h.videoForm(c, status, form)
		return
	}
	h.backToTab(c, views.TabVideos)
}

func (h *Handlers) videoForm(c *gin.Context, status int, form views.VideoForm) {
	h.render(c, status, form, pages.VideoForm(form))
}

// ConfirmDeleteVideo asks before deleting.
func (h *Handlers) ConfirmDeleteVideo(c *gin.Context) {
	id := c.Param("id")
	h.confirmDelete(c, views.ConfirmDelete{
		Kind:   string(admin.KindVideo),
		Action: "/admin/videos/" + id + "/delete",
		Back:   "/admin?tab=videos",
	})
}

// DeleteVideo handles the confirmed delete.
func (h *Handlers) DeleteVideo(c *gin.Context) {
	h.deleteConfirmed(c, views.TabVideos, func(sid, token string) error {
		return h.Admin.DeleteVideo(c.Request.Context(), sid, token, c.Param("id"))
	})
}

func (h *Handlers) confirmDelete(c *gin.Context, page views.ConfirmDelete) {
	h.render(c, http.StatusOK, page, pages.ConfirmDelete(page))
}

// deleteConfirmed sends the delete only when the form carried confirm=yes. Either way the
// response is the session's dashboard as the list policy left it: patched locally or
// refetched after a success, untouched with an alert after a failure.
func (h *Handlers) deleteConfirmed(c *gin.Context, tab views.AdminTab, del func(sid, token string) error) {
	if c.PostForm("confirm") != "yes" {
		if middleware.WantsJSON(c) {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "confirmation required"})
			return
		}
		c.Redirect(http.StatusSeeOther, "/admin?tab="+string(tab))
		return
	}
	sid, token := sessionAndToken(c)
	if err := del(sid, token); err != nil {
		var delErr *admin.DeleteError
		alert := err.Error()
		if errors.As(err, &delErr) {
			alert = delErr.Message()
		}
		h.currentDashboard(c, http.StatusBadGateway, tab, alert)
		return
	}
	h.currentDashboard(c, http.StatusOK, tab, "")
}

// applyFormError fills the form's field errors or alert and returns the status to answer with.
func applyFormError(err error, fields *forms.FieldErrors, alert *string) int {
	var verr *forms.ValidationError
	if errors.As(err, &verr) {
		*fields = verr.Fields
		return http.StatusUnprocessableEntity
	}
	var subErr *admin.SubmitError
	if errors.As(err, &subErr) {
		*alert = subErr.Message()
		return http.StatusBadGateway
	}
	*alert = err.Error()
	return http.StatusInternalServerError
}
