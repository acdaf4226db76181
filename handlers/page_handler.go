package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Abdulwakil1/Creatorverse/core"
	"github.com/Abdulwakil1/Creatorverse/models"
	"github.com/Abdulwakil1/Creatorverse/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PageHandler serves the server-rendered pages: home, listing, detail and
// the add/edit/delete forms.
type PageHandler struct {
	svc services.CreatorService
	log *zap.Logger
}

func NewPageHandler(svc services.CreatorService, log *zap.Logger) *PageHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &PageHandler{svc: svc, log: log.Named("pages")}
}

// page is the data every template receives.
type page struct {
	Title    string
	Notice   string // one-shot message carried over a redirect
	Error    string
	Action   string // form target
	Creators []models.CreatorView
	Creator  *models.CreatorView
	Form     models.Creator
}

func (h *PageHandler) render(c *gin.Context, status int, name string, p page) {
	if p.Notice == "" {
		p.Notice = c.Query("notice")
	}
	c.HTML(status, name, p)
}

func redirectWithNotice(c *gin.Context, path, notice string) {
	c.Redirect(http.StatusSeeOther, path+"?notice="+url.QueryEscape(notice))
}

// formMessage is the text shown above a form that failed to submit, and the
// status the page is rendered with.
func formMessage(err error) (int, string) {
	var fe *core.FieldError
	switch {
	case errors.As(err, &fe):
		return http.StatusBadRequest, fe.Message
	case errors.Is(err, services.ErrNameRequired):
		return http.StatusBadRequest, "Name is required."
	default:
		return http.StatusInternalServerError, "Something went wrong. Please try again."
	}
}

func (h *PageHandler) listing(c *gin.Context, name, title string) {
	list, err := h.svc.ListCreatorViews(c.Request.Context())
	if err != nil {
		h.log.Error("load creators", zap.Error(err))
		h.render(c, http.StatusInternalServerError, name, page{Title: title, Error: "Failed to load creators."})
		return
	}
	h.render(c, http.StatusOK, name, page{Title: title, Creators: list.Items})
}

// Home handles GET /.
func (h *PageHandler) Home(c *gin.Context) { h.listing(c, "home.html", "") }

// Creators handles GET /creators.
func (h *PageHandler) Creators(c *gin.Context) { h.listing(c, "creators.html", "All creators") }

// NewCreator handles GET /creators/add.
func (h *PageHandler) NewCreator(c *gin.Context) {
	h.render(c, http.StatusOK, "creator_form.html", page{Title: "Add a creator", Action: "/creators/add"})
}

// CreateCreator handles POST /creators/add. Social fields are validated in
// order and the first failure is shown with the submitted values kept.
func (h *PageHandler) CreateCreator(c *gin.Context) {
	var req models.CreateCreatorRequest
	bindErr := c.ShouldBind(&req)
	form := page{Title: "Add a creator", Action: "/creators/add", Form: *req.ToCreator()}
	if bindErr != nil {
		form.Error = "Name is required."
		h.render(c, http.StatusBadRequest, "creator_form.html", form)
		return
	}

	created, err := h.svc.CreateCreator(c.Request.Context(), req)
	if err != nil {
		status, msg := formMessage(err)
		form.Error = msg
		h.render(c, status, "creator_form.html", form)
		return
	}
	redirectWithNotice(c, "/", fmt.Sprintf("%s added successfully.", created.Name))
}

// ViewCreator handles GET /creators/view/:id.
func (h *PageHandler) ViewCreator(c *gin.Context) {
	id, err := parseUint(c.Param("id"))
	if err != nil {
		h.render(c, http.StatusNotFound, "creator_view.html", page{Error: "Creator not found."})
		return
	}
	v, err := h.svc.ViewCreator(c.Request.Context(), id)
	switch {
	case errors.Is(err, services.ErrCreatorNotFound):
		h.render(c, http.StatusNotFound, "creator_view.html", page{Error: "Creator not found."})
	case err != nil:
		h.log.Error("load creator", zap.Uint("creator_id", id), zap.Error(err))
		h.render(c, http.StatusInternalServerError, "creator_view.html", page{Error: "Failed to load creator."})
	default:
		h.render(c, http.StatusOK, "creator_view.html", page{Title: v.Name, Creator: v})
	}
}

// EditCreator handles GET /creators/edit/:id. Unknown ids go back home.
func (h *PageHandler) EditCreator(c *gin.Context) {
	id, err := parseUint(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	cr, err := h.svc.GetCreator(c.Request.Context(), id)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	h.render(c, http.StatusOK, "creator_form.html", page{
		Title:  "Edit " + cr.Name,
		Action: fmt.Sprintf("/creators/edit/%d", id),
		Form:   *cr,
	})
}

// UpdateCreator handles POST /creators/edit/:id.
func (h *PageHandler) UpdateCreator(c *gin.Context) {
	id, err := parseUint(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	var req models.UpdateCreatorRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Redirect(http.StatusSeeOther, fmt.Sprintf("/creators/edit/%d", id))
		return
	}

	updated, err := h.svc.UpdateCreator(c.Request.Context(), id, req)
	if errors.Is(err, services.ErrCreatorNotFound) {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	if err != nil {
		// show the stored record with the rejected edits applied
		form := models.Creator{ID: id}
		if cur, getErr := h.svc.GetCreator(c.Request.Context(), id); getErr == nil {
			form = *cur
		}
		req.ApplyTo(&form)
		status, msg := formMessage(err)
		h.render(c, status, "creator_form.html", page{
			Title:  "Edit " + form.Name,
			Action: fmt.Sprintf("/creators/edit/%d", id),
			Error:  msg,
			Form:   form,
		})
		return
	}
	redirectWithNotice(c, fmt.Sprintf("/creators/view/%d", id), fmt.Sprintf("%s updated successfully.", updated.Name))
}

// ConfirmDelete handles GET /creators/delete/:id.
func (h *PageHandler) ConfirmDelete(c *gin.Context) {
	v, ok := h.loadForDelete(c)
	if !ok {
		return
	}
	h.render(c, http.StatusOK, "creator_delete.html", page{Title: "Delete " + v.Name, Creator: v})
}

// DeleteCreator handles POST /creators/delete/:id.
func (h *PageHandler) DeleteCreator(c *gin.Context) {
	v, ok := h.loadForDelete(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteCreator(c.Request.Context(), v.ID); err != nil && !errors.Is(err, services.ErrCreatorNotFound) {
		h.log.Error("delete creator", zap.Uint("creator_id", v.ID), zap.Error(err))
		h.render(c, http.StatusInternalServerError, "creator_delete.html", page{
			Title:   "Delete " + v.Name,
			Creator: v,
			Error:   "Failed to delete creator. Please try again.",
		})
		return
	}
	redirectWithNotice(c, "/", fmt.Sprintf("%s was deleted successfully.", v.Name))
}

// loadForDelete fetches the record named in the dialog. Missing records
// redirect home and report !ok.
func (h *PageHandler) loadForDelete(c *gin.Context) (*models.CreatorView, bool) {
	id, err := parseUint(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return nil, false
	}
	v, err := h.svc.ViewCreator(c.Request.Context(), id)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return nil, false
	}
	return v, true
}
