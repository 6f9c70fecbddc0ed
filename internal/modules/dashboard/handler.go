package dashboard

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	board "github.com/nfrund/portview/internal/dashboard"
	"github.com/nfrund/portview/internal/domain"
	"github.com/nfrund/portview/internal/middleware"
	"github.com/nfrund/portview/internal/modules/dashboard/view"
	gview "github.com/nfrund/portview/internal/view"
	"github.com/nfrund/portview/internal/workspace"
	"github.com/nfrund/portview/web/src/templates/layouts"
)

// Handler serves the dashboard page and its actions.
//
// Every action answers an htmx request with out-of-band fragments for the
// panels it changed, and a plain form post with a redirect to the page. A
// lookup miss or a missing id is a no-op: 204 No Content for htmx, which
// leaves the page untouched, or a redirect without a flash message.
type Handler struct{}

// NewHandler creates a new Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Page renders the full dashboard.
func (h *Handler) Page(c echo.Context) error {
	d, err := current(c)
	if err != nil {
		return err
	}

	data := view.FromSnapshot(d.Snapshot())
	flash := gview.GetFlashData(c)
	page := layouts.Base("Dashboard", flash, view.Dashboard(data))
	return c.Render(http.StatusOK, "", page)
}

// SelectUser makes a user the selected one and shows its profile and
// portfolio.
func (h *Handler) SelectUser(c echo.Context) error {
	d, err := current(c)
	if err != nil {
		return err
	}

	id := domain.UserID(pathParam(c, "id"))
	if _, err := d.Select(id); err != nil {
		return h.noop(c, err)
	}
	return h.respond(c, d, view.PanelForm, view.PanelPortfolio)
}

// ViewStock displays the details of a stock.
func (h *Handler) ViewStock(c echo.Context) error {
	d, err := current(c)
	if err != nil {
		return err
	}

	if _, err := d.ViewStock(pathParam(c, "symbol")); err != nil {
		return h.noop(c, err)
	}
	return h.respond(c, d, view.PanelStock)
}

// SaveUser overwrites the profile fields of the user named by the form.
func (h *Handler) SaveUser(c echo.Context) error {
	d, err := current(c)
	if err != nil {
		return err
	}

	var req SaveUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed form")
	}
	if err := c.Validate(&req); err != nil {
		return h.noop(c, err)
	}

	saved, err := d.Save(c.Request().Context(), domain.UserID(req.ID), req.Profile())
	if err != nil {
		return h.noop(c, err)
	}
	if !isHTMX(c) {
		gview.SetFlashSuccess(c, "Saved "+saved.Label())
	}
	return h.respond(c, d, view.PanelUsers, view.PanelForm, view.PanelPortfolio)
}

// DeleteUser removes the user named by the form and clears the selection.
func (h *Handler) DeleteUser(c echo.Context) error {
	d, err := current(c)
	if err != nil {
		return err
	}

	var req DeleteUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed form")
	}
	if err := c.Validate(&req); err != nil {
		return h.noop(c, err)
	}

	if err := d.Delete(c.Request().Context(), domain.UserID(req.ID)); err != nil {
		return h.noop(c, err)
	}
	if !isHTMX(c) {
		gview.SetFlashSuccess(c, "Deleted user "+req.ID)
	}
	return h.respond(c, d, view.PanelUsers, view.PanelForm, view.PanelPortfolio)
}

// respond renders the changed panels for htmx, or redirects to the page.
func (h *Handler) respond(c echo.Context, d *board.Dashboard, panels ...view.Panel) error {
	if !isHTMX(c) {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	data := view.FromSnapshot(d.Snapshot())
	return c.Render(http.StatusOK, "", view.Fragments(data, panels...))
}

func (h *Handler) noop(c echo.Context, cause error) error {
	if !errors.Is(cause, domain.ErrUserNotFound) && !errors.Is(cause, domain.ErrStockNotFound) {
		middleware.FromContext(c.Request().Context()).Debug("ignoring incomplete request", "error", cause)
	}
	if isHTMX(c) {
		return c.NoContent(http.StatusNoContent)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func current(c echo.Context) (*board.Dashboard, error) {
	d, ok := workspace.FromContext(c)
	if !ok {
		return nil, errors.New("no workspace attached to request")
	}
	return d, nil
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

// pathParam returns the decoded value of a path parameter. net/http has
// already decoded the path unless the request carries a distinct raw path
// (an escaped "/" for instance), in which case echo routes on the raw path and
// the parameter is still escaped.
func pathParam(c echo.Context, name string) string {
	v := c.Param(name)
	if c.Request().URL.RawPath == "" {
		return v
	}
	if unescaped, err := url.PathUnescape(v); err == nil {
		return unescaped
	}
	return v
}
