package echoportal

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/AlainDede/Delphinium-gestion-site/core"
	"github.com/AlainDede/Delphinium-gestion-site/core/access"
	"github.com/AlainDede/Delphinium-gestion-site/core/fetch"
	"github.com/AlainDede/Delphinium-gestion-site/core/gateway"
)

type incidentsData struct {
	Incidents  fetch.Result[gateway.Incident]
	Form       gateway.NewIncident
	Priorities []string
	Statuses   []string
}

func (s *server) registerIncidents() {
	g := s.app.Group(access.Incidents.Path(), s.guard(access.Incidents))
	g.GET("", s.listIncidents)
	g.POST("", s.createIncident)
	// HTML forms cannot PUT
	g.POST("/:id/status", s.updateIncidentStatus)
}

func (s *server) incidentsPage(ctx echo.Context, form gateway.NewIncident) *page {
	form.Defaults()
	data := &incidentsData{
		Incidents: fetch.Run(ctx.Request().Context(), func(rctx context.Context) ([]gateway.Incident, error) {
			return s.deps.API.ListIncidents(rctx, contextSession(ctx).AccessToken)
		}),
		Form:       form,
		Priorities: gateway.Priorities,
		Statuses:   gateway.Statuses,
	}
	return s.newPage(ctx, access.Incidents, data)
}

func (s *server) listIncidents(ctx echo.Context) error {
	return s.render(ctx, http.StatusOK, "incidents", s.incidentsPage(ctx, gateway.NewIncident{}))
}

func (s *server) createIncident(ctx echo.Context) error {
	var form gateway.NewIncident
	if err := ctx.Bind(&form); err != nil {
		return errors.Wrap(err, "binding incident form")
	}
	form.Title, form.Description = core.CleanString(form.Title), core.CleanString(form.Description)
	form.Priority, form.Status = core.CleanString(form.Priority, true), core.CleanString(form.Status, true)
	form.Defaults()

	if err := s.deps.Validate.Struct(form); err != nil {
		return s.render(ctx, http.StatusBadRequest, "incidents", s.incidentsPage(ctx, form).withErrors("", err))
	}
	if err := s.deps.API.CreateIncident(ctx.Request().Context(), contextSession(ctx).AccessToken, form); err != nil {
		s.deps.Logger.Warn("creating incident", err)
		return s.render(ctx, http.StatusBadGateway, "incidents", s.incidentsPage(ctx, form).withErrors("action.failed", nil))
	}
	return ctx.Redirect(http.StatusSeeOther, access.Incidents.Path())
}

func (s *server) updateIncidentStatus(ctx echo.Context) error {
	var form gateway.StatusUpdate
	if err := ctx.Bind(&form); err != nil {
		return errors.Wrap(err, "binding status form")
	}
	form.Status = core.CleanString(form.Status, true)

	if err := s.deps.Validate.Struct(form); err != nil {
		return s.render(ctx, http.StatusBadRequest, "incidents", s.incidentsPage(ctx, gateway.NewIncident{}).withErrors("error.invalid", err))
	}
	if err := s.deps.API.UpdateIncidentStatus(ctx.Request().Context(), contextSession(ctx).AccessToken, ctx.Param("id"), form.Status); err != nil {
		s.deps.Logger.Warn("updating incident", err)
		return s.render(ctx, http.StatusBadGateway, "incidents", s.incidentsPage(ctx, gateway.NewIncident{}).withErrors("action.failed", nil))
	}
	return ctx.Redirect(http.StatusSeeOther, access.Incidents.Path())
}
