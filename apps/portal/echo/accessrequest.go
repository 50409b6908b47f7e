package echoportal

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/AlainDede/Delphinium-gestion-site/core/access"
	"github.com/AlainDede/Delphinium-gestion-site/core/accessrequest"
)

const (
	actionNext   = "next"
	actionBack   = "back"
	actionSubmit = "submit"
)

type accessRequestData struct {
	Form  accessrequest.Form
	Steps []accessrequest.Step
	Sent  bool
}

func (s *server) registerAccessRequest() {
	// reachable before login
	g := s.app.Group(access.AccessRequest.Path(), s.guard(access.AccessRequest))
	g.GET("", s.showAccessRequest)
	g.POST("", s.stepAccessRequest)
}

func (s *server) accessRequestPage(ctx echo.Context, data accessRequestData) *page {
	data.Steps = accessrequest.Steps
	return s.newPage(ctx, access.AccessRequest, data)
}

func (s *server) showAccessRequest(ctx echo.Context) error {
	return s.render(ctx, http.StatusOK, "access_request", s.accessRequestPage(ctx, accessRequestData{Form: accessrequest.New()}))
}

// stepAccessRequest moves the form between steps. Only the final step submits, once.
func (s *server) stepAccessRequest(ctx echo.Context) error {
	var form accessrequest.Form
	if err := ctx.Bind(&form); err != nil {
		return errors.Wrap(err, "binding access request form")
	}
	form.Clean()

	switch ctx.FormValue("action") {
	case actionBack:
		form.Back()
	case actionSubmit:
		if err := form.Ready(s.deps.Validate); err != nil {
			p := s.accessRequestPage(ctx, accessRequestData{Form: form}).withErrors("access.stepIncomplete", err)
			return s.render(ctx, http.StatusBadRequest, "access_request", p)
		}
		if err := s.deps.API.SubmitAccessRequest(ctx.Request().Context(), form.Submission()); err != nil {
			s.deps.Logger.Warn("submitting access request", err)
			p := s.accessRequestPage(ctx, accessRequestData{Form: form}).withErrors("access.failed", nil)
			return s.render(ctx, http.StatusBadGateway, "access_request", p)
		}
		return s.render(ctx, http.StatusOK, "access_request", s.accessRequestPage(ctx, accessRequestData{Form: form, Sent: true}))
	default:
		if err := form.Next(s.deps.Validate); err != nil {
			p := s.accessRequestPage(ctx, accessRequestData{Form: form}).withErrors("access.stepIncomplete", err)
			return s.render(ctx, http.StatusBadRequest, "access_request", p)
		}
	}
	return s.render(ctx, http.StatusOK, "access_request", s.accessRequestPage(ctx, accessRequestData{Form: form}))
}
