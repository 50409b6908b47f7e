package echoportal

import (
	"context"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/AlainDede/Delphinium-gestion-site/core"
	"github.com/AlainDede/Delphinium-gestion-site/core/access"
	"github.com/AlainDede/Delphinium-gestion-site/core/fetch"
	"github.com/AlainDede/Delphinium-gestion-site/core/gateway"
)

type newsgroupData struct {
	Threads  fetch.Result[gateway.Thread]
	Selected *gateway.Thread
	Form     gateway.NewThread
	Reply    gateway.NewReply
}

func (s *server) registerNewsgroup() {
	g := s.app.Group(access.Newsgroup.Path(), s.guard(access.Newsgroup))
	g.GET("", s.listThreads)
	g.POST("/threads", s.createThread)
	g.POST("/threads/:id/replies", s.replyToThread)
}

// newsgroupPage loads the threads and selects the one named `selected`, if any.
func (s *server) newsgroupPage(ctx echo.Context, data *newsgroupData, selected string) *page {
	data.Threads = fetch.Run(ctx.Request().Context(), func(rctx context.Context) ([]gateway.Thread, error) {
		return s.deps.API.ListThreads(rctx, contextSession(ctx).AccessToken)
	})
	if selected != "" {
		for i := range data.Threads.Items {
			if data.Threads.Items[i].ID == selected {
				data.Selected = &data.Threads.Items[i]
				break
			}
		}
	}
	return s.newPage(ctx, access.Newsgroup, data)
}

func (s *server) listThreads(ctx echo.Context) error {
	return s.render(ctx, http.StatusOK, "newsgroup", s.newsgroupPage(ctx, &newsgroupData{}, ctx.QueryParam("thread")))
}

func (s *server) createThread(ctx echo.Context) error {
	var form gateway.NewThread
	if err := ctx.Bind(&form); err != nil {
		return errors.Wrap(err, "binding thread form")
	}
	form.Title, form.Content = core.CleanString(form.Title), core.CleanString(form.Content)

	if err := s.deps.Validate.Struct(form); err != nil {
		p := s.newsgroupPage(ctx, &newsgroupData{Form: form}, "").withErrors("", err)
		return s.render(ctx, http.StatusBadRequest, "newsgroup", p)
	}
	if err := s.deps.API.CreateThread(ctx.Request().Context(), contextSession(ctx).AccessToken, form); err != nil {
		s.deps.Logger.Warn("creating thread", err)
		p := s.newsgroupPage(ctx, &newsgroupData{Form: form}, "").withErrors("action.failed", nil)
		return s.render(ctx, http.StatusBadGateway, "newsgroup", p)
	}
	return ctx.Redirect(http.StatusSeeOther, access.Newsgroup.Path())
}

func (s *server) replyToThread(ctx echo.Context) error {
	id := ctx.Param("id")
	var form gateway.NewReply
	if err := ctx.Bind(&form); err != nil {
		return errors.Wrap(err, "binding reply form")
	}
	form.Content = core.CleanString(form.Content)
	threadPath := access.Newsgroup.Path() + "?thread=" + url.QueryEscape(id)

	if err := s.deps.Validate.Struct(form); err != nil {
		p := s.newsgroupPage(ctx, &newsgroupData{Reply: form}, id).withErrors("", err)
		return s.render(ctx, http.StatusBadRequest, "newsgroup", p)
	}
	if err := s.deps.API.ReplyToThread(ctx.Request().Context(), contextSession(ctx).AccessToken, id, form); err != nil {
		s.deps.Logger.Warn("replying to thread", err)
		p := s.newsgroupPage(ctx, &newsgroupData{Reply: form}, id).withErrors("action.failed", nil)
		return s.render(ctx, http.StatusBadGateway, "newsgroup", p)
	}
	return ctx.Redirect(http.StatusSeeOther, threadPath)
}
