package echoportal

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AlainDede/Delphinium-gestion-site/core/access"
	"github.com/AlainDede/Delphinium-gestion-site/core/fetch"
	"github.com/AlainDede/Delphinium-gestion-site/core/gateway"
)

type blogData struct {
	Posts    fetch.Result[gateway.Post]
	Selected *gateway.Post
}

func (s *server) registerBlog() {
	g := s.app.Group(access.Blog.Path(), s.guard(access.Blog))
	g.GET("", s.listPosts)
}

func (s *server) listPosts(ctx echo.Context) error {
	data := &blogData{
		Posts: fetch.Run(ctx.Request().Context(), func(rctx context.Context) ([]gateway.Post, error) {
			return s.deps.API.ListPosts(rctx, contextSession(ctx).AccessToken)
		}),
	}
	if id := ctx.QueryParam("post"); id != "" {
		for i := range data.Posts.Items {
			if data.Posts.Items[i].ID == id {
				data.Selected = &data.Posts.Items[i]
				break
			}
		}
	}
	return s.render(ctx, http.StatusOK, "blog", s.newPage(ctx, access.Blog, data))
}
