package echoportal

import (
	"context"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/AlainDede/Delphinium-gestion-site/core"
	"github.com/AlainDede/Delphinium-gestion-site/core/access"
	"github.com/AlainDede/Delphinium-gestion-site/core/fetch"
	"github.com/AlainDede/Delphinium-gestion-site/core/gateway"
	"github.com/AlainDede/Delphinium-gestion-site/core/library"
)

const (
	uploadPath    = "/documentation/upload"
	maxUploadSize = "25M"
)

// uploadLimit bounds the upload body before any middleware parses the form.
func uploadLimit() echo.MiddlewareFunc {
	return middleware.BodyLimitWithConfig(middleware.BodyLimitConfig{
		Skipper: func(ctx echo.Context) bool {
			return strings.TrimSuffix(ctx.Request().URL.Path, "/") != uploadPath
		},
		Limit: maxUploadSize,
	})
}

type documentationData struct {
	Documents fetch.Result[gateway.Document]
	Groups    []library.Group
	Search    string
	Form      gateway.DocumentMetadata
}

func (s *server) registerDocumentation() {
	g := s.app.Group(access.Documentation.Path(), s.guard(access.Documentation))
	g.GET("", s.listDocuments)
	g.GET("/:id/download", s.downloadDocument)
	g.POST(strings.TrimPrefix(uploadPath, access.Documentation.Path()), s.uploadDocument, s.permit(access.UploadDocument))
}

func (s *server) documentationPage(ctx echo.Context, search string, form gateway.DocumentMetadata) *page {
	data := &documentationData{
		Documents: fetch.Run(ctx.Request().Context(), func(rctx context.Context) ([]gateway.Document, error) {
			return s.deps.API.ListDocuments(rctx, contextSession(ctx).AccessToken)
		}),
		Search: search,
		Form:   form,
	}
	p := s.newPage(ctx, access.Documentation, data)
	data.Groups = library.GroupByCategory(library.Filter(data.Documents.Items, search), p.T("docs.uncategorized"))
	return p
}

func (s *server) listDocuments(ctx echo.Context) error {
	return s.render(ctx, http.StatusOK, "documentation", s.documentationPage(ctx, ctx.QueryParam("q"), gateway.DocumentMetadata{}))
}

// downloadDocument hands the browser over to the storage URL returned by the API.
func (s *server) downloadDocument(ctx echo.Context) error {
	u, err := s.deps.API.DownloadURL(ctx.Request().Context(), contextSession(ctx).AccessToken, ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "getting download URL")
	}
	return ctx.Redirect(http.StatusFound, u)
}

func (s *server) uploadDocument(ctx echo.Context) error {
	var form gateway.DocumentMetadata
	if err := ctx.Bind(&form); err != nil {
		return errors.Wrap(err, "binding document form")
	}
	form.Name = core.CleanString(form.Name)
	form.Category = core.CleanString(form.Category)
	form.Description = core.CleanString(form.Description)

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		fErr := core.NewValidationError(err, core.FieldError{Field: "file", Error: core.Translate(s.translator(ctx), "field.required")})
		return s.render(ctx, http.StatusBadRequest, "documentation", s.documentationPage(ctx, "", form).withErrors("", fErr))
	}
	if form.Name == "" {
		form.Name = core.CleanString(fileHeader.Filename)
	}
	if err = s.deps.Validate.Struct(form); err != nil {
		return s.render(ctx, http.StatusBadRequest, "documentation", s.documentationPage(ctx, "", form).withErrors("", err))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "opening uploaded file")
	}
	defer func() { _ = file.Close() }()

	contentType := fileHeader.Header.Get(echo.HeaderContentType)
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(fileHeader.Filename))
	}
	token := contextSession(ctx).AccessToken
	if err = s.deps.API.Upload(ctx.Request().Context(), token, fileHeader.Filename, contentType, fileHeader.Size, file, form); err != nil {
		s.deps.Logger.Warn("uploading document", err)
		return s.render(ctx, http.StatusBadGateway, "documentation", s.documentationPage(ctx, "", form).withErrors("action.failed", nil))
	}
	return ctx.Redirect(http.StatusSeeOther, access.Documentation.Path())
}
