package echoportal

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/AlainDede/Delphinium-gestion-site/core"
	"github.com/AlainDede/Delphinium-gestion-site/core/gateway"
	"github.com/AlainDede/Delphinium-gestion-site/core/session"
)

var (
	errHttpForbidden = echo.NewHTTPError(http.StatusForbidden, "permission denied")
	errHttpNotFound  = echo.NewHTTPError(http.StatusNotFound, "not found")
)

type errorData struct {
	Code    int
	Message string
}

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler rendering an HTML error page.
// Server errors are logged; the process is never taken down, except by a core.shutdown error.
func (s *server) newAppHTTPErrorHandler() echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var msgKey, message string

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			code = origErr.Code
			switch code {
			case http.StatusNotFound, http.StatusMethodNotAllowed:
				msgKey = "error.notfound"
			case http.StatusForbidden:
				msgKey = "denied.title"
			default:
				message, _ = origErr.Message.(string)
			}
		case validator.ValidationErrors, *core.ValidationError:
			code = http.StatusBadRequest
			msgKey = "error.invalid"
		default:
			if errors.Is(err, gateway.ErrRejected) || errors.Is(err, gateway.ErrUnreachable) {
				code = http.StatusBadGateway
				msgKey = "action.failed"
				s.deps.Logger.Warn("remote API call failed", err)
				break
			}
			code = http.StatusInternalServerError
			msgKey = "error.generic"
			msg := http.StatusText(http.StatusInternalServerError)
			s.deps.Logger.Error(msg, errors.Wrap(err, msg), session.DecodeClaims(contextSession(ctx).IdentityToken))

			// shutting down...
			if core.IsShutdown(err) {
				s.opts.ShutdownSignal()
			}
		}

		if ctx.Response().Committed {
			return
		}
		if ctx.Request().Method == http.MethodHead { // Issue #608
			if err = ctx.NoContent(code); err != nil {
				ctx.Echo().Logger.Error(err)
			}
			return
		}

		p := s.newPage(ctx, "", nil)
		if msgKey != "" {
			message = p.T(msgKey)
		}
		if ctx.Echo().Debug {
			message = err.Error()
		}
		if message == "" {
			message = http.StatusText(code)
		}
		p.Title = "error.title"
		p.Data = errorData{Code: code, Message: message}

		if rErr := s.render(ctx, code, "error", p); rErr != nil {
			ctx.Echo().Logger.Error(rErr)
			if err = ctx.String(code, message); err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}
