package echoportal

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/AlainDede/Delphinium-gestion-site/core/access"
	"github.com/AlainDede/Delphinium-gestion-site/core/calendar"
	"github.com/AlainDede/Delphinium-gestion-site/core/fetch"
	"github.com/AlainDede/Delphinium-gestion-site/core/gateway"
)

type calendarData struct {
	Month  calendar.Month
	Prev   calendar.Month
	Next   calendar.Month
	Today  calendar.Month
	Days   []int
	Weeks  [][]calendar.Day
	Events fetch.Result[gateway.Event]
}

// MonthKey is the message key of the displayed month name.
func (d calendarData) MonthKey() string {
	return "calendar.month." + strconv.Itoa(int(d.Month.Month))
}

func (s *server) registerCalendar() {
	g := s.app.Group(access.Calendar.Path(), s.guard(access.Calendar))
	g.GET("", s.showCalendar)
}

func (s *server) showCalendar(ctx echo.Context) error {
	now := s.opts.Now()
	today := calendar.MonthOf(now)
	year, _ := strconv.Atoi(ctx.QueryParam("year"))
	month, _ := strconv.Atoi(ctx.QueryParam("month"))
	m := calendar.Parse(year, month, today)

	events := fetch.Run(ctx.Request().Context(), func(rctx context.Context) ([]gateway.Event, error) {
		return s.deps.API.ListEvents(rctx, contextSession(ctx).AccessToken, m.Year, int(m.Month))
	})
	data := calendarData{
		Month:  m,
		Prev:   m.Prev(),
		Next:   m.Next(),
		Today:  today,
		Days:   []int{0, 1, 2, 3, 4, 5, 6},
		Weeks:  calendar.Weeks(calendar.Grid(m, events.Items, now)),
		Events: events,
	}
	return s.render(ctx, http.StatusOK, "calendar", s.newPage(ctx, access.Calendar, data))
}
