package follwit

import (
	"context"
	"time"
)

const (
	defaultLocale       = "en"
	defaultCalendarDays = 7
	defaultTrendLimit   = 20
)

// PopularEpisodes returns the popular episodes airing between start and end. A zero
// start means today, a zero end means a week after start and an empty locale means "en".
func (c *Client) PopularEpisodes(ctx context.Context, start, end time.Time, locale string) ([]Episode, error) {
	start, end, err := c.calendarRange(start, end)
	if err != nil {
		return nil, err
	}
	params := []string{start.Format(DateLayout), end.Format(DateLayout), localeOrDefault(locale)}
	return getList[Episode](ctx, c, getCalendarPopular, params)
}

// FollowingCalendar returns the episodes of shows the session user follows airing
// between start and end. Defaults are those of PopularEpisodes.
func (c *Client) FollowingCalendar(ctx context.Context, start, end time.Time, locale string) ([]Episode, error) {
	start, end, err := c.calendarRange(start, end)
	if err != nil {
		return nil, err
	}
	req := calendarRequest{
		credentials: c.stamp(),
		StartDate:   wireDate(start),
		EndDate:     wireDate(end),
		Locale:      localeOrDefault(locale),
	}
	return postList[Episode](ctx, c, postCalendarFollowing, req)
}

func (c *Client) calendarRange(start, end time.Time) (time.Time, time.Time, error) {
	if start.IsZero() {
		now := c.now()
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}
	if end.IsZero() {
		end = start.AddDate(0, 0, defaultCalendarDays)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, argumentError("endDate", "must not be before the start date")
	}
	return start, end, nil
}

func localeOrDefault(locale string) string {
	if locale == "" {
		return defaultLocale
	}
	return locale
}

func limitOrDefault(limit int) int {
	if limit <= 0 {
		return defaultTrendLimit
	}
	return limit
}
