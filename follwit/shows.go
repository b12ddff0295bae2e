package follwit

import (
	"context"
	"strconv"
	"strings"
)

// ShowDetails returns a show, optionally with its episodes. Unlike the show mutations,
// the summary endpoint also looks shows up by IMDb id, so id is passed through as a string.
func (c *Client) ShowDetails(ctx context.Context, kind ShowIdentification, showID string, includeEpisodes bool) (*Show, error) {
	showID = strings.TrimSpace(showID)
	if showID == "" {
		return nil, argumentError("showId", "cannot be empty")
	}
	if _, ok := showIdentificationTokens.tokens[kind]; !ok {
		return nil, argumentError("identificationType", "unknown show identification")
	}
	params := []string{kind.String(), showID, strconv.FormatBool(includeEpisodes)}
	return getObject[Show](ctx, c, getShowSummary, params)
}

// TrendingShows returns the shows trending over interval. A non-positive limit means 20.
func (c *Client) TrendingShows(ctx context.Context, interval TimeInterval, locale string, limit int) ([]Show, error) {
	if _, ok := timeIntervalTokens.tokens[interval]; !ok {
		return nil, argumentError("interval", "unknown time interval")
	}
	params := []string{interval.String(), localeOrDefault(locale), strconv.Itoa(limitOrDefault(limit))}
	return getList[Show](ctx, c, getShowTrending, params)
}

// RecommendedShows returns show recommendations for the session user.
func (c *Client) RecommendedShows(ctx context.Context, genres ...Genre) ([]Show, error) {
	req := recommendationRequest{credentials: c.stamp(), Genres: joinGenres(genres)}
	return postList[Show](ctx, c, postShowRecommendations, req)
}

func (c *Client) AddShowToList(ctx context.Context, show *Show, listID string) (bool, error) {
	if listID == "" {
		return false, argumentError("listId", "cannot be empty")
	}
	kind, id, err := IdentifyShow(show)
	if err != nil {
		return false, err
	}
	return c.AddShowToListByID(ctx, kind, id, listID)
}

func (c *Client) AddShowToListByID(ctx context.Context, kind ShowIdentification, showID int, listID string) (bool, error) {
	return c.postShowList(ctx, postShowList, kind, showID, listID)
}

func (c *Client) RemoveShowFromList(ctx context.Context, show *Show, listID string) (bool, error) {
	if listID == "" {
		return false, argumentError("listId", "cannot be empty")
	}
	kind, id, err := IdentifyShow(show)
	if err != nil {
		return false, err
	}
	return c.RemoveShowFromListByID(ctx, kind, id, listID)
}

func (c *Client) RemoveShowFromListByID(ctx context.Context, kind ShowIdentification, showID int, listID string) (bool, error) {
	return c.postShowList(ctx, postShowUnlist, kind, showID, listID)
}

func (c *Client) RateShow(ctx context.Context, show *Show, rating int) (bool, error) {
	kind, id, err := IdentifyShow(show)
	if err != nil {
		return false, err
	}
	return c.RateShowByID(ctx, kind, id, rating)
}

func (c *Client) RateShowByID(ctx context.Context, kind ShowIdentification, showID, rating int) (bool, error) {
	ref, err := ResolveShow(kind, showID)
	if err != nil {
		return false, err
	}
	return c.postStatus(ctx, postShowRate, showRatingRequest{credentials: c.stamp(), ShowRef: ref, Rating: rating})
}

// ShowUserStats returns how username (the session user when empty) relates to show.
func (c *Client) ShowUserStats(ctx context.Context, show *Show, username string, includeEpisodes bool) (*ShowUserStats, error) {
	kind, id, err := IdentifyShow(show)
	if err != nil {
		return nil, err
	}
	return c.ShowUserStatsByID(ctx, kind, id, username, includeEpisodes)
}

func (c *Client) ShowUserStatsByID(ctx context.Context, kind ShowIdentification, showID int, username string, includeEpisodes bool) (*ShowUserStats, error) {
	ref, err := ResolveShow(kind, showID)
	if err != nil {
		return nil, err
	}
	req := showUserStatsRequest{
		credentials:     c.stamp(),
		ShowRef:         ref,
		QueryUsername:   c.queryUsername(username),
		IncludeEpisodes: includeEpisodes,
	}
	return postObject[ShowUserStats](ctx, c, postShowUserStats, req)
}

func (c *Client) postShowList(ctx context.Context, endpoint string, kind ShowIdentification, showID int, listID string) (bool, error) {
	if listID == "" {
		return false, argumentError("listId", "cannot be empty")
	}
	ref, err := ResolveShow(kind, showID)
	if err != nil {
		return false, err
	}
	return c.postStatus(ctx, endpoint, showListRequest{credentials: c.stamp(), ShowRef: ref, ListID: listID})
}
