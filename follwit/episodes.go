package follwit

import (
	"context"
	"fmt"
)

// Episode operations take three forms. The entity form resolves the episode with
// IdentifyEpisode and calls the ByID form; the ByID form resolves the (identification,
// id) pair and calls the ByRef form; the ByRef form sends any EpisodeRef, including the
// natural keys built by EpisodeByTVDb and EpisodeByName.

// EpisodeDetails returns the full record of an episode.
func (c *Client) EpisodeDetails(ctx context.Context, episode *Episode) (*Episode, error) {
	kind, id, err := IdentifyEpisode(episode)
	if err != nil {
		return nil, err
	}
	return c.EpisodeDetailsByID(ctx, kind, id)
}

func (c *Client) EpisodeDetailsByID(ctx context.Context, kind ShowIdentification, episodeID int) (*Episode, error) {
	ref, err := ResolveEpisode(kind, episodeID)
	if err != nil {
		return nil, err
	}
	return c.EpisodeDetailsByRef(ctx, ref)
}

func (c *Client) EpisodeDetailsByRef(ctx context.Context, ref EpisodeRef) (*Episode, error) {
	if ref.empty() {
		return nil, emptyEpisodeRef()
	}
	return postObject[Episode](ctx, c, postEpisodeSummary, episodeRequest{credentials: c.stamp(), EpisodeRef: ref})
}

func (c *Client) AddEpisodeToCollection(ctx context.Context, episode *Episode) (bool, error) {
	kind, id, err := IdentifyEpisode(episode)
	if err != nil {
		return false, err
	}
	return c.AddEpisodeToCollectionByID(ctx, kind, id)
}

func (c *Client) AddEpisodeToCollectionByID(ctx context.Context, kind ShowIdentification, episodeID int) (bool, error) {
	ref, err := ResolveEpisode(kind, episodeID)
	if err != nil {
		return false, err
	}
	return c.AddEpisodeToCollectionByRef(ctx, ref)
}

func (c *Client) AddEpisodeToCollectionByRef(ctx context.Context, ref EpisodeRef) (bool, error) {
	return c.postEpisode(ctx, postEpisodeCollection, ref)
}

func (c *Client) RemoveEpisodeFromCollection(ctx context.Context, episode *Episode) (bool, error) {
	kind, id, err := IdentifyEpisode(episode)
	if err != nil {
		return false, err
	}
	return c.RemoveEpisodeFromCollectionByID(ctx, kind, id)
}

func (c *Client) RemoveEpisodeFromCollectionByID(ctx context.Context, kind ShowIdentification, episodeID int) (bool, error) {
	ref, err := ResolveEpisode(kind, episodeID)
	if err != nil {
		return false, err
	}
	return c.RemoveEpisodeFromCollectionByRef(ctx, ref)
}

func (c *Client) RemoveEpisodeFromCollectionByRef(ctx context.Context, ref EpisodeRef) (bool, error) {
	return c.postEpisode(ctx, postEpisodeUncollection, ref)
}

func (c *Client) AddEpisodeToList(ctx context.Context, episode *Episode, listID string) (bool, error) {
	if listID == "" {
		return false, argumentError("listId", "cannot be empty")
	}
	kind, id, err := IdentifyEpisode(episode)
	if err != nil {
		return false, err
	}
	return c.AddEpisodeToListByID(ctx, kind, id, listID)
}

func (c *Client) AddEpisodeToListByID(ctx context.Context, kind ShowIdentification, episodeID int, listID string) (bool, error) {
	if listID == "" {
		return false, argumentError("listId", "cannot be empty")
	}
	ref, err := ResolveEpisode(kind, episodeID)
	if err != nil {
		return false, err
	}
	return c.AddEpisodeToListByRef(ctx, ref, listID)
}

func (c *Client) AddEpisodeToListByRef(ctx context.Context, ref EpisodeRef, listID string) (bool, error) {
	return c.postEpisodeList(ctx, postEpisodeList, ref, listID)
}

func (c *Client) RemoveEpisodeFromList(ctx context.Context, episode *Episode, listID string) (bool, error) {
	if listID == "" {
		return false, argumentError("listId", "cannot be empty")
	}
	kind, id, err := IdentifyEpisode(episode)
	if err != nil {
		return false, err
	}
	return c.RemoveEpisodeFromListByID(ctx, kind, id, listID)
}

func (c *Client) RemoveEpisodeFromListByID(ctx context.Context, kind ShowIdentification, episodeID int, listID string) (bool, error) {
	if listID == "" {
		return false, argumentError("listId", "cannot be empty")
	}
	ref, err := ResolveEpisode(kind, episodeID)
	if err != nil {
		return false, err
	}
	return c.RemoveEpisodeFromListByRef(ctx, ref, listID)
}

func (c *Client) RemoveEpisodeFromListByRef(ctx context.Context, ref EpisodeRef, listID string) (bool, error) {
	return c.postEpisodeList(ctx, postEpisodeUnlist, ref, listID)
}

func (c *Client) RateEpisode(ctx context.Context, episode *Episode, rating int) (bool, error) {
	kind, id, err := IdentifyEpisode(episode)
	if err != nil {
		return false, err
	}
	return c.RateEpisodeByID(ctx, kind, id, rating)
}

func (c *Client) RateEpisodeByID(ctx context.Context, kind ShowIdentification, episodeID, rating int) (bool, error) {
	ref, err := ResolveEpisode(kind, episodeID)
	if err != nil {
		return false, err
	}
	return c.RateEpisodeByRef(ctx, ref, rating)
}

func (c *Client) RateEpisodeByRef(ctx context.Context, ref EpisodeRef, rating int) (bool, error) {
	if ref.empty() {
		return false, emptyEpisodeRef()
	}
	return c.postStatus(ctx, postEpisodeRate, episodeRatingRequest{credentials: c.stamp(), EpisodeRef: ref, Rating: rating})
}

func (c *Client) MarkEpisodeWatched(ctx context.Context, episode *Episode, insertInStream bool) (bool, error) {
	kind, id, err := IdentifyEpisode(episode)
	if err != nil {
		return false, err
	}
	return c.MarkEpisodeWatchedByID(ctx, kind, id, insertInStream)
}

func (c *Client) MarkEpisodeWatchedByID(ctx context.Context, kind ShowIdentification, episodeID int, insertInStream bool) (bool, error) {
	ref, err := ResolveEpisode(kind, episodeID)
	if err != nil {
		return false, err
	}
	return c.MarkEpisodeWatchedByRef(ctx, ref, insertInStream)
}

func (c *Client) MarkEpisodeWatchedByRef(ctx context.Context, ref EpisodeRef, insertInStream bool) (bool, error) {
	if ref.empty() {
		return false, emptyEpisodeRef()
	}
	req := episodeWatchedRequest{credentials: c.stamp(), EpisodeRef: ref, InsertInStream: insertInStream}
	return c.postStatus(ctx, postEpisodeWatched, req)
}

func (c *Client) MarkEpisodeUnwatched(ctx context.Context, episode *Episode) (bool, error) {
	kind, id, err := IdentifyEpisode(episode)
	if err != nil {
		return false, err
	}
	return c.MarkEpisodeUnwatchedByID(ctx, kind, id)
}

func (c *Client) MarkEpisodeUnwatchedByID(ctx context.Context, kind ShowIdentification, episodeID int) (bool, error) {
	ref, err := ResolveEpisode(kind, episodeID)
	if err != nil {
		return false, err
	}
	return c.MarkEpisodeUnwatchedByRef(ctx, ref)
}

func (c *Client) MarkEpisodeUnwatchedByRef(ctx context.Context, ref EpisodeRef) (bool, error) {
	return c.postEpisode(ctx, postEpisodeUnwatched, ref)
}

func (c *Client) MarkEpisodeWatching(ctx context.Context, episode *Episode) (bool, error) {
	kind, id, err := IdentifyEpisode(episode)
	if err != nil {
		return false, err
	}
	return c.MarkEpisodeWatchingByID(ctx, kind, id)
}

func (c *Client) MarkEpisodeWatchingByID(ctx context.Context, kind ShowIdentification, episodeID int) (bool, error) {
	ref, err := ResolveEpisode(kind, episodeID)
	if err != nil {
		return false, err
	}
	return c.MarkEpisodeWatchingByRef(ctx, ref)
}

func (c *Client) MarkEpisodeWatchingByRef(ctx context.Context, ref EpisodeRef) (bool, error) {
	return c.postEpisode(ctx, postEpisodeWatching, ref)
}

func (c *Client) MarkEpisodeNotWatching(ctx context.Context, episode *Episode) (bool, error) {
	kind, id, err := IdentifyEpisode(episode)
	if err != nil {
		return false, err
	}
	return c.MarkEpisodeNotWatchingByID(ctx, kind, id)
}

func (c *Client) MarkEpisodeNotWatchingByID(ctx context.Context, kind ShowIdentification, episodeID int) (bool, error) {
	ref, err := ResolveEpisode(kind, episodeID)
	if err != nil {
		return false, err
	}
	return c.MarkEpisodeNotWatchingByRef(ctx, ref)
}

func (c *Client) MarkEpisodeNotWatchingByRef(ctx context.Context, ref EpisodeRef) (bool, error) {
	return c.postEpisode(ctx, postEpisodeUnwatching, ref)
}

// BulkChangeEpisodes applies change to every episode in one request. An empty slice
// returns without calling the service.
func (c *Client) BulkChangeEpisodes(ctx context.Context, episodes []Episode, change BulkChange) ([]BulkEpisodeResult, error) {
	if len(episodes) == 0 {
		return []BulkEpisodeResult{}, nil
	}
	req := bulkEpisodeRequest{credentials: c.stamp(), BulkChange: change, Episodes: episodes}
	return postList[BulkEpisodeResult](ctx, c, postEpisodeBulkAction, req)
}

func (c *Client) postEpisode(ctx context.Context, endpoint string, ref EpisodeRef) (bool, error) {
	if ref.empty() {
		return false, emptyEpisodeRef()
	}
	return c.postStatus(ctx, endpoint, episodeRequest{credentials: c.stamp(), EpisodeRef: ref})
}

func (c *Client) postEpisodeList(ctx context.Context, endpoint string, ref EpisodeRef, listID string) (bool, error) {
	if listID == "" {
		return false, argumentError("listId", "cannot be empty")
	}
	if ref.empty() {
		return false, emptyEpisodeRef()
	}
	return c.postStatus(ctx, endpoint, episodeListRequest{credentials: c.stamp(), EpisodeRef: ref, ListID: listID})
}

func emptyEpisodeRef() error {
	return fmt.Errorf("%w: episode reference is empty", ErrNoUsableIdentifier)
}
