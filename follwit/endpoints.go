package follwit

// Endpoint keys fetched with GET and positional path parameters.
const (
	getCalendarPopular       = "calendar.popular"
	getMovieSimilar          = "movie.similar_movies"
	getMovieSummary          = "movie.summary"
	getMovieTrending         = "movie.trending"
	getShowSummary           = "show.summary"
	getShowTrending          = "show.trending"
	getUserList              = "user.list"
	getUserLists             = "user.lists"
	getUserMovieCollection   = "user.movie_collection"
	getUserPublicProfile     = "user.public_profile"
	getUserTvCollection      = "user.tv_collection"
	getUserUsernameAvailable = "user.username_available"
)

// Endpoint keys called with POST and a JSON body.
const (
	postCalendarFollowing = "calendar.follwing"

	postEpisodeBulkAction   = "episode.bulk_action"
	postEpisodeCollection   = "episode.collection"
	postEpisodeList         = "episode.list"
	postEpisodeRate         = "episode.rate"
	postEpisodeSummary      = "episode.summary"
	postEpisodeUncollection = "episode.uncollection"
	postEpisodeUnlist       = "episode.unlist"
	postEpisodeUnwatched    = "episode.unwatched"
	postEpisodeUnwatching   = "episode.unwatching"
	postEpisodeWatched      = "episode.watched"
	postEpisodeWatching     = "episode.watching"

	postMovieBulkAction      = "movie.bulk_action"
	postMovieCollection      = "movie.collection"
	postMovieList            = "movie.list"
	postMovieRate            = "movie.rate"
	postMovieRecommendations = "movie.recommendations"
	postMovieUncollection    = "movie.uncollection"
	postMovieUnlist          = "movie.unlist"
	postMovieUnwatched       = "movie.unwatched"
	postMovieUnwatching      = "movie.unwatching"
	postMovieUserStats       = "movie.userstats"
	postMovieWatched         = "movie.watched"
	postMovieWatching        = "movie.watching"

	postShowList            = "show.list"
	postShowRate            = "show.rate"
	postShowRecommendations = "show.recommendations"
	postShowUnlist          = "show.unlist"
	postShowUserStats       = "show.userstats"

	postUserAuthenticate  = "user.authenticate"
	postUserCreate        = "user.create"
	postUserList          = "user.list"
	postUserLists         = "user.lists"
	postUserOnlineChanges = "user.online_changes"
	postUserProfile       = "user.profile"
	postUserStream        = "user.stream"
	postUserUpdate        = "user.update"
)
