// Package follwit provides a client for the follw.it media tracking API.
//
// follw.it keeps a user's movie and TV collection, watch history, ratings and lists.
// The API is addressed by endpoint keys such as "movie.watched": lookups are GET
// requests with positional path parameters, everything else is a POST with a JSON
// body that carries the account's username and password hash.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := follwit.NewClient("your-api-key", logger,
//		follwit.WithTimeout(30*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	if ok, err := client.Authenticate(ctx, "user", "secret"); err != nil || !ok {
//		log.Fatal("login failed")
//	}
//
//	// tt0133093 is The Matrix
//	ok, err := client.MarkMovieWatchedByID(ctx, follwit.MovieIDIMDb, "tt0133093", true)
//
// # Identifying entities
//
// Movies accept three identifier schemes: the follw.it id, an IMDb id and a TMDb id.
// Shows and episodes accept the follw.it id and a TVDb id; passing ShowIDIMDb to a
// show or episode mutation fails with ErrUnsupportedOperation before any request is
// made. Every mutation also has a form that takes a Movie, Show or Episode and picks
// the first identifier it carries (follw.it, then IMDb or TVDb, then TMDb).
//
// Episodes may additionally be addressed by natural key, see EpisodeByTVDb and
// EpisodeByName together with the ...ByRef methods.
//
// # Session
//
// The client owns the session credentials. Authenticate and CreateUser set them; each
// request copies the credentials once when it is built, so changing them while
// requests are in flight never affects those requests.
//
// # Error Handling
//
// Failures are reported with sentinel errors that can be tested with errors.Is:
// ErrInvalidArgument, ErrUnsupportedOperation, ErrNoUsableIdentifier, ErrTransport,
// ErrDecode and ErrService. KindOf maps any returned error onto an ErrorKind.
// Boolean operations return false, not an error, when the service answers with a
// non-success status. Context cancellation is returned as the context's error.
package follwit
