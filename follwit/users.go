package follwit

import (
	"context"
	"strconv"
	"time"
)

// NewUser describes an account to create.
type NewUser struct {
	Username       string
	Password       string
	Email          string
	Locale         string
	PrivateProfile bool
}

// UserUpdate changes account settings of the session user. Empty fields are left as is.
type UserUpdate struct {
	Email          string
	Locale         string
	PrivateProfile *bool
}

// Authenticate stores the credentials in the session and checks them with the service.
// The session keeps the credentials even if the service rejects them.
func (c *Client) Authenticate(ctx context.Context, username, password string) (bool, error) {
	if username == "" {
		return false, argumentError("username", "cannot be empty")
	}
	if password == "" {
		return false, argumentError("password", "cannot be empty")
	}

	c.SetCredentials(Credentials{Username: username, PasswordHash: c.hashPassword(password)})
	return c.postStatus(ctx, postUserAuthenticate, authenticationRequest{credentials: c.stamp()})
}

// CreateUser registers an account. On success the new account becomes the session.
func (c *Client) CreateUser(ctx context.Context, user NewUser) (bool, error) {
	if user.Username == "" {
		return false, argumentError("username", "cannot be empty")
	}
	if user.Password == "" {
		return false, argumentError("password", "cannot be empty")
	}
	if user.Email == "" {
		return false, argumentError("email", "cannot be empty")
	}

	creds := Credentials{Username: user.Username, PasswordHash: c.hashPassword(user.Password)}
	req := createUserRequest{
		credentials:    credentials{Username: creds.Username, Password: creds.PasswordHash},
		Email:          user.Email,
		Locale:         user.Locale,
		PrivateProfile: user.PrivateProfile,
	}

	var resp accountResponse
	if err := c.post(ctx, postUserCreate, req, &resp); err != nil {
		return false, err
	}
	if !resp.Succeeded() {
		return false, nil
	}

	c.SetCredentials(creds)
	c.logger.Info().Str("username", creds.Username).Msg("Created follw.it account")
	return true, nil
}

// UpdateUser changes the session user's account settings.
func (c *Client) UpdateUser(ctx context.Context, update UserUpdate) (bool, error) {
	req := updateUserRequest{
		credentials:    c.stamp(),
		Email:          update.Email,
		Locale:         update.Locale,
		PrivateProfile: update.PrivateProfile,
	}
	return c.postStatus(ctx, postUserUpdate, req)
}

// UsernameAvailable reports whether username can still be registered.
func (c *Client) UsernameAvailable(ctx context.Context, username string) (bool, error) {
	if username == "" {
		return false, argumentError("username", "cannot be empty")
	}
	var resp availabilityResponse
	if err := c.get(ctx, getUserUsernameAvailable, []string{username}, &resp); err != nil {
		return false, err
	}
	return resp.Available, nil
}

// PublicProfile returns the public profile of username, or of the session user when
// username is empty.
func (c *Client) PublicProfile(ctx context.Context, username string) (*User, error) {
	return getObject[User](ctx, c, getUserPublicProfile, []string{c.queryUsername(username)})
}

// FullProfile returns the profile of username as seen by the session user.
func (c *Client) FullProfile(ctx context.Context, username string) (*FullProfile, error) {
	req := queryUserRequest{credentials: c.stamp(), QueryUsername: c.queryUsername(username)}
	return postObject[FullProfile](ctx, c, postUserProfile, req)
}

// UserStream returns the recent activity of username.
func (c *Client) UserStream(ctx context.Context, username string) ([]StreamItem, error) {
	req := queryUserRequest{credentials: c.stamp(), QueryUsername: c.queryUsername(username)}
	return postList[StreamItem](ctx, c, postUserStream, req)
}

// OnlineChanges returns the changes made to the session user's data since the given date.
func (c *Client) OnlineChanges(ctx context.Context, since time.Time) ([]OnlineChange, error) {
	if since.IsZero() {
		return nil, argumentError("since", "cannot be zero")
	}
	req := onlineChangesRequest{credentials: c.stamp(), StartDate: wireDate(since)}
	return postList[OnlineChange](ctx, c, postUserOnlineChanges, req)
}

// UserLists returns the public lists of username.
func (c *Client) UserLists(ctx context.Context, username string) ([]List, error) {
	return getList[List](ctx, c, getUserLists, []string{c.queryUsername(username)})
}

// UserList returns one public list of username.
func (c *Client) UserList(ctx context.Context, listID, username string) (*List, error) {
	if listID == "" {
		return nil, argumentError("listId", "cannot be empty")
	}
	return getObject[List](ctx, c, getUserList, []string{c.queryUsername(username), listID})
}

// QueryUserLists returns the lists of username visible to the session user, private
// lists included when username is the session user.
func (c *Client) QueryUserLists(ctx context.Context, username string) ([]List, error) {
	req := queryUserRequest{credentials: c.stamp(), QueryUsername: c.queryUsername(username)}
	return postList[List](ctx, c, postUserLists, req)
}

// QueryUserList is the authenticated counterpart of UserList.
func (c *Client) QueryUserList(ctx context.Context, listID, username string) (*List, error) {
	if listID == "" {
		return nil, argumentError("listId", "cannot be empty")
	}
	req := queryUserListRequest{
		credentials:   c.stamp(),
		QueryUsername: c.queryUsername(username),
		ListID:        listID,
	}
	return postObject[List](ctx, c, postUserList, req)
}

// UserMovieCollection returns the movies in username's collection.
func (c *Client) UserMovieCollection(ctx context.Context, username string) ([]Movie, error) {
	return getList[Movie](ctx, c, getUserMovieCollection, []string{c.queryUsername(username)})
}

// UserTvCollection returns the shows in username's collection.
func (c *Client) UserTvCollection(ctx context.Context, username string, includeEpisodes bool) ([]Show, error) {
	return getList[Show](ctx, c, getUserTvCollection, []string{c.queryUsername(username), strconv.FormatBool(includeEpisodes)})
}
