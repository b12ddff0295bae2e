package follwit

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	t.Run("stores credentials before sending", func(t *testing.T) {
		client, rec := newTestClient(t, http.StatusOK, `{"response": "failure", "message": "bad password"}`)
		client.SetCredentials(Credentials{})

		ok, err := client.Authenticate(context.Background(), "bob", testPassword)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, Credentials{Username: "bob", PasswordHash: testPasswordHash}, client.Credentials())

		req := rec.last(t)
		assert.Equal(t, "/api/3/test-key/user.authenticate/", req.Path)
		assert.JSONEq(t, `{"username":"bob","password":"`+testPasswordHash+`"}`, string(req.Raw))
	})

	t.Run("success", func(t *testing.T) {
		client, _ := newTestClient(t, http.StatusOK, `{"response": "success", "username": "bob"}`)
		ok, err := client.Authenticate(context.Background(), "bob", testPassword)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("validation", func(t *testing.T) {
		client, rec := newTestClient(t, http.StatusOK, `{"response": "success"}`)
		_, err := client.Authenticate(context.Background(), "", testPassword)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		_, err = client.Authenticate(context.Background(), "bob", "")
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Empty(t, rec.all())
		assert.Equal(t, testUsername, client.Username(), "rejected input leaves the session alone")
	})
}

func TestCreateUser(t *testing.T) {
	user := NewUser{Username: "newbie", Password: testPassword, Email: "newbie@example.com", Locale: "en"}

	t.Run("success logs in", func(t *testing.T) {
		client, rec := newTestClient(t, http.StatusOK, `{"response": "success", "username": "newbie"}`)
		ok, err := client.CreateUser(context.Background(), user)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, Credentials{Username: "newbie", PasswordHash: testPasswordHash}, client.Credentials())

		fields := rec.last(t).Fields(t)
		assert.Equal(t, "newbie", fields["username"])
		assert.Equal(t, "newbie@example.com", fields["email"])
		assert.Equal(t, false, fields["private_profile"])
	})

	t.Run("failure keeps the old session", func(t *testing.T) {
		client, _ := newTestClient(t, http.StatusOK, `{"response": "error", "message": "username taken"}`)
		ok, err := client.CreateUser(context.Background(), user)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, testUsername, client.Username())
	})

	t.Run("validation", func(t *testing.T) {
		client, rec := newTestClient(t, http.StatusOK, `{"response": "success"}`)
		_, err := client.CreateUser(context.Background(), NewUser{Username: "x", Password: "y"})
		var argErr *ArgumentError
		require.ErrorAs(t, err, &argErr)
		assert.Equal(t, "email", argErr.Name)
		assert.Empty(t, rec.all())
	})
}

func TestUpdateUserOmitsUnsetFields(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{"response": "success"}`)

	private := true
	ok, err := client.UpdateUser(context.Background(), UserUpdate{PrivateProfile: &private})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"private_profile":true}`, bodyWithoutCredentials(t, rec.last(t)))
}

func TestUsernameDefaults(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		body     string
		call     func(c *Client, username string) error
		wantPath string
	}{
		{
			name:     "public profile",
			body:     `{"username": "alice"}`,
			call:     func(c *Client, u string) error { _, err := c.PublicProfile(ctx, u); return err },
			wantPath: "/api/3/test-key/user.public_profile/alice",
		},
		{
			name:     "lists",
			body:     `[]`,
			call:     func(c *Client, u string) error { _, err := c.UserLists(ctx, u); return err },
			wantPath: "/api/3/test-key/user.lists/alice",
		},
		{
			name:     "list",
			body:     `{"name": "Favourites", "identifier": 12}`,
			call:     func(c *Client, u string) error { _, err := c.UserList(ctx, "12", u); return err },
			wantPath: "/api/3/test-key/user.list/alice/12",
		},
		{
			name:     "movie collection",
			body:     `[]`,
			call:     func(c *Client, u string) error { _, err := c.UserMovieCollection(ctx, u); return err },
			wantPath: "/api/3/test-key/user.movie_collection/alice",
		},
		{
			name:     "tv collection",
			body:     `[]`,
			call:     func(c *Client, u string) error { _, err := c.UserTvCollection(ctx, u, true); return err },
			wantPath: "/api/3/test-key/user.tv_collection/alice/true",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, rec := newTestClient(t, http.StatusOK, tt.body)
			require.NoError(t, tt.call(client, ""))
			assert.Equal(t, tt.wantPath, rec.last(t).Path)
		})
	}
}

func TestQueryUsernameDefaults(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		body     string
		call     func(c *Client, username string) error
		endpoint string
	}{
		{"full profile", `{"username": "bob"}`, func(c *Client, u string) error { _, err := c.FullProfile(ctx, u); return err }, postUserProfile},
		{"stream", `[]`, func(c *Client, u string) error { _, err := c.UserStream(ctx, u); return err }, postUserStream},
		{"lists", `[]`, func(c *Client, u string) error { _, err := c.QueryUserLists(ctx, u); return err }, postUserLists},
		{"list", `{"name": "x"}`, func(c *Client, u string) error { _, err := c.QueryUserList(ctx, "3", u); return err }, postUserList},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, rec := newTestClient(t, http.StatusOK, tt.body)

			require.NoError(t, tt.call(client, ""))
			assert.Equal(t, testUsername, rec.last(t).Fields(t)["query_username"])

			require.NoError(t, tt.call(client, "bob"))
			req := rec.last(t)
			assert.Equal(t, "/api/3/test-key/"+tt.endpoint+"/", req.Path)
			assert.Equal(t, "bob", req.Fields(t)["query_username"])
		})
	}
}

func TestUsernameAvailable(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{"username": "bob", "available": false}`)

	ok, err := client.UsernameAvailable(context.Background(), "bob")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "/api/3/test-key/user.username_available/bob", rec.last(t).Path)

	_, err = client.UsernameAvailable(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestOnlineChanges(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `[{"change_type": "new_movie_rating", "movie_id": 42, "value": 9}]`)

	changes, err := client.OnlineChanges(context.Background(), time.Date(2024, 1, 31, 22, 15, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, ChangeNewMovieRating, changes[0].Type)
	assert.Equal(t, FlexString("9"), changes[0].Value)
	assert.JSONEq(t, `{"start_date":"2024-01-31"}`, bodyWithoutCredentials(t, rec.last(t)))
}

func TestCalendarDefaults(t *testing.T) {
	fixed := time.Date(2024, 2, 27, 18, 45, 12, 0, time.UTC)

	t.Run("popular", func(t *testing.T) {
		client, rec := newTestClient(t, http.StatusOK, `[]`)
		client.now = func() time.Time { return fixed }

		_, err := client.PopularEpisodes(context.Background(), time.Time{}, time.Time{}, "")
		require.NoError(t, err)
		assert.Equal(t, "/api/3/test-key/calendar.popular/2024-02-27/2024-03-05/en", rec.last(t).Path)
	})

	t.Run("following", func(t *testing.T) {
		client, rec := newTestClient(t, http.StatusOK, `[{"series_name": "Lost", "episode_name": "Pilot"}]`)
		client.now = func() time.Time { return fixed }

		episodes, err := client.FollowingCalendar(context.Background(), time.Time{}, time.Time{}, "")
		require.NoError(t, err)
		require.Len(t, episodes, 1)

		req := rec.last(t)
		assert.Equal(t, "/api/3/test-key/calendar.follwing/", req.Path)
		assert.JSONEq(t, `{"start_date":"2024-02-27","end_date":"2024-03-05","locale":"en"}`, bodyWithoutCredentials(t, req))
	})

	t.Run("explicit end before start", func(t *testing.T) {
		client, rec := newTestClient(t, http.StatusOK, `[]`)
		_, err := client.PopularEpisodes(context.Background(), fixed, fixed.AddDate(0, 0, -1), "")
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Empty(t, rec.all())
	})
}

func TestUserListKeepsUnknownEntries(t *testing.T) {
	client, _ := newTestClient(t, http.StatusOK, `{
		"name": "Mixed",
		"identifier": 12,
		"list_entries": [
			{"item_type": "movie", "title": "Heat", "year": "1995"},
			{"item_type": "person", "title": "Michael Mann"},
			{"item_type": "tv show", "series_name": "Lost"}
		]
	}`)

	list, err := client.UserList(context.Background(), "12", "")
	require.NoError(t, err)
	require.Len(t, list.Entries, 3)
	assert.Equal(t, ListTypeMovie, list.Entries[0].ItemType)
	assert.Equal(t, ListTypeUnknown, list.Entries[1].ItemType)
	assert.Equal(t, "Michael Mann", list.Entries[1].Title)
	assert.Equal(t, ListTypeTVShow, list.Entries[2].ItemType)
}

func TestUnknownResponseTokenIsDecodeError(t *testing.T) {
	client, _ := newTestClient(t, http.StatusOK, `[{"action": "Teleported", "username": "alice"}]`)

	_, err := client.UserStream(context.Background(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
	assert.Equal(t, KindDecode, KindOf(err))

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, postUserStream, decodeErr.Endpoint)
}
