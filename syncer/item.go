package syncer

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/s0up4200/follwit/follwit"
)

// Item is a movie to push to follw.it, identified by whatever ids its source knows.
type Item struct {
	Title     string    `yaml:"title"`
	Year      int       `yaml:"year"`
	FollwItID int       `yaml:"follwit_id"`
	IMDbID    string    `yaml:"imdb"`
	TMDbID    int       `yaml:"tmdb"`
	WatchedAt time.Time `yaml:"watched_at"`
}

// Movie projects the item onto the library's movie model.
func (i Item) Movie() follwit.Movie {
	m := follwit.Movie{
		IMDbID: i.IMDbID,
		Title:  i.Title,
	}
	if i.FollwItID > 0 {
		m.ID = follwit.FlexString(strconv.Itoa(i.FollwItID))
	}
	if i.TMDbID > 0 {
		m.TMDbID = follwit.FlexString(strconv.Itoa(i.TMDbID))
	}
	if i.Year > 0 {
		m.Year = follwit.FlexString(strconv.Itoa(i.Year))
	}
	return m
}

func (i Item) String() string {
	if i.Year > 0 {
		return fmt.Sprintf("%s (%d)", i.Title, i.Year)
	}
	if i.Title != "" {
		return i.Title
	}
	if i.IMDbID != "" {
		return i.IMDbID
	}
	return fmt.Sprintf("tmdb:%d", i.TMDbID)
}

// Source lists the items of an external library or history.
type Source interface {
	Name() string
	Items(ctx context.Context) ([]Item, error)
}
