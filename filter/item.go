package filter

import (
	"strconv"
	"time"

	"github.com/s0up4200/follwit/follwit"
)

// Item kinds.
const (
	KindMovie = "movie"
	KindShow  = "show"
)

// Item is the flattened view of a movie or show that filter expressions run against.
type Item struct {
	Kind          string
	Title         string
	Year          int
	Genres        []string
	IMDbID        string
	TMDbID        string
	TVDbID        int
	Certification string
	Runtime       int
	Rating        float64
	RatingCount   int
	Network       string
	FirstAired    time.Time
}

// FromMovie builds an Item from a movie. Numeric fields the service left empty are zero.
func FromMovie(m follwit.Movie) Item {
	title := m.Title
	if title == "" {
		title = m.OriginalTitle
	}
	return Item{
		Kind:          KindMovie,
		Title:         title,
		Year:          atoi(m.Year),
		Genres:        m.GenreList(),
		IMDbID:        m.IMDbID,
		TMDbID:        string(m.TMDbID),
		Certification: m.Certification,
		Runtime:       atoi(m.Runtime),
		Rating:        atof(m.AverageRating),
		RatingCount:   atoi(m.RatingCount),
	}
}

// FromShow builds an Item from a show. Year is taken from the first air date.
func FromShow(s follwit.Show) Item {
	item := Item{
		Kind:        KindShow,
		Title:       s.SeriesName,
		Genres:      s.GenreList(),
		TVDbID:      s.TVDbSeriesID,
		Runtime:     atoi(s.Runtime),
		Rating:      atof(s.AverageRating),
		RatingCount: atoi(s.RatingCount),
		Network:     s.Network,
	}
	if aired, err := time.Parse(follwit.DateLayout, s.FirstAired); err == nil {
		item.FirstAired = aired
		item.Year = aired.Year()
	}
	return item
}

// SelectMovies returns the movies matching f, in input order.
func SelectMovies(f Filter, movies []follwit.Movie) []follwit.Movie {
	out := make([]follwit.Movie, 0, len(movies))
	for _, m := range movies {
		if f.Evaluate(FromMovie(m)) {
			out = append(out, m)
		}
	}
	return out
}

// SelectShows returns the shows matching f, in input order.
func SelectShows(f Filter, shows []follwit.Show) []follwit.Show {
	out := make([]follwit.Show, 0, len(shows))
	for _, s := range shows {
		if f.Evaluate(FromShow(s)) {
			out = append(out, s)
		}
	}
	return out
}

func atoi(s follwit.FlexString) int {
	n, _ := strconv.Atoi(string(s))
	return n
}

func atof(s follwit.FlexString) float64 {
	f, _ := strconv.ParseFloat(string(s), 64)
	return f
}
