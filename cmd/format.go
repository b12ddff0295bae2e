package cmd

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/s0up4200/follwit/follwit"
	"github.com/s0up4200/follwit/syncer"
)

// node is one entry of a tree listing: a title line and indented detail lines.
type node struct {
	title string
	lines []string
}

// formatTree renders nodes under a counted header:
//
//	Movies (2):
//
//	├── The Matrix (1999)
//	│   IMDb: tt0133093
//	│
//	╰── Heat (1995)
func formatTree(noun string, nodes []node) string {
	if len(nodes) == 0 {
		return fmt.Sprintf("No %s found\n", strings.ToLower(plural(noun)))
	}

	var sb strings.Builder

	// Header
	header := noun
	if len(nodes) != 1 {
		header = plural(noun)
	}
	fmt.Fprintf(&sb, "\n%s (%d):\n\n", header, len(nodes))

	for i, n := range nodes {
		isLast := i == len(nodes)-1
		prefix, indent := "├", "│   "
		if isLast {
			prefix, indent = "╰", "    "
		}

		fmt.Fprintf(&sb, "%s── %s\n", prefix, n.title)
		for _, line := range n.lines {
			fmt.Fprintf(&sb, "%s%s\n", indent, line)
		}
		if !isLast {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

func plural(noun string) string {
	if strings.HasSuffix(noun, "y") {
		return strings.TrimSuffix(noun, "y") + "ies"
	}
	return noun + "s"
}

// details joins the non-empty parts with a separator.
func details(parts ...string) string {
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " | ")
}

func labeled[T ~string](label string, value T) string {
	if v := string(value); v != "" && v != "0" {
		return label + ": " + v
	}
	return ""
}

func movieTitle(m follwit.Movie) string {
	if m.Year != "" {
		return fmt.Sprintf("%s (%s)", m.Title, m.Year)
	}
	return m.Title
}

func movieNode(m follwit.Movie) node {
	n := node{title: movieTitle(m)}
	if ids := details(labeled("ID", m.ID), labeled("IMDb", m.IMDbID), labeled("TMDb", m.TMDbID)); ids != "" {
		n.lines = append(n.lines, ids)
	}
	if meta := details(m.Certification, minutes(m.Runtime), rating(m.AverageRating, m.RatingCount)); meta != "" {
		n.lines = append(n.lines, meta)
	}
	if genres := m.GenreList(); len(genres) > 0 {
		n.lines = append(n.lines, "Genres: "+strings.Join(genres, ", "))
	}
	return n
}

func formatMovies(movies []follwit.Movie) string {
	nodes := make([]node, 0, len(movies))
	for _, m := range movies {
		nodes = append(nodes, movieNode(m))
	}
	return formatTree("Movie", nodes)
}

func formatMovieDetails(m *follwit.Movie) string {
	n := movieNode(*m)
	if m.Tagline != "" {
		n.lines = append(n.lines, m.Tagline)
	}
	if people := names(m.Directors); people != "" {
		n.lines = append(n.lines, "Directed by: "+people)
	}
	if len(m.Actors) > 0 {
		cast := make([]string, 0, min(len(m.Actors), 5))
		for _, a := range m.Actors[:min(len(m.Actors), 5)] {
			cast = append(cast, a.Name)
		}
		n.lines = append(n.lines, "Starring: "+strings.Join(cast, ", "))
	}
	if m.Summary != "" {
		n.lines = append(n.lines, "", m.Summary)
	}
	if m.URL != "" {
		n.lines = append(n.lines, m.URL)
	}
	return formatTree("Movie", []node{n})
}

func names(people []follwit.Person) string {
	out := make([]string, 0, len(people))
	for _, p := range people {
		out = append(out, p.Name)
	}
	return strings.Join(out, ", ")
}

func showNode(s follwit.Show) node {
	n := node{title: s.SeriesName}
	if ids := details(labeled("ID", itoa(s.FollwItSeriesID)), labeled("TVDb", itoa(s.TVDbSeriesID))); ids != "" {
		n.lines = append(n.lines, ids)
	}
	aired := ""
	if s.FirstAired != "" {
		aired = "First aired: " + s.FirstAired
	}
	if meta := details(s.Network, aired, minutes(s.Runtime), rating(s.AverageRating, s.RatingCount)); meta != "" {
		n.lines = append(n.lines, meta)
	}
	if genres := s.GenreList(); len(genres) > 0 {
		n.lines = append(n.lines, "Genres: "+strings.Join(genres, ", "))
	}
	return n
}

func formatShows(shows []follwit.Show) string {
	nodes := make([]node, 0, len(shows))
	for _, s := range shows {
		nodes = append(nodes, showNode(s))
	}
	return formatTree("Show", nodes)
}

func formatShowDetails(s *follwit.Show) string {
	n := showNode(*s)
	if s.Overview != "" {
		n.lines = append(n.lines, "", s.Overview)
	}
	for _, e := range s.Episodes {
		n.lines = append(n.lines, "  "+episodeTitle(e))
	}
	return formatTree("Show", []node{n})
}

func episodeTitle(e follwit.Episode) string {
	code := fmt.Sprintf("S%02dE%02d", e.SeasonNumber, e.EpisodeNumber)
	if e.EpisodeName != "" {
		code += " " + e.EpisodeName
	}
	return code
}

func episodeNode(e follwit.Episode) node {
	title := episodeTitle(e)
	if e.SeriesName != "" {
		title = e.SeriesName + " " + title
	}
	n := node{title: title}
	if ids := details(labeled("ID", itoa(e.FollwItEpisodeID)), labeled("TVDb", itoa(e.TVDbEpisodeID))); ids != "" {
		n.lines = append(n.lines, ids)
	}
	if e.FirstAired != "" {
		n.lines = append(n.lines, details("Airs: "+e.FirstAired, e.AirTime))
	}
	return n
}

func formatEpisodes(episodes []follwit.Episode) string {
	nodes := make([]node, 0, len(episodes))
	for _, e := range episodes {
		nodes = append(nodes, episodeNode(e))
	}
	return formatTree("Episode", nodes)
}

func formatLists(lists []follwit.List) string {
	nodes := make([]node, 0, len(lists))
	for _, l := range lists {
		n := node{title: fmt.Sprintf("%s [%s]", l.Name, l.Identifier)}
		if l.Description != "" {
			n.lines = append(n.lines, l.Description)
		}
		if len(l.Entries) > 0 {
			n.lines = append(n.lines, fmt.Sprintf("%d entries", len(l.Entries)))
		}
		nodes = append(nodes, n)
	}
	return formatTree("List", nodes)
}

func formatListEntries(l *follwit.List) string {
	nodes := make([]node, 0, len(l.Entries))
	for _, e := range l.Entries {
		var title string
		switch e.ItemType {
		case follwit.ListTypeMovie:
			title = movieTitle(follwit.Movie{Title: e.Title, Year: e.Year})
		case follwit.ListTypeTVShow:
			title = e.SeriesName
		case follwit.ListTypeTVSeason:
			title = fmt.Sprintf("%s season %s", e.SeriesName, e.SeasonNumber)
		case follwit.ListTypeTVEpisode:
			title = fmt.Sprintf("%s S%sE%s %s", e.SeriesName, e.SeasonNumber, e.EpisodeNumber, e.EpisodeName)
		default:
			title = e.Title
			if title == "" {
				title = e.SeriesName
			}
		}
		n := node{title: strings.TrimSpace(title), lines: []string{details(e.ItemType.String(), labeled("Added", e.DateAdded))}}
		nodes = append(nodes, n)
	}
	return fmt.Sprintf("\n%s\n", l.Name) + formatTree("Entry", nodes)
}

func formatProfile(u *follwit.User) string {
	n := node{title: u.Username}
	if u.RealName != "" {
		n.lines = append(n.lines, u.RealName)
	}
	if u.LastSeen != "" {
		n.lines = append(n.lines, "Last seen: "+u.LastSeen)
	}
	for _, m := range u.WatchingMovies {
		n.lines = append(n.lines, "Watching: "+movieTitle(m))
	}
	for _, e := range u.WatchingEpisodes {
		n.lines = append(n.lines, "Watching: "+e.SeriesName+" "+episodeTitle(e))
	}
	if u.WatchedMovie != nil {
		n.lines = append(n.lines, "Last watched: "+movieTitle(*u.WatchedMovie))
	}
	if len(u.Friends) > 0 {
		n.lines = append(n.lines, fmt.Sprintf("Friends: %d", len(u.Friends)))
	}
	if len(u.Achievements) > 0 {
		n.lines = append(n.lines, fmt.Sprintf("Achievements: %d", len(u.Achievements)))
	}
	return formatTree("Profile", []node{n})
}

func formatStream(items []follwit.StreamItem) string {
	nodes := make([]node, 0, len(items))
	for _, it := range items {
		subject := it.Title
		switch {
		case it.EpisodeName != "" || it.SeriesName != "":
			subject = fmt.Sprintf("%s S%sE%s %s", it.SeriesName, it.SeasonNumber, it.EpisodeNumber, it.EpisodeName)
		case it.AchievementName != "":
			subject = it.AchievementName
		case it.FriendUsername != "":
			subject = it.FriendUsername
		}
		nodes = append(nodes, node{
			title: fmt.Sprintf("%s %s", it.Action, strings.TrimSpace(subject)),
			lines: []string{details(it.Username, it.Date, labeled("Rating", it.Rating))},
		})
	}
	return formatTree("Activity", nodes)
}

func formatChanges(changes []follwit.OnlineChange) string {
	nodes := make([]node, 0, len(changes))
	for _, c := range changes {
		nodes = append(nodes, node{
			title: c.Type.String(),
			lines: []string{details(c.Date, labeled("Movie", c.MovieID), labeled("IMDb", c.IMDbID),
				labeled("Series", c.SeriesID), labeled("Episode", c.EpisodeID), labeled("Value", c.Value))},
		})
	}
	return formatTree("Change", nodes)
}

func formatUserStats(title string, s *follwit.UserStats) string {
	n := node{title: title, lines: []string{
		details(flag("In collection", s.InCollection), flag("Watched", s.Watched), flag("Want it", s.WantIt), flag("Not interested", s.NotInterested)),
	}}
	if r := labeled("Rating", s.Rating); r != "" {
		n.lines = append(n.lines, r)
	}
	if s.QuickThoughts != "" {
		n.lines = append(n.lines, s.QuickThoughts)
	}
	return formatTree("Stat", []node{n})
}

func formatShowUserStats(title string, s *follwit.ShowUserStats) string {
	n := node{title: title, lines: []string{
		details(flag("Following", s.Following), flag("Want it", s.WantIt), flag("Not interested", s.NotInterested), labeled("Rating", s.Rating)),
	}}
	for _, e := range s.Episodes {
		n.lines = append(n.lines, details(
			fmt.Sprintf("  S%sE%s", e.SeasonNumber, e.EpisodeNumber),
			flag("collected", e.InCollection), flag("watched", e.Watched), labeled("rated", e.Rating)))
	}
	return formatTree("Stat", []node{n})
}

func formatSyncResult(source string, r syncer.Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\nSynced %d of %d movies from %s\n", len(r.Succeeded), r.Requested, source)
	if len(r.Rejected) > 0 {
		fmt.Fprintf(&sb, "- Rejected by follw.it: %d\n", len(r.Rejected))
	}
	if len(r.Skipped) > 0 {
		fmt.Fprintf(&sb, "- Skipped without identifier: %d\n", len(r.Skipped))
	}
	for _, f := range r.Failed {
		fmt.Fprintf(&sb, "- Failed: %s: %v\n", f.Item, f.Err)
	}
	return sb.String()
}

func formatBulkResults(results []follwit.BulkMovieResult) string {
	var ok int
	for _, r := range results {
		if (follwit.Status{Response: r.Status}).Succeeded() {
			ok++
		}
	}
	return fmt.Sprintf("\nBulk change applied to %d of %d movies\n", ok, len(results))
}

func flag(label string, set bool) string {
	if set {
		return label
	}
	return ""
}

func minutes(runtime follwit.FlexString) string {
	if runtime == "" || runtime == "0" {
		return ""
	}
	return string(runtime) + " min"
}

func rating(avg, count follwit.FlexString) string {
	if avg == "" {
		return ""
	}
	if count != "" {
		return fmt.Sprintf("Rating: %s (%s votes)", avg, count)
	}
	return "Rating: " + string(avg)
}

func itoa(n int) string {
	if n == 0 {
		return ""
	}
	return fmt.Sprint(n)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
