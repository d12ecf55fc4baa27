package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTitleList(t *testing.T) {
	formatter := NewConsoleFormatter()

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "No movies found.", formatter.FormatTitleList(nil, FormatOptions{}))
	})

	t.Run("tree layout", func(t *testing.T) {
		titles := []Title{
			{ID: 1, Name: "Alien", ReleaseYear: ptr(1979)},
			{ID: 2, Name: "Untitled"},
		}

		out := formatter.FormatTitleList(titles, FormatOptions{})
		assert.Equal(t, "\nTitles (2):\n\n├── Alien (1979)\n╰── Untitled\n\n", out)
	})

	t.Run("details and heading", func(t *testing.T) {
		titles := []Title{
			{ID: 7, Name: "Heat", ReleaseYear: ptr(1995), MediaType: "movie", ExternalReferenceID: ptr("tt0113277")},
		}

		out := formatter.FormatTitleList(titles, FormatOptions{ShowDetails: true, Heading: "Results"})
		assert.Contains(t, out, "Results (1):")
		assert.Contains(t, out, "╰── Heat (1995)")
		assert.Contains(t, out, "    ID: 7 | Type: movie | Reference: tt0113277")
	})
}

func TestFormatTitleDetails(t *testing.T) {
	formatter := NewConsoleFormatter()

	details := &TitleDetails{
		Title:  Title{ID: 42, Name: "Heat", ReleaseYear: ptr(1995), MediaType: "movie"},
		Genres: []string{"Crime", "Drama"},
		Contributors: []Contributor{
			{ID: 3, Name: "Michael Mann", Roles: []string{"director"}},
			{ID: 4, Name: "Al Pacino"},
		},
	}

	out := formatter.FormatTitleDetails(details)
	assert.Contains(t, out, "Heat (1995)")
	assert.Contains(t, out, "Genres: Crime, Drama")
	assert.Contains(t, out, "Contributors (2):")
	assert.Contains(t, out, "├── Michael Mann [3] director")
	assert.Contains(t, out, "╰── Al Pacino [4] Role not available")

	details.Contributors = nil
	assert.Contains(t, formatter.FormatTitleDetails(details), "No contributors listed.")
}

func TestFormatContributorDetails(t *testing.T) {
	formatter := NewConsoleFormatter()

	details := &ContributorDetails{
		ID:   3,
		Name: "Michael Mann",
		Titles: []ContributorTitle{
			{Title: Title{ID: 42, Name: "Heat", ReleaseYear: ptr(1995)}, Roles: []string{"director", "writer"}},
		},
	}

	out := formatter.FormatContributorDetails(details, []string{"director", "writer"})
	assert.Contains(t, out, "Contributions: director, writer")
	assert.Contains(t, out, "Movies worked on (1):")
	assert.Contains(t, out, "╰── Heat (1995) [42]")
	assert.Contains(t, out, "    Roles: director, writer")

	out = formatter.FormatContributorDetails(&ContributorDetails{Name: "Nobody"}, nil)
	assert.Contains(t, out, "Contributions: Not available")
	assert.Contains(t, out, "No titles listed.")
}

func TestFormatGenres(t *testing.T) {
	formatter := NewConsoleFormatter()

	assert.Equal(t, "No genres available.", formatter.FormatGenres(nil))

	out := formatter.FormatGenres([]GenreOption{{ID: 1, Name: "Action"}, {ID: 2, Name: "Drama"}})
	assert.Equal(t, "\nGenres (2):\n\n├── Action (ID: 1)\n╰── Drama (ID: 2)\n", out)
}
