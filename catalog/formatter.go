package catalog

import (
	"fmt"
	"strings"
)

// FormatOptions contains options for formatting output
type FormatOptions struct {
	ShowDetails bool
	Heading     string
}

// ConsoleFormatter provides console output formatting for catalog entities
type ConsoleFormatter struct{}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{}
}

// FormatTitleList formats a list of titles for console display
func (f *ConsoleFormatter) FormatTitleList(titles []Title, options FormatOptions) string {
	if len(titles) == 0 {
		return "No movies found."
	}

	var sb strings.Builder

	heading := options.Heading
	if heading == "" {
		heading = "Title"
		if len(titles) != 1 {
			heading += "s"
		}
	}
	fmt.Fprintf(&sb, "\n%s (%d):\n\n", heading, len(titles))

	for i, title := range titles {
		isLast := i == len(titles)-1
		f.formatTitle(&sb, title, isLast, options)

		if !isLast && options.ShowDetails {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatTitleDetails formats a title with its genres and contributors
func (f *ConsoleFormatter) FormatTitleDetails(details *TitleDetails) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\n%s\n", titleLabel(details.Title))
	if details.MediaType != "" {
		fmt.Fprintf(&sb, "Type: %s\n", details.MediaType)
	}
	if ref := details.ReferenceID(); ref != "" {
		fmt.Fprintf(&sb, "Reference: %s\n", ref)
	}
	if len(details.Genres) > 0 {
		fmt.Fprintf(&sb, "Genres: %s\n", strings.Join(details.Genres, ", "))
	}

	if len(details.Contributors) == 0 {
		sb.WriteString("\nNo contributors listed.\n")
		return sb.String()
	}

	fmt.Fprintf(&sb, "\nContributors (%d):\n\n", len(details.Contributors))
	for i, contributor := range details.Contributors {
		prefix := treePrefix(i == len(details.Contributors)-1)
		fmt.Fprintf(&sb, "%s── %s [%d] %s\n", prefix, contributor.Name, contributor.ID, roleLabel(contributor.Roles))
	}

	return sb.String()
}

// FormatContributorDetails formats a contributor with the titles they worked on.
// roles is the contributor's distinct role summary.
func (f *ConsoleFormatter) FormatContributorDetails(details *ContributorDetails, roles []string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\n%s\n", details.Name)
	if len(roles) > 0 {
		fmt.Fprintf(&sb, "Contributions: %s\n", strings.Join(roles, ", "))
	} else {
		sb.WriteString("Contributions: Not available\n")
	}

	if len(details.Titles) == 0 {
		sb.WriteString("\nNo titles listed.\n")
		return sb.String()
	}

	fmt.Fprintf(&sb, "\nMovies worked on (%d):\n\n", len(details.Titles))
	for i, title := range details.Titles {
		isLast := i == len(details.Titles)-1
		fmt.Fprintf(&sb, "%s── %s [%d]\n", treePrefix(isLast), titleLabel(title.Title), title.ID)

		indent := "│   "
		if isLast {
			indent = "    "
		}
		if len(title.Roles) > 0 {
			fmt.Fprintf(&sb, "%sRoles: %s\n", indent, strings.Join(title.Roles, ", "))
		}
	}

	return sb.String()
}

// FormatGenres formats genre options
func (f *ConsoleFormatter) FormatGenres(genres []GenreOption) string {
	if len(genres) == 0 {
		return "No genres available."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\nGenres (%d):\n\n", len(genres))
	for i, genre := range genres {
		fmt.Fprintf(&sb, "%s── %s (ID: %d)\n", treePrefix(i == len(genres)-1), genre.Name, genre.ID)
	}
	return sb.String()
}

// formatTitle formats a single title entry
func (f *ConsoleFormatter) formatTitle(sb *strings.Builder, title Title, isLast bool, options FormatOptions) {
	fmt.Fprintf(sb, "%s── %s\n", treePrefix(isLast), titleLabel(title))

	if !options.ShowDetails {
		return
	}

	indent := "│   "
	if isLast {
		indent = "    "
	}

	fmt.Fprintf(sb, "%sID: %d", indent, title.ID)
	if title.MediaType != "" {
		fmt.Fprintf(sb, " | Type: %s", title.MediaType)
	}
	if ref := title.ReferenceID(); ref != "" {
		fmt.Fprintf(sb, " | Reference: %s", ref)
	}
	sb.WriteString("\n")
}

func treePrefix(isLast bool) string {
	if isLast {
		return "╰"
	}
	return "├"
}

func titleLabel(t Title) string {
	if t.ReleaseYear == nil {
		return t.Name
	}
	return fmt.Sprintf("%s (%d)", t.Name, *t.ReleaseYear)
}

func roleLabel(roles []string) string {
	if len(roles) == 0 {
		return "Role not available"
	}
	return strings.Join(roles, ", ")
}
