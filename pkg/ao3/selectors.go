package ao3

import (
	"fmt"
	"regexp"
)

// Tag categories as named in the work page markup.
const (
	CategoryRating       = "rating"
	CategoryWarning      = "warning"
	CategoryCategory     = "category"
	CategoryFandom       = "fandom"
	CategoryRelationship = "relationship"
	CategoryCharacter    = "character"
	CategoryFreeform     = "freeform"
)

// Session controls.
const (
	IDTOSAgree      = "tos_agree"
	IDTOSAccept     = "accept_tos"
	IDLoginDropdown = "login-dropdown"
	IDLoginUsername = "user_session_login_small"
	IDLoginPassword = "user_session_password_small"
)

// New work form fields.
const (
	IDRating       = "work_rating_string"
	IDFandom       = "work_fandom_autocomplete"
	IDRelationship = "work_relationship_autocomplete"
	IDCharacter    = "work_character_autocomplete"
	IDFreeform     = "work_freeform_autocomplete"
	IDTitle        = "work_title"
	IDSummary      = "work_summary"
	IDEndNotesShow = "end-notes-options-show"
	IDEndNotes     = "work_endnotes"
	IDParentShow   = "parent-options-show"
	IDParentURL    = "work_parent_attributes_url"
	IDSeriesShow   = "series-options-show"
	IDSeriesTitle  = "work_series_attributes_title"
	IDSeriesSelect = "work_series_attributes_id"
	IDLanguage     = "work_language_id"
	IDContent      = "content"
)

// Archive vocabulary used when filling the form.
const (
	// WarningCreatorChoseNot is how a work page shows the opt-out warning.
	WarningCreatorChoseNot = "Creator Chose Not To Use Archive Warnings"

	// WarningChooseNot is the value of the matching checkbox on the form.
	WarningChooseNot = "Choose Not To Use Archive Warnings"

	// TitlePrefix is prepended to the podfic title and series name.
	TitlePrefix = "[podfic] "

	// Language is the language the podfic is posted in.
	Language = "English"
)

// PodficTags are added to every podfic's freeform tags.
var PodficTags = []string{
	"Podfic",
	"Podfic & Podficced Works",
}

// Selectors locate the parts of a work page.
type Selectors struct {
	Title   string
	Byline  string
	Summary string

	// Tags is a format string taking the tag category.
	Tags string

	// Series is the position label of the first series the work is in;
	// SeriesLink is the series link inside it.
	Series     string
	SeriesLink string

	// SeriesPart captures the part number from the position label.
	SeriesPart *regexp.Regexp
}

// DefaultSelectors returns the selectors for the archive's current markup.
func DefaultSelectors() Selectors {
	return Selectors{
		Title:      ".preface.group .title.heading",
		Byline:     ".preface.group .byline.heading a",
		Summary:    ".summary .userstuff",
		Tags:       ".%s.tags .tag",
		Series:     "span.series span.position",
		SeriesLink: "a",
		SeriesPart: regexp.MustCompile(`^Part (\d+) of the`),
	}
}

// TagsIn returns the selector for every tag of the given category.
func (s Selectors) TagsIn(category string) string {
	return fmt.Sprintf(s.Tags, category)
}
