package bio

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// dobLayout matches the long-form date printed in the profile table,
// e.g. "August 7, 1987".
const dobLayout = "January 2, 2006"

// Positions of the height, weight and birth-date cells within the
// tombstone table's flattened td sequence. The layout is externally
// controlled and may change without notice.
const (
	dobCellIndex    = 3
	heightCellIndex = 5
	weightCellIndex = 9
)

var errNoTombstone = errors.New("profile missing tombstone container")
var errNoIdentity = errors.New("profile missing player name or team")

var nonDigits = regexp.MustCompile(`\D`)

// Profile holds the fields scraped from one player page. Field groups
// degrade independently: Name and TeamName are mandatory, the rest stay
// zero when their group fails to parse.
type Profile struct {
	Name         string
	TeamName     string
	Height       string // raw token exactly as scraped, e.g. `6' 2"`
	HeightInches *int
	Weight       *int
	DOB          *time.Time
}

// ParseProfile extracts a player profile from the nhl.com player page.
// The name/team group anchors the record: if it cannot be extracted the
// whole profile is rejected. Height/weight and date of birth are
// best-effort and come back unset when their table cells are missing or
// unrecognizable.
func ParseProfile(doc *goquery.Document) (*Profile, error) {
	box := doc.Find("div#tombstone").First()
	if box.Length() == 0 {
		return nil, errNoTombstone
	}

	heading := box.Find("h1").First()

	// The heading text carries the jersey number after a '#'
	name := heading.Find("div").First().Text()
	if idx := strings.Index(name, "#"); idx >= 0 {
		name = name[:idx]
	}
	name = strings.TrimSpace(name)

	// Team name lives in the element right after the heading
	sibling := heading.Next()
	team := strings.TrimSpace(sibling.Children().First().Text())
	if team == "" {
		team = strings.TrimSpace(sibling.Text())
	}

	if name == "" || team == "" {
		return nil, errNoIdentity
	}

	profile := &Profile{
		Name:     name,
		TeamName: team,
	}

	table := box.Find("table").First()
	if table.Length() == 0 {
		return profile, nil
	}

	var cells []string
	table.Find("td").Each(func(i int, cell *goquery.Selection) {
		cells = append(cells, cell.Text())
	})

	if len(cells) > weightCellIndex {
		height := strings.TrimSpace(cells[heightCellIndex])
		profile.Height = height
		if inches, ok := ConvertHeight(height); ok {
			profile.HeightInches = &inches
		}

		if w, err := strconv.Atoi(nonDigits.ReplaceAllString(cells[weightCellIndex], "")); err == nil && w > 0 {
			profile.Weight = &w
		}
	}

	if len(cells) > dobCellIndex {
		for _, line := range strings.Split(cells[dobCellIndex], "\n") {
			if dob, err := time.Parse(dobLayout, strings.TrimSpace(line)); err == nil {
				profile.DOB = &dob
				break
			}
		}
	}

	return profile, nil
}

// ConvertHeight converts a feet-and-inches token like `6' 2"` to total
// inches. The second return value is false when the token does not carry
// two numeric parts; callers keep the raw token and store NULL for the
// numeric column in that case.
func ConvertHeight(token string) (int, bool) {
	parts := strings.Fields(token)
	if len(parts) != 2 {
		return 0, false
	}

	feet, err := strconv.Atoi(nonDigits.ReplaceAllString(parts[0], ""))
	if err != nil {
		return 0, false
	}
	inches, err := strconv.Atoi(nonDigits.ReplaceAllString(parts[1], ""))
	if err != nil {
		return 0, false
	}

	return feet*12 + inches, true
}
