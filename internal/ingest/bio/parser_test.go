package bio

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
)

func docFromFixture(t *testing.T, name string) *goquery.Document {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("opening fixture %s: %v", name, err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		t.Fatalf("parsing fixture %s: %v", name, err)
	}
	return doc
}

func docFromString(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parsing html: %v", err)
	}
	return doc
}

func TestParseProfile(t *testing.T) {
	profile, err := ParseProfile(docFromFixture(t, "profile.html"))
	if err != nil {
		t.Fatalf("ParseProfile() error: %v", err)
	}

	if profile.Name != "Sidney Crosby" {
		t.Errorf("Name = %q, want %q", profile.Name, "Sidney Crosby")
	}
	if profile.TeamName != "Pittsburgh Penguins" {
		t.Errorf("TeamName = %q, want %q", profile.TeamName, "Pittsburgh Penguins")
	}

	if profile.Height != `6' 2"` {
		t.Errorf("Height = %q, want %q", profile.Height, `6' 2"`)
	}
	if profile.HeightInches == nil || *profile.HeightInches != 74 {
		t.Errorf("HeightInches = %v, want 74", profile.HeightInches)
	}

	if profile.Weight == nil || *profile.Weight != 200 {
		t.Errorf("Weight = %v, want 200", profile.Weight)
	}

	wantDOB := time.Date(1987, 8, 7, 0, 0, 0, 0, time.UTC)
	if profile.DOB == nil || !profile.DOB.Equal(wantDOB) {
		t.Errorf("DOB = %v, want %v", profile.DOB, wantDOB)
	}
}

func TestParseProfileWithoutTable(t *testing.T) {
	profile, err := ParseProfile(docFromFixture(t, "profile_no_table.html"))
	if err != nil {
		t.Fatalf("ParseProfile() error: %v", err)
	}

	if profile.Name != "Joe Prospect" {
		t.Errorf("Name = %q, want %q", profile.Name, "Joe Prospect")
	}
	if profile.TeamName != "Toronto Maple Leafs" {
		t.Errorf("TeamName = %q, want %q", profile.TeamName, "Toronto Maple Leafs")
	}

	if profile.Height != "" || profile.HeightInches != nil {
		t.Errorf("height should be unset, got %q / %v", profile.Height, profile.HeightInches)
	}
	if profile.Weight != nil {
		t.Errorf("Weight = %v, want nil", profile.Weight)
	}
	if profile.DOB != nil {
		t.Errorf("DOB = %v, want nil", profile.DOB)
	}
}

func TestParseProfileUnparseableHeight(t *testing.T) {
	html := `<html><body><div id="tombstone">
		<h1><div>Big Walt #4</div></h1>
		<p><span>Philadelphia Flyers</span></p>
		<table>
			<tr><td>a</td><td>b</td><td>c</td><td>d</td></tr>
			<tr><td>Height:</td><td>tall</td><td>e</td><td>f</td></tr>
			<tr><td>Weight:</td><td>235</td><td>g</td><td>h</td></tr>
		</table>
	</div></body></html>`

	profile, err := ParseProfile(docFromString(t, html))
	if err != nil {
		t.Fatalf("ParseProfile() error: %v", err)
	}

	if profile.Height != "tall" {
		t.Errorf("Height = %q, want raw token kept", profile.Height)
	}
	if profile.HeightInches != nil {
		t.Errorf("HeightInches = %v, want nil for unparseable token", profile.HeightInches)
	}
	if profile.Weight == nil || *profile.Weight != 235 {
		t.Errorf("Weight = %v, want 235", profile.Weight)
	}
}

func TestParseProfileMissingTombstone(t *testing.T) {
	_, err := ParseProfile(docFromString(t, `<html><body><p>404</p></body></html>`))
	if !errors.Is(err, errNoTombstone) {
		t.Fatalf("err = %v, want errNoTombstone", err)
	}
}

func TestParseProfileMissingIdentity(t *testing.T) {
	html := `<html><body><div id="tombstone"><h1><div></div></h1></div></body></html>`
	_, err := ParseProfile(docFromString(t, html))
	if !errors.Is(err, errNoIdentity) {
		t.Fatalf("err = %v, want errNoIdentity", err)
	}
}

func TestConvertHeight(t *testing.T) {
	tests := []struct {
		token  string
		inches int
		ok     bool
	}{
		{`6' 2"`, 74, true},
		{`5' 11"`, 71, true},
		{`6' 0"`, 72, true},
		{"6 2", 74, true},
		{"6-2", 0, false},
		{"", 0, false},
		{"tall", 0, false},
		{`six' two"`, 0, false},
	}

	for _, tt := range tests {
		got, ok := ConvertHeight(tt.token)
		if ok != tt.ok {
			t.Errorf("ConvertHeight(%q) ok = %v, want %v", tt.token, ok, tt.ok)
			continue
		}
		if ok && got != tt.inches {
			t.Errorf("ConvertHeight(%q) = %d, want %d", tt.token, got, tt.inches)
		}
	}
}
