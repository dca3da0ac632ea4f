package scenario

import (
	"github.com/google/uuid"
)

// Descriptor is one row of scenario_list.csv.
type Descriptor struct {
	ShortName      string
	Title          string
	AreaCode       string
	EndYear        string
	Description    string
	ID             *string
	KeepCompatible bool
	CurveFile      *string
}

// Row renders the descriptor in ListHeader order. Nil fields render as "".
func (d Descriptor) Row() []string {
	return []string{
		d.ShortName,
		d.Title,
		d.AreaCode,
		d.EndYear,
		d.Description,
		deref(d.ID),
		boolToken(d.KeepCompatible),
		deref(d.CurveFile),
	}
}

// Template holds the descriptor fields shared by every generated scenario.
type Template struct {
	Title          string
	AreaCode       string
	EndYear        string
	Description    string
	KeepCompatible bool
	// CurveFile is left empty in every descriptor when "".
	CurveFile string
	// IDNamespace, when not uuid.Nil, gives each scenario a name-based
	// (version 5) UUID derived from its short name. Otherwise ID is empty.
	IDNamespace uuid.UUID
}

// DefaultTemplate returns the descriptor fields the simulator has always
// been given for sampled scenarios.
func DefaultTemplate() Template {
	return Template{
		Title:       "Scenario_sample",
		AreaCode:    "UK_united_kingdom",
		EndYear:     "2020",
		Description: "sample",
	}
}

// Describe returns the descriptor of the k-th scenario.
func (t Template) Describe(k int) Descriptor {
	d := Descriptor{
		ShortName:      Name(k),
		Title:          t.Title,
		AreaCode:       t.AreaCode,
		EndYear:        t.EndYear,
		Description:    t.Description,
		KeepCompatible: t.KeepCompatible,
	}

	if t.IDNamespace != uuid.Nil {
		id := uuid.NewSHA1(t.IDNamespace, []byte(d.ShortName)).String()
		d.ID = &id
	}

	if t.CurveFile != "" {
		curve := t.CurveFile
		d.CurveFile = &curve
	}

	return d
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func boolToken(b bool) string {
	if b {
		return "TRUE"
	}

	return "FALSE"
}
