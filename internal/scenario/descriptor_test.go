package scenario

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTemplateDescribe(t *testing.T) {
	d := DefaultTemplate().Describe(3)

	assert.Equal(t, Descriptor{
		ShortName:   "sample_3",
		Title:       "Scenario_sample",
		AreaCode:    "UK_united_kingdom",
		EndYear:     "2020",
		Description: "sample",
	}, d)
	assert.Equal(t,
		[]string{"sample_3", "Scenario_sample", "UK_united_kingdom", "2020", "sample", "", "FALSE", ""},
		d.Row())
}

func TestTemplateOptionalFields(t *testing.T) {
	ns := uuid.MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8")

	tmpl := DefaultTemplate()
	tmpl.KeepCompatible = true
	tmpl.CurveFile = "curves_2050"
	tmpl.IDNamespace = ns

	d := tmpl.Describe(0)
	require.NotNil(t, d.ID)
	require.NotNil(t, d.CurveFile)

	id, err := uuid.Parse(*d.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(5), id.Version())
	assert.Equal(t, uuid.NewSHA1(ns, []byte("sample_0")), id)

	// Stable across calls, distinct across scenarios.
	assert.Equal(t, *d.ID, *tmpl.Describe(0).ID)
	assert.NotEqual(t, *d.ID, *tmpl.Describe(1).ID)

	row := d.Row()
	assert.Equal(t, "TRUE", row[6])
	assert.Equal(t, "curves_2050", row[7])
	assert.Equal(t, *d.ID, row[5])
}
