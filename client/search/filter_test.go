package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laraigo_backend/client"
	"laraigo_backend/client/search"
)

func TestNormalizeStripsDiacriticsAndCase(t *testing.T) {
	assert.Equal(t, "graficos", search.Normalize("Gráficos"))
	assert.Equal(t, "capsulas de video", search.Normalize("Cápsulas de Vídeo"))
	assert.Equal(t, "nino", search.Normalize("NIÑO"))
}

func TestMatchesIsAccentAndCaseInsensitiveBothWays(t *testing.T) {
	assert.True(t, search.Matches("Recursos Gráficos", "grafico"))
	assert.True(t, search.Matches("Recursos Graficos", "gráfico"))
	assert.False(t, search.Matches("Recursos Gráficos", "videos"))
}

func TestFilterEmptyTermPassesEverything(t *testing.T) {
	caps := []client.Capsule{{Title: "Onboarding"}, {Title: "Integraciones"}}
	got := search.Filter("Cápsulas de Video", "", caps, func(c client.Capsule) string { return c.Title })
	assert.Equal(t, caps, got)
}

func TestFilterSectionTitleShortCircuits(t *testing.T) {
	resources := []client.Resource{{Title: "Logos"}, {Title: "Plantillas"}}

	// "recurso" hits the section title "Recursos Gráficos": every item shows
	// even though no item title contains it
	got := search.Filter("Recursos Gráficos", "recurso", resources, func(r client.Resource) string { return r.Title })
	assert.Equal(t, resources, got)

	// no section hit: items filter by their own titles
	got = search.Filter("Recursos Gráficos", "logo", resources, func(r client.Resource) string { return r.Title })
	require.Len(t, got, 1)
	assert.Equal(t, "Logos", got[0].Title)
}

func TestVisible(t *testing.T) {
	assert.True(t, search.Visible("", 0), "no active term keeps every section")
	assert.True(t, search.Visible("x", 3))
	assert.False(t, search.Visible("x", 0), "an active term with zero matches hides the section")
}

func TestFilterIndustryGroupsCascade(t *testing.T) {
	industries := []client.Industry{
		{ID: "i1", Name: "Banca"},
		{ID: "i2", Name: "Salud"},
		{ID: "i3", Name: "Acme Corp"},
	}
	demos := []client.Demo{
		{ID: "d1", Title: "Banca bot", IndustryID: "i1"},
		{ID: "d2", Title: "Banca pagos", IndustryID: "i1"},
		{ID: "d3", Title: "Triaje", IndustryID: "i2"},
	}

	// section title match: every group with all its demos
	groups := search.FilterIndustryGroups("Demos por Industria", "demos", industries, demos)
	require.Len(t, groups, 3)
	assert.Len(t, groups[0].Demos, 2)

	// industry-name match keeps the group even with zero demos
	groups = search.FilterIndustryGroups("Demos por Industria", "acme", industries, demos)
	require.Len(t, groups, 1)
	assert.Equal(t, "Acme Corp", groups[0].Industry.Name)
	assert.Empty(t, groups[0].Demos)

	// demo-title match keeps only the owning group, filtered to the hits
	groups = search.FilterIndustryGroups("Demos por Industria", "pagos", industries, demos)
	require.Len(t, groups, 1)
	assert.Equal(t, "Banca", groups[0].Industry.Name)
	require.Len(t, groups[0].Demos, 1)
	assert.Equal(t, "d2", groups[0].Demos[0].ID)

	// no match anywhere: no groups, section hides via Visible
	groups = search.FilterIndustryGroups("Demos por Industria", "zzz", industries, demos)
	assert.Empty(t, groups)
	assert.False(t, search.Visible("zzz", len(groups)))
}

func TestFilterIndustryGroupsEmptyTerm(t *testing.T) {
	industries := []client.Industry{{ID: "i1", Name: "Retail"}}
	groups := search.FilterIndustryGroups("Demos por Industria", "", industries, nil)
	require.Len(t, groups, 1)
	assert.NotNil(t, groups[0].Demos)
	assert.Empty(t, groups[0].Demos)
}
