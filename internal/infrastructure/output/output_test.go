package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elemcraft/elemcraft/internal/application/dto"
	"github.com/elemcraft/elemcraft/internal/domain/entities"
)

func sampleResult() dto.CombineResult {
	return dto.CombineResult{
		Inputs:         [2]string{"Water", "Fire"},
		Result:         "Steam",
		Glyph:          "💨",
		Tags:           []string{"gas", "hot"},
		IsNewDiscovery: true,
		Notices: []dto.Notice{
			{Kind: dto.NoticeDiscovery, Message: "New Discovery: 💨 Steam!"},
		},
	}
}

func sampleWorld() *entities.World {
	w := entities.NewWorld()
	w.Vocabulary.Set("Water", entities.ElementRecord{Glyph: "💧", Tags: []string{"liquid"}})
	w.Vocabulary.Set("Fire", entities.ElementRecord{Glyph: "🔥", Tags: []string{"hot"}})
	w.Vocabulary.Set("Steam", entities.ElementRecord{Glyph: "💨", Tags: []string{"gas"}})
	w.Recipes.Bind("Water", "Fire", "Steam")
	w.Discovered.Add("Water")
	w.Discovered.Add("Fire")
	return w
}

func plainTable(buf *bytes.Buffer) *TableFormatter {
	f := NewTableFormatter(buf)
	f.EnableColor = false
	return f
}

func TestTableFormatter_Combine(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, plainTable(buf).Combine(sampleResult()))

	assert.Equal(t, "New Discovery: 💨 Steam!\ntags: gas, hot\n", buf.String())
}

func TestTableFormatter_CombineWithoutNotices(t *testing.T) {
	buf := &bytes.Buffer{}
	res := sampleResult()
	res.Notices = nil
	res.Tags = nil
	require.NoError(t, plainTable(buf).Combine(res))

	assert.Equal(t, "Water + Fire = 💨 Steam\n", buf.String())
}

func TestTableFormatter_Elements(t *testing.T) {
	buf := &bytes.Buffer{}
	views := []dto.ElementView{
		{Name: "Air", Glyph: "💨", Tags: []string{"gas"}},
		{Name: "Big Bang", Glyph: "💥", Tags: []string{"energy"}},
	}
	require.NoError(t, plainTable(buf).Elements(views))

	assert.Equal(t, "Elements (2)\n  💨 Air       gas\n  💥 Big Bang  energy\n", buf.String())
}

func TestTableFormatter_EmptyElements(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, plainTable(buf).Elements(nil))
	assert.Contains(t, buf.String(), "No elements match.")
}

func TestTableFormatter_Recipes(t *testing.T) {
	buf := &bytes.Buffer{}
	recipes := []dto.RecipeView{
		{Key: "Air+Air", First: "Air", Second: "Air", Result: "Pressure"},
		{Key: "Fire+Water", First: "Fire", Second: "Water", Result: "Steam"},
	}
	require.NoError(t, plainTable(buf).Recipes(recipes))

	assert.Equal(t, "Recipes (2)\n  Air + Air    = Pressure\n  Fire + Water = Steam\n", buf.String())
}

func TestTableFormatter_Element(t *testing.T) {
	buf := &bytes.Buffer{}
	view := dto.ElementView{Name: "Ghost", Glyph: "❓", Tags: []string{"unknown"}}
	require.NoError(t, plainTable(buf).Element(view))

	assert.Equal(t, "❓ Ghost  (unknown)\ntags: unknown\n", buf.String())
}

func TestJSONFormatter_Combine(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, NewJSONFormatter(buf, false).Combine(sampleResult()))

	var decoded dto.CombineResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleResult(), decoded)
}

func TestJSONFormatter_WorldUsesRecordFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, NewJSONFormatter(buf, true).World(sampleWorld()))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	assert.EqualValues(t, 2, raw["version"])
	assert.Equal(t, map[string]any{"Fire+Water": "Steam"}, raw["recipes"])
}

func TestJSONFormatter_EmptyListsAreArrays(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, NewJSONFormatter(buf, false).Elements(nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestYAMLFormatter_World(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, NewYAMLFormatter(buf).World(sampleWorld()))

	var doc struct {
		Discovered []string `yaml:"discovered"`
		Recipes    []struct {
			Inputs []string `yaml:"inputs"`
			Result string   `yaml:"result"`
		} `yaml:"recipes"`
		Elements []dto.ElementView `yaml:"elements"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, []string{"Water", "Fire"}, doc.Discovered)
	require.Len(t, doc.Recipes, 1)
	assert.Equal(t, []string{"Fire", "Water"}, doc.Recipes[0].Inputs)
	assert.Equal(t, "Steam", doc.Recipes[0].Result)
	require.Len(t, doc.Elements, 3)
	assert.False(t, doc.Elements[2].Discovered)
}
