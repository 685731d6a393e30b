package services

import (
	"time"

	"github.com/elemcraft/elemcraft/internal/domain/entities"
)

type fixedRand struct {
	value float64
	calls int
}

func (r *fixedRand) Float64() float64 {
	r.calls++
	return r.value
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

var testBase = []string{"Water", "Fire", "Earth", "Air"}

func rec(glyph string, tags ...string) entities.ElementRecord {
	return entities.ElementRecord{Glyph: glyph, Tags: tags}
}

func testWorld() *entities.World {
	w := entities.NewWorld()
	w.Vocabulary.Set("Water", rec("💧", "liquid", "wet", "cold", "flow", "natural", "base"))
	w.Vocabulary.Set("Fire", rec("🔥", "hot", "energy", "light", "danger", "transform", "base"))
	w.Vocabulary.Set("Earth", rec("🌍", "solid", "ground", "natural", "stable", "mineral", "base"))
	w.Vocabulary.Set("Air", rec("💨", "gas", "invisible", "flow", "sky", "natural", "base"))
	w.Vocabulary.Set("Steam", rec("💨", "gas", "hot", "watery", "airborne", "energy", "derived"))
	w.Vocabulary.Set("Metal", rec("⚙️", "solid", "hard", "mineral", "shiny", "conductive", "hot", "derived"))
	w.Vocabulary.Set("Big Bang", rec("💥", "energy", "abstract", "hot", "light", "origin", "derived"))
	for _, name := range append(testBase, "Steam", "Metal") {
		w.Discovered.Add(name)
	}
	return w
}

func newTestGenerator(r RandomSource) *NameGenerator {
	g, err := NewNameGenerator(DefaultGeneratorConfig(), testBase, r, fixedClock{now: time.UnixMilli(1700000000000)})
	if err != nil {
		panic(err)
	}
	return g
}
