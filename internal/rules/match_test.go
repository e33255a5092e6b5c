package rules

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func subject(area float64, seats int, features ...string) Subject {
	set := make(map[string]struct{}, len(features))
	for _, tag := range features {
		set[tag] = struct{}{}
	}
	return Subject{Area: area, Seats: seats, Features: set}
}

func TestEmptyConditionMatchesEverything(t *testing.T) {
	var cond Condition
	assert.True(t, cond.Matches(subject(1, 0)))
	assert.True(t, cond.Matches(subject(10000, 900, "gas", "alcohol")))
}

func TestAreaBoundsAreInclusive(t *testing.T) {
	cond := Condition{AreaMax: f(150)}
	assert.True(t, cond.Matches(subject(150, 0)))
	assert.False(t, cond.Matches(subject(150.0001, 0)))

	cond = Condition{AreaMin: f(151)}
	assert.True(t, cond.Matches(subject(151, 0)))
	assert.False(t, cond.Matches(subject(150.9, 0)))
}

func TestSeatBoundsAreInclusive(t *testing.T) {
	cond := Condition{SeatsMax: n(50)}
	assert.True(t, cond.Matches(subject(100, 50)))
	assert.False(t, cond.Matches(subject(100, 51)))

	cond = Condition{SeatsMin: n(201)}
	assert.True(t, cond.Matches(subject(100, 201)))
	assert.False(t, cond.Matches(subject(100, 200)))
}

func TestFeaturesAny(t *testing.T) {
	cond := Condition{FeaturesAny: []string{"gas", "hood"}}
	assert.True(t, cond.Matches(subject(50, 10, "gas")))
	assert.True(t, cond.Matches(subject(50, 10, "hood", "meat")))
	assert.False(t, cond.Matches(subject(50, 10, "meat")))
	assert.False(t, cond.Matches(subject(50, 10)))
}

func TestFeaturesAll(t *testing.T) {
	cond := Condition{FeaturesAll: []string{"gas", "hood"}}
	assert.True(t, cond.Matches(subject(50, 10, "gas", "hood", "meat")))
	assert.False(t, cond.Matches(subject(50, 10, "gas")))
	assert.False(t, cond.Matches(subject(50, 10)))
}

func TestClausesAreConjoined(t *testing.T) {
	cond := Condition{
		AreaMax:     f(150),
		SeatsMax:    n(50),
		FeaturesAll: []string{"gas"},
	}
	assert.True(t, cond.Matches(subject(120, 40, "gas")))
	assert.False(t, cond.Matches(subject(120, 40)))
	assert.False(t, cond.Matches(subject(200, 40, "gas")))
	assert.False(t, cond.Matches(subject(120, 60, "gas")))
}

func TestMatchPreservesCorpusOrder(t *testing.T) {
	corpus := []Rule{
		{ID: "a", If: Condition{AreaMin: f(100)}},
		{ID: "b"},
		{ID: "c", If: Condition{FeaturesAny: []string{"gas"}}},
		{ID: "d", If: Condition{SeatsMin: n(500)}},
		{ID: "e"},
	}

	matched := Match(corpus, subject(120, 10, "gas"))

	ids := make([]string, 0, len(matched))
	for _, r := range matched {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"a", "b", "c", "e"}, ids)
}

func TestMatchReturnsSubsetOfCorpus(t *testing.T) {
	corpus := Builtin()
	matched := Match(corpus, subject(80, 25, "gas"))

	byID := make(map[string]Rule, len(corpus))
	for _, r := range corpus {
		byID[r.ID] = r
	}
	for _, m := range matched {
		_, ok := byID[m.ID]
		require.True(t, ok, "matched rule %s not in corpus", m.ID)
	}
}

func TestBuiltinScenarioSmallGasRestaurant(t *testing.T) {
	// area 80, seats 25, gas: declaration-track restaurant with gas equipment.
	matched := Match(Builtin(), subject(80, 25, "gas"))

	ids := make(map[string]bool, len(matched))
	for _, r := range matched {
		ids[r.ID] = true
	}

	assert.True(t, ids["health-baseline"])
	assert.True(t, ids["fire-affidavit"])
	assert.True(t, ids["gas-cert"])
	assert.True(t, ids["hood-suppression"])
	assert.False(t, ids["fire-full-area"])
	assert.False(t, ids["fire-full-seats"])
	assert.False(t, ids["police-alcohol"])
	assert.False(t, ids["police-capacity"])
	assert.False(t, ids["delivery-rules"])
}

func TestBuiltinScenarioLargeAlcoholVenue(t *testing.T) {
	// area 300, seats 150, alcohol+delivery: full review plus police conditions.
	matched := Match(Builtin(), subject(300, 150, "alcohol", "delivery"))

	ids := make(map[string]bool, len(matched))
	for _, r := range matched {
		ids[r.ID] = true
	}

	assert.True(t, ids["fire-full-area"])
	assert.True(t, ids["fire-full-seats"])
	assert.True(t, ids["police-alcohol"])
	assert.True(t, ids["delivery-rules"])
	assert.False(t, ids["fire-affidavit"])
	// 150 seats does not cross the 200 occupancy trigger.
	assert.False(t, ids["police-capacity"])
}

func TestParallelMatchingAgreesWithSequential(t *testing.T) {
	// Build a corpus well above the parallel threshold with varied conditions.
	corpus := make([]Rule, 0, 4*parallelThreshold)
	for i := 0; i < 4*parallelThreshold; i++ {
		r := Rule{ID: fmt.Sprintf("r-%d", i)}
		switch i % 5 {
		case 0:
			r.If = Condition{AreaMin: f(float64(i % 400))}
		case 1:
			r.If = Condition{SeatsMax: n(i % 300)}
		case 2:
			r.If = Condition{FeaturesAny: []string{"gas", "meat"}}
		case 3:
			r.If = Condition{FeaturesAll: []string{"alcohol"}, SeatsMin: n(i % 100)}
		}
		corpus = append(corpus, r)
	}

	s := subject(180, 120, "gas", "alcohol")

	seq := matchSequential(corpus, s)
	par := matchParallel(corpus, s)
	require.Equal(t, len(seq), len(par))
	assert.Equal(t, seq, par)
}

func BenchmarkMatchLargeCorpus(b *testing.B) {
	corpus := make([]Rule, 0, 5000)
	for i := 0; i < 5000; i++ {
		corpus = append(corpus, Rule{
			ID: fmt.Sprintf("r-%d", i),
			If: Condition{AreaMin: f(float64(i % 500)), FeaturesAny: []string{"gas"}},
		})
	}
	s := subject(250, 80, "gas")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Match(corpus, s)
	}
}
