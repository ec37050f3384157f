package debugui_test

import (
	"strconv"
	"testing"

	"github.com/plus3/astroshower/shower"
	"github.com/plus3/astroshower/shower/debugui"
	"github.com/plus3/astroshower/shower/headless"
	"github.com/stretchr/testify/assert"
)

func TestFrameHistoryRing(t *testing.T) {
	h := debugui.NewFrameHistory(3)
	assert.Equal(t, float32(0), h.Average())

	h.Record(10)
	h.Record(20)
	assert.Equal(t, float32(15), h.Average(), "average ignores unfilled slots")

	h.Record(30)
	h.Record(40)
	assert.Equal(t, float32(30), h.Average())
	assert.Equal(t, []float32{20, 30, 40}, h.Samples())
}

func TestKindRows(t *testing.T) {
	host := headless.New(shower.Viewport{Width: 640, Height: 480, PixelRatio: 1})
	sim := shower.New(host)
	sim.Mount()
	defer sim.Teardown()
	host.AdvanceN(500)

	stats := sim.Stats()
	rows := debugui.KindRows(stats)

	assert.Len(t, rows, 4)
	assert.Equal(t, "FallingBody", rows[0][0])
	assert.Equal(t, "ImpactParticle", rows[1][0])
	assert.Equal(t, "ShockwaveRing", rows[2][0])
	assert.Equal(t, "total", rows[3][0])
	assert.Equal(t, strconv.Itoa(stats.TotalLive()), rows[3][1])
}

func TestSystemSort(t *testing.T) {
	systems := func() []shower.SystemStats {
		return []shower.SystemStats{
			{Name: "SpawnSystem", AvgDuration: 3, MinDuration: 1, MaxDuration: 9},
			{Name: "BodySystem", AvgDuration: 1, MinDuration: 2, MaxDuration: 4},
			{Name: "DebrisSystem", AvgDuration: 2, MinDuration: 3, MaxDuration: 5},
		}
	}
	names := func(s []shower.SystemStats) []string {
		out := make([]string, len(s))
		for i, sys := range s {
			out[i] = sys.Name
		}
		return out
	}

	tests := []struct {
		name string
		sort debugui.SystemSort
		want []string
	}{
		{"pipeline order", debugui.SystemSort{Column: -1}, []string{"SpawnSystem", "BodySystem", "DebrisSystem"}},
		{"name", debugui.SystemSort{Column: 0}, []string{"BodySystem", "DebrisSystem", "SpawnSystem"}},
		{"avg", debugui.SystemSort{Column: 1}, []string{"BodySystem", "DebrisSystem", "SpawnSystem"}},
		{"min descending", debugui.SystemSort{Column: 2, Descending: true}, []string{"DebrisSystem", "BodySystem", "SpawnSystem"}},
		{"max descending", debugui.SystemSort{Column: 3, Descending: true}, []string{"SpawnSystem", "DebrisSystem", "BodySystem"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := systems()
			tt.sort.Apply(s)
			assert.Equal(t, tt.want, names(s))
		})
	}
}
