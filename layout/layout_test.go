package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestValidate_OK(t *testing.T) {
	locs := []Location{
		{ID: "Bin1", X: 0, Y: 0, Traversable: true, Kind: KindPicking},
		{ID: "Shelf", X: 5, Y: 0, Width: 4, Depth: 2, Kind: KindObstacle},
		{ID: "Bin1", X: 0, Y: 0, Floor: 2, Traversable: true, Kind: KindPicking},
	}
	assert.NoError(t, Validate(locs))
}

func TestValidate_Rejects(t *testing.T) {
	cases := []struct {
		name string
		locs []Location
		want error
	}{
		{
			name: "empty id",
			locs: []Location{{X: 1}},
			want: ErrInvalidLayout,
		},
		{
			name: "nan coordinate",
			locs: []Location{{ID: "A", X: math.NaN()}},
			want: ErrInvalidLayout,
		},
		{
			name: "infinite coordinate",
			locs: []Location{{ID: "A", Y: math.Inf(1)}},
			want: ErrInvalidLayout,
		},
		{
			name: "negative width",
			locs: []Location{{ID: "A", Width: -1}},
			want: ErrInvalidLayout,
		},
		{
			name: "negative depth",
			locs: []Location{{ID: "A", Depth: -3}},
			want: ErrInvalidLayout,
		},
		{
			name: "duplicate id on same floor",
			locs: []Location{{ID: "A"}, {ID: "A"}},
			want: ErrDuplicateID,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.locs)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, ErrInvalidLayout)
		})
	}
}

func TestLocation_Pos(t *testing.T) {
	l := Location{ID: "A", X: 2, Y: -3}
	assert.Equal(t, r2.Vec{X: 2, Y: -3}, l.Pos())
}

func TestResolveObjects(t *testing.T) {
	objs := []Object{
		{
			ID:     "Rack1",
			Center: r2.Vec{X: 10, Y: 20},
			Width:  4, Depth: 12,
			Zone: "cold",
			PickPoints: []PickPoint{
				{ID: "Rack1_Bin1", Offset: r2.Vec{X: -3, Y: -4}},
				{ID: "Rack1_Bin2", Offset: r2.Vec{X: -3, Y: 4}},
			},
		},
		{ID: "Dock", Center: r2.Vec{X: 0, Y: 0}, Traversable: true, Kind: KindDock},
	}

	locs := ResolveObjects(objs)
	require.NoError(t, Validate(locs))
	require.Len(t, locs, 4)

	rack := locs[0]
	assert.Equal(t, "Rack1", rack.ID)
	assert.Equal(t, KindObstacle, rack.Kind)
	assert.False(t, rack.Traversable)
	assert.Equal(t, 4.0, rack.Width)

	bin := locs[1]
	assert.Equal(t, "Rack1_Bin1", bin.ID)
	assert.Equal(t, 7.0, bin.X)
	assert.Equal(t, 16.0, bin.Y)
	assert.True(t, bin.Traversable)
	assert.Equal(t, KindPicking, bin.Kind)
	assert.Equal(t, "cold", bin.Zone)
	assert.Zero(t, bin.Width)

	dock := locs[3]
	assert.Equal(t, KindDock, dock.Kind)
	assert.True(t, dock.Traversable)
}
