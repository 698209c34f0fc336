// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package orientation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name    string
		x, y, z float32
		want    Orientation
	}{
		{"x up", 3, 0, 0, LandscapeUp},
		{"x down", -3, 0, 0, LandscapeDown},
		{"y up", 0, 3, 0, PortraitUp},
		{"y down", 0, -3, 0, PortraitDown},
		{"z up", 0, 0, 3, FaceUp},
		{"z down", 0, 0, -3, FaceDown},
		{"below threshold", 1, -1, 2, Unknown},
		{"zero", 0, 0, 0, Unknown},
		{"x beats y", 3, 3, 0, LandscapeUp},
		{"x beats z", -3, 0, 9, LandscapeDown},
		{"y beats z", 0, -2.5, 9, PortraitDown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.x, tc.y, tc.z, 2))
		})
	}
}

func TestPredicates(t *testing.T) {
	all := []Orientation{Unknown, PortraitUp, PortraitDown, LandscapeUp, LandscapeDown, FaceUp, FaceDown}
	for _, o := range all {
		n := 0
		for _, p := range []bool{o.IsFlat(), o.IsLandscape(), o.IsPortrait()} {
			if p {
				n++
			}
		}
		if o == Unknown {
			assert.Zero(t, n, "%v", o)
		} else {
			assert.Equal(t, 1, n, "%v", o)
		}
	}
	assert.True(t, FaceDown.IsFlat())
	assert.True(t, LandscapeDown.IsLandscape())
	assert.True(t, PortraitUp.IsPortrait())
}

func TestText(t *testing.T) {
	b, err := json.Marshal(struct {
		O Orientation `json:"o"`
	}{LandscapeUp})
	require.NoError(t, err)
	assert.JSONEq(t, `{"o":"landscape_up"}`, string(b))

	var got struct {
		O Orientation `json:"o"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"o":"face_down"}`), &got))
	assert.Equal(t, FaceDown, got.O)

	_, err = ParseOrientation("sideways")
	assert.Error(t, err)
	assert.Equal(t, "Orientation(99)", Orientation(99).String())
	_, err = Orientation(-1).MarshalText()
	assert.Error(t, err)
}
