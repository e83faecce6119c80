// SPDX-License-Identifier: MIT

package hailstone

// SampleObservations returns the three reference hailstones as a fresh slice.
// The rock through them starts at
// 155272940103072, 386989974246822, 214769025967097 with velocity 250, -179, 81.
func SampleObservations() []Observation {
	return []Observation{
		{
			Position: Vec3{X: 368925240582247, Y: 337542061908847, Z: 298737178993847},
			Velocity: Vec3{X: 21, Y: -126, Z: -9},
		},
		{
			Position: Vec3{X: 287668477092999, Y: 306868689869154, Z: 240173335647821},
			Velocity: Vec3{X: -21, Y: -15, Z: 29},
		},
		{
			Position: Vec3{X: 172063062341522, Y: 378381220662744, Z: 223621999511007},
			Velocity: Vec3{X: -25, Y: -38, Z: -64},
		},
	}
}
