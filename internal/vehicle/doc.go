// Package vehicle implements the planar half-car ride model: 4 degrees of
// freedom (body heave, body pitch, and the two unsprung vertical
// displacements) with linear suspension springs and dampers and undamped
// tire springs.
//
// [Params] holds the physical constants, [Assemble] derives the mass,
// damping, and stiffness matrices, and [Model] is the resulting
// [dynamo.System]. A small catalog of preset vehicles ([GR86], [LexusLS],
// [Samber], [Sedan]) covers the common cases.
package vehicle
