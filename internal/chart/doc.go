// Package chart draws the report figures with gonum/plot.
//
// A Panel is one mirrored horizontal bar chart ("pyramid") of a cohort
// histogram: each cohort is a bar from -p to +p centered on x = 0, labelled
// with its rounded percentage. Panels are tiled into a Figure by the
// composers in compose.go; MembersFigure draws every member of the
// legislature as a jittered point per party.
//
// Colors come from an immutable Palette that each composition builds for
// itself, so adding the legislature color for one figure never leaks into
// another.
package chart
