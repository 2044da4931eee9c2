// Package cohort turns ages into normalized cohort histograms.
//
// A Binning splits [0, MaxAge) into fixed-width, half-open cohorts. Every
// group of the report (the legislature, each party, the executive and the
// weighted national population) is reduced once to a CohortHistogram whose
// percentages sum to 100, or are all zero when the group is empty. The
// results are held in a Summary that the chart composers read from.
package cohort
