// Package charton is a small grammar-of-graphics charting engine.
//
// A Chart composes layers (marks bound to tabular data) over one
// shared Cartesian coordinate frame. The chart aggregates each layer's
// axis requirements into scales, generates ticks, negotiates margin
// space between the plot area and legends, and renders everything to
// SVG or PNG through gonum.org/v1/plot's vector graphics backends.
//
// Mark implementations live in the mark subpackage, tabular data
// sources in the data subpackage.
package charton
