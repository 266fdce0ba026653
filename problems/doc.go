/*
Package problems gives two worked examples of the mdd.Problem contract:
Sum, a trivial boolean maximization used to exercise the solver on tiny
instances, and MinLA, a linear arrangement problem (place the vertices of
a weighted graph on a line, maximizing the sum over edges of weight times
the distance between its endpoints' positions). The solver only ever
maximizes; a caller wanting the classical *minimum* linear arrangement
negates edge weights before building the instance, following mdd's own
minimization-by-negation convention.

Neither of these implementations reads an instance file: describing file
formats is left to callers, as is any CLI. Graphs are built
programmatically with NewMinLA and a list of Edge values.
*/
package problems
