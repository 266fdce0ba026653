/*
Package mdd gives access to a generic branch-and-bound solver over
bounded-width multi-valued decision diagrams (MDDs), for discrete
maximization problems.

A problem is described by implementing the Problem interface: an initial
Node (root), a number of variables, a way to expand a Node's state for one
more variable (Successors) and a way to over-approximate a set of states
into one (Merge). The solver compiles this description, layer by layer,
into bounded-width MDDs that produce both feasible solutions (restricted
diagrams) and upper bounds (relaxed diagrams), and drives a best-first
search across the subproblems exposed by each relaxed diagram's exact
cutset.

Describing a problem

A concrete Problem only has to answer four questions: what is the empty
assignment, how many variables there are, what states follow from
assigning one more variable, and how to soundly over-approximate several
states into one. See package problems for two worked examples (a trivial
boolean sum and a minimum linear arrangement problem).

Solving a problem

To solve a problem, create a Solver with said problem and call Solve:

    s := mdd.NewSolver(pb)
    result := s.Solve(context.Background())

The Result's Incumbent field holds the best Node found, or nil if the
search proved the problem has no feasible assignment. LowerBound and
UpperBound converge to the same value when the search completes without
hitting its time budget; Gap reports how far apart they still are.

By default the solver picks the width of each compiled MDD adaptively
(the number of yet-unbound variables); SetWidth fixes it instead, trading
bound quality for compilation speed.

Custom heuristics can be plugged in via NewSolverWithSelectors, replacing
any of the three default selectors (variable order, merge candidates,
delete candidates) described in the VariableSelector, MergeSelector and
DeleteSelector interfaces.
*/
package mdd
