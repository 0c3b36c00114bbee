// Package element implements the shared lifecycle of Facet host elements:
// deferred materialization, simulated slot redistribution, and delegation
// to toolkit widgets.
//
// A Definition describes one component kind: the generated markup, its
// named regions, and the toolkit widget it delegates to. A Host is one live
// instance. The lifecycle contract every component inherits:
//
//   - Connected defers materialization by one pass so the host's authored
//     children are fully parsed before they are read.
//   - Materialization happens exactly once, no matter how many times the
//     attach hook fires; detach/re-attach never rebuilds markup.
//   - Imperative operations (Show/Hide/Toggle) materialize synchronously on
//     demand, so they never race the deferred render.
//   - Authored children are captured once and redistributed into named
//     regions by their slot marker attribute; unmarked or unmatched
//     children land in the default region, in document order.
//   - A missing toolkit widget downgrades the component to static markup;
//     it is never an error.
package element
