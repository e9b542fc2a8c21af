// Package schema builds a dataset.Handler from a declarative YAML document.
//
// Every kind, domain and constraint is declared explicitly; the parser
// infers nothing from data. Unknown document fields are rejected, so a
// typo cannot silently drop a constraint.
//
// Document shape:
//
//	features:
//	  - name: age
//	    kind: contiguous
//	    min: 18
//	    max: 95
//	    monotone: increase
//	  - name: education
//	    kind: categorical
//	    values: [primary, secondary, tertiary]
//	    ordered: true
//	  - name: sex
//	    kind: binary
//	    values: [female, male]
//	    immutable: true
//	target:
//	  name: outcome
//	  kind: binary
//	  values: ["0", "1"]
//	constraints:
//	  causal_increase:
//	    - { cause: education, effect: age }
//	  greater_than:
//	    - { greater: age, smaller: years_employed }
//
// Binary features declare exactly two values (negative first), categorical
// at least two (rank order when ordered: true), contiguous a min < max.
// monotone accepts none, increase or decrease.
package schema
