// Package proposal parses challenge proposal templates and encodes, decodes
// and compares the answers given to them.
//
// Two template syntaxes exist. Choice challenges list their proposals one per
// dash-prefixed line:
//
//	- Paris
//	- Lyon
//
// Free-text challenges interleave text with input fields:
//
//	Capital: ${city#a city name}
//
// Choice answers are stored as ascending 1-based indices ("1,3"), multi-field
// answers as "key: value" lines and skipped challenges as AbandonedSentinel.
//
// Everything in this package is pure and safe for concurrent use. Parsers and
// the selection codec never fail: malformed input yields an empty result.
// Answer, solution and result-details blocks are decoded strictly and report
// a *DecodeError.
package proposal
