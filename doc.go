/*
Package edn decodes the EDN text returned by a Datomic-style REST service
into an immutable tree of values.

# Values

Decoded values implement types.Value, a closed set of variants: nil,
booleans, integers of arbitrary precision, doubles, strings, characters,
symbols, keywords, sequences (vectors and lists), sets, maps, instants,
UUIDs and temporary ids. Integers are never truncated, whatever their
magnitude: entity ids and temporary ids routinely use the whole 64-bit
range.

	v, err := edn.Decode(`{:db/id 17592186045417, :person/name "Peter"}`)
	if err != nil {
		return err
	}
	name, _ := types.AsMap(v).GetKeyword("person/name")

Sets and map keys are compared structurally: two collections holding equal
elements are equal, whatever their order, and lists and vectors holding
equal elements are equal.

# Tagged literals

A tagged literal is a '#' followed by a tag name and a form. The decoder
interprets #inst (an instant), #uuid and #db/id (a temporary id, kept as an
opaque marker). The value of any other tagged literal is returned as is,
unless Options.KeepUnknownTags is set. Applications can provide their own
tags by passing a registry built with tags.Extend.

# Service responses

DecodeRows, DecodeTxReport and DecodeDatoms check that the decoded value has
the shape of a query result, a transaction report or a list of datoms.
DecodeDatomsJSON reads datoms from the JSON representation of the same
responses.

# Errors

Every failure can be classified with errors.Is: text that cannot be decoded
is marked with errors.ErrMalformedInput, and a value that doesn't have the
shape an adapter expects with errors.ErrShapeMismatch.
*/
package edn
