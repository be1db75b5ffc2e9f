// Package recipeclip turns arbitrary recipe web pages into normalized,
// sectioned recipe records. It fetches a page, strips boilerplate, asks a
// generative model to structure the remaining text, validates the result,
// and upserts it into storage keyed by canonical source URL. A grounded
// question-answering responder answers questions scoped to a single stored
// recipe.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, gemini/, trafilatura/);
// the ingest/ package wires the extraction pipeline together.
package recipeclip
