// Package frame defines the analysis-frame value type shared by the
// feature-extraction stages and a windowed slicer that produces frames
// from a sample stream.
//
// A [Frame] carries a numeric payload plus positioning metadata. Stages
// transform frames copy-on-write via [Frame.WithData]: the returned frame
// carries the new payload and keeps every metadata field, the input frame
// is never mutated. [Processor] is the single capability a processing
// stage exposes.
package frame
