// Package model defines the data carried through sortn's line pipeline.
//
// The main type is Batch: the complete, in-memory sequence of input lines
// together with the bookkeeping each pipeline step records about what it
// removed. Lines are read once into a Batch, rewritten in place by the
// pipeline steps and then handed to the output sink.
//
// Keeping Batch in its own package lets the pipeline, the command and the
// tests share it without import cycles.
package model
