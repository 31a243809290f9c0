// Package segment implements the recursive segmenter: it consumes a lazy
// sequence of core.Resource values and produces a lazy sequence of
// core.Item values (bare resources or flat core.Segment bundles), cutting
// only at boundaries whose incision arithmetic sanctions a cut and never
// letting an emitted Segment exceed max_segment_count unless a single
// oversize resource forces it to.
package segment
