package richtext

import (
	"iter"
	"slices"

	"github.com/agentstation/richtext/pkg/component"
	"github.com/agentstation/richtext/pkg/constants"
)

// JoinOptions configures a join. The zero value joins every element with
// ", " and no prefix or suffix.
//
// Nil components fall back to their defaults; any non-nil value is used
// verbatim, so pass component.Empty() for an empty separator.
type JoinOptions struct {
	// Separator goes between two appended elements. Default ", ".
	Separator component.Like

	// Prefix is appended before the first element. Default nothing.
	Prefix component.Like

	// Suffix is appended last, after a truncation marker if any. Default nothing.
	Suffix component.Like

	// Limit caps the number of elements. Any value <= 0, including 0,
	// means unlimited.
	Limit int

	// Truncated is appended once when elements are dropped. Default "...".
	Truncated component.Like

	// Transform is applied to each converted element. Default identity.
	Transform func(component.Component) component.Like
}

// DefaultJoinOptions returns the documented defaults with every field filled in.
func DefaultJoinOptions() JoinOptions {
	return JoinOptions{
		Separator: Text(constants.DefaultSeparator),
		Prefix:    component.Empty(),
		Suffix:    component.Empty(),
		Limit:     constants.DefaultLimit,
		Truncated: Text(constants.DefaultTruncated),
		Transform: func(c component.Component) component.Like { return c },
	}
}

func (o JoinOptions) withDefaults() JoinOptions {
	d := DefaultJoinOptions()
	if o.Separator == nil {
		o.Separator = d.Separator
	}
	if o.Prefix == nil {
		o.Prefix = d.Prefix
	}
	if o.Suffix == nil {
		o.Suffix = d.Suffix
	}
	if o.Truncated == nil {
		o.Truncated = d.Truncated
	}
	if o.Transform == nil {
		o.Transform = d.Transform
	}
	return o
}

// JoinSeqTo appends the joined elements of seq to b and returns b.
//
// Once Limit elements have been appended, the next element pulled from seq
// is replaced by the truncation marker and iteration stops; it and any
// later elements are never converted or transformed.
func JoinSeqTo[T component.Like](b component.Builder, seq iter.Seq[T], opts JoinOptions) component.Builder {
	opts = opts.withDefaults()

	b.Append(opts.Prefix)

	count := 0
	for item := range seq {
		if opts.Limit > 0 && count >= opts.Limit {
			b.Append(opts.Truncated)
			break
		}
		if count > 0 {
			b.Append(opts.Separator)
		}
		b.Append(opts.Transform(component.AsComponent(item)))
		count++
	}

	b.Append(opts.Suffix)
	return b
}

// JoinTo appends the joined items to b and returns b.
func JoinTo[T component.Like](b component.Builder, items []T, opts JoinOptions) component.Builder {
	return JoinSeqTo(b, slices.Values(items), opts)
}

// JoinSeq joins the elements of seq under a fresh text builder and returns
// the built component.
func JoinSeq[T component.Like](seq iter.Seq[T], opts JoinOptions) component.Component {
	return JoinSeqTo(component.NewTextBuilder(), seq, opts).Build()
}

// Join joins items under a fresh text builder and returns the built component.
func Join[T component.Like](items []T, opts JoinOptions) component.Component {
	return JoinSeq(slices.Values(items), opts)
}
