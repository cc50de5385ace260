// Package richtext provides convenience functions over the component model
// in pkg/component: factories that forward to its builders, named append
// and convert helpers, and a join helper that composes a sequence of
// components with separators, a prefix, a suffix and an optional limit.
//
// Example usage:
//
//	names := []component.Component{richtext.Text("Alex"), richtext.Text("Steve")}
//	line := richtext.Join(names, richtext.JoinOptions{
//		Prefix: richtext.Text("Online: "),
//		Limit:  10,
//	})
//	fmt.Println(component.PlainText(line)) // Online: Alex, Steve
//
// None of these helpers validate or translate errors; failures such as a
// malformed key or block position come from pkg/component unchanged.
package richtext
