// Package cssbuild provides typed building blocks for CSS text.
//
// Selectors, declarations, rules, keyframe animations and custom properties
// are immutable Go values. Every chaining call returns a new value, and
// String renders valid CSS on demand.
//
// # Values
//
// Dimensioned values render as literal tokens and lower arithmetic to calc():
//
//	cssbuild.Px(10)                                  // 10px
//	cssbuild.Minus(cssbuild.Percent(100), cssbuild.Px(20)) // calc(100% - 20px)
//	cssbuild.Percent(100).Minus(cssbuild.Px(20)).Divide(2) // calc(calc(100% - 20px) / 2)
//
// # Selectors
//
// Class names are declared as typed constants and composed with combinators
// and pseudo helpers. Pseudo helpers always attach to the most recent part:
//
//	const Container cssbuild.Class = "container"
//
//	Container.Child(cssbuild.TagDiv).Hover().Before() // .container > div:hover::before
//
// # Stylesheets
//
// Rules and keyframes are collected into a Stylesheet. Keyframes render
// first, then rules, each block separated by a blank line:
//
//	sheet := cssbuild.Style(
//		cssbuild.NewKeyframes("fade", cssbuild.From(prop.Opacity(0)), cssbuild.To(prop.Opacity(1))),
//		Container.Rule(prop.Width(cssbuild.Percent(100).Minus(cssbuild.Px(40)))),
//	)
//	fmt.Println(sheet)
//
// Property factories live in package prop, string selector helpers in
// package sel. The cssbuild CLI renders YAML stylesheet sources with this
// package; see cmd/cssbuild.
package cssbuild
