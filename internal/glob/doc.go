// Package glob implements an EditorConfig-style glob dialect compiled to
// Go regular expressions, plus a polarity-ordered Matcher for composing
// many include/exclude patterns into one include/exclude/unknown
// decision over an absolute path.
//
// The dialect supports literal characters, "?", "*", "**", bracket
// classes, "{a,b,c}" alternation (nestable), "{N..M}" numeric ranges,
// backslash escapes, and a leading "!" for exclude polarity. See Anchor
// for how a pattern is bound to a directory.
package glob
