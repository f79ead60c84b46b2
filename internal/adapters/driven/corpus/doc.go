// Package corpus provides the file-based corpus loader and the change
// watcher that triggers index rebuilds.
//
// A corpus file is plain UTF-8 text with one document per paragraph
// (paragraphs separated by blank lines). Files without blank lines are
// read one document per line. When no corpus file exists the loader
// serves a built-in sample corpus so the tool works out of the box.
package corpus
