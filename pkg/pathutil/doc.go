// Package pathutil provides slash-path helpers for tree-shaped data:
// a Segment value type suitable for the tree package's path-segment
// contract, split/join routines, and a static file-extension-to-category
// lookup table. Nothing here touches a real filesystem.
package pathutil
