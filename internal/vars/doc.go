// Package vars implements the execution-scoped variable store.
//
// Each scope identifier owns one JSON file under the store root, holding
// an array of flat objects. Every set or append invocation contributes
// exactly one array element; append never merges keys into an existing
// element.
//
// # Critical Patterns
//
// CP-1: Best-Effort Reads
//   - Missing record files read as an empty record, not an error
//   - Corrupt record files read as an empty record, not an error
//
// CP-2: Silent Field Degradation
//   - Unparsable numbers store 0
//   - Unparsable array/object input stores the original raw string
//   - Unrecognized type tags fall back to string behavior
//
// CP-3: Never Block The Workflow
//   - No operation surfaces a record-level failure to the caller;
//     only filesystem write errors propagate, for the outer surface
//     to log
//
// There is no file locking. Two writers on the same scope race and the
// last write wins.
package vars
