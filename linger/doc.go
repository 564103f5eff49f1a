// Package linger implements a parser for the linger stimulus-bank notation.
//
// A linger file is a flat stream of lines describing experimental items.
// Blank lines separate blocks; within a block, every line beginning with
// "# " opens a new stimulus group that runs until the next spec line. Each
// group holds a spec line (experiment, item number, condition, extra
// tokens), a sentence line, and zero or more "? " question lines carrying a
// trailing yes/no answer token.
//
// The parser is structured as a pull-based pipeline with three layers:
//
//   - GroupScanner: splits trimmed input lines into stimulus groups,
//     lazily, one group per Next call.
//   - Grammar parsers: ParseSpec and ParseQuestion turn single lines into
//     records; parseStim assembles a group into a Stim.
//   - Records: the output data structures (Spec, Stim, Question).
//
// Usage:
//
//	stims := linger.Parse(src)
//	for {
//	    stim, err := stims.Next()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if stim == nil {
//	        break
//	    }
//	    // render stim
//	}
//
// Question sequences attached to a Stim are lazy and single-pass: they are
// parsed as they are consumed and cannot be restarted.
package linger
